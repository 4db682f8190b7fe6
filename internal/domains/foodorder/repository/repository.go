package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names FoodOrder=MockFoodOrderRepository

import (
	"context"

	"hotelfin/infras/otel"
	"hotelfin/infras/postgres"
	"hotelfin/internal/domains/foodorder/model"
	gDto "hotelfin/shared/dto"
	gRepo "hotelfin/shared/repository"
)

type FoodOrder interface {
	Insert(ctx context.Context, order model.FoodOrder) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.FoodOrder, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.FoodOrder]
}

func New(db *postgres.Connection, otel otel.Otel) FoodOrder {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.FoodOrder](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
