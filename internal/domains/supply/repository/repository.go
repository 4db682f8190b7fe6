package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names Supply=MockSupplyRepository

import (
	"context"

	"hotelfin/infras/otel"
	"hotelfin/infras/postgres"
	"hotelfin/internal/domains/supply/model"
	gDto "hotelfin/shared/dto"
	gRepo "hotelfin/shared/repository"
)

type Supply interface {
	Insert(ctx context.Context, supply model.Supply) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Supply, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Supply]
}

func New(db *postgres.Connection, otel otel.Otel) Supply {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Supply](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
