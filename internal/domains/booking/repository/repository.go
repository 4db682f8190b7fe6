package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names RoomBooking=MockRoomBookingRepository

import (
	"context"

	"hotelfin/infras/otel"
	"hotelfin/infras/postgres"
	"hotelfin/internal/domains/booking/model"
	gDto "hotelfin/shared/dto"
	gRepo "hotelfin/shared/repository"
)

type RoomBooking interface {
	Insert(ctx context.Context, booking model.RoomBooking) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomBooking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomBooking]
}

func New(db *postgres.Connection, otel otel.Otel) RoomBooking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
