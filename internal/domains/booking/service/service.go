package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names RoomBooking=MockRoomBookingService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotelfin/config"
	"hotelfin/infras/otel"
	"hotelfin/internal/domains/booking/model"
	"hotelfin/internal/domains/booking/model/dto"
	"hotelfin/internal/domains/booking/repository"
	"hotelfin/shared"
	"hotelfin/shared/cache"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	"hotelfin/shared/failure"
	"hotelfin/shared/sqlerr"
)

const cacheGetAllBookings = "room_booking:gets"

const (
	msgConflictFmt  = "Room %s is already booked for %s. Please choose a different room or date."
	msgCreateFailed = "An error occurred while booking the room. Please try again later."
	msgFetchFailed  = "Unable to fetch bookings. Please try again later."
	msgDeleteFailed = "An error occurred while deleting the room booking. Please try again later."
	msgNotFound     = "Room booking not found."
)

type RoomBooking interface {
	Create(ctx context.Context, req dto.CreateRoomBookingRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomBookingsResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.RoomBooking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.RoomBooking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RoomBooking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Create rejects a booking when the (room, date) pair is already taken. The
// pre-check gives the friendly conflict message on the common path; the unique
// index on room_bookings backs it up, so a concurrent insert that slips past
// the check surfaces as a unique violation and maps to the same conflict.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomBookingRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking date")

		return "", failure.BadRequestFromString("All fields are required and amount must be a number.") // nolint:wrapcheck
	}

	conflictMsg := fmt.Sprintf(msgConflictFmt, req.RoomName, req.BookingDate)

	conflictFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomName,
				Operator: gDto.FilterOperatorEq,
				Value:    booking.RoomName,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Operator: gDto.FilterOperatorDateEq,
				Value:    booking.BookingDate,
				Table:    model.TableName,
			},
		},
	}

	exist, err := s.repo.Exist(ctx, conflictFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for conflicting booking")

		return "", failure.InternalFromString(msgCreateFailed) // nolint:wrapcheck
	}

	if exist {
		return "", failure.BadRequestFromString(conflictMsg) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return "", failure.BadRequestFromString(conflictMsg) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create room booking")

		return "", failure.InternalFromString(msgCreateFailed) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBookings)
	}()

	return booking.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBookings, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return res, failure.InternalFromString(msgFetchFailed) // nolint:wrapcheck
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room booking exists")

		return failure.InternalFromString(msgDeleteFailed) // nolint:wrapcheck
	}

	if !exist {
		return failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room booking")

		return failure.InternalFromString(msgDeleteFailed) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBookings)
	}()

	return nil
}
