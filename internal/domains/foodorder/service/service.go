package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names FoodOrder=MockFoodOrderService

import (
	"context"

	"github.com/rs/zerolog/log"

	"hotelfin/config"
	"hotelfin/infras/otel"
	"hotelfin/internal/domains/foodorder/model"
	"hotelfin/internal/domains/foodorder/model/dto"
	"hotelfin/internal/domains/foodorder/repository"
	"hotelfin/shared"
	"hotelfin/shared/cache"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	"hotelfin/shared/failure"
)

const cacheGetAllFoodOrders = "food_order:gets"

const (
	msgCreateFailed = "An internal server error occurred."
	msgFetchFailed  = "An error occurred while fetching food orders."
	msgDeleteFailed = "An error occurred while deleting the food order."
	msgNotFound     = "Food order not found."
	msgInvalidDate  = "Invalid order date"
)

type FoodOrder interface {
	Create(ctx context.Context, req dto.CreateFoodOrderRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFoodOrdersResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.FoodOrder
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.FoodOrder, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) FoodOrder {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFoodOrderRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse food order date")

		return "", failure.BadRequestFromString(msgInvalidDate) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, order); err != nil {
		log.Error().Err(err).Msg("failed to create food order")

		return "", failure.InternalFromString(msgCreateFailed) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFoodOrders)
	}()

	return order.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFoodOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFoodOrders, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for food orders")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get food orders")

		return res, failure.InternalFromString(msgFetchFailed) // nolint:wrapcheck
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save food orders to cache")
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
		log.Error().Err(err).Msg("failed to check if food order exists")

		return failure.InternalFromString(msgDeleteFailed) // nolint:wrapcheck
	}

	if !exist {
		return failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete food order")

		return failure.InternalFromString(msgDeleteFailed) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFoodOrders)
	}()

	return nil
}
