package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names Supply=MockSupplyService

import (
	"context"

	"github.com/rs/zerolog/log"

	"hotelfin/config"
	"hotelfin/infras/otel"
	"hotelfin/internal/domains/supply/model"
	"hotelfin/internal/domains/supply/model/dto"
	"hotelfin/internal/domains/supply/repository"
	"hotelfin/shared"
	"hotelfin/shared/cache"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	"hotelfin/shared/failure"
)

const cacheGetAllSupplies = "supply:gets"

const (
	msgCreateFailed = "An error occurred while adding the supply."
	msgFetchFailed  = "An error occurred while fetching supplies."
	msgDeleteFailed = "An error occurred while deleting the supply."
	msgNotFound     = "Supply not found."
)

type Supply interface {
	Create(ctx context.Context, req dto.CreateSupplyRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSuppliesResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Supply
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Supply, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Supply {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSupplyRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	supply, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse supply date")

		return "", failure.BadRequestFromString("All fields are required and must be valid.") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, supply); err != nil {
		log.Error().Err(err).Msg("failed to create supply")

		return "", failure.InternalFromString(msgCreateFailed) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSupplies)
	}()

	return supply.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSuppliesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSupplies, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for supplies")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get supplies")

		return res, failure.InternalFromString(msgFetchFailed) // nolint:wrapcheck
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save supplies to cache")
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
		log.Error().Err(err).Msg("failed to check if supply exists")

		return failure.InternalFromString(msgDeleteFailed) // nolint:wrapcheck
	}

	if !exist {
		return failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete supply")

		return failure.InternalFromString(msgDeleteFailed) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSupplies)
	}()

	return nil
}
