package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names Salary=MockSalaryService

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hotelfin/config"
	"hotelfin/infras/otel"
	"hotelfin/internal/domains/salary/model"
	"hotelfin/internal/domains/salary/model/dto"
	"hotelfin/internal/domains/salary/repository"
	"hotelfin/shared"
	"hotelfin/shared/cache"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	"hotelfin/shared/failure"
	"hotelfin/shared/timezone"
)

const (
	cacheGetAllSalaries = "salary:gets"

	// dedupWindow is the trailing window within which an employee may be paid once.
	dedupWindow = 24 * time.Hour
)

const (
	msgDuplicatePayment = "Daily salary already paid for the mentioned employee."
	msgCreateFailed     = "An error occurred while creating the salary record. Please try again later."
	msgFetchFailed      = "Unable to fetch salaries. Please try again later."
	msgDeleteFailed     = "An error occurred while deleting the salary record. Please try again later."
	msgNotFound         = "Salary record not found."
)

type Salary interface {
	Create(ctx context.Context, req dto.CreateSalaryRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSalariesResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Salary
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Salary, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Salary {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSalaryRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	salary, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse salary date")

		return "", failure.BadRequestFromString("All fields are required and must be valid numbers.") // nolint:wrapcheck
	}

	guard := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmployeeName,
				Operator: gDto.FilterOperatorEq,
				Value:    salary.EmployeeName,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    timezone.Now().Add(-dedupWindow),
				Table:    model.TableName,
			},
		},
	}

	inserted, err := s.repo.InsertGuarded(ctx, salary, guard)
	if err != nil {
		log.Error().Err(err).Msg("failed to create salary record")

		return "", failure.InternalFromString(msgCreateFailed) // nolint:wrapcheck
	}

	if !inserted {
		return "", failure.BadRequestFromString(msgDuplicatePayment) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSalaries)
	}()

	return salary.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSalariesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSalaries, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for salaries")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get salaries")

		return res, failure.InternalFromString(msgFetchFailed) // nolint:wrapcheck
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save salaries to cache")
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
		log.Error().Err(err).Msg("failed to check if salary record exists")

		return failure.InternalFromString(msgDeleteFailed) // nolint:wrapcheck
	}

	if !exist {
		return failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete salary record")

		return failure.InternalFromString(msgDeleteFailed) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSalaries)
	}()

	return nil
}
