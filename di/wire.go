//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"hotelfin/config"
	"hotelfin/infras/otel"
	"hotelfin/infras/postgres"
	"hotelfin/infras/redis"
	"hotelfin/shared/cache"
	"hotelfin/transport/http"
	"hotelfin/transport/http/middleware"
	"hotelfin/transport/http/router"

	bookingRepository "hotelfin/internal/domains/booking/repository"
	bookingService "hotelfin/internal/domains/booking/service"
	foodOrderRepository "hotelfin/internal/domains/foodorder/repository"
	foodOrderService "hotelfin/internal/domains/foodorder/service"
	salaryRepository "hotelfin/internal/domains/salary/repository"
	salaryService "hotelfin/internal/domains/salary/service"
	supplyRepository "hotelfin/internal/domains/supply/repository"
	supplyService "hotelfin/internal/domains/supply/service"

	bookingHandler "hotelfin/internal/handlers/booking"
	foodOrderHandler "hotelfin/internal/handlers/foodorder"
	salaryHandler "hotelfin/internal/handlers/salary"
	statusHandler "hotelfin/internal/handlers/status"
	supplyHandler "hotelfin/internal/handlers/supply"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var salaryDomain = wire.NewSet(
	salaryRepository.New,
	salaryService.New,
)

var supplyDomain = wire.NewSet(
	supplyRepository.New,
	supplyService.New,
)

var foodOrderDomain = wire.NewSet(
	foodOrderRepository.New,
	foodOrderService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	salaryDomain,
	supplyDomain,
	foodOrderDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	statusHandler.New,
	salaryHandler.New,
	supplyHandler.New,
	foodOrderHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
