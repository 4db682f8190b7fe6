package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotelfin/internal/handlers/booking"
	"hotelfin/internal/handlers/foodorder"
	"hotelfin/internal/handlers/salary"
	"hotelfin/internal/handlers/status"
	"hotelfin/internal/handlers/supply"
	"hotelfin/shared/constant"
	"hotelfin/shared/failure"
	"hotelfin/transport/http/response"
)

type DomainHandlers struct {
	Status    status.Handler
	Salary    salary.Handler
	Supply    supply.Handler
	FoodOrder foodorder.Handler
	Booking   booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Status.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Salary.Router(routerGroup)
		r.DomainHandlers.Supply.Router(routerGroup)
		r.DomainHandlers.FoodOrder.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.NotFound(constant.ResponseErrorRouteNotFound))
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
