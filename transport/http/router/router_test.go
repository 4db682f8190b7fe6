package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"hotelfin/infras/otel/mocks"
	"hotelfin/internal/handlers/booking"
	"hotelfin/internal/handlers/foodorder"
	"hotelfin/internal/handlers/salary"
	"hotelfin/internal/handlers/status"
	"hotelfin/internal/handlers/supply"
	"hotelfin/transport/http/router"
)

func setupRouter() http.Handler {
	otel := mocks.NewOtel()

	appRouter := router.New(router.DomainHandlers{
		Status:    status.New(),
		Salary:    salary.New(nil, otel),
		Supply:    supply.New(nil, otel),
		FoodOrder: foodorder.New(nil, otel),
		Booking:   booking.New(nil, otel),
	})

	mux := chi.NewRouter()
	appRouter.SetupRoutes(mux)

	return mux
}

func TestRouter_Status(t *testing.T) {
	mux := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is running", rec.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	mux := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/does-not-exist", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())
}
