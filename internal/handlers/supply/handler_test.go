package supply_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelfin/infras/otel/mocks"
	supplyMocks "hotelfin/internal/domains/supply/mocks"
	"hotelfin/internal/domains/supply/model/dto"
	"hotelfin/internal/handlers/supply"
	"hotelfin/shared/failure"
)

func setupRouter(t *testing.T) (*supplyMocks.MockSupplyService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := supplyMocks.NewMockSupplyService(ctrl)
	handler := supply.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func TestSupplyHandler_CreateSupply(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return("supply-id-1", nil)

		req := httptest.NewRequest(http.MethodPost, "/supplies", strings.NewReader(
			`{"name":"Rice","amount":150,"quantity":25,"unit":"kg","supplyDate":"2024-01-15"}`,
		))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Supply successfully added.","id":"supply-id-1"}`, rec.Body.String())
	})

	t.Run("invalid payload never reaches the service", func(t *testing.T) {
		_, router := setupRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/supplies", strings.NewReader(
			`{"name":"Rice","amount":"abc","quantity":25,"unit":"kg","supplyDate":"2024-01-15"}`,
		))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"All fields are required and must be valid."}`, rec.Body.String())
	})
}

func TestSupplyHandler_GetSupplies(t *testing.T) {
	t.Run("empty list stays a 200", func(t *testing.T) {
		mockService, router := setupRouter(t)

		res := dto.GetSuppliesResponse{}
		res.FromModels(nil)

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(res, nil)

		req := httptest.NewRequest(http.MethodGet, "/supplies", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"supplies":[]}`, rec.Body.String())
	})

	t.Run("supplies found", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.GetSuppliesResponse{
				Supplies: []dto.SupplyResponse{
					{ID: "supply-id-1", Name: "Rice", Amount: 150, Quantity: 25, Unit: "kg", SupplyDate: "2024-01-15"},
				},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/supplies?supplyDate=2024-01-15", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.GetSuppliesResponse{}, failure.InternalFromString("An error occurred while fetching supplies."))

		req := httptest.NewRequest(http.MethodGet, "/supplies", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"An error occurred while fetching supplies."}`, rec.Body.String())
	})
}

func TestSupplyHandler_DeleteSupply(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Delete(gomock.Any(), "supply-id-1").
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/supplies/supply-id-1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Supply successfully deleted."}`, rec.Body.String())
	})

	t.Run("supply not found", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Delete(gomock.Any(), "999999").
			Return(failure.NotFound("Supply not found."))

		req := httptest.NewRequest(http.MethodDelete, "/supplies/999999", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Supply not found."}`, rec.Body.String())
	})
}
