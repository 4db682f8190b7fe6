package salary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelfin/infras/otel/mocks"
	salaryMocks "hotelfin/internal/domains/salary/mocks"
	"hotelfin/internal/domains/salary/model/dto"
	"hotelfin/internal/handlers/salary"
	gDto "hotelfin/shared/dto"
	"hotelfin/shared/failure"
)

func setupRouter(t *testing.T) (*salaryMocks.MockSalaryService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := salaryMocks.NewMockSalaryService(ctrl)
	handler := salary.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func TestSalaryHandler_CreateSalary(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return("salary-id-1", nil)

		req := httptest.NewRequest(http.MethodPost, "/salaries", strings.NewReader(
			`{"employeeName":"Jane Porter","hoursWorked":8,"totalPay":120.5,"totalDamages":0,"finalTotalPay":120.5,"date":"2024-01-15"}`,
		))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Salary record was created successfully!","id":"salary-id-1"}`, rec.Body.String())
	})

	t.Run("invalid payload never reaches the service", func(t *testing.T) {
		_, router := setupRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/salaries", strings.NewReader(
			`{"employeeName":"Jane Porter","hoursWorked":"abc","date":"2024-01-15"}`,
		))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"All fields are required and must be valid numbers."}`, rec.Body.String())
	})

	t.Run("duplicate payment", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return("", failure.BadRequestFromString("Daily salary already paid for the mentioned employee."))

		req := httptest.NewRequest(http.MethodPost, "/salaries", strings.NewReader(
			`{"employeeName":"Jane Porter","hoursWorked":8,"totalPay":120.5,"totalDamages":0,"finalTotalPay":120.5,"date":"2024-01-15"}`,
		))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Daily salary already paid for the mentioned employee."}`, rec.Body.String())
	})
}

func TestSalaryHandler_GetSalaries(t *testing.T) {
	t.Run("empty list stays a 200", func(t *testing.T) {
		mockService, router := setupRouter(t)

		res := dto.GetSalariesResponse{}
		res.FromModels(nil)

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(res, nil)

		req := httptest.NewRequest(http.MethodGet, "/salaries", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"salaries":[]}`, rec.Body.String())
	})

	t.Run("date filter is forwarded", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSalariesResponse, error) {
				assert.Len(t, filter.Filters, 1)

				dateFilter, ok := filter.Filters[0].(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, gDto.FilterOperatorDateEq, dateFilter.Operator)
				assert.Equal(t, "2024-01-15", dateFilter.Value)

				return dto.GetSalariesResponse{Salaries: []dto.SalaryResponse{}}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/salaries?date=2024-01-15", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.GetSalariesResponse{}, failure.InternalFromString("Unable to fetch salaries. Please try again later."))

		req := httptest.NewRequest(http.MethodGet, "/salaries", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Unable to fetch salaries. Please try again later."}`, rec.Body.String())
	})
}

func TestSalaryHandler_DeleteSalary(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Delete(gomock.Any(), "salary-id-1").
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/salaries/salary-id-1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Salary record deleted successfully!"}`, rec.Body.String())
	})

	t.Run("record not found", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Delete(gomock.Any(), "999999").
			Return(failure.NotFound("Salary record not found."))

		req := httptest.NewRequest(http.MethodDelete, "/salaries/999999", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Salary record not found."}`, rec.Body.String())
	})
}
