package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelfin/infras/otel/mocks"
	bookingMocks "hotelfin/internal/domains/booking/mocks"
	"hotelfin/internal/domains/booking/model/dto"
	"hotelfin/internal/handlers/booking"
	"hotelfin/shared/failure"
)

func setupRouter(t *testing.T) (*bookingMocks.MockRoomBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := bookingMocks.NewMockRoomBookingService(ctrl)
	handler := booking.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func TestRoomBookingHandler_CreateRoomBooking(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return("booking-id-1", nil)

		req := httptest.NewRequest(http.MethodPost, "/room-bookings", strings.NewReader(
			`{"roomName":"101","customerName":"John Carter","amount":250,"bookingDate":"2024-02-01"}`,
		))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Room was booked successfully!","id":"booking-id-1"}`, rec.Body.String())
	})

	t.Run("room already booked", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return("", failure.BadRequestFromString("Room 101 is already booked for 2024-02-01. Please choose a different room or date."))

		req := httptest.NewRequest(http.MethodPost, "/room-bookings", strings.NewReader(
			`{"roomName":"101","customerName":"John Carter","amount":250,"bookingDate":"2024-02-01"}`,
		))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Room 101 is already booked for 2024-02-01. Please choose a different room or date."}`, rec.Body.String())
	})

	t.Run("non numeric amount never reaches the service", func(t *testing.T) {
		_, router := setupRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/room-bookings", strings.NewReader(
			`{"roomName":"101","customerName":"John Carter","amount":"abc","bookingDate":"2024-02-01"}`,
		))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"All fields are required and amount must be a number."}`, rec.Body.String())
	})
}

func TestRoomBookingHandler_GetRoomBookings(t *testing.T) {
	mockService, router := setupRouter(t)

	mockService.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dto.GetRoomBookingsResponse{Bookings: []dto.RoomBookingResponse{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/room-bookings?bookingDate=2024-02-01", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
}

func TestRoomBookingHandler_DeleteRoomBooking(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Delete(gomock.Any(), "booking-id-1").
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/room-bookings/booking-id-1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Room booking deleted successfully!"}`, rec.Body.String())
	})

	t.Run("booking not found", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Delete(gomock.Any(), "999999").
			Return(failure.NotFound("Room booking not found."))

		req := httptest.NewRequest(http.MethodDelete, "/room-bookings/999999", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Room booking not found."}`, rec.Body.String())
	})
}
