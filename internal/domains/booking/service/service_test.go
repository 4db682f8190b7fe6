package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelfin/config"
	"hotelfin/infras/otel/mocks"
	bookingMocks "hotelfin/internal/domains/booking/mocks"
	"hotelfin/internal/domains/booking/model"
	"hotelfin/internal/domains/booking/model/dto"
	"hotelfin/internal/domains/booking/service"
	"hotelfin/shared/cache"
	cacheMocks "hotelfin/shared/cache/mocks"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	"hotelfin/shared/failure"
)

func decimalPtr(v float64) *gDto.Decimal {
	d := gDto.Decimal(v)

	return &d
}

func TestRoomBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockRoomBookingRepository(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	validReq := dto.CreateRoomBookingRequest{
		RoomName:     "Deluxe 101",
		CustomerName: "John Carter",
		Amount:       decimalPtr(250),
		BookingDate:  "2024-02-01",
	}

	conflictMsg := "Room Deluxe 101 is already booked for 2024-02-01. Please choose a different room or date."

	tests := []struct {
		name      string
		req       dto.CreateRoomBookingRequest
		setupMock func()
		wantErr   string
	}{
		{
			name: "successful booking",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "room already booked",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: conflictMsg,
		},
		{
			name: "lost race surfaces the same conflict",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr: conflictMsg,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: "An error occurred while booking the room. Please try again later.",
		},
		{
			name: "unparsable booking date",
			req: dto.CreateRoomBookingRequest{
				RoomName:     "Deluxe 101",
				CustomerName: "John Carter",
				Amount:       decimalPtr(250),
				BookingDate:  "someday",
			},
			setupMock: func() {},
			wantErr:   "All fields are required and amount must be a number.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Empty(t, id)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestRoomBookingService_Create_ConflictIsBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockRoomBookingRepository(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	_, err := svc.Create(context.Background(), dto.CreateRoomBookingRequest{
		RoomName:     "Deluxe 101",
		CustomerName: "John Carter",
		Amount:       decimalPtr(250),
		BookingDate:  "2024-02-01",
	})

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestRoomBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockRoomBookingRepository(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.RoomBooking{
			{
				ID:          "booking-id-1",
				RoomName:    "Deluxe 101",
				BookingDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			},
		}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, "2024-02-01", res.Bookings[0].BookingDate)
}

func TestRoomBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockRoomBookingRepository(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing-id")

		assert.EqualError(t, err, "Room booking not found.")
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful deletion", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(context.Background(), "booking-id-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}
