package dto

import (
	"github.com/google/uuid"

	"hotelfin/internal/domains/booking/model"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	gModel "hotelfin/shared/model"
	"hotelfin/shared/timezone"
)

type CreateRoomBookingRequest struct {
	RoomName     string        `json:"roomName"     validate:"required,max=100"`
	CustomerName string        `json:"customerName" validate:"required,max=100"`
	Amount       *gDto.Decimal `json:"amount"       validate:"required,decimal"`
	BookingDate  string        `json:"bookingDate"  validate:"required"`
}

func (c *CreateRoomBookingRequest) ValidationMessage(_ string) string {
	return "All fields are required and amount must be a number."
}

func (c *CreateRoomBookingRequest) ToModel() (model.RoomBooking, error) {
	bookingDate, err := timezone.Parse(constant.DateFormat, c.BookingDate)
	if err != nil {
		bookingDate, err = timezone.Parse(constant.TimestampFormat, c.BookingDate)
		if err != nil {
			return model.RoomBooking{}, err
		}
	}

	return model.RoomBooking{
		ID:           uuid.NewString(),
		RoomName:     c.RoomName,
		CustomerName: c.CustomerName,
		Amount:       c.Amount.Float64(),
		BookingDate:  bookingDate,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}, nil
}

type CreateRoomBookingResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type RoomBookingResponse struct {
	ID           string  `json:"id"`
	RoomName     string  `json:"roomName"`
	CustomerName string  `json:"customerName"`
	Amount       float64 `json:"amount"`
	BookingDate  string  `json:"bookingDate"`
	gDto.Metadata
}

func (r *RoomBookingResponse) FromModel(model model.RoomBooking) {
	r.ID = model.ID
	r.RoomName = model.RoomName
	r.CustomerName = model.CustomerName
	r.Amount = model.Amount
	r.BookingDate = timezone.Format(model.BookingDate, constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomBookingsResponse struct {
	Bookings []RoomBookingResponse `json:"bookings"`
}

func (r *GetRoomBookingsResponse) FromModels(models []model.RoomBooking) {
	r.Bookings = make([]RoomBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
