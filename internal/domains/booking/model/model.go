package model

import (
	"time"

	"hotelfin/shared/model"
)

const (
	TableName  = "room_bookings"
	EntityName = "room_booking"

	FieldID           = "id"
	FieldRoomName     = "room_name"
	FieldCustomerName = "customer_name"
	FieldAmount       = "amount"
	FieldBookingDate  = "booking_date"
)

type RoomBooking struct {
	ID           string    `db:"id"`
	RoomName     string    `db:"room_name"`
	CustomerName string    `db:"customer_name"`
	Amount       float64   `db:"amount"`
	BookingDate  time.Time `db:"booking_date"`
	model.Metadata
}
