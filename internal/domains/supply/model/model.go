package model

import (
	"hotelfin/shared/model"
	"time"
)

const (
	TableName  = "supplies"
	EntityName = "supply"

	FieldID         = "id"
	FieldName       = "name"
	FieldAmount     = "amount"
	FieldQuantity   = "quantity"
	FieldUnit       = "unit"
	FieldSupplyDate = "supply_date"
)

type Supply struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Amount     float64   `db:"amount"`
	Quantity   float64   `db:"quantity"`
	Unit       string    `db:"unit"`
	SupplyDate time.Time `db:"supply_date"`
	model.Metadata
}
