package model

import (
	"time"

	"hotelfin/shared/model"
)

const (
	TableName  = "food_orders"
	EntityName = "food_order"

	FieldID               = "id"
	FieldFoodType         = "food_type"
	FieldQuantity         = "quantity"
	FieldBeverage         = "beverage"
	FieldBeverageQuantity = "beverage_quantity"
	FieldOrderDate        = "order_date"
)

// Accepted enum values for food orders.
const (
	FoodTypeMeat       = "Meat"
	FoodTypeVegetables = "Vegetables"
	FoodTypeCereals    = "Cereals"

	BeverageWater = "Water"
	BeverageSoda  = "Soda"
	BeverageJuice = "Juice"
)

type FoodOrder struct {
	ID               string     `db:"id"`
	FoodType         string     `db:"food_type"`
	Quantity         float64    `db:"quantity"`
	Beverage         *string    `db:"beverage"`
	BeverageQuantity *float64   `db:"beverage_quantity"`
	OrderDate        *time.Time `db:"order_date"`
	model.Metadata
}
