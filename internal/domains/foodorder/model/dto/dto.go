package dto

import (
	"time"

	"github.com/google/uuid"

	"hotelfin/internal/domains/foodorder/model"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	gModel "hotelfin/shared/model"
	"hotelfin/shared/timezone"
)

// Field order matters here: validation reports the first failing field, and
// the rejection messages follow the historical check order (food type, then
// beverage, then the quantities).
type CreateFoodOrderRequest struct {
	FoodType         string        `json:"foodType"         validate:"required,oneof=Meat Vegetables Cereals"`
	Beverage         *string       `json:"beverage"         validate:"omitempty,oneof=Water Soda Juice"`
	Quantity         *gDto.Decimal `json:"quantity"         validate:"required,decimal"`
	BeverageQuantity *gDto.Decimal `json:"beverageQuantity" validate:"required_with=Beverage,omitempty,decimal"`
	OrderDate        string        `json:"orderDate"`
}

func (c *CreateFoodOrderRequest) ValidationMessage(field string) string {
	switch field {
	case "Beverage":
		return "Invalid beverage"
	case "Quantity":
		return "Invalid quantity provided"
	case "BeverageQuantity":
		return "Invalid beverage quantity provided"
	default:
		return "Invalid food type"
	}
}

func (c *CreateFoodOrderRequest) ToModel() (model.FoodOrder, error) {
	var orderDate *time.Time

	if c.OrderDate != "" {
		parsed, err := timezone.Parse(constant.DateFormat, c.OrderDate)
		if err != nil {
			parsed, err = timezone.Parse(constant.TimestampFormat, c.OrderDate)
			if err != nil {
				return model.FoodOrder{}, err
			}
		}

		orderDate = &parsed
	}

	var beverageQuantity *float64

	if c.Beverage != nil && c.BeverageQuantity != nil {
		value := c.BeverageQuantity.Float64()
		beverageQuantity = &value
	}

	return model.FoodOrder{
		ID:               uuid.NewString(),
		FoodType:         c.FoodType,
		Quantity:         c.Quantity.Float64(),
		Beverage:         c.Beverage,
		BeverageQuantity: beverageQuantity,
		OrderDate:        orderDate,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}, nil
}

type CreateFoodOrderResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type FoodOrderResponse struct {
	ID               string   `json:"id"`
	FoodType         string   `json:"foodType"`
	Quantity         float64  `json:"quantity"`
	Beverage         *string  `json:"beverage"`
	BeverageQuantity *float64 `json:"beverageQuantity"`
	OrderDate        *string  `json:"orderDate"`
	gDto.Metadata
}

func (r *FoodOrderResponse) FromModel(model model.FoodOrder) {
	r.ID = model.ID
	r.FoodType = model.FoodType
	r.Quantity = model.Quantity
	r.Beverage = model.Beverage
	r.BeverageQuantity = model.BeverageQuantity

	if model.OrderDate != nil {
		formatted := timezone.Format(*model.OrderDate, constant.DateFormat)
		r.OrderDate = &formatted
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetFoodOrdersResponse struct {
	FoodOrders []FoodOrderResponse `json:"foodOrders"`
}

func (r *GetFoodOrdersResponse) FromModels(models []model.FoodOrder) {
	r.FoodOrders = make([]FoodOrderResponse, len(models))
	for i, mod := range models {
		r.FoodOrders[i].FromModel(mod)
	}
}
