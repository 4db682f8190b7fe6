package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelfin/internal/domains/foodorder/model/dto"
	"hotelfin/shared/validator"
)

func TestCreateFoodOrderRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid order without beverage",
			body: `{"foodType":"Meat","quantity":2.5}`,
		},
		{
			name: "valid order with beverage",
			body: `{"foodType":"Vegetables","quantity":"3","beverage":"Juice","beverageQuantity":"1.5","orderDate":"2024-03-10"}`,
		},
		{
			name:    "unknown food type",
			body:    `{"foodType":"Fish","quantity":2.5}`,
			wantErr: "Invalid food type",
		},
		{
			name:    "missing food type",
			body:    `{"quantity":2.5}`,
			wantErr: "Invalid food type",
		},
		{
			name:    "unknown beverage",
			body:    `{"foodType":"Meat","beverage":"Wine","quantity":2.5,"beverageQuantity":1}`,
			wantErr: "Invalid beverage",
		},
		{
			name:    "non-numeric quantity",
			body:    `{"foodType":"Meat","quantity":"abc"}`,
			wantErr: "Invalid quantity provided",
		},
		{
			name:    "beverage without beverage quantity",
			body:    `{"foodType":"Meat","quantity":2.5,"beverage":"Water"}`,
			wantErr: "Invalid beverage quantity provided",
		},
		{
			name:    "non-numeric beverage quantity",
			body:    `{"foodType":"Meat","quantity":2.5,"beverage":"Water","beverageQuantity":"lots"}`,
			wantErr: "Invalid beverage quantity provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateFoodOrderRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateFoodOrderRequest_ToModel(t *testing.T) {
	t.Run("order date omitted stays nil", func(t *testing.T) {
		req := dto.CreateFoodOrderRequest{}
		err := validator.Validate(strings.NewReader(`{"foodType":"Meat","quantity":2.5}`), &req)
		assert.NoError(t, err)

		order, err := req.ToModel()
		assert.NoError(t, err)

		assert.NotEmpty(t, order.ID)
		assert.Nil(t, order.OrderDate)
		assert.Nil(t, order.Beverage)
		assert.Nil(t, order.BeverageQuantity)
	})

	t.Run("beverage carries its quantity", func(t *testing.T) {
		req := dto.CreateFoodOrderRequest{}
		err := validator.Validate(strings.NewReader(
			`{"foodType":"Cereals","quantity":5,"beverage":"Soda","beverageQuantity":2,"orderDate":"2024-03-10"}`,
		), &req)
		assert.NoError(t, err)

		order, err := req.ToModel()
		assert.NoError(t, err)

		assert.NotNil(t, order.Beverage)
		assert.Equal(t, "Soda", *order.Beverage)
		assert.NotNil(t, order.BeverageQuantity)
		assert.Equal(t, 2.0, *order.BeverageQuantity)
		assert.NotNil(t, order.OrderDate)
	})
}
