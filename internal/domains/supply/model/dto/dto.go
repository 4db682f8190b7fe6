package dto

import (
	"github.com/google/uuid"

	"hotelfin/internal/domains/supply/model"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	gModel "hotelfin/shared/model"
	"hotelfin/shared/timezone"
)

type CreateSupplyRequest struct {
	Name       string        `json:"name"       validate:"required,max=100"`
	Amount     *gDto.Decimal `json:"amount"     validate:"required,decimal"`
	Quantity   *gDto.Decimal `json:"quantity"   validate:"required,decimal"`
	Unit       string        `json:"unit"       validate:"required,max=20"`
	SupplyDate string        `json:"supplyDate" validate:"required"`
}

func (c *CreateSupplyRequest) ValidationMessage(_ string) string {
	return "All fields are required and must be valid."
}

func (c *CreateSupplyRequest) ToModel() (model.Supply, error) {
	supplyDate, err := timezone.Parse(constant.DateFormat, c.SupplyDate)
	if err != nil {
		supplyDate, err = timezone.Parse(constant.TimestampFormat, c.SupplyDate)
		if err != nil {
			return model.Supply{}, err
		}
	}

	return model.Supply{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Amount:     c.Amount.Float64(),
		Quantity:   c.Quantity.Float64(),
		Unit:       c.Unit,
		SupplyDate: supplyDate,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}, nil
}

type CreateSupplyResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type SupplyResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	SupplyDate string  `json:"supplyDate"`
	gDto.Metadata
}

func (r *SupplyResponse) FromModel(model model.Supply) {
	r.ID = model.ID
	r.Name = model.Name
	r.Amount = model.Amount
	r.Quantity = model.Quantity
	r.Unit = model.Unit
	r.SupplyDate = timezone.Format(model.SupplyDate, constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetSuppliesResponse struct {
	Supplies []SupplyResponse `json:"supplies"`
}

func (r *GetSuppliesResponse) FromModels(models []model.Supply) {
	r.Supplies = make([]SupplyResponse, len(models))
	for i, mod := range models {
		r.Supplies[i].FromModel(mod)
	}
}
