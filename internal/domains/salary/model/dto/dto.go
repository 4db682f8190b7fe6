package dto

import (
	"github.com/google/uuid"

	"hotelfin/internal/domains/salary/model"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	gModel "hotelfin/shared/model"
	"hotelfin/shared/timezone"
)

type CreateSalaryRequest struct {
	EmployeeName  string        `json:"employeeName"  validate:"required,max=100"`
	HoursWorked   *gDto.Decimal `json:"hoursWorked"   validate:"required,decimal"`
	TotalPay      *gDto.Decimal `json:"totalPay"      validate:"required,decimal"`
	TotalDamages  *gDto.Decimal `json:"totalDamages"  validate:"required,decimal"`
	FinalTotalPay *gDto.Decimal `json:"finalTotalPay" validate:"required,decimal"`
	Date          string        `json:"date"          validate:"required"`
}

// ValidationMessage keeps the historical blanket rejection for salary payloads.
func (c *CreateSalaryRequest) ValidationMessage(_ string) string {
	return "All fields are required and must be valid numbers."
}

func (c *CreateSalaryRequest) ToModel() (model.Salary, error) {
	date, err := timezone.Parse(constant.DateFormat, c.Date)
	if err != nil {
		date, err = timezone.Parse(constant.TimestampFormat, c.Date)
		if err != nil {
			return model.Salary{}, err
		}
	}

	return model.Salary{
		ID:            uuid.NewString(),
		EmployeeName:  c.EmployeeName,
		HoursWorked:   c.HoursWorked.Float64(),
		TotalPay:      c.TotalPay.Float64(),
		TotalDamages:  c.TotalDamages.Float64(),
		FinalTotalPay: c.FinalTotalPay.Float64(),
		Date:          date,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}, nil
}

type CreateSalaryResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type SalaryResponse struct {
	ID            string  `json:"id"`
	EmployeeName  string  `json:"employeeName"`
	HoursWorked   float64 `json:"hoursWorked"`
	TotalPay      float64 `json:"totalPay"`
	TotalDamages  float64 `json:"totalDamages"`
	FinalTotalPay float64 `json:"finalTotalPay"`
	Date          string  `json:"date"`
	gDto.Metadata
}

func (r *SalaryResponse) FromModel(model model.Salary) {
	r.ID = model.ID
	r.EmployeeName = model.EmployeeName
	r.HoursWorked = model.HoursWorked
	r.TotalPay = model.TotalPay
	r.TotalDamages = model.TotalDamages
	r.FinalTotalPay = model.FinalTotalPay
	r.Date = timezone.Format(model.Date, constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetSalariesResponse struct {
	Salaries []SalaryResponse `json:"salaries"`
}

func (r *GetSalariesResponse) FromModels(models []model.Salary) {
	r.Salaries = make([]SalaryResponse, len(models))
	for i, mod := range models {
		r.Salaries[i].FromModel(mod)
	}
}
