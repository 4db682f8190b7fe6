package model

import (
	"hotelfin/shared/model"
	"time"
)

const (
	TableName  = "salaries"
	EntityName = "salary"

	FieldID            = "id"
	FieldEmployeeName  = "employee_name"
	FieldHoursWorked   = "hours_worked"
	FieldTotalPay      = "total_pay"
	FieldTotalDamages  = "total_damages"
	FieldFinalTotalPay = "final_total_pay"
	FieldDate          = "date"
)

type Salary struct {
	ID            string    `db:"id"`
	EmployeeName  string    `db:"employee_name"`
	HoursWorked   float64   `db:"hours_worked"`
	TotalPay      float64   `db:"total_pay"`
	TotalDamages  float64   `db:"total_damages"`
	FinalTotalPay float64   `db:"final_total_pay"`
	Date          time.Time `db:"date"`
	model.Metadata
}
