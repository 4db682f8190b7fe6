package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelfin/internal/domains/salary/model/dto"
	"hotelfin/shared/validator"
)

func TestCreateSalaryRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid payload with decimal numbers",
			body: `{"employeeName":"Jane Porter","hoursWorked":8,"totalPay":120.5,"totalDamages":0,"finalTotalPay":120.5,"date":"2024-01-15"}`,
		},
		{
			name: "numeric strings are accepted",
			body: `{"employeeName":"Jane Porter","hoursWorked":"8","totalPay":"120.5","totalDamages":"0","finalTotalPay":"120.5","date":"2024-01-15"}`,
		},
		{
			name:    "missing employee name",
			body:    `{"hoursWorked":8,"totalPay":120.5,"totalDamages":0,"finalTotalPay":120.5,"date":"2024-01-15"}`,
			wantErr: "All fields are required and must be valid numbers.",
		},
		{
			name:    "non-numeric hours worked",
			body:    `{"employeeName":"Jane Porter","hoursWorked":"abc","totalPay":120.5,"totalDamages":0,"finalTotalPay":120.5,"date":"2024-01-15"}`,
			wantErr: "All fields are required and must be valid numbers.",
		},
		{
			name:    "missing date",
			body:    `{"employeeName":"Jane Porter","hoursWorked":8,"totalPay":120.5,"totalDamages":0,"finalTotalPay":120.5}`,
			wantErr: "All fields are required and must be valid numbers.",
		},
		{
			name:    "malformed body",
			body:    `{"employeeName":`,
			wantErr: "All fields are required and must be valid numbers.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateSalaryRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateSalaryRequest_ToModel(t *testing.T) {
	req := dto.CreateSalaryRequest{}
	err := validator.Validate(strings.NewReader(
		`{"employeeName":"Jane Porter","hoursWorked":"8","totalPay":120.5,"totalDamages":0,"finalTotalPay":120.5,"date":"2024-01-15"}`,
	), &req)
	assert.NoError(t, err)

	salary, err := req.ToModel()
	assert.NoError(t, err)

	assert.NotEmpty(t, salary.ID)
	assert.Equal(t, "Jane Porter", salary.EmployeeName)
	assert.Equal(t, 8.0, salary.HoursWorked)
	assert.Equal(t, 120.5, salary.TotalPay)
	assert.Equal(t, 2024, salary.Date.Year())
	assert.False(t, salary.CreatedAt.IsZero())
}

func TestCreateSalaryRequest_ToModelRejectsBadDate(t *testing.T) {
	req := dto.CreateSalaryRequest{Date: "yesterday"}

	_, err := req.ToModel()
	assert.Error(t, err)
}
