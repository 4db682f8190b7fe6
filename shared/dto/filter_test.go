package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelfin/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	t.Run("equality", func(t *testing.T) {
		filter := dto.Filter{
			Field:    "employee_name",
			Operator: dto.FilterOperatorEq,
			Value:    "Jane Porter",
			Table:    "salaries",
		}

		where, args := filter.GetWhereClause()

		assert.Equal(t, "salaries.employee_name = :employee_name", where)
		assert.Equal(t, map[string]any{"employee_name": "Jane Porter"}, args)
	})

	t.Run("date equality compares the calendar date only", func(t *testing.T) {
		filter := dto.Filter{
			Field:    "booking_date",
			Operator: dto.FilterOperatorDateEq,
			Value:    "2024-02-01",
			Table:    "room_bookings",
		}

		where, args := filter.GetWhereClause()

		assert.Equal(t, "room_bookings.booking_date::date = :booking_date", where)
		assert.Equal(t, map[string]any{"booking_date": "2024-02-01"}, args)
	})

	t.Run("without table prefix", func(t *testing.T) {
		filter := dto.Filter{
			Field:    "amount",
			Operator: dto.FilterOperatorGreaterEq,
			Value:    100,
		}

		where, _ := filter.GetWhereClause()

		assert.Equal(t, "amount >= :amount", where)
	})

	t.Run("custom arg name", func(t *testing.T) {
		filter := dto.Filter{
			ArgName:  "date_from",
			Field:    "date",
			Operator: dto.FilterOperatorGreaterEq,
			Value:    "2024-01-14",
		}

		where, args := filter.GetWhereClause()

		assert.Equal(t, "date >= :date_from", where)
		assert.Equal(t, map[string]any{"date_from": "2024-01-14"}, args)
	})

	t.Run("unknown operator", func(t *testing.T) {
		filter := dto.Filter{
			Field:    "amount",
			Operator: "like",
			Value:    "x",
		}

		where, args := filter.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("joins filters with the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{
					Field:    "room_name",
					Operator: dto.FilterOperatorEq,
					Value:    "101",
					Table:    "room_bookings",
				},
				dto.Filter{
					Field:    "booking_date",
					Operator: dto.FilterOperatorDateEq,
					Value:    "2024-02-01",
					Table:    "room_bookings",
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(room_bookings.room_name = :room_name AND room_bookings.booking_date::date = :booking_date)", where)
		assert.Len(t, args, 2)
	})

	t.Run("nested group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "name", Operator: dto.FilterOperatorEq, Value: "Rice"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorAnd,
					Filters: []any{
						dto.Filter{Field: "quantity", Operator: dto.FilterOperatorGreaterEq, Value: 1},
						dto.Filter{Field: "quantity", Operator: dto.FilterOperatorLessEq, Value: 10},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(name = :name OR (quantity >= :quantity AND quantity <= :quantity))", where)
		assert.Len(t, args, 2)
	})

	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{}}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})
}
