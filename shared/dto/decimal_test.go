package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelfin/shared/dto"
)

func TestDecimal_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Amount dto.Decimal `json:"amount"`
	}

	t.Run("json number", func(t *testing.T) {
		var p payload

		err := json.Unmarshal([]byte(`{"amount":120.5}`), &p)

		assert.NoError(t, err)
		assert.True(t, p.Amount.Valid())
		assert.Equal(t, 120.5, p.Amount.Float64())
	})

	t.Run("numeric string", func(t *testing.T) {
		var p payload

		err := json.Unmarshal([]byte(`{"amount":"42"}`), &p)

		assert.NoError(t, err)
		assert.True(t, p.Amount.Valid())
		assert.Equal(t, float64(42), p.Amount.Float64())
	})

	t.Run("padded numeric string", func(t *testing.T) {
		var p payload

		err := json.Unmarshal([]byte(`{"amount":" 7.25 "}`), &p)

		assert.NoError(t, err)
		assert.Equal(t, 7.25, p.Amount.Float64())
	})

	t.Run("non numeric string decodes without error but is invalid", func(t *testing.T) {
		var p payload

		err := json.Unmarshal([]byte(`{"amount":"abc"}`), &p)

		assert.NoError(t, err)
		assert.False(t, p.Amount.Valid())
	})

	t.Run("null is invalid", func(t *testing.T) {
		var p payload

		err := json.Unmarshal([]byte(`{"amount":null}`), &p)

		assert.NoError(t, err)
		assert.False(t, p.Amount.Valid())
	})

	t.Run("zero is valid", func(t *testing.T) {
		var p payload

		err := json.Unmarshal([]byte(`{"amount":0}`), &p)

		assert.NoError(t, err)
		assert.True(t, p.Amount.Valid())
		assert.Zero(t, p.Amount.Float64())
	})
}
