package dto

import (
	"math"
	"strconv"
	"strings"
)

// Decimal is a numeric request field that accepts either a JSON number or a
// numeric string; the historical clients sent both forms. Unparsable input
// decodes to NaN instead of failing the whole body, so the validation layer
// owns the rejection and its message.
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))

	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}

	if raw == "" || raw == "null" {
		*d = Decimal(math.NaN())

		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*d = Decimal(math.NaN())

		return nil
	}

	*d = Decimal(value)

	return nil
}

// Valid reports whether the decoded value is a finite number.
func (d Decimal) Valid() bool {
	value := float64(d)

	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

func (d Decimal) Float64() float64 {
	return float64(d)
}
