package paperfolio

import "github.com/shopspring/decimal"

// Percent represents a percentage change, held exactly so persisted values
// round-trip without float noise.
type Percent struct {
	value decimal.Decimal
}

func Pct[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// ParsePercent parses a plain decimal string such as "-3.25".
func ParsePercent(s string) (Percent, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, err
	}
	return Percent{value: v}, nil
}

// changeBetween computes (current-base)/base*100 rounded to 2 decimals.
// By convention the change is 0 when the base is 0.
func changeBetween(base, current Money) Percent {
	if base.IsZero() {
		return Percent{}
	}
	v := current.value.Sub(base.value).Div(base.value).Mul(decimal.NewFromInt(100))
	return Percent{value: v.Round(2)}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool         { return p.value.IsZero() }

// String returns the 2-decimal representation, as persisted in CSV.
func (p Percent) String() string { return p.value.StringFixed(2) }

// SignedDisplay formats the percentage with an explicit sign and % suffix.
func (p Percent) SignedDisplay() string {
	if p.value.IsNegative() {
		return p.String() + "%"
	}
	return "+" + p.String() + "%"
}
