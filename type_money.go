package paperfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The whole desk trades in a single currency.
const currencyCode = money.INR

// Money represents a rupee amount. The zero value is ₹0.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a plain decimal string such as "1234.50".
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v}, nil
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Mul(q Quantity) Money     { return Money{value: m.value.Mul(q.value)} }

// DivUnits divides the amount by a quantity, yielding a per-unit price.
func (m Money) DivUnits(q Quantity) Money { return Money{value: m.value.Div(q.value)} }

// Round2 rounds the amount to 2 decimal places, the precision every persisted
// monetary field carries.
func (m Money) Round2() Money { return Money{value: m.value.Round(2)} }

// String returns the bare 2-decimal representation, as persisted in CSV.
func (m Money) String() string { return m.value.StringFixed(2) }

// Display formats the amount with the rupee sign for human-facing reports.
func (m Money) Display() string {
	cur := money.GetCurrency(currencyCode)
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), currencyCode).Display()
}

// SignedDisplay is Display with an explicit leading sign for gains/losses.
func (m Money) SignedDisplay() string {
	if m.value.IsNegative() {
		return m.Display()
	}
	return "+" + m.Display()
}

// Decimal exposes the underlying exact value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) MarshalJSON() ([]byte, error)  { return m.value.MarshalJSON() }
func (m *Money) UnmarshalJSON(b []byte) error { return m.value.UnmarshalJSON(b) }
