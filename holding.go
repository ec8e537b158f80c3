package paperfolio

import (
	"fmt"
	"iter"
	"strings"
)

// CashName is the reserved pseudo-holding representing uninvested funds.
// The cash amount itself lives in the price and total fields, with units
// conventionally 1; the row is matched case-insensitively.
const CashName = "Cash"

// Holding is one row of the portfolio book: a position in a symbol, or the
// Cash pseudo-position.
type Holding struct {
	Name         string
	BuyingPrice  Money
	CurrentPrice Money
	Units        Quantity
	TotalAmount  Money
	PerctChange  Percent
}

// IsCash reports whether the holding is the reserved Cash pseudo-row.
func (h Holding) IsCash() bool { return isCashName(h.Name) }

func isCashName(name string) bool { return strings.EqualFold(name, CashName) }

// cashRow builds the trailing Cash pseudo-row for a balance.
func cashRow(cash Money) Holding {
	amount := cash.Round2()
	return Holding{
		Name:         CashName,
		BuyingPrice:  amount,
		CurrentPrice: amount,
		Units:        Q(1),
		TotalAmount:  amount,
	}
}

// Book is the ordered holdings table for one trading date. Names are unique
// and at most one row is the Cash pseudo-holding.
type Book struct {
	holdings []Holding
}

// NewBook returns a book holding the given rows, in order.
func NewBook(holdings ...Holding) *Book {
	return &Book{holdings: holdings}
}

// Len returns the number of rows, the Cash row included.
func (b *Book) Len() int { return len(b.holdings) }

// All iterates over the rows in book order.
func (b *Book) All() iter.Seq2[int, Holding] {
	return func(yield func(int, Holding) bool) {
		for i, h := range b.holdings {
			if !yield(i, h) {
				return
			}
		}
	}
}

// Get returns the row with that exact name.
func (b *Book) Get(name string) (Holding, bool) {
	i := b.index(name)
	if i < 0 {
		return Holding{}, false
	}
	return b.holdings[i], true
}

func (b *Book) index(name string) int {
	for i, h := range b.holdings {
		if h.Name == name {
			return i
		}
	}
	return -1
}

func (b *Book) append(h Holding)       { b.holdings = append(b.holdings, h) }
func (b *Book) remove(i int)           { b.holdings = append(b.holdings[:i], b.holdings[i+1:]...) }
func (b *Book) replace(i int, h Holding) { b.holdings[i] = h }

// TakeCash removes the Cash pseudo-row and returns its balance, or ₹0 when the
// book has no Cash row.
func (b *Book) TakeCash() Money {
	for i, h := range b.holdings {
		if h.IsCash() {
			cash := h.TotalAmount
			b.remove(i)
			return cash
		}
	}
	return Money{}
}

// TotalValue is the sum of every row's total amount, the portfolio's value.
func (b *Book) TotalValue() Money {
	var total Money
	for _, h := range b.holdings {
		total = total.Add(h.TotalAmount)
	}
	return total
}

// Invested is the sum of cost basis times units across non-Cash rows, the
// capital actually deployed.
func (b *Book) Invested() Money {
	var total Money
	for _, h := range b.holdings {
		if h.IsCash() {
			continue
		}
		total = total.Add(h.BuyingPrice.Mul(h.Units))
	}
	return total
}

// Clone returns an independent copy of the book.
func (b *Book) Clone() *Book {
	rows := make([]Holding, len(b.holdings))
	copy(rows, b.holdings)
	return &Book{holdings: rows}
}

// Validate checks the book invariants: unique names, at most one Cash row,
// non-negative prices, and every total equal to price times units at 2 decimals.
func (b *Book) Validate() error {
	seen := make(map[string]struct{}, len(b.holdings))
	cashRows := 0
	for i, h := range b.holdings {
		if h.Name == "" {
			return schemaErrorf("", "row %d has an empty holding name", i+1)
		}
		if _, dup := seen[h.Name]; dup {
			return schemaErrorf("", "holding %q appears more than once", h.Name)
		}
		seen[h.Name] = struct{}{}
		if h.IsCash() {
			cashRows++
			if cashRows > 1 {
				return schemaErrorf("", "more than one Cash row")
			}
			continue
		}
		if h.BuyingPrice.IsNegative() || h.CurrentPrice.IsNegative() {
			return schemaErrorf("", "holding %q has a negative price", h.Name)
		}
		if want := h.CurrentPrice.Mul(h.Units).Round2(); !h.TotalAmount.Equal(want) {
			return schemaErrorf("", "holding %q total %s does not match price×units %s", h.Name, h.TotalAmount, want)
		}
	}
	return nil
}

// Equal reports whether two books carry identical rows in identical order.
func (b *Book) Equal(o *Book) bool {
	if len(b.holdings) != len(o.holdings) {
		return false
	}
	for i, h := range b.holdings {
		g := o.holdings[i]
		if h.Name != g.Name ||
			!h.BuyingPrice.Equal(g.BuyingPrice) ||
			!h.CurrentPrice.Equal(g.CurrentPrice) ||
			!h.Units.Equal(g.Units) ||
			!h.TotalAmount.Equal(g.TotalAmount) ||
			!h.PerctChange.Equal(g.PerctChange) {
			return false
		}
	}
	return true
}

func (b *Book) String() string {
	var sb strings.Builder
	for _, h := range b.holdings {
		fmt.Fprintf(&sb, "%s %s %s %s %s %s\n",
			h.Name, h.BuyingPrice, h.CurrentPrice, h.Units, h.TotalAmount, h.PerctChange)
	}
	return sb.String()
}
