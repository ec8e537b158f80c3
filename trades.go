package paperfolio

import (
	"fmt"
	"log"
)

// Action is the kind of trade instruction the decision source emits.
type Action string

const (
	// ActionBuy acquires shares, debiting cash by the trade's notional amount.
	ActionBuy Action = "buy"
	// ActionSell disposes shares, crediting cash by the trade's notional amount.
	ActionSell Action = "sell"
	// ActionRemove closes a symbol out of the cycle entirely, with no cash effect.
	ActionRemove Action = "remove"
)

// ParseAction validates an action string from a decision payload.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionBuy, ActionSell, ActionRemove:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unknown trade action %q", s)
	}
}

func (a Action) String() string { return string(a) }

// Trade is one externally supplied instruction: move Amount of cash for
// Shares units of Symbol. Amount/Shares is the effective trade price.
type Trade struct {
	Action Action
	Symbol string
	Shares Quantity
	Amount Money
}

// price is the effective per-unit trade price, rounded to 2 decimals.
// Shares must be non-zero; callers check first and fail the batch.
func (t Trade) price() Money { return t.Amount.DivUnits(t.Shares).Round2() }

// ApplyTrades replays trade instructions into a book, strictly in input order:
// a buy-then-sell pair on one symbol prices differently than the reverse, so
// the caller's sequence is preserved. The input book must be cash-free (take
// the Cash row off first); the returned book ends with a freshly derived Cash
// row and the final balance is also returned separately.
//
// Oversell is permitted and silently deletes the position; cash may go
// negative; negative shares or amounts are not rejected. The only fatal trade
// errors are a missing required field (SchemaError) and zero shares on a buy
// or sell (DivisionError), both of which abort the whole batch.
func ApplyTrades(book *Book, cash Money, trades []Trade) (*Book, Money, error) {
	if _, ok := book.Get(CashName); ok {
		return nil, Money{}, schemaErrorf("", "input book still carries a Cash row; take it off first")
	}

	b := book.Clone()
	excluded := make(map[string]struct{})

	for _, t := range trades {
		if err := t.check(); err != nil {
			return nil, Money{}, err
		}
		if _, gone := excluded[t.Symbol]; gone {
			log.Printf("skip %s %s: symbol was removed earlier in this cycle", t.Action, t.Symbol)
			continue
		}

		switch t.Action {
		case ActionRemove:
			if i := b.index(t.Symbol); i >= 0 {
				b.remove(i)
			}
			excluded[t.Symbol] = struct{}{}

		case ActionSell:
			amount := t.Amount.Round2()
			price := t.price()
			cash = cash.Add(amount)
			i := b.index(t.Symbol)
			if i < 0 {
				// The cash still moved; a quirk of the decision source this
				// desk preserves rather than corrects.
				log.Printf("sell %s: not held, cash credited anyway", t.Symbol)
				continue
			}
			h := b.holdings[i]
			h.Units = h.Units.Sub(t.Shares)
			if !h.Units.IsPositive() {
				b.remove(i)
				continue
			}
			h.CurrentPrice = price
			h.TotalAmount = price.Mul(h.Units).Round2()
			h.PerctChange = changeBetween(h.BuyingPrice, price)
			b.replace(i, h)

		case ActionBuy:
			amount := t.Amount.Round2()
			price := t.price()
			cash = cash.Sub(amount)
			i := b.index(t.Symbol)
			if i < 0 {
				b.append(Holding{
					Name:         t.Symbol,
					BuyingPrice:  price,
					CurrentPrice: price,
					Units:        t.Shares,
					TotalAmount:  amount,
				})
				continue
			}
			// Adding to a position recomputes the quantity-weighted cost basis.
			h := b.holdings[i]
			oldCost := h.BuyingPrice.Mul(h.Units).Round2()
			h.Units = h.Units.Add(t.Shares)
			h.BuyingPrice = oldCost.Add(amount).DivUnits(h.Units).Round2()
			h.CurrentPrice = price
			h.TotalAmount = price.Mul(h.Units).Round2()
			h.PerctChange = changeBetween(h.BuyingPrice, price)
			b.replace(i, h)
		}
	}

	cash = cash.Round2()
	b.append(cashRow(cash))
	return b, cash, nil
}

// check enforces the schema of a single instruction. Negative quantities and
// amounts pass through unvalidated, matching the decision source's contract.
func (t Trade) check() error {
	if t.Symbol == "" {
		return schemaErrorf("", "trade has no symbol")
	}
	if _, err := ParseAction(string(t.Action)); err != nil {
		return schemaErrorf("", "trade %s: %v", t.Symbol, err)
	}
	if t.Action == ActionRemove {
		return nil
	}
	if t.Shares.IsZero() {
		return &DivisionError{Action: t.Action, Symbol: t.Symbol}
	}
	return nil
}
