package paperfolio

import "strings"

// Closes maps upper-cased symbols to a day's closing prices. It is the
// abstract price capability MarkToMarket consumes; build one from a stock
// day file or straight from a vendor.
type Closes map[string]Money

// Lookup finds the close for a symbol, matching case-insensitively.
func (c Closes) Lookup(symbol string) (Money, bool) {
	price, ok := c[strings.ToUpper(symbol)]
	return price, ok
}

// Set records a close under the normalized symbol.
func (c Closes) Set(symbol string, price Money) {
	c[strings.ToUpper(symbol)] = price
}

// MarkToMarket revalues every non-Cash row against the day's closes, leaving
// cost basis and units untouched. Rows whose symbol has no close are left
// byte-identical and reported as diagnostics; processing continues. Row order
// is preserved, the Cash row is never modified, and the operation is
// idempotent for a fixed price map.
func MarkToMarket(book *Book, closes Closes, day Date) (*Book, []PriceUnavailable) {
	b := book.Clone()
	var stale []PriceUnavailable

	for i, h := range b.holdings {
		if h.IsCash() {
			continue
		}
		price, ok := closes.Lookup(h.Name)
		if !ok {
			stale = append(stale, PriceUnavailable{Symbol: h.Name, Date: day})
			continue
		}
		h.CurrentPrice = price.Round2()
		h.TotalAmount = h.CurrentPrice.Mul(h.Units).Round2()
		h.PerctChange = changeBetween(h.BuyingPrice, h.CurrentPrice)
		b.replace(i, h)
	}
	return b, stale
}
