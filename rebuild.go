package paperfolio

import "log"

// Rebuild constructs a fresh book from a decision payload, ignoring any prior
// holdings: the weekly "closed, start over" entry point. Buy instructions are
// replayed from an empty book with the payload's cash as the opening balance,
// then the result is marked to the given closes so carried-over symbols get a
// current price. Symbols the plan names without a matching trade cannot be
// sized and are logged rather than guessed at.
func Rebuild(d DecisionPayload, closes Closes, day Date) (*Book, error) {
	var cash Money
	if d.Portfolio != nil {
		cash = d.Portfolio.Cash
	}

	book, _, err := ApplyTrades(NewBook(), cash, d.Trades)
	if err != nil {
		return nil, err
	}

	if d.Portfolio != nil {
		for _, name := range d.Portfolio.Holdings {
			if _, ok := book.Get(name); !ok && !isCashName(name) {
				log.Printf("rebuild: plan names %s but no trade sizes it, skipping", name)
			}
		}
	}

	book, stale := MarkToMarket(book, closes, day)
	for _, s := range stale {
		log.Print(s)
	}
	return book, nil
}
