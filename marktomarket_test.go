package paperfolio

import (
	"testing"
	"time"
)

func TestMarkToMarket_RevaluesHoldings(t *testing.T) {
	day := NewDate(2026, time.August, 28)
	book := NewBook(position("RELIANCE", 100, 100, 10), cashRow(M(250)))
	closes := Closes{}
	closes.Set("RELIANCE", M(120))

	got, stale := MarkToMarket(book, closes, day)
	if len(stale) != 0 {
		t.Fatalf("stale = %v, want none", stale)
	}

	h, _ := got.Get("RELIANCE")
	if !h.BuyingPrice.Equal(M(100)) {
		t.Errorf("BuyingPrice = %s, want 100.00 (basis untouched)", h.BuyingPrice)
	}
	if !h.Units.Equal(Q(10)) {
		t.Errorf("Units = %s, want 10.00 (units untouched)", h.Units)
	}
	if !h.CurrentPrice.Equal(M(120)) {
		t.Errorf("CurrentPrice = %s, want 120.00", h.CurrentPrice)
	}
	if !h.TotalAmount.Equal(M(1200)) {
		t.Errorf("TotalAmount = %s, want 1200.00", h.TotalAmount)
	}
	if !h.PerctChange.Equal(Pct(20)) {
		t.Errorf("PerctChange = %s, want 20.00", h.PerctChange)
	}
}

func TestMarkToMarket_CashRowUntouched(t *testing.T) {
	day := NewDate(2026, time.August, 28)
	book := NewBook(cashRow(M(500)))
	closes := Closes{}
	closes.Set("Cash", M(1)) // even a rogue "Cash" close must not apply

	got, stale := MarkToMarket(book, closes, day)
	if len(stale) != 0 {
		t.Fatalf("stale = %v, want none", stale)
	}
	h, _ := got.Get(CashName)
	if !h.TotalAmount.Equal(M(500)) {
		t.Errorf("Cash total = %s, want 500.00", h.TotalAmount)
	}
}

func TestMarkToMarket_MissingCloseLeavesRowAndReports(t *testing.T) {
	day := NewDate(2026, time.August, 28)
	book := NewBook(position("RELIANCE", 100, 110, 10), position("TCS", 50, 52, 4))
	closes := Closes{}
	closes.Set("RELIANCE", M(120))

	got, stale := MarkToMarket(book, closes, day)
	if len(stale) != 1 || stale[0].Symbol != "TCS" {
		t.Fatalf("stale = %v, want exactly TCS", stale)
	}

	h, _ := got.Get("TCS")
	want, _ := book.Get("TCS")
	if !h.CurrentPrice.Equal(want.CurrentPrice) || !h.TotalAmount.Equal(want.TotalAmount) {
		t.Errorf("TCS row changed without a close: %+v", h)
	}
}

func TestMarkToMarket_LookupIsCaseInsensitive(t *testing.T) {
	day := NewDate(2026, time.August, 28)
	book := NewBook(position("Reliance", 100, 100, 1))
	closes := Closes{}
	closes.Set("reliance", M(105))

	got, stale := MarkToMarket(book, closes, day)
	if len(stale) != 0 {
		t.Fatalf("stale = %v, want none", stale)
	}
	h, _ := got.Get("Reliance")
	if !h.CurrentPrice.Equal(M(105)) {
		t.Errorf("CurrentPrice = %s, want 105.00", h.CurrentPrice)
	}
}

func TestMarkToMarket_Idempotent(t *testing.T) {
	day := NewDate(2026, time.August, 28)
	book := NewBook(position("RELIANCE", 100, 100, 10), position("TCS", 50, 52, 4), cashRow(M(10)))
	closes := Closes{}
	closes.Set("RELIANCE", M(117.352)) // rounds to 117.35 on first pass

	once, _ := MarkToMarket(book, closes, day)
	twice, _ := MarkToMarket(once, closes, day)
	if !once.Equal(twice) {
		t.Errorf("second pass changed the book:\n%s\nvs\n%s", once, twice)
	}
}
