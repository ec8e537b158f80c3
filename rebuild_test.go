package paperfolio

import (
	"testing"
	"time"
)

func TestRebuild_StartsFromPlanCash(t *testing.T) {
	day := NewDate(2026, time.August, 28)
	d := DecisionPayload{
		Portfolio: &PortfolioPlan{
			Holdings: []string{"RELIANCE", "TCS"},
			Cash:     M(10000),
		},
		Trades: []Trade{
			{Action: ActionBuy, Symbol: "RELIANCE", Shares: Q(10), Amount: M(1000)},
			{Action: ActionBuy, Symbol: "TCS", Shares: Q(5), Amount: M(2500)},
		},
	}
	closes := Closes{}
	closes.Set("RELIANCE", M(102))

	book, err := Rebuild(d, closes, day)
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	if book.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", book.Len())
	}
	cash, _ := book.Get(CashName)
	if !cash.TotalAmount.Equal(M(6500)) {
		t.Errorf("cash = %s, want 6500.00", cash.TotalAmount)
	}

	rel, _ := book.Get("RELIANCE")
	if !rel.CurrentPrice.Equal(M(102)) || !rel.TotalAmount.Equal(M(1020)) {
		t.Errorf("RELIANCE not marked to close: %+v", rel)
	}
	// No close for TCS, the trade price stands.
	tcs, _ := book.Get("TCS")
	if !tcs.CurrentPrice.Equal(M(500)) || !tcs.TotalAmount.Equal(M(2500)) {
		t.Errorf("TCS = %+v, want trade price kept", tcs)
	}
}

func TestRebuild_IgnoresPriorHoldingsByConstruction(t *testing.T) {
	day := NewDate(2026, time.August, 28)
	d := DecisionPayload{Portfolio: &PortfolioPlan{Cash: M(500)}}

	book, err := Rebuild(d, Closes{}, day)
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if book.Len() != 1 {
		t.Fatalf("Len() = %d, want just the Cash row", book.Len())
	}
	cash, _ := book.Get(CashName)
	if !cash.TotalAmount.Equal(M(500)) {
		t.Errorf("cash = %s, want 500.00", cash.TotalAmount)
	}
}

func TestRebuild_NoPlanMeansZeroCash(t *testing.T) {
	day := NewDate(2026, time.August, 28)
	book, err := Rebuild(DecisionPayload{}, Closes{}, day)
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	cash, _ := book.Get(CashName)
	if !cash.TotalAmount.IsZero() {
		t.Errorf("cash = %s, want 0.00", cash.TotalAmount)
	}
}
