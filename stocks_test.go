package paperfolio

import (
	"strings"
	"testing"
	"time"
)

func quote(symbol, category string, close float64, volume int64) Quote {
	return Quote{
		Symbol:   symbol,
		Category: category,
		Date:     NewDate(2026, time.August, 28),
		Open:     M(close),
		High:     M(close),
		Low:      M(close),
		Close:    M(close),
		Volume:   volume,
	}
}

func TestTopByVolume_CapsPerCategory(t *testing.T) {
	quotes := []Quote{
		quote("A", "Mid Cap", 10, 100),
		quote("B", "Mid Cap", 10, 300),
		quote("C", "Mid Cap", 10, 200),
		quote("X", "Small Cap", 10, 50),
		quote("Y", "Small Cap", 10, 75),
	}

	got := TopByVolume(quotes, 2)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	wantOrder := []string{"B", "C", "Y", "X"}
	for i, q := range got {
		if q.Symbol != wantOrder[i] {
			t.Errorf("got[%d] = %s, want %s", i, q.Symbol, wantOrder[i])
		}
	}
}

func TestTopByVolume_DeduplicatesSymbols(t *testing.T) {
	// TATACHEM sits in both tracked universes; only one row survives.
	quotes := []Quote{
		quote("TATACHEM", "Mid Cap", 10, 900),
		quote("TATACHEM", "Small Cap", 10, 900),
	}
	got := TopByVolume(quotes, 75)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
}

func TestStockCloses_LastRowWins(t *testing.T) {
	closes := StockCloses([]Quote{
		quote("RELIANCE", "Mid Cap", 100, 1),
		quote("reliance", "Mid Cap", 105, 1),
	})
	price, ok := closes.Lookup("RELIANCE")
	if !ok || !price.Equal(M(105)) {
		t.Errorf("Lookup = %s, %v; want 105.00, true", price, ok)
	}
}

func TestStocksText_GroupsByCategoryVolumeDescending(t *testing.T) {
	day := NewDate(2026, time.August, 28)
	text := StocksText([]Quote{
		quote("A", "Mid Cap", 10, 100),
		quote("B", "Mid Cap", 10, 300),
		quote("X", "Small Cap", 10, 50),
	}, day)

	if !strings.Contains(text, "Stock Data for 2026-08-28 (3 stocks total):") {
		t.Errorf("missing header in:\n%s", text)
	}
	if strings.Index(text, "- B:") > strings.Index(text, "- A:") {
		t.Errorf("mid caps not volume descending:\n%s", text)
	}
	if strings.Index(text, "Mid Cap Stocks:") > strings.Index(text, "Small Cap Stocks:") {
		t.Errorf("categories out of order:\n%s", text)
	}
}

func TestStocksText_EmptyDay(t *testing.T) {
	day := NewDate(2026, time.August, 30)
	text := StocksText(nil, day)
	if !strings.Contains(text, "No stock data available for 2026-08-30") {
		t.Errorf("StocksText(nil) = %q", text)
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tc := range tests {
		if got := groupDigits(tc.in); got != tc.want {
			t.Errorf("groupDigits(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
