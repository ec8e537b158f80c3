package paperfolio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func envelope(content string) []byte {
	return []byte(fmt.Sprintf(`{"id":"x","choices":[{"index":0,"message":{"role":"assistant","content":%s},"finish_reason":"stop"}]}`,
		strconv.Quote(content)))
}

func TestDecodeDecision_PlainContent(t *testing.T) {
	content := `{"date":"2026-08-28","daily_summary":"quiet day",
		"trades":[{"action":"buy","symbol":"RELIANCE","shares":10,"amount":1100}]}`

	d, err := DecodeDecision(envelope(content), "test")
	if err != nil {
		t.Fatalf("DecodeDecision() error = %v", err)
	}
	if d.DailySummary != "quiet day" {
		t.Errorf("DailySummary = %q, want %q", d.DailySummary, "quiet day")
	}
	if len(d.Trades) != 1 {
		t.Fatalf("len(Trades) = %d, want 1", len(d.Trades))
	}
	tr := d.Trades[0]
	if tr.Action != ActionBuy || tr.Symbol != "RELIANCE" || !tr.Shares.Equal(Q(10)) || !tr.Amount.Equal(M(1100)) {
		t.Errorf("Trades[0] = %+v", tr)
	}
}

func TestDecodeDecision_FencedContent(t *testing.T) {
	content := "Here is my decision.\n```json\n" +
		`{"trades":[{"action":"sell","symbol":"TCS","shares":2,"amount":110}]}` +
		"\n```\nGood luck."

	d, err := DecodeDecision(envelope(content), "test")
	if err != nil {
		t.Fatalf("DecodeDecision() error = %v", err)
	}
	if len(d.Trades) != 1 || d.Trades[0].Action != ActionSell {
		t.Errorf("Trades = %+v, want one sell", d.Trades)
	}
}

func TestDecodeDecision_BareFence(t *testing.T) {
	content := "```\n{\"trades\":[]}\n```"
	if _, err := DecodeDecision(envelope(content), "test"); err != nil {
		t.Errorf("DecodeDecision() error = %v", err)
	}
}

func TestDecodeDecision_RemoveNeedsOnlySymbol(t *testing.T) {
	content := `{"trades":[{"action":"remove","symbol":"SAIL"}]}`
	d, err := DecodeDecision(envelope(content), "test")
	if err != nil {
		t.Fatalf("DecodeDecision() error = %v", err)
	}
	if d.Trades[0].Action != ActionRemove || d.Trades[0].Symbol != "SAIL" {
		t.Errorf("Trades[0] = %+v", d.Trades[0])
	}
}

func TestDecodeDecision_MissingFieldIsSchemaError(t *testing.T) {
	for _, content := range []string{
		`{"trades":[{"symbol":"TCS","shares":2,"amount":110}]}`,
		`{"trades":[{"action":"buy","shares":2,"amount":110}]}`,
		`{"trades":[{"action":"buy","symbol":"TCS","amount":110}]}`,
		`{"trades":[{"action":"buy","symbol":"TCS","shares":2}]}`,
		`{"trades":[{"action":"short","symbol":"TCS","shares":2,"amount":110}]}`,
	} {
		_, err := DecodeDecision(envelope(content), "test")
		var serr *SchemaError
		if !errors.As(err, &serr) {
			t.Errorf("DecodeDecision(%s) error = %v, want SchemaError", content, err)
		}
	}
}

func TestDecodeDecision_PortfolioPlan(t *testing.T) {
	content := `{"portfolio":{"holdings":["RELIANCE","TCS"],"cash":1234.56}}`
	d, err := DecodeDecision(envelope(content), "test")
	if err != nil {
		t.Fatalf("DecodeDecision() error = %v", err)
	}
	if d.Portfolio == nil {
		t.Fatal("Portfolio = nil")
	}
	if len(d.Portfolio.Holdings) != 2 || !d.Portfolio.Cash.Equal(M(1234.56)) {
		t.Errorf("Portfolio = %+v", d.Portfolio)
	}
}

func TestReplyContent_MissingContentIsSchemaError(t *testing.T) {
	_, err := ReplyContent([]byte(`{"choices":[]}`), "test")
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("ReplyContent() error = %v, want SchemaError", err)
	}
}

func TestReplyContent_NotJSON(t *testing.T) {
	_, err := ReplyContent([]byte("not json at all"), "test")
	if err == nil || !strings.Contains(err.Error(), "not a correct json") {
		t.Fatalf("ReplyContent() error = %v", err)
	}
}
