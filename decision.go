package paperfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// contentPath locates the model's text inside a chat-completion reply envelope.
const contentPath = "$.choices[0].message.content"

// PortfolioPlan is the optional from-scratch snapshot a weekly decision may
// carry: the symbols to hold and the cash left aside.
type PortfolioPlan struct {
	Holdings []string `json:"holdings"`
	Cash     Money    `json:"cash"`
}

// DecisionPayload is the structure the decision source replies with. Trades
// drive the applier; DailySummary and TopSignals feed the Friday digest;
// Portfolio is only present on rebuild-from-scratch decisions.
type DecisionPayload struct {
	Date         Date              `json:"date,omitempty"`
	DailySummary string            `json:"daily_summary,omitempty"`
	TopSignals   []json.RawMessage `json:"top_signals,omitempty"`
	Trades       []Trade           `json:"-"`
	Portfolio    *PortfolioPlan    `json:"portfolio,omitempty"`
}

// DecodeDecision parses a stored chat-completion reply into a decision
// payload. The reply is the raw API envelope; the decision JSON itself sits in
// the message content, possibly wrapped in a markdown code fence. source names
// the file for error messages only.
func DecodeDecision(data []byte, source string) (DecisionPayload, error) {
	content, err := ReplyContent(data, source)
	if err != nil {
		return DecisionPayload{}, err
	}
	return decodeDecisionContent([]byte(unfence(content)), source)
}

// ReplyContent extracts the model's text from a reply envelope.
func ReplyContent(data []byte, source string) (string, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return "", fmt.Errorf("parse error in %s: not a correct json: %w", source, err)
	}
	jval, err := jsonpath.Get(contentPath, jobj)
	if err != nil {
		return "", schemaErrorf(source, "missing reply content at %s: %v", contentPath, err)
	}
	// jsonpath may hand back a single answer or a list of one.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	content, ok := jval.(string)
	if !ok {
		return "", schemaErrorf(source, "reply content at %s is not a string", contentPath)
	}
	return content, nil
}

// unfence returns the body of the first fenced code block in the content, or
// the trimmed content itself when there is no fence. Models habitually wrap
// their JSON in ```json fences.
func unfence(content string) string {
	src := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var fenced string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || fenced != "" {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if lang := string(block.Language(src)); lang != "" && lang != "json" {
			return ast.WalkContinue, nil
		}
		var buf bytes.Buffer
		for i := 0; i < block.Lines().Len(); i++ {
			line := block.Lines().At(i)
			buf.Write(line.Value(src))
		}
		fenced = buf.String()
		return ast.WalkStop, nil
	})

	if fenced != "" {
		return strings.TrimSpace(fenced)
	}
	return strings.TrimSpace(content)
}

// decodeDecisionContent parses the inner decision JSON. Trade fields are
// decoded through pointers so a missing required field is a SchemaError
// rather than a silent zero.
func decodeDecisionContent(data []byte, source string) (DecisionPayload, error) {
	type jtrade struct {
		Action *string   `json:"action"`
		Symbol *string   `json:"symbol"`
		Shares *Quantity `json:"shares"`
		Amount *Money    `json:"amount"`
	}
	var jd struct {
		Date         Date              `json:"date"`
		DailySummary string            `json:"daily_summary"`
		TopSignals   []json.RawMessage `json:"top_signals"`
		Trades       []jtrade          `json:"trades"`
		Portfolio    *PortfolioPlan    `json:"portfolio"`
	}
	if err := json.Unmarshal(data, &jd); err != nil {
		return DecisionPayload{}, fmt.Errorf("parse error in %s: decision content is not valid json: %w", source, err)
	}

	d := DecisionPayload{
		Date:         jd.Date,
		DailySummary: jd.DailySummary,
		TopSignals:   jd.TopSignals,
		Portfolio:    jd.Portfolio,
	}
	for i, jt := range jd.Trades {
		if jt.Action == nil {
			return DecisionPayload{}, schemaErrorf(source, "trade %d has no action", i+1)
		}
		action, err := ParseAction(*jt.Action)
		if err != nil {
			return DecisionPayload{}, schemaErrorf(source, "trade %d: %v", i+1, err)
		}
		if jt.Symbol == nil || *jt.Symbol == "" {
			return DecisionPayload{}, schemaErrorf(source, "trade %d has no symbol", i+1)
		}
		t := Trade{Action: action, Symbol: *jt.Symbol}
		if action != ActionRemove {
			if jt.Shares == nil {
				return DecisionPayload{}, schemaErrorf(source, "trade %d (%s %s) has no shares", i+1, action, t.Symbol)
			}
			if jt.Amount == nil {
				return DecisionPayload{}, schemaErrorf(source, "trade %d (%s %s) has no amount", i+1, action, t.Symbol)
			}
			t.Shares = *jt.Shares
			t.Amount = *jt.Amount
		}
		d.Trades = append(d.Trades, t)
	}
	return d, nil
}
