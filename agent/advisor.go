// Package agent sends the advisory prompts to the model and archives the
// replies in the desk's review folders.
//
// Prompts are plain text templates with placeholders; the advisor fills them
// from the day's files and prior archived replies, sends the result as a
// single-turn chat, and stores the reply as a chat-completion envelope so the
// decision decoder reads old and new archives alike.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"paperfolio"
)

// Placeholders recognized in the prompt templates.
const (
	placeholderPortfolio   = "[Portfolio String]"
	placeholderStockData   = "[Stock Data]"
	placeholderSignals     = "[Prior Signals JSON]"
	placeholderWeekSignals = "[Prior Week's Signals]"
	placeholderDate        = "[Date]"
)

// DefaultModel is the model used when the config names none.
const DefaultModel = "gemini-2.5-pro"

// Advisor builds, sends and archives advisory prompts.
type Advisor struct {
	Store     paperfolio.Store
	PromptDir string // directory holding the *_prompt.txt templates
	Model     string

	client *genai.Client
}

// New returns an advisor over the given store. Templates are looked up in
// promptDir, or the store root when empty.
func New(s paperfolio.Store, promptDir, model string) *Advisor {
	if promptDir == "" {
		promptDir = s.Root
	}
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{Store: s, PromptDir: promptDir, Model: model}
}

// Start creates the generative AI client. apiKey may be empty when the
// environment already carries the credentials.
func (a *Advisor) Start(ctx context.Context, apiKey string) error {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("cannot create genai client: %w", err)
	}
	a.client = client
	return nil
}

// templateName maps a prompt kind to its template file.
func templateName(kind paperfolio.Kind) string {
	switch kind {
	case paperfolio.KindFirstTimer:
		return "first_timer_prompt.txt"
	case paperfolio.KindDaily:
		return "daily_prompt.txt"
	case paperfolio.KindTraining:
		return "training_prompt.txt"
	}
	return ""
}

// BuildPrompt loads the template for kind and fills every placeholder from
// the store's files for day.
func (a *Advisor) BuildPrompt(kind paperfolio.Kind, day paperfolio.Date) (string, error) {
	name := templateName(kind)
	if name == "" {
		return "", fmt.Errorf("unknown prompt kind %q", kind)
	}
	path := filepath.Join(a.PromptDir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read prompt template %q: %w", path, err)
	}
	prompt := strings.TrimSpace(string(raw))

	// First-timer prompts have no portfolio yet.
	if kind != paperfolio.KindFirstTimer {
		book, err := a.Store.LoadBook(day)
		if err != nil {
			return "", err
		}
		prompt = strings.Replace(prompt, placeholderPortfolio, paperfolio.BookText(book), 1)
	}

	switch kind {
	case paperfolio.KindTraining:
		prompt = strings.Replace(prompt, placeholderStockData, a.weekStockText(day), 1)

		signals, err := a.Store.PriorSignals(lookback(day, 5))
		if err != nil {
			log.Printf("some prior signals unreadable: %v", err)
		}
		prompt = strings.Replace(prompt, placeholderSignals, marshalSignals(signals), 1)
		prompt = strings.Replace(prompt, placeholderDate, day.String(), 1)

	default:
		quotes, err := a.Store.LoadStocks(day)
		if err != nil {
			return "", err
		}
		prompt = strings.Replace(prompt, placeholderStockData, paperfolio.StocksText(quotes, day), 1)

		if kind == paperfolio.KindDaily {
			signals, err := a.Store.PriorSignals(weekSoFar(day))
			if err != nil {
				log.Printf("some prior signals unreadable: %v", err)
			}
			prompt = strings.Replace(prompt, placeholderWeekSignals, marshalSignals(signals), 1)
			prompt = strings.Replace(prompt, placeholderDate, day.String(), 1)
		}
	}
	return prompt, nil
}

// weekStockText concatenates the stock blocks of the past five calendar days,
// newest first. Non-trading days simply have no file and are skipped.
func (a *Advisor) weekStockText(day paperfolio.Date) string {
	var sb strings.Builder
	for _, d := range lookback(day, 5) {
		quotes, err := a.Store.LoadStocks(d)
		if err != nil {
			log.Printf("no stock data for %s: %v", d, err)
			continue
		}
		sb.WriteString(paperfolio.StocksText(quotes, d))
		sb.WriteString("\n")
	}
	return sb.String()
}

// lookback returns day and the n-1 calendar days before it, newest first.
func lookback(day paperfolio.Date, n int) []paperfolio.Date {
	days := make([]paperfolio.Date, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, day.Add(-i))
	}
	return days
}

// weekSoFar returns the trading week's days from Monday up to day, oldest
// first. On a Monday there is nothing yet, so the previous week is returned
// instead.
func weekSoFar(day paperfolio.Date) []paperfolio.Date {
	if day.Weekday() == time.Monday {
		day = day.Add(-3) // previous Friday
	}
	var days []paperfolio.Date
	for d := day.Monday(); !d.After(day); d = d.Add(1) {
		days = append(days, d)
	}
	return days
}

func marshalSignals(signals []paperfolio.Signal) string {
	if signals == nil {
		signals = []paperfolio.Signal{}
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// temperature per prompt kind: the weekend deep-dive runs slightly warmer.
func temperature(kind paperfolio.Kind) float32 {
	if kind == paperfolio.KindTraining {
		return 0.35
	}
	return 0.3
}

// Advise builds the prompt for kind and day, sends it, archives the reply and
// returns the archive path together with the model's text.
func (a *Advisor) Advise(ctx context.Context, kind paperfolio.Kind, day paperfolio.Date) (path, content string, err error) {
	if a.client == nil {
		return "", "", fmt.Errorf("advisor not started")
	}
	prompt, err := a.BuildPrompt(kind, day)
	if err != nil {
		return "", "", err
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature(kind)),
	})
	if err != nil {
		return "", "", fmt.Errorf("model call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", "", fmt.Errorf("empty response from model %s", a.Model)
	}
	content = resp.Candidates[0].Content.Parts[0].Text

	data, err := encodeEnvelope(a.Model, content)
	if err != nil {
		return "", "", err
	}
	path, err = a.Store.SaveReview(kind, day, data)
	if err != nil {
		return "", "", err
	}
	return path, content, nil
}

// encodeEnvelope wraps the model's text in a chat-completion reply envelope,
// the shape every archived review carries.
func encodeEnvelope(model, content string) ([]byte, error) {
	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	type choice struct {
		Index        int     `json:"index"`
		Message      message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	}
	envelope := struct {
		ID      string   `json:"id"`
		Object  string   `json:"object"`
		Created int64    `json:"created"`
		Model   string   `json:"model"`
		Choices []choice `json:"choices"`
	}{
		ID:      uuid.NewString(),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   model,
		Choices: []choice{{
			Message:      message{Role: "assistant", Content: content},
			FinishReason: "stop",
		}},
	}
	return json.MarshalIndent(envelope, "", "  ")
}
