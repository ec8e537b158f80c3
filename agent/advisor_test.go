package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperfolio"
)

func deskWithData(t *testing.T, day paperfolio.Date) paperfolio.Store {
	t.Helper()
	s := paperfolio.Store{Root: t.TempDir()}

	book := paperfolio.NewBook(paperfolio.Holding{
		Name:         "RELIANCE",
		BuyingPrice:  paperfolio.M(100),
		CurrentPrice: paperfolio.M(110),
		Units:        paperfolio.Q(10),
		TotalAmount:  paperfolio.M(1100),
	})
	require.NoError(t, s.SaveBook(day, book))

	require.NoError(t, s.SaveStocks(day, []paperfolio.Quote{{
		Symbol:   "RELIANCE",
		Category: "Mid Cap",
		Date:     day,
		Open:     paperfolio.M(108),
		High:     paperfolio.M(112),
		Low:      paperfolio.M(107),
		Close:    paperfolio.M(110),
		Volume:   123456,
	}}))
	return s
}

func writeTemplate(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func saveDaily(t *testing.T, s paperfolio.Store, day paperfolio.Date, decision string) {
	t.Helper()
	env := fmt.Sprintf(`{"id":"x","choices":[{"index":0,"message":{"role":"assistant","content":%s},"finish_reason":"stop"}]}`,
		strconv.Quote(decision))
	_, err := s.SaveReview(paperfolio.KindDaily, day, []byte(env))
	require.NoError(t, err)
}

func TestBuildPrompt_Daily(t *testing.T) {
	friday := paperfolio.NewDate(2026, time.August, 28)
	s := deskWithData(t, friday)
	saveDaily(t, s, friday.Add(-2), `{"daily_summary":"midweek"}`)

	writeTemplate(t, s.Root, "daily_prompt.txt",
		"Portfolio:\n[Portfolio String]\nData:\n[Stock Data]\nWeek:\n[Prior Week's Signals]\nAs of [Date].")

	a := New(s, "", "")
	prompt, err := a.BuildPrompt(paperfolio.KindDaily, friday)
	require.NoError(t, err)

	assert.Contains(t, prompt, "RELIANCE: 10.00 units")
	assert.Contains(t, prompt, "Stock Data for 2026-08-28")
	assert.Contains(t, prompt, `"daily_summary":"midweek"`)
	assert.Contains(t, prompt, `"date":"2026-08-26"`)
	assert.Contains(t, prompt, "As of 2026-08-28.")
	assert.NotContains(t, prompt, "[Portfolio String]")
	assert.NotContains(t, prompt, "[Stock Data]")
	assert.NotContains(t, prompt, "[Prior Week's Signals]")
	assert.NotContains(t, prompt, "[Date]")
}

func TestBuildPrompt_DailyOnMondayPullsPreviousWeek(t *testing.T) {
	monday := paperfolio.NewDate(2026, time.August, 31)
	s := deskWithData(t, monday)
	// Last Friday's signal must show up; there is nothing from this week yet.
	saveDaily(t, s, monday.Add(-3), `{"daily_summary":"last friday"}`)

	writeTemplate(t, s.Root, "daily_prompt.txt", "[Portfolio String][Stock Data][Prior Week's Signals][Date]")

	a := New(s, "", "")
	prompt, err := a.BuildPrompt(paperfolio.KindDaily, monday)
	require.NoError(t, err)
	assert.Contains(t, prompt, "last friday")
}

func TestBuildPrompt_FirstTimerNeedsNoPortfolio(t *testing.T) {
	day := paperfolio.NewDate(2026, time.August, 28)
	s := paperfolio.Store{Root: t.TempDir()}
	require.NoError(t, s.SaveStocks(day, nil))

	writeTemplate(t, s.Root, "first_timer_prompt.txt", "Fresh start.\n[Stock Data]")

	a := New(s, "", "")
	prompt, err := a.BuildPrompt(paperfolio.KindFirstTimer, day)
	require.NoError(t, err)
	assert.Contains(t, prompt, "No stock data available for 2026-08-28")
}

func TestBuildPrompt_TrainingGathersFiveDays(t *testing.T) {
	friday := paperfolio.NewDate(2026, time.August, 28)
	s := deskWithData(t, friday)
	saveDaily(t, s, friday.Add(-1), `{"daily_summary":"thursday"}`)
	saveDaily(t, s, friday.Add(-4), `{"daily_summary":"monday"}`)

	writeTemplate(t, s.Root, "training_prompt.txt",
		"[Portfolio String]\n[Stock Data]\n[Prior Signals JSON]\n[Date]")

	a := New(s, "", "")
	prompt, err := a.BuildPrompt(paperfolio.KindTraining, friday)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Stock Data for 2026-08-28")
	assert.Contains(t, prompt, "thursday")
	assert.Contains(t, prompt, "monday")
}

func TestBuildPrompt_MissingTemplate(t *testing.T) {
	s := paperfolio.Store{Root: t.TempDir()}
	a := New(s, "", "")
	_, err := a.BuildPrompt(paperfolio.KindDaily, paperfolio.NewDate(2026, time.August, 28))
	assert.Error(t, err)
}

func TestAdvise_RequiresStart(t *testing.T) {
	s := paperfolio.Store{Root: t.TempDir()}
	a := New(s, "", "")
	_, _, err := a.Advise(t.Context(), paperfolio.KindDaily, paperfolio.NewDate(2026, time.August, 28))
	assert.ErrorContains(t, err, "not started")
}
