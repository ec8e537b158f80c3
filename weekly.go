package paperfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// WeeklyText composes the Monday-to-Friday digest fed into the weekend
// training prompt: each day's summary and signals from the archived daily
// replies. friday must actually be a Friday. Days without a usable reply
// render as "No data" rather than failing the digest.
func WeeklyText(s Store, friday Date) (string, error) {
	if friday.Weekday() != time.Friday {
		return "", fmt.Errorf("weekly digest needs a Friday, got %s (%s)", friday, friday.Weekday())
	}

	var sb strings.Builder
	for i := 4; i >= 0; i-- {
		day := friday.Add(-i)
		name := day.Weekday().String()

		d, ok := loadDailyDecision(s, day)
		if !ok {
			fmt.Fprintf(&sb, "%s Summary: No data\n%s Signals: []\n\n", name, name)
			continue
		}

		summary := d.DailySummary
		if summary == "" {
			summary = "No summary"
		}
		signals, err := json.Marshal(d.TopSignals)
		if err != nil || d.TopSignals == nil {
			signals = []byte("[]")
		}
		fmt.Fprintf(&sb, "%s Summary: %s\n%s Signals: %s\n\n", name, summary, name, signals)
	}
	return sb.String(), nil
}

// loadDailyDecision finds the day's decision, trying the daily reply first
// and falling back to a first-timer reply.
func loadDailyDecision(s Store, day Date) (DecisionPayload, bool) {
	for _, kind := range []Kind{KindDaily, KindFirstTimer} {
		d, err := s.LoadDecision(kind, day)
		if err == nil {
			return d, true
		}
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			// Present but unreadable still counts as no data for the digest.
			continue
		}
	}
	return DecisionPayload{}, false
}
