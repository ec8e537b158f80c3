package paperfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Kind distinguishes the advisory prompts and their archived replies.
type Kind string

const (
	// KindFirstTimer seeds a brand-new portfolio.
	KindFirstTimer Kind = "f"
	// KindDaily reviews the portfolio against one day's stock data.
	KindDaily Kind = "d"
	// KindTraining is the weekend deep-dive over the past week.
	KindTraining Kind = "t"
)

// ParseKind validates a kind letter.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindFirstTimer, KindDaily, KindTraining:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown prompt kind %q: use f, d or t", s)
	}
}

// Store is the dated flat-file layout the whole desk shares: one stock CSV
// and one portfolio CSV per trading day, plus archived model replies split
// into weekday and weekend folders.
type Store struct {
	Root string
}

const (
	stockDir      = "Stock Files"
	portfolioDir  = "Portfolio Files"
	reviewDir     = "Reviews"
	weekdaySubdir = "Weekdays"
	weekendSubdir = "Weekends"
)

// StockPath returns the OHLCV day-file path for a date.
func (s Store) StockPath(day Date) string {
	return filepath.Join(s.Root, stockDir, day.String()+".csv")
}

// PortfolioPath returns the portfolio snapshot path for a date.
func (s Store) PortfolioPath(day Date) string {
	return filepath.Join(s.Root, portfolioDir, day.String()+".csv")
}

// ReviewPath returns the archived-reply path for a kind and date. Weekday
// replies and weekend replies live in separate folders.
func (s Store) ReviewPath(kind Kind, day Date) string {
	sub := weekendSubdir
	if day.IsWeekday() {
		sub = weekdaySubdir
	}
	return filepath.Join(s.Root, reviewDir, sub, fmt.Sprintf("%s_%s.json", kind, day))
}

// LoadBook reads the portfolio snapshot for a date.
func (s Store) LoadBook(day Date) (*Book, error) { return LoadBook(s.PortfolioPath(day)) }

// SaveBook rewrites the portfolio snapshot for a date, creating the folder on
// first use.
func (s Store) SaveBook(day Date, b *Book) error {
	if err := os.MkdirAll(filepath.Join(s.Root, portfolioDir), 0755); err != nil {
		return err
	}
	return SaveBook(s.PortfolioPath(day), b)
}

// LoadStocks reads the OHLCV day file for a date.
func (s Store) LoadStocks(day Date) ([]Quote, error) { return LoadStocks(s.StockPath(day)) }

// SaveStocks rewrites the OHLCV day file for a date, creating the folder on
// first use.
func (s Store) SaveStocks(day Date, quotes []Quote) error {
	if err := os.MkdirAll(filepath.Join(s.Root, stockDir), 0755); err != nil {
		return err
	}
	return SaveStocks(s.StockPath(day), quotes)
}

// LoadReview reads an archived reply envelope.
func (s Store) LoadReview(kind Kind, day Date) ([]byte, error) {
	path := s.ReviewPath(kind, day)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, What: "review file"}
		}
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	return data, nil
}

// SaveReview archives a reply envelope, creating the folder on first use.
func (s Store) SaveReview(kind Kind, day Date, data []byte) (string, error) {
	path := s.ReviewPath(kind, day)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("cannot write review file %q: %w", path, err)
	}
	return path, nil
}

// LoadDecision reads and decodes the decision carried by an archived reply.
func (s Store) LoadDecision(kind Kind, day Date) (DecisionPayload, error) {
	data, err := s.LoadReview(kind, day)
	if err != nil {
		return DecisionPayload{}, err
	}
	return DecodeDecision(data, s.ReviewPath(kind, day))
}

// Signal is a prior daily decision re-packaged for prompt context: the raw
// decision object with its date attached.
type Signal map[string]any

// PriorSignals collects daily decisions for the dates given, in that order.
// Days without an archived reply are skipped; a malformed archive is skipped
// with its error returned alongside the rest.
func (s Store) PriorSignals(days []Date) ([]Signal, error) {
	var signals []Signal
	var errs error
	for _, day := range days {
		data, err := s.LoadReview(KindDaily, day)
		if err != nil {
			var notFound *NotFoundError
			if errors.As(err, &notFound) {
				continue
			}
			errs = errors.Join(errs, err)
			continue
		}
		content, err := ReplyContent(data, s.ReviewPath(KindDaily, day))
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		var sig Signal
		if err := json.Unmarshal([]byte(unfence(content)), &sig); err != nil {
			errs = errors.Join(errs, fmt.Errorf("bad decision content for %s: %w", day, err))
			continue
		}
		sig["date"] = day.String()
		signals = append(signals, sig)
	}
	return signals, errs
}
