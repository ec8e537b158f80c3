package paperfolio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
)

// A Quote is one end-of-day OHLCV row for a symbol.
type Quote struct {
	Symbol   string
	Category string
	Date     Date
	Open     Money
	High     Money
	Low      Money
	Close    Money
	Volume   int64
}

// stockColumns is the canonical stock day-file header, in order.
var stockColumns = []string{"Symbol", "Category", "Date", "Open", "High", "Low", "Close", "Volume"}

// DecodeStocks reads an OHLCV day file. source names the input for error
// messages only.
func DecodeStocks(r io.Reader, source string) ([]Quote, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, schemaErrorf(source, "empty file, expected header %v", stockColumns)
		}
		return nil, fmt.Errorf("cannot read header of %s: %w", source, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range stockColumns {
		if _, ok := col[name]; !ok {
			return nil, schemaErrorf(source, "missing required column %q", name)
		}
	}

	var quotes []Quote
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse error %s:%d: %w", source, line, err)
		}

		q := Quote{
			Symbol:   record[col["Symbol"]],
			Category: record[col["Category"]],
		}
		if q.Symbol == "" {
			return nil, schemaErrorf(source, "line %d has an empty symbol", line)
		}
		if q.Date, err = ParseDate(record[col["Date"]]); err != nil {
			return nil, schemaErrorf(source, "line %d: %v", line, err)
		}
		for _, f := range []struct {
			name string
			dst  *Money
		}{
			{"Open", &q.Open}, {"High", &q.High}, {"Low", &q.Low}, {"Close", &q.Close},
		} {
			if *f.dst, err = ParseMoney(record[col[f.name]]); err != nil {
				return nil, schemaErrorf(source, "line %d: bad %s price: %v", line, strings.ToLower(f.name), err)
			}
		}
		if q.Volume, err = strconv.ParseInt(record[col["Volume"]], 10, 64); err != nil {
			return nil, schemaErrorf(source, "line %d: bad volume: %v", line, err)
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// EncodeStocks writes the quotes as CSV, header first even for non-trading
// days with no rows.
func EncodeStocks(w io.Writer, quotes []Quote) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(stockColumns); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for _, q := range quotes {
		record := []string{
			q.Symbol,
			q.Category,
			q.Date.String(),
			q.Open.String(),
			q.High.String(),
			q.Low.String(),
			q.Close.String(),
			strconv.FormatInt(q.Volume, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write quote %q: %w", q.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadStocks reads the day file persisted at path. A missing file is a
// NotFoundError: run the fetch first.
func LoadStocks(path string) ([]Quote, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, What: "stock file"}
		}
		return nil, fmt.Errorf("cannot open %q for reading: %w", path, err)
	}
	defer f.Close()
	return DecodeStocks(f, path)
}

// SaveStocks rewrites the full day file at path.
func SaveStocks(path string, quotes []Quote) error {
	var buf bytes.Buffer
	if err := EncodeStocks(&buf, quotes); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write stock file %q: %w", path, err)
	}
	return nil
}

// StockCloses indexes the day's closing prices by symbol for mark-to-market.
// The last row wins on duplicates, matching first-match lookup on a
// de-duplicated file.
func StockCloses(quotes []Quote) Closes {
	closes := make(Closes, len(quotes))
	for _, q := range quotes {
		closes.Set(q.Symbol, q.Close)
	}
	return closes
}

// TopByVolume keeps the n most traded quotes per category, volume descending,
// de-duplicated by symbol. The stable sort keeps vendor order between equal
// volumes so output files are reproducible.
func TopByVolume(quotes []Quote, n int) []Quote {
	sort.SliceStable(quotes, func(i, j int) bool {
		if quotes[i].Category != quotes[j].Category {
			return quotes[i].Category < quotes[j].Category
		}
		return quotes[i].Volume > quotes[j].Volume
	})

	seen := make(map[string]struct{}, len(quotes))
	perCategory := make(map[string]int)
	kept := quotes[:0]
	for _, q := range quotes {
		if _, dup := seen[q.Symbol]; dup {
			continue
		}
		if perCategory[q.Category] >= n {
			continue
		}
		seen[q.Symbol] = struct{}{}
		perCategory[q.Category]++
		kept = append(kept, q)
	}
	return kept
}

// StocksText renders the day's quotes as the prompt-ready block: grouped by
// category, most traded first.
func StocksText(quotes []Quote, day Date) string {
	if len(quotes) == 0 {
		return fmt.Sprintf("No stock data available for %s.", day)
	}

	byCategory := make(map[string][]Quote)
	for _, q := range quotes {
		byCategory[q.Category] = append(byCategory[q.Category], q)
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Stock Data for %s (%d stocks total):\n\n", day, len(quotes))
	for _, c := range categories {
		group := byCategory[c]
		sort.SliceStable(group, func(i, j int) bool { return group[i].Volume > group[j].Volume })
		fmt.Fprintf(&sb, "%s Stocks:\n", c)
		for _, q := range group {
			fmt.Fprintf(&sb, "- %s: O %s, H %s, L %s, C %s, Vol %s\n",
				q.Symbol, q.Open.Display(), q.High.Display(), q.Low.Display(), q.Close.Display(),
				groupDigits(q.Volume))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// groupDigits renders an integer with comma separators.
func groupDigits(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	s = strings.Join(parts, ",")
	if neg {
		return "-" + s
	}
	return s
}
