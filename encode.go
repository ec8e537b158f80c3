package paperfolio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// This file persists the holdings book as a flat CSV, one row per holding,
// header always present. The write path is all-or-nothing: the whole file is
// rendered in memory first, so a failing row never leaves a partial snapshot
// behind.

// bookColumns is the canonical portfolio header, in order.
var bookColumns = []string{
	"Holding Name", "Buying Price", "Current Price",
	"Number of Units", "Total Amount", "Perct Change",
}

// DecodeBook reads a holdings book from CSV. source names the input for error
// messages only. Column order is taken from the header; a missing required
// column or an unparsable number is a SchemaError.
func DecodeBook(r io.Reader, source string) (*Book, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, schemaErrorf(source, "empty file, expected header %v", bookColumns)
		}
		return nil, fmt.Errorf("cannot read header of %s: %w", source, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range bookColumns {
		if _, ok := col[name]; !ok {
			return nil, schemaErrorf(source, "missing required column %q", name)
		}
	}

	book := NewBook()
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse error %s:%d: %w", source, line, err)
		}

		h := Holding{Name: record[col["Holding Name"]]}
		if h.Name == "" {
			return nil, schemaErrorf(source, "line %d has an empty holding name", line)
		}
		if h.BuyingPrice, err = ParseMoney(record[col["Buying Price"]]); err != nil {
			return nil, schemaErrorf(source, "line %d: bad buying price: %v", line, err)
		}
		if h.CurrentPrice, err = ParseMoney(record[col["Current Price"]]); err != nil {
			return nil, schemaErrorf(source, "line %d: bad current price: %v", line, err)
		}
		if h.Units, err = ParseQuantity(record[col["Number of Units"]]); err != nil {
			return nil, schemaErrorf(source, "line %d: bad number of units: %v", line, err)
		}
		if h.TotalAmount, err = ParseMoney(record[col["Total Amount"]]); err != nil {
			return nil, schemaErrorf(source, "line %d: bad total amount: %v", line, err)
		}
		if h.PerctChange, err = ParsePercent(record[col["Perct Change"]]); err != nil {
			return nil, schemaErrorf(source, "line %d: bad perct change: %v", line, err)
		}
		book.append(h)
	}
	return book, nil
}

// EncodeBook writes the book as CSV, numeric fields at 2 decimals, header
// first even when the book is empty.
func EncodeBook(w io.Writer, b *Book) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(bookColumns); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for _, h := range b.holdings {
		record := []string{
			h.Name,
			h.BuyingPrice.String(),
			h.CurrentPrice.String(),
			h.Units.String(),
			h.TotalAmount.String(),
			h.PerctChange.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write holding %q: %w", h.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadBook reads the book persisted at path. A missing file is a
// NotFoundError, surfaced to the caller rather than papered over.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, What: "portfolio file"}
		}
		return nil, fmt.Errorf("cannot open %q for reading: %w", path, err)
	}
	defer f.Close()
	return DecodeBook(f, path)
}

// SaveBook rewrites the full book at path. The CSV is rendered in memory
// before the file is touched.
func SaveBook(path string, b *Book) error {
	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write portfolio file %q: %w", path, err)
	}
	return nil
}
