package paperfolio

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeBook_HeaderAlwaysPresent(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeBook(&buf, NewBook()); err != nil {
		t.Fatalf("EncodeBook() error = %v", err)
	}
	got := strings.TrimSpace(buf.String())
	want := "Holding Name,Buying Price,Current Price,Number of Units,Total Amount,Perct Change"
	if got != want {
		t.Errorf("empty book = %q, want header only %q", got, want)
	}
}

func TestBook_RoundTrip(t *testing.T) {
	book := NewBook(position("RELIANCE", 105, 110, 20), position("TCS", 50, 48.5, 4), cashRow(M(-600)))

	var buf bytes.Buffer
	if err := EncodeBook(&buf, book); err != nil {
		t.Fatalf("EncodeBook() error = %v", err)
	}
	got, err := DecodeBook(&buf, "test")
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}
	if !got.Equal(book) {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", got, book)
	}
}

func TestDecodeBook_ColumnsByHeaderNotPosition(t *testing.T) {
	in := strings.Join([]string{
		"Perct Change,Holding Name,Buying Price,Current Price,Number of Units,Total Amount",
		"10.00,RELIANCE,100.00,110.00,2.00,220.00",
	}, "\n")

	book, err := DecodeBook(strings.NewReader(in), "test")
	if err != nil {
		t.Fatalf("DecodeBook() error = %v", err)
	}
	h, ok := book.Get("RELIANCE")
	if !ok {
		t.Fatal("RELIANCE not decoded")
	}
	if !h.CurrentPrice.Equal(M(110)) || !h.PerctChange.Equal(Pct(10)) {
		t.Errorf("shuffled columns misread: %+v", h)
	}
}

func TestDecodeBook_MissingColumnIsSchemaError(t *testing.T) {
	in := "Holding Name,Buying Price,Current Price,Number of Units,Total Amount\n"
	_, err := DecodeBook(strings.NewReader(in), "test")
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("DecodeBook() error = %v, want SchemaError", err)
	}
	if !strings.Contains(serr.Msg, "Perct Change") {
		t.Errorf("SchemaError.Msg = %q, want it to name the missing column", serr.Msg)
	}
}

func TestDecodeBook_BadNumberIsSchemaError(t *testing.T) {
	in := strings.Join([]string{
		"Holding Name,Buying Price,Current Price,Number of Units,Total Amount,Perct Change",
		"RELIANCE,abc,110.00,2.00,220.00,0.00",
	}, "\n")
	_, err := DecodeBook(strings.NewReader(in), "test")
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("DecodeBook() error = %v, want SchemaError", err)
	}
}

func TestLoadBook_MissingFileIsNotFound(t *testing.T) {
	_, err := LoadBook(filepath.Join(t.TempDir(), "nope.csv"))
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("LoadBook() error = %v, want NotFoundError", err)
	}
}

func TestSaveBook_LoadBook_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")
	book := NewBook(position("INFY", 150, 155, 3), cashRow(M(42)))

	if err := SaveBook(path, book); err != nil {
		t.Fatalf("SaveBook() error = %v", err)
	}
	got, err := LoadBook(path)
	if err != nil {
		t.Fatalf("LoadBook() error = %v", err)
	}
	if !got.Equal(book) {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", got, book)
	}
}
