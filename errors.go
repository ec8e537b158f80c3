package paperfolio

import "fmt"

// SchemaError reports a missing or invalid required field in an input table or
// trade instruction. It is fatal: the cycle aborts before any write.
type SchemaError struct {
	Source string // file or payload the bad data came from, may be empty
	Msg    string
}

func (e *SchemaError) Error() string {
	if e.Source == "" {
		return "schema error: " + e.Msg
	}
	return fmt.Sprintf("schema error in %s: %s", e.Source, e.Msg)
}

func schemaErrorf(source, format string, args ...any) *SchemaError {
	return &SchemaError{Source: source, Msg: fmt.Sprintf(format, args...)}
}

// DivisionError reports a zero-share buy or sell. It aborts the whole batch:
// skipping the trade would desync cash from units.
type DivisionError struct {
	Action Action
	Symbol string
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("cannot %s %s: zero shares", e.Action, e.Symbol)
}

// NotFoundError reports a referenced persisted file that does not exist.
type NotFoundError struct {
	Path string
	What string // what the file was expected to hold
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found at %q", e.What, e.Path)
}

// PriceUnavailable records a symbol skipped during mark-to-market because the
// day's price source had no close for it. Non-fatal: the row stays stale.
type PriceUnavailable struct {
	Symbol string
	Date   Date
}

func (p PriceUnavailable) String() string {
	return fmt.Sprintf("no close for %s on %s, row left unchanged", p.Symbol, p.Date)
}
