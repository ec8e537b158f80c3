// Package paperfolio implements the bookkeeping core of a small end-of-day
// paper-trading desk for NSE mid-cap and small-cap stocks.
//
// The desk operates on dated flat files: one OHLCV snapshot per trading day,
// one portfolio snapshot per trading day, and one archived model reply per
// advisory request. This package owns the parts with actual invariants:
//   - Book: the ordered holdings table, with its reserved Cash pseudo-row.
//   - ApplyTrades: replaying externally supplied buy/sell/remove instructions
//     into a book, maintaining weighted-average cost basis and the cash balance.
//   - MarkToMarket: revaluing held positions against a day's closing prices
//     without touching cost basis or quantities.
//   - CSV codecs for the portfolio and stock day files, and decoding of the
//     trade-decision payloads carried inside chat-completion reply envelopes.
//
// Market-data vendors live in the nse and yahoo subpackages behind the Quoter
// capability; the advisory round trip lives in the agent subpackage. The pfa
// command-line tool wires them together.
package paperfolio
