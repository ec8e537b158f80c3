package paperfolio

import (
	"fmt"
	"strings"
)

// BookText renders the book as the plain block substituted into prompts at
// [Portfolio String].
func BookText(b *Book) string {
	invested := b.Invested()
	total := b.TotalValue()
	change := changeBetween(invested, total)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total Portfolio Value: %s (Invested: %s, Change: %s)\n\n",
		total.Display(), invested.Display(), change.SignedDisplay())
	sb.WriteString("Holdings:\n")
	for _, h := range b.holdings {
		fmt.Fprintf(&sb, "- %s: %s units @ Buy %s, Current %s, Value %s, Change %s\n",
			h.Name, h.Units, h.BuyingPrice.Display(), h.CurrentPrice.Display(),
			h.TotalAmount.Display(), h.PerctChange.SignedDisplay())
	}
	return sb.String()
}

// BookMarkdown renders the book as a markdown report for terminal display.
func BookMarkdown(b *Book, day Date) string {
	invested := b.Invested()
	total := b.TotalValue()
	change := changeBetween(invested, total)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Portfolio %s\n\n", day)
	fmt.Fprintf(&sb, "**Value** %s · **Invested** %s · **Change** %s\n\n",
		total.Display(), invested.Display(), change.SignedDisplay())
	sb.WriteString("| Holding | Units | Buy | Current | Value | Change |\n")
	sb.WriteString("|---|---:|---:|---:|---:|---:|\n")
	for _, h := range b.holdings {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s |\n",
			h.Name, h.Units, h.BuyingPrice.Display(), h.CurrentPrice.Display(),
			h.TotalAmount.Display(), h.PerctChange.SignedDisplay())
	}
	return sb.String()
}

// StocksMarkdown renders the day's quotes as a markdown report.
func StocksMarkdown(quotes []Quote, day Date) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Stocks %s\n\n", day)
	if len(quotes) == 0 {
		sb.WriteString("No stock data for this day (non-trading day?).\n")
		return sb.String()
	}
	sb.WriteString("| Symbol | Category | Open | High | Low | Close | Volume |\n")
	sb.WriteString("|---|---|---:|---:|---:|---:|---:|\n")
	for _, q := range quotes {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s | %s |\n",
			q.Symbol, q.Category, q.Open.Display(), q.High.Display(),
			q.Low.Display(), q.Close.Display(), groupDigits(q.Volume))
	}
	return sb.String()
}
