// Package utils provides small formatting and normalization helpers shared by
// the CLI and the API layer.
package utils

import (
	"fmt"
	"strings"
)

// NormalizeSymbol trims whitespace and uppercases a ticker symbol.
// Symbols are identifiers only; no exchange validation happens here.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// FormatPrice renders a price with exactly two decimal places.
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}

// FormatMarketCap renders a market cap in abbreviated dollar form,
// e.g. 2.8e12 → "$2.80T".
func FormatMarketCap(marketCap float64) string {
	switch {
	case marketCap <= 0:
		return "N/A"
	case marketCap >= 1e12:
		return fmt.Sprintf("$%.2fT", marketCap/1e12)
	case marketCap >= 1e9:
		return fmt.Sprintf("$%.2fB", marketCap/1e9)
	case marketCap >= 1e6:
		return fmt.Sprintf("$%.2fM", marketCap/1e6)
	default:
		return fmt.Sprintf("$%.0f", marketCap)
	}
}
