// Package normalize holds the pure conversions shared by the field
// extraction rules and the reconciliation workflow. Every function is
// total: unrecognized input yields nil, never a panic or an error.
package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var reNonAmount = regexp.MustCompile(`[^\d,.-]`)

// Currency converts a Brazilian-formatted currency string ("1.234,56",
// "R$**123,45") to a decimal. Thousands dots are dropped and the decimal
// comma becomes a decimal point. Returns nil for anything unparseable.
func Currency(s string) *decimal.Decimal {
	cleaned := reNonAmount.ReplaceAllString(strings.TrimSpace(s), "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

// Quantity converts a comma-decimal quantity ("123,45", trailing commas
// from scanner noise tolerated) to a decimal. Returns nil when malformed.
func Quantity(s string) *decimal.Decimal {
	return Currency(strings.TrimRight(strings.TrimSpace(s), ","))
}

// Zero returns a fresh zero decimal, used for fields whose absence means
// "confirmed absent" rather than "don't know".
func Zero() *decimal.Decimal {
	z := decimal.Zero
	return &z
}
