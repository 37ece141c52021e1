// Package currencyutils turns the free-form amount text of payroll documents
// into decimal values.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes amounts printed to the console.
const CurrencySymbol = "R$"

// ParseAmount strictly parses an amount. Surrounding whitespace is ignored;
// anything else that is not a plain decimal ("100,50", "R$ 10", "abc") is an
// error.
func ParseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s': %w", text, err)
	}
	return amount, nil
}

// Coerce returns the parsed amount, or exactly zero when text is nil, empty
// or unparsable. It never fails.
func Coerce(text *string) decimal.Decimal {
	if text == nil {
		return decimal.Zero
	}
	return CoerceString(*text)
}

// CoerceString is Coerce for a present value.
func CoerceString(text string) decimal.Decimal {
	amount, _ := CoerceReport(text)
	return amount
}

// CoerceReport is CoerceString that also reports whether text parsed. Blank
// text coerces to zero and counts as parsed.
func CoerceReport(text string) (decimal.Decimal, bool) {
	if strings.TrimSpace(text) == "" {
		return decimal.Zero, true
	}
	amount, err := ParseAmount(text)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// FormatAmount renders an amount with two decimals and the currency symbol,
// e.g. "R$ 300.50".
func FormatAmount(amount decimal.Decimal) string {
	return CurrencySymbol + " " + amount.StringFixed(2)
}
