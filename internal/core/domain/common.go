package domain

import (
	"regexp"
	"strings"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// NormalizeCurrencyCode trims and upper-cases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidCurrencyCode reports whether code is exactly three uppercase ASCII letters.
func IsValidCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(code)
}
