package domain

import "time"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode  string    `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name          string    `json:"name"`         // e.g., "US Dollar"
	Symbol        string    `json:"symbol"`       // e.g., "$"
	FlagEmoji     string    `json:"flagEmoji"`    // e.g., "🇺🇸"
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// CurrencyDefaults holds the display metadata used when a currency is created implicitly.
type CurrencyDefaults struct {
	Name      string
	Symbol    string
	FlagEmoji string
}

// FallbackCurrencyDefaults uses the code itself for name and symbol, as ingestion does
// for currencies it has never seen.
func FallbackCurrencyDefaults(code string) CurrencyDefaults {
	return CurrencyDefaults{Name: code, Symbol: code}
}

// KnownCurrencyDefaults returns seeded display metadata for well known codes, or the fallback.
func KnownCurrencyDefaults(code string) CurrencyDefaults {
	if d, ok := knownCurrencies[code]; ok {
		return d
	}
	return FallbackCurrencyDefaults(code)
}

var knownCurrencies = map[string]CurrencyDefaults{
	"USD": {Name: "US Dollar", Symbol: "$", FlagEmoji: "🇺🇸"},
	"EUR": {Name: "Euro", Symbol: "€", FlagEmoji: "🇪🇺"},
	"GBP": {Name: "British Pound", Symbol: "£", FlagEmoji: "🇬🇧"},
	"JPY": {Name: "Japanese Yen", Symbol: "¥", FlagEmoji: "🇯🇵"},
}
