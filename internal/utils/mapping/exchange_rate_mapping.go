package mapping

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:   d.ExchangeRateID,
		FromCurrencyCode: d.FromCurrencyCode,
		ToCurrencyCode:   d.ToCurrencyCode,
		Rate:             d.Rate,
		LastUpdated:      d.LastUpdated,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   m.ExchangeRateID,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		Rate:             m.Rate,
		LastUpdated:      m.LastUpdated,
	}
}

// ToDomainExchangeRateWithCurrencies attaches the joined currency rows.
func ToDomainExchangeRateWithCurrencies(m models.ExchangeRate, from, to models.Currency) domain.ExchangeRate {
	d := ToDomainExchangeRate(m)
	fromCurr := ToDomainCurrency(from)
	toCurr := ToDomainCurrency(to)
	d.FromCurrency = &fromCurr
	d.ToCurrency = &toCurr
	return d
}
