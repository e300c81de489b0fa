package dto

import (
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// HistoricalDateLayout is the wire format of historical data points.
const HistoricalDateLayout = "2006-01-02"

// ListExchangeRatesQuery holds the optional list filters.
type ListExchangeRatesQuery struct {
	FromCurrency string `form:"from_currency" binding:"omitempty,currencycode"`
	ToCurrency   string `form:"to_currency" binding:"omitempty,currencycode"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID string           `json:"id"`
	FromCurrency   CurrencyResponse `json:"from_currency"`
	ToCurrency     CurrencyResponse `json:"to_currency"`
	Rate           decimal.Decimal  `json:"rate"`
	LastUpdated    time.Time        `json:"last_updated"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO.
// When the currencies were not joined only their codes are filled in.
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	resp := ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		FromCurrency:   CurrencyResponse{Code: rate.FromCurrencyCode},
		ToCurrency:     CurrencyResponse{Code: rate.ToCurrencyCode},
		Rate:           rate.Rate,
		LastUpdated:    rate.LastUpdated,
	}
	if rate.FromCurrency != nil {
		resp.FromCurrency = ToCurrencyResponse(rate.FromCurrency)
	}
	if rate.ToCurrency != nil {
		resp.ToCurrency = ToCurrencyResponse(rate.ToCurrency)
	}
	return resp
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ConvertCurrencyRequest is the body of POST /exchange-rates/convert.
type ConvertCurrencyRequest struct {
	FromCurrency string           `json:"from_currency" binding:"required,currencycode"`
	ToCurrency   string           `json:"to_currency" binding:"required,currencycode"`
	Amount       *decimal.Decimal `json:"amount" binding:"required"`
}

// ConvertCurrencyResponse echoes the rate and its timestamp so callers can judge staleness.
type ConvertCurrencyResponse struct {
	FromCurrency    string          `json:"from_currency"`
	ToCurrency      string          `json:"to_currency"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	Rate            decimal.Decimal `json:"rate"`
	LastUpdated     time.Time       `json:"last_updated"`
}

// ToConvertCurrencyResponse converts a domain.Conversion to its response DTO.
func ToConvertCurrencyResponse(c *domain.Conversion) ConvertCurrencyResponse {
	return ConvertCurrencyResponse{
		FromCurrency:    c.FromCurrencyCode,
		ToCurrency:      c.ToCurrencyCode,
		Amount:          c.Amount,
		ConvertedAmount: c.ConvertedAmount,
		Rate:            c.Rate,
		LastUpdated:     c.LastUpdated,
	}
}

// HistoricalRatesQuery holds the query of GET /exchange-rates/historical.
// Days is parsed by the handler so that out-of-range values can be clamped.
type HistoricalRatesQuery struct {
	FromCurrency string `form:"from_currency" binding:"required,currencycode"`
	ToCurrency   string `form:"to_currency" binding:"required,currencycode"`
	Days         string `form:"days"`
}

// HistoricalRatePointResponse is one point of the series.
type HistoricalRatePointResponse struct {
	Date string          `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// HistoricalRatesResponse is the body of GET /exchange-rates/historical.
type HistoricalRatesResponse struct {
	FromCurrency   string                        `json:"from_currency"`
	ToCurrency     string                        `json:"to_currency"`
	HistoricalData []HistoricalRatePointResponse `json:"historical_data"`
}

// ToHistoricalRatesResponse builds the historical response.
func ToHistoricalRatesResponse(from, to string, points []domain.HistoricalRatePoint) HistoricalRatesResponse {
	data := make([]HistoricalRatePointResponse, len(points))
	for i, p := range points {
		data[i] = HistoricalRatePointResponse{Date: p.Date.Format(HistoricalDateLayout), Rate: p.Rate}
	}
	return HistoricalRatesResponse{FromCurrency: from, ToCurrency: to, HistoricalData: data}
}
