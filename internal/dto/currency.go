package dto

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to register a currency (admin).
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"code" binding:"required,currencycode"`
	Name         string `json:"name" binding:"required,max=50"`
	Symbol       string `json:"symbol" binding:"max=5"`
	FlagEmoji    string `json:"flag_emoji" binding:"max=10"`
}

// UpdateCurrencyRequest changes display metadata; omitted fields are kept.
type UpdateCurrencyRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=50"`
	Symbol    *string `json:"symbol" binding:"omitempty,max=5"`
	FlagEmoji *string `json:"flag_emoji" binding:"omitempty,max=10"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol,omitempty"`
	FlagEmoji string `json:"flag_emoji,omitempty"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:      curr.CurrencyCode,
		Name:      curr.Name,
		Symbol:    curr.Symbol,
		FlagEmoji: curr.FlagEmoji,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
