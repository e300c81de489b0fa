package dto

import (
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// RefreshRatesRequest is the optional body of POST /admin/exchange-rates/refresh.
type RefreshRatesRequest struct {
	BaseCurrency string `json:"base_currency" binding:"omitempty,currencycode"`
}

// IngestionResponse reports the outcome of an ingestion run.
type IngestionResponse struct {
	BaseCurrency      string    `json:"base_currency"`
	RatesUpserted     int       `json:"rates_upserted"`
	CurrenciesCreated int       `json:"currencies_created"`
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
}

// ToIngestionResponse converts a domain.IngestionResult to its response DTO.
func ToIngestionResponse(r *domain.IngestionResult) IngestionResponse {
	return IngestionResponse{
		BaseCurrency:      r.BaseCurrency,
		RatesUpserted:     r.RatesUpserted,
		CurrenciesCreated: r.CurrenciesCreated,
		StartedAt:         r.StartedAt,
		FinishedAt:        r.FinishedAt,
	}
}

// ErrorResponse is the error payload of every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
