package domain

import "time"

// ProviderResultSuccess is the provider status that marks a usable snapshot.
const ProviderResultSuccess = "success"

// RateSnapshot is a bulk rate quote from the external provider, base -> many targets.
type RateSnapshot struct {
	Result          string
	ErrorType       string
	BaseCode        string
	ConversionRates map[string]float64
	ProviderTime    time.Time
}

// IngestionResult summarises one ingestion run.
type IngestionResult struct {
	BaseCurrency      string
	RatesUpserted     int
	CurrenciesCreated int
	StartedAt         time.Time
	FinishedAt        time.Time
}

// RatesRefreshedEvent is published after an ingestion run commits.
type RatesRefreshedEvent struct {
	BaseCurrency  string            `json:"base_currency"`
	RatesUpserted int               `json:"rates_upserted"`
	Rates         map[string]string `json:"rates"`
	RefreshedAt   time.Time         `json:"refreshed_at"`
}
