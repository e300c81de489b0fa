package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// IngestionSvc refreshes the rate ledger from the external provider.
type IngestionSvc interface {
	// RefreshRates pulls a snapshot for baseCode and upserts it. An empty baseCode
	// means the configured default base currency.
	RefreshRates(ctx context.Context, baseCode string) (*domain.IngestionResult, error)
}
