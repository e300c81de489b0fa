package repositories

import (
	"context"
)

// TxRepositories groups repositories bound to one database transaction.
type TxRepositories struct {
	Currencies    CurrencyRepositoryFacade
	ExchangeRates ExchangeRateRepositoryFacade
}

// UnitOfWork runs fn inside a single database transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
