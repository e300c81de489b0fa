package pgsql

import (
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
)

// Pool is what the provider needs from *pgxpool.Pool.
type Pool interface {
	DBTX
	TxBeginner
}

func NewRepositoryProvider(dbPool Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		FavoriteRepo:     newPgxFavoriteRepository(dbPool),
		UnitOfWork:       NewPgxUnitOfWork(dbPool),
	}
}
