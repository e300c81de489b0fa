package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// TxBeginner is implemented by *pgxpool.Pool and by pgxmock pools.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// PgxUnitOfWork hands out repositories bound to one transaction.
type PgxUnitOfWork struct {
	pool TxBeginner
}

func NewPgxUnitOfWork(pool TxBeginner) *PgxUnitOfWork {
	return &PgxUnitOfWork{pool: pool}
}

var _ portsrepo.UnitOfWork = (*PgxUnitOfWork)(nil)

// WithinTx commits when fn returns nil and rolls back on error or panic.
func (u *PgxUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	repos := portsrepo.TxRepositories{
		Currencies:    newPgxCurrencyRepository(tx),
		ExchangeRates: newPgxExchangeRateRepository(tx),
	}
	if err := fn(ctx, repos); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}
