package services

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/external"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
)

// ExternalDeps groups the adapters the services talk to outside the database.
type ExternalDeps struct {
	RateProvider     external.RateProvider
	HistoricalSource external.HistoricalRateSource
	Notifiers        []external.RatesRefreshedNotifier
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps ExternalDeps) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo)
	container.Historical = NewHistoricalRateService(deps.HistoricalSource)

	// Favorites only read the registry, they never create currencies.
	container.Favorite = NewFavoriteService(repos.FavoriteRepo, container.Currency)

	container.Ingestion = NewIngestionService(
		deps.RateProvider,
		repos.UnitOfWork,
		cfg.DefaultBaseCurrency(),
		cfg.IngestionTimeout,
		deps.Notifiers,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade     = (*currencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.HistoricalRateSvc     = (*historicalRateService)(nil)
	_ portssvc.FavoriteSvcFacade     = (*favoriteService)(nil)
	_ portssvc.IngestionSvc          = (*ingestionService)(nil)
)
