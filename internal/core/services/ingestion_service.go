package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/external"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

type targetRate struct {
	code string
	rate decimal.Decimal
}

type ingestionService struct {
	BaseService
	provider    external.RateProvider
	uow         portsrepo.UnitOfWork
	notifiers   []external.RatesRefreshedNotifier
	defaultBase string
	runTimeout  time.Duration
	runs        singleflight.Group
}

// NewIngestionService wires the provider, the transactional store and the post-commit notifiers.
// A positive runTimeout bounds every run regardless of which caller started it.
func NewIngestionService(
	provider external.RateProvider,
	uow portsrepo.UnitOfWork,
	defaultBase string,
	runTimeout time.Duration,
	notifiers []external.RatesRefreshedNotifier,
	options ...ServiceOption,
) portssvc.IngestionSvc {
	return &ingestionService{
		BaseService: newBaseService(options...),
		provider:    provider,
		uow:         uow,
		notifiers:   notifiers,
		defaultBase: domain.NormalizeCurrencyCode(defaultBase),
		runTimeout:  runTimeout,
	}
}

// RefreshRates runs one ingestion for baseCode. Concurrent calls for the same base
// share a single provider call and transaction. The shared run is detached from the
// callers' cancellation, so a caller giving up only ends its own wait.
func (s *ingestionService) RefreshRates(ctx context.Context, baseCode string) (*domain.IngestionResult, error) {
	if baseCode == "" {
		baseCode = s.defaultBase
	}
	base, err := normalizeCode("base_currency", baseCode)
	if err != nil {
		return nil, err
	}

	runs := s.runs.DoChan(base, func() (any, error) {
		runCtx := context.WithoutCancel(ctx)
		if s.runTimeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(runCtx, s.runTimeout)
			defer cancel()
		}
		return s.refresh(runCtx, base)
	})

	select {
	case <-ctx.Done():
		s.LogInfo(ctx, "Stopped waiting for ingestion run", slog.String("base_currency", base))
		return nil, fmt.Errorf("waiting for ingestion of %s: %w", base, ctx.Err())
	case res := <-runs:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.LogDebug(ctx, "Ingestion run coalesced", slog.String("base_currency", base))
		}
		result := *res.Val.(*domain.IngestionResult)
		return &result, nil
	}
}

func (s *ingestionService) refresh(ctx context.Context, base string) (*domain.IngestionResult, error) {
	logger := s.GetLogger(ctx).With(slog.String("base_currency", base), slog.String("provider", s.provider.Name()))
	startedAt := s.Now()

	snapshot, err := s.provider.FetchLatestRates(ctx, base)
	if err != nil {
		logger.Error("Failed to fetch rates", slog.String("error", err.Error()))
		if errors.Is(err, apperrors.ErrMissingConfiguration) || errors.Is(err, apperrors.ErrUpstream) {
			return nil, err
		}
		return nil, apperrors.NewUpstreamError("failed to fetch rates from "+s.provider.Name(), err)
	}

	targets, err := validateSnapshot(base, snapshot)
	if err != nil {
		logger.Error("Rejected provider snapshot", slog.String("error", err.Error()))
		return nil, err
	}

	result := &domain.IngestionResult{BaseCurrency: base, StartedAt: startedAt}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		result.RatesUpserted = 0
		result.CurrenciesCreated = 0
		currencySvc := NewCurrencyService(repos.Currencies, WithClock(s.Now))
		rateSvc := NewExchangeRateService(repos.ExchangeRates, WithClock(s.Now))

		_, created, err := currencySvc.GetOrCreateCurrency(ctx, base, domain.KnownCurrencyDefaults(base))
		if err != nil {
			return err
		}
		if created {
			result.CurrenciesCreated++
		}

		for _, target := range targets {
			if target.code == base {
				continue
			}
			_, created, err := currencySvc.GetOrCreateCurrency(ctx, target.code, domain.FallbackCurrencyDefaults(target.code))
			if err != nil {
				return err
			}
			if created {
				result.CurrenciesCreated++
			}
			if _, err := rateSvc.UpsertExchangeRate(ctx, base, target.code, target.rate); err != nil {
				return err
			}
			result.RatesUpserted++
		}
		return nil
	})
	if err != nil {
		logger.Error("Ingestion run rolled back", slog.String("error", err.Error()))
		return nil, err
	}
	result.FinishedAt = s.Now()

	logger.Info("Ingestion run committed",
		slog.Int("rates_upserted", result.RatesUpserted),
		slog.Int("currencies_created", result.CurrenciesCreated),
		slog.Duration("duration", result.FinishedAt.Sub(result.StartedAt)))

	s.notify(ctx, logger, base, targets, result)
	return result, nil
}

func (s *ingestionService) notify(ctx context.Context, logger *slog.Logger, base string, targets []targetRate, result *domain.IngestionResult) {
	if len(s.notifiers) == 0 {
		return
	}
	event := domain.RatesRefreshedEvent{
		BaseCurrency:  base,
		RatesUpserted: result.RatesUpserted,
		Rates:         make(map[string]string, len(targets)),
		RefreshedAt:   result.FinishedAt,
	}
	for _, target := range targets {
		if target.code != base {
			event.Rates[target.code] = target.rate.String()
		}
	}
	for _, n := range s.notifiers {
		if err := n.NotifyRatesRefreshed(ctx, event); err != nil {
			logger.Warn("Failed to publish rates refreshed event", slog.String("error", err.Error()))
		}
	}
}

// validateSnapshot turns a provider snapshot into targets sorted by code, each rate
// rounded to RatePrecision digits. Any bad entry rejects the whole snapshot.
func validateSnapshot(base string, snapshot *domain.RateSnapshot) ([]targetRate, error) {
	if snapshot == nil {
		return nil, apperrors.NewUpstreamError("provider returned no data", nil)
	}
	if snapshot.Result != domain.ProviderResultSuccess {
		errorType := snapshot.ErrorType
		if errorType == "" {
			errorType = "unknown-error"
		}
		return nil, apperrors.NewUpstreamError("provider reported failure: "+errorType, nil)
	}
	if snapshot.ConversionRates == nil {
		return nil, apperrors.NewUpstreamError("provider response is missing conversion_rates", nil)
	}
	if snapshot.BaseCode != "" && domain.NormalizeCurrencyCode(snapshot.BaseCode) != base {
		return nil, apperrors.NewUpstreamError("provider answered for base "+snapshot.BaseCode+" instead of "+base, nil)
	}

	targets := make([]targetRate, 0, len(snapshot.ConversionRates))
	for rawCode, value := range snapshot.ConversionRates {
		code := domain.NormalizeCurrencyCode(rawCode)
		if !domain.IsValidCurrencyCode(code) {
			return nil, apperrors.NewUpstreamError("provider returned invalid currency code "+rawCode, nil)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
			return nil, apperrors.NewUpstreamError("provider returned invalid rate for "+code, nil)
		}
		rate := decimal.NewFromFloat(value).Round(domain.RatePrecision)
		if !rate.IsPositive() {
			return nil, apperrors.NewUpstreamError("provider rate for "+code+" rounds to zero", nil)
		}
		targets = append(targets, targetRate{code: code, rate: rate})
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].code < targets[j].code })
	return targets, nil
}
