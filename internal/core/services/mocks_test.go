package services_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SearchCurrencies(ctx context.Context, query string) ([]domain.Currency, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) GetOrCreateCurrency(ctx context.Context, code string, defaults domain.CurrencyDefaults, now time.Time) (*domain.Currency, bool, error) {
	args := m.Called(ctx, code, defaults, now)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Currency), args.Bool(1), args.Error(2)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	return m.Called(ctx, currency).Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	return m.Called(ctx, currency).Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, filter domain.ExchangeRateFilter) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) UpsertExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Mock FavoriteRepository ---
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) FindFavoriteByID(ctx context.Context, id string) (*domain.FavoriteCurrencyPair, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoriteCurrencyPair), args.Error(1)
}

func (m *MockFavoriteRepository) ListFavoritesByUser(ctx context.Context, userID string) ([]domain.FavoriteCurrencyPair, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FavoriteCurrencyPair), args.Error(1)
}

func (m *MockFavoriteRepository) FavoriteExists(ctx context.Context, userID, from, to string) (bool, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) SaveFavorite(ctx context.Context, fav domain.FavoriteCurrencyPair) error {
	return m.Called(ctx, fav).Error(0)
}

func (m *MockFavoriteRepository) DeleteFavorite(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// --- In-memory store with transactional semantics ---

type memStore struct {
	currencies map[string]domain.Currency
	seq        map[string]int
	rates      map[string]domain.ExchangeRate
	next       int

	// failUpsertTo makes UpsertExchangeRate fail for that target code.
	failUpsertTo string
}

func newMemStore() *memStore {
	return &memStore{
		currencies: map[string]domain.Currency{},
		seq:        map[string]int{},
		rates:      map[string]domain.ExchangeRate{},
	}
}

func pairKey(from, to string) string { return from + "/" + to }

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.currencies {
		c.currencies[k] = v
	}
	for k, v := range s.seq {
		c.seq[k] = v
	}
	for k, v := range s.rates {
		c.rates[k] = v
	}
	c.next = s.next
	c.failUpsertTo = s.failUpsertTo
	return c
}

type memCurrencyRepo struct{ s *memStore }

func (r *memCurrencyRepo) FindCurrencyByCode(_ context.Context, code string) (*domain.Currency, error) {
	c, ok := r.s.currencies[code]
	if !ok {
		return nil, apperrors.NewNotFoundError("currency " + code + " not found")
	}
	return &c, nil
}

func (r *memCurrencyRepo) SearchCurrencies(_ context.Context, query string) ([]domain.Currency, error) {
	res := []domain.Currency{}
	q := strings.ToLower(query)
	for _, c := range r.s.currencies {
		if strings.Contains(strings.ToLower(c.CurrencyCode), q) || strings.Contains(strings.ToLower(c.Name), q) {
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return r.s.seq[res[i].CurrencyCode] < r.s.seq[res[j].CurrencyCode] })
	return res, nil
}

func (r *memCurrencyRepo) GetOrCreateCurrency(ctx context.Context, code string, d domain.CurrencyDefaults, now time.Time) (*domain.Currency, bool, error) {
	if _, ok := r.s.currencies[code]; ok {
		c, err := r.FindCurrencyByCode(ctx, code)
		return c, false, err
	}
	if err := r.SaveCurrency(ctx, domain.Currency{CurrencyCode: code, Name: d.Name, Symbol: d.Symbol, FlagEmoji: d.FlagEmoji, CreatedAt: now, LastUpdatedAt: now}); err != nil {
		return nil, false, err
	}
	c, err := r.FindCurrencyByCode(ctx, code)
	return c, true, err
}

func (r *memCurrencyRepo) SaveCurrency(_ context.Context, c domain.Currency) error {
	if _, ok := r.s.currencies[c.CurrencyCode]; ok {
		return apperrors.NewConflictError("currency already exists")
	}
	r.s.next++
	r.s.seq[c.CurrencyCode] = r.s.next
	r.s.currencies[c.CurrencyCode] = c
	return nil
}

func (r *memCurrencyRepo) UpdateCurrency(_ context.Context, c domain.Currency) error {
	if _, ok := r.s.currencies[c.CurrencyCode]; !ok {
		return apperrors.NewNotFoundError("currency not found")
	}
	r.s.currencies[c.CurrencyCode] = c
	return nil
}

func (r *memCurrencyRepo) DeleteCurrency(_ context.Context, code string) error {
	if _, ok := r.s.currencies[code]; !ok {
		return apperrors.NewNotFoundError("currency not found")
	}
	delete(r.s.currencies, code)
	for k, rate := range r.s.rates {
		if rate.FromCurrencyCode == code || rate.ToCurrencyCode == code {
			delete(r.s.rates, k)
		}
	}
	return nil
}

type memRateRepo struct{ s *memStore }

func (r *memRateRepo) FindExchangeRate(_ context.Context, from, to string) (*domain.ExchangeRate, error) {
	rate, ok := r.s.rates[pairKey(from, to)]
	if !ok {
		return nil, apperrors.NewNotFoundError("exchange rate not found")
	}
	return &rate, nil
}

func (r *memRateRepo) ListExchangeRates(_ context.Context, filter domain.ExchangeRateFilter) ([]domain.ExchangeRate, error) {
	res := []domain.ExchangeRate{}
	for _, rate := range r.s.rates {
		if filter.FromCurrencyCode != nil && rate.FromCurrencyCode != *filter.FromCurrencyCode {
			continue
		}
		if filter.ToCurrencyCode != nil && rate.ToCurrencyCode != *filter.ToCurrencyCode {
			continue
		}
		res = append(res, rate)
	}
	sort.Slice(res, func(i, j int) bool {
		return pairKey(res[i].FromCurrencyCode, res[i].ToCurrencyCode) < pairKey(res[j].FromCurrencyCode, res[j].ToCurrencyCode)
	})
	return res, nil
}

func (r *memRateRepo) UpsertExchangeRate(_ context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	if rate.ToCurrencyCode == r.s.failUpsertTo {
		return nil, errors.New("connection reset by peer")
	}
	for _, code := range []string{rate.FromCurrencyCode, rate.ToCurrencyCode} {
		if _, ok := r.s.currencies[code]; !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
		}
	}
	key := pairKey(rate.FromCurrencyCode, rate.ToCurrencyCode)
	if existing, ok := r.s.rates[key]; ok {
		rate.ExchangeRateID = existing.ExchangeRateID
	} else {
		rate.ExchangeRateID = uuid.NewString()
	}
	r.s.rates[key] = rate
	return &rate, nil
}

// memUnitOfWork runs fn against a copy of the store and swaps it in on success.
type memUnitOfWork struct {
	mu    sync.Mutex
	store *memStore
}

func (u *memUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.store.clone()
	err := fn(ctx, portsrepo.TxRepositories{
		Currencies:    &memCurrencyRepo{s: tx},
		ExchangeRates: &memRateRepo{s: tx},
	})
	if err != nil {
		return err
	}
	u.store = tx
	return nil
}

// --- Fake rate provider and notifiers ---

type fakeProvider struct {
	snapshot *domain.RateSnapshot
	err      error
	calls    atomic.Int32
	started  chan struct{}
	release  chan struct{}
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) FetchLatestRates(ctx context.Context, baseCode string) (*domain.RateSnapshot, error) {
	p.calls.Add(1)
	if p.started != nil {
		p.started <- struct{}{}
	}
	if p.release != nil {
		select {
		case <-p.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return p.snapshot, p.err
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.RatesRefreshedEvent
	err    error
}

func (n *recordingNotifier) NotifyRatesRefreshed(_ context.Context, event domain.RatesRefreshedEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return n.err
}
