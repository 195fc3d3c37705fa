package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/impact_api/internal/core/domain"
	portsrepo "github.com/SscSPs/impact_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fakeRateSource serves a prepared table and counts how often each step runs.
type fakeRateSource struct {
	mu       sync.Mutex
	stored   map[time.Time]bool
	build    func(day time.Time) *domain.RateTable
	fetchErr error
	loadErr  error
	fetches  int
	loads    int
}

func newFakeRateSource(build func(day time.Time) *domain.RateTable) *fakeRateSource {
	return &fakeRateSource{stored: make(map[time.Time]bool), build: build}
}

func (f *fakeRateSource) Exists(_ context.Context, day time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored[day], nil
}

func (f *fakeRateSource) Fetch(_ context.Context, day time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return f.fetchErr
	}
	f.stored[day] = true
	return nil
}

func (f *fakeRateSource) Load(_ context.Context, day time.Time) (*domain.RateTable, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.build(day), nil
}

var _ portsrepo.RateTableSource = (*fakeRateSource)(nil)

// sampleRates builds a EUR-quoted table with gaps on 2022-08-20/21 (weekend) and a
// single rate on 2022-08-18.
func sampleRates(built time.Time) *domain.RateTable {
	t := domain.NewRateTable("EUR", built)
	t.Add(day(2022, 8, 18), "USD", decimal.RequireFromString("1.0"))
	t.Add(day(2022, 8, 18), "NOK", decimal.RequireFromString("0.85"))
	t.Add(day(2022, 8, 18), "GBP", decimal.RequireFromString("0.85"))
	t.Add(day(2022, 8, 19), "USD", decimal.RequireFromString("1.25"))
	t.Add(day(2022, 8, 19), "NOK", decimal.RequireFromString("12.5"))
	t.Add(day(2022, 8, 19), "GBP", decimal.RequireFromString("0.85"))
	t.Add(day(2022, 8, 22), "USD", decimal.RequireFromString("1.0"))
	t.Add(day(2022, 8, 22), "NOK", decimal.RequireFromString("10"))
	t.Add(day(2022, 8, 22), "GBP", decimal.RequireFromString("0.8"))
	return t
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// --- Mock CurrencyConverter ---
type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) Convert(ctx context.Context, amount int64, base, target string, date time.Time) (domain.ConvertedValue, error) {
	args := m.Called(ctx, amount, base, target, date)
	return args.Get(0).(domain.ConvertedValue), args.Error(1)
}

func (m *MockConverter) ConvertDecimal(ctx context.Context, amount decimal.Decimal, base, target string, date time.Time) (domain.ConvertedValue, error) {
	args := m.Called(ctx, amount, base, target, date)
	return args.Get(0).(domain.ConvertedValue), args.Error(1)
}

func (m *MockConverter) SupportedCurrencies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.CurrencyConverterSvc = (*MockConverter)(nil)

// --- Mock EvaluationRepository ---
type MockEvaluationRepository struct {
	mock.Mock
}

func (m *MockEvaluationRepository) FindEvaluationsByCharities(ctx context.Context, abbreviations []string) ([]domain.Evaluation, error) {
	args := m.Called(ctx, abbreviations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepository) FindEvaluationsInRange(ctx context.Context, rng domain.RangeSpec, abbreviations []string) ([]domain.Evaluation, error) {
	args := m.Called(ctx, rng, abbreviations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Evaluation), args.Error(1)
}

var _ portsrepo.EvaluationReader = (*MockEvaluationRepository)(nil)

// --- Mock CharityRepository ---
type MockCharityRepository struct {
	mock.Mock
}

func (m *MockCharityRepository) ListCharities(ctx context.Context) ([]domain.Charity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Charity), args.Error(1)
}

func (m *MockCharityRepository) ListAbbreviations(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portsrepo.CharityReader = (*MockCharityRepository)(nil)

// --- Mock GrantRepository ---
type MockGrantRepository struct {
	mock.Mock
}

func (m *MockGrantRepository) FindGrants(ctx context.Context, kind domain.GrantKind) ([]domain.Grant, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Grant), args.Error(1)
}

func (m *MockGrantRepository) FindGrantsInRange(ctx context.Context, kind domain.GrantKind, rng domain.RangeSpec) ([]domain.Grant, error) {
	args := m.Called(ctx, kind, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Grant), args.Error(1)
}

var _ portsrepo.GrantReader = (*MockGrantRepository)(nil)
