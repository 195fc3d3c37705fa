package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/impact_api/internal/apperrors"
	"github.com/SscSPs/impact_api/internal/core/domain"
	portsrepo "github.com/SscSPs/impact_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
)

// rateTableService holds the process-wide exchange rate table and swaps in a fresh one
// the first time it is needed on each calendar day.
type rateTableService struct {
	BaseService
	source portsrepo.RateTableSource

	// lock guards table; it is never held while fetching or parsing.
	lock  sync.RWMutex
	table *domain.RateTable
}

// RateTableOption is a functional option for configuring the rate table service
type RateTableOption func(*rateTableService)

// WithRateTableClock replaces the clock that decides what "today" is.
func WithRateTableClock(now func() time.Time) RateTableOption {
	return func(s *rateTableService) {
		s.now = now
	}
}

// NewRateTableService creates the rate table owner backed by source.
func NewRateTableService(source portsrepo.RateTableSource, options ...RateTableOption) portssvc.RateTableSvc {
	svc := &rateTableService{source: source}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateTableSvc = (*rateTableService)(nil)

func (s *rateTableService) RefreshIfStale(ctx context.Context) (*domain.RateTable, error) {
	today := domain.TruncateDay(s.Now())

	s.lock.RLock()
	current := s.table
	s.lock.RUnlock()
	if current != nil && current.Day.Equal(today) {
		return current, nil
	}

	// Concurrent requests on a new day may each refresh. That only costs a redundant
	// load, and readers are never blocked behind a download.
	fresh, err := s.refresh(ctx, today)
	if err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	if s.table == nil || !s.table.Day.After(fresh.Day) {
		s.table = fresh
	}
	return s.table, nil
}

func (s *rateTableService) refresh(ctx context.Context, today time.Time) (*domain.RateTable, error) {
	day := slog.String("day", today.Format(time.DateOnly))

	exists, err := s.source.Exists(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for local exchange rate table", day)
		return nil, fmt.Errorf("%w: checking local table: %w", apperrors.ErrRateFetch, err)
	}
	if !exists {
		s.LogInfo(ctx, "Fetching exchange rate table", day)
		if err := s.source.Fetch(ctx, today); err != nil {
			s.LogError(ctx, err, "Failed to fetch exchange rate table", day)
			return nil, fmt.Errorf("%w: %w", apperrors.ErrRateFetch, err)
		}
	}

	table, err := s.source.Load(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to load exchange rate table", day)
		return nil, fmt.Errorf("%w: loading table: %w", apperrors.ErrRateFetch, err)
	}
	s.LogInfo(ctx, "Exchange rate table loaded", day,
		slog.Int("dates", table.Len()),
		slog.Int("currencies", len(table.Currencies())))
	return table, nil
}
