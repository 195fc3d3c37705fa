package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/impact_api/internal/apperrors"
	"github.com/SscSPs/impact_api/internal/core/domain"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// DefaultMaxLookbackDays bounds the backward search for a rate. ECB closures around
// Easter and Christmas span at most a handful of days.
const DefaultMaxLookbackDays = 14

// currencyConverter converts stored minor-unit amounts using the historical rate table.
type currencyConverter struct {
	BaseService
	rates           portssvc.RateTableSvc
	maxLookbackDays int
}

// NewCurrencyConverter creates a converter reading rates from rates. A non-positive
// maxLookbackDays selects DefaultMaxLookbackDays.
func NewCurrencyConverter(rates portssvc.RateTableSvc, maxLookbackDays int) portssvc.CurrencyConverterSvc {
	if maxLookbackDays <= 0 {
		maxLookbackDays = DefaultMaxLookbackDays
	}
	return &currencyConverter{
		rates:           rates,
		maxLookbackDays: maxLookbackDays,
	}
}

var _ portssvc.CurrencyConverterSvc = (*currencyConverter)(nil)

func (s *currencyConverter) Convert(ctx context.Context, amountMinorUnits int64, base, target string, date time.Time) (domain.ConvertedValue, error) {
	return s.ConvertDecimal(ctx, decimal.NewFromInt(amountMinorUnits), base, target, date)
}

func (s *currencyConverter) ConvertDecimal(ctx context.Context, amountMinorUnits decimal.Decimal, base, target string, date time.Time) (domain.ConvertedValue, error) {
	base = strings.ToUpper(base)
	target = strings.ToUpper(target)

	table, err := s.rates.RefreshIfStale(ctx)
	if err != nil {
		return domain.ConvertedValue{}, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	for _, code := range []string{base, target} {
		if !table.Has(code) {
			return domain.ConvertedValue{}, apperrors.NewUnsupportedCurrencyError(code)
		}
	}

	requested := domain.TruncateDay(date)
	start := requested
	if base != target {
		if first := table.FirstDate(); !first.IsZero() && requested.Before(first) {
			return domain.ConvertedValue{}, apperrors.NewValidationError(fmt.Sprintf(
				"No exchange rates before %s", first.Format(time.DateOnly)))
		}
		// Past the end of the table the latest rate is the closest one at or before
		// the requested date; the lookback bound only covers gaps inside the table.
		if last := table.LastDate(); !last.IsZero() && requested.After(last) {
			start = last
		}
	}
	for back := 0; back <= s.maxLookbackDays; back++ {
		candidate := start.AddDate(0, 0, -back)
		rate, ok := table.Lookup(base, target, candidate)
		if !ok {
			continue
		}
		if !candidate.Equal(requested) {
			s.LogDebug(ctx, "Using earlier exchange rate date",
				slog.String("requested", requested.Format(time.DateOnly)),
				slog.String("used", candidate.Format(time.DateOnly)),
				slog.String("from", base), slog.String("to", target))
		}
		converted := amountMinorUnits.Shift(-2).Mul(rate)
		return domain.ConvertedValue{
			Amount:           converted.InexactFloat64(),
			ExchangeRateDate: candidate,
		}, nil
	}

	return domain.ConvertedValue{}, fmt.Errorf("%w: %s to %s within %d days before %s",
		apperrors.ErrRateUnavailable, base, target, s.maxLookbackDays, start.Format(time.DateOnly))
}

func (s *currencyConverter) SupportedCurrencies(ctx context.Context) ([]string, error) {
	table, err := s.rates.RefreshIfStale(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	return table.Currencies(), nil
}
