package services

import (
	"context"
	"time"

	"github.com/SscSPs/impact_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateTableSvc owns the process-wide exchange rate table.
type RateTableSvc interface {
	// RefreshIfStale makes sure today's table is loaded, fetching it first when it is
	// not stored locally yet, and returns the current table.
	RefreshIfStale(ctx context.Context) (*domain.RateTable, error)
}

// CurrencyConverterSvc converts minor-unit amounts between currencies historically.
type CurrencyConverterSvc interface {
	// Convert converts amountMinorUnits of base into target as of date, walking back
	// one day at a time when the table has no rate for date.
	Convert(ctx context.Context, amountMinorUnits int64, base, target string, date time.Time) (domain.ConvertedValue, error)

	// ConvertDecimal is Convert for fractional minor-unit amounts such as a cost per
	// output derived from a sum.
	ConvertDecimal(ctx context.Context, amountMinorUnits decimal.Decimal, base, target string, date time.Time) (domain.ConvertedValue, error)

	// SupportedCurrencies lists the currency codes the rate table knows about.
	SupportedCurrencies(ctx context.Context) ([]string, error)
}

// QueryValidatorSvc validates the currency and language a report is requested in.
type QueryValidatorSvc interface {
	// Validate returns every problem with currency and language at once. Empty values
	// are always valid.
	Validate(ctx context.Context, currency, language string) error

	// SupportedLanguages lists the accepted language codes.
	SupportedLanguages() []string
}
