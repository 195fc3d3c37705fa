package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/impact_api/internal/core/domain"
)

// RateTableSource provides the historical exchange rate table, stored locally per
// calendar day and refreshed from an external provider.
type RateTableSource interface {
	// Exists reports whether the table for day is already stored locally.
	Exists(ctx context.Context, day time.Time) (bool, error)

	// Fetch downloads and stores the table for day.
	Fetch(ctx context.Context, day time.Time) error

	// Load reads the locally stored table for day.
	Load(ctx context.Context, day time.Time) (*domain.RateTable, error)
}
