package services

import (
	"context"

	"github.com/SscSPs/impact_api/internal/core/domain"
)

// GrantReaderSvc defines read operations for fund grants
type GrantReaderSvc interface {
	// ListGrants selects a fund's grants for the query and converts every allotment's
	// sum and cost per output into the requested currency.
	ListGrants(ctx context.Context, kind domain.GrantKind, query domain.RecordQuery) (*domain.GrantReport, error)
}
