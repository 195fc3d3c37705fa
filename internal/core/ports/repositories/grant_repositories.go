package repositories

import (
	"context"

	"github.com/SscSPs/impact_api/internal/core/domain"
)

// GrantReader defines read operations for fund grants. Grants are returned with their
// allotments populated.
type GrantReader interface {
	// FindGrants retrieves every grant of a fund.
	FindGrants(ctx context.Context, kind domain.GrantKind) ([]domain.Grant, error)

	// FindGrantsInRange retrieves a fund's grants stamped within the inclusive range.
	FindGrantsInRange(ctx context.Context, kind domain.GrantKind, rng domain.RangeSpec) ([]domain.Grant, error)
}

// GrantWriter defines write operations for fund grants
type GrantWriter interface {
	// SaveGrant inserts or replaces a grant and its allotments atomically.
	SaveGrant(ctx context.Context, grant domain.Grant) (int64, error)
}

// GrantRepositoryFacade combines all grant-related repository interfaces
type GrantRepositoryFacade interface {
	GrantReader
	GrantWriter
}
