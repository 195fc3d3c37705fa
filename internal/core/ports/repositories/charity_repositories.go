package repositories

import (
	"context"

	"github.com/SscSPs/impact_api/internal/core/domain"
)

// CharityReader defines read operations for charity data
type CharityReader interface {
	// ListCharities retrieves every charity ordered by abbreviation.
	ListCharities(ctx context.Context) ([]domain.Charity, error)

	// ListAbbreviations retrieves every charity abbreviation, upper-cased and ordered.
	ListAbbreviations(ctx context.Context) ([]string, error)
}

// CharityWriter defines write operations for charity and intervention data
type CharityWriter interface {
	// SaveCharity inserts or updates a charity keyed by abbreviation, returning its ID.
	SaveCharity(ctx context.Context, charity domain.Charity) (int64, error)

	// SaveIntervention inserts or updates an intervention keyed by short description.
	SaveIntervention(ctx context.Context, intervention domain.Intervention) (int64, error)
}

// CharityRepositoryFacade combines all charity-related repository interfaces
type CharityRepositoryFacade interface {
	CharityReader
	CharityWriter
}
