package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/impact_api/internal/apperrors"
	"github.com/SscSPs/impact_api/internal/core/domain"
	portsrepo "github.com/SscSPs/impact_api/internal/core/ports/repositories"
	"github.com/SscSPs/impact_api/internal/models"
	"github.com/SscSPs/impact_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCharityRepository struct {
	BaseRepository
}

// newPgxCharityRepository creates a new repository for charity and intervention data.
func newPgxCharityRepository(pool *pgxpool.Pool) portsrepo.CharityRepositoryFacade {
	return &PgxCharityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CharityRepositoryFacade = (*PgxCharityRepository)(nil)

// ListCharities retrieves every charity ordered by abbreviation.
func (r *PgxCharityRepository) ListCharities(ctx context.Context) ([]domain.Charity, error) {
	query := `
		SELECT charity_id, charity_name, abbreviation
		FROM charities
		ORDER BY abbreviation;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query charities: %w", err)
	}
	defer rows.Close()

	modelCharities, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Charity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Charity{}, nil
		}
		return nil, fmt.Errorf("failed to scan charities: %w", err)
	}
	return mapping.ToDomainCharitySlice(modelCharities), nil
}

// ListAbbreviations retrieves every charity abbreviation in order.
func (r *PgxCharityRepository) ListAbbreviations(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT abbreviation FROM charities ORDER BY abbreviation;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query charity abbreviations: %w", err)
	}
	defer rows.Close()

	abbreviations, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan charity abbreviations: %w", err)
	}
	return abbreviations, nil
}

// SaveCharity inserts or updates a charity keyed by its abbreviation.
func (r *PgxCharityRepository) SaveCharity(ctx context.Context, charity domain.Charity) (int64, error) {
	modelCharity := mapping.ToModelCharity(charity)
	if modelCharity.Abbreviation == "" {
		return 0, apperrors.NewValidationError("charity abbreviation is required")
	}

	query := `
		INSERT INTO charities (charity_name, abbreviation)
		VALUES ($1, $2)
		ON CONFLICT (abbreviation) DO UPDATE SET
			charity_name = EXCLUDED.charity_name
		RETURNING charity_id;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, modelCharity.CharityName, modelCharity.Abbreviation).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to save charity %s: %w", modelCharity.Abbreviation, err)
	}
	return id, nil
}

// SaveIntervention inserts or updates an intervention keyed by its short description.
func (r *PgxCharityRepository) SaveIntervention(ctx context.Context, intervention domain.Intervention) (int64, error) {
	modelIntervention := mapping.ToModelIntervention(intervention)
	if modelIntervention.ShortDescription == "" {
		return 0, apperrors.NewValidationError("intervention short description is required")
	}

	query := `
		INSERT INTO interventions (short_description, long_description)
		VALUES ($1, $2)
		ON CONFLICT (short_description) DO UPDATE SET
			long_description = EXCLUDED.long_description
		RETURNING intervention_id;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, modelIntervention.ShortDescription, modelIntervention.LongDescription).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to save intervention %q: %w", modelIntervention.ShortDescription, err)
	}
	return id, nil
}
