package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/impact_api/internal/apperrors"
	"github.com/SscSPs/impact_api/internal/core/domain"
	portsrepo "github.com/SscSPs/impact_api/internal/core/ports/repositories"
	"github.com/SscSPs/impact_api/internal/models"
	"github.com/SscSPs/impact_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGrantRepository struct {
	BaseRepository
}

// newPgxGrantRepository creates a new repository for fund grants and their allotments.
func newPgxGrantRepository(pool *pgxpool.Pool) portsrepo.GrantRepositoryFacade {
	return &PgxGrantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.GrantRepositoryFacade = (*PgxGrantRepository)(nil)

const fullAllotmentSelectQuery = `
SELECT
	a.allotment_id, a.grant_id, a.sum_in_cents, a.number_outputs_purchased,
	a.number_outputs_purchased_lower_bound, a.number_outputs_purchased_upper_bound,
	a.source_name, a.source_url, a.comment,
	c.charity_id, c.charity_name, c.abbreviation,
	i.intervention_id, i.short_description, i.long_description
FROM allotments a
JOIN charities c ON c.charity_id = a.charity_id
JOIN interventions i ON i.intervention_id = a.intervention_id
WHERE a.grant_id = ANY($1)
ORDER BY a.grant_id, a.allotment_id;
`

// getGrants loads the grants of kind matching the extra conditions, then their
// allotments in a second query.
func (r *PgxGrantRepository) getGrants(ctx context.Context, kind domain.GrantKind, conditions []string, args ...any) ([]domain.Grant, error) {
	where := append([]string{"g.kind = $1"}, conditions...)
	query := `
		SELECT g.grant_id, g.kind, g.start_year, g.start_month
		FROM grants g
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY g.start_year, g.start_month;`

	rows, err := r.Pool.Query(ctx, query, append([]any{string(kind)}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query grants: %w", err)
	}
	modelGrants, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Grant])
	if err != nil {
		return nil, fmt.Errorf("failed to scan grants: %w", err)
	}
	if len(modelGrants) == 0 {
		return []domain.Grant{}, nil
	}

	ids := make([]int64, len(modelGrants))
	for i, g := range modelGrants {
		ids[i] = g.GrantID
	}
	allotments, err := r.getAllotments(ctx, ids)
	if err != nil {
		return nil, err
	}

	grants := make([]domain.Grant, len(modelGrants))
	for i, g := range modelGrants {
		grants[i] = mapping.ToDomainGrant(g, allotments[g.GrantID])
	}
	return grants, nil
}

func (r *PgxGrantRepository) getAllotments(ctx context.Context, grantIDs []int64) (map[int64][]models.Allotment, error) {
	rows, err := r.Pool.Query(ctx, fullAllotmentSelectQuery, grantIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query allotments: %w", err)
	}
	modelAllotments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Allotment, error) {
		var a models.Allotment
		err := row.Scan(
			&a.AllotmentID,
			&a.GrantID,
			&a.SumInCents,
			&a.NumberOutputsPurchased,
			&a.NumberOutputsPurchasedLowerBound,
			&a.NumberOutputsPurchasedUpperBound,
			&a.SourceName,
			&a.SourceURL,
			&a.Comment,
			&a.Charity.CharityID,
			&a.Charity.CharityName,
			&a.Charity.Abbreviation,
			&a.Intervention.InterventionID,
			&a.Intervention.ShortDescription,
			&a.Intervention.LongDescription,
		)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan allotments: %w", err)
	}

	byGrant := make(map[int64][]models.Allotment, len(grantIDs))
	for _, a := range modelAllotments {
		byGrant[a.GrantID] = append(byGrant[a.GrantID], a)
	}
	return byGrant, nil
}

// FindGrants retrieves every grant of a fund.
func (r *PgxGrantRepository) FindGrants(ctx context.Context, kind domain.GrantKind) ([]domain.Grant, error) {
	return r.getGrants(ctx, kind, nil)
}

// FindGrantsInRange retrieves a fund's grants whose (year, month) lies within rng.
func (r *PgxGrantRepository) FindGrantsInRange(ctx context.Context, kind domain.GrantKind, rng domain.RangeSpec) ([]domain.Grant, error) {
	return r.getGrants(ctx, kind,
		[]string{"(g.start_year, g.start_month) BETWEEN ($2, $3) AND ($4, $5)"},
		rng.Start.Year, rng.Start.Month, rng.End.Year, rng.End.Month,
	)
}

// SaveGrant upserts the grant for its fund and month and replaces its allotments, all
// in one transaction.
func (r *PgxGrantRepository) SaveGrant(ctx context.Context, grant domain.Grant) (int64, error) {
	if !grant.Kind.Valid() {
		return 0, apperrors.NewValidationError(fmt.Sprintf("unknown grant kind %q", grant.Kind))
	}
	for _, a := range grant.Allotments {
		if a.Charity.CharityID == 0 || a.Intervention.InterventionID == 0 {
			return 0, apperrors.NewValidationError("allotment charity and intervention must be saved first")
		}
	}
	m := mapping.ToModelGrant(grant)

	var grantID int64
	err := r.WithinTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO grants (kind, start_year, start_month)
			VALUES ($1, $2, $3)
			ON CONFLICT (kind, start_year, start_month) DO UPDATE SET kind = EXCLUDED.kind
			RETURNING grant_id;`,
			m.Kind, m.StartYear, m.StartMonth,
		).Scan(&grantID)
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", grant, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM allotments WHERE grant_id = $1;`, grantID); err != nil {
			return fmt.Errorf("failed to clear allotments of %s: %w", grant, err)
		}

		batch := &pgx.Batch{}
		for _, allotment := range grant.Allotments {
			a := mapping.ToModelAllotment(grantID, allotment)
			batch.Queue(`
				INSERT INTO allotments (
					grant_id, charity_id, intervention_id, sum_in_cents, number_outputs_purchased,
					number_outputs_purchased_lower_bound, number_outputs_purchased_upper_bound,
					source_name, source_url, comment
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
				a.GrantID, a.Charity.CharityID, a.Intervention.InterventionID, a.SumInCents,
				a.NumberOutputsPurchased, a.NumberOutputsPurchasedLowerBound,
				a.NumberOutputsPurchasedUpperBound, a.SourceName, a.SourceURL, a.Comment,
			)
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to save allotments of %s: %w", grant, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return grantID, nil
}
