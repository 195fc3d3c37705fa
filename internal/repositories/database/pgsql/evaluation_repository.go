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

type PgxEvaluationRepository struct {
	BaseRepository
}

// newPgxEvaluationRepository creates a new repository for evaluation data.
func newPgxEvaluationRepository(pool *pgxpool.Pool) portsrepo.EvaluationRepositoryFacade {
	return &PgxEvaluationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EvaluationRepositoryFacade = (*PgxEvaluationRepository)(nil)

const fullEvaluationSelectQuery = `
SELECT
	e.evaluation_id, e.start_year, e.start_month, e.cents_per_output,
	e.cents_per_output_lower_bound, e.cents_per_output_upper_bound,
	e.source_name, e.source_url, e.comment,
	c.charity_id, c.charity_name, c.abbreviation,
	i.intervention_id, i.short_description, i.long_description
FROM evaluations e
JOIN charities c ON c.charity_id = e.charity_id
JOIN interventions i ON i.intervention_id = e.intervention_id
`

const evaluationOrder = ` ORDER BY e.start_year, e.start_month, c.abbreviation, e.evaluation_id;`

// getEvaluations runs the joined select with the given conditions ANDed together.
func (r *PgxEvaluationRepository) getEvaluations(ctx context.Context, conditions []string, args ...any) ([]domain.Evaluation, error) {
	query := fullEvaluationSelectQuery
	if len(conditions) > 0 {
		query += "WHERE " + strings.Join(conditions, " AND ")
	}
	query += evaluationOrder

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer rows.Close()

	modelEvaluations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Evaluation, error) {
		var e models.Evaluation
		err := row.Scan(
			&e.EvaluationID,
			&e.StartYear,
			&e.StartMonth,
			&e.CentsPerOutput,
			&e.CentsPerOutputLowerBound,
			&e.CentsPerOutputUpperBound,
			&e.SourceName,
			&e.SourceURL,
			&e.Comment,
			&e.Charity.CharityID,
			&e.Charity.CharityName,
			&e.Charity.Abbreviation,
			&e.Intervention.InterventionID,
			&e.Intervention.ShortDescription,
			&e.Intervention.LongDescription,
		)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan evaluations: %w", err)
	}
	return mapping.ToDomainEvaluationSlice(modelEvaluations), nil
}

// FindEvaluationsByCharities retrieves every evaluation of the given charities; no
// abbreviations means every charity.
func (r *PgxEvaluationRepository) FindEvaluationsByCharities(ctx context.Context, abbreviations []string) ([]domain.Evaluation, error) {
	if len(abbreviations) == 0 {
		return r.getEvaluations(ctx, nil)
	}
	return r.getEvaluations(ctx, []string{"c.abbreviation = ANY($1)"}, abbreviations)
}

// FindEvaluationsInRange compares (year, month) as a row so the month only matters
// within the boundary years.
func (r *PgxEvaluationRepository) FindEvaluationsInRange(ctx context.Context, rng domain.RangeSpec, abbreviations []string) ([]domain.Evaluation, error) {
	conditions := []string{"(e.start_year, e.start_month) BETWEEN ($1, $2) AND ($3, $4)"}
	args := []any{rng.Start.Year, rng.Start.Month, rng.End.Year, rng.End.Month}
	if len(abbreviations) > 0 {
		conditions = append(conditions, "c.abbreviation = ANY($5)")
		args = append(args, abbreviations)
	}
	return r.getEvaluations(ctx, conditions, args...)
}

// SaveEvaluation inserts or updates the evaluation of a charity for a month.
func (r *PgxEvaluationRepository) SaveEvaluation(ctx context.Context, evaluation domain.Evaluation) (int64, error) {
	m := mapping.ToModelEvaluation(evaluation)
	if m.Charity.CharityID == 0 || m.Intervention.InterventionID == 0 {
		return 0, apperrors.NewValidationError("evaluation charity and intervention must be saved first")
	}

	query := `
		INSERT INTO evaluations (
			charity_id, intervention_id, start_year, start_month, cents_per_output,
			cents_per_output_lower_bound, cents_per_output_upper_bound,
			source_name, source_url, comment
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (charity_id, start_year, start_month) DO UPDATE SET
			intervention_id = EXCLUDED.intervention_id,
			cents_per_output = EXCLUDED.cents_per_output,
			cents_per_output_lower_bound = EXCLUDED.cents_per_output_lower_bound,
			cents_per_output_upper_bound = EXCLUDED.cents_per_output_upper_bound,
			source_name = EXCLUDED.source_name,
			source_url = EXCLUDED.source_url,
			comment = EXCLUDED.comment
		RETURNING evaluation_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Charity.CharityID,
		m.Intervention.InterventionID,
		m.StartYear,
		m.StartMonth,
		m.CentsPerOutput,
		m.CentsPerOutputLowerBound,
		m.CentsPerOutputUpperBound,
		m.SourceName,
		m.SourceURL,
		m.Comment,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save evaluation %s %d-%d: %w", m.Charity.Abbreviation, m.StartYear, m.StartMonth, err)
	}
	return id, nil
}
