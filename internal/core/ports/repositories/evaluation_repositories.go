package repositories

import (
	"context"

	"github.com/SscSPs/impact_api/internal/core/domain"
)

// EvaluationReader defines read operations for evaluations. An empty abbreviation
// list means every charity.
type EvaluationReader interface {
	// FindEvaluationsByCharities retrieves every evaluation of the given charities.
	FindEvaluationsByCharities(ctx context.Context, abbreviations []string) ([]domain.Evaluation, error)

	// FindEvaluationsInRange retrieves the given charities' evaluations stamped within
	// the inclusive range.
	FindEvaluationsInRange(ctx context.Context, rng domain.RangeSpec, abbreviations []string) ([]domain.Evaluation, error)
}

// EvaluationWriter defines write operations for evaluations
type EvaluationWriter interface {
	// SaveEvaluation inserts or updates the evaluation of a charity for its start
	// month. Charity and intervention IDs must be set.
	SaveEvaluation(ctx context.Context, evaluation domain.Evaluation) (int64, error)
}

// EvaluationRepositoryFacade combines all evaluation-related repository interfaces
type EvaluationRepositoryFacade interface {
	EvaluationReader
	EvaluationWriter
}
