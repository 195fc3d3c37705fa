package services

import (
	"context"

	"github.com/SscSPs/impact_api/internal/core/domain"
)

// EvaluationReaderSvc defines read operations for charity evaluations
type EvaluationReaderSvc interface {
	// ListEvaluations selects evaluations for the query and converts their cost per
	// output into the requested currency.
	ListEvaluations(ctx context.Context, query domain.RecordQuery) (*domain.EvaluationReport, error)
}
