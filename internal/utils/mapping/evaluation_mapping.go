package mapping

import (
	"github.com/SscSPs/impact_api/internal/core/domain"
	"github.com/SscSPs/impact_api/internal/models"
)

// ToModelEvaluation converts a domain Evaluation to a model Evaluation
func ToModelEvaluation(d domain.Evaluation) models.Evaluation {
	return models.Evaluation{
		EvaluationID:             d.EvaluationID,
		StartYear:                d.StartYear,
		StartMonth:               d.StartMonth,
		CentsPerOutput:           d.CentsPerOutput,
		CentsPerOutputLowerBound: d.CentsPerOutputLowerBound,
		CentsPerOutputUpperBound: d.CentsPerOutputUpperBound,
		SourceName:               d.SourceName,
		SourceURL:                d.SourceURL,
		Comment:                  d.Comment,
		Charity:                  ToModelCharity(d.Charity),
		Intervention:             ToModelIntervention(d.Intervention),
	}
}

// ToDomainEvaluation converts a model Evaluation to a domain Evaluation
func ToDomainEvaluation(m models.Evaluation) domain.Evaluation {
	return domain.Evaluation{
		EvaluationID:             m.EvaluationID,
		Charity:                  ToDomainCharity(m.Charity),
		Intervention:             ToDomainIntervention(m.Intervention),
		StartYear:                m.StartYear,
		StartMonth:               m.StartMonth,
		CentsPerOutput:           m.CentsPerOutput,
		CentsPerOutputLowerBound: m.CentsPerOutputLowerBound,
		CentsPerOutputUpperBound: m.CentsPerOutputUpperBound,
		SourceName:               m.SourceName,
		SourceURL:                m.SourceURL,
		Comment:                  m.Comment,
	}
}

// ToDomainEvaluationSlice converts a slice of model Evaluations to a slice of domain Evaluations
func ToDomainEvaluationSlice(ms []models.Evaluation) []domain.Evaluation {
	ds := make([]domain.Evaluation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEvaluation(m)
	}
	return ds
}
