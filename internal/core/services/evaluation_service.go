package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/impact_api/internal/core/domain"
	portsrepo "github.com/SscSPs/impact_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
	"github.com/SscSPs/impact_api/internal/core/timeline"
)

// evaluationService implements EvaluationReaderSvc
type evaluationService struct {
	BaseService
	evaluationRepo portsrepo.EvaluationReader
	charityRepo    portsrepo.CharityReader
	converter      portssvc.CurrencyConverterSvc
}

// NewEvaluationService creates a new evaluation service.
func NewEvaluationService(
	evaluationRepo portsrepo.EvaluationReader,
	charityRepo portsrepo.CharityReader,
	converter portssvc.CurrencyConverterSvc,
) portssvc.EvaluationReaderSvc {
	return &evaluationService{
		evaluationRepo: evaluationRepo,
		charityRepo:    charityRepo,
		converter:      converter,
	}
}

var _ portssvc.EvaluationReaderSvc = (*evaluationService)(nil)

func (s *evaluationService) ListEvaluations(ctx context.Context, query domain.RecordQuery) (*domain.EvaluationReport, error) {
	selected, err := s.selectEvaluations(ctx, query)
	if err != nil {
		return nil, err
	}

	report := &domain.EvaluationReport{
		Evaluations: make([]domain.ConvertedEvaluation, 0, len(selected)),
		NotFound:    len(selected) == 0,
	}
	if report.NotFound {
		s.LogInfo(ctx, "No evaluations matched query")
		return report, nil
	}

	currency := domain.ResolveCurrencyCode(query.CurrencyCode, query.Language)
	for _, evaluation := range selected {
		date := query.ConversionDateFor(evaluation.StartDate())
		converted, err := s.converter.Convert(ctx, evaluation.CentsPerOutput, domain.BaseCurrency, currency, date)
		if err != nil {
			s.LogError(ctx, err, "Failed to convert cost per output",
				slog.Int64("evaluation_id", evaluation.EvaluationID),
				slog.String("currency", currency))
			return nil, fmt.Errorf("failed to convert evaluation %d: %w", evaluation.EvaluationID, err)
		}
		report.Evaluations = append(report.Evaluations, domain.ConvertedEvaluation{
			Evaluation:    evaluation,
			CostPerOutput: converted,
			Currency:      currency,
			Language:      query.Language,
		})
	}

	s.LogInfo(ctx, "Evaluations selected", slog.Int("count", len(report.Evaluations)), slog.String("currency", currency))
	return report, nil
}

// selectEvaluations picks records by range, or the one in effect per charity at the
// donation date. Without explicit charities every charity forms its own timeline.
func (s *evaluationService) selectEvaluations(ctx context.Context, query domain.RecordQuery) ([]domain.Evaluation, error) {
	abbreviations := domain.NormalizeAbbreviations(query.CharityAbbreviations)

	if query.Dates.IsDonation() {
		groups := abbreviations
		if len(groups) == 0 {
			all, err := s.charityRepo.ListAbbreviations(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to list charities in service: %w", err)
			}
			groups = all
		}
		records, err := s.evaluationRepo.FindEvaluationsByCharities(ctx, groups)
		if err != nil {
			return nil, fmt.Errorf("failed to find evaluations in service: %w", err)
		}
		return timeline.SelectByDonationDate(records, *query.Dates.Donation, timeline.GroupFilters[domain.Evaluation](groups)), nil
	}

	if query.Dates.Range == nil {
		return nil, nil
	}
	records, err := s.evaluationRepo.FindEvaluationsInRange(ctx, *query.Dates.Range, abbreviations)
	if err != nil {
		return nil, fmt.Errorf("failed to find evaluations in service: %w", err)
	}
	return timeline.SelectByRange(records, *query.Dates.Range, timeline.InGroups[domain.Evaluation](abbreviations)), nil
}
