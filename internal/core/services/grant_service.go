package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/impact_api/internal/apperrors"
	"github.com/SscSPs/impact_api/internal/core/domain"
	portsrepo "github.com/SscSPs/impact_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
	"github.com/SscSPs/impact_api/internal/core/timeline"
)

// grantService implements GrantReaderSvc
type grantService struct {
	BaseService
	grantRepo portsrepo.GrantReader
	converter portssvc.CurrencyConverterSvc
}

// NewGrantService creates a new grant service.
func NewGrantService(grantRepo portsrepo.GrantReader, converter portssvc.CurrencyConverterSvc) portssvc.GrantReaderSvc {
	return &grantService{
		grantRepo: grantRepo,
		converter: converter,
	}
}

var _ portssvc.GrantReaderSvc = (*grantService)(nil)

func (s *grantService) ListGrants(ctx context.Context, kind domain.GrantKind, query domain.RecordQuery) (*domain.GrantReport, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown grant kind %q", apperrors.ErrValidation, kind)
	}

	selected, err := s.selectGrants(ctx, kind, query)
	if err != nil {
		return nil, err
	}

	report := &domain.GrantReport{
		Kind:     kind,
		Grants:   make([]domain.ConvertedGrant, 0, len(selected)),
		NotFound: len(selected) == 0,
	}
	if report.NotFound {
		s.LogInfo(ctx, "No grants matched query", slog.String("kind", string(kind)))
		return report, nil
	}

	currency := domain.ResolveCurrencyCode(query.CurrencyCode, query.Language)
	for _, grant := range selected {
		converted, err := s.convertGrant(ctx, grant, currency, query)
		if err != nil {
			return nil, err
		}
		report.Grants = append(report.Grants, converted)
	}

	s.LogInfo(ctx, "Grants selected",
		slog.String("kind", string(kind)),
		slog.Int("count", len(report.Grants)),
		slog.String("currency", currency))
	return report, nil
}

// selectGrants treats a fund as a single timeline: in donation mode the latest grant at
// or before the donation month is the only candidate.
func (s *grantService) selectGrants(ctx context.Context, kind domain.GrantKind, query domain.RecordQuery) ([]domain.Grant, error) {
	if query.Dates.IsDonation() {
		records, err := s.grantRepo.FindGrants(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to find grants in service: %w", err)
		}
		return timeline.SelectByDonationDate(records, *query.Dates.Donation, []timeline.Filter[domain.Grant]{timeline.All[domain.Grant]()}), nil
	}

	if query.Dates.Range == nil {
		return nil, nil
	}
	records, err := s.grantRepo.FindGrantsInRange(ctx, kind, *query.Dates.Range)
	if err != nil {
		return nil, fmt.Errorf("failed to find grants in service: %w", err)
	}
	return timeline.SelectByRange(records, *query.Dates.Range, nil), nil
}

func (s *grantService) convertGrant(ctx context.Context, grant domain.Grant, currency string, query domain.RecordQuery) (domain.ConvertedGrant, error) {
	date := query.ConversionDateFor(grant.StartDate())
	out := domain.ConvertedGrant{
		Grant:      grant,
		Allotments: make([]domain.ConvertedAllotment, 0, len(grant.Allotments)),
		Language:   query.Language,
	}
	for _, allotment := range grant.Allotments {
		sum, err := s.converter.Convert(ctx, allotment.SumInCents, domain.BaseCurrency, currency, date)
		if err != nil {
			s.LogError(ctx, err, "Failed to convert allotment sum",
				slog.Int64("allotment_id", allotment.AllotmentID),
				slog.String("currency", currency))
			return domain.ConvertedGrant{}, fmt.Errorf("failed to convert allotment %d: %w", allotment.AllotmentID, err)
		}
		costPerOutput, err := s.converter.ConvertDecimal(ctx, allotment.CentsPerOutput(), domain.BaseCurrency, currency, date)
		if err != nil {
			return domain.ConvertedGrant{}, fmt.Errorf("failed to convert allotment %d cost per output: %w", allotment.AllotmentID, err)
		}
		out.Allotments = append(out.Allotments, domain.ConvertedAllotment{
			Allotment:     allotment,
			Sum:           sum,
			CostPerOutput: costPerOutput,
			Currency:      currency,
		})
	}
	return out, nil
}
