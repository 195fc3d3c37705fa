package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/impact_api/internal/apperrors"
	"github.com/SscSPs/impact_api/internal/core/domain"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
	"github.com/SscSPs/impact_api/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EvaluationServiceTestSuite struct {
	suite.Suite
	evaluationRepo *MockEvaluationRepository
	charityRepo    *MockCharityRepository
	converter      *MockConverter
	svc            portssvc.EvaluationReaderSvc
	ctx            context.Context
	now            time.Time
}

func (s *EvaluationServiceTestSuite) SetupTest() {
	s.evaluationRepo = new(MockEvaluationRepository)
	s.charityRepo = new(MockCharityRepository)
	s.converter = new(MockConverter)
	s.svc = services.NewEvaluationService(s.evaluationRepo, s.charityRepo, s.converter)
	s.ctx = context.Background()
	s.now = day(2022, 8, 23)
}

func (s *EvaluationServiceTestSuite) TearDownTest() {
	s.evaluationRepo.AssertExpectations(s.T())
	s.charityRepo.AssertExpectations(s.T())
	s.converter.AssertExpectations(s.T())
}

func evaluation(id int64, charity string, year, month int, cents int64) domain.Evaluation {
	return domain.Evaluation{
		EvaluationID:   id,
		Charity:        domain.Charity{Abbreviation: charity},
		StartYear:      year,
		StartMonth:     month,
		CentsPerOutput: cents,
	}
}

func (s *EvaluationServiceTestSuite) TestRangeMode() {
	dates := domain.NewDateSpec(domain.DateParams{StartYear: 2010, EndYear: 2011}, s.now)
	records := []domain.Evaluation{
		evaluation(1, "AMF", 2010, 3, 500),
		evaluation(2, "AMF", 2011, 7, 450),
	}
	s.evaluationRepo.On("FindEvaluationsInRange", mock.Anything, *dates.Range, []string{"AMF"}).Return(records, nil).Once()
	s.converter.On("Convert", mock.Anything, int64(500), "USD", "NOK", day(2010, 3, 1)).
		Return(domain.ConvertedValue{Amount: 31.2, ExchangeRateDate: day(2010, 3, 1)}, nil).Once()
	s.converter.On("Convert", mock.Anything, int64(450), "USD", "NOK", day(2011, 7, 1)).
		Return(domain.ConvertedValue{Amount: 25.9, ExchangeRateDate: day(2011, 7, 1)}, nil).Once()

	report, err := s.svc.ListEvaluations(s.ctx, domain.RecordQuery{
		Dates:                dates,
		CharityAbbreviations: []string{"amf", "AMF"},
		Language:             "no",
	})

	s.Require().NoError(err)
	s.False(report.NotFound)
	s.Require().Len(report.Evaluations, 2)
	s.Equal(int64(1), report.Evaluations[0].Evaluation.EvaluationID)
	s.Equal("NOK", report.Evaluations[0].Currency)
	s.Equal("no", report.Evaluations[0].Language)
	s.InDelta(25.9, report.Evaluations[1].CostPerOutput.Amount, 1e-9)
}

func (s *EvaluationServiceTestSuite) TestRangeModeFiltersRecordsOutsideRange() {
	dates := domain.NewDateSpec(domain.DateParams{StartYear: 2010, StartMonth: 6, EndYear: 2010, EndMonth: 8}, s.now)
	records := []domain.Evaluation{
		evaluation(1, "AMF", 2010, 5, 500),
		evaluation(2, "AMF", 2010, 6, 450),
	}
	s.evaluationRepo.On("FindEvaluationsInRange", mock.Anything, *dates.Range, []string{}).Return(records, nil).Once()
	s.converter.On("Convert", mock.Anything, int64(450), "USD", "USD", day(2010, 6, 1)).
		Return(domain.ConvertedValue{Amount: 4.5, ExchangeRateDate: day(2010, 6, 1)}, nil).Once()

	report, err := s.svc.ListEvaluations(s.ctx, domain.RecordQuery{Dates: dates})

	s.Require().NoError(err)
	s.Require().Len(report.Evaluations, 1)
	s.Equal(int64(2), report.Evaluations[0].Evaluation.EvaluationID)
}

func (s *EvaluationServiceTestSuite) TestDonationModeAllCharities() {
	dates := domain.NewDateSpec(domain.DateParams{DonationYear: 2011, DonationMonth: 1}, s.now)
	records := []domain.Evaluation{
		evaluation(1, "A", 2011, 3, 100),
		evaluation(2, "A", 2010, 6, 200),
		evaluation(3, "B", 2010, 6, 300),
		evaluation(4, "B", 2011, 3, 400),
	}
	s.charityRepo.On("ListAbbreviations", mock.Anything).Return([]string{"A", "B", "C"}, nil).Once()
	s.evaluationRepo.On("FindEvaluationsByCharities", mock.Anything, []string{"A", "B", "C"}).Return(records, nil).Once()
	s.converter.On("Convert", mock.Anything, int64(200), "USD", "USD", day(2010, 6, 1)).
		Return(domain.ConvertedValue{Amount: 2, ExchangeRateDate: day(2010, 6, 1)}, nil).Once()
	s.converter.On("Convert", mock.Anything, int64(300), "USD", "USD", day(2010, 6, 1)).
		Return(domain.ConvertedValue{Amount: 3, ExchangeRateDate: day(2010, 6, 1)}, nil).Once()

	report, err := s.svc.ListEvaluations(s.ctx, domain.RecordQuery{Dates: dates, Language: "en"})

	s.Require().NoError(err)
	s.Require().Len(report.Evaluations, 2)
	s.Equal(int64(2), report.Evaluations[0].Evaluation.EvaluationID)
	s.Equal(int64(3), report.Evaluations[1].Evaluation.EvaluationID)
}

func (s *EvaluationServiceTestSuite) TestConversionOverride() {
	dates := domain.NewDateSpec(domain.DateParams{DonationYear: 2012}, s.now)
	override := domain.ConversionOverride(2022, 8, 20)
	s.evaluationRepo.On("FindEvaluationsByCharities", mock.Anything, []string{"SCI"}).
		Return([]domain.Evaluation{evaluation(7, "SCI", 2011, 2, 99)}, nil).Once()
	s.converter.On("Convert", mock.Anything, int64(99), "USD", "EUR", *override).
		Return(domain.ConvertedValue{Amount: 0.9, ExchangeRateDate: day(2022, 8, 19)}, nil).Once()

	report, err := s.svc.ListEvaluations(s.ctx, domain.RecordQuery{
		Dates:                dates,
		CharityAbbreviations: []string{"sci"},
		CurrencyCode:         "eur",
		ConversionDate:       override,
	})

	s.Require().NoError(err)
	s.Require().Len(report.Evaluations, 1)
	s.Equal(day(2022, 8, 19), report.Evaluations[0].CostPerOutput.ExchangeRateDate)
	s.Equal("EUR", report.Evaluations[0].Currency)
}

func (s *EvaluationServiceTestSuite) TestNotFound() {
	dates := domain.NewDateSpec(domain.DateParams{DonationYear: 2005}, s.now)
	s.evaluationRepo.On("FindEvaluationsByCharities", mock.Anything, []string{"AMF"}).
		Return([]domain.Evaluation{evaluation(1, "AMF", 2010, 1, 100)}, nil).Once()

	report, err := s.svc.ListEvaluations(s.ctx, domain.RecordQuery{Dates: dates, CharityAbbreviations: []string{"AMF"}})

	s.Require().NoError(err)
	s.True(report.NotFound)
	s.NotNil(report.Evaluations)
	s.Empty(report.Evaluations)
}

func (s *EvaluationServiceTestSuite) TestConversionError() {
	dates := domain.NewDateSpec(domain.DateParams{}, s.now)
	s.evaluationRepo.On("FindEvaluationsInRange", mock.Anything, *dates.Range, []string{}).
		Return([]domain.Evaluation{evaluation(1, "AMF", 2010, 1, 100)}, nil).Once()
	s.converter.On("Convert", mock.Anything, int64(100), "USD", "USD", day(2010, 1, 1)).
		Return(domain.ConvertedValue{}, fmt.Errorf("%w: test", apperrors.ErrRateUnavailable)).Once()

	report, err := s.svc.ListEvaluations(s.ctx, domain.RecordQuery{Dates: dates})

	s.Nil(report)
	s.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func (s *EvaluationServiceTestSuite) TestRepositoryError() {
	dates := domain.NewDateSpec(domain.DateParams{DonationYear: 2015}, s.now)
	s.charityRepo.On("ListAbbreviations", mock.Anything).Return(nil, fmt.Errorf("connection reset")).Once()

	_, err := s.svc.ListEvaluations(s.ctx, domain.RecordQuery{Dates: dates})

	s.ErrorContains(err, "connection reset")
}

func (s *EvaluationServiceTestSuite) TestRecordStampedAfterLatestRate() {
	rates := services.NewRateTableService(newFakeRateSource(sampleRates), services.WithRateTableClock(fixedClock(s.now)))
	svc := services.NewEvaluationService(s.evaluationRepo, s.charityRepo, services.NewCurrencyConverter(rates, services.DefaultMaxLookbackDays))

	later := evaluation(2, "AMF", 2022, 12, 400)
	s.Require().NoError(domain.ValidateRecordDate(later.StartYear, later.StartMonth, s.now))

	dates := domain.NewDateSpec(domain.DateParams{}, s.now)
	s.evaluationRepo.On("FindEvaluationsInRange", mock.Anything, *dates.Range, []string{}).
		Return([]domain.Evaluation{later}, nil).Once()

	report, err := svc.ListEvaluations(s.ctx, domain.RecordQuery{Dates: dates, Language: "no"})

	s.Require().NoError(err)
	s.Require().Len(report.Evaluations, 1)
	s.Equal("NOK", report.Evaluations[0].Currency)
	s.InDelta(40.0, report.Evaluations[0].CostPerOutput.Amount, 1e-9)
	s.Equal(day(2022, 8, 22), report.Evaluations[0].CostPerOutput.ExchangeRateDate)
}

func TestEvaluationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EvaluationServiceTestSuite))
}
