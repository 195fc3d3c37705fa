package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/impact_api/internal/apperrors"
	"github.com/SscSPs/impact_api/internal/core/domain"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
	"github.com/SscSPs/impact_api/internal/handlers"
	"github.com/SscSPs/impact_api/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock services ---
type MockEvaluationService struct {
	mock.Mock
}

func (m *MockEvaluationService) ListEvaluations(ctx context.Context, query domain.RecordQuery) (*domain.EvaluationReport, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvaluationReport), args.Error(1)
}

type MockGrantService struct {
	mock.Mock
}

func (m *MockGrantService) ListGrants(ctx context.Context, kind domain.GrantKind, query domain.RecordQuery) (*domain.GrantReport, error) {
	args := m.Called(ctx, kind, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GrantReport), args.Error(1)
}

type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) Convert(ctx context.Context, amountMinorUnits int64, base, target string, date time.Time) (domain.ConvertedValue, error) {
	args := m.Called(ctx, amountMinorUnits, base, target, date)
	return args.Get(0).(domain.ConvertedValue), args.Error(1)
}

func (m *MockConverter) ConvertDecimal(ctx context.Context, amountMinorUnits decimal.Decimal, base, target string, date time.Time) (domain.ConvertedValue, error) {
	args := m.Called(ctx, amountMinorUnits, base, target, date)
	return args.Get(0).(domain.ConvertedValue), args.Error(1)
}

func (m *MockConverter) SupportedCurrencies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockQueryValidator struct {
	mock.Mock
}

func (m *MockQueryValidator) Validate(ctx context.Context, currency, language string) error {
	args := m.Called(ctx, currency, language)
	return args.Error(0)
}

func (m *MockQueryValidator) SupportedLanguages() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

// --- Test suite ---
type HandlersTestSuite struct {
	suite.Suite
	router      *gin.Engine
	evaluations *MockEvaluationService
	grants      *MockGrantService
	converter   *MockConverter
	validator   *MockQueryValidator
	now         time.Time
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.evaluations = new(MockEvaluationService)
	s.grants = new(MockGrantService)
	s.converter = new(MockConverter)
	s.validator = new(MockQueryValidator)
	s.now = time.Date(2022, 8, 23, 12, 0, 0, 0, time.UTC)

	cfg := &config.Config{IsProduction: true, DefaultLanguage: "en", CORSAllowedOrigins: []string{"*"}}
	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, &portssvc.ServiceContainer{
		Evaluation: s.evaluations,
		Grant:      s.grants,
		Converter:  s.converter,
		Validator:  s.validator,
	}, handlers.RouteOptions{Now: func() time.Time { return s.now }})
}

func (s *HandlersTestSuite) TearDownTest() {
	s.evaluations.AssertExpectations(s.T())
	s.grants.AssertExpectations(s.T())
	s.converter.AssertExpectations(s.T())
	s.validator.AssertExpectations(s.T())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) get(target string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	var body map[string]any
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func sampleEvaluation() domain.ConvertedEvaluation {
	upper := int64(650)
	return domain.ConvertedEvaluation{
		Evaluation: domain.Evaluation{
			EvaluationID:             11,
			Charity:                  domain.Charity{CharityID: 1, CharityName: "Against Malaria Foundation", Abbreviation: "AMF"},
			Intervention:             domain.Intervention{InterventionID: 2, ShortDescription: "Bednets", LongDescription: "Insecticide-treated nets"},
			StartYear:                2020,
			StartMonth:               3,
			CentsPerOutput:           500,
			CentsPerOutputLowerBound: 400,
			CentsPerOutputUpperBound: &upper,
			SourceName:               "GiveWell",
		},
		CostPerOutput: domain.ConvertedValue{Amount: 43.75, ExchangeRateDate: time.Date(2020, 2, 28, 0, 0, 0, 0, time.UTC)},
		Currency:      "NOK",
		Language:      "no",
	}
}

func (s *HandlersTestSuite) TestHealth() {
	w, _ := s.get("/health")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestListEvaluations_Range() {
	s.validator.On("Validate", mock.Anything, "", "no").Return(nil).Once()
	s.evaluations.On("ListEvaluations", mock.Anything, mock.MatchedBy(func(q domain.RecordQuery) bool {
		return q.Dates.Range != nil &&
			q.Dates.Range.Start == domain.YearMonth{Year: 2019, Month: 1} &&
			q.Dates.Range.End == domain.YearMonth{Year: 2022, Month: 12} &&
			q.Language == "no" &&
			len(q.CharityAbbreviations) == 2 && q.CharityAbbreviations[0] == "AMF" && q.CharityAbbreviations[1] == "SCI"
	})).Return(&domain.EvaluationReport{Evaluations: []domain.ConvertedEvaluation{sampleEvaluation()}}, nil).Once()

	w, body := s.get("/evaluations?start_year=2019&charity_abbreviation=amf&charity_abbreviation=SCI&language=no")

	s.Equal(http.StatusOK, w.Code)
	s.NotContains(body, "warnings")
	evaluations := body["evaluations"].([]any)
	s.Require().Len(evaluations, 1)
	ev := evaluations[0].(map[string]any)
	s.Equal(43.75, ev["converted_cost_per_output"])
	s.Equal("NOK", ev["currency"])
	s.Equal("no", ev["language"])
	s.Equal("2020-02-28", ev["exchange_rate_date"])
	s.Equal("AMF", ev["charity"].(map[string]any)["abbreviation"])
	s.Equal("Bednets", ev["intervention"].(map[string]any)["short_description"])
	s.Equal(float64(650), ev["cents_per_output_upper_bound"])
}

func (s *HandlersTestSuite) TestListEvaluations_DonationWithConversionOverride() {
	s.validator.On("Validate", mock.Anything, "usd", "").Return(nil).Once()
	s.evaluations.On("ListEvaluations", mock.Anything, mock.MatchedBy(func(q domain.RecordQuery) bool {
		return q.Dates.Donation != nil && *q.Dates.Donation == domain.DonationSpec{Year: 2021, Month: 5, Day: 1} &&
			q.ConversionDate != nil && q.ConversionDate.Equal(time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)) &&
			q.CurrencyCode == "USD" && q.Language == "en"
	})).Return(&domain.EvaluationReport{Evaluations: []domain.ConvertedEvaluation{}, NotFound: true}, nil).Once()

	w, body := s.get("/evaluations?donation_year=2021&donation_month=5&conversion_year=2022&conversion_day=3&currency=usd")

	s.Equal(http.StatusOK, w.Code)
	s.Equal([]any{}, body["evaluations"])
	s.Equal([]any{"No evaluations found with those parameters"}, body["warnings"])
}

func (s *HandlersTestSuite) TestListEvaluations_UnsupportedCurrencyAndLanguage() {
	var verrs apperrors.ValidationErrors
	verrs.Add(apperrors.NewUnsupportedCurrencyError("XYZ"))
	verrs.Add(apperrors.NewUnsupportedLanguageError("de"))
	s.validator.On("Validate", mock.Anything, "XYZ", "de").Return(&verrs).Once()

	w, body := s.get("/evaluations?currency=XYZ&language=de")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal([]any{"Currency XYZ not supported", "Language code de not supported"}, body["errors"])
}

func (s *HandlersTestSuite) TestListEvaluations_InvalidParams() {
	tests := []struct {
		query string
		want  []any
	}{
		{query: "start_month=13", want: []any{"start_month must be at most 12"}},
		{query: "start_year=abc", want: nil},
		{query: "conversion_year=2021&conversion_month=2&conversion_day=30", want: []any{"conversion date 2021-2-30 does not exist"}},
		{query: "conversion_year=2022&conversion_month=10", want: []any{"conversion date 2022-10-01 is in the future"}},
	}
	for _, tt := range tests {
		s.Run(tt.query, func() {
			s.validator.On("Validate", mock.Anything, "", "").Return(nil).Once()

			w, body := s.get("/evaluations?" + tt.query)

			s.Equal(http.StatusBadRequest, w.Code)
			s.Require().Contains(body, "errors")
			if tt.want != nil {
				s.Equal(tt.want, body["errors"])
			}
		})
	}
	s.evaluations.AssertNotCalled(s.T(), "ListEvaluations", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestListEvaluations_ServiceErrors() {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "rate fetch", err: fmt.Errorf("refresh: %w", apperrors.ErrRateFetch), code: http.StatusBadGateway},
		{name: "rate unavailable", err: fmt.Errorf("convert: %w", apperrors.ErrRateUnavailable), code: http.StatusInternalServerError},
		{name: "validation", err: apperrors.NewValidationError("bad"), code: http.StatusBadRequest},
		{name: "store", err: errors.New("connection reset"), code: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.validator.On("Validate", mock.Anything, "", "").Return(nil).Once()
			s.evaluations.On("ListEvaluations", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w, body := s.get("/evaluations")

			s.Equal(tt.code, w.Code)
			s.Contains(body, "errors")
		})
	}
}

func (s *HandlersTestSuite) TestListEvaluations_ConversionErrorsAreBadRequests() {
	tests := []struct {
		name string
		err  error
		want []any
	}{
		{
			name: "unsupported currency",
			err:  fmt.Errorf("failed to convert evaluation 1: %w", apperrors.NewUnsupportedCurrencyError("XYZ")),
			want: []any{"Currency XYZ not supported"},
		},
		{
			name: "unsupported language",
			err:  fmt.Errorf("failed to convert evaluation 1: %w", apperrors.NewUnsupportedLanguageError("de")),
			want: []any{"Language code de not supported"},
		},
		{
			name: "date before the rate table",
			err:  fmt.Errorf("failed to convert evaluation 1: %w", apperrors.NewValidationError("No exchange rates before 1999-01-04")),
			want: []any{"No exchange rates before 1999-01-04"},
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.validator.On("Validate", mock.Anything, "", "").Return(nil).Once()
			s.evaluations.On("ListEvaluations", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w, body := s.get("/evaluations")

			s.Equal(http.StatusBadRequest, w.Code)
			s.Equal(tt.want, body["errors"])
		})
	}
}

func (s *HandlersTestSuite) TestListGrants() {
	upper := int64(250)
	report := &domain.GrantReport{
		Kind: domain.GrantKindAllGrantsFund,
		Grants: []domain.ConvertedGrant{{
			Grant: domain.Grant{GrantID: 5, Kind: domain.GrantKindAllGrantsFund, StartYear: 2021, StartMonth: 6},
			Allotments: []domain.ConvertedAllotment{{
				Allotment: domain.Allotment{
					AllotmentID:                      9,
					Charity:                          domain.Charity{CharityID: 1, Abbreviation: "AMF"},
					SumInCents:                       100000,
					NumberOutputsPurchased:           200,
					NumberOutputsPurchasedLowerBound: 150,
					NumberOutputsPurchasedUpperBound: &upper,
				},
				Sum:           domain.ConvertedValue{Amount: 8500, ExchangeRateDate: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)},
				CostPerOutput: domain.ConvertedValue{Amount: 42.5, ExchangeRateDate: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)},
				Currency:      "NOK",
			}},
			Language: "no",
		}},
	}
	s.validator.On("Validate", mock.Anything, "", "no").Return(nil).Once()
	s.grants.On("ListGrants", mock.Anything, domain.GrantKindAllGrantsFund, mock.MatchedBy(func(q domain.RecordQuery) bool {
		return q.Dates.Donation != nil && q.Language == "no"
	})).Return(report, nil).Once()

	w, body := s.get("/all_grants_fund_grants?donation_year=2022&language=no")

	s.Equal(http.StatusOK, w.Code)
	s.NotContains(body, "warnings")
	grants := body["all_grants_fund_grants"].([]any)
	s.Require().Len(grants, 1)
	g := grants[0].(map[string]any)
	s.Equal(float64(2021), g["start_year"])
	s.Equal("no", g["language"])
	allotments := g["allotment_set"].([]any)
	s.Require().Len(allotments, 1)
	a := allotments[0].(map[string]any)
	s.Equal(float64(8500), a["converted_sum"])
	s.Equal(42.5, a["converted_cost_per_output"])
	s.Equal("NOK", a["currency"])
	s.Equal("2021-06-01", a["exchange_rate_date"])
}

func (s *HandlersTestSuite) TestListGrants_NotFound() {
	s.validator.On("Validate", mock.Anything, "", "").Return(nil).Once()
	s.grants.On("ListGrants", mock.Anything, domain.GrantKindMaxImpactFund, mock.Anything).
		Return(&domain.GrantReport{Kind: domain.GrantKindMaxImpactFund, Grants: []domain.ConvertedGrant{}, NotFound: true}, nil).Once()

	w, body := s.get("/max_impact_fund_grants?start_year=2030")

	s.Equal(http.StatusOK, w.Code)
	s.Equal([]any{}, body["max_impact_fund_grants"])
	s.Equal([]any{"No grants found with those parameters"}, body["warnings"])
}

func (s *HandlersTestSuite) TestListCurrencies() {
	s.converter.On("SupportedCurrencies", mock.Anything).Return([]string{"EUR", "NOK", "USD"}, nil).Once()
	s.validator.On("SupportedLanguages").Return([]string{"en", "no"}).Once()

	w, body := s.get("/currencies")

	s.Equal(http.StatusOK, w.Code)
	s.Equal([]any{"EUR", "NOK", "USD"}, body["currencies"])
	s.Equal([]any{"en", "no"}, body["languages"])
}

func (s *HandlersTestSuite) TestListCurrencies_RateFetchFailure() {
	s.converter.On("SupportedCurrencies", mock.Anything).Return(nil, fmt.Errorf("download: %w", apperrors.ErrRateFetch)).Once()

	w, body := s.get("/currencies")

	s.Equal(http.StatusBadGateway, w.Code)
	s.Equal([]any{"Exchange rates are currently unavailable"}, body["errors"])
}
