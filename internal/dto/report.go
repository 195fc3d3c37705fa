package dto

import (
	"github.com/SscSPs/impact_api/internal/core/domain"
	"github.com/SscSPs/impact_api/internal/utils"
)

// Warning texts for valid queries without matches.
const (
	NoEvaluationsWarning = "No evaluations found with those parameters"
	NoGrantsWarning      = "No grants found with those parameters"
)

// CharityResponse defines the data returned for a charity.
type CharityResponse struct {
	ID           int64  `json:"id"`
	CharityName  string `json:"charity_name"`
	Abbreviation string `json:"abbreviation"`
}

// InterventionResponse defines the data returned for an intervention.
type InterventionResponse struct {
	ID               int64  `json:"id"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
}

// EvaluationResponse is an evaluation with its cost per output converted.
type EvaluationResponse struct {
	ID                       int64                `json:"id"`
	Charity                  CharityResponse      `json:"charity"`
	Intervention             InterventionResponse `json:"intervention"`
	StartYear                int                  `json:"start_year"`
	StartMonth               int                  `json:"start_month"`
	CentsPerOutput           int64                `json:"cents_per_output"`
	CentsPerOutputLowerBound int64                `json:"cents_per_output_lower_bound"`
	CentsPerOutputUpperBound *int64               `json:"cents_per_output_upper_bound"`
	SourceName               string               `json:"source_name"`
	SourceURL                string               `json:"source_url"`
	Comment                  string               `json:"comment"`
	ConvertedCostPerOutput   float64              `json:"converted_cost_per_output"`
	Currency                 string               `json:"currency"`
	Language                 string               `json:"language"`
	ExchangeRateDate         string               `json:"exchange_rate_date"`
}

// EvaluationsResponse is the body of the evaluations report.
type EvaluationsResponse struct {
	Evaluations []EvaluationResponse `json:"evaluations"`
	Warnings    []string             `json:"warnings,omitempty"`
}

// AllotmentResponse is an allotment with its sum and cost per output converted.
type AllotmentResponse struct {
	ID                               int64                `json:"id"`
	Charity                          CharityResponse      `json:"charity"`
	Intervention                     InterventionResponse `json:"intervention"`
	SumInCents                       int64                `json:"sum_in_cents"`
	NumberOutputsPurchased           int64                `json:"number_outputs_purchased"`
	NumberOutputsPurchasedLowerBound int64                `json:"number_outputs_purchased_lower_bound"`
	NumberOutputsPurchasedUpperBound *int64               `json:"number_outputs_purchased_upper_bound"`
	SourceName                       string               `json:"source_name"`
	SourceURL                        string               `json:"source_url"`
	Comment                          string               `json:"comment"`
	ConvertedSum                     float64              `json:"converted_sum"`
	ConvertedCostPerOutput           float64              `json:"converted_cost_per_output"`
	Currency                         string               `json:"currency"`
	ExchangeRateDate                 string               `json:"exchange_rate_date"`
}

// GrantResponse is a fund grant with its converted allotments.
type GrantResponse struct {
	ID           int64               `json:"id"`
	StartYear    int                 `json:"start_year"`
	StartMonth   int                 `json:"start_month"`
	AllotmentSet []AllotmentResponse `json:"allotment_set"`
	Language     string              `json:"language"`
}

// CurrenciesResponse lists the currency codes conversions are available for.
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
	Languages  []string `json:"languages"`
}

// ErrorsResponse carries every validation failure of a request.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

func toCharityResponse(c domain.Charity) CharityResponse {
	return CharityResponse{ID: c.CharityID, CharityName: c.CharityName, Abbreviation: c.Abbreviation}
}

func toInterventionResponse(i domain.Intervention) InterventionResponse {
	return InterventionResponse{ID: i.InterventionID, ShortDescription: i.ShortDescription, LongDescription: i.LongDescription}
}

// ToEvaluationsResponse converts an evaluation report to its response body.
func ToEvaluationsResponse(report *domain.EvaluationReport) EvaluationsResponse {
	res := EvaluationsResponse{Evaluations: make([]EvaluationResponse, len(report.Evaluations))}
	for i, ce := range report.Evaluations {
		e := ce.Evaluation
		res.Evaluations[i] = EvaluationResponse{
			ID:                       e.EvaluationID,
			Charity:                  toCharityResponse(e.Charity),
			Intervention:             toInterventionResponse(e.Intervention),
			StartYear:                e.StartYear,
			StartMonth:               e.StartMonth,
			CentsPerOutput:           e.CentsPerOutput,
			CentsPerOutputLowerBound: e.CentsPerOutputLowerBound,
			CentsPerOutputUpperBound: e.CentsPerOutputUpperBound,
			SourceName:               e.SourceName,
			SourceURL:                e.SourceURL,
			Comment:                  e.Comment,
			ConvertedCostPerOutput:   ce.CostPerOutput.Amount,
			Currency:                 ce.Currency,
			Language:                 ce.Language,
			ExchangeRateDate:         utils.FormatDate(ce.CostPerOutput.ExchangeRateDate),
		}
	}
	if report.NotFound {
		res.Warnings = []string{NoEvaluationsWarning}
	}
	return res
}

// ToGrantResponses converts a grant report to the list returned under the fund's key.
func ToGrantResponses(report *domain.GrantReport) []GrantResponse {
	grants := make([]GrantResponse, len(report.Grants))
	for i, cg := range report.Grants {
		g := GrantResponse{
			ID:           cg.Grant.GrantID,
			StartYear:    cg.Grant.StartYear,
			StartMonth:   cg.Grant.StartMonth,
			AllotmentSet: make([]AllotmentResponse, len(cg.Allotments)),
			Language:     cg.Language,
		}
		for j, ca := range cg.Allotments {
			a := ca.Allotment
			g.AllotmentSet[j] = AllotmentResponse{
				ID:                               a.AllotmentID,
				Charity:                          toCharityResponse(a.Charity),
				Intervention:                     toInterventionResponse(a.Intervention),
				SumInCents:                       a.SumInCents,
				NumberOutputsPurchased:           a.NumberOutputsPurchased,
				NumberOutputsPurchasedLowerBound: a.NumberOutputsPurchasedLowerBound,
				NumberOutputsPurchasedUpperBound: a.NumberOutputsPurchasedUpperBound,
				SourceName:                       a.SourceName,
				SourceURL:                        a.SourceURL,
				Comment:                          a.Comment,
				ConvertedSum:                     ca.Sum.Amount,
				ConvertedCostPerOutput:           ca.CostPerOutput.Amount,
				Currency:                         ca.Currency,
				ExchangeRateDate:                 utils.FormatDate(ca.Sum.ExchangeRateDate),
			}
		}
		grants[i] = g
	}
	return grants
}

// GrantWarnings returns the warnings for a grant report.
func GrantWarnings(report *domain.GrantReport) []string {
	if report.NotFound {
		return []string{NoGrantsWarning}
	}
	return nil
}
