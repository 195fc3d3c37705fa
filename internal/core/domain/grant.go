package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// GrantKind distinguishes the funds that pay out grants. Each fund has a single
// timeline of at most one grant per month.
type GrantKind string

const (
	GrantKindMaxImpactFund GrantKind = "max_impact_fund"
	GrantKindAllGrantsFund GrantKind = "all_grants_fund"
)

// Valid reports whether k is a known fund.
func (k GrantKind) Valid() bool {
	return k == GrantKindMaxImpactFund || k == GrantKindAllGrantsFund
}

// Grant is a fund's payout for a month, split into allotments.
type Grant struct {
	GrantID    int64
	Kind       GrantKind
	StartYear  int
	StartMonth int
	Allotments []Allotment
}

// StartYearMonth implements DatedRecord.
func (g Grant) StartYearMonth() YearMonth {
	return YearMonth{Year: g.StartYear, Month: g.StartMonth}
}

// GroupKey implements DatedRecord; a fund has a single ungrouped timeline.
func (g Grant) GroupKey() string {
	return string(g.Kind)
}

// StartDate is the natural conversion date for every allotment of the grant.
func (g Grant) StartDate() time.Time {
	return g.StartYearMonth().FirstDay()
}

func (g Grant) String() string {
	switch g.Kind {
	case GrantKindAllGrantsFund:
		return fmt.Sprintf("All Grants Fund Grant %d-%d", g.StartYear, g.StartMonth)
	default:
		return fmt.Sprintf("Max Impact Fund Grant %d-%d", g.StartYear, g.StartMonth)
	}
}

// Validate checks the grant stamp and every allotment.
func (g Grant) Validate(now time.Time) error {
	var errs []error
	if !g.Kind.Valid() {
		errs = append(errs, fmt.Errorf("unknown grant kind %q", g.Kind))
	}
	if err := ValidateRecordDate(g.StartYear, g.StartMonth, now); err != nil {
		errs = append(errs, err)
	}
	for _, a := range g.Allotments {
		if err := a.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", g, errors.Join(errs...))
	}
	return nil
}

// Allotment is the part of a grant given to one charity for one intervention.
type Allotment struct {
	AllotmentID                      int64
	Charity                          Charity
	Intervention                     Intervention
	SumInCents                       int64
	NumberOutputsPurchased           int64
	NumberOutputsPurchasedLowerBound int64
	NumberOutputsPurchasedUpperBound *int64
	SourceName                       string
	SourceURL                        string
	Comment                          string
}

// CentsPerOutput is the sum divided by the outputs purchased.
func (a Allotment) CentsPerOutput() decimal.Decimal {
	if a.NumberOutputsPurchased == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(a.SumInCents).Div(decimal.NewFromInt(a.NumberOutputsPurchased))
}

// Validate checks that the output bounds bracket the number of outputs purchased.
func (a Allotment) Validate() error {
	if a.NumberOutputsPurchased <= 0 {
		return fmt.Errorf("allotment to %s: number of outputs purchased must be positive", a.Charity.Abbreviation)
	}
	if a.NumberOutputsPurchasedLowerBound >= a.NumberOutputsPurchased {
		return fmt.Errorf("allotment to %s: number_outputs_purchased_lower_bound must be less than number_outputs_purchased", a.Charity.Abbreviation)
	}
	if a.NumberOutputsPurchasedUpperBound != nil && *a.NumberOutputsPurchasedUpperBound <= a.NumberOutputsPurchased {
		return fmt.Errorf("allotment to %s: number_outputs_purchased_upper_bound must be greater than number_outputs_purchased", a.Charity.Abbreviation)
	}
	return nil
}
