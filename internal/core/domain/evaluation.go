package domain

import (
	"errors"
	"fmt"
	"time"
)

// Evaluation is a charity's cost per output as estimated from a given month onwards.
// Unique by charity, start year and start month.
type Evaluation struct {
	EvaluationID             int64
	Charity                  Charity
	Intervention             Intervention
	StartYear                int
	StartMonth               int
	CentsPerOutput           int64
	CentsPerOutputLowerBound int64
	CentsPerOutputUpperBound *int64
	SourceName               string
	SourceURL                string
	Comment                  string
}

// StartYearMonth implements DatedRecord.
func (e Evaluation) StartYearMonth() YearMonth {
	return YearMonth{Year: e.StartYear, Month: e.StartMonth}
}

// GroupKey implements DatedRecord; evaluations form one timeline per charity.
func (e Evaluation) GroupKey() string {
	return e.Charity.Abbreviation
}

// StartDate is the record's natural conversion date.
func (e Evaluation) StartDate() time.Time {
	return e.StartYearMonth().FirstDay()
}

// Validate checks the record stamp and that the bounds bracket the estimate.
func (e Evaluation) Validate(now time.Time) error {
	var errs []error
	if err := ValidateRecordDate(e.StartYear, e.StartMonth, now); err != nil {
		errs = append(errs, err)
	}
	if e.CentsPerOutput <= 0 {
		errs = append(errs, fmt.Errorf("cents per output must be positive"))
	}
	if e.CentsPerOutputLowerBound >= e.CentsPerOutput {
		errs = append(errs, fmt.Errorf("cents per output lower bound must be less than cents per output"))
	}
	if e.CentsPerOutputUpperBound != nil && *e.CentsPerOutputUpperBound <= e.CentsPerOutput {
		errs = append(errs, fmt.Errorf("cents per output upper bound must be greater than cents per output"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("evaluation %s %s: %w", e.Charity.Abbreviation, e.StartYearMonth(), errors.Join(errs...))
	}
	return nil
}
