package domain

import "time"

// DatedRecord is anything stamped with a start year and month that belongs to a
// timeline identified by its group key.
type DatedRecord interface {
	StartYearMonth() YearMonth
	GroupKey() string
}

// RecordQuery is the validated, defaulted form of a report request.
type RecordQuery struct {
	Dates                DateSpec
	CharityAbbreviations []string
	CurrencyCode         string
	Language             string
	// ConversionDate overrides every record's own start date for rate lookups only.
	// Record selection is never affected by it.
	ConversionDate *time.Time
}

// ConversionDateFor returns the override when present, otherwise the record's date.
func (q RecordQuery) ConversionDateFor(recordDate time.Time) time.Time {
	if q.ConversionDate != nil {
		return *q.ConversionDate
	}
	return recordDate
}

// ConvertedEvaluation pairs an evaluation with its converted cost per output.
type ConvertedEvaluation struct {
	Evaluation    Evaluation
	CostPerOutput ConvertedValue
	Currency      string
	Language      string
}

// EvaluationReport is the outcome of an evaluation query. NotFound distinguishes a
// valid query without matches from a failure.
type EvaluationReport struct {
	Evaluations []ConvertedEvaluation
	NotFound    bool
}

// ConvertedAllotment pairs an allotment with its converted monetary fields.
type ConvertedAllotment struct {
	Allotment     Allotment
	Sum           ConvertedValue
	CostPerOutput ConvertedValue
	Currency      string
}

// ConvertedGrant is a grant whose allotments have been converted.
type ConvertedGrant struct {
	Grant      Grant
	Allotments []ConvertedAllotment
	Language   string
}

// GrantReport is the outcome of a grant query.
type GrantReport struct {
	Kind     GrantKind
	Grants   []ConvertedGrant
	NotFound bool
}
