package models

// Evaluation is a row of the evaluations table joined with its charity and
// intervention.
type Evaluation struct {
	EvaluationID             int64  `db:"evaluation_id"`
	StartYear                int    `db:"start_year"`
	StartMonth               int    `db:"start_month"`
	CentsPerOutput           int64  `db:"cents_per_output"`
	CentsPerOutputLowerBound int64  `db:"cents_per_output_lower_bound"`
	CentsPerOutputUpperBound *int64 `db:"cents_per_output_upper_bound"` // Nullable
	SourceName               string `db:"source_name"`
	SourceURL                string `db:"source_url"`
	Comment                  string `db:"comment"`
	Charity                  Charity
	Intervention             Intervention
}
