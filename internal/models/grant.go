package models

// Grant is a row of the grants table.
type Grant struct {
	GrantID    int64  `db:"grant_id"`
	Kind       string `db:"kind"`
	StartYear  int    `db:"start_year"`
	StartMonth int    `db:"start_month"`
}

// Allotment is a row of the allotments table joined with its charity and
// intervention.
type Allotment struct {
	AllotmentID                      int64  `db:"allotment_id"`
	GrantID                          int64  `db:"grant_id"`
	SumInCents                       int64  `db:"sum_in_cents"`
	NumberOutputsPurchased           int64  `db:"number_outputs_purchased"`
	NumberOutputsPurchasedLowerBound int64  `db:"number_outputs_purchased_lower_bound"`
	NumberOutputsPurchasedUpperBound *int64 `db:"number_outputs_purchased_upper_bound"` // Nullable
	SourceName                       string `db:"source_name"`
	SourceURL                        string `db:"source_url"`
	Comment                          string `db:"comment"`
	Charity                          Charity
	Intervention                     Intervention
}
