package models

// Charity is a row of the charities table.
type Charity struct {
	CharityID    int64  `db:"charity_id"`
	CharityName  string `db:"charity_name"`
	Abbreviation string `db:"abbreviation"`
}

// Intervention is a row of the interventions table.
type Intervention struct {
	InterventionID   int64  `db:"intervention_id"`
	ShortDescription string `db:"short_description"`
	LongDescription  string `db:"long_description"`
}
