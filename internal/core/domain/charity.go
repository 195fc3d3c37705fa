package domain

import "strings"

// Charity is an organisation whose cost-effectiveness is evaluated.
type Charity struct {
	CharityID    int64  `json:"id"`
	CharityName  string `json:"charity_name"`
	Abbreviation string `json:"abbreviation"`
}

// NormalizeAbbreviation upper-cases a charity code. Lookups are case-insensitive.
func NormalizeAbbreviation(abbreviation string) string {
	return strings.ToUpper(strings.TrimSpace(abbreviation))
}

// NormalizeAbbreviations upper-cases every code, dropping blanks and duplicates while
// keeping first-seen order.
func NormalizeAbbreviations(abbreviations []string) []string {
	seen := make(map[string]struct{}, len(abbreviations))
	out := make([]string, 0, len(abbreviations))
	for _, a := range abbreviations {
		n := NormalizeAbbreviation(a)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Intervention is the kind of programme an evaluation or allotment pays for.
type Intervention struct {
	InterventionID   int64  `json:"id"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
}
