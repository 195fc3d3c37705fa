package utils

import "time"

// FormatDate renders a calendar date as YYYY-MM-DD, the format used for every date
// in API responses.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
