package domain

import (
	"fmt"
	"time"
)

// Earliest year a charity evaluation or grant can be stamped with.
const (
	FirstRecordYear  = 2000
	FirstRecordMonth = 1
	LastRecordMonth  = 12
)

// YearMonth is a month-granular calendar position, compared year first then month.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Compare returns -1, 0 or 1 as ym is before, equal to or after other.
func (ym YearMonth) Compare(other YearMonth) int {
	switch {
	case ym.Year < other.Year:
		return -1
	case ym.Year > other.Year:
		return 1
	case ym.Month < other.Month:
		return -1
	case ym.Month > other.Month:
		return 1
	default:
		return 0
	}
}

// Between reports whether ym lies within [from, to] inclusive.
func (ym YearMonth) Between(from, to YearMonth) bool {
	return ym.Compare(from) >= 0 && ym.Compare(to) <= 0
}

// FirstDay returns the first day of the month in UTC.
func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// ValidateRecordDate checks a record stamp: year in [2000, current year], month in [1, 12].
func ValidateRecordDate(year, month int, now time.Time) error {
	if year < FirstRecordYear || year > now.Year() {
		return fmt.Errorf("year %d must be between %d and %d", year, FirstRecordYear, now.Year())
	}
	if month < FirstRecordMonth || month > LastRecordMonth {
		return fmt.Errorf("month %d must be a number from 1-12", month)
	}
	return nil
}

// RangeSpec selects every record stamped within [Start, End] inclusive.
type RangeSpec struct {
	Start YearMonth
	End   YearMonth
}

// NewRangeSpec fills any unset (zero) bound with its default: 2000-01 for the start
// and December of the current year for the end.
func NewRangeSpec(startYear, startMonth, endYear, endMonth int, now time.Time) RangeSpec {
	if startYear == 0 {
		startYear = FirstRecordYear
	}
	if startMonth == 0 {
		startMonth = FirstRecordMonth
	}
	if endYear == 0 {
		endYear = now.Year()
	}
	if endMonth == 0 {
		endMonth = LastRecordMonth
	}
	return RangeSpec{
		Start: YearMonth{Year: startYear, Month: startMonth},
		End:   YearMonth{Year: endYear, Month: endMonth},
	}
}

// Contains reports whether ym falls within the range.
func (r RangeSpec) Contains(ym YearMonth) bool {
	return ym.Between(r.Start, r.End)
}

// DonationSpec selects, per group, the latest record at or before the donation month.
// Day is carried for symmetry with conversion dates; selection is month-granular.
type DonationSpec struct {
	Year  int
	Month int
	Day   int
}

// NewDonationSpec defaults month and day to 1 when unset.
func NewDonationSpec(year, month, day int) DonationSpec {
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return DonationSpec{Year: year, Month: month, Day: day}
}

// Cutoff is the last month a record may be stamped with to qualify.
func (d DonationSpec) Cutoff() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

// Qualifies reports whether a record stamped ym is in effect at the donation date.
func (d DonationSpec) Qualifies(ym YearMonth) bool {
	return ym.Compare(d.Cutoff()) <= 0
}

// DateSpec is exactly one of a range or a donation date selection.
type DateSpec struct {
	Range    *RangeSpec
	Donation *DonationSpec
}

// IsDonation reports whether records are selected by donation date.
func (s DateSpec) IsDonation() bool {
	return s.Donation != nil
}

// DateParams are the raw, already-validated calendar query fields. Zero means unset.
type DateParams struct {
	StartYear, StartMonth       int
	EndYear, EndMonth           int
	DonationYear, DonationMonth int
	DonationDay                 int
}

// NewDateSpec builds the selection mode from params. A donation year takes precedence
// over any range fields.
func NewDateSpec(p DateParams, now time.Time) DateSpec {
	if p.DonationYear != 0 {
		donation := NewDonationSpec(p.DonationYear, p.DonationMonth, p.DonationDay)
		return DateSpec{Donation: &donation}
	}
	rng := NewRangeSpec(p.StartYear, p.StartMonth, p.EndYear, p.EndMonth, now)
	return DateSpec{Range: &rng}
}

// ConversionOverride builds an explicit conversion date from year/month/day query
// fields. It returns nil when no conversion year is given; month and day default to 1.
func ConversionOverride(year, month, day int) *time.Time {
	if year == 0 {
		return nil
	}
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

// TruncateDay drops the time of day, keeping the calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
