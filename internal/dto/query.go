package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/impact_api/internal/apperrors"
	"github.com/SscSPs/impact_api/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RecordQueryParams are the query string parameters shared by every report endpoint.
// Zero values mean the parameter was not given.
type RecordQueryParams struct {
	StartYear  int `form:"start_year" binding:"omitempty,min=2000,max=9999"`
	StartMonth int `form:"start_month" binding:"omitempty,min=1,max=12"`
	EndYear    int `form:"end_year" binding:"omitempty,min=2000,max=9999"`
	EndMonth   int `form:"end_month" binding:"omitempty,min=1,max=12"`

	DonationYear  int `form:"donation_year" binding:"omitempty,min=2000,max=9999"`
	DonationMonth int `form:"donation_month" binding:"omitempty,min=1,max=12"`
	DonationDay   int `form:"donation_day" binding:"omitempty,min=1,max=31"`

	ConversionYear  int `form:"conversion_year" binding:"omitempty,min=1999,max=9999"`
	ConversionMonth int `form:"conversion_month" binding:"omitempty,min=1,max=12"`
	ConversionDay   int `form:"conversion_day" binding:"omitempty,min=1,max=31"`

	CharityAbbreviations []string `form:"charity_abbreviation" binding:"omitempty,dive,max=10"`
	Currency             string   `form:"currency" binding:"omitempty,alpha,len=3"`
	Language             string   `form:"language" binding:"omitempty,alpha,min=2,max=3"`
}

// Validate checks constraints spanning several parameters. A conversion date may not
// lie after today, since no rate can exist for it yet.
func (p RecordQueryParams) Validate(now time.Time) error {
	var verrs apperrors.ValidationErrors
	if p.ConversionYear == 0 && (p.ConversionMonth != 0 || p.ConversionDay != 0) {
		verrs.Add(apperrors.NewValidationError("conversion_month and conversion_day require conversion_year"))
	}
	if p.DonationYear == 0 && (p.DonationMonth != 0 || p.DonationDay != 0) {
		verrs.Add(apperrors.NewValidationError("donation_month and donation_day require donation_year"))
	}
	if p.ConversionYear != 0 && !validDate(p.ConversionYear, p.ConversionMonth, p.ConversionDay) {
		verrs.Add(apperrors.NewValidationError(fmt.Sprintf("conversion date %d-%d-%d does not exist", p.ConversionYear, p.ConversionMonth, p.ConversionDay)))
	}
	if override := domain.ConversionOverride(p.ConversionYear, p.ConversionMonth, p.ConversionDay); override != nil &&
		validDate(p.ConversionYear, p.ConversionMonth, p.ConversionDay) && override.After(domain.TruncateDay(now)) {
		verrs.Add(apperrors.NewValidationError(fmt.Sprintf("conversion date %s is in the future", override.Format(time.DateOnly))))
	}
	if p.DonationYear != 0 && !validDate(p.DonationYear, p.DonationMonth, p.DonationDay) {
		verrs.Add(apperrors.NewValidationError(fmt.Sprintf("donation date %d-%d-%d does not exist", p.DonationYear, p.DonationMonth, p.DonationDay)))
	}
	return verrs.ErrOrNil()
}

// validDate reports whether year-month-day names a real calendar day, treating an
// unset month or day as 1.
func validDate(year, month, day int) bool {
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// ToRecordQuery builds the defaulted query. An absent language selects defaultLanguage.
func (p RecordQueryParams) ToRecordQuery(now time.Time, defaultLanguage string) domain.RecordQuery {
	language := strings.ToLower(strings.TrimSpace(p.Language))
	if language == "" {
		language = defaultLanguage
	}
	return domain.RecordQuery{
		Dates: domain.NewDateSpec(domain.DateParams{
			StartYear:     p.StartYear,
			StartMonth:    p.StartMonth,
			EndYear:       p.EndYear,
			EndMonth:      p.EndMonth,
			DonationYear:  p.DonationYear,
			DonationMonth: p.DonationMonth,
			DonationDay:   p.DonationDay,
		}, now),
		CharityAbbreviations: domain.NormalizeAbbreviations(p.CharityAbbreviations),
		CurrencyCode:         strings.ToUpper(strings.TrimSpace(p.Currency)),
		Language:             language,
		ConversionDate:       domain.ConversionOverride(p.ConversionYear, p.ConversionMonth, p.ConversionDay),
	}
}

var registerTagNameOnce sync.Once

// UseFormFieldNames makes binding errors name query parameters by their form tag.
func UseFormFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
}

// BindingErrorMessages turns a query binding failure into one message per parameter.
func BindingErrorMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid query parameters: " + err.Error()}
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fieldErrorMessage(fe)
	}
	return msgs
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be %s characters long", field, fe.Param())
	case "alpha":
		return fmt.Sprintf("%s must contain letters only", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
