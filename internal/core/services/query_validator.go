package services

import (
	"context"
	"slices"
	"strings"

	"github.com/SscSPs/impact_api/internal/apperrors"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
)

// queryValidator checks report parameters that depend on runtime data.
type queryValidator struct {
	converter portssvc.CurrencyConverterSvc
	languages []string
}

// NewQueryValidator creates a validator accepting the given language codes.
func NewQueryValidator(converter portssvc.CurrencyConverterSvc, languages []string) portssvc.QueryValidatorSvc {
	normalized := make([]string, 0, len(languages))
	for _, l := range languages {
		if l = strings.ToLower(strings.TrimSpace(l)); l != "" {
			normalized = append(normalized, l)
		}
	}
	return &queryValidator{converter: converter, languages: normalized}
}

var _ portssvc.QueryValidatorSvc = (*queryValidator)(nil)

// Validate reports an unsupported currency and an unsupported language together. A
// failure to load the rate table is returned as is, since it is not the caller's fault.
func (v *queryValidator) Validate(ctx context.Context, currency, language string) error {
	var verrs apperrors.ValidationErrors

	if currency = strings.TrimSpace(currency); currency != "" {
		code := strings.ToUpper(currency)
		supported, err := v.converter.SupportedCurrencies(ctx)
		if err != nil {
			return err
		}
		if !slices.Contains(supported, code) {
			verrs.Add(apperrors.NewUnsupportedCurrencyError(code))
		}
	}

	if language = strings.TrimSpace(language); language != "" {
		code := strings.ToLower(language)
		if !slices.Contains(v.languages, code) {
			verrs.Add(apperrors.NewUnsupportedLanguageError(code))
		}
	}

	return verrs.ErrOrNil()
}

func (v *queryValidator) SupportedLanguages() []string {
	return slices.Clone(v.languages)
}
