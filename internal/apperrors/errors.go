package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnsupportedCurrency indicates a currency code missing from the exchange rate table.
var ErrUnsupportedCurrency = errors.New("currency not supported")

// ErrUnsupportedLanguage indicates a language code outside the configured set.
var ErrUnsupportedLanguage = errors.New("language not supported")

// ErrRateFetch indicates the exchange rate table could not be downloaded or read.
var ErrRateFetch = errors.New("exchange rate table unavailable")

// ErrRateUnavailable indicates that no rate was found within the lookback window.
var ErrRateUnavailable = errors.New("no exchange rate within lookback window")

// AppError carries an HTTP-ish status code alongside a message and a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewConflictError creates an AppError that matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewUnsupportedCurrencyError reports a currency missing from the rate table.
func NewUnsupportedCurrencyError(code string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: fmt.Sprintf("Currency %s not supported", code), Err: ErrUnsupportedCurrency}
}

// NewUnsupportedLanguageError reports a language outside the configured set.
func NewUnsupportedLanguageError(code string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: fmt.Sprintf("Language code %s not supported", code), Err: ErrUnsupportedLanguage}
}

// ValidationErrors collects several user-facing validation failures so they can be
// reported together rather than one at a time.
type ValidationErrors struct {
	errs []error
}

// Add appends err to the collection. Nil errors are ignored.
func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.errs = append(v.errs, err)
	}
}

// Empty reports whether no failures were collected.
func (v *ValidationErrors) Empty() bool {
	return len(v.errs) == 0
}

// Messages returns the user-facing message of every collected failure, in insertion
// order. AppErrors contribute their Message without the wrapped cause.
func (v *ValidationErrors) Messages() []string {
	msgs := make([]string, len(v.errs))
	for i, err := range v.errs {
		var appErr *AppError
		if errors.As(err, &appErr) {
			msgs[i] = appErr.Message
			continue
		}
		msgs[i] = err.Error()
	}
	return msgs
}

// ErrOrNil returns v as an error when failures were collected, nil otherwise.
func (v *ValidationErrors) ErrOrNil() error {
	if v.Empty() {
		return nil
	}
	return v
}

func (v *ValidationErrors) Error() string {
	return strings.Join(v.Messages(), "; ")
}

// Is makes every ValidationErrors match ErrValidation, plus any sentinel one of its
// collected failures matches.
func (v *ValidationErrors) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	for _, err := range v.errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// MessagesOf extracts the individual messages from err when it is a ValidationErrors,
// the user-facing message when it wraps an AppError, or err's message otherwise.
func MessagesOf(err error) []string {
	var verrs *ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.Messages()
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return []string{appErr.Message}
	}
	return []string{err.Error()}
}
