package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency every stored amount is denominated in.
const BaseCurrency = "USD"

// DefaultLanguage is used when a request names no language.
const DefaultLanguage = "en"

// languageCurrencies maps a language to the currency its readers expect by default.
// Languages not listed default to USD.
var languageCurrencies = map[string]string{
	"no": "NOK",
	"en": "USD",
}

// DefaultCurrencyForLanguage returns the default currency for a language code.
func DefaultCurrencyForLanguage(language string) string {
	if code, ok := languageCurrencies[strings.ToLower(language)]; ok {
		return code
	}
	return BaseCurrency
}

// ResolveCurrencyCode upper-cases an explicit currency code, or falls back to the
// language default when none is given.
func ResolveCurrencyCode(explicit, language string) string {
	if code := strings.TrimSpace(explicit); code != "" {
		return strings.ToUpper(code)
	}
	return DefaultCurrencyForLanguage(language)
}

// ConversionTarget is where and when an amount should be converted to.
type ConversionTarget struct {
	CurrencyCode   string
	ConversionDate time.Time
}

// ConvertedValue is a converted amount together with the rate date actually used,
// which is never after the requested conversion date.
type ConvertedValue struct {
	Amount           float64
	ExchangeRateDate time.Time
}

// RateTable is a sparse, date-indexed set of reference rates quoted against Base.
// Dates without market data (weekends, holidays) are simply absent.
type RateTable struct {
	Base       string
	Day        time.Time
	rates      map[time.Time]map[string]decimal.Decimal
	currencies map[string]struct{}
	first      time.Time
	last       time.Time
}

// NewRateTable creates an empty table quoted against base and built on day.
func NewRateTable(base string, day time.Time) *RateTable {
	base = strings.ToUpper(base)
	return &RateTable{
		Base:       base,
		Day:        TruncateDay(day),
		rates:      make(map[time.Time]map[string]decimal.Decimal),
		currencies: map[string]struct{}{base: {}},
	}
}

// Add records one unit of Base buying rate units of code on date.
func (t *RateTable) Add(date time.Time, code string, rate decimal.Decimal) {
	date = TruncateDay(date)
	code = strings.ToUpper(code)
	row, ok := t.rates[date]
	if !ok {
		row = make(map[string]decimal.Decimal)
		t.rates[date] = row
	}
	row[code] = rate
	t.currencies[code] = struct{}{}
	if t.first.IsZero() || date.Before(t.first) {
		t.first = date
	}
	if date.After(t.last) {
		t.last = date
	}
}

// FirstDate is the earliest date with a rate, zero for an empty table.
func (t *RateTable) FirstDate() time.Time {
	return t.first
}

// LastDate is the latest date with a rate, zero for an empty table.
func (t *RateTable) LastDate() time.Time {
	return t.last
}

// Lookup returns how many units of quote one unit of base buys on date. Identical
// currencies always convert at 1.
func (t *RateTable) Lookup(base, quote string, date time.Time) (decimal.Decimal, bool) {
	base, quote = strings.ToUpper(base), strings.ToUpper(quote)
	if base == quote {
		return decimal.NewFromInt(1), true
	}
	row, ok := t.rates[TruncateDay(date)]
	if !ok {
		return decimal.Zero, false
	}
	baseRate, ok := t.rateIn(row, base)
	if !ok || baseRate.IsZero() {
		return decimal.Zero, false
	}
	quoteRate, ok := t.rateIn(row, quote)
	if !ok {
		return decimal.Zero, false
	}
	return quoteRate.Div(baseRate), true
}

func (t *RateTable) rateIn(row map[string]decimal.Decimal, code string) (decimal.Decimal, bool) {
	if code == t.Base {
		return decimal.NewFromInt(1), true
	}
	r, ok := row[code]
	return r, ok
}

// Has reports whether code appears anywhere in the table.
func (t *RateTable) Has(code string) bool {
	_, ok := t.currencies[strings.ToUpper(code)]
	return ok
}

// Currencies returns every known currency code, sorted.
func (t *RateTable) Currencies() []string {
	codes := make([]string, 0, len(t.currencies))
	for c := range t.currencies {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of dates with at least one rate.
func (t *RateTable) Len() int {
	return len(t.rates)
}
