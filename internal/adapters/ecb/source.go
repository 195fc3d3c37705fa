// Package ecb stores and parses the European Central Bank's historical euro foreign
// exchange reference rates.
package ecb

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/impact_api/internal/core/domain"
	portsrepo "github.com/SscSPs/impact_api/internal/core/ports/repositories"
	"github.com/SscSPs/impact_api/internal/middleware"
	"github.com/shopspring/decimal"
)

const (
	// DefaultURL is the ECB's full reference rate history since 1999.
	DefaultURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist.zip"

	// DefaultTimeout bounds a single download.
	DefaultTimeout = 30 * time.Second

	// BaseCurrency is the currency every ECB reference rate is quoted against.
	BaseCurrency = "EUR"

	filePrefix = "eurofxref-hist-"
	fileSuffix = ".zip"
)

// missingValue marks a currency that was not quoted on a date.
const missingValue = "N/A"

// Source keeps one copy of the ECB history per calendar day under dir.
type Source struct {
	url    string
	dir    string
	client *http.Client
}

// Option is a functional option for configuring the source
type Option func(*Source)

// WithHTTPClient replaces the HTTP client used for downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Source) {
		s.client = client
	}
}

// NewSource creates a source downloading from url into dir. Empty values select
// DefaultURL and the working directory; a non-positive timeout selects DefaultTimeout.
func NewSource(url, dir string, timeout time.Duration, options ...Option) *Source {
	if url == "" {
		url = DefaultURL
	}
	if dir == "" {
		dir = "."
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s := &Source{
		url:    url,
		dir:    dir,
		client: &http.Client{Timeout: timeout},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var _ portsrepo.RateTableSource = (*Source)(nil)

// Path returns where the table for day is stored.
func (s *Source) Path(day time.Time) string {
	return filepath.Join(s.dir, filePrefix+day.Format(time.DateOnly)+fileSuffix)
}

func (s *Source) Exists(_ context.Context, day time.Time) (bool, error) {
	info, err := os.Stat(s.Path(day))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat rate table: %w", err)
	}
	return !info.IsDir(), nil
}

// Fetch downloads the history and stores it for day. The file only appears once the
// download is complete, so a failed fetch never leaves a truncated table behind.
func (s *Source) Fetch(ctx context.Context, day time.Time) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create rate table directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build rate table request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download rate table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download rate table: unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp(s.dir, filePrefix+"*.part")
	if err != nil {
		return fmt.Errorf("failed to create rate table file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write rate table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write rate table: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(day)); err != nil {
		return fmt.Errorf("failed to store rate table: %w", err)
	}

	s.prune(ctx, day)
	return nil
}

// prune removes tables stored for days before the previous one, leaving the previous
// day's table for loads that started before midnight. Failures are only logged.
func (s *Source) prune(ctx context.Context, keep time.Time) {
	matches, err := filepath.Glob(filepath.Join(s.dir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return
	}
	kept := map[string]bool{s.Path(keep): true, s.Path(keep.AddDate(0, 0, -1)): true}
	for _, path := range matches {
		if kept[path] {
			continue
		}
		if err := os.Remove(path); err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Failed to remove old rate table",
				slog.String("path", path), slog.String("error", err.Error()))
		}
	}
}

// Load parses the table stored for day.
func (s *Source) Load(_ context.Context, day time.Time) (*domain.RateTable, error) {
	archive, err := zip.OpenReader(s.Path(day))
	if err != nil {
		return nil, fmt.Errorf("failed to open rate table: %w", err)
	}
	defer archive.Close()

	for _, f := range archive.File {
		if !strings.EqualFold(filepath.Ext(f.Name), ".csv") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
		}
		defer rc.Close()
		return Parse(rc, day)
	}
	return nil, fmt.Errorf("rate table archive contains no csv file")
}

// Parse reads the ECB history CSV: a header of "Date" followed by currency codes, then
// one row per business day. Blank and N/A cells are left out of the table.
func Parse(r io.Reader, day time.Time) (*domain.RateTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read rate table header: %w", err)
	}
	if len(header) == 0 || !strings.EqualFold(strings.TrimSpace(header[0]), "date") {
		return nil, fmt.Errorf("unexpected rate table header %q", strings.Join(header, ","))
	}
	codes := make([]string, len(header))
	for i, h := range header[1:] {
		codes[i+1] = strings.ToUpper(strings.TrimSpace(h))
	}

	table := domain.NewRateTable(BaseCurrency, day)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rate table: %w", err)
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		date, err := time.Parse(time.DateOnly, strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid rate date %q: %w", record[0], err)
		}
		for i := 1; i < len(record) && i < len(codes); i++ {
			value := strings.TrimSpace(record[i])
			if codes[i] == "" || value == "" || value == missingValue {
				continue
			}
			rate, err := decimal.NewFromString(value)
			if err != nil {
				return nil, fmt.Errorf("invalid %s rate %q on %s: %w", codes[i], value, date.Format(time.DateOnly), err)
			}
			table.Add(date, codes[i], rate)
		}
	}
	return table, nil
}
