// Package seed loads charities, interventions, evaluations and grants from a data
// file into the record store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/impact_api/internal/core/domain"
	portsrepo "github.com/SscSPs/impact_api/internal/core/ports/repositories"
	"github.com/spf13/viper"
)

// File is the seed data layout. Evaluations and allotments refer to charities by
// abbreviation and to interventions by short description.
type File struct {
	Charities     []Charity      `mapstructure:"charities"`
	Interventions []Intervention `mapstructure:"interventions"`
	Evaluations   []Evaluation   `mapstructure:"evaluations"`
	Grants        []Grant        `mapstructure:"grants"`
}

type Charity struct {
	CharityName  string `mapstructure:"charity_name"`
	Abbreviation string `mapstructure:"abbreviation"`
}

type Intervention struct {
	ShortDescription string `mapstructure:"short_description"`
	LongDescription  string `mapstructure:"long_description"`
}

type Evaluation struct {
	Charity                  string `mapstructure:"charity"`
	Intervention             string `mapstructure:"intervention"`
	StartYear                int    `mapstructure:"start_year"`
	StartMonth               int    `mapstructure:"start_month"`
	CentsPerOutput           int64  `mapstructure:"cents_per_output"`
	CentsPerOutputLowerBound int64  `mapstructure:"cents_per_output_lower_bound"`
	CentsPerOutputUpperBound *int64 `mapstructure:"cents_per_output_upper_bound"`
	SourceName               string `mapstructure:"source_name"`
	SourceURL                string `mapstructure:"source_url"`
	Comment                  string `mapstructure:"comment"`
}

type Grant struct {
	Kind       string      `mapstructure:"kind"`
	StartYear  int         `mapstructure:"start_year"`
	StartMonth int         `mapstructure:"start_month"`
	Allotments []Allotment `mapstructure:"allotments"`
}

type Allotment struct {
	Charity                          string `mapstructure:"charity"`
	Intervention                     string `mapstructure:"intervention"`
	SumInCents                       int64  `mapstructure:"sum_in_cents"`
	NumberOutputsPurchased           int64  `mapstructure:"number_outputs_purchased"`
	NumberOutputsPurchasedLowerBound int64  `mapstructure:"number_outputs_purchased_lower_bound"`
	NumberOutputsPurchasedUpperBound *int64 `mapstructure:"number_outputs_purchased_upper_bound"`
	SourceName                       string `mapstructure:"source_name"`
	SourceURL                        string `mapstructure:"source_url"`
	Comment                          string `mapstructure:"comment"`
}

// Load reads a YAML, JSON or TOML seed file; the format follows the extension.
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return &f, nil
}

// Dataset is a seed file resolved into domain records.
type Dataset struct {
	Charities     []domain.Charity
	Interventions []domain.Intervention
	Evaluations   []domain.Evaluation
	Grants        []domain.Grant
}

// Resolve turns the file into domain records, checking references and every record's
// validation rules. All problems are reported together.
func (f *File) Resolve(now time.Time) (*Dataset, error) {
	var errs []error
	ds := &Dataset{}

	charities := make(map[string]domain.Charity, len(f.Charities))
	for _, c := range f.Charities {
		ch := domain.Charity{CharityName: c.CharityName, Abbreviation: domain.NormalizeAbbreviation(c.Abbreviation)}
		if ch.Abbreviation == "" || ch.CharityName == "" {
			errs = append(errs, fmt.Errorf("charity %q: name and abbreviation are required", c.CharityName))
			continue
		}
		if _, dup := charities[ch.Abbreviation]; dup {
			errs = append(errs, fmt.Errorf("charity %s listed twice", ch.Abbreviation))
			continue
		}
		charities[ch.Abbreviation] = ch
		ds.Charities = append(ds.Charities, ch)
	}

	interventions := make(map[string]domain.Intervention, len(f.Interventions))
	for _, i := range f.Interventions {
		if i.ShortDescription == "" {
			errs = append(errs, errors.New("intervention: short description is required"))
			continue
		}
		if _, dup := interventions[i.ShortDescription]; dup {
			errs = append(errs, fmt.Errorf("intervention %q listed twice", i.ShortDescription))
			continue
		}
		in := domain.Intervention{ShortDescription: i.ShortDescription, LongDescription: i.LongDescription}
		interventions[in.ShortDescription] = in
		ds.Interventions = append(ds.Interventions, in)
	}

	refs := func(what, charity, intervention string) (domain.Charity, domain.Intervention, error) {
		c, ok := charities[domain.NormalizeAbbreviation(charity)]
		if !ok {
			return c, domain.Intervention{}, fmt.Errorf("%s: unknown charity %q", what, charity)
		}
		i, ok := interventions[intervention]
		if !ok {
			return c, i, fmt.Errorf("%s: unknown intervention %q", what, intervention)
		}
		return c, i, nil
	}

	for _, e := range f.Evaluations {
		c, i, err := refs("evaluation", e.Charity, e.Intervention)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ev := domain.Evaluation{
			Charity:                  c,
			Intervention:             i,
			StartYear:                e.StartYear,
			StartMonth:               e.StartMonth,
			CentsPerOutput:           e.CentsPerOutput,
			CentsPerOutputLowerBound: e.CentsPerOutputLowerBound,
			CentsPerOutputUpperBound: e.CentsPerOutputUpperBound,
			SourceName:               e.SourceName,
			SourceURL:                e.SourceURL,
			Comment:                  e.Comment,
		}
		if err := ev.Validate(now); err != nil {
			errs = append(errs, err)
			continue
		}
		ds.Evaluations = append(ds.Evaluations, ev)
	}

	for _, g := range f.Grants {
		gr := domain.Grant{Kind: domain.GrantKind(g.Kind), StartYear: g.StartYear, StartMonth: g.StartMonth}
		valid := true
		for _, a := range g.Allotments {
			c, i, err := refs(gr.String()+" allotment", a.Charity, a.Intervention)
			if err != nil {
				errs = append(errs, err)
				valid = false
				continue
			}
			gr.Allotments = append(gr.Allotments, domain.Allotment{
				Charity:                          c,
				Intervention:                     i,
				SumInCents:                       a.SumInCents,
				NumberOutputsPurchased:           a.NumberOutputsPurchased,
				NumberOutputsPurchasedLowerBound: a.NumberOutputsPurchasedLowerBound,
				NumberOutputsPurchasedUpperBound: a.NumberOutputsPurchasedUpperBound,
				SourceName:                       a.SourceName,
				SourceURL:                        a.SourceURL,
				Comment:                          a.Comment,
			})
		}
		if err := gr.Validate(now); err != nil {
			errs = append(errs, err)
			continue
		}
		if valid {
			ds.Grants = append(ds.Grants, gr)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return ds, nil
}

// Writers are the repository operations seeding needs.
type Writers struct {
	Charities   portsrepo.CharityWriter
	Evaluations portsrepo.EvaluationWriter
	Grants      portsrepo.GrantWriter
}

// Summary counts the records written.
type Summary struct {
	Charities     int
	Interventions int
	Evaluations   int
	Grants        int
}

// Apply upserts the dataset. Each save is idempotent, so an interrupted run can be
// repeated; a grant and its allotments are saved atomically.
func Apply(ctx context.Context, logger *slog.Logger, ds *Dataset, w Writers) (Summary, error) {
	var sum Summary

	charityIDs := make(map[string]int64, len(ds.Charities))
	for _, c := range ds.Charities {
		id, err := w.Charities.SaveCharity(ctx, c)
		if err != nil {
			return sum, fmt.Errorf("save charity %s: %w", c.Abbreviation, err)
		}
		charityIDs[c.Abbreviation] = id
		sum.Charities++
	}

	interventionIDs := make(map[string]int64, len(ds.Interventions))
	for _, i := range ds.Interventions {
		id, err := w.Charities.SaveIntervention(ctx, i)
		if err != nil {
			return sum, fmt.Errorf("save intervention %q: %w", i.ShortDescription, err)
		}
		interventionIDs[i.ShortDescription] = id
		sum.Interventions++
	}

	for _, e := range ds.Evaluations {
		e.Charity.CharityID = charityIDs[e.Charity.Abbreviation]
		e.Intervention.InterventionID = interventionIDs[e.Intervention.ShortDescription]
		if _, err := w.Evaluations.SaveEvaluation(ctx, e); err != nil {
			return sum, fmt.Errorf("save evaluation %s %s: %w", e.Charity.Abbreviation, e.StartYearMonth(), err)
		}
		sum.Evaluations++
	}

	for _, g := range ds.Grants {
		allotments := make([]domain.Allotment, len(g.Allotments))
		for i, a := range g.Allotments {
			a.Charity.CharityID = charityIDs[a.Charity.Abbreviation]
			a.Intervention.InterventionID = interventionIDs[a.Intervention.ShortDescription]
			allotments[i] = a
		}
		g.Allotments = allotments
		if _, err := w.Grants.SaveGrant(ctx, g); err != nil {
			return sum, fmt.Errorf("save %s: %w", g, err)
		}
		sum.Grants++
	}

	logger.Info("Seed data applied",
		slog.Int("charities", sum.Charities),
		slog.Int("interventions", sum.Interventions),
		slog.Int("evaluations", sum.Evaluations),
		slog.Int("grants", sum.Grants),
	)
	return sum, nil
}
