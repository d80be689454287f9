package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report bundles the prepared tables handed to whoever renders them.
type Report struct {
	Source        string           `json:"source"`
	WorldLabel    string           `json:"world_label"`
	Observations  []Observation    `json:"observations"`
	Decades       []DecadeSummary  `json:"decades"`
	TopPeak       []CountryPeak    `json:"top_peak"`
	TopPeakSeries []Observation    `json:"top_peak_series"`
	TopAverage    []CountrySummary `json:"top_average"`
	WorldSeries   []Observation    `json:"world_series"`
}

type Options struct {
	WorldLabel string
	TopPeak    int
	TopAverage int
}

func DefaultOptions() Options {
	return Options{
		WorldLabel: DefaultWorldLabel,
		TopPeak:    5,
		TopAverage: 10,
	}
}

// Prepare loads the file at path and builds its report.
func Prepare(ctx context.Context, path string, opts Options) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	raw, err := Load(ctx, path)
	if err != nil {
		return nil, err
	}

	obs, err := Transform(raw)
	if err != nil {
		return nil, errors.Errorf("deriving growth rates: %w", err)
	}

	for _, o := range Anomalies(obs) {
		logger.Warn().
			Str("country", o.Country).
			Int("year", o.Year).
			Stringer("growth_rate", o.GrowthRate).
			Stringer("pop_index", o.PopIndex).
			Msg("non-finite derived value")
	}

	r, err := Build(ctx, obs, opts)
	if err != nil {
		return nil, err
	}
	r.Source = path
	return r, nil
}

// Build computes the decade and ranking tables from transformed observations.
// Both run concurrently and only read obs.
func Build(ctx context.Context, obs []Observation, opts Options) (*Report, error) {
	if opts.WorldLabel == "" {
		return nil, errors.New("world label is empty")
	}

	r := &Report{
		WorldLabel:   opts.WorldLabel,
		Observations: obs,
		WorldSeries:  Only(obs, opts.WorldLabel),
	}

	var g errgroup.Group

	g.Go(func() error {
		r.Decades = DecadeMeans(obs)
		return nil
	})

	g.Go(func() error {
		countries := Exclude(obs, opts.WorldLabel)
		r.TopPeak = TopByPeak(countries, opts.TopPeak)
		r.TopPeakSeries = Only(countries, Names(r.TopPeak)...)
		r.TopAverage = TopByAverage(countries, opts.TopAverage)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int("observations", len(obs)).
		Int("decades", len(r.Decades)).
		Int("countries", len(GroupByCountry(obs))).
		Msg("built report")

	return r, nil
}

// LoadIfExists reads a report saved with Save. found is false when there is no
// file at path.
func LoadIfExists(path string) (r *Report, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Errorf("reading report: %w", err)
	}

	r = new(Report)
	if err := json.Unmarshal(data, r); err != nil {
		return nil, false, errors.Errorf("decoding report %s: %w", path, err)
	}
	return r, true, nil
}

func (r *Report) Save(path string) error {
	js, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, js, 0o644); err != nil {
		return errors.Errorf("writing report: %w", err)
	}
	return nil
}

func (r *Report) Info(w io.Writer) {
	firstYear, lastYear := 0, 0
	for i, o := range r.Observations {
		if i == 0 || o.Year < firstYear {
			firstYear = o.Year
		}
		if i == 0 || o.Year > lastYear {
			lastYear = o.Year
		}
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(w, `
	Source       : %s
	Years        : %s - %s
	Countries    : %d
	Observations : %d
	`, r.Source, strconv.Itoa(firstYear), strconv.Itoa(lastYear), len(GroupByCountry(r.Observations)), len(r.Observations))
	fmt.Fprintln(w, "")
}
