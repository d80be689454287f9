package stats

import (
	"context"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Source column names of the population estimates file.
const (
	ColumnCountry    = "Entity"
	ColumnYear       = "Year"
	ColumnPopulation = "Population - Sex: all - Age: all - Variant: estimates"
)

// Columns maps the logical columns to the source columns they are read from.
var Columns = map[string]string{
	"country":    ColumnCountry,
	"year":       ColumnYear,
	"population": ColumnPopulation,
}

var errNoHeader = errors.New("no header row")

// Load reads the population estimates at path. The returned observations have
// only Country, Year and Population set, in file order.
func Load(ctx context.Context, path string) ([]Observation, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var (
		obs    []Observation
		header map[string]int
	)

	err := ExtractDataFromFile(path, func(line int, row []string) error {
		if header == nil {
			idx, err := indexHeader(path, line, row)
			if err != nil {
				return err
			}
			header = idx
			return nil
		}

		if blank(row) {
			return nil
		}

		o, err := parseRow(row, header)
		if err != nil {
			err.Path = path
			err.Line = line
			return err
		}
		obs = append(obs, o)
		return nil
	})
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	if header == nil {
		return nil, &LoadError{Path: path, Err: errNoHeader}
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("format", FormatOf(path)).
		Int("rows", len(obs)).
		Msg("loaded observations")

	return obs, nil
}

func indexHeader(path string, line int, row []string) (map[string]int, error) {
	idx := make(map[string]int, len(row))
	for i, name := range row {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	for _, col := range []string{ColumnCountry, ColumnYear, ColumnPopulation} {
		if _, ok := idx[col]; !ok {
			return nil, &LoadError{Path: path, Column: col, Line: line, Err: errors.New("missing required column")}
		}
	}
	return idx, nil
}

func parseRow(row []string, header map[string]int) (Observation, *LoadError) {
	cell := func(col string) string {
		i := header[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	country := cell(ColumnCountry)
	if country == "" {
		return Observation{}, &LoadError{Column: ColumnCountry, Err: errors.New("empty country")}
	}

	year, err := strconv.Atoi(cell(ColumnYear))
	if err != nil {
		return Observation{}, &LoadError{Column: ColumnYear, Err: err}
	}

	pop, err := strconv.ParseFloat(cell(ColumnPopulation), 64)
	if err != nil {
		return Observation{}, &LoadError{Column: ColumnPopulation, Err: err}
	}
	if pop < 0 || math.IsNaN(pop) || math.IsInf(pop, 0) {
		return Observation{}, &LoadError{Column: ColumnPopulation, Err: errors.Errorf("invalid population %v", pop)}
	}

	return Observation{Country: country, Year: year, Population: pop}, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
