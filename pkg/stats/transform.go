package stats

import "sort"

// Transform sorts each country's observations by year and derives GrowthRate
// and PopIndex from them. Countries keep the order in which they first appear
// in obs. The input is not modified.
//
// GrowthRate is null for the first year of every country. A zero population
// makes the following growth rate (and every PopIndex, when it is the first
// year) NaN or infinite; such values are kept and skipped by the means.
func Transform(obs []Observation) ([]Observation, error) {
	groups := GroupByCountry(obs)

	out := make([]Observation, 0, len(obs))
	for _, g := range groups {
		rows := make([]Observation, len(g.Rows))
		copy(rows, g.Rows)

		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Year < rows[j].Year
		})

		for i := range rows {
			if i > 0 && rows[i].Year == rows[i-1].Year {
				return nil, &SchemaViolation{Country: g.Country, Year: rows[i].Year}
			}

			rows[i].PopIndex = Of(rows[i].Population / rows[0].Population * 100)

			if i == 0 {
				rows[i].GrowthRate = Null()
				continue
			}
			prev := rows[i-1].Population
			rows[i].GrowthRate = Of((rows[i].Population - prev) / prev * 100)
		}

		out = append(out, rows...)
	}
	return out, nil
}

// Group is the observations of one country in input order.
type Group struct {
	Country string
	Rows    []Observation
}

// GroupByCountry splits obs per country, ordered by first appearance.
func GroupByCountry(obs []Observation) []Group {
	pos := make(map[string]int)
	var groups []Group

	for _, o := range obs {
		i, ok := pos[o.Country]
		if !ok {
			i = len(groups)
			pos[o.Country] = i
			groups = append(groups, Group{Country: o.Country})
		}
		groups[i].Rows = append(groups[i].Rows, o)
	}
	return groups
}

// Anomalies returns the observations whose derived columns are present but not
// finite.
func Anomalies(obs []Observation) []Observation {
	var out []Observation
	for _, o := range obs {
		if (o.GrowthRate.Valid && !o.GrowthRate.Defined()) || (o.PopIndex.Valid && !o.PopIndex.Defined()) {
			out = append(out, o)
		}
	}
	return out
}
