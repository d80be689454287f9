package stats

import "sort"

// DefaultWorldLabel is the Entity value of the world aggregate in the source.
const DefaultWorldLabel = "World"

// Exclude drops every observation whose country is exactly label.
func Exclude(obs []Observation, label string) []Observation {
	out := make([]Observation, 0, len(obs))
	for _, o := range obs {
		if o.Country != label {
			out = append(out, o)
		}
	}
	return out
}

// Only keeps the observations of the given countries, in input order.
func Only(obs []Observation, countries ...string) []Observation {
	keep := make(map[string]bool, len(countries))
	for _, c := range countries {
		keep[c] = true
	}

	var out []Observation
	for _, o := range obs {
		if keep[o.Country] {
			out = append(out, o)
		}
	}
	return out
}

// TopByPeak returns the n countries with the largest maximum population,
// largest first. Equal peaks keep the order in which the countries first
// appear in obs. Fewer than n countries yield a shorter result.
func TopByPeak(obs []Observation, n int) []CountryPeak {
	var peaks []CountryPeak
	for _, g := range GroupByCountry(obs) {
		p := CountryPeak{Country: g.Country, Peak: g.Rows[0].Population}
		for _, o := range g.Rows[1:] {
			if o.Population > p.Peak {
				p.Peak = o.Population
			}
		}
		peaks = append(peaks, p)
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Peak > peaks[j].Peak
	})
	return peaks[:clamp(n, len(peaks))]
}

// TopByAverage returns the n countries with the largest mean population,
// largest first, with the same tie policy as TopByPeak.
func TopByAverage(obs []Observation, n int) []CountrySummary {
	sums := Summaries(obs)

	sort.SliceStable(sums, func(i, j int) bool {
		return sums[i].Population.Float > sums[j].Population.Float
	})
	return sums[:clamp(n, len(sums))]
}

// Summaries averages population and growth rate per country, in order of
// first appearance.
func Summaries(obs []Observation) []CountrySummary {
	groups := GroupByCountry(obs)
	out := make([]CountrySummary, 0, len(groups))

	for _, g := range groups {
		var pop, growth mean
		peak := g.Rows[0].Population
		for _, o := range g.Rows {
			pop.add(Of(o.Population))
			growth.add(o.GrowthRate)
			if o.Population > peak {
				peak = o.Population
			}
		}
		out = append(out, CountrySummary{
			Country:    g.Country,
			Years:      len(g.Rows),
			Population: pop.value(),
			GrowthRate: growth.value(),
			Peak:       peak,
		})
	}
	return out
}

func Names(peaks []CountryPeak) []string {
	out := make([]string, len(peaks))
	for i, p := range peaks {
		out[i] = p.Country
	}
	return out
}

func clamp(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}
