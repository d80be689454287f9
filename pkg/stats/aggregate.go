package stats

import "sort"

// DecadeMeans buckets every observation, aggregate regions included, into its
// decade and averages population and growth rate per bucket. Rows are sorted by
// decade; decades without observations are not reported.
func DecadeMeans(obs []Observation) []DecadeSummary {
	type acc struct {
		rows   int
		pop    mean
		growth mean
	}

	buckets := make(map[int]*acc)
	for _, o := range obs {
		d := Decade(o.Year)
		a, ok := buckets[d]
		if !ok {
			a = &acc{}
			buckets[d] = a
		}
		a.rows++
		a.pop.add(Of(o.Population))
		a.growth.add(o.GrowthRate)
	}

	out := make([]DecadeSummary, 0, len(buckets))
	for d, a := range buckets {
		out = append(out, DecadeSummary{
			Decade:     d,
			Rows:       a.rows,
			Population: a.pop.value(),
			GrowthRate: a.growth.value(),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Decade < out[j].Decade
	})
	return out
}
