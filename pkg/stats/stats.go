package stats

// Observation is the population of one country (or aggregate region such as
// "World") in one year, plus the columns derived from its country's history.
type Observation struct {
	Country    string  `json:"country"`
	Year       int     `json:"year"`
	Population float64 `json:"population"`
	GrowthRate Value   `json:"growth_rate"`
	PopIndex   Value   `json:"pop_index"`
}

// DecadeSummary holds the mean population and growth rate of every row whose
// year falls in the decade.
type DecadeSummary struct {
	Decade     int   `json:"decade"`
	Rows       int   `json:"rows"`
	Population Value `json:"population"`
	GrowthRate Value `json:"growth_rate"`
}

// CountrySummary holds the averages of one country across all its years.
type CountrySummary struct {
	Country    string  `json:"country"`
	Years      int     `json:"years"`
	Population Value   `json:"population"`
	GrowthRate Value   `json:"growth_rate"`
	Peak       float64 `json:"peak"`
}

type CountryPeak struct {
	Country string  `json:"country"`
	Peak    float64 `json:"peak"`
}

// Decade returns the decade bucket of a year, e.g. 1965 -> 1960.
func Decade(year int) int {
	d := year / 10
	if year < 0 && year%10 != 0 {
		d--
	}
	return d * 10
}
