package stats

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankFixture(t *testing.T) []Observation {
	t.Helper()
	in := []Observation{
		obs("World", 1950, 2500), obs("World", 2020, 7800),
		obs("China", 1950, 540), obs("China", 2020, 1420),
		obs("India", 1950, 350), obs("India", 2020, 1400),
		obs("USA", 1950, 150), obs("USA", 2020, 330),
		obs("Russia", 1950, 100), obs("Russia", 1990, 148), obs("Russia", 2020, 145),
		obs("Japan", 1950, 84), obs("Japan", 2010, 128), obs("Japan", 2020, 125),
		obs("Iceland", 1950, 0.1), obs("Iceland", 2020, 0.4),
	}
	out, err := Transform(in)
	require.NoError(t, err)
	return out
}

func TestTopByPeak(t *testing.T) {
	in := Exclude(rankFixture(t), DefaultWorldLabel)

	got := TopByPeak(in, 5)

	assert.Equal(t, []CountryPeak{
		{Country: "China", Peak: 1420},
		{Country: "India", Peak: 1400},
		{Country: "USA", Peak: 330},
		{Country: "Russia", Peak: 148},
		{Country: "Japan", Peak: 128},
	}, got)
	assert.Equal(t, []string{"China", "India", "USA", "Russia", "Japan"}, Names(got))

	series := Only(in, Names(got)...)
	assert.Len(t, series, 12, "the full time series of every selected country")
	for _, o := range series {
		assert.NotEqual(t, "Iceland", o.Country)
	}
}

func TestTopByPeakOrderInvariant(t *testing.T) {
	in := Exclude(rankFixture(t), DefaultWorldLabel)
	want := Names(TopByPeak(in, 5))
	sort.Strings(want)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]Observation(nil), in...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := Names(TopByPeak(shuffled, 5))
		sort.Strings(got)
		assert.Equal(t, want, got)
	}
}

func TestTopByPeakTies(t *testing.T) {
	got := TopByPeak([]Observation{obs("B", 1, 5), obs("A", 1, 5), obs("C", 1, 9)}, 2)
	assert.Equal(t, []string{"C", "B"}, Names(got), "equal peaks keep first-seen order")
}

func TestTopByAverage(t *testing.T) {
	in := Exclude(rankFixture(t), DefaultWorldLabel)

	got := TopByAverage(in, 10)
	require.Len(t, got, 6, "fewer countries than requested")

	assert.Equal(t, "China", got[0].Country)
	assert.Equal(t, Of(980), got[0].Population)
	assert.Equal(t, 2, got[0].Years)
	assert.Equal(t, 1420.0, got[0].Peak)

	assert.Equal(t, "Russia", got[3].Country)
	assert.InDelta(t, 131.0, got[3].Population.Float, 1e-9)
	assert.InDelta(t, (48.0+(145.0-148.0)/148.0*100)/2, got[3].GrowthRate.Float, 1e-9)

	for _, s := range got {
		assert.NotEqual(t, DefaultWorldLabel, s.Country)
	}
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Population.Float, got[i].Population.Float)
	}
}

func TestExcludeIsExact(t *testing.T) {
	in := []Observation{obs("World", 1, 1), obs("world", 1, 1), obs("World (UN)", 1, 1), obs("A", 1, 1)}

	got := Exclude(in, DefaultWorldLabel)

	assert.Equal(t, []Observation{obs("world", 1, 1), obs("World (UN)", 1, 1), obs("A", 1, 1)}, got)
}

func TestTopEmpty(t *testing.T) {
	assert.Empty(t, TopByPeak(nil, 5))
	assert.Empty(t, TopByAverage(nil, 10))
	assert.Empty(t, TopByPeak([]Observation{obs("A", 1, 1)}, 0))
}
