package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestTransformExample(t *testing.T) {
	got, err := Transform([]Observation{
		obs("CountryA", 1950, 100),
		obs("CountryA", 1960, 150),
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.False(t, got[0].GrowthRate.Valid, "first year has no growth rate")
	assert.Equal(t, Of(50), got[1].GrowthRate)
	assert.Equal(t, Of(100), got[0].PopIndex)
	assert.Equal(t, Of(150), got[1].PopIndex)
}

func TestTransformSortsWithinCountry(t *testing.T) {
	in := []Observation{
		obs("B", 2001, 220),
		obs("A", 1952, 121),
		obs("B", 2000, 200),
		obs("A", 1950, 100),
		obs("A", 1951, 110),
	}
	before := append([]Observation(nil), in...)

	got, err := Transform(in)
	require.NoError(t, err)

	assert.Equal(t, before, in, "input must not be modified")

	var order []string
	for _, o := range got {
		order = append(order, o.Country)
	}
	assert.Equal(t, []string{"B", "B", "A", "A", "A"}, order, "countries keep first-seen order")
	assert.Equal(t, []int{2000, 2001, 1950, 1951, 1952}, []int{got[0].Year, got[1].Year, got[2].Year, got[3].Year, got[4].Year})

	assert.InDelta(t, 10.0, got[1].GrowthRate.Float, 1e-9)
	assert.InDelta(t, 10.0, got[3].GrowthRate.Float, 1e-9)
	assert.InDelta(t, 10.0, got[4].GrowthRate.Float, 1e-9)
	assert.InDelta(t, 121.0, got[4].PopIndex.Float, 1e-9)
}

func TestTransformProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	var in []Observation
	for _, c := range []string{"A", "B", "C", "World"} {
		pop := 1000 + rng.Float64()*1000
		for y := 1950; y <= 2023; y++ {
			in = append(in, obs(c, y, pop))
			pop *= 1 + (rng.Float64()-0.3)/10
		}
	}
	rng.Shuffle(len(in), func(i, j int) { in[i], in[j] = in[j], in[i] })

	got, err := Transform(in)
	require.NoError(t, err)
	require.Len(t, got, len(in))

	for _, g := range GroupByCountry(got) {
		first := g.Rows[0]
		assert.Equal(t, 1950, first.Year, "%s starts at its minimum year", g.Country)
		assert.Equal(t, Of(100), first.PopIndex, "%s index starts at 100", g.Country)
		assert.False(t, first.GrowthRate.Valid, "%s has no growth rate in its first year", g.Country)

		for i := 1; i < len(g.Rows); i++ {
			prev, cur := g.Rows[i-1], g.Rows[i]
			require.Equal(t, prev.Year+1, cur.Year)
			assert.True(t, cur.GrowthRate.Defined(), "%s %d growth rate", g.Country, cur.Year)
			assert.InDelta(t, (cur.Population-prev.Population)/prev.Population*100, cur.GrowthRate.Float, 1e-9)
			assert.InDelta(t, cur.Population/first.Population*100, cur.PopIndex.Float, 1e-9)
		}
	}
}

func TestTransformDuplicate(t *testing.T) {
	_, err := Transform([]Observation{
		obs("A", 1950, 1),
		obs("B", 1950, 1),
		obs("B", 1951, 2),
		obs("B", 1950, 3),
	})
	require.Error(t, err)

	var sv *SchemaViolation
	require.True(t, errors.As(err, &sv), "error should be a SchemaViolation")
	assert.Equal(t, "B", sv.Country)
	assert.Equal(t, 1950, sv.Year)
}

func TestTransformZeroPopulation(t *testing.T) {
	got, err := Transform([]Observation{
		obs("Empty", 1950, 0),
		obs("Empty", 1951, 0),
		obs("Empty", 1952, 5),
		obs("Single", 2000, 10),
	})
	require.NoError(t, err)

	assert.True(t, math.IsNaN(got[0].PopIndex.Float), "0/0 index is NaN")
	assert.True(t, got[1].GrowthRate.Valid, "division by zero is kept, not dropped")
	assert.True(t, math.IsNaN(got[1].GrowthRate.Float), "0/0 growth rate is NaN")
	assert.True(t, math.IsInf(got[2].GrowthRate.Float, 1), "growth from zero is infinite")

	assert.False(t, got[3].GrowthRate.Valid, "a single observation has no growth rate")
	assert.Equal(t, Of(100), got[3].PopIndex)

	assert.Len(t, Anomalies(got), 3, "every non-finite row is reported")
}

func TestGroupByCountry(t *testing.T) {
	groups := GroupByCountry([]Observation{obs("B", 1, 1), obs("A", 1, 1), obs("B", 2, 1)})
	require.Len(t, groups, 2)
	assert.Equal(t, "B", groups[0].Country)
	assert.Len(t, groups[0].Rows, 2)
	assert.Equal(t, "A", groups[1].Country)

	assert.Empty(t, GroupByCountry(nil))
}
