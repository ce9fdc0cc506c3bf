package almanac

import (
	"testing"

	"github.com/andareed/astrodash/moon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dates(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Date
	}
	return out
}

func TestReferenceSet(t *testing.T) {
	rs := Reference()
	require.Len(t, rs, 15)
	assert.Equal(t, "2025-01-16", rs[0].Date)
	assert.Equal(t, "2025-01-30", rs[14].Date)

	for i := 1; i < len(rs); i++ {
		assert.Less(t, rs[i-1].Date, rs[i].Date, "dates must be unique and ascending")
	}

	rs[0].TemperatureF = -400
	assert.Equal(t, 76, Reference()[0].TemperatureF, "Reference must hand out copies")
}

func TestRecordGlyphFollowsPhase(t *testing.T) {
	for _, r := range Reference() {
		assert.Equal(t, r.Phase.Glyph(), r.Glyph())
	}
}

func TestFindByDate(t *testing.T) {
	rs := Reference()

	r, ok := FindByDate(rs, "2025-01-21")
	require.True(t, ok)
	assert.Equal(t, moon.FullMoon, r.Phase)

	_, ok = FindByDate(rs, "2025-1-21")
	assert.False(t, ok, "lookup is an exact string match")

	_, ok = FindByDate(nil, "2025-01-21")
	assert.False(t, ok)
}

func TestFilterEmptyTermAllBucketReturnsEverything(t *testing.T) {
	rs := Reference()
	got := Filter(rs, "", moon.BucketAll)
	assert.Equal(t, rs, got)

	got[0].TemperatureF = 0
	assert.Equal(t, 76, rs[0].TemperatureF, "Filter must not alias its input")
}

func TestFilterByTerm(t *testing.T) {
	rs := Reference()

	cases := []struct {
		name string
		term string
		want []string
	}{
		{"phase case-insensitive", "WAXING gib", []string{"2025-01-19", "2025-01-20"}},
		{"date prefix", "2025-01-2", []string{
			"2025-01-20", "2025-01-21", "2025-01-22", "2025-01-23", "2025-01-24",
			"2025-01-25", "2025-01-26", "2025-01-27", "2025-01-28", "2025-01-29",
		}},
		{"matches either field", "moon", []string{"2025-01-21", "2025-01-27"}},
		{"no trimming", " full", nil},
		{"no match", "2024", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := dates(Filter(rs, tc.term, moon.BucketAll))
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFilterByBucket(t *testing.T) {
	rs := Reference()

	got := dates(Filter(rs, "", "Waxing Crescent"))
	assert.Equal(t, []string{"2025-01-16", "2025-01-17", "2025-01-28", "2025-01-29", "2025-01-30"}, got)

	for _, p := range moon.Phases() {
		for _, r := range Filter(rs, "", p.String()) {
			assert.Equal(t, p, r.Phase)
		}
	}

	assert.Empty(t, Filter(rs, "", "waxing crescent"), "bucket match is case-sensitive")
}

func TestFilterCombinesTermAndBucket(t *testing.T) {
	got := dates(Filter(Reference(), "2025-01-1", "Waxing Crescent"))
	assert.Equal(t, []string{"2025-01-16", "2025-01-17"}, got)

	assert.True(t, Matches(Reference()[5], "full", moon.BucketAll))
	assert.False(t, Matches(Reference()[5], "full", "New Moon"))
}

func TestFilterKeepsExactlyTheMatchingRecords(t *testing.T) {
	rs := Reference()
	for _, bucket := range moon.BucketLabels() {
		for _, term := range []string{"", "GIBBOUS", "2025-01-2", "quarter"} {
			var want []Record
			for _, r := range rs {
				if Matches(r, term, bucket) {
					want = append(want, r)
				}
			}
			assert.ElementsMatch(t, want, Filter(rs, term, bucket), "term=%q bucket=%q", term, bucket)
		}
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	rs := Reference()
	for _, bucket := range moon.BucketLabels() {
		for _, term := range []string{"", "moon", "2025-01-2", "cres"} {
			once := Filter(rs, term, bucket)
			twice := Filter(once, term, bucket)
			assert.Equal(t, once, twice, "term=%q bucket=%q", term, bucket)
		}
	}
}

func TestSummarizeReferenceSet(t *testing.T) {
	s := Summarize(Reference())
	assert.Equal(t, 15, s.TotalItems)
	// 1124 / 15 = 74.933...
	assert.InDelta(t, 74.9, s.AvgTemperature, 1e-9)
	assert.Equal(t, "74.9", s.AvgLabel())
	assert.Equal(t, 8, s.UniquePhases)
}

func TestSummarizeEmptySet(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)
	assert.Equal(t, "0", s.AvgLabel())
}

func TestSummarizeRoundsToOneDecimal(t *testing.T) {
	s := Summarize([]Record{
		{Date: "a", TemperatureF: 70, Phase: moon.NewMoon},
		{Date: "b", TemperatureF: 71, Phase: moon.NewMoon},
		{Date: "c", TemperatureF: 71, Phase: moon.NewMoon},
	})
	assert.InDelta(t, 70.7, s.AvgTemperature, 1e-9)
	assert.Equal(t, 1, s.UniquePhases)
	assert.Equal(t, "70.7", s.AvgLabel())
}
