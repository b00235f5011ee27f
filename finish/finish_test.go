package finish

import (
	"math/rand/v2"
	"testing"

	"github.com/npillmayer/rings"
	"github.com/npillmayer/rings/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyStraightLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := rings.Polyline(rings.Linspace(rings.P(0, 0), rings.P(10, 0), 50))
	s := Simplify(rings.Polylines{line}, 0.01)
	require.Len(t, s, 1)
	assert.Equal(t, rings.Polyline{rings.P(0, 0), rings.P(10, 0)}, s[0])
	assert.Len(t, line, 50, "input must not change")
}

func TestSimplifyKeepsCorners(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := rings.Polyline{rings.P(0, 0), rings.P(1, 0.001), rings.P(2, 0), rings.P(2, 2), rings.P(0, 0)}
	s := Simplify(rings.Polylines{pl}, 0.01)
	require.Len(t, s, 1)
	assert.Equal(t, rings.Polyline{rings.P(0, 0), rings.P(2, 0), rings.P(2, 2), rings.P(0, 0)}, s[0])
	assert.True(t, s[0].IsClosed())
}

func TestSimplifyCompiledPattern(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lines, err := grammar.Compile("llll\nrr SS\nLL", grammar.DefaultParams(), rand.New(rand.NewPCG(5, 5)))
	require.NoError(t, err)
	s := Simplify(lines, 0.001)
	require.Len(t, s, len(lines))
	assert.Less(t, s.PointCount(), lines.PointCount())
	for i := range s {
		assert.Equal(t, lines[i].Start(), s[i].Start())
		assert.Equal(t, lines[i].End(), s[i].End())
	}
}

func TestSortReducesTravel(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lines := rings.Polylines{
		{rings.P(10, 0), rings.P(11, 0)},
		{rings.P(3, 0), rings.P(2, 0)},
		{rings.P(1, 0), rings.P(0, 0)},
	}
	sorted := Sort(lines, true)
	require.Len(t, sorted, 3)
	assert.Equal(t, rings.Polyline{rings.P(0, 0), rings.P(1, 0)}, sorted[0])
	assert.Equal(t, rings.Polyline{rings.P(2, 0), rings.P(3, 0)}, sorted[1])
	assert.Equal(t, rings.Polyline{rings.P(10, 0), rings.P(11, 0)}, sorted[2])
	assert.Less(t, travel(sorted), travel(lines))
	//
	noflip := Sort(lines, false)
	assert.Equal(t, rings.Polyline{rings.P(1, 0), rings.P(0, 0)}, noflip[0])
	assert.Equal(t, rings.P(11, 0), lines[0][1], "input must not change")
}

func travel(lines rings.Polylines) float64 {
	pen, d := rings.Origin, 0.0
	for _, l := range lines {
		d += pen.Dist(l.Start())
		pen = l.End()
	}
	return d
}

func TestMerge(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	square := rings.Polyline{rings.P(5, 5), rings.P(6, 5), rings.P(6, 6), rings.P(5, 5)}
	lines := rings.Polylines{
		{rings.P(0, 0), rings.P(1, 0)},
		square,
		{rings.P(2, 0), rings.P(1, 0)},
		{rings.P(0, 1), rings.P(0, 0.0005)},
	}
	merged := Merge(lines, 0.001)
	require.Len(t, merged, 2)
	assert.Equal(t, square, merged[0])
	assert.Equal(t, rings.Polyline{rings.P(0, 1), rings.P(0, 0.0005), rings.P(1, 0), rings.P(2, 0)}, merged[1])
}

func TestApplyToDrawing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := rings.NewDrawing()
	d.Add(2, rings.Polylines{rings.Linspace(rings.P(0, 0), rings.P(1, 0), 10)})
	d.Add(1, rings.Polylines{rings.Linspace(rings.P(3, 3), rings.P(1, 1), 10)})
	ApplyToDrawing(d, DefaultOptions())
	assert.Equal(t, []int{1, 2}, d.Layers())
	assert.Equal(t, rings.Polyline{rings.P(1, 1), rings.P(3, 3)}, d.Layer(1)[0])
	assert.Len(t, d.Layer(2)[0], 2)
}
