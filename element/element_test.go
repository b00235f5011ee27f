package element

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/npillmayer/rings"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, c := range []struct{ in, out float64 }{
		{0, 0}, {359, 359}, {360, 0}, {720, 0}, {-30, 330}, {-360, 0}, {725, 5}, {-1e-18, 0},
	} {
		assert.InDelta(t, c.out, NormAngle(c.in), 1e-9, "NormAngle(%g)", c.in)
	}
}

func TestElementAngleInvariant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		start := rnd.Float64()*2000 - 1000
		stop := rnd.Float64()*2000 - 1000
		e := New(Line, 1, 0.8, start, stop, 0.3)
		require.GreaterOrEqual(t, e.StartAngle, 0.0)
		require.Less(t, e.StartAngle, 360.0)
		require.Greater(t, e.AngleDiff(), 0.0)
		require.LessOrEqual(t, e.AngleDiff(), 360.0)
	}
}

func TestElementWrapsPastZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(Line, 1, 0.8, -30, 30, 0.3)
	assert.InDelta(t, 330.0, e.StartAngle, 1e-9)
	assert.InDelta(t, 390.0, e.StopAngle, 1e-9)
	assert.InDelta(t, 60.0, e.AngleDiff(), 1e-9)
	// the middle of the span is at 0°
	mid := e.ToGlobal(e.Width()/2, 0)
	assert.InDelta(t, 1.0, mid.X(), 1e-9)
	assert.InDelta(t, 0.0, mid.Y(), 1e-9)
	//
	e = New(Line, 1, 0.8, 350, 370, 0.3) // stop normalizes to 10
	assert.InDelta(t, 20.0, e.AngleDiff(), 1e-9)
}

func TestElementFullCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, c := range [][2]float64{{0, 360}, {10, 10}, {90, 450}, {400, 40}} {
		e := New(Dot, 1, 0.8, c[0], c[1], 0.3)
		assert.InDelta(t, 360.0, e.AngleDiff(), 1e-9, "span %v", c)
	}
}

func TestElementFullTurnFromPhase(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 10000; i++ {
		phase := rnd.Float64() * 360
		e := New(Dot, 1, 0.8, phase, 360+phase, 0.3)
		require.InDelta(t, 360.0, e.AngleDiff(), 1e-9, "phase %.17g", phase)
		require.False(t, e.IsDegenerate(), "phase %.17g", phase)
	}
	// a known phase where start+360 normalizes just above start
	phase := 338.58327169620446
	e := New(Dot, 1, 0.8, phase, 360+phase, 0.3)
	assert.InDelta(t, 360.0, e.AngleDiff(), 1e-9)
	assert.Len(t, e.Render(), 30)
}

func TestWidth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(Dot, 1, 0.8, 0, 360, 0.3)
	assert.InDelta(t, 8.796459, e.Width(), 1e-6)
	prev := 0.0
	for diff := 10.0; diff <= 360; diff += 10 {
		w := New(Dot, 1, 0.8, 0, diff, 0.3).Width()
		assert.Greater(t, w, prev, "width must grow with angle diff")
		prev = w
	}
	prev = 0.0
	for r := 0.5; r < 10; r += 0.5 {
		w := New(Dot, r, 0.8, 20, 80, 0.3).Width()
		assert.Greater(t, w, prev, "width must grow with radius")
		prev = w
	}
}

func TestToGlobalIsClockwise(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(Line, 1, 0.8, 0, 360, 0.3, WithCenter(rings.P(5, 5)))
	p := e.ToGlobal(0, 0)
	assert.True(t, p.Equal(rings.P(6, 5)), "start at 0° expected at (6,5), is %s", p)
	p = e.ToGlobal(e.Width()/4, 0)
	assert.True(t, p.Equal(rings.P(5, 4)), "90° expected at (5,4), is %s", p)
	p = e.ToGlobal(e.Width()/2, e.DR)
	assert.True(t, p.Equal(rings.P(3.2, 5)), "180° at outer border expected at (3.2,5), is %s", p)
}

func TestDegenerateElementRendersEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(Line, -0.4, 0.8, 0, 90, 0.3) // radius + dr/2 = 0
	assert.True(t, e.IsDegenerate())
	assert.NotPanics(t, func() { e.ToGlobal(1, 0) })
	assert.Empty(t, e.Render())
	e = New(Dot, 1, 0.8, 0, 90, 0)
	assert.False(t, e.IsDegenerate())
	assert.Empty(t, e.Render(), "zero unit length must not produce items")
}

func TestSpread(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 30, SpreadCount(8.796459, 0.3))
	assert.Equal(t, 3, SpreadCount(3, 1))
	assert.Equal(t, 4, SpreadCount(3.01, 1))
	assert.Equal(t, 0, SpreadCount(0, 1))
	assert.Equal(t, 0, SpreadCount(1, 0))
	pos := SpreadPositions(7)
	require.Len(t, pos, 7)
	for i, f := range pos {
		assert.InDelta(t, float64(i)/7, f, 1e-12)
		assert.Less(t, f, 1.0)
	}
	assert.Empty(t, SpreadPositions(0))
}

func TestSingleRingOfDots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(Dot, 1, 0.8, 0, 360, 0.3)
	lines := e.Render()
	require.Len(t, lines, 30)
	for i, l := range lines {
		assert.True(t, l.IsClosed(), "dot %d must be closed", i)
		bb, ok := rings.Polylines{l}.Bounds()
		require.True(t, ok)
		alpha := -2 * math.Pi * float64(i) / 30
		want := rings.P(1.4*math.Cos(alpha), 1.4*math.Sin(alpha))
		assert.InDelta(t, 0, bb.Center().Dist(want), 1e-3, "dot %d at %s, expected %s", i, bb.Center(), want)
	}
}
