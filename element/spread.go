package element

import (
	"math"

	"github.com/npillmayer/rings"
)

// SpreadCount returns the number of items spread over a width w, given a
// unit length u: n = ceil(w/u). It is 0 for a (near) zero width or unit
// length.
func SpreadCount(w, u float64) int {
	if w <= rings.Epsilon || u <= rings.Epsilon {
		return 0
	}
	return int(math.Ceil(w / u))
}

// SpreadPositions returns the fractional positions i/n of n items, for
// i in [0,n). Position 1 is never included: for a full circle it would
// coincide with position 0.
func SpreadPositions(n int) []float64 {
	if n <= 0 {
		return nil
	}
	pos := make([]float64, n)
	for i := range pos {
		pos[i] = float64(i) / float64(n)
	}
	return pos
}

// spread places n = SpreadCount(width, unit length) instances of an item
// along the middle of the band. Item i is rendered by item(i, n) around
// (0,0), rotated to follow the arc and moved to its anchor.
func (e Element) spread(item func(i, n int) rings.Polylines) rings.Polylines {
	w := e.Width()
	n := SpreadCount(w, e.UnitLength)
	var out rings.Polylines
	for i, f := range SpreadPositions(n) {
		anchor := e.ToGlobal(f*w, e.DR/2)
		angle := e.StartAngle + f*e.AngleDiff() + 90.0
		m := rings.Rotation(-angle * rings.Deg2Rad).Combine(rings.Translation(anchor))
		out.Extend(item(i, n).Transformed(m))
	}
	return out
}
