package element

import (
	"math"

	"github.com/npillmayer/rings"
)

// DotRadius is the radius of point markers.
const DotRadius = 0.01

// dotMarker is a tiny circle standing in for a point.
func dotMarker() rings.Polyline {
	return circle(rings.Origin, DotRadius, DotRadius)
}

// circle returns a closed polyline approximating a circle. Consecutive
// points are about quantization apart; at least 4 segments are used.
// The circle is traversed clockwise, starting at angle 0.
func circle(c rings.Pair, r, quantization float64) rings.Polyline {
	n := 4
	if quantization > 0 {
		n = max(n, int(math.Ceil(2*math.Pi*r/quantization)))
	}
	pl := make(rings.Polyline, n+1)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pl[i] = c + rings.P(r*math.Cos(a), -r*math.Sin(a))
	}
	pl[n] = pl[0]
	return pl
}

func (e Element) barItem() rings.Polyline {
	return rings.Polyline{rings.P(0, -e.DR/2), rings.P(0, e.DR/2)}
}

// samples returns the number of points needed to sample a length l with
// the element's quantization, but at least least.
func (e Element) samples(l float64, least int) int {
	if e.Quantization <= rings.Epsilon {
		return least
	}
	return max(least, int(math.Ceil(l/e.Quantization)))
}

// renderSpring draws a zig-zag between the outer and inner border of the
// band, with one tooth per unit length.
func (e Element) renderSpring() rings.Polylines {
	w := e.Width()
	n := SpreadCount(w, e.UnitLength)
	if n == 0 {
		return nil
	}
	step := w / float64(n)
	pl := make(rings.Polyline, 0, 2*n+2)
	pl = append(pl, rings.P(0, e.DR))
	for k := 0; k <= 2*n; k++ {
		y := 0.0
		if k%2 == 1 {
			y = e.DR
		}
		pl = append(pl, rings.P(float64(k)/2*step, y))
	}
	return rings.Polylines{e.ToGlobalPath(pl)}
}

// renderBox draws the outline of the local rectangle, point-sampled on
// every side.
func (e Element) renderBox() rings.Polylines {
	w := e.Width()
	n := e.samples(e.DR, 2)
	m := e.samples(w, 2)
	bl, tl := rings.P(0, 0), rings.P(0, e.DR)
	tr, br := rings.P(w, e.DR), rings.P(w, 0)
	var pl rings.Polyline
	pl = append(pl, rings.Linspace(bl, tl, n)...)
	pl = append(pl, rings.Linspace(tl, tr, m)...)
	pl = append(pl, rings.Linspace(tr, br, n)...)
	pl = append(pl, rings.Linspace(br, bl, m)...)
	return rings.Polylines{e.ToGlobalPath(pl)}
}

// renderSine draws a sinusoid around the middle of the band, with one
// period per unit length and 50 samples per period.
func (e Element) renderSine() rings.Polylines {
	if e.UnitLength <= rings.Epsilon {
		return nil
	}
	w := e.Width()
	periods := w / e.UnitLength
	count := int(periods * 50)
	if count < 2 {
		return nil
	}
	tmax := periods * 2 * math.Pi
	pl := make(rings.Polyline, count)
	for k := range pl {
		t := tmax * float64(k) / float64(count-1)
		pl[k] = rings.P(t/tmax*w, e.DR/2+math.Sin(t)*e.DR/2)
	}
	return rings.Polylines{e.ToGlobalPath(pl)}
}

// renderCarbon draws one dash per unit length, covering 80% of its slot,
// and at every slot boundary a pair of short radial ticks with a marker
// between them. Every dash gets int(width/quantization) points, at least 2.
func (e Element) renderCarbon() rings.Polylines {
	w := e.Width()
	n := SpreadCount(w, e.UnitLength)
	if n == 0 {
		return nil
	}
	slot := w / float64(n)
	dashSamples := 2
	if e.Quantization > rings.Epsilon {
		dashSamples = max(2, int(w/e.Quantization))
	}
	var lc rings.Polylines
	for i := 0; i < n; i++ {
		x := float64(i) * slot
		lc.Append(rings.Linspace(rings.P(x+0.1*slot, e.DR/2), rings.P(x+0.9*slot, e.DR/2), dashSamples))
	}
	for i := 1; i < n; i++ {
		x := float64(i) * slot
		lc.Append(rings.Polyline{rings.P(x, 0.1*e.DR), rings.P(x, 0.4*e.DR)})
	}
	for i := 1; i < n; i++ {
		x := float64(i) * slot
		lc.Append(rings.Polyline{rings.P(x, 0.6*e.DR), rings.P(x, 0.9*e.DR)})
	}
	for i := 1; i < n; i++ {
		lc.Append(circle(rings.P(float64(i)*slot, e.DR/2), DotRadius, DotRadius/15))
	}
	return e.ToGlobalLines(lc)
}

// renderLine draws an arc along the middle of the band.
func (e Element) renderLine() rings.Polylines {
	w := e.Width()
	pl := rings.Linspace(rings.P(0, e.DR/2), rings.P(w, e.DR/2), e.samples(w, 2))
	return rings.Polylines{e.ToGlobalPath(pl)}
}

// renderMultiLine draws LineCount parallel arcs, evenly spanning the band
// from its inner to its outer border.
func (e Element) renderMultiLine() rings.Polylines {
	w := e.Width()
	m := e.samples(w, 2)
	var lc rings.Polylines
	for _, h := range rings.Linspace(rings.P(0, 0), rings.P(0, e.DR), e.LineCount) {
		lc.Append(rings.Linspace(h, h+rings.P(w, 0), m))
	}
	return e.ToGlobalLines(lc)
}
