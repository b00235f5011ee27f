/*
Package finish prepares compiled polylines for plotting: it merges
polylines with touching ends, simplifies them and sorts them to reduce
pen-up travel.

All operations return new collections and leave their input unchanged.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package finish

import (
	"github.com/npillmayer/rings"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rings.finish'
func tracer() tracing.Trace {
	return tracing.Select("rings.finish")
}

// Options selects finishing steps. Steps run in the order merge, simplify,
// sort.
type Options struct {
	MergeTolerance    float64 // merge if > 0
	SimplifyTolerance float64 // simplify if > 0
	Sort              bool
	AllowFlip         bool // sorting may reverse polylines
}

// DefaultOptions returns the standard finishing pipeline: simplify and sort.
func DefaultOptions() Options {
	return Options{
		SimplifyTolerance: 0.001,
		Sort:              true,
		AllowFlip:         true,
	}
}

// Apply runs the selected finishing steps on a collection.
func Apply(lines rings.Polylines, opts Options) rings.Polylines {
	n := lines.PointCount()
	if opts.MergeTolerance > 0 {
		lines = Merge(lines, opts.MergeTolerance)
	}
	if opts.SimplifyTolerance > 0 {
		lines = Simplify(lines, opts.SimplifyTolerance)
	}
	if opts.Sort {
		lines = Sort(lines, opts.AllowFlip)
	}
	tracer().Debugf("finished %d polylines, %d -> %d points", len(lines), n, lines.PointCount())
	return lines
}

// ApplyToDrawing finishes every layer of a drawing separately.
func ApplyToDrawing(d *rings.Drawing, opts Options) {
	d.Map(func(layer int, lines rings.Polylines) rings.Polylines {
		return Apply(lines, opts)
	})
}

// Simplify reduces the points of every polyline by the Ramer-Douglas-Peucker
// algorithm: points closer than tolerance to the simplified line are
// dropped. End points are always kept.
func Simplify(lines rings.Polylines, tolerance float64) rings.Polylines {
	out := make(rings.Polylines, 0, len(lines))
	for _, l := range lines {
		out.Append(simplify(l, tolerance))
	}
	return out
}

func simplify(pl rings.Polyline, tolerance float64) rings.Polyline {
	if len(pl) < 3 {
		return append(rings.Polyline(nil), pl...)
	}
	keep := make([]bool, len(pl))
	keep[0], keep[len(pl)-1] = true, true
	rdp(pl, 0, len(pl)-1, tolerance, keep)
	var out rings.Polyline
	for i, p := range pl {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

func rdp(pl rings.Polyline, first, last int, tolerance float64, keep []bool) {
	if last-first < 2 {
		return
	}
	maxd, idx := 0.0, -1
	for i := first + 1; i < last; i++ {
		if d := distToSegment(pl[i], pl[first], pl[last]); d > maxd {
			maxd, idx = d, i
		}
	}
	if idx < 0 || maxd <= tolerance {
		return
	}
	keep[idx] = true
	rdp(pl, first, idx, tolerance, keep)
	rdp(pl, idx, last, tolerance, keep)
}

// distToSegment returns the distance of p from the segment a-b.
func distToSegment(p, a, b rings.Pair) float64 {
	d := b - a
	l2 := d.X()*d.X() + d.Y()*d.Y()
	if rings.Is0(l2) {
		return p.Dist(a)
	}
	t := ((p.X()-a.X())*d.X() + (p.Y()-a.Y())*d.Y()) / l2
	t = max(0, min(1, t))
	return p.Dist(a.Lerp(b, t))
}
