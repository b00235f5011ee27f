/*
Package element maps parametric primitive shapes onto arcs of a ring.

An element owns a local rectangle

	(0,0) -> (width, dr)

where x runs along the arc, starting at the element's start angle, and
y is the radial offset from the element's radius. The width is the arc
length at the middle of the band:

	width = (radius + dr/2) * π/180 * (stop_angle - start_angle)

Primitives produce geometry in local coordinates, which is then mapped to
global coordinates. Angles grow clockwise: a local x of 0 maps to the
start angle, a local x of width maps to the stop angle, and angle α is
placed at center + r·(cos(−α), sin(−α)).

Radius, dr and unit length are expected to be positive. This is not
checked; it is the responsibility of the caller. Elements with zero width
or zero unit length render as empty geometry.

Spring elements end their zig-zag at the full width of the element, on the
inner border of the band. Earlier renditions of this pattern stopped one
tooth short, at (n-1)/n of the width; this package deliberately closes the
coil at the stop angle.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package element

import (
	"fmt"
	"math"

	"github.com/npillmayer/rings"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rings.element'
func tracer() tracing.Trace {
	return tracing.Select("rings.element")
}

// Defaults for optional element parameters.
const (
	DefaultQuantization = 0.1
	DefaultLineCount    = 5
	DefaultText         = "A"
)

// Element is a primitive of a given kind, spanning an arc of a ring.
// Elements are values: construct them with New, render them, discard them.
type Element struct {
	Kind         Kind
	Center       rings.Pair
	Radius       float64 // inner radius of the band
	DR           float64 // thickness of the band
	StartAngle   float64 // in degrees, within [0,360)
	StopAngle    float64 // in degrees, within (StartAngle, StartAngle+360]
	UnitLength   float64 // nominal size of repeated items
	Quantization float64 // maximum distance of sampled points
	LineCount    int     // number of lines of a MultiLine
	Text         string  // text of a Text primitive
}

// Option configures optional parameters of an element.
type Option func(*Element)

// WithCenter sets the center of the ring. The default is the origin.
func WithCenter(c rings.Pair) Option {
	return func(e *Element) { e.Center = c }
}

// WithQuantization sets the sampling resolution of point-sampled primitives.
func WithQuantization(q float64) Option {
	return func(e *Element) { e.Quantization = q }
}

// WithLineCount sets the number of parallel lines of a MultiLine.
func WithLineCount(n int) Option {
	return func(e *Element) { e.LineCount = n }
}

// WithText sets the text drawn by a Text primitive.
func WithText(s string) Option {
	return func(e *Element) { e.Text = s }
}

// New creates an element of a given kind. Angles are normalized such that
// the start angle lies in [0,360) and the stop angle is greater than the
// start angle, but at most one full turn apart. A stop angle equal to the
// start angle (modulo 360, up to Epsilon) therefore denotes a full circle,
// and spans may wrap past 0°.
func New(kind Kind, radius, dr, startAngle, stopAngle, unitLength float64, opts ...Option) Element {
	e := Element{
		Kind:         kind,
		Center:       rings.Origin,
		Radius:       radius,
		DR:           dr,
		UnitLength:   unitLength,
		Quantization: DefaultQuantization,
		LineCount:    DefaultLineCount,
		Text:         DefaultText,
	}
	for _, opt := range opts {
		opt(&e)
	}
	e.StartAngle = NormAngle(startAngle)
	e.StopAngle = NormAngle(stopAngle)
	// start+360 may normalize to a few ULPs above start
	if e.StopAngle-e.StartAngle <= rings.Epsilon {
		e.StopAngle += 360
	}
	return e
}

// NormAngle reduces an angle (in degrees) to [0,360).
func NormAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 { // a tiny negative angle plus 360 may round up
		a = 0
	}
	return a
}

func (e Element) String() string {
	return fmt.Sprintf("%s[r=%.4g dr=%.4g %.4g°..%.4g° u=%.4g]", e.Kind,
		e.Radius, e.DR, e.StartAngle, e.StopAngle, e.UnitLength)
}

// AngleDiff returns the angular span of an element, in degrees.
func (e Element) AngleDiff() float64 {
	return e.StopAngle - e.StartAngle
}

// Width returns the length of the local rectangle, i.e. the arc length
// at the middle of the band.
func (e Element) Width() float64 {
	return (e.Radius + e.DR/2) * math.Pi / 180 * e.AngleDiff()
}

// IsDegenerate is true for elements without a usable local rectangle.
// Degenerate elements render as empty geometry.
func (e Element) IsDegenerate() bool {
	return rings.Is0(e.AngleDiff()) || rings.Is0(e.Width())
}

// ToGlobal maps a point of the local rectangle to global coordinates.
func (e Element) ToGlobal(x, y float64) rings.Pair {
	r := e.Radius + y
	alpha := e.StartAngle
	if w := e.Width(); !rings.Is0(w) {
		alpha += x / w * e.AngleDiff()
	}
	alpha *= rings.Deg2Rad
	return e.Center + rings.P(r*math.Cos(-alpha), r*math.Sin(-alpha))
}

// ToGlobalPath maps a local polyline to global coordinates.
func (e Element) ToGlobalPath(pl rings.Polyline) rings.Polyline {
	g := make(rings.Polyline, len(pl))
	for i, p := range pl {
		g[i] = e.ToGlobal(p.X(), p.Y())
	}
	return g
}

// ToGlobalLines maps a collection of local polylines to global coordinates.
func (e Element) ToGlobalLines(pls rings.Polylines) rings.Polylines {
	g := make(rings.Polylines, 0, len(pls))
	for _, pl := range pls {
		g.Append(e.ToGlobalPath(pl))
	}
	return g
}
