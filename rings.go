/*
Package rings implements the geometry base of a radial pattern compiler:
points, affine transformations, polylines and layered drawings.

Sub-packages build on it: package element maps parametric primitives onto
arcs of a ring, package grammar compiles ring grammar text to polylines,
and package generator drives the grammar with random patterns.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package rings

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rings'
func tracer() tracing.Trace {
	return tracing.Select("rings")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD.
const Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D-point, stored as a complex number.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsValid is false for pairs with a NaN or infinite component.
func (p Pair) IsValid() bool {
	return !cmplx.IsNaN(p.C()) && !cmplx.IsInf(p.C())
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Dist returns the euclidian distance between p and p2.
func (p Pair) Dist(p2 Pair) float64 {
	return cmplx.Abs((p - p2).C())
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise,
// in radians).
func (p Pair) Rotated(theta float64) Pair {
	return p * Pair(cmplx.Rect(1, theta))
}

// Lerp interpolates linearly between p (t=0) and p2 (t=1).
func (p Pair) Lerp(p2 Pair, t float64) Pair {
	return p + (p2-p)*Pair(complex(t, 0))
}

// Linspace returns n evenly spaced pairs from p to q, both included.
// For n = 1 the result is [p], for n < 1 it is empty.
func Linspace(p, q Pair, n int) []Pair {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []Pair{p}
	}
	pts := make([]Pair, n)
	for i := 0; i < n; i++ {
		pts[i] = p.Lerp(q, float64(i)/float64(n-1))
	}
	pts[n-1] = q
	return pts
}

// === Affine Transformations ================================================

// AT is an affine transform, a 3x3 matrix flattened by rows. The last row
// is implicitly [0,0,1], so only 6 entries are stored.
type AT [6]float64

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{1, 0, 0, 0, 1, 0}
}

// Translation transform. Translate a point by v.
func Translation(v Pair) AT {
	return AT{1, 0, v.X(), 0, 1, v.Y()}
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return AT{cos, -sin, 0, sin, cos, 0}
}

// Scaling transform. Scale x-coordinates by sx and y-coordinates by sy.
func Scaling(sx, sy float64) AT {
	return AT{sx, 0, 0, 0, sy, 0}
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|0,0,1]", m[0], m[1], m[2], m[3], m[4], m[5])
}

// Combine 2 affine transformations to a new one: the result applies m
// first, then n. Returns a new transformation without changing the
// argument(s).
func (m AT) Combine(n AT) AT {
	return AT{
		n[0]*m[0] + n[1]*m[3],
		n[0]*m[1] + n[1]*m[4],
		n[0]*m[2] + n[1]*m[5] + n[2],
		n[3]*m[0] + n[4]*m[3],
		n[3]*m[1] + n[4]*m[4],
		n[3]*m[2] + n[4]*m[5] + n[5],
	}
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.X(), p.Y()
	return P(m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5])
}
