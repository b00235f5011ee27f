package rings

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
)

// === Polylines =============================================================

// Polyline is an ordered sequence of points, drawn as connected straight
// segments. A polyline is closed if its last point equals its first one.
type Polyline []Pair

// Polylines is an ordered collection of polylines, sharing one coordinate
// frame. Order is preserved by every operation of this package.
type Polylines []Polyline

// Start returns the first point of a polyline. Panics for an empty polyline.
func (pl Polyline) Start() Pair {
	return pl[0]
}

// End returns the last point of a polyline. Panics for an empty polyline.
func (pl Polyline) End() Pair {
	return pl[len(pl)-1]
}

// IsClosed is true if a polyline has at least 3 points and ends where it
// starts.
func (pl Polyline) IsClosed() bool {
	return len(pl) > 2 && pl.Start().Equal(pl.End())
}

// Length returns the summed length of all segments.
func (pl Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(pl); i++ {
		l += pl[i].Dist(pl[i-1])
	}
	return l
}

// Reversed returns a copy of pl with the point order reversed.
func (pl Polyline) Reversed() Polyline {
	r := make(Polyline, len(pl))
	for i, p := range pl {
		r[len(pl)-1-i] = p
	}
	return r
}

// Transformed returns a copy of pl with every point transformed by m.
func (pl Polyline) Transformed(m AT) Polyline {
	r := make(Polyline, len(pl))
	for i, p := range pl {
		r[i] = m.Transform(p)
	}
	return r
}

// Append adds polylines to a collection, skipping empty ones.
func (pls *Polylines) Append(lines ...Polyline) {
	for _, l := range lines {
		if len(l) > 0 {
			*pls = append(*pls, l)
		}
	}
}

// Extend appends all polylines of another collection.
func (pls *Polylines) Extend(other Polylines) {
	pls.Append(other...)
}

// PointCount returns the total number of points of all polylines.
func (pls Polylines) PointCount() int {
	n := 0
	for _, l := range pls {
		n += len(l)
	}
	return n
}

// Transformed returns a new collection with every point transformed by m.
func (pls Polylines) Transformed(m AT) Polylines {
	r := make(Polylines, len(pls))
	for i, l := range pls {
		r[i] = l.Transformed(m)
	}
	return r
}

// Translated returns a new collection shifted by v.
func (pls Polylines) Translated(v Pair) Polylines {
	return pls.Transformed(Translation(v))
}

// Rotated returns a new collection rotated counter-clockwise around the
// origin by theta (radians).
func (pls Polylines) Rotated(theta float64) Polylines {
	return pls.Transformed(Rotation(theta))
}

// Scaled returns a new collection scaled by sx and sy.
func (pls Polylines) Scaled(sx, sy float64) Polylines {
	return pls.Transformed(Scaling(sx, sy))
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	Min, Max Pair
}

// Width of r.
func (r Rect) Width() float64 {
	return r.Max.X() - r.Min.X()
}

// Height of r.
func (r Rect) Height() float64 {
	return r.Max.Y() - r.Min.Y()
}

// Center of r.
func (r Rect) Center() Pair {
	return (r.Min + r.Max) / 2
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s-%s]", r.Min, r.Max)
}

// Bounds returns the bounding rectangle of all points of a collection.
// The second return value is false if the collection has no points.
func (pls Polylines) Bounds() (Rect, bool) {
	poly := pls.asPolygon()
	if len(poly) == 0 {
		return Rect{}, false
	}
	bb := poly.BoundingBox()
	return Rect{Min: P(bb.Min.X, bb.Min.Y), Max: P(bb.Max.X, bb.Max.Y)}, true
}

// asPolygon converts non-empty polylines into polyclip contours. Contours
// are only used for bounding box computations, so they need not be closed.
func (pls Polylines) asPolygon() polyclip.Polygon {
	poly := make(polyclip.Polygon, 0, len(pls))
	for _, l := range pls {
		if len(l) == 0 {
			continue
		}
		c := make(polyclip.Contour, len(l))
		for i, p := range l {
			c[i] = polyclip.Point{X: p.X(), Y: p.Y()}
		}
		poly = append(poly, c)
	}
	return poly
}

// IsWellFormed checks that every polyline has at least one point and that
// no coordinate is NaN or infinite.
func (pls Polylines) IsWellFormed() bool {
	for _, l := range pls {
		if len(l) == 0 {
			return false
		}
		for _, p := range l {
			if !p.IsValid() {
				return false
			}
		}
	}
	return true
}

// AsString returns a polyline collection as a (debugging) string, one
// polyline per line, coordinates rounded to 4 digits.
func AsString(pls Polylines) string {
	var b strings.Builder
	for i, l := range pls {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, p := range l {
			if j > 0 {
				b.WriteString(" -- ")
			}
			fmt.Fprintf(&b, "(%.4f,%.4f)", round4(p.X()), round4(p.Y()))
		}
	}
	return b.String()
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
