package element

import (
	"github.com/npillmayer/rings"
)

// Kind enumerates the closed set of primitive shapes.
type Kind int8

// Primitive kinds. Dot, DotBar, Circle, Bar, Plus and Text are spread
// primitives: they repeat an item along the arc.
const (
	Dot       Kind = iota // point marker
	DotBar                // alternating radial tick and point marker
	Circle                // small circle
	Bar                   // radial tick
	Plus                  // cross
	Spring                // zig-zag coil
	Box                   // outline of the local rectangle
	Sine                  // sinusoid
	Carbon                // dashes, ticks and markers, like a chain
	Line                  // arc along the middle of the band
	MultiLine             // parallel arcs spanning the band
	Text                  // glyph outlines
)

var kindNames = [...]string{
	Dot:       "Dot",
	DotBar:    "DotBar",
	Circle:    "Circle",
	Bar:       "Bar",
	Plus:      "Plus",
	Spring:    "Spring",
	Box:       "Box",
	Sine:      "Sine",
	Carbon:    "Carbon",
	Line:      "Line",
	MultiLine: "MultiLine",
	Text:      "Text",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// IsSpread is true for primitives which repeat an item along the arc.
func (k Kind) IsSpread() bool {
	switch k {
	case Dot, DotBar, Circle, Bar, Plus, Text:
		return true
	}
	return false
}

// Render produces the geometry of an element in global coordinates.
// Degenerate elements produce no geometry.
func (e Element) Render() rings.Polylines {
	if e.IsDegenerate() {
		tracer().Debugf("skipping degenerate element %s", e)
		return nil
	}
	if e.Kind.IsSpread() {
		if e.UnitLength <= rings.Epsilon {
			tracer().Debugf("skipping element %s with zero unit length", e)
			return nil
		}
		return e.spread(e.RenderItem)
	}
	switch e.Kind {
	case Spring:
		return e.renderSpring()
	case Box:
		return e.renderBox()
	case Sine:
		return e.renderSine()
	case Carbon:
		return e.renderCarbon()
	case Line:
		return e.renderLine()
	case MultiLine:
		return e.renderMultiLine()
	}
	tracer().Errorf("unknown primitive kind %d", e.Kind)
	return nil
}

// RenderItem renders item i of n of a spread primitive, centered around
// (0,0) and in upright orientation. Non-spread primitives have no items.
func (e Element) RenderItem(i, n int) rings.Polylines {
	switch e.Kind {
	case Dot:
		return rings.Polylines{dotMarker()}
	case DotBar:
		if i%2 == 0 {
			return rings.Polylines{e.barItem()}
		}
		return rings.Polylines{dotMarker()}
	case Circle:
		return rings.Polylines{circle(rings.Origin, e.UnitLength/4, e.UnitLength/10)}
	case Bar:
		return rings.Polylines{e.barItem()}
	case Plus:
		u := e.UnitLength
		return rings.Polylines{
			{rings.P(-u/3, 0), rings.P(u/3, 0)},
			{rings.P(0, -u/3), rings.P(0, u/3)},
		}
	case Text:
		return e.textItem()
	}
	return nil
}
