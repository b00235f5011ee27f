package element

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/npillmayer/rings"
)

// Text items are drawn from the outlines of the Go font. Outlines are
// flattened to polylines, centered on their bounding box and scaled to a
// height of 1, y pointing up. Results are cached per text.

var textFont = sync.OnceValues(func() (*sfnt.Font, error) {
	return sfnt.Parse(goregular.TTF)
})

var glyphCache sync.Map // string => rings.Polylines

// textItem returns the element's text, scaled to unit length. The item is
// identical at every spread slot.
func (e Element) textItem() rings.Polylines {
	unit, err := UnitText(e.Text)
	if err != nil {
		tracer().Errorf("text item %q: %v", e.Text, err)
		return nil
	}
	return unit.Scaled(e.UnitLength, e.UnitLength)
}

// UnitText returns the outline of a text as polylines of height 1,
// centered around (0,0). Texts without any visible glyph result in an
// empty collection.
func UnitText(s string) (rings.Polylines, error) {
	if v, ok := glyphCache.Load(s); ok {
		return v.(rings.Polylines), nil
	}
	f, err := textFont()
	if err != nil {
		return nil, fmt.Errorf("cannot load text font: %w", err)
	}
	lines, err := outlineText(f, s)
	if err != nil {
		return nil, err
	}
	bb, ok := lines.Bounds()
	if !ok || rings.Is0(bb.Height()) {
		glyphCache.Store(s, rings.Polylines(nil))
		return nil, nil
	}
	s1 := 1 / bb.Height()
	m := rings.Translation(-bb.Center()).Combine(rings.Scaling(s1, -s1))
	lines = lines.Transformed(m)
	glyphCache.Store(s, lines)
	return lines, nil
}

// outlineText lays out the glyphs of s on a baseline and converts their
// outlines to closed polylines, in font units (y pointing down).
func outlineText(f *sfnt.Font, s string) (rings.Polylines, error) {
	var buf sfnt.Buffer
	upem := f.UnitsPerEm()
	ppem := fixed.Int26_6(upem) << 6
	flatness := float64(upem) / 256
	var lines rings.Polylines
	var dot float64
	for _, r := range s {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil || gid == 0 {
			tracer().Debugf("no glyph for %q", r)
			continue
		}
		segs, err := f.LoadGlyph(&buf, gid, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("cannot load glyph for %q: %w", r, err)
		}
		origin := rings.P(dot, 0)
		lines.Extend(flattenSegments(segs, origin, flatness))
		adv, err := f.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("cannot get advance for %q: %w", r, err)
		}
		dot += fix2float(adv)
	}
	return lines, nil
}

// flattenSegments converts glyph segments to polylines, one per contour.
// Curves are subdivided until their control points are within flatness of
// the chord.
func flattenSegments(segs sfnt.Segments, origin rings.Pair, flatness float64) rings.Polylines {
	var lines rings.Polylines
	var cur rings.Polyline
	closeContour := func() {
		if len(cur) > 1 {
			if !cur.Start().Equal(cur.End()) {
				cur = append(cur, cur.Start())
			}
			lines.Append(cur)
		}
		cur = nil
	}
	pt := func(p fixed.Point26_6) rings.Pair {
		return origin + rings.P(fix2float(p.X), fix2float(p.Y))
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closeContour()
			cur = rings.Polyline{pt(seg.Args[0])}
		case sfnt.SegmentOpLineTo:
			cur = append(cur, pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p0, q, p3 := cur.End(), pt(seg.Args[0]), pt(seg.Args[1])
			c1 := p0 + (q-p0)*2/3
			c2 := p3 + (q-p3)*2/3
			cur = flattenCubic(p0, c1, c2, p3, flatness, cur, 0)
		case sfnt.SegmentOpCubeTo:
			cur = flattenCubic(cur.End(), pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]),
				flatness, cur, 0)
		}
	}
	closeContour()
	return lines
}

const maxFlattenDepth = 10

// flattenCubic subdivides a cubic Bézier curve by De Casteljau's algorithm
// and appends the end points of flat pieces to out.
func flattenCubic(p0, p1, p2, p3 rings.Pair, flatness float64, out rings.Polyline, depth int) rings.Polyline {
	if depth >= maxFlattenDepth ||
		(distToLine(p1, p0, p3) <= flatness && distToLine(p2, p0, p3) <= flatness) {
		return append(out, p3)
	}
	m01, m12, m23 := p0.Lerp(p1, .5), p1.Lerp(p2, .5), p2.Lerp(p3, .5)
	m012, m123 := m01.Lerp(m12, .5), m12.Lerp(m23, .5)
	m := m012.Lerp(m123, .5)
	out = flattenCubic(p0, m01, m012, m, flatness, out, depth+1)
	return flattenCubic(m, m123, m23, p3, flatness, out, depth+1)
}

// distToLine returns the distance of p from the line through a and b.
func distToLine(p, a, b rings.Pair) float64 {
	d := b - a
	if rings.Is0(d.X()) && rings.Is0(d.Y()) {
		return p.Dist(a)
	}
	cross := (p.X()-a.X())*d.Y() - (p.Y()-a.Y())*d.X()
	if cross < 0 {
		cross = -cross
	}
	return cross / b.Dist(a)
}

func fix2float(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
