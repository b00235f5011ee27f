/*
Package svgplot writes layered drawings as SVG files for pen plotters.

Drawings are scaled from drawing units to millimetres, centered on a
page and written with one group per layer. Coordinates are emitted as
integers in 1/100 mm.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package svgplot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/npillmayer/rings"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rings.svgplot'
func tracer() tracing.Trace {
	return tracing.Select("rings.svgplot")
}

// ErrUnknownPage indicates a page size name which is not known.
var ErrUnknownPage = errors.New("unknown page size")

// Resolution is the number of SVG user units per millimetre.
const Resolution = 100

// pageSizes in mm, portrait.
var pageSizes = map[string][2]float64{
	"a6":      {105, 148},
	"a5":      {148, 210},
	"a4":      {210, 297},
	"a3":      {297, 420},
	"a2":      {420, 594},
	"a1":      {594, 841},
	"a0":      {841, 1189},
	"letter":  {215.9, 279.4},
	"legal":   {215.9, 355.6},
	"tabloid": {279.4, 431.8},
}

// PageNames returns the names of all known page sizes, sorted.
func PageNames() []string {
	names := make([]string, 0, len(pageSizes))
	for n := range pageSizes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PageSize returns width and height of a named page in mm.
func PageSize(name string, landscape bool) (float64, float64, error) {
	sz, ok := pageSizes[strings.ToLower(name)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	if landscape {
		return sz[1], sz[0], nil
	}
	return sz[0], sz[1], nil
}

// Options for SVG output.
type Options struct {
	Page        string  // page size name
	Landscape   bool    // swap page width and height
	UnitMM      float64 // millimetres per drawing unit
	Scale       float64 // additional scale factor
	Center      bool    // center the drawing on the page
	StrokeWidth float64 // in mm
}

// DefaultOptions draws in centimetres, centered on an A4 page.
func DefaultOptions() Options {
	return Options{
		Page:        "a4",
		UnitMM:      10,
		Scale:       1,
		Center:      true,
		StrokeWidth: 0.3,
	}
}

// PageTransform returns the transform from drawing units to page
// coordinates in mm (y pointing down), for a drawing with bounds bb.
func PageTransform(bb rings.Rect, pageW, pageH float64, opts Options) rings.AT {
	s := opts.UnitMM * opts.Scale
	m := rings.Scaling(s, s)
	if opts.Center {
		m = rings.Translation(-bb.Center()).Combine(m).
			Combine(rings.Translation(rings.P(pageW/2, pageH/2)))
	}
	return m
}

// Write writes a drawing as an SVG document.
func Write(w io.Writer, d *rings.Drawing, opts Options) error {
	if !(opts.UnitMM > 0) || !(opts.Scale > 0) {
		return fmt.Errorf("invalid scale %g x %g", opts.UnitMM, opts.Scale)
	}
	pw, ph, err := PageSize(opts.Page, opts.Landscape)
	if err != nil {
		return err
	}
	bb, ok := d.Bounds()
	if !ok {
		bb = rings.Rect{}
	}
	m := PageTransform(bb, pw, ph, opts)
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startunit(int(math.Round(pw)), int(math.Round(ph)), "mm",
		fmt.Sprintf(`viewBox="0 0 %d %d"`, toUnits(pw), toUnits(ph)))
	count := 0
	for _, id := range d.Layers() {
		canvas.Group(fmt.Sprintf(`id="layer%d"`, id), `fill="none"`, `stroke="black"`,
			fmt.Sprintf(`stroke-width="%d"`, toUnits(opts.StrokeWidth)),
			`stroke-linecap="round"`, `stroke-linejoin="round"`)
		for _, l := range d.Layer(id) {
			if len(l) < 2 {
				continue
			}
			xs, ys := make([]int, len(l)), make([]int, len(l))
			for i, p := range l {
				q := m.Transform(p)
				xs[i], ys[i] = toUnits(q.X()), toUnits(q.Y())
			}
			canvas.Polyline(xs, ys)
			count++
		}
		canvas.Gend()
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("cannot write SVG: %w", ew.err)
	}
	tracer().Infof("wrote %d polylines in %d layers on page %s", count, len(d.Layers()), opts.Page)
	return nil
}

func toUnits(mm float64) int {
	return int(math.Round(mm * Resolution))
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
