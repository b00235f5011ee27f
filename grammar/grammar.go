/*
Package grammar compiles ring grammar text into polylines.

Every line of a grammar text describes one ring of a radial pattern. Rings
are stacked from the inside out: each ring starts where the previous one
ended, plus a margin. A ring's characters partition the full circle into
equal sectors; each maximal run of identical alphabet letters (a streak)
becomes one primitive element spanning the run's sectors.

Alphabet letters select the primitive:

	d  Dot        D  DotBar     c  Circle     b  Bar
	p  Plus       s  Spring     r  Box        S  Sine
	C  Carbon     l  Line       L  MultiLine  t  Text

Modifier characters may appear anywhere in a line. They are counted,
removed, and change the ring's parameters:

	O / o   thicker / thinner ring       (factor 1.2 per count)
	^ / v   raise / lower ring radius    (factor 1.05 per count)
	+ / -   longer / shorter unit length (factor 0.7 per count)

Every other character (e.g., a space) occupies a sector but draws nothing,
separating streaks.

The sectors of a ring with more than one character are rotated by a random
phase, drawn from a caller supplied random source. Compiling the same text
with identically seeded sources yields identical output.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package grammar

import (
	"errors"
	"fmt"

	"github.com/npillmayer/rings"
	"github.com/npillmayer/rings/element"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rings.grammar'
func tracer() tracing.Trace {
	return tracing.Select("rings.grammar")
}

// ErrConfiguration indicates invalid compiler parameters. It is the only
// error condition of the compiler: unknown characters are ignored and
// degenerate elements draw nothing.
var ErrConfiguration = errors.New("invalid grammar configuration")

// Source is a source of random numbers in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Growth factors per modifier count.
const (
	DRFactor         = 1.2
	RadiusFactor     = 1.05
	UnitLengthFactor = 0.7
)

// Params holds the base constants of the compiler.
type Params struct {
	BaseRadius     float64    // radius of the innermost ring
	BaseDR         float64    // unmodified thickness of a ring
	BaseMargin     float64    // gap between consecutive rings
	BaseUnitLength float64    // unmodified size of repeated items
	Quantization   float64    // sampling resolution of elements
	LineCount      int        // lines of a MultiLine
	Text           string     // text drawn by Text elements
	Center         rings.Pair // common center of all rings
}

// DefaultParams returns the standard base constants.
func DefaultParams() Params {
	return Params{
		BaseRadius:     1.0,
		BaseDR:         0.8,
		BaseMargin:     0.2,
		BaseUnitLength: 0.3,
		Quantization:   element.DefaultQuantization,
		LineCount:      element.DefaultLineCount,
		Text:           element.DefaultText,
		Center:         rings.Origin,
	}
}

// Validate checks that all base constants are positive and counts are not
// negative. The returned error wraps ErrConfiguration.
func (p Params) Validate() error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"base radius", p.BaseRadius},
		{"base dr", p.BaseDR},
		{"base margin", p.BaseMargin},
		{"base unit length", p.BaseUnitLength},
		{"quantization", p.Quantization},
	} {
		if !(c.value > 0) { // catches NaN, too
			return fmt.Errorf("%w: %s must be positive, is %g", ErrConfiguration, c.name, c.value)
		}
	}
	if p.LineCount < 0 {
		return fmt.Errorf("%w: line count must not be negative, is %d", ErrConfiguration, p.LineCount)
	}
	if !p.Center.IsValid() {
		return fmt.Errorf("%w: invalid center %s", ErrConfiguration, p.Center)
	}
	return nil
}

func (p Params) elementOptions() []element.Option {
	return []element.Option{
		element.WithCenter(p.Center),
		element.WithQuantization(p.Quantization),
		element.WithLineCount(p.LineCount),
		element.WithText(p.Text),
	}
}
