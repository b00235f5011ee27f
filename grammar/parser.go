package grammar

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/rings"
	"github.com/npillmayer/rings/element"
)

// Ring is the parse result of one grammar line.
type Ring struct {
	Index      int       // position of the line within the grammar text
	Text       string    // line with modifiers stripped
	Mods       Modifiers // net modifier counts
	Radius     float64   // inner radius of the ring (r)
	DR         float64   // thickness of the ring
	UnitLength float64   // size of repeated items
	ArcBounds  []float64 // sector boundaries in degrees, len(Text)+1 entries
	Elements   []element.Element
}

// Streak is a maximal run of one alphabet letter within a stripped ring,
// covering character positions [Start,End).
type Streak struct {
	Letter     rune
	Start, End int
}

// SplitRings splits a grammar text into lines. Line breaks may be "\n",
// "\r\n" or "\r". A line break at the very beginning or end of the text
// does not produce an empty ring.
func SplitRings(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return lines
}

// ArcBounds partitions the full circle into n equal sectors and returns
// the n+1 sector boundaries. For n > 1 all boundaries are rotated by a
// random phase in [0,360), drawing exactly one number from rnd. A single
// sector always spans [0,360] and draws nothing.
func ArcBounds(n int, rnd Source) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{0, 360}
	}
	phase := rnd.Float64() * 360
	bounds := make([]float64, n+1)
	for k := range bounds {
		bounds[k] = 360*float64(k)/float64(n) + phase
	}
	return bounds
}

// Streaks finds all maximal runs of identical alphabet letters. Characters
// outside the alphabet are skipped and separate runs.
func Streaks(ring []rune) []Streak {
	var streaks []Streak
	pos := 0
	for pos < len(ring) {
		if _, ok := KindOf(ring[pos]); !ok {
			pos++
			continue
		}
		end := pos
		for end < len(ring) && ring[end] == ring[pos] {
			end++
		}
		streaks = append(streaks, Streak{Letter: ring[pos], Start: pos, End: end})
		pos = end
	}
	return streaks
}

// Parse turns a grammar text into rings of positioned elements. The radius
// accumulates over rings, starting at the base radius; each ring advances
// it by its thickness plus the base margin, even if the ring is empty.
//
// Parameters are validated before any ring is processed; an invalid
// configuration or a missing random source results in an error wrapping
// ErrConfiguration.
func Parse(text string, params Params, rnd Source) ([]Ring, error) {
	if err := params.Validate(); err != nil {
		tracer().Errorf("rejecting grammar parameters: %v", err)
		return nil, err
	}
	if rnd == nil {
		return nil, fmt.Errorf("%w: missing random source", ErrConfiguration)
	}
	opts := params.elementOptions()
	lines := SplitRings(text)
	result := make([]Ring, 0, len(lines))
	radius := params.BaseRadius
	for i, line := range lines {
		stripped, mods := StripModifiers(line)
		ring := Ring{
			Index:      i,
			Text:       stripped,
			Mods:       mods,
			DR:         params.BaseDR * math.Pow(DRFactor, float64(mods.DR)),
			Radius:     radius * math.Pow(RadiusFactor, float64(mods.Radius)),
			UnitLength: params.BaseUnitLength * math.Pow(UnitLengthFactor, float64(mods.UnitLength)),
		}
		radius += ring.DR + params.BaseMargin
		runes := []rune(stripped)
		if len(runes) == 0 {
			tracer().Debugf("ring %d is empty, radius advances to %.4g", i, radius)
			result = append(result, ring)
			continue
		}
		ring.ArcBounds = ArcBounds(len(runes), rnd)
		for _, s := range Streaks(runes) {
			kind, _ := KindOf(s.Letter)
			e := element.New(kind, ring.Radius, ring.DR,
				ring.ArcBounds[s.Start], ring.ArcBounds[s.End], ring.UnitLength, opts...)
			ring.Elements = append(ring.Elements, e)
		}
		tracer().Debugf("ring %d %q: r=%.4g dr=%.4g u=%.4g, %d elements",
			i, stripped, ring.Radius, ring.DR, ring.UnitLength, len(ring.Elements))
		result = append(result, ring)
	}
	return result, nil
}

// Compile parses a grammar text and renders all elements, ring by ring and
// streak by streak, into one collection of polylines.
func Compile(text string, params Params, rnd Source) (rings.Polylines, error) {
	parsed, err := Parse(text, params, rnd)
	if err != nil {
		return nil, err
	}
	return Render(parsed), nil
}

// Render renders the elements of parsed rings, preserving their order.
func Render(parsed []Ring) rings.Polylines {
	var lines rings.Polylines
	for _, ring := range parsed {
		for _, e := range ring.Elements {
			lines.Extend(e.Render())
		}
	}
	return lines
}

// IsConfigurationError is a convenience predicate for errors returned by
// Parse and Compile.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
