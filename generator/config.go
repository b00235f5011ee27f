/*
Package generator produces random ring grammar patterns and compiles them
on a grid of independent cells.

Every cell draws a fixed number of symbols from a weighted alphabet of
modifiers, separators and primitive letters, compiles the resulting
grammar text, and places the geometry at its grid position on one of a
number of layers.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package generator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/rings/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rings.generator'
func tracer() tracing.Trace {
	return tracing.Select("rings.generator")
}

// ErrConfiguration indicates an invalid generator configuration.
var ErrConfiguration = errors.New("invalid generator configuration")

// Symbol is a grammar character with a relative sampling weight.
type Symbol struct {
	Name   string // parameter name, e.g. "dot"
	Rune   rune   // grammar character
	Weight float64
}

// DefaultWeight is the weight of every symbol of DefaultSymbols.
const DefaultWeight = 0.1

// DefaultSymbols returns the sampling alphabet: three pairs of modifiers,
// segment and ring separators and the primitive letters, all with equal
// weight.
func DefaultSymbols() []Symbol {
	syms := []Symbol{
		{"plus", grammar.LongerUnit, 0},
		{"minus", grammar.ShorterUnit, 0},
		{"bigger", grammar.Thicker, 0},
		{"smaller", grammar.Thinner, 0},
		{"raise", grammar.Raise, 0},
		{"lower", grammar.Lower, 0},
		{"segsep", grammar.SegmentSeparator, 0},
		{"ringsep", grammar.RingSeparator, 0},
		{"dot", 'd', 0},
		{"dotbar", 'D', 0},
		{"circle", 'c', 0},
		{"bar", 'b', 0},
		{"cross", 'p', 0},
		{"spring", 's', 0},
		{"box", 'r', 0},
		{"sine", 'S', 0},
		{"carbon", 'C', 0},
		{"line", 'l', 0},
		{"multiline", 'L', 0},
	}
	for i := range syms {
		syms[i].Weight = DefaultWeight
	}
	return syms
}

// Config holds the parameters of a generator run.
type Config struct {
	NX, NY      int     // grid size
	Layers      int     // number of output layers
	DX, DY      float64 // distance between grid cells
	LetterCount int     // length of every cell's grammar text
	Symbols     []Symbol
	Seed        uint64 // seed of the random source(s)
	Parallel    bool   // compute cells concurrently, one random stream per cell
	Params      grammar.Params
}

// DefaultConfig returns a configuration for a single cell of 100 letters.
func DefaultConfig() Config {
	return Config{
		NX:          1,
		NY:          1,
		Layers:      1,
		DX:          5,
		DY:          5,
		LetterCount: 100,
		Symbols:     DefaultSymbols(),
		Params:      grammar.DefaultParams(),
	}
}

// SetWeight changes the weight of the symbol with a given name.
func (c *Config) SetWeight(name string, w float64) error {
	for i := range c.Symbols {
		if c.Symbols[i].Name == name {
			c.Symbols[i].Weight = w
			return nil
		}
	}
	return fmt.Errorf("%w: unknown symbol %q", ErrConfiguration, name)
}

// ParseWeights sets symbol weights from a list of the form
// "dot=0.3,bar=0,ringsep=0.05".
func (c *Config) ParseWeights(list string) error {
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, value, ok := strings.Cut(item, "=")
		if !ok {
			return fmt.Errorf("%w: weight %q is not of the form name=value", ErrConfiguration, item)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%w: weight %q: %w", ErrConfiguration, item, err)
		}
		if err := c.SetWeight(strings.TrimSpace(name), w); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a configuration. The returned error wraps
// ErrConfiguration.
func (c Config) Validate() error {
	if c.NX < 1 || c.NY < 1 {
		return fmt.Errorf("%w: grid size must be at least 1x1, is %dx%d", ErrConfiguration, c.NX, c.NY)
	}
	if c.Layers < 1 {
		return fmt.Errorf("%w: layer count must be at least 1, is %d", ErrConfiguration, c.Layers)
	}
	if c.LetterCount < 0 {
		return fmt.Errorf("%w: letter count must not be negative, is %d", ErrConfiguration, c.LetterCount)
	}
	if !isFinite(c.DX) || !isFinite(c.DY) {
		return fmt.Errorf("%w: invalid cell distance (%g,%g)", ErrConfiguration, c.DX, c.DY)
	}
	seen := make(map[rune]bool, len(c.Symbols))
	total := 0.0
	for _, s := range c.Symbols {
		if !(s.Weight >= 0) || math.IsInf(s.Weight, 0) {
			return fmt.Errorf("%w: weight of %q must be a non-negative number, is %g",
				ErrConfiguration, s.Name, s.Weight)
		}
		if seen[s.Rune] {
			return fmt.Errorf("%w: duplicate symbol %q", ErrConfiguration, s.Rune)
		}
		seen[s.Rune] = true
		total += s.Weight
	}
	if c.LetterCount > 0 && !(total > 0) {
		return fmt.Errorf("%w: symbol weights must not all be zero", ErrConfiguration)
	}
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
