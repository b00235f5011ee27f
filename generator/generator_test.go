package generator

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/rings"
	"github.com/npillmayer/rings/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestSamplerBisection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSampler([]Symbol{{"a", 'a', 1}, {"b", 'b', 0}, {"c", 'c', 1}})
	assert.Equal(t, 'a', s.Next(fixedSource(0)))
	assert.Equal(t, 'a', s.Next(fixedSource(0.25)))
	assert.Equal(t, 'c', s.Next(fixedSource(0.5)), "zero weight symbol must be skipped")
	assert.Equal(t, 'c', s.Next(fixedSource(0.999)))
}

func TestSamplerFollowsWeights(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSampler([]Symbol{{"x", 'x', 3}, {"y", 'y', 1}, {"z", 'z', 0}})
	text := s.Sample(10000, rand.New(rand.NewPCG(1, 1)))
	assert.Equal(t, 10000, utf8.RuneCountInString(text))
	assert.Zero(t, strings.Count(text, "z"))
	x := strings.Count(text, "x")
	assert.InDelta(t, 7500, x, 300)
}

func TestDefaultSymbols(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	syms := DefaultSymbols()
	assert.Len(t, syms, 19)
	primitives := 0
	for _, s := range syms {
		if _, ok := grammar.KindOf(s.Rune); ok {
			primitives++
		}
	}
	assert.Equal(t, 11, primitives)
	assert.NoError(t, DefaultConfig().Validate())
}

func TestParseWeights(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	require.NoError(t, cfg.ParseWeights("dot=0.5, bar = 0,,ringsep=2"))
	for _, s := range cfg.Symbols {
		switch s.Name {
		case "dot":
			assert.Equal(t, 0.5, s.Weight)
		case "bar":
			assert.Equal(t, 0.0, s.Weight)
		case "ringsep":
			assert.Equal(t, 2.0, s.Weight)
		default:
			assert.Equal(t, DefaultWeight, s.Weight)
		}
	}
	for _, bad := range []string{"foo=1", "dot", "dot=x"} {
		err := cfg.ParseWeights(bad)
		assert.True(t, errors.Is(err, ErrConfiguration), "%q: got %v", bad, err)
	}
}

func TestInvalidConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for name, mutate := range map[string]func(*Config){
		"grid":      func(c *Config) { c.NX = 0 },
		"layers":    func(c *Config) { c.Layers = 0 },
		"letters":   func(c *Config) { c.LetterCount = -1 },
		"weight":    func(c *Config) { c.Symbols[3].Weight = -0.1 },
		"all zero":  func(c *Config) { c.Symbols = []Symbol{{"dot", 'd', 0}} },
		"duplicate": func(c *Config) { c.Symbols = append(c.Symbols, Symbol{"d2", 'd', 1}) },
		"params":    func(c *Config) { c.Params.BaseDR = 0 },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		_, err := Generate(cfg)
		assert.True(t, errors.Is(err, ErrConfiguration), "%s: got %v", name, err)
	}
	cfg := DefaultConfig()
	cfg.Params.BaseUnitLength = -1
	err := cfg.Validate()
	assert.True(t, errors.Is(err, grammar.ErrConfiguration))
}

func TestLayerOf(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 1, LayerOf(0, 0, 3, 2))
	assert.Equal(t, 2, LayerOf(1, 0, 3, 2))
	assert.Equal(t, 1, LayerOf(2, 0, 3, 2))
	assert.Equal(t, 2, LayerOf(0, 1, 3, 2))
	assert.Equal(t, 1, LayerOf(5, 7, 3, 1))
}

func TestGenerateIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	cfg.NX, cfg.NY, cfg.Layers = 2, 2, 3
	cfg.Seed = 42
	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := GenerateWith(cfg, NewSource(42))
	require.NoError(t, err)
	require.Len(t, a.Cells, 4)
	for k := range a.Cells {
		assert.Equal(t, a.Cells[k].Pattern, b.Cells[k].Pattern)
		assert.Equal(t, a.Cells[k].Lines, b.Cells[k].Lines)
		assert.True(t, a.Cells[k].Lines.IsWellFormed())
	}
	assert.NotEqual(t, a.Cells[0].Pattern, a.Cells[1].Pattern, "cells share one advancing stream")
	assert.Equal(t, []int{1, 2, 3}, a.Drawing.Layers())
	n := 0
	for _, c := range a.Cells {
		n += len(c.Lines)
	}
	assert.Equal(t, n, a.Drawing.Len())
}

func TestCellsAreTranslated(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	cfg.NX, cfg.NY = 3, 2
	cfg.DX, cfg.DY = 7, 11
	cfg.LetterCount = 1
	cfg.Symbols = []Symbol{{"dot", 'd', 1}}
	res, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, res.Cells, 6)
	origin := res.Cells[0].Lines
	require.Len(t, origin, 30)
	for _, c := range res.Cells {
		assert.Equal(t, "d", c.Pattern)
		want := origin.Translated(rings.P(float64(c.I)*7, float64(c.J)*11))
		require.Len(t, c.Lines, len(want))
		for k := range want {
			for m := range want[k] {
				assert.True(t, want[k][m].Equal(c.Lines[k][m]))
			}
		}
	}
	assert.Equal(t, 1, res.Cells[3].I)
	assert.Equal(t, 1, res.Cells[3].J)
}

func TestParallelGeneration(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	cfg.NX, cfg.NY, cfg.Layers = 3, 3, 2
	cfg.Seed = 7
	cfg.Parallel = true
	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, a.Cells, 9)
	for k, c := range a.Cells {
		assert.Equal(t, k%3, c.I)
		assert.Equal(t, k/3, c.J)
		assert.Equal(t, LayerOf(c.I, c.J, 3, 2), c.Layer)
		assert.Equal(t, c.Pattern, b.Cells[k].Pattern)
		assert.Equal(t, c.Lines, b.Cells[k].Lines)
	}
}

func TestEmptyPatterns(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	cfg.LetterCount = 0
	res, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, res.Cells, 1)
	assert.Empty(t, res.Cells[0].Pattern)
	assert.Empty(t, res.Cells[0].Lines)
}
