package generator

import (
	"sort"
	"strings"

	"github.com/npillmayer/rings/grammar"
)

// Sampler draws symbols independently from a weighted alphabet. Weights are
// relative and need not sum up to 1.
type Sampler struct {
	runes []rune
	cum   []float64 // cumulative weights
}

// NewSampler creates a sampler for a list of symbols. Symbols with weight 0
// are never drawn.
func NewSampler(symbols []Symbol) *Sampler {
	s := &Sampler{
		runes: make([]rune, len(symbols)),
		cum:   make([]float64, len(symbols)),
	}
	total := 0.0
	for i, sym := range symbols {
		total += sym.Weight
		s.runes[i] = sym.Rune
		s.cum[i] = total
	}
	return s
}

// Next draws one symbol, using exactly one number from rnd.
func (s *Sampler) Next(rnd grammar.Source) rune {
	n := len(s.runes)
	x := rnd.Float64() * s.cum[n-1]
	i := sort.Search(n-1, func(i int) bool { return s.cum[i] > x })
	return s.runes[i]
}

// Sample draws a string of n symbols.
func (s *Sampler) Sample(n int, rnd grammar.Source) string {
	if len(s.runes) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(s.Next(rnd))
	}
	return b.String()
}
