package grammar

import (
	"strings"

	"github.com/npillmayer/rings/element"
)

// alphabet maps grammar letters to primitive kinds.
var alphabet = map[rune]element.Kind{
	'd': element.Dot,
	'D': element.DotBar,
	'c': element.Circle,
	'b': element.Bar,
	'p': element.Plus,
	's': element.Spring,
	'r': element.Box,
	'S': element.Sine,
	'C': element.Carbon,
	'l': element.Line,
	'L': element.MultiLine,
	't': element.Text,
}

// Letters lists the alphabet in a fixed order.
const Letters = "dDcbpsrSClLt"

// KindOf returns the primitive kind of a letter. The second return value is
// false for characters outside the alphabet.
func KindOf(r rune) (element.Kind, bool) {
	k, ok := alphabet[r]
	return k, ok
}

// Modifier characters, in pairs of increment and decrement.
const (
	Thicker     = 'O'
	Thinner     = 'o'
	Raise       = '^'
	Lower       = 'v'
	LongerUnit  = '+'
	ShorterUnit = '-'
)

// Separators occupy a sector without drawing anything. Any other character
// outside the alphabet behaves the same; RingSeparator ends a ring.
const (
	SegmentSeparator = ' '
	RingSeparator    = '\n'
)

// Modifiers holds the net modifier counts of a ring.
type Modifiers struct {
	DR         int // count('O') - count('o')
	Radius     int // count('^') - count('v')
	UnitLength int // count('+') - count('-')
}

// StripModifiers counts and removes all modifier characters of a ring.
// Counting is independent of the modifiers' positions.
func StripModifiers(ring string) (string, Modifiers) {
	var mods Modifiers
	ring, mods.DR = countModifier(ring, Thicker, Thinner)
	ring, mods.Radius = countModifier(ring, Raise, Lower)
	ring, mods.UnitLength = countModifier(ring, LongerUnit, ShorterUnit)
	return ring, mods
}

func countModifier(s string, plus, minus rune) (string, int) {
	cnt := strings.Count(s, string(plus)) - strings.Count(s, string(minus))
	s = strings.ReplaceAll(s, string(plus), "")
	s = strings.ReplaceAll(s, string(minus), "")
	return s, cnt
}
