package ggtext

import (
	"maps"
	"slices"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

// GlyphSet is a set of codepoints to include in a font atlas.
// The zero value is an empty set ready to use.
type GlyphSet struct {
	runes map[rune]struct{}
}

// NewGlyphSet returns a set holding runes.
func NewGlyphSet(runes ...rune) *GlyphSet {
	s := &GlyphSet{}
	for _, r := range runes {
		s.Add(r)
	}
	return s
}

// StandardGlyphSet returns the printable ASCII codepoints 32-126.
func StandardGlyphSet() *GlyphSet {
	return (&GlyphSet{}).AddRange(32, 126)
}

// Add inserts r. Invalid codepoints are ignored.
func (s *GlyphSet) Add(r rune) *GlyphSet {
	if !utf8.ValidRune(r) {
		return s
	}
	if s.runes == nil {
		s.runes = make(map[rune]struct{})
	}
	s.runes[r] = struct{}{}
	return s
}

// AddRange inserts every codepoint from start to end, inclusive.
func (s *GlyphSet) AddRange(start, end rune) *GlyphSet {
	for r := start; r <= end; r++ {
		s.Add(r)
	}
	return s
}

// AddString inserts every codepoint of text after NFC normalization, so
// precomposed forms are requested rather than combining sequences.
// Control characters and invalid UTF-8 are skipped.
func (s *GlyphSet) AddString(text string) *GlyphSet {
	for _, r := range norm.NFC.String(text) {
		if r < 32 || r == utf8.RuneError {
			continue
		}
		s.Add(r)
	}
	return s
}

// AddRangeTable inserts every codepoint of a Unicode range table, such as
// unicode.Greek or unicode.Cyrillic.
func (s *GlyphSet) AddRangeTable(tab *unicode.RangeTable) *GlyphSet {
	if tab == nil {
		return s
	}
	rangetable.Visit(tab, func(r rune) {
		s.Add(r)
	})
	return s
}

// Union inserts every codepoint of other.
func (s *GlyphSet) Union(other *GlyphSet) *GlyphSet {
	if other != nil {
		for r := range other.runes {
			s.Add(r)
		}
	}
	return s
}

// Contains reports whether r is in the set.
func (s *GlyphSet) Contains(r rune) bool {
	_, ok := s.runes[r]
	return ok
}

// Len returns the number of codepoints.
func (s *GlyphSet) Len() int { return len(s.runes) }

// Runes returns the codepoints in ascending order.
func (s *GlyphSet) Runes() []rune {
	return slices.Sorted(maps.Keys(s.runes))
}

// RangeTable returns the set as a Unicode range table.
func (s *GlyphSet) RangeTable() *unicode.RangeTable {
	return rangetable.New(s.Runes()...)
}
