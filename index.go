package ggtext

import (
	"iter"
	"sort"
	"unicode/utf8"
)

// Glyph returns the glyph for r, or &f.InvalidGlyph when the font does not
// cover r. The fallback pointer is the same on every call.
//
// The returned pointer stays valid until the next AddGlyph on f.
func (f *Font) Glyph(r rune) *GlyphInfo {
	if g := f.lookup(r); g != nil {
		return g
	}
	return &f.InvalidGlyph
}

// lookup binary-searches the ranges for r.
func (f *Font) lookup(r rune) *GlyphInfo {
	// First range starting after r; its predecessor is the only candidate.
	i := sort.Search(len(f.Ranges), func(i int) bool {
		return f.Ranges[i].Start > r
	}) - 1
	if i < 0 {
		return nil
	}
	rg := &f.Ranges[i]
	if !rg.Contains(r) {
		return nil
	}
	return &rg.Glyphs[r-rg.Start]
}

// HasGlyph reports whether the font covers r.
func (f *Font) HasGlyph(r rune) bool {
	return f.lookup(r) != nil
}

// HasAllGlyphs reports whether the font covers every printable codepoint
// of text. Control characters and color escapes are ignored.
func (f *Font) HasAllGlyphs(text string) bool {
	for i := 0; i < len(text); {
		if text[i] == bel {
			i, _ = scanEscape(text, i, colorZero)
			continue
		}
		r, n := utf8.DecodeRuneInString(text[i:])
		i += n
		if r < 32 {
			continue
		}
		if !f.HasGlyph(r) {
			return false
		}
	}
	return true
}

// GlyphCount returns the number of glyphs in the font.
func (f *Font) GlyphCount() int {
	n := 0
	for i := range f.Ranges {
		n += len(f.Ranges[i].Glyphs)
	}
	return n
}

// Codepoints iterates over the covered codepoints in ascending order.
func (f *Font) Codepoints() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for i := range f.Ranges {
			rg := &f.Ranges[i]
			for c := rg.Start; c < rg.End(); c++ {
				if !yield(c) {
					return
				}
			}
		}
	}
}
