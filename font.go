package ggtext

import (
	"sync/atomic"

	"github.com/gogpu/ggtext/backend"
)

// GlyphInfo describes one glyph of a font.
type GlyphInfo struct {
	// Value is the codepoint. The invalid glyph has Value -1.
	Value rune

	// Offset from the pen position to the top-left corner of the glyph
	// rectangle, in logical units at the font's base size.
	Offset backend.Point

	// Advance is the font's advance width for the glyph, in logical units.
	Advance float64

	// SourceRect is the glyph's region in the atlas, in atlas pixels.
	SourceRect backend.Rect

	// DestSize is the drawn size of the glyph at the font's base size.
	DestSize backend.Point

	// Kerning maps the codepoint that follows this glyph to the horizontal
	// adjustment applied between the two, at the font's base size.
	Kerning map[rune]float64
}

// GlyphRange is a run of glyphs with consecutive codepoints: Glyphs[i]
// has codepoint Start+i.
type GlyphRange struct {
	Start  rune
	Glyphs []GlyphInfo
}

// End returns the first codepoint after the range.
func (r *GlyphRange) End() rune {
	return r.Start + rune(len(r.Glyphs))
}

// Contains reports whether c is covered by the range.
func (r *GlyphRange) Contains(c rune) bool {
	return c >= r.Start && c < r.End()
}

// Font is a glyph atlas plus the metrics needed to lay out text with it.
//
// Ranges are sorted by Start and never overlap. Every SourceRect lies
// inside the atlas and outside the invalid-glyph corner.
type Font struct {
	// BaseSize is the pixel size the font was built for. Drawing at another
	// size scales everything by size/BaseSize.
	BaseSize float64

	// GlyphPadding is the padding around each glyph in the atlas.
	GlyphPadding float64

	// DefaultSpacing is added after every glyph.
	DefaultSpacing float64

	// DefaultNewlineOffset is the distance between line tops.
	DefaultNewlineOffset float64

	// Ascent is the distance from the line top to the baseline.
	Ascent float64

	Ranges []GlyphRange

	// InvalidGlyph is drawn for codepoints the font does not cover.
	InvalidGlyph GlyphInfo

	// Texture holds the atlas. It is nil for a degenerate font.
	Texture backend.Texture

	// LowestSourceRectY is the bottom edge of the lowest glyph in the atlas.
	LowestSourceRectY float64

	// LastSourceRectX is the right edge of the most recently placed glyph.
	LastSourceRectX float64

	lastRowY    float64 // top of the most recently placed glyph
	rasterScale float64 // device pixels per logical pixel
	id          uint64
	generation  uint64
	isDefault   bool
}

var fontIDs atomic.Uint64

// newFont returns an empty font with the metrics derived from size.
func newFont(size float64) *Font {
	return &Font{
		BaseSize:             size,
		GlyphPadding:         DefaultGlyphPadding,
		DefaultSpacing:       size / 10,
		DefaultNewlineOffset: size * 1.2,
		InvalidGlyph:         GlyphInfo{Value: -1},
		rasterScale:          1,
		id:                   fontIDs.Add(1),
	}
}

// Degenerate reports whether the font has no atlas. A degenerate font
// measures line heights but places and draws no glyphs.
func (f *Font) Degenerate() bool {
	return f.Texture == nil
}

// IsDefault reports whether f is an engine's built-in font.
func (f *Font) IsDefault() bool { return f.isDefault }

// Generation returns a counter that changes whenever glyphs are added to
// or removed from the font.
func (f *Font) Generation() uint64 { return f.generation }

// scale returns the factor from the font's base size to size.
func (f *Font) scale(size float64) float64 {
	if f.BaseSize <= 0 {
		return 0
	}
	return size / f.BaseSize
}

// Advance returns how far the pen moves after drawing r at size, before
// kerning with the next glyph.
func (f *Font) Advance(r rune, size float64) float64 {
	g := f.Glyph(r)
	return (g.DestSize.X + f.DefaultSpacing) * f.scale(size)
}

// Kerning returns the adjustment between left and right at size, or 0.
func (f *Font) Kerning(left, right rune, size float64) float64 {
	g := f.lookup(left)
	if g == nil {
		return 0
	}
	return g.Kerning[right] * f.scale(size)
}
