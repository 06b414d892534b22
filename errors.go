package ggtext

import (
	"errors"
	"fmt"
)

// Sentinel errors for ggtext.
var (
	// ErrFontParse is returned when the rasterizer cannot parse font data.
	// The font returned alongside it is degenerate but usable.
	ErrFontParse = errors.New("ggtext: cannot parse font data")

	// ErrInvalidSize is returned for a non-positive font size.
	ErrInvalidSize = errors.New("ggtext: font size must be positive")

	// ErrNilFont is returned when a nil font is passed where one is required.
	ErrNilFont = errors.New("ggtext: nil font")

	// ErrNilMask is returned by AddGlyph for a nil coverage bitmap.
	ErrNilMask = errors.New("ggtext: nil glyph bitmap")

	// ErrDefaultFontImmutable is returned when AddGlyph targets the default
	// font.
	ErrDefaultFontImmutable = errors.New("ggtext: the default font cannot be modified")

	// ErrDegenerateFont is returned when AddGlyph targets a font without an
	// atlas.
	ErrDegenerateFont = errors.New("ggtext: font has no atlas")

	// ErrInvalidCodepoint is returned by AddGlyph for a codepoint the
	// shaper never draws: control characters below U+0020, negative runes
	// and values past unicode.MaxRune.
	ErrInvalidCodepoint = errors.New("ggtext: codepoint cannot be drawn")

	// ErrGlyphExists is returned when AddGlyph is given a codepoint the font
	// already covers.
	ErrGlyphExists = errors.New("ggtext: glyph already in font")

	// ErrAtlasFull is returned when AddGlyph finds no room for a glyph.
	// The font is left unchanged.
	ErrAtlasFull = errors.New("ggtext: no room left in atlas")

	// ErrShutdown is returned by Init after Shutdown.
	ErrShutdown = errors.New("ggtext: engine is shut down")
)

// AtlasSizeError is returned when the glyphs of a font do not fit in an
// atlas of the maximum allowed size.
type AtlasSizeError struct {
	Width, Height int // size of the last attempted atlas
	Max           int // maximum side length
}

func (e *AtlasSizeError) Error() string {
	return fmt.Sprintf("ggtext: glyphs do not fit in a %dx%d atlas (max side %d)", e.Width, e.Height, e.Max)
}
