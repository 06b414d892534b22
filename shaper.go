package ggtext

import (
	"image/color"
	"iter"
	"math"
	"unicode/utf8"

	"github.com/gogpu/ggtext/backend"
)

// PlacedGlyph is one glyph positioned by the shaper.
type PlacedGlyph struct {
	Glyph *GlyphInfo

	// Pen is the cursor position relative to the text origin, in pixels
	// at the requested size. The glyph's Offset has not been applied.
	Pen backend.Point

	// Tint is the color in effect for this glyph.
	Tint color.NRGBA
}

// Alignment selects how DrawTextJustified positions text around its origin.
type Alignment int

const (
	// AlignLeft starts the text at the origin.
	AlignLeft Alignment = iota
	// AlignCenter centers the text on the origin.
	AlignCenter
	// AlignRight ends the text at the origin.
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// noWrap disables line breaking in walk.
var noWrap = math.Inf(1)

// walk shapes text at size and calls yield for every glyph in order.
// Glyphs whose pen plus drawn width would pass wrapWidth start a new line,
// unless they are first on their line. It returns the final pen y and the
// widest pen x reached.
//
// yield may be nil (measure only). Returning false from yield stops the
// walk early.
func (f *Font) walk(text string, size, wrapWidth float64, tint color.NRGBA, yield func(PlacedGlyph) bool) (y, maxX float64) {
	scale := f.scale(size)
	lineStep := f.DefaultNewlineOffset * scale
	degenerate := f.Degenerate()

	var x float64
	var last *GlyphInfo
	cur := tint

	for i := 0; i < len(text); {
		if text[i] == bel {
			i, cur = scanEscape(text, i, cur)
			continue
		}

		r, n := utf8.DecodeRuneInString(text[i:])
		i += n

		if r < 32 {
			if r == '\n' {
				x = 0
				y += lineStep
			}
			last = nil
			continue
		}
		if degenerate {
			continue
		}

		g := f.Glyph(r)

		if x > 0 && x+g.DestSize.X*scale > wrapWidth {
			x = 0
			y += lineStep
		}

		if last != nil && len(last.Kerning) > 0 && x > 0 {
			if k, ok := last.Kerning[g.Value]; ok {
				x += k * scale
			}
		}

		if yield != nil && !yield(PlacedGlyph{Glyph: g, Pen: backend.Point{X: x, Y: y}, Tint: cur}) {
			return y, maxX
		}

		x += (g.DestSize.X + f.DefaultSpacing) * scale
		if x > maxX {
			maxX = x
		}
		last = g
	}

	return y, maxX
}

// Layout returns the glyphs of text as placed by DrawText.
func (f *Font) Layout(text string, size float64, tint color.NRGBA) iter.Seq[PlacedGlyph] {
	return func(yield func(PlacedGlyph) bool) {
		f.walk(text, size, noWrap, tint, yield)
	}
}

// LayoutWrapped returns the glyphs of text as placed by DrawTextWrapped.
func (f *Font) LayoutWrapped(text string, size, width float64, tint color.NRGBA) iter.Seq[PlacedGlyph] {
	return func(yield func(PlacedGlyph) bool) {
		f.walk(text, size, width, tint, yield)
	}
}

// Measure returns the size of text at size: the widest line, including
// the spacing after its last glyph, and the height of all lines.
// Measuring "" yields (0, one line height).
func (f *Font) Measure(text string, size float64) backend.Point {
	y, maxX := f.walk(text, size, noWrap, colorZero, nil)
	return backend.Point{X: maxX, Y: y + f.DefaultNewlineOffset*f.scale(size)}
}

// MeasureWrapped is like Measure but breaks lines at width.
func (f *Font) MeasureWrapped(text string, size, width float64) backend.Point {
	y, maxX := f.walk(text, size, width, colorZero, nil)
	return backend.Point{X: maxX, Y: y + f.DefaultNewlineOffset*f.scale(size)}
}
