package ggtext

import (
	"fmt"

	"github.com/gogpu/ggtext/backend"
)

// Default font layout.
const (
	defaultFontFirst   = 32
	defaultFontGlyphs  = 224
	defaultFontAtlas   = 128
	defaultFontHeight  = 10
	defaultFontDivisor = 1
)

// defaultFontWidths holds the pixel width of each default font glyph,
// starting at codepoint 32.
var defaultFontWidths = [defaultFontGlyphs]int{
	3, 1, 4, 6, 5, 7, 6, 2, 3, 3, 5, 5, 2, 4, 1, 7, 5, 2, 5, 5, 5, 5, 5, 5, 5, 5, 1, 1, 3, 4, 3, 6,
	7, 6, 6, 6, 6, 6, 6, 6, 6, 3, 5, 6, 5, 7, 6, 6, 6, 6, 6, 6, 7, 6, 7, 7, 6, 6, 6, 2, 7, 2, 3, 5,
	2, 5, 5, 5, 5, 5, 4, 5, 5, 1, 2, 5, 2, 5, 5, 5, 5, 5, 5, 5, 4, 5, 5, 5, 5, 5, 5, 3, 1, 3, 4, 4,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 5, 5, 5, 7, 1, 5, 3, 7, 3, 5, 4, 1, 7, 4, 3, 5, 3, 3, 2, 5, 6, 1, 2, 2, 3, 5, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 7, 6, 6, 6, 6, 6, 3, 3, 3, 3, 7, 6, 6, 6, 6, 6, 6, 5, 6, 6, 6, 6, 6, 6, 4, 6,
	5, 5, 5, 5, 5, 5, 9, 5, 5, 5, 5, 5, 2, 2, 3, 3, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 3, 5,
}

// defaultFontBitmap decodes the embedded one-bit atlas. Set bits become
// opaque white; clear bits are white with zero alpha.
func defaultFontBitmap() *backend.Bitmap {
	bm := backend.NewBitmap(defaultFontAtlas, defaultFontAtlas)
	for i := 0; i < defaultFontAtlas*defaultFontAtlas; i += 32 {
		word := defaultFontBits[i/32]
		for j := 31; j >= 0; j-- {
			p := i + j
			x, y := p%defaultFontAtlas, p/defaultFontAtlas
			if word&(1<<uint(j)) != 0 {
				bm.SetPixel(x, y, 0xff, 0xff)
			} else {
				bm.SetPixel(x, y, 0xff, 0x00)
			}
		}
	}
	return bm
}

// defaultFontRange lays out the glyph cells of the embedded atlas: rows of
// defaultFontHeight pixels, one divisor pixel between cells.
func defaultFontRange() GlyphRange {
	rg := GlyphRange{Start: defaultFontFirst, Glyphs: make([]GlyphInfo, defaultFontGlyphs)}

	line := 0
	posX := defaultFontDivisor
	testX := defaultFontDivisor

	for i := range rg.Glyphs {
		w := defaultFontWidths[i]
		g := &rg.Glyphs[i]
		g.Value = rune(defaultFontFirst + i)
		g.Advance = float64(w)
		g.DestSize = backend.Point{X: float64(w), Y: defaultFontHeight}
		g.SourceRect = backend.Rect{
			X:      float64(posX),
			Y:      float64(defaultFontDivisor + line*(defaultFontHeight+defaultFontDivisor)),
			Width:  float64(w),
			Height: defaultFontHeight,
		}

		testX += w + defaultFontDivisor
		if testX >= defaultFontAtlas {
			line++
			posX = 2*defaultFontDivisor + w
			testX = posX
			g.SourceRect.X = defaultFontDivisor
			g.SourceRect.Y = float64(defaultFontDivisor + line*(defaultFontHeight+defaultFontDivisor))
		} else {
			posX = testX
		}
	}
	return rg
}

// newDefaultFont builds the built-in font and uploads its atlas.
func newDefaultFont(b backend.TextureBackend) (*Font, error) {
	f := degenerateDefaultFont()
	f.Ranges = []GlyphRange{defaultFontRange()}

	q := f.Glyph('?')
	f.InvalidGlyph = *q
	f.InvalidGlyph.Value = -1

	last := f.Ranges[0].Glyphs[defaultFontGlyphs-1].SourceRect
	f.LastSourceRectX = last.Right()
	f.lastRowY = last.Y
	f.LowestSourceRectY = defaultFontAtlas

	tex, err := b.Upload(defaultFontBitmap())
	if err != nil {
		return degenerateDefaultFont(), fmt.Errorf("ggtext: upload default font: %w", err)
	}
	f.Texture = tex
	return f, nil
}

// degenerateDefaultFont returns the default font's metrics without glyphs.
func degenerateDefaultFont() *Font {
	f := newFont(defaultFontHeight)
	f.GlyphPadding = 0
	f.DefaultSpacing = 1
	f.DefaultNewlineOffset = defaultFontHeight
	f.Ascent = defaultFontHeight
	f.isDefault = true
	return f
}
