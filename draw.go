package ggtext

import (
	"image/color"

	"github.com/gogpu/ggtext/backend"
)

// measureKey identifies a cached measurement. generation changes whenever
// the font's glyphs change, so stale entries are never hit.
type measureKey struct {
	font       uint64
	generation uint64
	size       float64
	text       string
}

// MeasureText returns the width and height of text drawn at size with f
// (nil for the default font). Results are cached per font.
func (e *Engine) MeasureText(text string, size float64, f *Font) backend.Point {
	f = e.resolve(f)
	if e.cfg.measureCacheSize == 0 {
		return f.Measure(text, size)
	}
	key := measureKey{font: f.id, generation: f.generation, size: size, text: text}
	return e.measures.GetOrCreate(key, func() backend.Point {
		return f.Measure(text, size)
	})
}

// MeasureCacheStats returns the hit and miss counters of the measurement
// cache.
func (e *Engine) MeasureCacheStats() (hits, misses uint64) {
	s := e.measures.Stats()
	return s.Hits, s.Misses
}

// DrawText draws text with its top-left corner at pos.
func (e *Engine) DrawText(text string, size float64, pos backend.Point, tint color.NRGBA, f *Font) {
	e.draw(e.resolve(f), text, size, pos, noWrap, tint)
}

// DrawTextWrapped draws text, starting a new line whenever the next glyph
// would extend past width measured from pos.X. A glyph wider than width is
// drawn alone on its line. It returns the height consumed.
func (e *Engine) DrawTextWrapped(text string, size float64, pos backend.Point, width float64, tint color.NRGBA, f *Font) float64 {
	return e.draw(e.resolve(f), text, size, pos, width, tint)
}

// DrawTextJustified draws text aligned on pos.X according to align.
func (e *Engine) DrawTextJustified(text string, size float64, pos backend.Point, tint color.NRGBA, align Alignment, f *Font) {
	f = e.resolve(f)
	origin := pos
	switch align {
	case AlignCenter:
		origin.X -= e.MeasureText(text, size, f).X / 2
	case AlignRight:
		origin.X -= e.MeasureText(text, size, f).X
	}
	e.draw(f, text, size, origin, noWrap, tint)
}

// draw walks text and submits one textured rectangle per glyph. Backend
// errors are logged and do not stop the walk. It returns the height
// consumed.
func (e *Engine) draw(f *Font, text string, size float64, pos backend.Point, width float64, tint color.NRGBA) float64 {
	scale := f.scale(size)
	failures := 0

	y, _ := f.walk(text, size, width, tint, func(pg PlacedGlyph) bool {
		src, dst := e.glyphRects(pg, pos, scale)
		if dst.Empty() {
			return true
		}
		if err := e.backend.DrawTexturedRect(f.Texture, src, dst, pg.Tint); err != nil {
			if failures == 0 {
				Logger().Warn("ggtext: draw glyph failed",
					"backend", e.backend.Name(), "codepoint", pg.Glyph.Value, "err", err)
			}
			failures++
		}
		return true
	})

	if failures > 1 {
		Logger().Warn("ggtext: draw failures", "count", failures)
	}
	return y + f.DefaultNewlineOffset*scale
}

// glyphRects returns the atlas and screen rectangles of a placed glyph.
func (e *Engine) glyphRects(pg PlacedGlyph, origin backend.Point, scale float64) (src, dst backend.Rect) {
	g := pg.Glyph
	src = g.SourceRect
	dst = backend.Rect{
		X:      origin.X + pg.Pen.X + g.Offset.X*scale,
		Y:      origin.Y + pg.Pen.Y + g.Offset.Y*scale,
		Width:  g.DestSize.X * scale,
		Height: g.DestSize.Y * scale,
	}
	if e.yFlip {
		src.Height = -src.Height
		dst.Y = origin.Y + pg.Pen.Y
	}
	return src, dst
}
