package ggtext

import (
	"fmt"
	"image"
	"slices"
	"sort"
	"unicode"

	"github.com/gogpu/ggtext/backend"
)

// AddGlyph adds the glyph for r to a built font without repacking it.
//
// mask is the glyph's coverage bitmap in atlas pixels. offset is applied at
// draw time like a built glyph's Offset, in logical units. A negative
// advance selects the font's default spacing. Control characters are never
// drawn, so codepoints below U+0020 return ErrInvalidCodepoint.
//
// The glyph is placed to the right of the most recently placed glyph, or at
// the start of a new row below every glyph when that does not fit. When
// neither position fits inside the atlas and outside the invalid-glyph
// corner, AddGlyph returns ErrAtlasFull. On any error the font is left
// unchanged.
//
// AddGlyph reads back and re-uploads the whole atlas; it is meant for the
// occasional codepoint discovered at run time, not for bulk loading.
func (e *Engine) AddGlyph(f *Font, r rune, mask *image.Alpha, offset backend.Point, advance float64) error {
	switch {
	case f == nil:
		return ErrNilFont
	case f.isDefault:
		return ErrDefaultFontImmutable
	case f.Degenerate():
		return ErrDegenerateFont
	case mask == nil:
		return ErrNilMask
	case r < 32 || r > unicode.MaxRune:
		return fmt.Errorf("%w: U+%04X", ErrInvalidCodepoint, r)
	case f.HasGlyph(r):
		return fmt.Errorf("%w: U+%04X", ErrGlyphExists, r)
	}

	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	at, ok := f.insertionPoint(w, h)
	if !ok {
		Logger().Warn("ggtext: atlas full", "codepoint", r, "width", w, "height", h)
		return fmt.Errorf("%w: U+%04X (%dx%d)", ErrAtlasFull, r, w, h)
	}

	bm, err := e.backend.Readback(f.Texture)
	if err != nil {
		return fmt.Errorf("ggtext: read back atlas: %w", err)
	}
	bm.BlitCoverage(mask, at)
	if err := e.backend.Update(f.Texture, bm); err != nil {
		return fmt.Errorf("ggtext: update atlas: %w", err)
	}

	if advance < 0 {
		advance = f.DefaultSpacing
	}
	rs := f.rasterScale
	if rs <= 0 {
		rs = 1
	}
	g := GlyphInfo{
		Value:   r,
		Offset:  offset,
		Advance: advance,
		SourceRect: backend.Rect{
			X:      float64(at.X),
			Y:      float64(at.Y),
			Width:  float64(w),
			Height: float64(h),
		},
		DestSize: backend.Point{X: float64(w) / rs, Y: float64(h) / rs},
	}

	f.LastSourceRectX = float64(at.X + w)
	f.lastRowY = float64(at.Y)
	f.LowestSourceRectY = max(f.LowestSourceRectY, float64(at.Y+h))
	f.insertGlyph(g)

	Logger().Debug("ggtext: glyph added", "codepoint", r, "x", at.X, "y", at.Y, "ranges", len(f.Ranges))
	return nil
}

// insertionPoint finds the top-left corner for a w×h glyph: next to the
// last placed glyph, else at the start of a row below the lowest glyph.
func (f *Font) insertionPoint(w, h int) (image.Point, bool) {
	pad := int(f.GlyphPadding)
	aw, ah := f.Texture.Width(), f.Texture.Height()
	corner := f.InvalidGlyph.SourceRect.Image()
	reserved := reservedArea(corner, aw, ah, pad)

	fits := func(pt image.Point) bool {
		r := image.Rect(pt.X, pt.Y, pt.X+w, pt.Y+h)
		if r.Min.X < 0 || r.Min.Y < 0 || r.Max.X+pad > aw || r.Max.Y+pad > ah {
			return false
		}
		// Treat empty bitmaps as one pixel so they cannot land in the corner.
		probe := r
		probe.Max.X = max(probe.Max.X, probe.Min.X+1)
		probe.Max.Y = max(probe.Max.Y, probe.Min.Y+1)
		return corner.Empty() || !probe.Overlaps(reserved)
	}

	next := image.Pt(int(f.LastSourceRectX)+pad, int(f.lastRowY))
	if fits(next) {
		return next, true
	}
	below := image.Pt(pad, int(f.LowestSourceRectY)+pad)
	if fits(below) {
		return below, true
	}
	return image.Point{}, false
}

// insertGlyph merges g into the sorted range list. g extends the range
// ending just before it, or starts a new range at its sorted position; a
// range that now ends where the following one starts is joined with it.
func (f *Font) insertGlyph(g GlyphInfo) {
	r := g.Value
	i := sort.Search(len(f.Ranges), func(i int) bool {
		return f.Ranges[i].Start > r
	})

	if i > 0 && f.Ranges[i-1].End() == r {
		i--
		f.Ranges[i].Glyphs = append(f.Ranges[i].Glyphs, g)
	} else {
		f.Ranges = slices.Insert(f.Ranges, i, GlyphRange{Start: r, Glyphs: []GlyphInfo{g}})
	}

	if i+1 < len(f.Ranges) && f.Ranges[i].End() == f.Ranges[i+1].Start {
		f.Ranges[i].Glyphs = append(f.Ranges[i].Glyphs, f.Ranges[i+1].Glyphs...)
		f.Ranges = slices.Delete(f.Ranges, i+1, i+2)
	}

	f.generation++
}
