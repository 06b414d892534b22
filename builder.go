package ggtext

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/ggtext/backend"
	"github.com/gogpu/ggtext/internal/pack"
	"github.com/gogpu/ggtext/raster"
)

// markerSize is the side of the solid square in the atlas's bottom-right
// corner.
const markerSize = 3

// invalidOutline is the line width of the invalid glyph's box.
const invalidOutline = 2

// pendingGlyph is a rasterized glyph waiting to be packed.
type pendingGlyph struct {
	info *GlyphInfo
	mask *image.Alpha
}

// BuildFont rasterizes the requested codepoints of a TrueType or OpenType
// font at size pixels and packs them into an atlas.
//
// A font that cannot be parsed, sized or uploaded is reported as an error,
// and the returned *Font is degenerate: it is never nil, measures line
// heights and draws nothing.
func (e *Engine) BuildFont(data []byte, size float64, opts ...BuildOption) (*Font, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := newFont(size)
	f.GlyphPadding = float64(cfg.padding)
	if cfg.hasSpacing {
		f.DefaultSpacing = cfg.spacing
	}

	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return f, ErrInvalidSize
	}

	face, err := e.rasterizer.Parse(data)
	if err != nil {
		Logger().Warn("ggtext: font parse failed", "err", err)
		return f, fmt.Errorf("%w: %w", ErrFontParse, err)
	}

	glyphs := cfg.glyphs
	if glyphs == nil {
		glyphs = StandardGlyphSet()
	}

	b := &atlasBuilder{
		font:        f,
		face:        face,
		padding:     cfg.padding,
		rasterScale: e.cfg.deviceScale,
		maxSize:     e.cfg.maxAtlasSize,
	}
	bm, err := b.build(glyphs)
	if err != nil {
		Logger().Warn("ggtext: atlas build failed", "size", size, "err", err)
		return degenerate(f), err
	}

	tex, err := e.backend.Upload(bm)
	if err != nil {
		Logger().Warn("ggtext: atlas upload failed", "backend", e.backend.Name(), "err", err)
		return degenerate(f), fmt.Errorf("ggtext: upload atlas: %w", err)
	}
	f.Texture = tex

	Logger().Debug("ggtext: font built",
		"size", size,
		"glyphs", f.GlyphCount(),
		"ranges", len(f.Ranges),
		"atlas", fmt.Sprintf("%dx%d", bm.Width, bm.Height))
	return f, nil
}

// degenerate strips f of its glyphs.
func degenerate(f *Font) *Font {
	f.Ranges = nil
	f.Texture = nil
	f.InvalidGlyph = GlyphInfo{Value: -1}
	f.LowestSourceRectY = 0
	f.LastSourceRectX = 0
	f.lastRowY = 0
	return f
}

// atlasBuilder holds the state of one BuildFont call.
type atlasBuilder struct {
	font        *Font
	face        raster.Face
	padding     int
	rasterScale float64
	maxSize     int

	px       float64 // pixel size in device pixels
	scale    float64 // font units to device pixels
	ascentPx float64 // baseline distance from the line top, device pixels

	pending []pendingGlyph
}

func (b *atlasBuilder) build(set *GlyphSet) (*backend.Bitmap, error) {
	f := b.font
	f.rasterScale = b.rasterScale

	b.px = f.BaseSize * b.rasterScale
	b.scale = b.face.ScaleForPixelHeight(b.px)
	ascent, _, _ := b.face.VMetrics()
	f.Ascent = float64(ascent) * b.scale / b.rasterScale
	b.ascentPx = math.Floor(float64(ascent) * b.scale)

	indexToCodepoint := b.collect(set)
	b.kern(indexToCodepoint)

	return b.pack()
}

// collect rasterizes every codepoint of set the face has a glyph for and
// groups them into ranges. It returns the glyph index to codepoint map used
// to resolve kerning pairs.
func (b *atlasBuilder) collect(set *GlyphSet) map[int]rune {
	f := b.font
	indexToCodepoint := make(map[int]rune)
	var cur *GlyphRange
	last := rune(-2)

	for _, r := range set.Runes() {
		idx := b.face.GlyphIndex(r)
		if idx <= 0 {
			continue
		}
		indexToCodepoint[idx] = r

		if cur == nil || r != last+1 {
			f.Ranges = append(f.Ranges, GlyphRange{Start: r})
			cur = &f.Ranges[len(f.Ranges)-1]
		}
		last = r

		advancePx := float64(b.face.CodepointHMetrics(r)) * b.scale
		mask, off := b.face.CodepointBitmap(b.scale, r)

		if r == ' ' {
			// Ink-free cell that still takes atlas space.
			mask = image.NewAlpha(image.Rect(0, 0, int(advancePx), int(b.px)))
		}
		if mask == nil {
			mask = image.NewAlpha(image.Rectangle{})
		}

		cur.Glyphs = append(cur.Glyphs, GlyphInfo{
			Value:   r,
			Advance: advancePx / b.rasterScale,
			Offset: backend.Point{
				X: float64(off.X) / b.rasterScale,
				Y: (float64(off.Y) + b.ascentPx) / b.rasterScale,
			},
			DestSize: backend.Point{
				X: float64(mask.Rect.Dx()) / b.rasterScale,
				Y: float64(mask.Rect.Dy()) / b.rasterScale,
			},
		})
		b.pending = append(b.pending, pendingGlyph{mask: mask})
	}

	// Range slices are final now; bind the pending masks to their glyphs.
	i := 0
	for ri := range f.Ranges {
		for gi := range f.Ranges[ri].Glyphs {
			b.pending[i].info = &f.Ranges[ri].Glyphs[gi]
			i++
		}
	}
	return indexToCodepoint
}

// kern stores the face's kerning pairs on the left glyph of each pair.
// Pairs naming a glyph that is not in the font are dropped.
func (b *atlasBuilder) kern(indexToCodepoint map[int]rune) {
	f := b.font
	for _, e := range b.face.KerningTable() {
		left, ok := indexToCodepoint[e.Left]
		if !ok {
			continue
		}
		right, ok := indexToCodepoint[e.Right]
		if !ok {
			continue
		}
		g := f.lookup(left)
		if g == nil || !f.HasGlyph(right) {
			continue
		}
		if g.Kerning == nil {
			g.Kerning = make(map[rune]float64)
		}
		g.Kerning[right] = float64(e.Advance) * b.scale / b.rasterScale
	}
}

// pack sizes the atlas, places every glyph and renders the bitmap.
// Rows are max(pixel size, tallest bitmap) + 2·padding high, and the area
// estimate counts the invalid-glyph corner, so a bitmap that rounds up past
// the pixel size never reaches into the next row.
func (b *atlasBuilder) pack() (*backend.Bitmap, error) {
	pad := b.padding
	cell := int(math.Ceil(b.px))

	tallest, totalWidth := 0, 0
	for _, p := range b.pending {
		tallest = max(tallest, p.mask.Rect.Dy())
		totalWidth += p.mask.Rect.Dx() + 2*pad
	}
	rowHeight := max(cell, tallest) + 2*pad

	// The invalid glyph corner takes one cell plus the marker.
	totalWidth += cell + markerSize + 2*pad

	w, h := pack.AtlasSize(totalWidth, rowHeight)
	Logger().Debug("ggtext: atlas size estimate", "width", w, "height", h, "rowHeight", rowHeight)

	for {
		if w > b.maxSize || h > b.maxSize {
			return nil, &AtlasSizeError{Width: w, Height: h, Max: b.maxSize}
		}
		placed, corner, ok := b.place(w, h, rowHeight, cell)
		if ok {
			return b.render(w, h, placed, corner), nil
		}
		w, h = pack.Grow(w, h)
		Logger().Debug("ggtext: atlas grown", "width", w, "height", h)
	}
}

// invalidGlyphRect returns the cell of the invalid glyph in a w×h atlas:
// a cell×cell square left of the marker, inset by padding from the bottom.
func invalidGlyphRect(w, h, cell, pad int) image.Rectangle {
	x := w - markerSize - cell - pad
	y := h - cell - pad
	return image.Rect(x, y, x+cell, y+cell)
}

// reservedArea returns the part of the atlas kept free of glyphs: the
// invalid glyph cell with its padding, through to the bottom-right corner.
func reservedArea(corner image.Rectangle, w, h, pad int) image.Rectangle {
	return image.Rect(corner.Min.X-pad, corner.Min.Y-pad, w, h)
}

func (b *atlasBuilder) place(w, h, rowHeight, cell int) ([]image.Point, image.Rectangle, bool) {
	pad := b.padding
	corner := invalidGlyphRect(w, h, cell, pad)
	if corner.Min.X < pad || corner.Min.Y < pad {
		return nil, corner, false
	}

	p := pack.NewRowPacker(w, h, pad, rowHeight)
	p.Reserve(reservedArea(corner, w, h, pad))

	placed := make([]image.Point, len(b.pending))
	for i, g := range b.pending {
		pt, ok := p.Place(g.mask.Rect.Dx(), g.mask.Rect.Dy())
		if !ok {
			return nil, corner, false
		}
		placed[i] = pt
	}

	f := b.font
	f.LowestSourceRectY = float64(p.Lowest())
	f.LastSourceRectX = float64(p.LastRight())
	f.lastRowY = float64(p.LastY())
	if len(placed) == 0 {
		f.lastRowY = float64(pad)
	}
	return placed, corner, true
}

func (b *atlasBuilder) render(w, h int, placed []image.Point, corner image.Rectangle) *backend.Bitmap {
	f := b.font
	bm := backend.NewBitmap(w, h)

	for i, g := range b.pending {
		pt := placed[i]
		bm.BlitCoverage(g.mask, pt)
		g.info.SourceRect = backend.Rect{
			X:      float64(pt.X),
			Y:      float64(pt.Y),
			Width:  float64(g.mask.Rect.Dx()),
			Height: float64(g.mask.Rect.Dy()),
		}
	}

	bm.Fill(image.Rect(w-markerSize, h-markerSize, w, h), 0xff, 0xff)
	bm.StrokeRect(corner, invalidOutline, 0xff, 0xff)
	if q, _ := b.face.CodepointBitmap(b.scale, '?'); q != nil {
		at := image.Pt(
			corner.Min.X+(corner.Dx()-q.Rect.Dx())/2,
			corner.Min.Y+(corner.Dy()-q.Rect.Dy())/2,
		)
		bm.OverlayCoverage(q, at, corner)
	}

	f.InvalidGlyph = GlyphInfo{
		Value:      -1,
		Advance:    f.BaseSize + f.GlyphPadding,
		SourceRect: backend.RectFromImage(corner),
		DestSize: backend.Point{
			X: float64(corner.Dx()) / b.rasterScale,
			Y: float64(corner.Dy()) / b.rasterScale,
		},
	}

	b.pending = nil
	return bm
}
