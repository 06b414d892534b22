package raster

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// XImage is the Rasterizer backed by golang.org/x/image/font/opentype.
type XImage struct{}

// Parse implements Rasterizer.
func (XImage) Parse(data []byte) (Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to parse font: %w", err)
	}
	upem := f.UnitsPerEm()
	if upem == 0 {
		return nil, errors.New("raster: font has zero units per em")
	}

	x := &ximageFace{
		font:  f,
		data:  data,
		upem:  fixed.Int26_6(upem) << 6,
		faces: make(map[float64]font.Face),
	}

	m, err := f.Metrics(nil, x.upem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to read metrics: %w", err)
	}
	x.ascent = m.Ascent.Round()
	x.descent = -m.Descent.Round()
	x.lineGap = (m.Height - m.Ascent - m.Descent).Round()
	return x, nil
}

// ximageFace implements Face. Metrics are read with ppem equal to units
// per em, which makes one pixel one font unit.
type ximageFace struct {
	font *sfnt.Font
	data []byte
	upem fixed.Int26_6

	ascent, descent, lineGap int

	mu    sync.Mutex
	faces map[float64]font.Face

	kernOnce sync.Once
	kerns    []KernEntry
}

// GlyphIndex implements Face.
func (f *ximageFace) GlyphIndex(r rune) int {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return int(idx)
}

// ScaleForPixelHeight implements Face.
func (f *ximageFace) ScaleForPixelHeight(px float64) float64 {
	h := f.ascent - f.descent
	if h <= 0 {
		return 0
	}
	return px / float64(h)
}

// CodepointHMetrics implements Face.
func (f *ximageFace) CodepointHMetrics(r rune) int {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return 0
	}
	adv, err := f.font.GlyphAdvance(&buf, idx, f.upem, font.HintingNone)
	if err != nil {
		return 0
	}
	return adv.Round()
}

// VMetrics implements Face.
func (f *ximageFace) VMetrics() (ascent, descent, lineGap int) {
	return f.ascent, f.descent, f.lineGap
}

// KerningTable implements Face.
func (f *ximageFace) KerningTable() []KernEntry {
	f.kernOnce.Do(func() {
		f.kerns = readKerningTable(f.data)
	})
	return f.kerns
}

// CodepointBitmap implements Face.
func (f *ximageFace) CodepointBitmap(scale float64, r rune) (*image.Alpha, image.Point) {
	if f.GlyphIndex(r) == 0 || scale <= 0 {
		return nil, image.Point{}
	}
	ppem := scale * float64(f.upem>>6)

	face, err := f.face(ppem)
	if err != nil {
		return nil, image.Point{}
	}

	bounds, _, ok := face.GlyphBounds(r)
	if !ok {
		return nil, image.Point{}
	}

	rect := image.Rect(
		bounds.Min.X.Floor(),
		bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(),
		bounds.Max.Y.Ceil(),
	)
	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	if rect.Empty() {
		return mask, rect.Min
	}

	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(-rect.Min.X, -rect.Min.Y),
	}
	drawer.DrawString(string(r))

	return mask, rect.Min
}

// face returns the opentype face for ppem, creating it on first use.
func (f *ximageFace) face(ppem float64) (font.Face, error) {
	key := math.Round(ppem*64) / 64

	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    key,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	f.faces[key] = face
	return face, nil
}
