package raster

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Outline is a Rasterizer that scan-converts glyph outlines itself with
// golang.org/x/image/vector. Metrics and kerning are read exactly as by
// XImage; only the coverage bitmaps are produced differently.
type Outline struct{}

// Parse implements Rasterizer.
func (Outline) Parse(data []byte) (Face, error) {
	f, err := XImage{}.Parse(data)
	if err != nil {
		return nil, err
	}
	return &outlineFace{ximageFace: f.(*ximageFace)}, nil
}

type outlineFace struct {
	*ximageFace
}

// CodepointBitmap implements Face.
func (f *outlineFace) CodepointBitmap(scale float64, r rune) (*image.Alpha, image.Point) {
	if scale <= 0 {
		return nil, image.Point{}
	}
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return nil, image.Point{}
	}

	ppem := fixed.Int26_6(math.Round(scale * float64(f.upem)))
	segs, err := f.font.LoadGlyph(&buf, idx, ppem, nil)
	if err != nil {
		return nil, image.Point{}
	}

	b := segs.Bounds()
	rect := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	if rect.Empty() {
		return mask, rect.Min
	}

	// Segment coordinates are y-down pixels around the glyph origin.
	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)
	px := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 - ox, float32(p.Y)/64 - oy
	}

	z := vector.NewRasterizer(rect.Dx(), rect.Dy())
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			z.MoveTo(px(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			z.LineTo(px(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := px(s.Args[0])
			cx, cy := px(s.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := px(s.Args[0])
			cx, cy := px(s.Args[1])
			dx, dy := px(s.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return mask, rect.Min
}
