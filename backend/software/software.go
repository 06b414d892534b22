// Package software implements backend.TextureBackend on the CPU.
//
// Textures are in-memory bitmaps. DrawTexturedRect scales the alpha channel
// of the source region to the destination size and composites the tint
// color through it onto a target *image.RGBA.
package software

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggtext/backend"
)

// ErrNoTarget is returned by DrawTexturedRect when no target image is set.
var ErrNoTarget = errors.New("software: no target image")

// Option configures a Backend.
type Option func(*Backend)

// WithInterpolator sets the scaler used when a glyph is drawn at a size
// different from its atlas size. The default is xdraw.ApproxBiLinear.
func WithInterpolator(s xdraw.Scaler) Option {
	return func(b *Backend) {
		if s != nil {
			b.scaler = s
		}
	}
}

// Backend is a CPU texture backend.
type Backend struct {
	target *image.RGBA
	scaler xdraw.Scaler
	live   int
}

// NewBackend creates a backend drawing onto target. target may be nil and
// set later with SetTarget.
func NewBackend(target *image.RGBA, opts ...Option) *Backend {
	b := &Backend{
		target: target,
		scaler: xdraw.ApproxBiLinear,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// texture is the software texture handle.
type texture struct {
	owner    *Backend
	bm       *backend.Bitmap
	released bool
}

func (t *texture) Width() int  { return t.bm.Width }
func (t *texture) Height() int { return t.bm.Height }

// Name implements backend.TextureBackend.
func (b *Backend) Name() string { return "software" }

// SetTarget replaces the image draws are composited onto.
func (b *Backend) SetTarget(target *image.RGBA) { b.target = target }

// Target returns the current target image.
func (b *Backend) Target() *image.RGBA { return b.target }

// LiveTextures returns the number of uploaded, unreleased textures.
func (b *Backend) LiveTextures() int { return b.live }

// Upload implements backend.TextureBackend.
func (b *Backend) Upload(bm *backend.Bitmap) (backend.Texture, error) {
	if bm == nil {
		return nil, backend.ErrNilBitmap
	}
	b.live++
	return &texture{owner: b, bm: bm.Clone()}, nil
}

// Readback implements backend.TextureBackend.
func (b *Backend) Readback(tex backend.Texture) (*backend.Bitmap, error) {
	t, err := b.lookup(tex)
	if err != nil {
		return nil, err
	}
	return t.bm.Clone(), nil
}

// Update implements backend.TextureBackend.
func (b *Backend) Update(tex backend.Texture, bm *backend.Bitmap) error {
	t, err := b.lookup(tex)
	if err != nil {
		return err
	}
	if bm == nil {
		return backend.ErrNilBitmap
	}
	if bm.Width != t.bm.Width || bm.Height != t.bm.Height {
		return backend.ErrSizeMismatch
	}
	copy(t.bm.Pix, bm.Pix)
	return nil
}

// Release implements backend.TextureBackend.
func (b *Backend) Release(tex backend.Texture) {
	t, err := b.lookup(tex)
	if err != nil {
		return
	}
	t.released = true
	t.bm = &backend.Bitmap{Width: t.bm.Width, Height: t.bm.Height}
	b.live--
}

// DrawTexturedRect implements backend.TextureBackend.
//
// Only the alpha channel of the texture is sampled; atlas texels carry full
// intensity in the color channel wherever they have coverage, so the tint
// alone determines the color.
func (b *Backend) DrawTexturedRect(tex backend.Texture, src, dst backend.Rect, tint color.NRGBA) error {
	t, err := b.lookup(tex)
	if err != nil {
		return err
	}
	if b.target == nil {
		return ErrNoTarget
	}
	if src.Empty() || dst.Empty() || tint.A == 0 {
		return nil
	}

	mask := t.bm.Alpha(src.Image())
	if src.Height < 0 {
		flipRows(mask)
	}

	dr := image.Rect(
		int(math.Round(dst.X)),
		int(math.Round(dst.Y)),
		int(math.Round(dst.Right())),
		int(math.Round(dst.Bottom())),
	)
	if dr.Empty() || !dr.Overlaps(b.target.Bounds()) {
		return nil
	}

	if dr.Dx() != mask.Rect.Dx() || dr.Dy() != mask.Rect.Dy() {
		scaled := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
		b.scaler.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)
		mask = scaled
	}

	draw.DrawMask(b.target, dr, image.NewUniform(tint), image.Point{}, mask, image.Point{}, draw.Over)
	return nil
}

func (b *Backend) lookup(tex backend.Texture) (*texture, error) {
	t, ok := tex.(*texture)
	if !ok || t == nil || t.owner != b || t.released {
		return nil, backend.ErrInvalidTexture
	}
	return t, nil
}

// flipRows mirrors m vertically in place.
func flipRows(m *image.Alpha) {
	h := m.Rect.Dy()
	w := m.Rect.Dx()
	for y := 0; y < h/2; y++ {
		top := m.Pix[y*m.Stride : y*m.Stride+w]
		bottom := m.Pix[(h-1-y)*m.Stride : (h-1-y)*m.Stride+w]
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}
