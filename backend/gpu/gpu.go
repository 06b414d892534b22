package gpu

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggtext/backend"
)

// ErrNilCreator is returned by Upload when the backend has no texture
// creator.
var ErrNilCreator = errors.New("gpu: nil texture creator")

// textureDestroyer matches gogpu.Texture.Destroy.
type textureDestroyer interface {
	Destroy()
}

// Backend is a texture backend over a host's gpucontext.TextureCreator.
type Backend struct {
	creator gpucontext.TextureCreator
	batches []Batch
	live    int
}

// NewBackend creates a backend that creates textures through creator.
func NewBackend(creator gpucontext.TextureCreator) *Backend {
	return &Backend{creator: creator}
}

// NewBackendFromDrawer creates a backend using the drawer's texture creator.
func NewBackendFromDrawer(drawer gpucontext.TextureDrawer) *Backend {
	return NewBackend(drawer.TextureCreator())
}

// texture pairs a GPU texture with its CPU shadow.
type texture struct {
	owner    *Backend
	gpu      gpucontext.Texture
	shadow   *backend.Bitmap
	released bool
}

func (t *texture) Width() int  { return t.shadow.Width }
func (t *texture) Height() int { return t.shadow.Height }

// GPUTexture returns the host texture behind tex, or nil when tex was not
// created by a gpu backend.
func GPUTexture(tex backend.Texture) gpucontext.Texture {
	if t, ok := tex.(*texture); ok && !t.released {
		return t.gpu
	}
	return nil
}

// Name implements backend.TextureBackend.
func (b *Backend) Name() string { return "gpu" }

// LiveTextures returns the number of uploaded, unreleased textures.
func (b *Backend) LiveTextures() int { return b.live }

// Upload implements backend.TextureBackend.
func (b *Backend) Upload(bm *backend.Bitmap) (backend.Texture, error) {
	if bm == nil {
		return nil, backend.ErrNilBitmap
	}
	if b.creator == nil {
		return nil, ErrNilCreator
	}
	gt, err := b.creator.NewTextureFromRGBA(bm.Width, bm.Height, bm.RGBA())
	if err != nil {
		return nil, fmt.Errorf("gpu: create %dx%d texture: %w", bm.Width, bm.Height, err)
	}
	b.live++
	slogger().Debug("gpu: texture uploaded", "width", bm.Width, "height", bm.Height)
	return &texture{owner: b, gpu: gt, shadow: bm.Clone()}, nil
}

// Readback implements backend.TextureBackend. It returns a copy of the CPU
// shadow and never touches the GPU.
func (b *Backend) Readback(tex backend.Texture) (*backend.Bitmap, error) {
	t, err := b.lookup(tex)
	if err != nil {
		return nil, err
	}
	return t.shadow.Clone(), nil
}

// Update implements backend.TextureBackend.
//
// The upload path depends on what the host texture supports: a full-rect
// TextureRegionUpdater upload, then TextureUpdater, and otherwise a new
// texture replaces the old one.
func (b *Backend) Update(tex backend.Texture, bm *backend.Bitmap) error {
	t, err := b.lookup(tex)
	if err != nil {
		return err
	}
	if bm == nil {
		return backend.ErrNilBitmap
	}
	if bm.Width != t.shadow.Width || bm.Height != t.shadow.Height {
		return backend.ErrSizeMismatch
	}

	data := bm.RGBA()
	switch g := t.gpu.(type) {
	case gpucontext.TextureRegionUpdater:
		err = g.UpdateRegion(0, 0, bm.Width, bm.Height, data)
	case gpucontext.TextureUpdater:
		err = g.UpdateData(data)
	default:
		err = b.recreate(t, data)
	}
	if err != nil {
		return fmt.Errorf("gpu: update texture: %w", err)
	}

	copy(t.shadow.Pix, bm.Pix)
	return nil
}

func (b *Backend) recreate(t *texture, data []byte) error {
	if b.creator == nil {
		return ErrNilCreator
	}
	gt, err := b.creator.NewTextureFromRGBA(t.shadow.Width, t.shadow.Height, data)
	if err != nil {
		return err
	}
	b.retarget(t.gpu, gt)
	if d, ok := t.gpu.(textureDestroyer); ok {
		d.Destroy()
	}
	t.gpu = gt
	slogger().Debug("gpu: texture recreated for update", "width", t.shadow.Width, "height", t.shadow.Height)
	return nil
}

// retarget points pending batches at a replacement texture.
func (b *Backend) retarget(old, replacement gpucontext.Texture) {
	for i := range b.batches {
		if b.batches[i].Texture == old {
			b.batches[i].Texture = replacement
		}
	}
}

// Release implements backend.TextureBackend.
func (b *Backend) Release(tex backend.Texture) {
	t, err := b.lookup(tex)
	if err != nil {
		return
	}
	b.batches = dropTexture(b.batches, t.gpu)
	if d, ok := t.gpu.(textureDestroyer); ok {
		d.Destroy()
	}
	t.released = true
	t.gpu = nil
	b.live--
}

// DrawTexturedRect implements backend.TextureBackend. The quad is queued
// and rendered by the host after Flush.
func (b *Backend) DrawTexturedRect(tex backend.Texture, src, dst backend.Rect, tint color.NRGBA) error {
	t, err := b.lookup(tex)
	if err != nil {
		return err
	}
	if src.Empty() || dst.Empty() || tint.A == 0 {
		return nil
	}

	w, h := float64(t.shadow.Width), float64(t.shadow.Height)
	top, bottom := src.Y, src.Y+src.Height
	if src.Height < 0 {
		// Flipped: the region still spans [Y, Y+|Height|], sampled bottom-up.
		top, bottom = src.Y-src.Height, src.Y
	}

	q := GlyphQuad{
		X0: float32(dst.X), Y0: float32(dst.Y),
		X1: float32(dst.Right()), Y1: float32(dst.Bottom()),
		U0: float32(src.X / w), V0: float32(top / h),
		U1: float32(src.Right() / w), V1: float32(bottom / h),
		Color: [4]uint8{tint.R, tint.G, tint.B, tint.A},
	}
	b.appendQuad(t.gpu, q)
	return nil
}

func (b *Backend) appendQuad(tex gpucontext.Texture, q GlyphQuad) {
	if n := len(b.batches); n > 0 {
		last := &b.batches[n-1]
		if last.Texture == tex && len(last.Quads) < MaxQuadsPerBatch {
			last.Quads = append(last.Quads, q)
			return
		}
	}
	b.batches = append(b.batches, Batch{Texture: tex, Quads: []GlyphQuad{q}})
}

// Pending returns the number of queued quads.
func (b *Backend) Pending() int {
	n := 0
	for i := range b.batches {
		n += len(b.batches[i].Quads)
	}
	return n
}

// Flush returns the queued batches in draw order and resets the queue.
func (b *Backend) Flush() []Batch {
	out := b.batches
	b.batches = nil
	return out
}

func (b *Backend) lookup(tex backend.Texture) (*texture, error) {
	t, ok := tex.(*texture)
	if !ok || t == nil || t.owner != b || t.released {
		return nil, backend.ErrInvalidTexture
	}
	return t, nil
}

func dropTexture(batches []Batch, tex gpucontext.Texture) []Batch {
	out := batches[:0]
	for _, bt := range batches {
		if bt.Texture != tex {
			out = append(out, bt)
		}
	}
	return out
}
