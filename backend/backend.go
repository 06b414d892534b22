package backend

import (
	"errors"
	"image/color"
)

// Common backend errors.
var (
	// ErrInvalidTexture is returned when a texture was not created by the
	// backend it is passed to, or has already been released.
	ErrInvalidTexture = errors.New("backend: invalid texture")

	// ErrSizeMismatch is returned when an update bitmap does not match the
	// texture dimensions.
	ErrSizeMismatch = errors.New("backend: bitmap size does not match texture")

	// ErrNilBitmap is returned when a nil bitmap is uploaded.
	ErrNilBitmap = errors.New("backend: nil bitmap")
)

// Texture is a backend-owned texture handle.
// It has the same shape as gpucontext.Texture.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int
}

// TextureBackend uploads atlas bitmaps and draws glyph rectangles from them.
//
// Implementations are not required to be safe for concurrent use; the
// engine serializes all calls for one font.
type TextureBackend interface {
	// Name returns the backend identifier (e.g., "software", "gpu").
	Name() string

	// Upload creates a texture holding a copy of bm.
	Upload(bm *Bitmap) (Texture, error)

	// Readback returns a copy of the texture contents.
	// This may be a blocking round-trip on GPU backends.
	Readback(tex Texture) (*Bitmap, error)

	// Update replaces the texture contents with bm.
	// bm must have the texture's dimensions.
	Update(tex Texture, bm *Bitmap) error

	// DrawTexturedRect draws the src region of tex into dst, multiplied by
	// tint. A negative src.Height samples the region upside down.
	DrawTexturedRect(tex Texture, src, dst Rect, tint color.NRGBA) error

	// Release frees the texture. Releasing twice is a no-op.
	Release(tex Texture)
}
