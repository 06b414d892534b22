package backend

import (
	"image"
	"image/color"
)

// Bitmap is a two-channel (color + alpha) image, two bytes per pixel.
//
// Bitmap implements image.Image and draw.Image, reporting pixels as
// color.NRGBA with the color channel replicated into R, G and B.
type Bitmap struct {
	// Pix holds the pixels in row-major order: Pix[2*(y*Width+x)] is the
	// color channel and Pix[2*(y*Width+x)+1] the alpha channel.
	Pix []byte

	Width  int
	Height int
}

// NewBitmap allocates a transparent width × height bitmap.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		Pix:    make([]byte, width*height*2),
		Width:  width,
		Height: height,
	}
}

// Clone returns a deep copy of b.
func (b *Bitmap) Clone() *Bitmap {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &Bitmap{Pix: pix, Width: b.Width, Height: b.Height}
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	if !b.in(x, y) {
		return color.NRGBA{}
	}
	i := b.offset(x, y)
	v := b.Pix[i]
	return color.NRGBA{R: v, G: v, B: v, A: b.Pix[i+1]}
}

// Set implements draw.Image. The color channel receives the luminance of c.
func (b *Bitmap) Set(x, y int, c color.Color) {
	if !b.in(x, y) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	g := color.GrayModel.Convert(color.NRGBA{R: n.R, G: n.G, B: n.B, A: 0xff}).(color.Gray)
	i := b.offset(x, y)
	b.Pix[i] = g.Y
	b.Pix[i+1] = n.A
}

// SetPixel stores the raw channel values at (x, y).
func (b *Bitmap) SetPixel(x, y int, value, alpha uint8) {
	if !b.in(x, y) {
		return
	}
	i := b.offset(x, y)
	b.Pix[i] = value
	b.Pix[i+1] = alpha
}

// Pixel returns the raw channel values at (x, y).
func (b *Bitmap) Pixel(x, y int) (value, alpha uint8) {
	if !b.in(x, y) {
		return 0, 0
	}
	i := b.offset(x, y)
	return b.Pix[i], b.Pix[i+1]
}

// BlitCoverage writes a single-channel coverage mask with its top-left
// corner at at. Wherever coverage is non-zero the color channel is set to
// full intensity; the alpha channel copies coverage. Pixels outside b are
// clipped.
func (b *Bitmap) BlitCoverage(mask *image.Alpha, at image.Point) {
	if mask == nil {
		return
	}
	mb := mask.Bounds()
	for y := 0; y < mb.Dy(); y++ {
		for x := 0; x < mb.Dx(); x++ {
			cov := mask.AlphaAt(mb.Min.X+x, mb.Min.Y+y).A
			var v uint8
			if cov > 0 {
				v = 0xff
			}
			b.SetPixel(at.X+x, at.Y+y, v, cov)
		}
	}
}

// OverlayCoverage is like BlitCoverage but keeps the stronger of the
// existing and the new alpha, so a mask can be stamped over other content.
func (b *Bitmap) OverlayCoverage(mask *image.Alpha, at image.Point, clip image.Rectangle) {
	if mask == nil {
		return
	}
	clip = clip.Intersect(b.Bounds())
	mb := mask.Bounds()
	for y := 0; y < mb.Dy(); y++ {
		for x := 0; x < mb.Dx(); x++ {
			p := image.Pt(at.X+x, at.Y+y)
			if !p.In(clip) {
				continue
			}
			cov := mask.AlphaAt(mb.Min.X+x, mb.Min.Y+y).A
			if _, a := b.Pixel(p.X, p.Y); cov > a {
				b.SetPixel(p.X, p.Y, 0xff, cov)
			}
		}
	}
}

// Fill sets every pixel of r (clipped to b) to the given channel values.
func (b *Bitmap) Fill(r image.Rectangle, value, alpha uint8) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.SetPixel(x, y, value, alpha)
		}
	}
}

// StrokeRect draws the outline of r with the given line thickness, inside r.
func (b *Bitmap) StrokeRect(r image.Rectangle, thickness int, value, alpha uint8) {
	if thickness <= 0 || r.Empty() {
		return
	}
	b.Fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness), value, alpha)
	b.Fill(image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y), value, alpha)
	b.Fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y), value, alpha)
	b.Fill(image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y), value, alpha)
}

// Alpha returns the alpha channel of r as a standalone mask whose bounds
// start at (0, 0).
func (b *Bitmap) Alpha(r image.Rectangle) *image.Alpha {
	r = r.Intersect(b.Bounds())
	out := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			_, a := b.Pixel(r.Min.X+x, r.Min.Y+y)
			out.Pix[y*out.Stride+x] = a
		}
	}
	return out
}

// RGBA expands b into non-premultiplied RGBA bytes, 4 per pixel.
func (b *Bitmap) RGBA() []byte {
	out := make([]byte, b.Width*b.Height*4)
	for i := 0; i < b.Width*b.Height; i++ {
		v, a := b.Pix[2*i], b.Pix[2*i+1]
		out[4*i] = v
		out[4*i+1] = v
		out[4*i+2] = v
		out[4*i+3] = a
	}
	return out
}

func (b *Bitmap) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

func (b *Bitmap) offset(x, y int) int {
	return 2 * (y*b.Width + x)
}
