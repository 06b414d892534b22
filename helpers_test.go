package ggtext

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggtext/backend"
	"github.com/gogpu/ggtext/backend/software"
	"github.com/gogpu/ggtext/raster"
)

// fakeName is the registry name of the test rasterizer.
const fakeName = "fake"

func init() {
	raster.Register(fakeName, fakeRasterizer{})
}

// fakeRasterizer parses any data starting with "FAKE". Its faces have an
// em of 1000 units, ascent 800, descent -200, and cover the printable ASCII
// range except 'D' and '~'. Glyph indices equal codepoints.
type fakeRasterizer struct{}

func (fakeRasterizer) Parse(data []byte) (raster.Face, error) {
	if len(data) < 4 || string(data[:4]) != "FAKE" {
		return nil, errors.New("fake: bad magic")
	}
	return fakeFace{}, nil
}

type fakeFace struct{}

func (fakeFace) GlyphIndex(r rune) int {
	if r < 32 || r > 126 || r == 'D' || r == '~' {
		return 0
	}
	return int(r)
}

func (fakeFace) ScaleForPixelHeight(px float64) float64 { return px / 1000 }

func (f fakeFace) CodepointHMetrics(r rune) int {
	switch {
	case f.GlyphIndex(r) == 0:
		return 0
	case r == 'W' || r == 'M':
		return 900
	case r == 'i' || r == 'l':
		return 300
	}
	return 500
}

func (fakeFace) VMetrics() (int, int, int) { return 800, -200, 0 }

// CodepointBitmap returns a solid block as wide as the advance and 700
// units tall, sitting on the baseline.
func (f fakeFace) CodepointBitmap(scale float64, r rune) (*image.Alpha, image.Point) {
	if f.GlyphIndex(r) == 0 {
		return nil, image.Point{}
	}
	w := int(math.Round(float64(f.CodepointHMetrics(r)) * scale))
	h := int(math.Round(700 * scale))
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	return m, image.Pt(0, -h)
}

func (fakeFace) KerningTable() []raster.KernEntry {
	return []raster.KernEntry{
		{Left: 'A', Right: 'V', Advance: -100},
		{Left: 'V', Right: 'A', Advance: -80},
		{Left: 'T', Right: 'o', Advance: -60},
		{Left: 'A', Right: 0x00e9, Advance: -50}, // é, never requested
		{Left: 'D', Right: 'A', Advance: -50},    // D is missing from the face
	}
}

var fakeFontData = []byte("FAKEFONT")

// drawCall is one DrawTexturedRect call seen by recordingBackend.
type drawCall struct {
	src, dst backend.Rect
	tint     color.NRGBA
}

// recordingBackend is a software backend that records what it is asked to
// do and can be told to fail.
type recordingBackend struct {
	*software.Backend

	draws    []drawCall
	uploads  int
	updates  int
	releases int

	drawErr   error
	updateErr error
	uploadErr error
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{Backend: software.NewBackend(nil)}
}

func (b *recordingBackend) Upload(bm *backend.Bitmap) (backend.Texture, error) {
	if b.uploadErr != nil {
		return nil, b.uploadErr
	}
	b.uploads++
	return b.Backend.Upload(bm)
}

func (b *recordingBackend) Update(tex backend.Texture, bm *backend.Bitmap) error {
	if b.updateErr != nil {
		return b.updateErr
	}
	b.updates++
	return b.Backend.Update(tex, bm)
}

func (b *recordingBackend) Release(tex backend.Texture) {
	b.releases++
	b.Backend.Release(tex)
}

func (b *recordingBackend) DrawTexturedRect(tex backend.Texture, src, dst backend.Rect, tint color.NRGBA) error {
	b.draws = append(b.draws, drawCall{src: src, dst: dst, tint: tint})
	return b.drawErr
}

// newFakeEngine returns an engine using the fake rasterizer and a
// recording backend.
func newFakeEngine(t *testing.T, opts ...Option) (*Engine, *recordingBackend) {
	t.Helper()
	rb := newRecordingBackend()
	opts = append([]Option{WithBackend(rb), WithRasterizer(fakeName)}, opts...)
	return NewEngine(opts...), rb
}

// buildFake builds the fake font at size 10.
func buildFake(t *testing.T, e *Engine, opts ...BuildOption) *Font {
	t.Helper()
	f, err := e.BuildFont(fakeFontData, 10, opts...)
	if err != nil {
		t.Fatalf("BuildFont(fake): %v", err)
	}
	return f
}

// buildGoRegular builds the Go Regular fixture font.
func buildGoRegular(t *testing.T, e *Engine, size float64, opts ...BuildOption) *Font {
	t.Helper()
	f, err := e.BuildFont(goregular.TTF, size, opts...)
	if err != nil {
		t.Fatalf("BuildFont(goregular): %v", err)
	}
	return f
}

// rangeShape summarizes a range list for cmp.Diff.
type rangeShape struct {
	Start rune
	Len   int
}

func shapeOf(f *Font) []rangeShape {
	out := make([]rangeShape, len(f.Ranges))
	for i, r := range f.Ranges {
		out[i] = rangeShape{Start: r.Start, Len: len(r.Glyphs)}
	}
	return out
}

// checkRanges verifies that ranges are sorted, non-overlapping and that
// every glyph's Value matches its implied codepoint.
func checkRanges(t *testing.T, f *Font) {
	t.Helper()
	for i, rg := range f.Ranges {
		if len(rg.Glyphs) == 0 {
			t.Errorf("range %d is empty", i)
		}
		if i > 0 && f.Ranges[i-1].End() > rg.Start {
			t.Errorf("range %d (start %d) overlaps previous ending at %d", i, rg.Start, f.Ranges[i-1].End())
		}
		for j, g := range rg.Glyphs {
			if g.Value != rg.Start+rune(j) {
				t.Errorf("range %d glyph %d has Value %d, want %d", i, j, g.Value, rg.Start+rune(j))
			}
		}
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)
