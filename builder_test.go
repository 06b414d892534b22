package ggtext

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/ggtext/backend"
	"github.com/gogpu/ggtext/internal/fonttest"
	"github.com/gogpu/ggtext/internal/pack"
	"github.com/gogpu/ggtext/raster"
)

func TestBuildFont_GoRegular(t *testing.T) {
	e, rb := newFakeEngine(t, WithRasterizer("ximage"))
	f := buildGoRegular(t, e, 20)

	if f.Degenerate() {
		t.Fatal("font is degenerate")
	}
	if rb.uploads != 1 {
		t.Errorf("uploads = %d, want 1", rb.uploads)
	}
	for r := rune(32); r <= 126; r++ {
		g := f.Glyph(r)
		if g == &f.InvalidGlyph {
			t.Errorf("Glyph(%q) fell back to the invalid glyph", r)
			continue
		}
		if g.Value != r {
			t.Errorf("Glyph(%q).Value = %d", r, g.Value)
		}
	}
	if got := f.GlyphCount(); got != 95 {
		t.Errorf("GlyphCount() = %d, want 95", got)
	}
	if diff := cmp.Diff([]rangeShape{{Start: 32, Len: 95}}, shapeOf(f)); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}
	checkRanges(t, f)

	if f.DefaultSpacing != 2 || f.DefaultNewlineOffset != 24 || f.GlyphPadding != DefaultGlyphPadding {
		t.Errorf("metrics: spacing %v, newline %v, padding %v", f.DefaultSpacing, f.DefaultNewlineOffset, f.GlyphPadding)
	}
	if f.Ascent <= 0 || f.Ascent > 20 {
		t.Errorf("Ascent = %v, want in (0, 20]", f.Ascent)
	}
}

func TestBuildFont_AtlasLayout(t *testing.T) {
	e, _ := newFakeEngine(t, WithRasterizer("ximage"))
	f := buildGoRegular(t, e, 20)

	w, h := f.Texture.Width(), f.Texture.Height()
	if pack.NextPowerOfTwo(w) != w || pack.NextPowerOfTwo(h) != h {
		t.Errorf("atlas %dx%d is not power-of-two sized", w, h)
	}
	checkAtlasRects(t, f)

	bm, err := e.Backend().Readback(f.Texture)
	if err != nil {
		t.Fatal(err)
	}

	// Solid marker in the bottom-right corner.
	for y := h - markerSize; y < h; y++ {
		for x := w - markerSize; x < w; x++ {
			if v, a := bm.Pixel(x, y); v != 0xff || a != 0xff {
				t.Fatalf("marker pixel (%d,%d) = (%d,%d)", x, y, v, a)
			}
		}
	}

	// Outlined invalid glyph cell.
	cell := f.InvalidGlyph.SourceRect.Image()
	if _, a := bm.Pixel(cell.Min.X, cell.Min.Y); a != 0xff {
		t.Error("invalid glyph outline missing at top-left")
	}
	if _, a := bm.Pixel(cell.Max.X-1, cell.Max.Y-1); a != 0xff {
		t.Error("invalid glyph outline missing at bottom-right")
	}

	// Space has an atlas cell but no ink.
	sp := f.Glyph(' ')
	if sp.SourceRect.Width <= 0 || sp.SourceRect.Height != 20 {
		t.Errorf("space SourceRect = %+v, want positive width and height 20", sp.SourceRect)
	}
	ink := bm.Alpha(sp.SourceRect.Image())
	for _, a := range ink.Pix {
		if a != 0 {
			t.Fatal("space glyph has ink")
		}
	}

	// Every other printable ASCII glyph with a bitmap has some ink.
	g := f.Glyph('W')
	found := false
	for _, a := range bm.Alpha(g.SourceRect.Image()).Pix {
		if a != 0 {
			found = true
			break
		}
	}
	if !found {
		t.Error("'W' has no ink in the atlas")
	}
}

// checkAtlasRects verifies that glyph rectangles lie inside the atlas, keep
// clear of the invalid glyph corner and do not overlap each other.
func checkAtlasRects(t *testing.T, f *Font) {
	t.Helper()
	w, h := float64(f.Texture.Width()), float64(f.Texture.Height())
	pad := int(f.GlyphPadding)
	reserved := backend.RectFromImage(reservedArea(f.InvalidGlyph.SourceRect.Image(), int(w), int(h), pad))

	var rects []backend.Rect
	for c := range f.Codepoints() {
		r := f.Glyph(c).SourceRect
		if r.X < 0 || r.Y < 0 || r.Right() > w || r.Bottom() > h {
			t.Errorf("U+%04X SourceRect %+v outside %vx%v atlas", c, r, w, h)
		}
		probe := r
		probe.Width = max(probe.Width, 1)
		probe.Height = max(probe.Height, 1)
		if probe.Overlaps(reserved) {
			t.Errorf("U+%04X SourceRect %+v overlaps the invalid glyph corner %+v", c, r, reserved)
		}
		if r.Empty() {
			continue
		}
		for _, o := range rects {
			if r.Overlaps(o) {
				t.Errorf("U+%04X SourceRect %+v overlaps %+v", c, r, o)
			}
		}
		rects = append(rects, r)
	}
}

func TestBuildFont_InvalidGlyph(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e)

	missing := []rune{'D', '~', '世', 0x10FFFF}
	for _, r := range missing {
		if g := f.Glyph(r); g != &f.InvalidGlyph {
			t.Errorf("Glyph(%U) = %p, want the invalid glyph", r, g)
		}
		if f.HasGlyph(r) {
			t.Errorf("HasGlyph(%U) = true", r)
		}
	}

	inv := f.InvalidGlyph
	if inv.Value != -1 {
		t.Errorf("InvalidGlyph.Value = %d, want -1", inv.Value)
	}
	if inv.Advance != f.BaseSize+f.GlyphPadding {
		t.Errorf("InvalidGlyph.Advance = %v, want %v", inv.Advance, f.BaseSize+f.GlyphPadding)
	}
	if want := (backend.Point{X: 10, Y: 10}); inv.DestSize != want {
		t.Errorf("InvalidGlyph.DestSize = %v, want %v", inv.DestSize, want)
	}
	w, h := f.Texture.Width(), f.Texture.Height()
	want := backend.Rect{X: float64(w - markerSize - 10 - 2), Y: float64(h - 10 - 2), Width: 10, Height: 10}
	if inv.SourceRect != want {
		t.Errorf("InvalidGlyph.SourceRect = %+v, want %+v", inv.SourceRect, want)
	}
}

func TestBuildFont_FakeMetrics(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e)

	want := []rangeShape{{Start: 32, Len: 'D' - 32}, {Start: 'E', Len: '~' - 'E'}}
	if diff := cmp.Diff(want, shapeOf(f)); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}
	checkRanges(t, f)

	a := f.Glyph('A')
	if a.DestSize != (backend.Point{X: 5, Y: 7}) {
		t.Errorf("'A' DestSize = %v, want {5 7}", a.DestSize)
	}
	if a.Offset != (backend.Point{X: 0, Y: 1}) {
		t.Errorf("'A' Offset = %v, want {0 1}", a.Offset)
	}
	if a.Advance != 5 {
		t.Errorf("'A' Advance = %v, want 5", a.Advance)
	}
	if f.Ascent != 8 {
		t.Errorf("Ascent = %v, want 8", f.Ascent)
	}
	if sp := f.Glyph(' '); sp.DestSize != (backend.Point{X: 5, Y: 10}) {
		t.Errorf("space DestSize = %v, want {5 10}", sp.DestSize)
	}
}

func TestBuildFont_Kerning(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e)

	tests := []struct {
		left, right rune
		want        float64
	}{
		{'A', 'V', -1},
		{'V', 'A', -0.8},
		{'T', 'o', -0.6},
		{'A', 'B', 0},
		{'D', 'A', 0},
	}
	for _, tt := range tests {
		if got := f.Kerning(tt.left, tt.right, 10); !approxEqual(got, tt.want) {
			t.Errorf("Kerning(%q, %q) = %v, want %v", tt.left, tt.right, got, tt.want)
		}
	}
	if got := f.Kerning('A', 'V', 20); !approxEqual(got, -2) {
		t.Errorf("Kerning at double size = %v, want -2", got)
	}

	// é was never requested, so its pair is dropped.
	if _, ok := f.Glyph('A').Kerning[0x00e9]; ok {
		t.Error("kerning pair with a missing glyph was kept")
	}
	for c := range f.Codepoints() {
		for right := range f.Glyph(c).Kerning {
			if !f.HasGlyph(right) {
				t.Errorf("U+%04X kerns with missing U+%04X", c, right)
			}
		}
	}
}

func TestBuildFont_KerningGoRegular(t *testing.T) {
	pairs := []fonttest.KernPair{
		{Left: 'A', Right: 'V', Value: -150},
		{Left: 'T', Right: 'o', Value: -180},
		{Left: 'L', Right: 'T', Value: -200},
		{Left: 'A', Right: '\u00e9', Value: -90}, // é is outside the standard set
	}
	data := fonttest.KernedGoRegular(pairs...)

	face, err := raster.Default().Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	const size = 20
	scale := face.ScaleForPixelHeight(size)

	for _, deviceScale := range []float64{1, 2} {
		e, _ := newFakeEngine(t, WithRasterizer(raster.DefaultName), WithDeviceScale(deviceScale))
		f, err := e.BuildFont(data, size)
		if err != nil {
			t.Fatalf("BuildFont: %v", err)
		}

		for _, p := range pairs[:3] {
			want := float64(p.Value) * scale
			if got := f.Kerning(p.Left, p.Right, size); got == 0 || !approxEqual(got, want) {
				t.Errorf("device scale %v: Kerning(%q, %q) = %v, want %v", deviceScale, p.Left, p.Right, got, want)
			}
		}
		if k := f.Kerning('A', '\u00e9', size); k != 0 {
			t.Errorf("device scale %v: kerning with a missing glyph = %v", deviceScale, k)
		}
		if k := f.Kerning('V', 'A', size); k != 0 {
			t.Errorf("device scale %v: Kerning(V, A) = %v, want 0 for an absent pair", deviceScale, k)
		}

		for _, text := range []string{"AV", "To", "LT", "AB"} {
			l, r := rune(text[0]), rune(text[1])
			want := f.Advance(l, size) + f.Kerning(l, r, size) + f.Advance(r, size)
			if got := f.Measure(text, size).X; !approxEqual(got, want) {
				t.Errorf("device scale %v: Measure(%q).X = %v, want %v", deviceScale, text, got, want)
			}
		}
		kerned := f.Measure("AV", size).X
		plain := f.Advance('A', size) + f.Advance('V', size)
		if kerned >= plain {
			t.Errorf("device scale %v: Measure(AV).X = %v, not tighter than %v", deviceScale, kerned, plain)
		}
	}
}

func TestBuildFont_GlyphSet(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e, WithGlyphSet(NewGlyphSet('A', 'B', 'C', 'D', 'E', 'V')))

	want := []rangeShape{{Start: 'A', Len: 3}, {Start: 'E', Len: 1}, {Start: 'V', Len: 1}}
	if diff := cmp.Diff(want, shapeOf(f)); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}
	if len(f.Glyph('A').Kerning) != 1 {
		t.Errorf("'A' kerning = %v, want only V", f.Glyph('A').Kerning)
	}
	checkAtlasRects(t, f)
}

func TestBuildFont_EmptyGlyphSet(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e, WithGlyphSet(NewGlyphSet()))

	if f.Degenerate() {
		t.Fatal("font with an atlas but no glyphs reported degenerate")
	}
	if f.GlyphCount() != 0 {
		t.Errorf("GlyphCount() = %d", f.GlyphCount())
	}
	if g := f.Glyph('A'); g != &f.InvalidGlyph {
		t.Error("lookup in an empty font did not return the invalid glyph")
	}
	// Missing glyphs still draw and measure as the invalid box.
	if got := f.Measure("A", 10); got != (backend.Point{X: 11, Y: 12}) {
		t.Errorf("Measure = %v, want {11 12}", got)
	}
}

func TestBuildFont_Options(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e, WithSpacing(0), WithPadding(0))

	if f.DefaultSpacing != 0 || f.GlyphPadding != 0 {
		t.Errorf("spacing %v padding %v, want 0 0", f.DefaultSpacing, f.GlyphPadding)
	}
	if got := f.Measure("AB", 10).X; got != 10 {
		t.Errorf("Measure(AB).X = %v, want 10 without spacing", got)
	}
	if r := f.Glyph(' ').SourceRect; r.X != 0 || r.Y != 0 {
		t.Errorf("first glyph at %v,%v, want the atlas origin without padding", r.X, r.Y)
	}
	checkAtlasRects(t, f)
}

func TestBuildFont_DeviceScale(t *testing.T) {
	e1, _ := newFakeEngine(t)
	e2, _ := newFakeEngine(t, WithDeviceScale(2))
	f1 := buildFake(t, e1)
	f2 := buildFake(t, e2)

	if e2.DeviceScale() != 2 {
		t.Fatalf("DeviceScale() = %v", e2.DeviceScale())
	}

	a1, a2 := f1.Glyph('A'), f2.Glyph('A')
	if a2.SourceRect.Width != 2*a1.SourceRect.Width || a2.SourceRect.Height != 2*a1.SourceRect.Height {
		t.Errorf("hi-dpi SourceRect %+v not twice %+v", a2.SourceRect, a1.SourceRect)
	}
	if a2.DestSize != a1.DestSize {
		t.Errorf("hi-dpi DestSize = %v, want logical %v", a2.DestSize, a1.DestSize)
	}
	if !approxEqual(f1.Ascent, f2.Ascent) {
		t.Errorf("Ascent %v vs %v", f1.Ascent, f2.Ascent)
	}
	if f1.Measure("Hello", 10) != f2.Measure("Hello", 10) {
		t.Errorf("measurements differ across device scales: %v vs %v", f1.Measure("Hello", 10), f2.Measure("Hello", 10))
	}
}

func TestBuildFont_Errors(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		e, rb := newFakeEngine(t)
		f, err := e.BuildFont([]byte("garbage"), 20)
		if !errors.Is(err, ErrFontParse) {
			t.Fatalf("err = %v, want ErrFontParse", err)
		}
		assertDegenerate(t, f, 20)
		if rb.uploads != 0 {
			t.Errorf("uploads = %d, want 0", rb.uploads)
		}
	})

	t.Run("parse ximage", func(t *testing.T) {
		e, _ := newFakeEngine(t, WithRasterizer("ximage"))
		f, err := e.BuildFont([]byte("garbage"), 20)
		if !errors.Is(err, ErrFontParse) {
			t.Fatalf("err = %v, want ErrFontParse", err)
		}
		assertDegenerate(t, f, 20)
	})

	for _, size := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		e, _ := newFakeEngine(t)
		f, err := e.BuildFont(fakeFontData, size)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %v: err = %v, want ErrInvalidSize", size, err)
		}
		if f == nil || !f.Degenerate() {
			t.Errorf("size %v: want a non-nil degenerate font", size)
		}
	}

	t.Run("atlas too large", func(t *testing.T) {
		e, _ := newFakeEngine(t, WithMaxAtlasSize(16))
		f, err := e.BuildFont(fakeFontData, 10)
		var sizeErr *AtlasSizeError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("err = %v, want *AtlasSizeError", err)
		}
		if sizeErr.Max != 16 || sizeErr.Width <= 16 && sizeErr.Height <= 16 {
			t.Errorf("AtlasSizeError = %+v", sizeErr)
		}
		assertDegenerate(t, f, 10)
	})

	t.Run("upload", func(t *testing.T) {
		e, rb := newFakeEngine(t)
		rb.uploadErr = errors.New("device lost")
		f, err := e.BuildFont(fakeFontData, 10)
		if err == nil {
			t.Fatal("expected upload error")
		}
		assertDegenerate(t, f, 10)
	})
}

func assertDegenerate(t *testing.T, f *Font, size float64) {
	t.Helper()
	if f == nil {
		t.Fatal("font is nil")
	}
	if !f.Degenerate() {
		t.Error("font is not degenerate")
	}
	if f.GlyphCount() != 0 {
		t.Errorf("degenerate font has %d glyphs", f.GlyphCount())
	}
	if got := f.Measure("abc", size); got != (backend.Point{X: 0, Y: size * 1.2}) {
		t.Errorf("Measure = %v, want {0 %v}", got, size*1.2)
	}
	if n := countGlyphs(f.Layout("abc", size, white)); n != 0 {
		t.Errorf("Layout placed %d glyphs", n)
	}
}

func countGlyphs(seq func(func(PlacedGlyph) bool)) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

func TestInvalidGlyphRect(t *testing.T) {
	got := invalidGlyphRect(128, 64, 10, 2)
	if want := image.Rect(113, 52, 123, 62); got != want {
		t.Errorf("invalidGlyphRect = %v, want %v", got, want)
	}
	if r := reservedArea(got, 128, 64, 2); r != image.Rect(111, 50, 128, 64) {
		t.Errorf("reservedArea = %v", r)
	}
}
