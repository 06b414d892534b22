package ggtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/ggtext/backend"
)

func TestMeasure(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e)

	tests := []struct {
		name string
		text string
		size float64
		want backend.Point
	}{
		{"empty", "", 10, backend.Pt(0, 12)},
		{"empty double", "", 20, backend.Pt(0, 24)},
		{"one glyph", "A", 10, backend.Pt(6, 12)},
		{"kerned pair", "AV", 10, backend.Pt(11, 12)},
		{"kerned pair double", "AV", 20, backend.Pt(22, 24)},
		{"wide and narrow", "Wi", 10, backend.Pt(14, 12)},
		{"missing glyph", "D", 10, backend.Pt(11, 12)},
		{"newline", "AB\nA", 10, backend.Pt(12, 24)},
		{"trailing newline", "A\n", 10, backend.Pt(6, 24)},
		{"control chars", "A\tB", 10, backend.Pt(12, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Measure(tt.text, tt.size); got != tt.want {
				t.Errorf("Measure(%q, %v) = %v, want %v", tt.text, tt.size, got, tt.want)
			}
		})
	}
}

func TestMeasure_ControlCharBreaksKerning(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e)

	if got := f.Measure("A\tV", 10).X; got != 12 {
		t.Errorf("Measure(A\\tV).X = %v, want 12 (no kerning across a control character)", got)
	}
	if got := f.Measure("A\x07#FFFFFFFFV", 10).X; got != 11 {
		t.Errorf("Measure with escape between pair = %v, want kerned 11", got)
	}
}

func TestMeasure_Monotonic(t *testing.T) {
	e, _ := newFakeEngine(t, WithRasterizer("ximage"))
	f := buildGoRegular(t, e, 20)

	const text = "The quick brown fox jumps over the lazy dog"
	prev := 0.0
	for i := 1; i <= len(text); i++ {
		w := f.Measure(text[:i], 20).X
		if w < prev {
			t.Errorf("Measure(%q).X = %v shrank from %v", text[:i], w, prev)
		}
		prev = w
	}
	if f.Measure(text, 30).X <= f.Measure(text, 20).X {
		t.Error("larger size did not measure wider")
	}
}

func TestLayout_Pens(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e)

	var got []backend.Point
	for pg := range f.Layout("AV\nB", 10, white) {
		got = append(got, pg.Pen)
	}
	want := []backend.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 12}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pens mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_StopsEarly(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e)

	n := 0
	for range f.Layout("ABCABC", 10, white) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d glyphs, want 2", n)
	}
}

func TestLayoutWrapped(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e)

	var got []backend.Point
	for pg := range f.LayoutWrapped("AAAA", 10, 13, white) {
		got = append(got, pg.Pen)
	}
	want := []backend.Point{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 0, Y: 12}, {X: 6, Y: 12}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pens mismatch (-want +got):\n%s", diff)
	}
	if got := f.MeasureWrapped("AAAA", 10, 13); got != backend.Pt(12, 24) {
		t.Errorf("MeasureWrapped = %v, want {12 24}", got)
	}
}

func TestLayoutWrapped_GlyphWiderThanWidth(t *testing.T) {
	e, _ := newFakeEngine(t)
	f := buildFake(t, e)

	var got []backend.Point
	for pg := range f.LayoutWrapped("WW", 10, 2, white) {
		got = append(got, pg.Pen)
	}
	want := []backend.Point{{X: 0, Y: 0}, {X: 0, Y: 12}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("an oversized glyph must sit alone on its line (-want +got):\n%s", diff)
	}
}

func TestLayoutWrapped_Properties(t *testing.T) {
	e, _ := newFakeEngine(t, WithRasterizer("ximage"))
	f := buildGoRegular(t, e, 20)

	// Kerning is applied after the line break decision.
	slack := 0.0
	for c := range f.Codepoints() {
		for _, k := range f.Glyph(c).Kerning {
			slack = max(slack, k)
		}
	}

	const text = "Sphinx of black quartz, judge my vow. Pack my box with five dozen liquor jugs."
	for _, width := range []float64{40, 100, 250, 1000} {
		lines := 0
		lastY := -1.0
		for pg := range f.LayoutWrapped(text, 20, width, white) {
			if pg.Pen.Y != lastY {
				lines++
				lastY = pg.Pen.Y
				if pg.Pen.X != 0 {
					t.Errorf("width %v: line at y=%v starts at x=%v", width, pg.Pen.Y, pg.Pen.X)
				}
				continue
			}
			if right := pg.Pen.X + pg.Glyph.DestSize.X; right > width+slack+1e-9 {
				t.Errorf("width %v: %q ends at %v", width, pg.Glyph.Value, right)
			}
		}
		m := f.MeasureWrapped(text, 20, width)
		if want := float64(lines) * 24; !approxEqual(m.Y, want) {
			t.Errorf("width %v: MeasureWrapped height %v, want %d lines = %v", width, m.Y, lines, want)
		}
	}
}

func TestAlignmentString(t *testing.T) {
	tests := []struct {
		a    Alignment
		want string
	}{
		{AlignLeft, "left"},
		{AlignCenter, "center"},
		{AlignRight, "right"},
		{Alignment(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Alignment(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
