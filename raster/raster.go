package raster

import (
	"errors"
	"image"
	"sort"
	"sync"
)

// ErrUnknownRasterizer is returned by Get for unregistered names.
var ErrUnknownRasterizer = errors.New("raster: unknown rasterizer")

// Rasterizer parses font files.
type Rasterizer interface {
	// Parse parses TrueType or OpenType data.
	Parse(data []byte) (Face, error)
}

// Face is a parsed font.
type Face interface {
	// GlyphIndex returns the glyph index of r, or 0 when the font has no
	// glyph for it.
	GlyphIndex(r rune) int

	// ScaleForPixelHeight returns the factor from font units to pixels that
	// makes ascent - descent span px pixels.
	ScaleForPixelHeight(px float64) float64

	// CodepointBitmap renders r at the given scale. It returns the coverage
	// mask, with bounds starting at (0, 0), and the position of the mask's
	// top-left corner relative to the glyph origin. The mask is nil when the
	// font has no glyph for r.
	CodepointBitmap(scale float64, r rune) (*image.Alpha, image.Point)

	// CodepointHMetrics returns the advance width of r in font units.
	CodepointHMetrics(r rune) int

	// VMetrics returns ascent, descent and line gap in font units.
	// Descent is negative for glyphs that extend below the baseline.
	VMetrics() (ascent, descent, lineGap int)

	// KerningTable returns every horizontal kerning pair of the font.
	KerningTable() []KernEntry
}

// KernEntry is one kerning pair, by glyph index, in font units.
type KernEntry struct {
	Left, Right int
	Advance     int
}

// Registered rasterizer names.
const (
	// DefaultName is the rasterizer used when none is requested.
	DefaultName = "ximage"

	// OutlineName fills glyph outlines with golang.org/x/image/vector.
	OutlineName = "outline"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Rasterizer{
		DefaultName: XImage{},
		OutlineName: Outline{},
	}
)

// Register makes a rasterizer available under name, replacing any previous
// registration.
func Register(name string, r Rasterizer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = r
}

// Get returns the rasterizer registered under name.
func Get(name string) (Rasterizer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := registry[name]
	if !ok {
		return nil, ErrUnknownRasterizer
	}
	return r, nil
}

// Default returns the default rasterizer.
func Default() Rasterizer {
	r, err := Get(DefaultName)
	if err != nil {
		return XImage{}
	}
	return r
}

// Available returns the registered names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
