package ggtext

import (
	"github.com/gogpu/ggtext/backend"
	"github.com/gogpu/ggtext/raster"
)

// Option configures an Engine during creation.
//
// Example:
//
//	// Software rendering onto an image
//	eng := ggtext.NewEngine(ggtext.WithBackend(software.NewBackend(img)))
//
//	// GPU host with a high-DPI window
//	eng := ggtext.NewEngine(
//	    ggtext.WithBackend(gpu.NewBackend(creator)),
//	    ggtext.WithDeviceScale(2),
//	)
type Option func(*engineConfig)

type engineConfig struct {
	backend          backend.TextureBackend
	rasterizer       string
	deviceScale      float64
	measureCacheSize int
	maxAtlasSize     int
	yFlip            bool
}

// DefaultMeasureCacheSize is the default number of cached measurements.
const DefaultMeasureCacheSize = 1024

// DefaultMaxAtlasSize is the default maximum atlas side length in pixels.
const DefaultMaxAtlasSize = 4096

func defaultEngineConfig() engineConfig {
	return engineConfig{
		rasterizer:       raster.DefaultName,
		deviceScale:      1,
		measureCacheSize: DefaultMeasureCacheSize,
		maxAtlasSize:     DefaultMaxAtlasSize,
	}
}

// WithBackend sets the texture backend atlases are uploaded to and drawn
// with. The default is a software backend without a target image, which
// supports building and measuring but draws nothing.
func WithBackend(b backend.TextureBackend) Option {
	return func(c *engineConfig) {
		c.backend = b
	}
}

// WithRasterizer selects a rasterizer registered with raster.Register.
// Unknown names fall back to the default rasterizer.
func WithRasterizer(name string) Option {
	return func(c *engineConfig) {
		c.rasterizer = name
	}
}

// WithDeviceScale sets the ratio of device pixels to logical pixels.
// Fonts are rasterized at size×scale so atlases stay sharp on high-DPI
// displays, while all metrics remain in logical units.
func WithDeviceScale(scale float64) Option {
	return func(c *engineConfig) {
		if scale > 0 {
			c.deviceScale = scale
		}
	}
}

// WithMeasureCacheSize sets how many measurements are cached.
// Zero disables caching.
func WithMeasureCacheSize(n int) Option {
	return func(c *engineConfig) {
		if n >= 0 {
			c.measureCacheSize = n
		}
	}
}

// WithMaxAtlasSize sets the largest atlas side BuildFont may grow to.
func WithMaxAtlasSize(n int) Option {
	return func(c *engineConfig) {
		if n > 0 {
			c.maxAtlasSize = n
		}
	}
}

// WithYFlip sets the initial render mode; see Engine.SetYFlip.
func WithYFlip(flip bool) Option {
	return func(c *engineConfig) {
		c.yFlip = flip
	}
}

// BuildOption configures a single BuildFont call.
type BuildOption func(*buildConfig)

type buildConfig struct {
	glyphs     *GlyphSet
	spacing    float64
	hasSpacing bool
	padding    int
}

// DefaultGlyphPadding is the padding around each glyph in a built atlas.
const DefaultGlyphPadding = 2

func defaultBuildConfig() buildConfig {
	return buildConfig{
		padding: DefaultGlyphPadding,
	}
}

// WithGlyphSet sets the codepoints to rasterize. The default is
// StandardGlyphSet (printable ASCII).
func WithGlyphSet(set *GlyphSet) BuildOption {
	return func(c *buildConfig) {
		c.glyphs = set
	}
}

// WithSpacing overrides the default inter-glyph spacing (size/10).
func WithSpacing(spacing float64) BuildOption {
	return func(c *buildConfig) {
		c.spacing = spacing
		c.hasSpacing = true
	}
}

// WithPadding sets the padding in pixels around each glyph in the atlas.
func WithPadding(padding int) BuildOption {
	return func(c *buildConfig) {
		if padding >= 0 {
			c.padding = padding
		}
	}
}
