package ggtext

import (
	"fmt"
	"os"
	"sync"

	"github.com/gogpu/ggtext/backend"
	"github.com/gogpu/ggtext/backend/software"
	"github.com/gogpu/ggtext/internal/cache"
	"github.com/gogpu/ggtext/raster"
)

// Engine owns a texture backend, a rasterizer and a default font, and
// builds, draws and measures fonts with them.
//
// Fonts built by one Engine must only be used with that Engine.
type Engine struct {
	cfg        engineConfig
	backend    backend.TextureBackend
	rasterizer raster.Rasterizer
	measures   *cache.Cache[measureKey, backend.Point]
	yFlip      bool

	mu          sync.Mutex
	defaultFont *Font
	shutdown    bool
}

// NewEngine creates an engine. The default font is not built until first
// use; call Init to build it eagerly.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		cfg:      cfg,
		backend:  cfg.backend,
		measures: cache.New[measureKey, backend.Point](cfg.measureCacheSize),
		yFlip:    cfg.yFlip,
	}
	if e.backend == nil {
		e.backend = software.NewBackend(nil)
	}

	r, err := raster.Get(cfg.rasterizer)
	if err != nil {
		Logger().Warn("ggtext: unknown rasterizer, using default",
			"name", cfg.rasterizer, "default", raster.DefaultName)
		r = raster.Default()
	}
	e.rasterizer = r

	return e
}

// Backend returns the engine's texture backend.
func (e *Engine) Backend() backend.TextureBackend { return e.backend }

// DeviceScale returns the ratio of device pixels to logical pixels.
func (e *Engine) DeviceScale() float64 { return e.cfg.deviceScale }

// SetYFlip sets the render mode for renderers with an inverted y axis.
// When enabled, glyph source rectangles are sampled upside down and the
// vertical glyph offset is not applied.
func (e *Engine) SetYFlip(flip bool) { e.yFlip = flip }

// YFlip reports the current render mode.
func (e *Engine) YFlip() bool { return e.yFlip }

// Init builds the default font now instead of on first use.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.shutdown {
		return ErrShutdown
	}
	_, err := e.defaultFontLocked()
	return err
}

// DefaultFont returns the built-in font, building it on first use.
// After Shutdown the returned font is degenerate.
func (e *Engine) DefaultFont() *Font {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.shutdown {
		Logger().Warn("ggtext: default font requested after shutdown")
		if e.defaultFont == nil {
			e.defaultFont = degenerateDefaultFont()
		}
		return e.defaultFont
	}
	f, err := e.defaultFontLocked()
	if err != nil {
		Logger().Warn("ggtext: default font unavailable", "err", err)
	}
	return f
}

func (e *Engine) defaultFontLocked() (*Font, error) {
	if e.defaultFont != nil {
		return e.defaultFont, nil
	}
	f, err := newDefaultFont(e.backend)
	if err != nil {
		e.defaultFont = degenerateDefaultFont()
		return e.defaultFont, err
	}
	e.defaultFont = f
	Logger().Debug("ggtext: default font ready", "glyphs", f.GlyphCount())
	return f, nil
}

// Shutdown releases the default font. It is meant to run once before the
// host renderer goes away; later calls do nothing.
func (e *Engine) Shutdown() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.shutdown {
		Logger().Warn("ggtext: shutdown called more than once")
		return nil
	}
	e.shutdown = true

	if f := e.defaultFont; f != nil && f.Texture != nil {
		e.backend.Release(f.Texture)
		f.Texture = nil
		f.generation++
	}
	e.measures.Clear()
	return nil
}

// UnloadFont releases the atlas of f. The font becomes degenerate.
// Unloading the default font or nil does nothing.
func (e *Engine) UnloadFont(f *Font) {
	if f == nil || f.isDefault {
		return
	}
	if f.Texture != nil {
		e.backend.Release(f.Texture)
		f.Texture = nil
	}
	f.Ranges = nil
	f.generation++
	id := f.id
	e.measures.DeleteFunc(func(k measureKey) bool { return k.font == id })
}

// LoadFontFile reads a font file and builds it like BuildFont.
func (e *Engine) LoadFontFile(path string, size float64, opts ...BuildOption) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		f := newFont(size)
		return f, fmt.Errorf("ggtext: load font file: %w", err)
	}
	return e.BuildFont(data, size, opts...)
}

// resolve substitutes the default font for nil.
func (e *Engine) resolve(f *Font) *Font {
	if f != nil {
		return f
	}
	return e.DefaultFont()
}
