// Command atlasdump builds a glyph atlas from a font file and writes it as
// a PNG, optionally with a rendered text sample.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggtext"
	"github.com/gogpu/ggtext/backend"
	"github.com/gogpu/ggtext/backend/gpu"
	"github.com/gogpu/ggtext/backend/software"
	"github.com/gogpu/ggtext/raster"
)

func main() {
	var (
		fontPath    = flag.String("font", "", "TrueType/OpenType font file (default: Go Regular, \"builtin\" for the default font)")
		size        = flag.Float64("size", 20, "font size in pixels")
		scale       = flag.Float64("scale", 1, "device pixel scale")
		rasterizer  = flag.String("rasterizer", raster.DefaultName, "glyph rasterizer ("+strings.Join(raster.Available(), ", ")+")")
		chars       = flag.String("chars", "", "extra characters to include")
		ranges      = flag.String("range", "", "extra codepoint ranges, e.g. 0400-04FF,2190-21FF")
		output      = flag.String("output", "atlas.png", "atlas output file")
		sample      = flag.String("sample", "", "text to render with the built font")
		sampleOut   = flag.String("sample-output", "sample.png", "sample output file")
		wrap        = flag.Float64("wrap", 0, "wrap width for the sample (0 disables wrapping)")
		checkShader = flag.Bool("check-shader", false, "compile the GPU glyph shader and report the result")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ggtext.SetLogger(l)
		gpu.SetLogger(l)
	}

	if *checkShader {
		spirv, err := gpu.CompileShader()
		if err != nil {
			log.Fatalf("Shader compilation failed: %v", err)
		}
		log.Printf("Glyph shader compiled: %d bytes of SPIR-V", len(spirv))
	}

	set := ggtext.StandardGlyphSet().AddString(*chars)
	if err := addRanges(set, *ranges); err != nil {
		log.Fatalf("Invalid -range: %v", err)
	}

	target := image.NewRGBA(image.Rect(0, 0, 1, 1))
	sw := software.NewBackend(target)
	eng := ggtext.NewEngine(
		ggtext.WithBackend(sw),
		ggtext.WithDeviceScale(*scale),
		ggtext.WithRasterizer(*rasterizer),
	)
	defer func() { _ = eng.Shutdown() }()

	font, err := loadFont(eng, *fontPath, *size, set)
	if err != nil {
		log.Fatalf("Failed to build font: %v", err)
	}

	atlas, err := sw.Readback(font.Texture)
	if err != nil {
		log.Fatalf("Failed to read atlas: %v", err)
	}
	if err := savePNG(*output, atlas); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Atlas saved to %s (%dx%d, %d glyphs in %d ranges)",
		*output, atlas.Width, atlas.Height, font.GlyphCount(), len(font.Ranges))

	if *sample == "" {
		return
	}
	img := renderSample(eng, sw, font, *sample, *size, *wrap)
	if err := savePNG(*sampleOut, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Sample saved to %s (%dx%d)", *sampleOut, img.Bounds().Dx(), img.Bounds().Dy())
}

// loadFont builds the requested font. An empty path selects Go Regular,
// "builtin" the engine's default font.
func loadFont(eng *ggtext.Engine, path string, size float64, set *ggtext.GlyphSet) (*ggtext.Font, error) {
	switch path {
	case "builtin":
		if err := eng.Init(); err != nil {
			return nil, err
		}
		return eng.DefaultFont(), nil
	case "":
		return eng.BuildFont(goregular.TTF, size, ggtext.WithGlyphSet(set))
	}
	return eng.LoadFontFile(path, size, ggtext.WithGlyphSet(set))
}

// addRanges parses comma-separated hexadecimal ranges such as "0400-04FF"
// or a single codepoint such as "20AC" and adds them to set.
func addRanges(set *ggtext.GlyphSet, list string) error {
	if list == "" {
		return nil
	}
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, found := strings.Cut(part, "-")
		start, err := parseCodepoint(lo)
		if err != nil {
			return err
		}
		end := start
		if found {
			if end, err = parseCodepoint(hi); err != nil {
				return err
			}
		}
		if end < start {
			return fmt.Errorf("range %q ends before it starts", part)
		}
		set.AddRange(start, end)
	}
	return nil
}

func parseCodepoint(s string) (rune, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "U+"), "u+")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("codepoint %q: %w", s, err)
	}
	if v > 0x10FFFF {
		return 0, fmt.Errorf("codepoint %q out of range", s)
	}
	return rune(v), nil
}

// renderSample draws text onto a dark canvas sized to fit it.
func renderSample(eng *ggtext.Engine, sw *software.Backend, font *ggtext.Font, text string, size, wrap float64) *image.RGBA {
	const margin = 8

	var m backend.Point
	if wrap > 0 {
		m = font.MeasureWrapped(text, size, wrap)
	} else {
		m = eng.MeasureText(text, size, font)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(m.X)+2*margin, int(m.Y)+2*margin))
	bg := color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}

	sw.SetTarget(img)
	fg := color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	pos := backend.Pt(margin, margin)
	if wrap > 0 {
		eng.DrawTextWrapped(text, size, pos, wrap, fg, font)
	} else {
		eng.DrawText(text, size, pos, fg, font)
	}
	return img
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
