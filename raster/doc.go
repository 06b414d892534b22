// Package raster turns font bytes into glyph coverage bitmaps and metrics.
//
// A Rasterizer parses a font file into a Face. The Face answers the
// questions the atlas builder asks: which glyph a codepoint maps to, how
// wide it is, what its coverage looks like at a given scale, the font's
// vertical metrics, and its pair kerning.
//
// Metrics are reported in font units; multiply by the factor returned from
// ScaleForPixelHeight to get pixels. Bitmap offsets are in pixels relative
// to the glyph origin on the baseline, with y growing downward.
//
// Two rasterizers are registered: "ximage" (the default) draws glyphs
// through golang.org/x/image/font/opentype faces, and "outline" fills the
// raw sfnt outlines with golang.org/x/image/vector. Other implementations
// can be added with Register.
package raster
