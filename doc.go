// Package ggtext builds glyph atlases from font files and lays out, measures
// and draws UTF-8 text with them.
//
// # Overview
//
// An Engine turns font bytes into a Font: every requested codepoint is
// rasterized, packed into one two-channel atlas bitmap and uploaded to a
// texture backend. Text is then drawn as one textured rectangle per glyph.
//
//	eng := ggtext.NewEngine(ggtext.WithBackend(software.NewBackend(img)))
//	font, err := eng.BuildFont(ttf, 20)
//	if err != nil {
//	    // font is still usable; it renders nothing
//	}
//	eng.DrawText("Hello", 20, backend.Pt(10, 10), color.NRGBA{A: 255}, font)
//
// # Glyph storage
//
// Glyphs are kept in a sorted list of ranges, each covering consecutive
// codepoints. Latin text collapses to one or two ranges, so lookups are a
// binary search over very few elements. Codepoints the font does not cover
// resolve to Font.InvalidGlyph, a placeholder box stamped into the atlas's
// bottom-right corner.
//
// # Incremental insertion
//
// AddGlyph adds one glyph to a built font without repacking: the glyph goes
// to the right of the last placed glyph, or to a new row below everything
// else. When neither fits, ErrAtlasFull is returned and the font is left
// untouched; callers typically fall back to the default font.
//
// # Inline color
//
// A BEL byte (0x07) followed by '#' and eight hex digits (RRGGBBAA) changes
// the tint of all following glyphs:
//
//	eng.DrawText("plain \a#FF0000FFred", 20, pos, white, nil)
//
// # Default font
//
// Every Engine carries a small built-in bitmap font (codepoints 32-255,
// base size 10). It is built lazily by DefaultFont or eagerly by Init and
// released by Shutdown. Functions taking a *Font use it when passed nil.
//
// # Concurrency
//
// An Engine and its fonts are not safe for concurrent use. Callers must
// serialize AddGlyph against draws and measurements of the same font.
// DefaultFont, Init and Shutdown are safe to call from any goroutine.
package ggtext
