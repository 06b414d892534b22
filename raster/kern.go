package raster

import (
	"bytes"

	tsfont "github.com/go-text/typesetting/font"
)

// readKerningTable flattens the horizontal format 0 subtables of the
// font's 'kern' table. Class-based and cross-stream subtables are skipped.
// When several subtables define the same pair, the first one wins.
func readKerningTable(data []byte) []KernEntry {
	face, err := tsfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	type pair struct{ l, r int }
	seen := make(map[pair]bool)

	var out []KernEntry
	for _, sub := range face.Kern {
		if !sub.IsHorizontal() || sub.IsCrossStream() {
			continue
		}
		pairs, ok := sub.Data.(tsfont.Kern0)
		if !ok {
			continue
		}
		for _, p := range pairs {
			k := pair{int(p.Left), int(p.Right)}
			if seen[k] || p.Value == 0 {
				continue
			}
			seen[k] = true
			out = append(out, KernEntry{Left: k.l, Right: k.r, Advance: int(p.Value)})
		}
	}
	return out
}
