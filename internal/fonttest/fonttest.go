// Package fonttest builds font files for tests.
package fonttest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// KernPair is a horizontal kerning adjustment in font units.
type KernPair struct {
	Left, Right rune
	Value       int16
}

// KernedGoRegular returns a copy of Go Regular whose 'kern' table holds
// pairs. It panics if a rune is not in the font.
func KernedGoRegular(pairs ...KernPair) []byte {
	data, err := WithKern(goregular.TTF, pairs)
	if err != nil {
		panic(err)
	}
	return data
}

// WithKern returns a copy of the TrueType font ttf with a single horizontal
// format 0 'kern' subtable holding pairs. An existing 'kern' table is
// replaced.
func WithKern(ttf []byte, pairs []KernPair) ([]byte, error) {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, err
	}

	type record struct {
		left, right uint16
		value       int16
	}
	var buf sfnt.Buffer
	records := make([]record, 0, len(pairs))
	for _, p := range pairs {
		l, err := f.GlyphIndex(&buf, p.Left)
		if err != nil || l == 0 {
			return nil, fmt.Errorf("fonttest: no glyph for %q", p.Left)
		}
		r, err := f.GlyphIndex(&buf, p.Right)
		if err != nil || r == 0 {
			return nil, fmt.Errorf("fonttest: no glyph for %q", p.Right)
		}
		records = append(records, record{uint16(l), uint16(r), p.Value})
	}
	slices.SortFunc(records, func(a, b record) int {
		if a.left != b.left {
			return int(a.left) - int(b.left)
		}
		return int(a.right) - int(b.right)
	})

	tables, err := readTables(ttf)
	if err != nil {
		return nil, err
	}
	tables = slices.DeleteFunc(tables, func(t table) bool { return t.tag == "kern" })

	be := binary.BigEndian
	n := len(records)
	search, selector := binarySearchParams(n, 6)
	kern := make([]byte, 0, 4+6+8+6*n)
	kern = be.AppendUint16(kern, 0) // version
	kern = be.AppendUint16(kern, 1) // nTables
	kern = be.AppendUint16(kern, 0) // subtable version
	kern = be.AppendUint16(kern, uint16(6+8+6*n))
	kern = append(kern, 0, 0x01) // format 0, horizontal
	kern = be.AppendUint16(kern, uint16(n))
	kern = be.AppendUint16(kern, search)
	kern = be.AppendUint16(kern, selector)
	kern = be.AppendUint16(kern, uint16(6*n)-search)
	for _, r := range records {
		kern = be.AppendUint16(kern, r.left)
		kern = be.AppendUint16(kern, r.right)
		kern = be.AppendUint16(kern, uint16(r.value))
	}
	tables = append(tables, table{tag: "kern", data: kern})

	return writeTables(ttf[:4], tables), nil
}

type table struct {
	tag  string
	data []byte
}

func readTables(ttf []byte) ([]table, error) {
	be := binary.BigEndian
	if len(ttf) < 12 {
		return nil, errors.New("fonttest: short font header")
	}
	n := int(be.Uint16(ttf[4:]))
	if len(ttf) < 12+16*n {
		return nil, errors.New("fonttest: short table directory")
	}
	out := make([]table, 0, n+1)
	for i := range n {
		rec := ttf[12+16*i:]
		off, length := int(be.Uint32(rec[8:])), int(be.Uint32(rec[12:]))
		if off < 0 || length < 0 || off+length > len(ttf) {
			return nil, fmt.Errorf("fonttest: table %q out of bounds", rec[:4])
		}
		out = append(out, table{tag: string(rec[:4]), data: ttf[off : off+length]})
	}
	return out, nil
}

// writeTables lays out a font file with tables sorted by tag, each starting
// on a four byte boundary.
func writeTables(version []byte, tables []table) []byte {
	slices.SortFunc(tables, func(a, b table) int { return bytes.Compare([]byte(a.tag), []byte(b.tag)) })

	be := binary.BigEndian
	n := len(tables)
	search, selector := binarySearchParams(n, 16)

	var out []byte
	out = append(out, version...)
	out = be.AppendUint16(out, uint16(n))
	out = be.AppendUint16(out, search)
	out = be.AppendUint16(out, selector)
	out = be.AppendUint16(out, uint16(16*n)-search)

	offset := 12 + 16*n
	for _, t := range tables {
		out = append(out, t.tag...)
		out = be.AppendUint32(out, checksum(t.data))
		out = be.AppendUint32(out, uint32(offset))
		out = be.AppendUint32(out, uint32(len(t.data)))
		offset += pad4(len(t.data))
	}
	for _, t := range tables {
		out = append(out, t.data...)
		out = append(out, make([]byte, pad4(len(t.data))-len(t.data))...)
	}
	return out
}

// binarySearchParams returns searchRange and entrySelector for n entries
// of the given size.
func binarySearchParams(n, size int) (searchRange, entrySelector uint16) {
	if n == 0 {
		return 0, 0
	}
	e := bits.Len(uint(n)) - 1
	return uint16((1 << e) * size), uint16(e)
}

func checksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

func pad4(n int) int { return (n + 3) &^ 3 }
