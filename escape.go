package ggtext

import "image/color"

// bel introduces an inline color escape: BEL '#' RRGGBBAA.
const bel = 0x07

var colorZero color.NRGBA

// escapeState is the state of the color escape scanner.
type escapeState int

const (
	// stateNormal: not inside an escape.
	stateNormal escapeState = iota

	// stateAfterBEL: a BEL was read, '#' is expected next.
	stateAfterBEL

	// stateInColor: reading the eight hex digits.
	stateInColor
)

// scanEscape consumes the escape sequence starting at text[i] and returns
// the index of the first byte after it together with the resulting tint.
//
// Contract:
//   - BEL '#' and eight hex digits set R, G, B and A.
//   - A character that is not a hex digit reads as 0.
//   - A BEL not followed by '#' is consumed on its own; tint is unchanged.
//   - A sequence cut short by the end of text consumes the rest of the
//     text. Channels whose digits were read take the parsed value, the
//     others keep their value from tint.
func scanEscape(text string, i int, tint color.NRGBA) (int, color.NRGBA) {
	ch := [4]uint8{tint.R, tint.G, tint.B, tint.A}
	state := stateNormal
	digits := 0

	for i < len(text) {
		c := text[i]
		switch state {
		case stateNormal:
			if c != bel {
				return i, tint
			}
			state = stateAfterBEL
		case stateAfterBEL:
			if c != '#' {
				return i, tint
			}
			state = stateInColor
		case stateInColor:
			v := hexValue(c)
			if digits%2 == 0 {
				ch[digits/2] = v << 4
			} else {
				ch[digits/2] |= v
			}
			digits++
			if digits == 8 {
				return i + 1, color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
			}
		}
		i++
	}

	return i, color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
