// Package pack lays glyph bitmaps into a fixed-size atlas.
//
// The packer organizes the atlas in horizontal rows of a fixed height. Items
// are placed left-to-right with padding on both sides until the next item
// would cross the right margin, then a new row is started below. One
// rectangle of the atlas may be reserved; rows skip past it.
package pack

import (
	"image"
	"math"
)

// RowPacker implements row (shelf) based rectangle packing with uniform
// row height, suitable for glyphs rasterized at one pixel size.
type RowPacker struct {
	width     int // Total width of the atlas
	height    int // Total height of the atlas
	padding   int // Padding on every side of an item
	rowHeight int // Distance between row tops

	reserved image.Rectangle // Area no item may overlap

	x, y int // Next free slot

	lowest    int // Maximum y+h placed so far
	lastRight int // Right edge of the most recent item
	lastY     int // Top of the most recent item

	usedArea int
}

// NewRowPacker creates a packer for a width × height atlas.
// The first item lands at (padding, padding).
func NewRowPacker(width, height, padding, rowHeight int) *RowPacker {
	return &RowPacker{
		width:     width,
		height:    height,
		padding:   padding,
		rowHeight: rowHeight,
		x:         padding,
		y:         padding,
	}
}

// Reserve excludes r from all later placements.
func (p *RowPacker) Reserve(r image.Rectangle) {
	p.reserved = r
}

// Place finds space for a w × h item.
// Returns the top-left corner and true, or the zero point and false when the
// item cannot fit in the remaining space.
func (p *RowPacker) Place(w, h int) (image.Point, bool) {
	if w+2*p.padding > p.width || h+2*p.padding > p.height {
		return image.Point{}, false
	}

	for {
		if p.x+w > p.width-p.padding {
			p.nextRow()
		}

		r := image.Rect(p.x, p.y, p.x+w, p.y+h)
		if r.Max.Y+p.padding > p.height {
			return image.Point{}, false
		}

		if overlaps(r, p.reserved) {
			p.nextRow()
			continue
		}

		p.x += w + 2*p.padding
		p.lastRight = r.Max.X
		p.lastY = r.Min.Y
		if r.Max.Y > p.lowest {
			p.lowest = r.Max.Y
		}
		p.usedArea += w * h
		return r.Min, true
	}
}

// nextRow moves the cursor to the start of the next row.
func (p *RowPacker) nextRow() {
	p.x = p.padding
	p.y += p.rowHeight
}

// Lowest returns the maximum bottom edge of all placed items.
func (p *RowPacker) Lowest() int { return p.lowest }

// LastRight returns the right edge of the most recently placed item.
func (p *RowPacker) LastRight() int { return p.lastRight }

// LastY returns the top edge of the most recently placed item.
func (p *RowPacker) LastY() int { return p.lastY }

// Utilization returns the fraction of atlas area covered by items (0.0 to 1.0).
func (p *RowPacker) Utilization() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.width*p.height)
}

// overlaps is like image.Rectangle.Overlaps but treats a zero-width item as
// occupying its column, so empty bitmaps never land inside the reserved area.
func overlaps(r, reserved image.Rectangle) bool {
	if reserved.Empty() {
		return false
	}
	if r.Dx() == 0 || r.Dy() == 0 {
		r.Max.X = max(r.Max.X, r.Min.X+1)
		r.Max.Y = max(r.Max.Y, r.Min.Y+1)
	}
	return r.Overlaps(reserved)
}

// AtlasSize returns the atlas dimensions for items whose padded widths sum to
// totalWidth, each occupying one row of rowHeight.
//
// The estimated area carries 20% slack. The side is the next power of two of
// its square root; when the estimate fills less than half of the square, the
// atlas is only half as tall.
func AtlasSize(totalWidth, rowHeight int) (width, height int) {
	totalArea := float64(totalWidth) * float64(rowHeight) * 1.2
	side := NextPowerOfTwo(int(math.Ceil(math.Sqrt(totalArea))))

	if totalArea < float64(side*side)/2 {
		return side, side / 2
	}
	return side, side
}

// Grow returns the next larger atlas size: a half-height atlas becomes square,
// a square atlas doubles its width.
func Grow(width, height int) (int, int) {
	if height < width {
		return width, width
	}
	return width * 2, height
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
