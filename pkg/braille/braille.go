// Package braille packs boolean occupancy grids into braille glyph text.
// Each output rune encodes a 2-wide by 4-tall block of cells as independent
// dots, which quadruples the vertical and doubles the horizontal density of
// a plain character grid.
package braille

import (
	"errors"
	"fmt"
	"strings"

	"hjkl-snake/pkg/snake"
)

// ErrDimension is returned when a raster cannot be split into 2x4 blocks.
var ErrDimension = errors.New("raster width must be divisible by 2 and height by 4")

// blank is the empty braille cell U+2800, not an ASCII space. Using it keeps
// every output row the same rune width in monospace terminals.
const blank = '⠀'

// dotBits maps a cell's sub-position (row mod 4, col mod 2) to its dot bit
// within the glyph. The layout follows the 8-dot braille convention: the
// left column occupies bits 0,1,2,6 top to bottom, the right column bits
// 3,4,5,7. Indexing with anything else is a logic bug and panics.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Pack converts the raster into braille text, one line per 4 input rows and
// one rune per 2 input columns, rows joined by newlines.
func Pack(r *snake.Raster) (string, error) {
	if r.Width%2 != 0 || r.Height%4 != 0 {
		return "", fmt.Errorf("braille: %dx%d raster: %w", r.Width, r.Height, ErrDimension)
	}

	rows := r.Height / 4
	cols := r.Width / 2
	glyphs := make([]rune, rows*cols)
	for i := range glyphs {
		glyphs[i] = blank
	}

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if on, ok := r.Get(x, y); !ok || !on {
				continue
			}
			glyphs[(y/4)*cols+x/2] |= dotBits[y%4][x%2]
		}
	}

	var b strings.Builder
	b.Grow(rows * (cols*3 + 1)) // braille runes are 3 bytes in UTF-8
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, g := range glyphs[row*cols : (row+1)*cols] {
			b.WriteRune(g)
		}
	}
	return b.String(), nil
}

// ToASCII renders the raster one character per cell, '8' for occupied and
// '.' for empty, rows joined by newlines. It has no dimension constraints
// and exists as a debug and fallback representation.
func ToASCII(r *snake.Raster) string {
	var b strings.Builder
	b.Grow(r.Height * (r.Width + 1))
	for y := 0; y < r.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < r.Width; x++ {
			if on, ok := r.Get(x, y); ok && on {
				b.WriteByte('8')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
