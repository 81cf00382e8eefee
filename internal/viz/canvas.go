package viz

import (
	"github.com/san-kum/mandelterm/internal/grid"
	"github.com/san-kum/mandelterm/internal/mandel"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas packs 2x4 sub-pixels into each character cell.
type Canvas struct {
	Width, Height int
	cells         *grid.Grid
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, cells: grid.New(h, w)}
	c.Clear()
	return c
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.cells.Set(row, col, c.cells.At(row, col)|rune(pixelMap[y%4][x%2]))
}

// IsSet reports whether the sub-pixel at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.cells.At(y/4, x/2)&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for r := 0; r < c.Height; r++ {
		for col := 0; col < c.Width; col++ {
			c.cells.Set(r, col, brailleBlank)
		}
	}
}

// Grid returns a copy of the canvas cells.
func (c *Canvas) Grid() *grid.Grid { return c.cells.Clone() }

// Braille renders set members at eight sub-pixels per cell, so a
// Width x Height grid samples the region at (2*Width) x (4*Height).
func Braille(p mandel.Params) (*grid.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	sub := p
	sub.Width, sub.Height = p.Width*2, p.Height*4

	c := NewCanvas(p.Width, p.Height)
	for y := 0; y < sub.Height; y++ {
		for x := 0; x < sub.Width; x++ {
			if sub.Escape(y, x) == 0 {
				c.Set(x, y)
			}
		}
	}
	return c.Grid(), nil
}
