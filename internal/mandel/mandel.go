package mandel

import (
	"fmt"
	"math"
	"math/cmplx"
	"unicode"
	"unicode/utf8"

	"github.com/san-kum/mandelterm/internal/grid"
)

// EscapeRadius is the magnitude beyond which an orbit is known to diverge.
const EscapeRadius = 2.0

const (
	DefaultPalette = " Programmieren!"
	DefaultWidth   = 95
	DefaultHeight  = 30
)

// Region is a rectangle of the complex plane.
type Region struct {
	MinX float64 `json:"min_x" yaml:"min_x"`
	MaxX float64 `json:"max_x" yaml:"max_x"`
	MinY float64 `json:"min_y" yaml:"min_y"`
	MaxY float64 `json:"max_y" yaml:"max_y"`
}

// DefaultRegion covers the whole set.
var DefaultRegion = Region{MinX: -2, MaxX: 0.8, MinY: -1.5, MaxY: 1.5}

// Params fully determines a render. Palette index 0 marks set members;
// index i marks points that escaped after i iterations.
type Params struct {
	Palette string `json:"palette"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Bounds  Region `json:"bounds"`
}

func DefaultParams() Params {
	return Params{
		Palette: DefaultPalette,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Bounds:  DefaultRegion,
	}
}

func (p Params) Validate() error {
	if utf8.RuneCountInString(p.Palette) < 2 {
		return fmt.Errorf("palette %q: %w", p.Palette, ErrEmptyPalette)
	}
	for i, r := range []rune(p.Palette) {
		if !unicode.IsPrint(r) {
			return fmt.Errorf("palette %q index %d (%U): %w", p.Palette, i, r, ErrPalette)
		}
	}
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%dx%d: %w", p.Width, p.Height, ErrDimensions)
	}
	b := p.Bounds
	if !(b.MinX < b.MaxX) || !(b.MinY < b.MaxY) {
		return fmt.Errorf("x [%g, %g] y [%g, %g]: %w", b.MinX, b.MaxX, b.MinY, b.MaxY, ErrBounds)
	}
	if math.IsInf(b.MaxX-b.MinX, 0) || math.IsInf(b.MaxY-b.MinY, 0) {
		return fmt.Errorf("region span overflows: %w", ErrBounds)
	}
	return nil
}

// Iterations is the escape-count bound, equal to the palette length.
func (p Params) Iterations() int {
	return utf8.RuneCountInString(p.Palette)
}

// Point maps a grid cell to its sample in the complex plane.
func (p Params) Point(row, col int) complex128 {
	b := p.Bounds
	x := b.MinX + float64(col)*(b.MaxX-b.MinX)/float64(p.Width)
	y := b.MinY + float64(row)*(b.MaxY-b.MinY)/float64(p.Height)
	return complex(x, y)
}

// Escape returns the escape count for the cell at (row, col): 0 when the
// orbit stays bounded for the whole budget, otherwise a value in [1, N-1].
func (p Params) Escape(row, col int) int {
	return EscapeCount(p.Point(row, col), p.Iterations())
}

// EscapeCount iterates z = z*z + c from z = c. It returns k+1 where k is the
// first orbit index with |z| > EscapeRadius, or 0 if no such k+1 < n exists.
func EscapeCount(c complex128, n int) int {
	z := c
	for i := 1; i < n; i++ {
		if cmplx.Abs(z) > EscapeRadius {
			return i
		}
		z = z*z + c
	}
	return 0
}

// Counts returns the escape count of every cell, indexed [row][col].
func Counts(p Params) [][]int {
	counts := make([][]int, p.Height)
	for r := range counts {
		counts[r] = make([]int, p.Width)
		for c := range counts[r] {
			counts[r][c] = p.Escape(r, c)
		}
	}
	return counts
}

// Render fills a Height x Width grid with the palette character of each
// cell's escape count.
func Render(p Params) (*grid.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	palette := []rune(p.Palette)
	g := grid.New(p.Height, p.Width)
	for r := 0; r < p.Height; r++ {
		for c := 0; c < p.Width; c++ {
			g.Set(r, c, palette[p.Escape(r, c)])
		}
	}
	return g, nil
}
