package grid

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmpty indicates a grid with no rows or no columns.
	ErrEmpty = errors.New("grid: empty grid")

	// ErrRagged indicates input lines of differing rune length.
	ErrRagged = errors.New("grid: lines differ in length")
)

// Grid is a fixed-size rectangle of characters stored row-major in a flat
// buffer. Its dimensions never change after construction.
type Grid struct {
	rows, cols int
	cells      []rune
}

// New returns a rows x cols grid filled with spaces.
func New(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]rune, rows*cols),
	}
	for i := range g.cells {
		g.cells[i] = ' '
	}
	return g
}

// FromLines builds a grid from equal-length lines. Length is counted in runes.
func FromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	cols := utf8.RuneCountInString(lines[0])
	if cols == 0 {
		return nil, ErrEmpty
	}

	g := New(len(lines), cols)
	for r, line := range lines {
		if n := utf8.RuneCountInString(line); n != cols {
			return nil, fmt.Errorf("line %d has %d runes, want %d: %w", r, n, cols, ErrRagged)
		}
		c := 0
		for _, ch := range line {
			g.cells[r*cols+c] = ch
			c++
		}
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) At(r, c int) rune {
	return g.cells[g.index(r, c)]
}

func (g *Grid) Set(r, c int, ch rune) {
	g.cells[g.index(r, c)] = ch
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) []rune {
	out := make([]rune, g.cols)
	copy(out, g.cells[r*g.cols:(r+1)*g.cols])
	return out
}

func (g *Grid) Line(r int) string {
	return string(g.cells[r*g.cols : (r+1)*g.cols])
}

func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for r := range lines {
		lines[r] = g.Line(r)
	}
	return lines
}

func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, cells: make([]rune, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, ch := range g.cells {
		if other.cells[i] != ch {
			return false
		}
	}
	return true
}

// String renders the grid the same way Print does.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		sb.WriteString(g.Line(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) index(r, c int) int {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("grid: cell (%d,%d) out of range %dx%d", r, c, g.rows, g.cols))
	}
	return r*g.cols + c
}
