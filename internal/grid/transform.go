package grid

import (
	"bufio"
	"io"
)

// Print writes g to w one row per line, top to bottom.
func Print(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.rows; r++ {
		if _, err := bw.WriteString(g.Line(r)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Mirror returns a copy of g with every row reversed left to right.
func Mirror(g *Grid) *Grid {
	out := New(g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		base := r * g.cols
		for c := 0; c < g.cols; c++ {
			out.cells[base+c] = g.cells[base+g.cols-1-c]
		}
	}
	return out
}

// Scroll returns a copy of g with every row moved up by one. The first row
// wraps around to the bottom.
func Scroll(g *Grid) *Grid {
	return ScrollBy(g, 1)
}

// ScrollBy shifts rows up by n positions with wrap-around. Negative n
// scrolls down. The input is left untouched.
func ScrollBy(g *Grid, n int) *Grid {
	out := New(g.rows, g.cols)
	if g.rows == 0 {
		return out
	}
	n %= g.rows
	if n < 0 {
		n += g.rows
	}
	for r := 0; r < g.rows; r++ {
		src := (r + n) % g.rows
		copy(out.cells[r*g.cols:(r+1)*g.cols], g.cells[src*g.cols:(src+1)*g.cols])
	}
	return out
}
