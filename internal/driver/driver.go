// Package driver sequences the classic demo: render the set, print it, print
// its mirror image, then print a scrolling animation of the mirror.
package driver

import (
	"fmt"
	"io"

	"github.com/san-kum/mandelterm/internal/grid"
	"github.com/san-kum/mandelterm/internal/mandel"
)

// DefaultFrames is the animation length of the classic demo.
const DefaultFrames = 11

// Classic writes the original render, a blank line, the mirrored render,
// and then frames scroll steps of the mirror, each preceded by a blank line.
func Classic(w io.Writer, p mandel.Params, frames int) error {
	g, err := mandel.Render(p)
	if err != nil {
		return err
	}
	return Sequence(w, g, frames)
}

// Sequence runs the print, mirror and scroll steps on an existing grid.
func Sequence(w io.Writer, g *grid.Grid, frames int) error {
	if err := grid.Print(w, g); err != nil {
		return err
	}

	frame := grid.Mirror(g)
	if err := separator(w); err != nil {
		return err
	}
	if err := grid.Print(w, frame); err != nil {
		return err
	}

	for i := 0; i < frames; i++ {
		if err := separator(w); err != nil {
			return err
		}
		if err := grid.Print(w, frame); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		frame = grid.Scroll(frame)
	}
	return nil
}

func separator(w io.Writer) error {
	_, err := io.WriteString(w, "\n")
	return err
}
