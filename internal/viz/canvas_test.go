package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/mandelterm/internal/mandel"
)

func TestCanvas_SetAndIsSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(10, 10)

	if !c.IsSet(0, 0) || !c.IsSet(3, 3) {
		t.Error("expected pixels to be set")
	}
	if c.IsSet(1, 0) {
		t.Error("unexpected pixel set")
	}
	if got := c.Grid().At(0, 0); got != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", got)
	}
	if got := c.Grid().At(0, 1); got != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", got)
	}

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("Clear left pixel set")
	}
}

func TestBraille(t *testing.T) {
	p := mandel.DefaultParams()
	p.Width, p.Height = 40, 12
	g, err := Braille(p)
	if err != nil {
		t.Fatalf("Braille: %v", err)
	}
	if g.Rows() != 12 || g.Cols() != 40 {
		t.Fatalf("grid = %dx%d", g.Rows(), g.Cols())
	}

	lit := 0
	for _, line := range g.Lines() {
		for _, ch := range line {
			if ch < 0x2800 || ch > 0x28ff {
				t.Fatalf("non-braille rune %U", ch)
			}
			if ch != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no members drawn")
	}
	// The corner at -2-1.5i lies outside the set.
	if g.At(0, 0) != 0x2800 {
		t.Errorf("corner = %U, want blank", g.At(0, 0))
	}
}

func TestBraille_Invalid(t *testing.T) {
	p := mandel.DefaultParams()
	p.Palette = "x"
	if _, err := Braille(p); err == nil {
		t.Error("expected error")
	}
}

func TestCanvas_GridLines(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimSuffix(c.Grid().String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
}
