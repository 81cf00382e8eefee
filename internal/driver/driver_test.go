package driver

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/mandelterm/internal/grid"
	"github.com/san-kum/mandelterm/internal/mandel"
)

func blocks(out string) [][]string {
	var result [][]string
	for _, b := range strings.Split(out, "\n\n") {
		result = append(result, strings.Split(strings.TrimSuffix(b, "\n"), "\n"))
	}
	return result
}

func TestSequence_Layout(t *testing.T) {
	g, _ := grid.FromLines([]string{"ab", "cd", "ef"})
	var buf bytes.Buffer
	if err := Sequence(&buf, g, 4); err != nil {
		t.Fatalf("Sequence: %v", err)
	}

	want := [][]string{
		{"ab", "cd", "ef"},
		{"ba", "dc", "fe"},
		{"ba", "dc", "fe"},
		{"dc", "fe", "ba"},
		{"fe", "ba", "dc"},
		{"ba", "dc", "fe"},
	}
	got := blocks(buf.String())
	if len(got) != len(want) {
		t.Fatalf("got %d blocks, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if strings.Join(got[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("block %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSequence_ZeroFrames(t *testing.T) {
	g, _ := grid.FromLines([]string{"xy"})
	var buf bytes.Buffer
	if err := Sequence(&buf, g, 0); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "xy\n\nyx\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestClassic_Default(t *testing.T) {
	p := mandel.DefaultParams()
	var buf bytes.Buffer
	if err := Classic(&buf, p, DefaultFrames); err != nil {
		t.Fatalf("Classic: %v", err)
	}

	frames := blocks(buf.String())
	if len(frames) != 2+DefaultFrames {
		t.Fatalf("got %d frames, want %d", len(frames), 2+DefaultFrames)
	}
	for i, f := range frames {
		if len(f) != p.Height {
			t.Errorf("frame %d has %d lines, want %d", i, len(f), p.Height)
		}
		for _, line := range f {
			if n := len([]rune(line)); n != p.Width {
				t.Fatalf("frame %d line width %d, want %d", i, n, p.Width)
			}
		}
	}
}

func TestClassic_EndToEnd(t *testing.T) {
	p := mandel.Params{Palette: " X", Width: 3, Height: 1, Bounds: mandel.Region{MinX: 3, MaxX: 4, MinY: 3, MaxY: 4}}
	var buf bytes.Buffer
	if err := Classic(&buf, p, 1); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "XXX\n\nXXX\n\nXXX\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestClassic_InvalidParams(t *testing.T) {
	p := mandel.DefaultParams()
	p.Palette = ""
	if err := Classic(&bytes.Buffer{}, p, 1); !errors.Is(err, mandel.ErrEmptyPalette) {
		t.Errorf("err = %v, want ErrEmptyPalette", err)
	}
}
