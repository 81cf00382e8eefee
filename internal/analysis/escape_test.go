package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/mandelterm/internal/mandel"
)

func TestHistogram(t *testing.T) {
	counts := [][]int{
		{0, 1, 1},
		{2, 0, 7},
	}
	hist := Histogram(counts, 3)

	want := []int{2, 2, 1}
	for i := range want {
		if hist[i] != want[i] {
			t.Errorf("hist[%d] = %d, want %d", i, hist[i], want[i])
		}
	}
}

func TestHistogram_SumsToCells(t *testing.T) {
	p := mandel.DefaultParams()
	hist := Histogram(mandel.Counts(p), p.Iterations())

	total := 0
	for _, n := range hist {
		total += n
	}
	if total != p.Width*p.Height {
		t.Errorf("histogram total %d, want %d", total, p.Width*p.Height)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([][]int{{0, 2}, {4, 0}})

	if s.Cells != 4 || s.Members != 2 {
		t.Errorf("cells=%d members=%d", s.Cells, s.Members)
	}
	if math.Abs(s.MemberRatio-0.5) > 1e-12 {
		t.Errorf("ratio = %f", s.MemberRatio)
	}
	if math.Abs(s.MeanEscape-3) > 1e-12 {
		t.Errorf("mean = %f", s.MeanEscape)
	}
	if s.MaxEscape != 4 {
		t.Errorf("max = %d", s.MaxEscape)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Cells != 0 || s.MemberRatio != 0 || s.MeanEscape != 0 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestRowProfile(t *testing.T) {
	profile := RowProfile([][]int{{0, 0}, {1, 0}, {}})
	want := []float64{1, 0.5, 0}
	for i := range want {
		if profile[i] != want[i] {
			t.Errorf("profile[%d] = %f, want %f", i, profile[i], want[i])
		}
	}
}

func TestPlotHistogram(t *testing.T) {
	out := PlotHistogram([]int{5, 1, 4, 9, 2}, 40)
	if !strings.Contains(out, "cells per escape count (1..4)") {
		t.Errorf("missing caption:\n%s", out)
	}
	if PlotHistogram([]int{3}, 40) != "" {
		t.Error("expected empty plot for single bucket")
	}
}

func TestPlotProfile(t *testing.T) {
	if PlotProfile(nil, 40) != "" {
		t.Error("expected empty plot for no rows")
	}
	if out := PlotProfile([]float64{0, 0.5, 1}, 40); !strings.Contains(out, "member ratio per row") {
		t.Errorf("missing caption:\n%s", out)
	}
}
