package analysis

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// Summary describes the distribution of escape counts over a render.
type Summary struct {
	Cells       int     `json:"cells"`
	Members     int     `json:"members"`
	MemberRatio float64 `json:"member_ratio"`
	MeanEscape  float64 `json:"mean_escape"`
	MaxEscape   int     `json:"max_escape"`
}

// Histogram counts cells per escape count. Counts outside [0, n) are dropped.
func Histogram(counts [][]int, n int) []int {
	hist := make([]int, n)
	for _, row := range counts {
		for _, v := range row {
			if v >= 0 && v < n {
				hist[v]++
			}
		}
	}
	return hist
}

// Summarize treats count 0 as a set member; MeanEscape averages the rest.
func Summarize(counts [][]int) Summary {
	var s Summary
	sum := 0
	for _, row := range counts {
		for _, v := range row {
			s.Cells++
			if v == 0 {
				s.Members++
				continue
			}
			sum += v
			if v > s.MaxEscape {
				s.MaxEscape = v
			}
		}
	}
	if s.Cells > 0 {
		s.MemberRatio = float64(s.Members) / float64(s.Cells)
	}
	if escaped := s.Cells - s.Members; escaped > 0 {
		s.MeanEscape = float64(sum) / float64(escaped)
	}
	return s
}

// RowProfile returns the fraction of members in each row.
func RowProfile(counts [][]int) []float64 {
	profile := make([]float64, len(counts))
	for r, row := range counts {
		if len(row) == 0 {
			continue
		}
		members := 0
		for _, v := range row {
			if v == 0 {
				members++
			}
		}
		profile[r] = float64(members) / float64(len(row))
	}
	return profile
}

// PlotHistogram draws the escape histogram, skipping bucket 0 so the set
// interior does not flatten the rest of the curve.
func PlotHistogram(hist []int, width int) string {
	if len(hist) < 2 {
		return ""
	}
	data := make([]float64, len(hist)-1)
	for i := 1; i < len(hist); i++ {
		data[i-1] = float64(hist[i])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("cells per escape count (1..%d)", len(hist)-1)),
	)
}

func PlotProfile(profile []float64, width int) string {
	if len(profile) == 0 {
		return ""
	}
	return asciigraph.Plot(profile,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Caption("member ratio per row"),
	)
}
