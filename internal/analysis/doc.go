// Package analysis summarizes escape counts of a render.
//
//   - [Histogram]: cells per escape count
//   - [Summarize]: member ratio and mean escape depth
//   - [RowProfile]: member ratio per grid row
//   - [PlotHistogram], [PlotProfile]: asciigraph charts of the above
//
// # Example
//
//	counts := mandel.Counts(p)
//	fmt.Println(analysis.PlotHistogram(analysis.Histogram(counts, p.Iterations()), 80))
package analysis
