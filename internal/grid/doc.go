// Package grid provides a fixed-size character grid and the transforms
// applied to rendered frames:
//
//   - [Print]: writes a grid to a stream, one row per line
//   - [Mirror]: reverses every row left to right
//   - [Scroll]: circular shift of rows upward by one
//
// All transforms return a new grid and never modify their input.
//
// # Example
//
//	g := grid.New(30, 95)
//	g.Set(0, 0, '#')
//	_ = grid.Print(os.Stdout, grid.Mirror(g))
package grid
