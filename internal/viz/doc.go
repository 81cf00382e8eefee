// Package viz provides terminal presentation for renders.
//
// The package implements interactive views using the Bubble Tea framework:
//
//   - [Live]: scroll animation of a render with depth coloring
//   - [Browser]: preset picker that opens a region in [Live]
//   - [Braille]: 2x4 sub-pixel rendering of set membership
//   - [WaitForKey]: press-any-key prompt
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume scrolling
//	N/P   - Step one row
//	M     - Toggle mirror image
//	R     - Reset to the first row
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// Recordings rasterize the escape depth of every cell, one colored block
// per character, and are saved as an animated GIF.
package viz
