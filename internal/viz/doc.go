// Package viz renders the morph in a terminal.
//
// The package implements a live TUI using the Bubble Tea framework:
//
//   - [Model]: steps the engine on a fixed tick and draws each frame
//   - [Canvas]: braille canvas with per-cell colors
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to the sphere hold
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// Pressing G starts capturing the full resolution frame buffer; pressing it
// again writes the GIF to the configured path.
package viz
