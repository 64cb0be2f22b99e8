// Package viz draws contour frames in the terminal.
//
//   - [Canvas]: braille pixel canvas, 2x4 dots per cell
//   - [Viewport]: maps view coordinates onto canvas dots
//   - [DrawFrame]: plots segments, sources and sampled points
//   - [Model]: live Bubble Tea view driven by an engine
//   - [Menu]: preset picker that hands off to a live view
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step while paused
//	S     - Toggle saddle mode (independent/center)
//	P     - Show sampled points above the threshold
//	C     - Show source centers
//	R     - Reset sources to their spawn positions
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
package viz
