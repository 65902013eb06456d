// Package display defines the paint primitives the UI core draws through and
// ships two implementations of them.
//
// The core treats the display as an infallible synchronous device: rectangle
// fills, text drawn at a baseline, icons and the backlight. FadeBacklight
// blocks until the target level is reached, so it runs after the repaint that
// precedes it.
//
// # Implementations
//
//   - Recorder keeps an in-memory log of every primitive. Tests use it to
//     assert what was painted and how often the backlight faded.
//   - Canvas rasterizes into a grid of terminal cells and renders it with
//     lipgloss. The emulator uses it as its screen.
//
// Fonts are described only by their metrics. MonoFont measures text with
// go-runewidth so that wide glyphs take two cells, matching what Canvas draws.
package display
