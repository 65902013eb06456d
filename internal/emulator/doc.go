// Package emulator is the terminal front-end of the token display.
//
// A Bubble Tea model paints a layout onto a display.Canvas and renders the
// canvas with lipgloss. Mouse input in terminal cells is mapped to pixel
// touch events at the cell centers, timers run through tea.Tick and the arrow
// keys synthesize swipes. A Driver lets the debug link operate the same
// session by sending closures into the program.
package emulator
