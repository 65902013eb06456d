// Package geometry provides the integer geometry used by the touchscreen UI:
// points, offsets, rectangles, insets and the grid and linear layouts that
// partition the display into widget areas.
//
// All coordinates are display pixels with the origin in the top-left corner.
// Rectangles are half-open: a Rect contains X0 <= x < X1 and Y0 <= y < Y1.
//
// # Contract Violations
//
// Layout helpers panic on programming errors such as a grid cell index out
// of range or a grid with no rows. These are never caused by user input and
// must abort construction rather than produce corrupt geometry.
package geometry
