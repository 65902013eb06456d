// Package host drives a layout the way the device firmware does: one owner
// of the component tree receives touches and expired timers, dispatches them
// and paints afterwards.
//
// Session is the synchronous driver used directly by tests and the terminal
// emulator. Loop runs a Session on its own goroutine for headless use; other
// goroutines reach the session only through Loop.Do.
package host
