// Package layout is the boundary between the component tree and its host.
//
// A Layout owns a root component and translates the root's messages into a
// Result. Constructors build the standard screens: ConfirmAction,
// RequestPin and RequestPassphrase. The host feeds events with Event, paints
// with Paint, schedules the timers returned by Timers and delivers each
// expired timer back as a component.TimerEvent.
package layout
