// Package debuglink implements the emulator's remote-control channel.
//
// Test harnesses connect to the WebSocket endpoint /debuglink and exchange
// JSON messages, one request per reply:
//
//	{"type":"touch","phase":"start","x":120,"y":200}
//	{"type":"tap","x":120,"y":200}
//	{"type":"swipe","direction":"left"}
//	{"type":"read_layout"}
//	{"type":"wait_result"}
//
// Replies carry ok, the layout trace after the request, the result once the
// layout finished and an error message on failure.
//
// Requests run through a Driver so that the component tree is only touched
// by the goroutine that owns it.
package debuglink
