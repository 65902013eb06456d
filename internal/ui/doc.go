// Package ui renders the curated terminal output of the tokenui-emu CLI.
//
// The components here are run-once renderers built on lipgloss: they format
// a banner or a result box and return a string, leaving all interaction to
// the emulator front-end.
//
//   - Header: command banner with the command path and its parameters
//   - Result: success, failure or warning box with ordered details
//
// Logging is controlled separately through the TOKENUI_LOG_LEVEL
// environment variable. When it is unset zap stays silent so that the
// boxes rendered by this package are the only output.
package ui
