// Package logging provides structured logging for the tokenui emulator.
//
// This package wraps a zap logger with convenience functions for the logging
// patterns used by the host loop, the debug link and the CLI. Logging is
// silent unless a level is configured.
//
// # Log Levels
//
//   - Debug: every dispatched event and debug-link frame
//   - Info: layout results, debug-link connections, service start/stop
//   - Warn: rejected debug-link requests, discovery failures
//   - Error: startup failures
//
// # Structured Logging
//
//	logging.Info("Debug link listening",
//	    zap.String("addr", "127.0.0.1:21325"),
//	)
//
// # Specialized Logging
//
//	logging.LogEvent("request_pin", ev)
//	logging.LogResult("request_pin", "confirmed")
//	logging.LogDebuglinkMessage(remoteAddr, "received", payload)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The level is read from TOKENUI_LOG_LEVEL when no level is given.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
