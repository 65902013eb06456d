// Package config provides the emulator settings file.
//
// The settings are stored as YAML and follow OS-specific conventions for
// their location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/tokenui/config.yaml or $HOME/.config/tokenui/config.yaml
//   - macOS: $HOME/.config/tokenui/config.yaml
//   - Windows: %LOCALAPPDATA%\tokenui\config.yaml
//
// # Security
//
// PINs and passphrases entered in the emulator are never written to this
// file.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//	registry.DebugLink.Addr = "127.0.0.1:21325"
//	if err := registry.Save(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
