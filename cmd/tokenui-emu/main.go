// Tokenui-emu runs the token's touchscreen layouts in a terminal.
//
// Each layout command opens an emulated 240x240 display driven by the
// mouse and arrow keys. The serve command runs a layout headless so that
// tests can operate it through the WebSocket debug link, and discover finds
// emulators advertising that link over mDNS.
//
// Usage:
//
//	tokenui-emu [command] [flags]
//
// See 'tokenui-emu --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tokenui/internal/config"
	"github.com/muurk/tokenui/internal/logging"
	"github.com/muurk/tokenui/internal/theme"
	"github.com/muurk/tokenui/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	themePath  string
	scale      int
)

// settings is the registry loaded before any command runs.
var settings *config.Registry

var rootCmd = &cobra.Command{
	Use:   "tokenui-emu",
	Short: "Token touchscreen UI emulator",
	Long: `Runs the touchscreen layouts of the token in a terminal.

Layout commands (pin, passphrase, confirm) open an interactive emulated
display. Click to touch, drag or use the arrow keys to swipe. The serve
command runs a layout without a terminal UI and exposes it over the
WebSocket debug link for automated tests.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: $XDG_CONFIG_HOME/tokenui/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "", "TOML theme override file (overrides the settings file)")
	rootCmd.PersistentFlags().IntVar(&scale, "scale", 0, "Terminal columns per display cell, 1 or 2 (default from settings)")

	rootCmd.AddCommand(versionCmd)
}

// setup initializes logging, loads the settings registry and applies theme
// overrides.
func setup(cmd *cobra.Command, args []string) error {
	// Silent unless TOKENUI_LOG_LEVEL is set
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}

	var err error
	if configPath != "" {
		settings, err = config.LoadRegistryFrom(configPath)
	} else {
		settings, err = config.LoadRegistry()
	}
	if err != nil {
		return err
	}
	if scale != 0 {
		settings.Display.Scale = scale
		if err := settings.Validate(); err != nil {
			return err
		}
	}

	file := settings.Theme.File
	if themePath != "" {
		file = themePath
	}
	if file != "" {
		if err := theme.LoadFile(file); err != nil {
			return err
		}
		logging.Debug("Theme overrides applied", zap.String("file", file))
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tokenui-emu %s\n", version.Full())
		fmt.Printf("built with %s\n", version.Platform())
	},
}
