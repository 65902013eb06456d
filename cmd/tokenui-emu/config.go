package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/tokenui/internal/config"
)

var configInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the settings file",
	Long: `Print the effective emulator settings and the file they are read from.

With --init the effective settings are written to that file, creating it
and its directory when needed.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write the effective settings to the settings file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.GetConfigPath(); err != nil {
			return err
		}
	}

	if configInit {
		if err := settings.SaveTo(path); err != nil {
			return err
		}
		fmt.Printf("Settings written to %s\n", path)
		return nil
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	fmt.Printf("# %s\n%s", path, data)
	return nil
}
