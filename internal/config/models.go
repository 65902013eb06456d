package config

import (
	"fmt"
	"time"
)

// CurrentVersion is the settings file format version.
const CurrentVersion = 1

// Defaults.
const (
	DefaultScale         = 1
	DefaultFadeStep      = 12 * time.Millisecond
	DefaultDebugLinkAddr = "127.0.0.1:21325"
)

// Registry represents the entire settings file.
type Registry struct {
	Version   int             `yaml:"version"`
	Display   *DisplayPrefs   `yaml:"display,omitempty"`
	DebugLink *DebugLinkPrefs `yaml:"debuglink,omitempty"`
	Theme     *ThemePrefs     `yaml:"theme,omitempty"`
}

// DisplayPrefs controls how the emulated screen is rendered.
type DisplayPrefs struct {
	Scale    int           `yaml:"scale"`     // Terminal cells per font cell, 1 or 2
	FadeStep time.Duration `yaml:"fade_step"` // Delay between backlight fade steps
}

// DebugLinkPrefs configures the remote-control channel.
type DebugLinkPrefs struct {
	Addr      string `yaml:"addr"`      // Listen address of the WebSocket endpoint
	Advertise bool   `yaml:"advertise"` // Register the endpoint over mDNS
}

// ThemePrefs points at an optional theme override file.
type ThemePrefs struct {
	File string `yaml:"file,omitempty"` // TOML file with color, backlight and font overrides
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	r := &Registry{Version: CurrentVersion}
	r.fillDefaults()
	return r
}

// fillDefaults initializes missing sections and zero values.
func (r *Registry) fillDefaults() {
	if r.Display == nil {
		r.Display = &DisplayPrefs{}
	}
	if r.Display.Scale == 0 {
		r.Display.Scale = DefaultScale
	}
	if r.Display.FadeStep == 0 {
		r.Display.FadeStep = DefaultFadeStep
	}
	if r.DebugLink == nil {
		r.DebugLink = &DebugLinkPrefs{}
	}
	if r.DebugLink.Addr == "" {
		r.DebugLink.Addr = DefaultDebugLinkAddr
	}
	if r.Theme == nil {
		r.Theme = &ThemePrefs{}
	}
}

// Validate checks value ranges.
func (r *Registry) Validate() error {
	if r.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", r.Version, CurrentVersion)
	}
	if r.Display.Scale < 1 || r.Display.Scale > 2 {
		return fmt.Errorf("display scale must be 1 or 2, got %d", r.Display.Scale)
	}
	if r.Display.FadeStep < 0 {
		return fmt.Errorf("fade step must not be negative, got %v", r.Display.FadeStep)
	}
	return nil
}
