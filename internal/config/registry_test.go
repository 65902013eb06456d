package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS == "linux" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "tokenui") {
		t.Errorf("GetConfigDir() = %v, should contain 'tokenui'", configDir)
	}

	if runtime.GOOS == "linux" && configDir != filepath.Join("/tmp/xdg", "tokenui") {
		t.Errorf("GetConfigDir() = %v, want XDG_CONFIG_HOME based path", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != CurrentVersion {
		t.Errorf("Version = %v, want %v", reg.Version, CurrentVersion)
	}
	if reg.Display.Scale != DefaultScale || reg.Display.FadeStep != DefaultFadeStep {
		t.Errorf("Display = %+v", reg.Display)
	}
	if reg.DebugLink.Addr != DefaultDebugLinkAddr || reg.DebugLink.Advertise {
		t.Errorf("DebugLink = %+v", reg.DebugLink)
	}
	if err := reg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg := NewRegistry()
	reg.Display.Scale = 2
	reg.Display.FadeStep = 5 * time.Millisecond
	reg.DebugLink.Addr = "0.0.0.0:9000"
	reg.DebugLink.Advertise = true
	reg.Theme.File = "/etc/tokenui/theme.toml"

	if err := reg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# tokenui emulator settings") {
		t.Errorf("missing header:\n%s", data)
	}

	loaded, err := LoadRegistryFrom(path)
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}
	if *loaded.Display != *reg.Display || *loaded.DebugLink != *reg.DebugLink || *loaded.Theme != *reg.Theme {
		t.Errorf("loaded %+v %+v %+v, want %+v %+v %+v",
			loaded.Display, loaded.DebugLink, loaded.Theme, reg.Display, reg.DebugLink, reg.Theme)
	}
}

func TestLoadRegistryFrom_Missing(t *testing.T) {
	reg, err := LoadRegistryFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}
	if reg.DebugLink.Addr != DefaultDebugLinkAddr {
		t.Errorf("defaults not applied: %+v", reg.DebugLink)
	}
}

func TestUnmarshalRegistry(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantErr   string
		wantScale int
		wantAddr  string
	}{
		{
			name:      "partial file gets defaults",
			yaml:      "version: 1\ndisplay:\n  scale: 2\n",
			wantScale: 2,
			wantAddr:  DefaultDebugLinkAddr,
		},
		{
			name:      "duration string",
			yaml:      "version: 1\ndisplay:\n  fade_step: 20ms\ndebuglink:\n  addr: localhost:1\n",
			wantScale: DefaultScale,
			wantAddr:  "localhost:1",
		},
		{
			name:    "wrong version",
			yaml:    "version: 7\n",
			wantErr: "unsupported config version",
		},
		{
			name:    "scale out of range",
			yaml:    "version: 1\ndisplay:\n  scale: 4\n",
			wantErr: "display scale",
		},
		{
			name:    "invalid yaml",
			yaml:    "version: [",
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := unmarshalRegistry([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if reg.Display.Scale != tt.wantScale || reg.DebugLink.Addr != tt.wantAddr {
				t.Errorf("got scale %d addr %q", reg.Display.Scale, reg.DebugLink.Addr)
			}
		})
	}
}

func TestSaveTo_RejectsInvalid(t *testing.T) {
	reg := NewRegistry()
	reg.Display.Scale = 0
	if err := reg.SaveTo(filepath.Join(t.TempDir(), "config.yaml")); err == nil {
		t.Error("SaveTo() accepted an invalid registry")
	}
}
