package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muurk/tokenui/internal/display"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    display.Color
		wantErr bool
	}{
		{"#00aa44", display.RGB(0x00, 0xaa, 0x44), false},
		{"FFFFFF", display.RGB(0xff, 0xff, 0xff), false},
		{" #102030 ", display.RGB(0x10, 0x20, 0x30), false},
		{"#fff", 0, true},
		{"#gg0000", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Cleanup(Reset)

	doc := `
[colors]
green = "#00ff00"
bg = "#101010"

[backlight]
normal = 180

[font]
advance = 10
`
	if err := Load([]byte(doc)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if Green != display.RGB(0, 0xff, 0) {
		t.Errorf("Green = %s", Green.Hex())
	}
	if BG != display.RGB(0x10, 0x10, 0x10) {
		t.Errorf("BG = %s", BG.Hex())
	}
	if BacklightNormal != 180 {
		t.Errorf("BacklightNormal = %d, want 180", BacklightNormal)
	}
	if BacklightLow != 45 {
		t.Errorf("BacklightLow = %d, want unchanged 45", BacklightLow)
	}
	if got := CellSize(); got.X != 10 || got.Y != 16 {
		t.Errorf("CellSize() = %v, want (10, 16)", got)
	}
	if ButtonConfirm().Normal.ButtonColor != Green {
		t.Error("style sheets must read overridden colors")
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown color", "[colors]\npurple = \"#ff00ff\""},
		{"bad color", "[colors]\nred = \"#zz0000\""},
		{"backlight range", "[backlight]\nnormal = 300"},
		{"negative font", "[font]\nadvance = -1"},
		{"not toml", "[colors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Load([]byte(tt.doc)); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.doc)
			}
		})
	}
	if BacklightNormal != 150 || Red != display.RGB(0xe0, 0x44, 0x44) {
		t.Error("failed Load must leave the theme untouched")
	}
}

func TestLoadFile(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("[backlight]\ndim = 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if BacklightDim != 9 {
		t.Errorf("BacklightDim = %d, want 9", BacklightDim)
	}
	if err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFile() on a missing file succeeded")
	}
}

func TestBorders(t *testing.T) {
	b := Borders()
	if b.X0 != 10 || b.Y0 != 5 || b.X1 != 235 || b.Y1 != 230 {
		t.Errorf("Borders() = %v", b)
	}
}
