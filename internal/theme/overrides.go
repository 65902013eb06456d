package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/muurk/tokenui/internal/display"
)

// Overrides is the TOML document accepted by LoadFile.
type Overrides struct {
	Colors    map[string]string `toml:"colors"`
	Backlight struct {
		Normal *int `toml:"normal"`
		Low    *int `toml:"low"`
		Dim    *int `toml:"dim"`
	} `toml:"backlight"`
	Font struct {
		Advance    int `toml:"advance"`
		LineHeight int `toml:"line_height"`
	} `toml:"font"`
}

// LoadFile reads theme overrides from a TOML file and applies them.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme file: %w", err)
	}
	return Load(data)
}

// Load parses TOML overrides and applies them.
func Load(data []byte) error {
	var o Overrides
	if err := toml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse theme: %w", err)
	}
	return Apply(o)
}

// Apply validates every override before changing anything, so a bad document
// leaves the theme untouched.
func Apply(o Overrides) error {
	colors := map[string]*display.Color{
		"bg":          &BG,
		"fg":          &FG,
		"grey_light":  &GreyLight,
		"grey_medium": &GreyMedium,
		"grey_dark":   &GreyDark,
		"red":         &Red,
		"red_dark":    &RedDark,
		"green":       &Green,
		"green_dark":  &GreenDark,
		"yellow":      &Yellow,
	}

	parsed := make(map[*display.Color]display.Color, len(o.Colors))
	for name, value := range o.Colors {
		dst, ok := colors[name]
		if !ok {
			return fmt.Errorf("unknown theme color %q", name)
		}
		c, err := ParseColor(value)
		if err != nil {
			return fmt.Errorf("theme color %q: %w", name, err)
		}
		parsed[dst] = c
	}

	levels := []*int{o.Backlight.Normal, o.Backlight.Low, o.Backlight.Dim}
	for _, l := range levels {
		if l != nil && (*l < 0 || *l > display.MaxBacklight) {
			return fmt.Errorf("backlight level %d out of range 0..%d", *l, display.MaxBacklight)
		}
	}
	if o.Font.Advance < 0 || o.Font.LineHeight < 0 {
		return fmt.Errorf("font metrics must not be negative")
	}

	for dst, c := range parsed {
		*dst = c
	}
	if o.Backlight.Normal != nil {
		BacklightNormal = *o.Backlight.Normal
	}
	if o.Backlight.Low != nil {
		BacklightLow = *o.Backlight.Low
	}
	if o.Backlight.Dim != nil {
		BacklightDim = *o.Backlight.Dim
	}
	if o.Font.Advance > 0 || o.Font.LineHeight > 0 {
		advance, line := CellSize().X, CellSize().Y
		if o.Font.Advance > 0 {
			advance = o.Font.Advance
		}
		if o.Font.LineHeight > 0 {
			line = o.Font.LineHeight
		}
		setFonts(advance, line)
	}
	return nil
}

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(s string) (display.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return display.Color(v), nil
}
