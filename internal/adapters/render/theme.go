package render

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme holds the canvas geometry and color palette used by the Renderer.
// It is loaded once at process start and treated as immutable afterwards so
// rendering stays a pure function of its inputs.
type Theme struct {
	Width   int
	Height  int
	Padding int

	Background color.RGBA
	Text       color.RGBA
	Muted      color.RGBA
	Accent     color.RGBA
	Border     color.RGBA
	Avatar     color.RGBA
}

// rawTheme represents the YAML structure.
type rawTheme struct {
	Canvas struct {
		Width   int `yaml:"width"`
		Height  int `yaml:"height"`
		Padding int `yaml:"padding"`
	} `yaml:"canvas"`
	Colors struct {
		Background string `yaml:"background"`
		Text       string `yaml:"text"`
		Muted      string `yaml:"muted"`
		Accent     string `yaml:"accent"`
		Border     string `yaml:"border"`
		Avatar     string `yaml:"avatar"`
	} `yaml:"colors"`
}

// DefaultTheme returns the built-in Twitter-like palette on a 598x500 canvas.
func DefaultTheme() *Theme {
	return &Theme{
		Width:      598,
		Height:     500,
		Padding:    16,
		Background: color.RGBA{255, 255, 255, 255},
		Text:       color.RGBA{15, 20, 25, 255},
		Muted:      color.RGBA{83, 100, 113, 255},
		Accent:     color.RGBA{29, 155, 240, 255},
		Border:     color.RGBA{239, 243, 244, 255},
		Avatar:     color.RGBA{207, 217, 222, 255},
	}
}

// LoadTheme loads a theme from a YAML file. Missing canvas values fall back
// to the defaults; a malformed color is a configuration error.
func LoadTheme(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}

	var raw rawTheme
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}

	theme := DefaultTheme()
	if raw.Canvas.Width > 0 {
		theme.Width = raw.Canvas.Width
	}
	if raw.Canvas.Height > 0 {
		theme.Height = raw.Canvas.Height
	}
	if raw.Canvas.Padding > 0 {
		theme.Padding = raw.Canvas.Padding
	}

	for _, c := range []struct {
		hex string
		dst *color.RGBA
	}{
		{raw.Colors.Background, &theme.Background},
		{raw.Colors.Text, &theme.Text},
		{raw.Colors.Muted, &theme.Muted},
		{raw.Colors.Accent, &theme.Accent},
		{raw.Colors.Border, &theme.Border},
		{raw.Colors.Avatar, &theme.Avatar},
	} {
		if c.hex == "" {
			continue
		}
		parsed, err := parseHexColor(c.hex)
		if err != nil {
			return nil, fmt.Errorf("parse theme color %q: %w", c.hex, err)
		}
		*c.dst = parsed
	}

	return theme, nil
}

// parseHexColor parses "#rrggbb" into an opaque RGBA color.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{r, g, b, 255}, nil
}
