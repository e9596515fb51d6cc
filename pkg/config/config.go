// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/seqplay/pkg/player"
	"github.com/user/seqplay/pkg/sheet"
)

// Config represents the full configuration for seqplay.
type Config struct {
	// Playback
	FPS   int `yaml:"fps"`
	Loops int `yaml:"loops"`

	// Contact sheet
	Sheet SheetConfig `yaml:"sheet"`

	// Viewer window
	Viewer ViewerConfig `yaml:"viewer"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// SheetConfig represents contact sheet settings.
type SheetConfig struct {
	Columns     int    `yaml:"columns"`
	ThumbWidth  int    `yaml:"thumb_width"`
	ThumbHeight int    `yaml:"thumb_height"`
	Padding     int    `yaml:"padding"`
	LabelHeight int    `yaml:"label_height"`
	Background  string `yaml:"background_color"`
	LabelColor  string `yaml:"label_color"`
}

// ViewerConfig represents viewer window settings.
type ViewerConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		FPS:   player.DefaultFPS,
		Loops: 1,

		Sheet: SheetConfig{
			Columns:     4,
			ThumbWidth:  160,
			ThumbHeight: 120,
			Padding:     12,
			LabelHeight: 16,
			Background:  "#1e1e1e",
			LabelColor:  "#ffffff",
		},

		Viewer: ViewerConfig{
			Width:  640,
			Height: 480,
			Title:  "seqview",
		},

		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// PlayerOptions converts Config to player.Options.
func (c Config) PlayerOptions() player.Options {
	return player.Options{FPS: c.FPS}
}

// SheetOptions converts Config to sheet.Options.
func (c Config) SheetOptions() sheet.Options {
	opts := sheet.DefaultOptions()
	if c.Sheet.Columns > 0 {
		opts.Columns = c.Sheet.Columns
	}
	if c.Sheet.ThumbWidth > 0 {
		opts.ThumbWidth = c.Sheet.ThumbWidth
	}
	if c.Sheet.ThumbHeight > 0 {
		opts.ThumbHeight = c.Sheet.ThumbHeight
	}
	if c.Sheet.Padding > 0 {
		opts.Padding = c.Sheet.Padding
	}
	if c.Sheet.LabelHeight > 0 {
		opts.LabelHeight = c.Sheet.LabelHeight
	}
	if c.Sheet.Background != "" {
		opts.Background = ParseColor(c.Sheet.Background)
	}
	if c.Sheet.LabelColor != "" {
		opts.LabelColor = ParseColor(c.Sheet.LabelColor)
	}
	return opts
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var r, g, b uint8
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
