// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for a recording run.
type Config struct {
	// Output
	OutputPath string `yaml:"output"`

	// Geometry and timing
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	FPS        int `yaml:"fps"`
	DurationMs int `yaml:"duration_ms"`

	// Encoding
	Codec      string `yaml:"codec"`
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Test pattern
	BackgroundColor string `yaml:"background_color"`
	AccentColor     string `yaml:"accent_color"`
	Supersample     int    `yaml:"supersample"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Width:      640,
		Height:     360,
		FPS:        30,
		DurationMs: 3000,

		Codec: "h264",

		BackgroundColor: "#1a1a2e",
		AccentColor:     "#4ade80",

		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
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

// ParseColor parses a hex color string (e.g. "#1a1a2e") to color.Color,
// falling back to black for malformed input.
func ParseColor(hex string) color.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.Black
	}

	return color.RGBA{
		R: hexValue(hex[0])<<4 | hexValue(hex[1]),
		G: hexValue(hex[2])<<4 | hexValue(hex[3]),
		B: hexValue(hex[4])<<4 | hexValue(hex[5]),
		A: 255,
	}
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
