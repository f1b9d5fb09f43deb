package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Frame geometry and color defaults.
const (
	DefaultMinWidth    = 600
	DefaultMinHeight   = 400
	DefaultInset       = 5
	DefaultTitleHeight = 18

	DefaultBackground = "yellow"
	DefaultBorder     = "red"
	DefaultText       = "black"

	maxDimension = 0xffff
)

// Config holds the application configuration.
type Config struct {
	// Display is the X display to manage; empty uses $DISPLAY.
	Display string `yaml:"display,omitempty" env:"DISPLAY"`
	// XAuthority is exported as XAUTHORITY before connecting when set.
	XAuthority string      `yaml:"xauthority,omitempty" env:"XAUTHORITY"`
	Font       string      `yaml:"font,omitempty" env:"FONT"`
	LogLevel   string      `yaml:"log_level" env:"LOG_LEVEL"`
	Frame      FrameConfig `yaml:"frame" envPrefix:"FRAME_"`
	Colors     ColorConfig `yaml:"colors" envPrefix:"COLORS_"`
}

// FrameConfig sizes frames and the clients inside them.
type FrameConfig struct {
	MinWidth    int `yaml:"min_width" env:"MIN_WIDTH"`
	MinHeight   int `yaml:"min_height" env:"MIN_HEIGHT"`
	Inset       int `yaml:"inset" env:"INSET"`
	TitleHeight int `yaml:"title_height" env:"TITLE_HEIGHT"`
}

// ColorConfig holds X color names for frame decorations.
type ColorConfig struct {
	Background string `yaml:"background" env:"BACKGROUND"`
	Border     string `yaml:"border" env:"BORDER"`
	Text       string `yaml:"text" env:"TEXT"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Frame: FrameConfig{
			MinWidth:    DefaultMinWidth,
			MinHeight:   DefaultMinHeight,
			Inset:       DefaultInset,
			TitleHeight: DefaultTitleHeight,
		},
		Colors: ColorConfig{
			Background: DefaultBackground,
			Border:     DefaultBorder,
			Text:       DefaultText,
		},
	}
}

// ValidationError reports an invalid setting and where it came from.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Source.Kind == SourceEnv && e.Source.Name != "" {
		return fmt.Sprintf("$%s: %s: %v", e.Source.Name, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}

	dims := []struct {
		path  string
		value int
	}{
		{"frame.min_width", c.Frame.MinWidth},
		{"frame.min_height", c.Frame.MinHeight},
		{"frame.inset", c.Frame.Inset},
		{"frame.title_height", c.Frame.TitleHeight},
	}
	for _, d := range dims {
		if d.value < 1 || d.value > maxDimension {
			return &ValidationError{Path: d.path, Err: fmt.Errorf("must be between 1 and %d", maxDimension)}
		}
	}
	if 2*c.Frame.Inset >= c.Frame.MinWidth || 2*c.Frame.Inset >= c.Frame.MinHeight {
		return &ValidationError{Path: "frame.inset", Err: fmt.Errorf("inset leaves no room for the client")}
	}

	colors := []struct {
		path  string
		value string
	}{
		{"colors.background", c.Colors.Background},
		{"colors.border", c.Colors.Border},
		{"colors.text", c.Colors.Text},
	}
	for _, col := range colors {
		if strings.TrimSpace(col.value) == "" {
			return &ValidationError{Path: col.path, Err: fmt.Errorf("color name is required")}
		}
	}
	return nil
}

// ParseLogLevel maps a log_level value onto a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
}
