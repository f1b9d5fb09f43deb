package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

// RawConfig is one config file as written. Nil fields were not set and
// leave the value from earlier files or the defaults in place.
type RawConfig struct {
	Include    IncludeList     `yaml:"include"`
	Display    *string         `yaml:"display"`
	XAuthority *string         `yaml:"xauthority"`
	Font       *string         `yaml:"font"`
	LogLevel   *string         `yaml:"log_level"`
	Frame      *RawFrameConfig `yaml:"frame"`
	Colors     *RawColorConfig `yaml:"colors"`
}

type RawFrameConfig struct {
	MinWidth    *int `yaml:"min_width"`
	MinHeight   *int `yaml:"min_height"`
	Inset       *int `yaml:"inset"`
	TitleHeight *int `yaml:"title_height"`
}

type RawColorConfig struct {
	Background *string `yaml:"background"`
	Border     *string `yaml:"border"`
	Text       *string `yaml:"text"`
}

// merge returns c with every field set in overlay replaced.
func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c
	out.Include = nil
	if overlay.Display != nil {
		out.Display = overlay.Display
	}
	if overlay.XAuthority != nil {
		out.XAuthority = overlay.XAuthority
	}
	if overlay.Font != nil {
		out.Font = overlay.Font
	}
	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.Frame != nil {
		base := RawFrameConfig{}
		if out.Frame != nil {
			base = *out.Frame
		}
		merged := mergeRawFrame(base, *overlay.Frame)
		out.Frame = &merged
	}
	if overlay.Colors != nil {
		base := RawColorConfig{}
		if out.Colors != nil {
			base = *out.Colors
		}
		merged := mergeRawColors(base, *overlay.Colors)
		out.Colors = &merged
	}
	return out
}

func mergeRawFrame(base RawFrameConfig, overlay RawFrameConfig) RawFrameConfig {
	out := base
	if overlay.MinWidth != nil {
		out.MinWidth = overlay.MinWidth
	}
	if overlay.MinHeight != nil {
		out.MinHeight = overlay.MinHeight
	}
	if overlay.Inset != nil {
		out.Inset = overlay.Inset
	}
	if overlay.TitleHeight != nil {
		out.TitleHeight = overlay.TitleHeight
	}
	return out
}

func mergeRawColors(base RawColorConfig, overlay RawColorConfig) RawColorConfig {
	out := base
	if overlay.Background != nil {
		out.Background = overlay.Background
	}
	if overlay.Border != nil {
		out.Border = overlay.Border
	}
	if overlay.Text != nil {
		out.Text = overlay.Text
	}
	return out
}

// BuildEffectiveConfig applies raw on top of the defaults.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.XAuthority != nil {
		cfg.XAuthority = *raw.XAuthority
	}
	if raw.Font != nil {
		cfg.Font = *raw.Font
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if f := raw.Frame; f != nil {
		if f.MinWidth != nil {
			cfg.Frame.MinWidth = *f.MinWidth
		}
		if f.MinHeight != nil {
			cfg.Frame.MinHeight = *f.MinHeight
		}
		if f.Inset != nil {
			cfg.Frame.Inset = *f.Inset
		}
		if f.TitleHeight != nil {
			cfg.Frame.TitleHeight = *f.TitleHeight
		}
	}
	if c := raw.Colors; c != nil {
		if c.Background != nil {
			cfg.Colors.Background = *c.Background
		}
		if c.Border != nil {
			cfg.Colors.Border = *c.Border
		}
		if c.Text != nil {
			cfg.Colors.Text = *c.Text
		}
	}
	return cfg
}
