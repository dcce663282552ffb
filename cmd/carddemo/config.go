package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/card"
)

// Scene describes one card render. Fields missing from a scene file
// keep their defaults.
type Scene struct {
	Width        int     `yaml:"width" toml:"width"`
	Height       int     `yaml:"height" toml:"height"`
	Padding      Padding `yaml:"padding" toml:"padding"`
	CornerRadius float64 `yaml:"corner_radius" toml:"corner_radius"`
	Elevation    float64 `yaml:"elevation" toml:"elevation"`

	Shadow ShadowConfig `yaml:"shadow" toml:"shadow"`

	Fill       string `yaml:"fill" toml:"fill"`
	Background string `yaml:"background" toml:"background"`
	Output     string `yaml:"output" toml:"output"`
}

// Padding is either a single number or a per-side mapping:
//
//	padding: 10
//	padding: {left: 4, top: 8, right: 4, bottom: 16}
//
// TOML files only accept the table form.
type Padding card.Insets

// UnmarshalYAML accepts the scalar and mapping forms.
func (p *Padding) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("padding: %w", err)
		}
		*p = Padding(card.UniformInsets(v))
		return nil
	}

	var sides struct {
		Left   float64 `yaml:"left"`
		Top    float64 `yaml:"top"`
		Right  float64 `yaml:"right"`
		Bottom float64 `yaml:"bottom"`
	}
	if err := node.Decode(&sides); err != nil {
		return fmt.Errorf("padding: %w", err)
	}
	*p = Padding{Left: sides.Left, Top: sides.Top, Right: sides.Right, Bottom: sides.Bottom}
	return nil
}

// ShadowConfig tunes the elevation-to-blur mapping and shadow paint.
type ShadowConfig struct {
	MaxElevation float64 `yaml:"max_elevation" toml:"max_elevation"`
	MaxRadius    float64 `yaml:"max_radius" toml:"max_radius"`
	Density      float64 `yaml:"density" toml:"density"`
	Opacity      float64 `yaml:"opacity" toml:"opacity"`
	Color        string  `yaml:"color" toml:"color"`
}

// DefaultScene returns the scene used when no config file is given.
func DefaultScene() Scene {
	return Scene{
		Width:        200,
		Height:       150,
		Padding:      Padding(card.UniformInsets(10)),
		CornerRadius: 10,
		Elevation:    card.DefaultMaxElevation,
		Shadow: ShadowConfig{
			MaxElevation: card.DefaultMaxElevation,
			MaxRadius:    card.DefaultMaxRadius,
			Density:      card.DefaultDensity,
			Opacity:      card.DefaultShadowOpacity,
			Color:        "#000000",
		},
		Fill:       "#ffffff",
		Background: "#eeeeee",
		Output:     "card.png",
	}
}

// LoadOptional reads the scene file at path over the defaults. Files
// ending in .toml are parsed as TOML, anything else as YAML. An empty
// path or a missing file yields the defaults.
func LoadOptional(path string) (Scene, error) {
	sc := DefaultScene()
	if path == "" {
		return sc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sc, nil
		}
		return Scene{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	unmarshal := yaml.Unmarshal
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		unmarshal = toml.Unmarshal
	}
	if err := unmarshal(data, &sc); err != nil {
		return Scene{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return sc, nil
}

// Validate reports the first unusable value.
func (sc Scene) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d: %w", sc.Width, sc.Height, card.ErrInvalidDimension)
	}
	if sc.Shadow.Density <= 0 {
		return fmt.Errorf("invalid density %v", sc.Shadow.Density)
	}
	for name, v := range map[string]string{
		"fill":         sc.Fill,
		"background":   sc.Background,
		"shadow.color": sc.Shadow.Color,
	} {
		if !validHex(v) {
			return fmt.Errorf("invalid %s color %q", name, v)
		}
	}
	if strings.TrimSpace(sc.Output) == "" {
		return errors.New("output path is empty")
	}
	return nil
}

// Options converts the scene into renderer options.
func (sc Scene) Options() []card.Option {
	return []card.Option{
		card.WithElevationScale(card.ElevationScale{
			MaxRadius:    sc.Shadow.MaxRadius,
			MaxElevation: sc.Shadow.MaxElevation,
			Density:      sc.Shadow.Density,
		}),
		card.WithShadowOpacity(sc.Shadow.Opacity),
		card.WithShadowColor(card.Hex(sc.Shadow.Color)),
		card.WithFillColor(card.Hex(sc.Fill)),
		card.WithCornerRadius(sc.CornerRadius),
		card.WithElevation(sc.Elevation),
	}
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}
