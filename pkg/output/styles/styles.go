// Package styles defines the visual styling for terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. The definitions live in the embedded styles.yaml
// and can be replaced at runtime with Load.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginLeft   int    `yaml:"marginLeft,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles bound to one renderer
type Registry struct {
	styles map[string]lipgloss.Style
	base   lipgloss.Style
}

// Default builds the embedded styles for r
func Default(r *lipgloss.Renderer) *Registry {
	reg, err := Load(defaultStyles, r)
	if err != nil {
		panic(fmt.Sprintf("embedded styles.yaml: %v", err))
	}
	return reg
}

// Load parses a styles document and builds its styles for r
func Load(data []byte, r *lipgloss.Renderer) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := &Registry{
		styles: make(map[string]lipgloss.Style, len(config.Styles)),
		base:   r.NewStyle(),
	}
	for name, def := range config.Styles {
		reg.styles[name] = buildStyle(r.NewStyle(), def, colors)
	}
	return reg, nil
}

// buildStyle applies a style definition on top of style
func buildStyle(style lipgloss.Style, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// Get returns the named style, or an unstyled one when it is not defined
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return r.base
}

// Has reports whether name is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Render applies the named style to s
func (r *Registry) Render(name, s string) string {
	return r.Get(name).Render(s)
}
