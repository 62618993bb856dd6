package ui

import (
	_ "embed"

	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// colorDef is an adaptive color in styles.yaml.
type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// styleDef is a style in styles.yaml. Colors refer to the colors section
// by name.
type styleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

type stylesConfig struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Styles maps semantic names to lipgloss styles.
type Styles map[string]lipgloss.Style

// DefaultStyles returns the built-in styles bound to r. A broken embedded
// file yields unstyled output rather than a failure.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	s, err := ParseStyles(embeddedStyles, r)
	if err != nil {
		return Styles{}
	}
	return s
}

// ParseStyles builds styles from a styles.yaml document. Styles are bound
// to r, or to the default renderer when r is nil.
func ParseStyles(data []byte, r *lipgloss.Renderer) (Styles, error) {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var cfg stylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "failed to parse styles")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(Styles, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := r.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Italic {
			style = style.Italic(true)
		}
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
		styles[name] = style
	}
	return styles, nil
}

// Get returns the named style, or an empty style when it is not defined.
func (s Styles) Get(name string) lipgloss.Style {
	if style, ok := s[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
