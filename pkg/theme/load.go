package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/ember/pkg/errors"
	"github.com/go-drift/ember/pkg/graphics"
)

// SchemaVersion is the theme file schema this build reads. Files with a
// different major version are rejected.
const SchemaVersion = "v1.0.0"

// fileTheme is the YAML shape of a theme file. Every section is optional;
// missing entries keep the default theme's values.
type fileTheme struct {
	Version    string             `yaml:"version"`
	Brightness string             `yaml:"brightness"`
	Colors     map[string]string  `yaml:"colors"`
	Metrics    map[string]float64 `yaml:"metrics"`
	Text       map[string]struct {
		Family string  `yaml:"family"`
		Size   float64 `yaml:"size"`
		Color  string  `yaml:"color"`
	} `yaml:"text"`
}

// LoadFile reads a theme overlay from a YAML file. The result starts from
// the default theme for the file's brightness with the file's entries
// applied on top.
func LoadFile(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.UIError{Op: "theme.LoadFile", Kind: errors.KindConfig, Err: err}
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML theme overlay. See LoadFile.
func Parse(data []byte) (*ThemeData, error) {
	var f fileTheme
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &errors.UIError{Op: "theme.Parse", Kind: errors.KindConfig, Err: err}
	}
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}

	var t *ThemeData
	switch f.Brightness {
	case "", "light":
		t = DefaultLightTheme()
	case "dark":
		t = DefaultDarkTheme()
	default:
		return nil, configErrorf("theme.Parse", "unknown brightness %q", f.Brightness)
	}

	for name, hex := range f.Colors {
		dst := t.Palette.colorByName(name)
		if dst == nil {
			return nil, configErrorf("theme.Parse", "unknown color %q", name)
		}
		c, err := ParseColor(hex)
		if err != nil {
			return nil, err
		}
		*dst = c
	}
	for name, v := range f.Metrics {
		dst := t.Metrics.metricByName(name)
		if dst == nil {
			return nil, configErrorf("theme.Parse", "unknown metric %q", name)
		}
		if v < 0 {
			return nil, configErrorf("theme.Parse", "metric %q is negative", name)
		}
		*dst = v
	}
	for name, s := range f.Text {
		dst := t.textByName(name)
		if dst == nil {
			return nil, configErrorf("theme.Parse", "unknown text style %q", name)
		}
		if s.Family != "" {
			dst.Family = s.Family
		}
		if s.Size > 0 {
			dst.Size = s.Size
		}
		if s.Color != "" {
			c, err := ParseColor(s.Color)
			if err != nil {
				return nil, err
			}
			dst.Color = c
		}
	}
	return t, nil
}

// checkVersion gates the file's declared schema version: it must be valid
// semver with the same major version as SchemaVersion.
func checkVersion(v string) error {
	if v == "" {
		return configErrorf("theme.Parse", "missing schema version (current is %s)", SchemaVersion)
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return configErrorf("theme.Parse", "invalid schema version %q", v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return configErrorf("theme.Parse", "schema version %s not supported (current is %s)", v, SchemaVersion)
	}
	return nil
}

// ParseColor decodes "#RGB", "#RRGGBB", or "#AARRGGBB" hex notation.
// Colors without an alpha component are opaque.
func ParseColor(s string) (graphics.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, configErrorf("theme.ParseColor", "color %q must start with '#'", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, configErrorf("theme.ParseColor", "invalid color %q", s)
	}
	switch len(hex) {
	case 3:
		r := uint8(v >> 8 & 0xF)
		g := uint8(v >> 4 & 0xF)
		b := uint8(v & 0xF)
		return graphics.RGB(r<<4|r, g<<4|g, b<<4|b), nil
	case 6:
		return graphics.Color(0xFF000000 | v), nil
	case 8:
		return graphics.Color(v), nil
	default:
		return 0, configErrorf("theme.ParseColor", "invalid color %q", s)
	}
}

func configErrorf(op, format string, args ...any) error {
	return &errors.UIError{Op: op, Kind: errors.KindConfig, Err: fmt.Errorf(format, args...)}
}

func (p *Palette) colorByName(name string) *graphics.Color {
	switch name {
	case "background":
		return &p.Background
	case "surface":
		return &p.Surface
	case "surface-raised":
		return &p.SurfaceRaised
	case "primary":
		return &p.Primary
	case "on-primary":
		return &p.OnPrimary
	case "text":
		return &p.Text
	case "text-muted":
		return &p.TextMuted
	case "border":
		return &p.Border
	case "focus":
		return &p.Focus
	case "hover":
		return &p.Hover
	case "pressed":
		return &p.Pressed
	case "error":
		return &p.Error
	}
	return nil
}

func (m *Metrics) metricByName(name string) *float64 {
	switch name {
	case "spacing":
		return &m.Spacing
	case "padding":
		return &m.Padding
	case "button-height":
		return &m.ButtonHeight
	case "checkbox-size":
		return &m.CheckboxSize
	case "slider-height":
		return &m.SliderHeight
	case "slider-knob-size":
		return &m.SliderKnobSize
	case "entry-height":
		return &m.EntryHeight
	case "scrollbar-width":
		return &m.ScrollbarWidth
	case "panel-border":
		return &m.PanelBorder
	case "tree-indent":
		return &m.TreeIndent
	case "menu-item-height":
		return &m.MenuItemHeight
	case "corner-radius":
		return &m.CornerRadius
	case "border-width":
		return &m.BorderWidth
	}
	return nil
}

func (t *ThemeData) textByName(name string) *TextStyle {
	switch name {
	case "body":
		return &t.Body
	case "heading":
		return &t.Heading
	case "caption":
		return &t.Caption
	case "mono":
		return &t.Mono
	}
	return nil
}
