// Package theme defines the visual configuration widgets draw with: a
// color palette, widget metrics, and named text styles, with light and
// dark defaults and YAML file loading for user overrides.
package theme

import "github.com/go-drift/ember/pkg/graphics"

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns "light" or "dark".
func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// Palette is the theme's color set. Widgets take every color they draw
// from here.
type Palette struct {
	// Background is the window background.
	Background graphics.Color
	// Surface is the fill for panels, popups, and modal windows.
	Surface graphics.Color
	// SurfaceRaised is the fill for elements layered above a surface.
	SurfaceRaised graphics.Color
	// Primary is the accent for active elements: checked boxes, slider
	// fill, selected items.
	Primary graphics.Color
	// OnPrimary is text and glyphs drawn over Primary.
	OnPrimary graphics.Color
	// Text is the default text color.
	Text graphics.Color
	// TextMuted is secondary text: captions, placeholders, disabled labels.
	TextMuted graphics.Color
	// Border is the default outline color.
	Border graphics.Color
	// Focus is the outline color for the focused widget.
	Focus graphics.Color
	// Hover is the fill overlay while the pointer is over a widget.
	Hover graphics.Color
	// Pressed is the fill overlay while a widget is held down.
	Pressed graphics.Color
	// Error is the color for error text and invalid outlines.
	Error graphics.Color
}

// Metrics are the shared widget dimensions in logical pixels.
type Metrics struct {
	// Spacing is the default gap between siblings in a box or grid.
	Spacing float64
	// Padding is the default inner padding of filled widgets.
	Padding float64
	// ButtonHeight is the default button height.
	ButtonHeight float64
	// CheckboxSize is the checkbox edge length.
	CheckboxSize float64
	// SliderHeight is the slider hit-region height.
	SliderHeight float64
	// SliderKnobSize is the slider knob diameter.
	SliderKnobSize float64
	// EntryHeight is the text entry height.
	EntryHeight float64
	// ScrollbarWidth is the scroll region gutter width.
	ScrollbarWidth float64
	// PanelBorder is the resizable panel drag-border thickness.
	PanelBorder float64
	// TreeIndent is the horizontal indent per tree nesting level.
	TreeIndent float64
	// MenuItemHeight is the height of one context menu row.
	MenuItemHeight float64
	// CornerRadius is the default corner rounding.
	CornerRadius float64
	// BorderWidth is the default outline stroke width.
	BorderWidth float64
}

// TextStyle is a named typography role: face family, size, and color.
type TextStyle struct {
	Family string
	Size   float64
	Color  graphics.Color
}

// ThemeData contains all theme configuration for a session.
type ThemeData struct {
	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness
	// Palette defines the color set.
	Palette Palette
	// Metrics defines the shared widget dimensions.
	Metrics Metrics

	// Text styles by role.
	Body    TextStyle
	Heading TextStyle
	Caption TextStyle
	Mono    TextStyle
}

// DefaultMetrics returns the metrics both default themes share.
func DefaultMetrics() Metrics {
	return Metrics{
		Spacing:        8,
		Padding:        8,
		ButtonHeight:   28,
		CheckboxSize:   18,
		SliderHeight:   20,
		SliderKnobSize: 14,
		EntryHeight:    26,
		ScrollbarWidth: 12,
		PanelBorder:    4,
		TreeIndent:     16,
		MenuItemHeight: 24,
		CornerRadius:   4,
		BorderWidth:    1,
	}
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	p := Palette{
		Background:    graphics.RGB(0xF2, 0xF2, 0xF5),
		Surface:       graphics.RGB(0xFF, 0xFF, 0xFF),
		SurfaceRaised: graphics.RGB(0xFA, 0xFA, 0xFC),
		Primary:       graphics.RGB(0x2A, 0x6B, 0xD4),
		OnPrimary:     graphics.RGB(0xFF, 0xFF, 0xFF),
		Text:          graphics.RGB(0x1A, 0x1C, 0x1E),
		TextMuted:     graphics.RGB(0x6E, 0x72, 0x78),
		Border:        graphics.RGB(0xC4, 0xC8, 0xCE),
		Focus:         graphics.RGB(0x2A, 0x6B, 0xD4),
		Hover:         graphics.RGBA8(0x00, 0x00, 0x00, 0x14),
		Pressed:       graphics.RGBA8(0x00, 0x00, 0x00, 0x29),
		Error:         graphics.RGB(0xBA, 0x1A, 0x1A),
	}
	return themeFromPalette(BrightnessLight, p)
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	p := Palette{
		Background:    graphics.RGB(0x1A, 0x1C, 0x1E),
		Surface:       graphics.RGB(0x24, 0x26, 0x2A),
		SurfaceRaised: graphics.RGB(0x2E, 0x31, 0x36),
		Primary:       graphics.RGB(0x6B, 0xA3, 0xF5),
		OnPrimary:     graphics.RGB(0x10, 0x24, 0x44),
		Text:          graphics.RGB(0xE4, 0xE6, 0xE9),
		TextMuted:     graphics.RGB(0x93, 0x98, 0x9F),
		Border:        graphics.RGB(0x45, 0x49, 0x50),
		Focus:         graphics.RGB(0x6B, 0xA3, 0xF5),
		Pressed:       graphics.RGBA8(0xFF, 0xFF, 0xFF, 0x29),
		Hover:         graphics.RGBA8(0xFF, 0xFF, 0xFF, 0x14),
		Error:         graphics.RGB(0xFF, 0xB4, 0xAB),
	}
	return themeFromPalette(BrightnessDark, p)
}

func themeFromPalette(b Brightness, p Palette) *ThemeData {
	return &ThemeData{
		Brightness: b,
		Palette:    p,
		Metrics:    DefaultMetrics(),
		Body:       TextStyle{Size: 13, Color: p.Text},
		Heading:    TextStyle{Size: 17, Color: p.Text},
		Caption:    TextStyle{Size: 11, Color: p.TextMuted},
		Mono:       TextStyle{Family: "mono", Size: 12, Color: p.Text},
	}
}

// Copy returns an independent copy of the theme, so callers can mutate
// without affecting the original.
func (t *ThemeData) Copy() *ThemeData {
	c := *t
	return &c
}
