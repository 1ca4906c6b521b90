package theme

import (
	"strings"
	"testing"

	"github.com/go-drift/ember/pkg/graphics"
)

// Test that a theme file overlays the defaults: named entries change,
// everything else keeps the default value.
func TestParseOverlaysDefaults(t *testing.T) {
	src := `
version: v1.0.0
brightness: dark
colors:
  primary: "#FF8800"
metrics:
  spacing: 12
text:
  heading:
    size: 20
`
	th, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Brightness != BrightnessDark {
		t.Errorf("brightness = %v, want dark", th.Brightness)
	}
	if got, want := th.Palette.Primary, graphics.RGB(0xFF, 0x88, 0x00); got != want {
		t.Errorf("primary = %08X, want %08X", uint32(got), uint32(want))
	}
	if th.Metrics.Spacing != 12 {
		t.Errorf("spacing = %v, want 12", th.Metrics.Spacing)
	}
	if th.Heading.Size != 20 {
		t.Errorf("heading size = %v, want 20", th.Heading.Size)
	}

	def := DefaultDarkTheme()
	if th.Palette.Background != def.Palette.Background {
		t.Error("untouched color drifted from the dark default")
	}
	if th.Metrics.ButtonHeight != def.Metrics.ButtonHeight {
		t.Error("untouched metric drifted from the default")
	}
}

// Test schema version gating: missing, invalid, and wrong-major versions
// are rejected; a newer minor of the same major is accepted.
func TestParseVersionGate(t *testing.T) {
	tests := []struct {
		name    string
		version string
		ok      bool
	}{
		{"current", "v1.0.0", true},
		{"newer minor", "v1.3.0", true},
		{"no v prefix", "1.0.0", true},
		{"wrong major", "v2.0.0", false},
		{"garbage", "one", false},
		{"missing", "", false},
	}
	for _, tt := range tests {
		src := "brightness: light\n"
		if tt.version != "" {
			src = "version: " + tt.version + "\n" + src
		}
		_, err := Parse([]byte(src))
		if (err == nil) != tt.ok {
			t.Errorf("%s: Parse err = %v, want ok=%v", tt.name, err, tt.ok)
		}
	}
}

// Test that unknown keys fail loudly rather than being ignored.
func TestParseUnknownKeys(t *testing.T) {
	for _, src := range []string{
		"version: v1.0.0\ncolors:\n  chartreuse: \"#00FF00\"\n",
		"version: v1.0.0\nmetrics:\n  girth: 4\n",
		"version: v1.0.0\ntext:\n  banner:\n    size: 40\n",
		"version: v1.0.0\nbrightness: dim\n",
	} {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("Parse accepted bad input:\n%s", src)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want graphics.Color
		ok   bool
	}{
		{"#FF0000", graphics.RGB(0xFF, 0, 0), true},
		{"#80FF0000", graphics.RGBA8(0xFF, 0, 0, 0x80), true},
		{"#abc", graphics.RGB(0xAA, 0xBB, 0xCC), true},
		{"FF0000", 0, false},
		{"#FF00", 0, false},
		{"#GGGGGG", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %08X, want %08X", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

// Test that the default themes carry colored text styles out of the box.
func TestDefaultThemes(t *testing.T) {
	for _, th := range []*ThemeData{DefaultLightTheme(), DefaultDarkTheme()} {
		if th.Body.Size <= 0 || th.Heading.Size <= th.Body.Size {
			t.Errorf("%v theme: text sizes body=%v heading=%v", th.Brightness, th.Body.Size, th.Heading.Size)
		}
		if th.Body.Color == 0 {
			t.Errorf("%v theme: body text color unset", th.Brightness)
		}
		if th.Metrics != DefaultMetrics() {
			t.Errorf("%v theme: metrics differ from DefaultMetrics", th.Brightness)
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	a := DefaultLightTheme()
	b := a.Copy()
	b.Palette.Primary = graphics.RGB(1, 2, 3)
	if a.Palette.Primary == b.Palette.Primary {
		t.Error("Copy shares palette with the original")
	}
}

func TestBrightnessString(t *testing.T) {
	if got := BrightnessLight.String(); got != "light" {
		t.Errorf("got %q", got)
	}
	if got := BrightnessDark.String(); got != "dark" {
		t.Errorf("got %q", got)
	}
}

// Guard against the error message leaking the wrong current version.
func TestVersionErrorMentionsCurrent(t *testing.T) {
	_, err := Parse([]byte("version: v9.0.0\n"))
	if err == nil || !strings.Contains(err.Error(), SchemaVersion) {
		t.Errorf("version error should name the supported schema, got %v", err)
	}
}
