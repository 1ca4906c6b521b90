// Package text provides a font.Face backed implementation of the text
// measurement service. Hosts register faces per family; unregistered
// families fall back to a bundled bitmap face so measurement always works.
package text

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/render"
)

// FaceService measures text with golang.org/x/image font faces. It is safe
// for concurrent use.
//
// Bitmap faces carry a fixed size; the style's Size field selects a face
// only when the host registered one under that family. Identical inputs
// always produce identical geometry, which the layout dry run relies on.
type FaceService struct {
	mu    sync.RWMutex
	faces map[string]font.Face

	// fallback measures families with no registered face.
	fallback font.Face
}

var (
	defaultService     *FaceService
	defaultServiceOnce sync.Once
)

// NewFaceService creates a service with only the bundled fallback face.
func NewFaceService() *FaceService {
	return &FaceService{
		faces:    make(map[string]font.Face),
		fallback: basicfont.Face7x13,
	}
}

// DefaultService returns the shared measurement service.
func DefaultService() *FaceService {
	defaultServiceOnce.Do(func() {
		defaultService = NewFaceService()
	})
	return defaultService
}

// RegisterFace registers a face under a family name, replacing any
// previous registration. An empty family sets the fallback face.
func (s *FaceService) RegisterFace(family string, face font.Face) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if family == "" {
		s.fallback = face
		return
	}
	s.faces[family] = face
}

// Face resolves the face for a style's family, falling back to the
// bundled face.
func (s *FaceService) Face(style render.TextStyle) font.Face {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if face, ok := s.faces[style.Family]; ok {
		return face
	}
	return s.fallback
}

// MeasureText returns the rendered size of text in the given style.
func (s *FaceService) MeasureText(text string, style render.TextStyle) graphics.Size {
	face := s.Face(style)
	metrics := face.Metrics()
	height := fixedToFloat(metrics.Ascent + metrics.Descent)
	width := fixedToFloat(font.MeasureString(face, text))
	return graphics.Size{Width: width, Height: height}
}

// TextLayout lays out a single line of text and returns hit-testing
// geometry. Advances are cumulative per rune, offset for alignment within
// maxSize when maxSize leaves slack.
func (s *FaceService) TextLayout(text string, style render.TextStyle, maxSize graphics.Size, align render.Alignment) render.TextLayout {
	face := s.Face(style)
	metrics := face.Metrics()
	height := fixedToFloat(metrics.Ascent + metrics.Descent)

	runes := []rune(text)
	advances := make([]float64, len(runes))
	var pen float64
	prev := rune(-1)
	for i, r := range runes {
		if prev >= 0 {
			pen += fixedToFloat(face.Kern(prev, r))
		}
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			adv, _ = face.GlyphAdvance('�')
		}
		pen += fixedToFloat(adv)
		advances[i] = pen
		prev = r
	}

	width := pen
	bounds := graphics.Size{Width: width, Height: height}
	if maxSize.Width > 0 && bounds.Width > maxSize.Width {
		bounds.Width = maxSize.Width
	}
	if maxSize.Height > 0 && bounds.Height > maxSize.Height {
		bounds.Height = maxSize.Height
	}

	// Alignment slack shifts the caret geometry so hit testing matches
	// where the host actually draws the glyphs.
	if maxSize.Width > width {
		var shift float64
		switch align {
		case render.AlignCenter:
			shift = (maxSize.Width - width) / 2
		case render.AlignEnd:
			shift = maxSize.Width - width
		}
		if shift > 0 {
			for i := range advances {
				advances[i] += shift
			}
		}
	}

	return render.TextLayout{Text: text, Bounds: bounds, Advances: advances}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
