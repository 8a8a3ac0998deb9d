package imaging

import (
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/ironsheep/target-follow/internal/target"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"` // 0 = fully transparent, 255 = fully opaque
}

// HSLColor represents a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// HSVColor represents a color in HSV space. H is the value the hue
// classifier compares against its window, so it is kept unrounded.
type HSVColor struct {
	H float64 `json:"h"` // Hue: 0-360 degrees, 0 for greys
	S int     `json:"s"` // Saturation: 0-100 percent
	V int     `json:"v"` // Value: 0-100 percent
}

// ColorResult contains a sampled color in several representations together
// with the classifier's verdict on it.
type ColorResult struct {
	Hex    string    `json:"hex"` // "#rrggbb", alpha excluded
	RGB    RGBColor  `json:"rgb"`
	RGBA   RGBAColor `json:"rgba"`
	HSL    HSLColor  `json:"hsl"`
	HSV    HSVColor  `json:"hsv"`
	Target bool      `json:"target"` // the pixel would be marked as target
}

// SampleColor reads the pixel at (x, y) and reports whether c classifies it
// as target. A nil classifier uses the default hue window.
//
// The pixel is read as non-premultiplied RGBA, the same way FrameFromImage
// packs frames, so the verdict matches what an analysis would see.
func SampleColor(img image.Image, x, y int, c target.Classifier) (*ColorResult, error) {
	bounds := img.Bounds()
	if !image.Pt(x, y).In(bounds) {
		return nil, errors.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	if c == nil {
		c = target.DefaultHueRange()
	}

	s := sampleAt(img, x, y)
	col := colorful.Color{R: float64(s.R) / 255, G: float64(s.G) / 255, B: float64(s.B) / 255}
	hh, hs, hl := col.Hsl()
	_, vs, vv := col.Hsv()

	return &ColorResult{
		Hex:  col.Hex(),
		RGB:  RGBColor{R: s.R, G: s.G, B: s.B},
		RGBA: RGBAColor{R: s.R, G: s.G, B: s.B, A: s.A},
		HSL: HSLColor{
			H: int(math.Round(hh)) % 360,
			S: int(math.Round(hs * 100)),
			L: int(math.Round(hl * 100)),
		},
		HSV: HSVColor{
			H: target.Hue(s),
			S: int(math.Round(vs * 100)),
			V: int(math.Round(vv * 100)),
		},
		Target: c.IsTarget(s),
	}, nil
}

// sampleAt converts one pixel to a target.Sample in non-premultiplied form.
func sampleAt(img image.Image, x, y int) target.Sample {
	r, g, b, a := img.At(x, y).RGBA()
	if a == 0 {
		return target.Sample{X: x, Y: y}
	}
	if a != 0xffff {
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	return target.Sample{
		X: x, Y: y,
		A: uint8(a >> 8), R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8),
	}
}

// LabeledPoint is a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult combines a color sample with its location and label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples from multiple points in input
// order. TargetCount is how many of them the classifier accepted.
type MultiColorResult struct {
	Samples     []LabeledColorResult `json:"samples"`
	TargetCount int                  `json:"target_count"`
}

// SampleColorsMulti samples several points in one call. Any point outside
// the image fails the whole call.
func SampleColorsMulti(img image.Image, points []LabeledPoint, c target.Classifier) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))
	hits := 0

	for _, p := range points {
		color, err := SampleColor(img, p.X, p.Y, c)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to sample point (%d,%d)", p.X, p.Y)
		}
		if color.Target {
			hits++
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results, TargetCount: hits}, nil
}
