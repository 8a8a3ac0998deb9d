package target

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Default hue window for the green target marker, in degrees.
//
// A narrower [120, 150) window has been used as well; it misses the target
// near frame edges under bright light.
const (
	DefaultHueMin = 110.0
	DefaultHueMax = 160.0
)

// Classifier decides whether a sample belongs to the target.
type Classifier interface {
	IsTarget(s Sample) bool
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(s Sample) bool

// IsTarget calls f(s).
func (f ClassifierFunc) IsTarget(s Sample) bool {
	return f(s)
}

// Hue returns the HSV hue of the sample colour in degrees, in [0, 360).
// Achromatic colours (R == G == B) have hue 0.
func Hue(s Sample) float64 {
	c := colorful.Color{
		R: float64(s.R) / 255.0,
		G: float64(s.G) / 255.0,
		B: float64(s.B) / 255.0,
	}
	h, _, _ := c.Hsv()
	return h
}

// HueRange accepts samples whose hue lies in the half-open range [Min, Max).
//
// Saturation and brightness are ignored, which keeps the test stable under
// changing illumination but also means very dark or washed-out pixels are
// classified by hue alone.
type HueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultHueRange returns the [110, 160) green window.
func DefaultHueRange() HueRange {
	return HueRange{Min: DefaultHueMin, Max: DefaultHueMax}
}

// IsTarget implements Classifier.
func (r HueRange) IsTarget(s Sample) bool {
	deg := Hue(s)
	return deg >= r.Min && deg < r.Max
}

// RGBWindow accepts samples whose red, green and blue channels each lie
// within Mid ± Tol, inclusive.
//
// This is the raw-distance test the hue classifier replaced. It is sensitive
// to brightness and is kept for scenes where the target colour is known
// exactly.
type RGBWindow struct {
	Mid [3]int `json:"mid"`
	Tol [3]int `json:"tolerance"`
}

// IsTarget implements Classifier.
func (w RGBWindow) IsTarget(s Sample) bool {
	ch := [3]int{int(s.R), int(s.G), int(s.B)}
	for i, v := range ch {
		if v < w.Mid[i]-w.Tol[i] || v > w.Mid[i]+w.Tol[i] {
			return false
		}
	}
	return true
}
