package target

import "image"

// DefaultDeviation is the half-size of the centre zone as a fraction of each
// frame dimension.
const DefaultDeviation = 0.2

// Boundary is the rectangular centre zone of a frame. All four edges are
// inclusive when classifying points.
type Boundary struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// DeriveBoundary returns the centre zone for a width x height frame using
// DefaultDeviation.
func DeriveBoundary(width, height int) Boundary {
	return DeriveBoundaryDeviation(width, height, DefaultDeviation)
}

// DeriveBoundaryDeviation returns the centre zone spanning dev*size on either
// side of the frame midpoint.
//
// The midpoint is the integer half of the dimension, computed before the
// deviation is applied, and the sum is rounded by adding 0.5 and truncating.
// Doing the division first shifts some edges by one pixel on odd sizes
// compared with rounding size/2 ± dev*size as a single float expression.
func DeriveBoundaryDeviation(width, height int, dev float64) Boundary {
	return Boundary{
		Top:    edge(height/2, -float64(height)*dev),
		Bottom: edge(height/2, float64(height)*dev),
		Left:   edge(width/2, -float64(width)*dev),
		Right:  edge(width/2, float64(width)*dev),
	}
}

func edge(half int, offset float64) int {
	return int(float64(half) + offset + 0.5)
}

// Degenerate reports whether the zone is inverted on either axis.
func (b Boundary) Degenerate() bool {
	return b.Top > b.Bottom || b.Left > b.Right
}

// Rect returns the zone as an image rectangle with inclusive max edges
// widened by one so that it can be drawn or cropped.
func (b Boundary) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right+1, b.Bottom+1)
}
