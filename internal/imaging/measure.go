package imaging

import (
	"image"
	"math"
)

// OffsetResult describes where a point lies relative to the frame centre.
type OffsetResult struct {
	// DeltaX and DeltaY are signed: positive means right of and below centre.
	DeltaX int `json:"delta_x"`
	DeltaY int `json:"delta_y"`

	DistancePixels float64 `json:"distance_pixels"`

	// AngleDegrees is measured from the positive X axis, clockwise on
	// screen since Y grows downward: 0 = right, 90 = down.
	AngleDegrees float64 `json:"angle_degrees"`

	DistancePercentWidth  float64 `json:"distance_percent_width"`
	DistancePercentHeight float64 `json:"distance_percent_height"`
}

// MeasureDistance measures from (x1,y1) to (x2,y2) in a width x height frame.
// Percentages are 0 for an empty frame.
func MeasureDistance(width, height, x1, y1, x2, y2 int) OffsetResult {
	deltaX := x2 - x1
	deltaY := y2 - y1

	distance := math.Sqrt(float64(deltaX*deltaX + deltaY*deltaY))
	angle := math.Atan2(float64(deltaY), float64(deltaX)) * 180 / math.Pi

	res := OffsetResult{
		DistancePixels: math.Round(distance*100) / 100,
		DeltaX:         deltaX,
		DeltaY:         deltaY,
		AngleDegrees:   math.Round(angle*10) / 10,
	}
	if width > 0 {
		res.DistancePercentWidth = math.Round(distance/float64(width)*1000) / 10
	}
	if height > 0 {
		res.DistancePercentHeight = math.Round(distance/float64(height)*1000) / 10
	}
	return res
}

// CentreOffset measures from the frame centre (width/2, height/2) to p.
func CentreOffset(width, height int, p image.Point) OffsetResult {
	return MeasureDistance(width, height, width/2, height/2, p.X, p.Y)
}
