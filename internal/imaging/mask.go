package imaging

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"github.com/ironsheep/target-follow/internal/target"
)

// MaskResult is a membership grid rendered as a black and white PNG.
type MaskResult struct {
	ImageResult
	// Count is the number of target cells in the grid.
	Count int `json:"count"`
}

// MaskImage renders g as a grayscale image: target cells white, the rest
// black.
func MaskImage(g *target.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width(), g.Height()))
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			if g.At(x, y) {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// EncodeMask renders g and encodes it as base64 PNG.
func EncodeMask(g *target.Grid) (*MaskResult, error) {
	if g == nil {
		return nil, errors.New("no mask to render")
	}
	if g.Width() == 0 || g.Height() == 0 {
		return nil, errors.Errorf("cannot render an empty %dx%d mask", g.Width(), g.Height())
	}
	res, err := encodePNG(MaskImage(g))
	if err != nil {
		return nil, err
	}
	return &MaskResult{ImageResult: *res, Count: g.Count()}, nil
}
