package imaging

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/ironsheep/target-follow/internal/target"
)

// CropResult contains the cropped image data.
type CropResult struct {
	ImageResult
	// Region is the source rectangle that was cropped, before scaling.
	Region image.Rectangle `json:"region"`
}

// Crop extracts the region (x1,y1)-(x2,y2) and optionally rescales it.
// A scale of 1 or less than or equal to 0 keeps the original size.
func Crop(img image.Image, x1, y1, x2, y2 int, scale float64) (*CropResult, error) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, errors.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, errors.New("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	region := image.Rect(x1, y1, x2, y2)
	cropped := imaging.Crop(img, region)

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	res, err := encodePNG(cropped)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode cropped image")
	}
	return &CropResult{ImageResult: *res, Region: region}, nil
}

// SectorRegion returns the part of a w x h frame that a sector names. The
// boundary lines themselves are counted in the middle row and column, so a
// pixel on a line may classify into a neighbouring sector.
func SectorRegion(w, h int, b target.Boundary, s target.Sector) (image.Rectangle, error) {
	if b.Degenerate() {
		return image.Rectangle{}, errors.Errorf("centre zone %+v is inverted", b)
	}
	cols := [3][2]int{{0, b.Left}, {b.Left, b.Right + 1}, {b.Right + 1, w}}
	rows := [3][2]int{{0, b.Top}, {b.Top, b.Bottom + 1}, {b.Bottom + 1, h}}

	var c, r int
	switch s {
	case target.SectorAboveLeft:
		c, r = 0, 0
	case target.SectorAbove:
		c, r = 1, 0
	case target.SectorAboveRight:
		c, r = 2, 0
	case target.SectorLeft:
		c, r = 0, 1
	case target.SectorCentre:
		c, r = 1, 1
	case target.SectorRight:
		c, r = 2, 1
	case target.SectorBelowLeft:
		c, r = 0, 2
	case target.SectorBelow:
		c, r = 1, 2
	case target.SectorBelowRight:
		c, r = 2, 2
	default:
		return image.Rectangle{}, errors.Errorf("unknown sector: %s", s)
	}

	rect := image.Rect(cols[c][0], rows[r][0], cols[c][1], rows[r][1]).Intersect(image.Rect(0, 0, w, h))
	if rect.Empty() {
		return image.Rectangle{}, errors.Errorf("sector %s is empty in a %dx%d frame", s, w, h)
	}
	return rect, nil
}

// CropSector extracts the named sector of the frame. The centre zone spans
// deviation times the image size on either side of its midpoint.
func CropSector(img image.Image, sector target.Sector, deviation float64, scale float64) (*CropResult, error) {
	bounds := img.Bounds()
	b := target.DeriveBoundaryDeviation(bounds.Dx(), bounds.Dy(), deviation)

	rect, err := SectorRegion(bounds.Dx(), bounds.Dy(), b, sector)
	if err != nil {
		return nil, err
	}
	rect = rect.Add(bounds.Min)
	return Crop(img, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y, scale)
}

// CropTarget extracts the trimmed extent of the located blob, grown by
// margin pixels on each side and clipped to the image. The blob must come
// from a frame packed from img.
func CropTarget(img image.Image, blob *target.Blob, trimOffset, margin int, scale float64) (*CropResult, error) {
	if blob == nil {
		return nil, target.ErrEmptyBlob
	}
	rect, ok := blob.Bounds(trimOffset)
	if !ok {
		// too few samples to trim; use the full extent
		rect, ok = blob.Bounds(0)
	}
	if !ok {
		return nil, target.ErrEmptyBlob
	}

	// Bounds is inclusive of its max corner.
	rect.Max = rect.Max.Add(image.Pt(1, 1))

	bounds := img.Bounds()
	rect = rect.Inset(-margin).Add(bounds.Min).Intersect(bounds)
	if rect.Empty() {
		return nil, errors.New("target extent lies outside the image")
	}
	return Crop(img, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y, scale)
}
