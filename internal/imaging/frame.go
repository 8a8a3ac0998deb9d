package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/target-follow/internal/target"
)

// WorkingSize bounds the resolution frames are analysed at. A zero size
// disables fitting.
type WorkingSize struct {
	Width  int
	Height int
}

// Enabled reports whether both dimensions are positive.
func (s WorkingSize) Enabled() bool {
	return s.Width > 0 && s.Height > 0
}

// Fit scales img down, preserving its aspect ratio, so that it fits inside
// the working size. Images already inside the size are returned unchanged.
func Fit(img image.Image, size WorkingSize) image.Image {
	if !size.Enabled() {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= size.Width && b.Dy() <= size.Height {
		return img
	}
	return imaging.Fit(img, size.Width, size.Height, imaging.Lanczos)
}

// FrameFromImage packs img into a target.Frame of 0xAARRGGBB words.
//
// The image is first converted to non-premultiplied RGBA with its origin
// moved to (0,0), so frame coordinates always start at zero.
func FrameFromImage(img image.Image) target.Frame {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	pix := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			pix[y*w+x] = target.PackARGB(p[3], p[0], p[1], p[2])
		}
	}

	return target.Frame{Width: w, Height: h, Pix: pix}
}

// LoadFrame loads path through the cache, fits it into size and packs it.
// The returned image is the one the frame was packed from, for rendering.
func LoadFrame(cache *ImageCache, path string, size WorkingSize) (image.Image, target.Frame, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, target.Frame{}, err
	}
	img = Fit(img, size)
	return img, FrameFromImage(img), nil
}
