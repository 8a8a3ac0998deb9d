package imaging

import (
	"bytes"
	"encoding/base64"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/pkg/errors"
)

const pngMimeType = "image/png"

// ImageResult is a rendered image ready for a JSON response.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func encodePNG(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode image")
	}

	b := img.Bounds()
	return &ImageResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    pngMimeType,
	}, nil
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	return errors.Wrapf(imgio.Save(path, img, imgio.PNGEncoder()), "saving %s", path)
}
