package target

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyBlob is returned by blob queries that need at least one sample.
var ErrEmptyBlob = errors.New("blob has no target samples")

// DecodeError reports a frame buffer whose size disagrees with its declared
// dimensions. The frame cannot be analysed and should be skipped.
type DecodeError struct {
	Width  int
	Height int
	Pixels int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("frame %dx%d declares %d pixels, buffer holds %d",
		e.Width, e.Height, e.Width*e.Height, e.Pixels)
}

// IsDecodeError reports whether err is, or wraps, a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
