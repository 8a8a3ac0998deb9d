package target

import (
	"image"
	"sort"

	"github.com/pkg/errors"
)

// DefaultTrimOffset is the number of lowest sorted coordinates Size skips on
// each axis before measuring the blob extent. The lowest values are the ones
// most often contributed by stray pixels.
const DefaultTrimOffset = 10

// Signal describes how the target moved along the camera axis between
// frames.
type Signal string

// Signal values. Only SignalUnknown is produced today; the others are
// reserved for a tracker that compares consecutive frames.
const (
	SignalUnknown Signal = "unknown"
	SignalSame    Signal = "same"
	SignalCloser  Signal = "closer"
	SignalFarther Signal = "farther"
)

// Blob is the set of samples believed to belong to the target in one frame.
// Order of insertion does not affect any query. The zero value is an empty
// blob.
type Blob struct {
	samples []Sample
}

// BuildBlob collects every sample whose membership bit is set, walking the
// grid column by column. The two grids must have the same dimensions.
func BuildBlob(samples Samples, mask *Grid) (*Blob, error) {
	if samples.Width() != mask.Width() || (mask.Width() > 0 && samples.Height() != mask.Height()) {
		return nil, errors.Errorf("samples grid %dx%d does not match mask %dx%d",
			samples.Width(), samples.Height(), mask.Width(), mask.Height())
	}

	b := &Blob{samples: make([]Sample, 0, mask.Count())}
	for x := range samples {
		for y := range samples[x] {
			if mask.cells[x][y] {
				b.samples = append(b.samples, samples[x][y])
			}
		}
	}
	return b, nil
}

// Len returns the number of samples.
func (b *Blob) Len() int {
	return len(b.samples)
}

// sortedAxes returns the x and y coordinates, each sorted ascending on its
// own. The pairing between an x and its y is not preserved.
func (b *Blob) sortedAxes() ([]int, []int) {
	xs := make([]int, len(b.samples))
	ys := make([]int, len(b.samples))
	for i, s := range b.samples {
		xs[i] = s.X
		ys[i] = s.Y
	}
	sort.Ints(xs)
	sort.Ints(ys)
	return xs, ys
}

// Centroid returns the per-axis median of the blob: the element at index
// n/2 of the sorted x coordinates and of the sorted y coordinates. The result
// need not be a sample of the blob.
func (b *Blob) Centroid() (image.Point, error) {
	if len(b.samples) == 0 {
		return image.Point{}, ErrEmptyBlob
	}
	xs, ys := b.sortedAxes()
	mid := len(b.samples) / 2
	return image.Point{X: xs[mid], Y: ys[mid]}, nil
}

// Size returns the blob area using DefaultTrimOffset.
func (b *Blob) Size() int {
	return b.SizeTrimmed(DefaultTrimOffset)
}

// SizeTrimmed returns width*length where width = max(x) - x[offset] and
// length = max(y) - y[offset] over the independently sorted coordinates.
// Blobs with offset or fewer samples have size 0.
func (b *Blob) SizeTrimmed(offset int) int {
	r, ok := b.Bounds(offset)
	if !ok {
		return 0
	}
	return r.Dx() * r.Dy()
}

// Bounds returns the trimmed extent used by SizeTrimmed as a rectangle from
// (x[offset], y[offset]) to (max x, max y). ok is false when the blob has
// offset or fewer samples.
func (b *Blob) Bounds(offset int) (r image.Rectangle, ok bool) {
	if offset < 0 {
		offset = 0
	}
	n := len(b.samples)
	if n <= offset {
		return image.Rectangle{}, false
	}
	xs, ys := b.sortedAxes()
	return image.Rectangle{
		Min: image.Point{X: xs[offset], Y: ys[offset]},
		Max: image.Point{X: xs[n-1], Y: ys[n-1]},
	}, true
}

// Distance reports movement toward or away from the camera. Inferring it
// needs the previous frame's blob, which a single-frame blob does not have,
// so the answer is always SignalUnknown.
func (b *Blob) Distance() Signal {
	return SignalUnknown
}
