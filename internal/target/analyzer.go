package target

import (
	"image"

	"github.com/pkg/errors"
)

// Result is the outcome of analysing one frame.
type Result struct {
	// Sector is the target position, or SectorError when no target was found.
	Sector Sector `json:"sector"`

	// Size is the trimmed blob area in square pixels; 0 when the blob is too
	// small to measure or absent.
	Size int `json:"size"`

	// Found is false when no sample survived cleaning.
	Found bool `json:"found"`

	// Centroid is the per-axis median of the blob. Zero when !Found.
	Centroid image.Point `json:"centroid"`

	// Samples is the number of target samples in the blob.
	Samples int `json:"samples"`

	// Boundary is the centre zone the centroid was classified against.
	Boundary Boundary `json:"boundary"`

	// Distance is the approach signal; always SignalUnknown for a single frame.
	Distance Signal `json:"distance"`

	Width  int `json:"width"`
	Height int `json:"height"`
}

// Analysis is a Result together with the intermediate products it was
// derived from, for callers that render the mask or the blob.
type Analysis struct {
	Result
	Raw     *Grid
	Cleaned *Grid
	Blob    *Blob
}

// Analyzer runs the frame pipeline. The zero value is not usable; build one
// with NewAnalyzer.
type Analyzer struct {
	classifier Classifier
	cleaner    Cleaner
	trimOffset int
	deviation  float64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClassifier replaces the default hue classifier.
func WithClassifier(c Classifier) Option {
	return func(a *Analyzer) { a.classifier = c }
}

// WithCleaner replaces the default directional erosion.
func WithCleaner(c Cleaner) Option {
	return func(a *Analyzer) { a.cleaner = c }
}

// WithTrimOffset sets how many low coordinates Size skips per axis.
func WithTrimOffset(n int) Option {
	return func(a *Analyzer) { a.trimOffset = n }
}

// WithDeviation sets the centre zone half-size as a fraction of the frame.
func WithDeviation(dev float64) Option {
	return func(a *Analyzer) { a.deviation = dev }
}

// NewAnalyzer returns an Analyzer with the documented defaults: hue window
// [110, 160), four erosion passes, trim offset 10 and a 20% centre zone.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		classifier: DefaultHueRange(),
		cleaner:    DirectionalErosion{Passes: DefaultFilterPasses},
		trimOffset: DefaultTrimOffset,
		deviation:  DefaultDeviation,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Classifier returns the classifier the analyzer applies to each sample.
func (a *Analyzer) Classifier() Classifier {
	return a.classifier
}

// TrimOffset returns the trim offset used for Size.
func (a *Analyzer) TrimOffset() int {
	return a.trimOffset
}

// Deviation returns the centre zone deviation.
func (a *Analyzer) Deviation() float64 {
	return a.deviation
}

// Analyze runs the full pipeline on f.
//
// A frame with no target is not an error: the result has Found false,
// Sector SectorError and Size 0. The only error is *DecodeError.
func (a *Analyzer) Analyze(f Frame) (Result, error) {
	an, err := a.Inspect(f)
	if err != nil {
		return Result{}, err
	}
	return an.Result, nil
}

// Inspect runs the pipeline like Analyze and also returns the raw and
// cleaned membership grids and the blob.
func (a *Analyzer) Inspect(f Frame) (*Analysis, error) {
	samples, raw, err := Rasterize(f, a.classifier)
	if err != nil {
		return nil, err
	}
	boundary := DeriveBoundaryDeviation(f.Width, f.Height, a.deviation)

	cleaned := a.cleaner.Clean(raw.Clone())
	if cleaned == nil {
		return nil, errors.New("cleaner returned no grid")
	}
	blob, err := BuildBlob(samples, cleaned)
	if err != nil {
		return nil, errors.Wrap(err, "aggregating target samples")
	}

	res := Result{
		Sector:   SectorError,
		Samples:  blob.Len(),
		Boundary: boundary,
		Distance: blob.Distance(),
		Width:    f.Width,
		Height:   f.Height,
	}
	centroid, err := blob.Centroid()
	switch {
	case errors.Is(err, ErrEmptyBlob):
		// no target in view
	case err != nil:
		return nil, err
	default:
		res.Found = true
		res.Centroid = centroid
		res.Sector = Classify(centroid, boundary)
		res.Size = blob.SizeTrimmed(a.trimOffset)
	}

	return &Analysis{Result: res, Raw: raw, Cleaned: cleaned, Blob: blob}, nil
}
