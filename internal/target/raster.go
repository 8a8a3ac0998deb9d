package target

// Frame is one decoded camera frame: Width*Height packed ARGB words in
// row-major order (index y*Width + x).
type Frame struct {
	Width  int
	Height int
	Pix    []uint32
}

// At returns the ARGB word at (x, y). The caller keeps x, y in range.
func (f Frame) At(x, y int) uint32 {
	return f.Pix[y*f.Width+x]
}

// Validate checks that the buffer holds exactly Width*Height pixels. The
// product is never formed, so huge dimensions cannot overflow into a match.
func (f Frame) Validate() error {
	if f.Width < 0 || f.Height < 0 || !f.fits() {
		return &DecodeError{Width: f.Width, Height: f.Height, Pixels: len(f.Pix)}
	}
	return nil
}

func (f Frame) fits() bool {
	n := len(f.Pix)
	if f.Width == 0 {
		return n == 0
	}
	return n%f.Width == 0 && n/f.Width == f.Height
}

// Rasterize unpacks every pixel of the frame into a Sample and classifies it.
//
// Both returned grids are Width x Height and indexed [x][y]; cell (x, y) of
// the membership grid holds c.IsTarget of sample (x, y). A frame whose buffer
// does not match its dimensions fails with *DecodeError.
func Rasterize(f Frame, c Classifier) (Samples, *Grid, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}

	samples := make(Samples, f.Width)
	for x := range samples {
		samples[x] = make([]Sample, f.Height)
	}
	mask := NewGrid(f.Width, f.Height)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			s := NewSample(x, y, f.At(x, y))
			samples[x][y] = s
			mask.cells[x][y] = c.IsTarget(s)
		}
	}
	return samples, mask, nil
}
