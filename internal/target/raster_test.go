package target

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterize_Dimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"square", 10, 10},
		{"landscape", 32, 24},
		{"portrait", 3, 17},
		{"single pixel", 1, 1},
		{"empty", 0, 0},
		{"zero width", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, mask, err := Rasterize(solidFrame(tt.width, tt.height, argbGrey), DefaultHueRange())
			require.NoError(t, err)

			assert.Equal(t, tt.width, samples.Width())
			assert.Equal(t, tt.width, mask.Width())
			assert.Equal(t, tt.height, mask.Height())
			for x := range samples {
				assert.Len(t, samples[x], tt.height)
			}
		})
	}
}

func TestRasterize_SampleCoordinates(t *testing.T) {
	f := solidFrame(4, 3, argbGrey)
	f.Pix[2*4+1] = PackARGB(10, 20, 30, 40) // (1, 2)

	samples, _, err := Rasterize(f, DefaultHueRange())
	require.NoError(t, err)

	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			assert.Equal(t, image.Pt(x, y), samples[x][y].Point())
		}
	}
	assert.Equal(t, Sample{X: 1, Y: 2, A: 10, R: 20, G: 30, B: 40}, samples[1][2])
}

func TestRasterize_SingleColourFrame(t *testing.T) {
	tests := []struct {
		name string
		argb uint32
		want bool
	}{
		{"target hue", argbGreen, true},
		{"hue at lower edge", argbEdge, true},
		{"hue at upper edge", argbOut, false},
		{"gray", argbGrey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mask, err := Rasterize(solidFrame(12, 9, tt.argb), DefaultHueRange())
			require.NoError(t, err)

			want := 0
			if tt.want {
				want = 12 * 9
			}
			assert.Equal(t, want, mask.Count())
		})
	}
}

func TestRasterize_MembershipMatchesClassifier(t *testing.T) {
	f := paint(solidFrame(20, 10, argbGrey), image.Rect(5, 2, 8, 6), argbGreen)

	_, mask, err := Rasterize(f, DefaultHueRange())
	require.NoError(t, err)

	for x := 0; x < 20; x++ {
		for y := 0; y < 10; y++ {
			in := image.Pt(x, y).In(image.Rect(5, 2, 8, 6))
			assert.Equal(t, in, mask.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestRasterize_DecodeError(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
	}{
		{"short buffer", Frame{Width: 4, Height: 4, Pix: make([]uint32, 15)}},
		{"long buffer", Frame{Width: 4, Height: 4, Pix: make([]uint32, 17)}},
		{"nil buffer", Frame{Width: 2, Height: 2}},
		{"negative width", Frame{Width: -2, Height: -2, Pix: make([]uint32, 4)}},
		{"dimensions overflow", Frame{Width: 1 << 62, Height: 4}},
		{"zero width with pixels", Frame{Width: 0, Height: 3, Pix: make([]uint32, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, mask, err := Rasterize(tt.frame, DefaultHueRange())
			require.Error(t, err)
			assert.Nil(t, samples)
			assert.Nil(t, mask)

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, len(tt.frame.Pix), de.Pixels)
			assert.True(t, IsDecodeError(errors.Wrap(err, "frame 7")))
		})
	}
}

func TestGrid_String(t *testing.T) {
	g := gridFromColumns(3, 2, map[int][]int{0: {0}, 2: {1}})
	assert.Equal(t, "1 0 0\n0 0 1\n", g.String())
}

func TestGrid_OutOfRange(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(5, 5, true)
	g.Set(-1, 0, true)

	assert.Equal(t, 0, g.Count())
	assert.False(t, g.At(-1, 0))
	assert.False(t, g.At(2, 0))
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := gridFromColumns(3, 3, map[int][]int{1: {1}})
	c := g.Clone()
	c.Set(1, 1, false)

	assert.True(t, g.At(1, 1))
	assert.False(t, g.Equal(c))
	assert.True(t, g.Equal(g.Clone()))
}
