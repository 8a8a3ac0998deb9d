package target

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveBoundary(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          Boundary
	}{
		{"100x100", 100, 100, Boundary{Top: 30, Bottom: 70, Left: 30, Right: 70}},
		{"320x240", 320, 240, Boundary{Top: 72, Bottom: 168, Left: 96, Right: 224}},
		{"640x480", 640, 480, Boundary{Top: 144, Bottom: 336, Left: 192, Right: 448}},
		// Halving first: 50 + 20.2 rounds to 70, where 50.5 + 20.2 would give 71.
		{"101x101 halves before adding", 101, 101, Boundary{Top: 30, Bottom: 70, Left: 30, Right: 70}},
		{"11x7", 11, 7, Boundary{Top: 2, Bottom: 4, Left: 3, Right: 7}},
		{"5x5", 5, 5, Boundary{Top: 1, Bottom: 3, Left: 1, Right: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveBoundary(tt.width, tt.height))
		})
	}
}

func TestDeriveBoundary_TinyFrames(t *testing.T) {
	// Observed values for frames too small to have a real centre zone.
	tests := []struct {
		size int
		lo   int
		hi   int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{2, 1, 1},
		{3, 0, 2},
		{4, 1, 3},
	}

	for _, tt := range tests {
		b := DeriveBoundary(tt.size, tt.size)
		assert.Equal(t, Boundary{Top: tt.lo, Bottom: tt.hi, Left: tt.lo, Right: tt.hi}, b, "size %d", tt.size)
		assert.False(t, b.Degenerate())
	}
}

func TestDeriveBoundary_Ordered(t *testing.T) {
	for w := 5; w <= 400; w += 7 {
		for h := 5; h <= 300; h += 11 {
			b := DeriveBoundary(w, h)
			assert.LessOrEqual(t, b.Left, b.Right, "%dx%d", w, h)
			assert.LessOrEqual(t, b.Top, b.Bottom, "%dx%d", w, h)
			assert.Equal(t, b, DeriveBoundary(w, h))
		}
	}
}

func TestDeriveBoundaryDeviation(t *testing.T) {
	assert.Equal(t, Boundary{Top: 50, Bottom: 50, Left: 50, Right: 50}, DeriveBoundaryDeviation(100, 100, 0))
	assert.Equal(t, Boundary{Top: 0, Bottom: 100, Left: 0, Right: 100}, DeriveBoundaryDeviation(100, 100, 0.5))
	assert.Equal(t, Boundary{Top: 40, Bottom: 60, Left: 80, Right: 120}, DeriveBoundaryDeviation(200, 100, 0.1))
}

func TestBoundary_Rect(t *testing.T) {
	b := Boundary{Top: 30, Bottom: 70, Left: 30, Right: 70}
	assert.Equal(t, image.Rect(30, 30, 71, 71), b.Rect())
	assert.True(t, Boundary{Top: 5, Bottom: 4}.Degenerate())
}
