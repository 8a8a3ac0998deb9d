package target

import "image"

// Sample is one pixel of a frame: its position and its colour channels.
//
// Samples are plain values; copying one never shares state with the grid
// that produced it.
type Sample struct {
	X int   `json:"x"`
	Y int   `json:"y"`
	A uint8 `json:"a"`
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// NewSample unpacks a big-endian ARGB word (alpha in the top byte) into a
// Sample at (x, y).
func NewSample(x, y int, argb uint32) Sample {
	return Sample{
		X: x,
		Y: y,
		A: uint8((argb >> 24) & 0xFF),
		R: uint8((argb >> 16) & 0xFF),
		G: uint8((argb >> 8) & 0xFF),
		B: uint8(argb & 0xFF),
	}
}

// Point returns the sample position.
func (s Sample) Point() image.Point {
	return image.Point{X: s.X, Y: s.Y}
}

// ARGB packs the sample colour back into a big-endian ARGB word.
func (s Sample) ARGB() uint32 {
	return uint32(s.A)<<24 | uint32(s.R)<<16 | uint32(s.G)<<8 | uint32(s.B)
}

// PackARGB builds an ARGB word from 8-bit channels.
func PackARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Samples is a frame-sized grid of samples indexed [x][y].
type Samples [][]Sample

// Width returns the number of columns.
func (s Samples) Width() int {
	return len(s)
}

// Height returns the number of rows.
func (s Samples) Height() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}
