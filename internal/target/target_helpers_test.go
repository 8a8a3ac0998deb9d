package target

import "image"

var (
	argbGreen = PackARGB(255, 0, 240, 40)    // hue 130
	argbGrey  = PackARGB(255, 128, 128, 128) // achromatic
	argbRed   = PackARGB(255, 255, 0, 0)     // hue 0
	argbEdge  = PackARGB(255, 40, 240, 0)    // hue exactly 110
	argbOut   = PackARGB(255, 0, 240, 160)   // hue exactly 160
)

// solidFrame creates a frame filled with one ARGB value.
func solidFrame(width, height int, argb uint32) Frame {
	pix := make([]uint32, width*height)
	for i := range pix {
		pix[i] = argb
	}
	return Frame{Width: width, Height: height, Pix: pix}
}

// paint fills r (exclusive max) of f with argb.
func paint(f Frame, r image.Rectangle, argb uint32) Frame {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			f.Pix[y*f.Width+x] = argb
		}
	}
	return f
}

// gridFromColumns builds a grid and sets, for each column x, the listed y
// values.
func gridFromColumns(width, height int, cols map[int][]int) *Grid {
	g := NewGrid(width, height)
	for x, ys := range cols {
		for _, y := range ys {
			g.Set(x, y, true)
		}
	}
	return g
}

func span(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, v)
	}
	return out
}
