package target

import (
	"strings"
)

// Grid is a frame-sized membership mask. Cells are indexed [x][y] exactly
// like the Samples grid the mask was produced alongside.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid allocates an all-false grid. Negative dimensions are treated as 0.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]bool, width)
	for x := range cells {
		cells[x] = make([]bool, height)
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At reports the membership bit at (x, y). Out-of-range cells read as false.
func (g *Grid) At(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[x][y]
}

// Set writes the membership bit at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, v bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[x][y] = v
}

// Count returns the number of set cells.
func (g *Grid) Count() int {
	n := 0
	for x := range g.cells {
		for _, v := range g.cells[x] {
			if v {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for x := range g.cells {
		copy(c.cells[x], g.cells[x])
	}
	return c
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for x := range g.cells {
		for y, v := range g.cells[x] {
			if o.cells[x][y] != v {
				return false
			}
		}
	}
	return true
}

// String renders the grid as rows of "0"/"1" separated by spaces, one line
// per y, which is handy when eyeballing what the cleaner removed.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if g.cells[x][y] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
