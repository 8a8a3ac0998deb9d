package target

// DefaultFilterPasses is the number of erosion passes the analyzer runs.
// Two passes have also been used; four removes more of the speckle that
// webcam compression leaves around the marker.
const DefaultFilterPasses = 4

// Cleaner removes stray positives from a membership grid. Implementations
// may mutate the grid in place and must return the cleaned grid.
type Cleaner interface {
	Clean(g *Grid) *Grid
}

// CleanerFunc adapts a plain function to the Cleaner interface.
type CleanerFunc func(g *Grid) *Grid

// Clean calls f(g).
func (f CleanerFunc) Clean(g *Grid) *Grid {
	return f(g)
}

// NopCleaner returns the grid untouched.
var NopCleaner = CleanerFunc(func(g *Grid) *Grid { return g })

// DirectionalErosion clears a set cell whenever the cell after it in the
// second index, (i, j+1), is clear.
//
// Only interior cells (1 <= i < width-1, 1 <= j < height-1) are ever written;
// the border is left as classified. Cells are visited in place, so each pass
// sees the writes of the passes before it and every pass shortens each run
// of set cells by one at its far end. Runs that reach the last row survive.
//
// This is not a morphological opening: it only looks at one neighbour and can
// eat into the edge of a genuine but narrow target.
type DirectionalErosion struct {
	Passes int
}

// Clean implements Cleaner. The grid is modified in place and returned.
func (d DirectionalErosion) Clean(g *Grid) *Grid {
	for pass := 0; pass < d.Passes; pass++ {
		for i := 1; i < g.width-1; i++ {
			for j := 1; j < g.height-1; j++ {
				if g.cells[i][j] && !g.cells[i][j+1] {
					g.cells[i][j] = false
				}
			}
		}
	}
	return g
}
