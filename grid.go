package poissondisk

import (
	"github.com/boljen/go-bitmap"
	"github.com/chewxy/math32"

	"github.com/voidshard/poissondisk/internal/encoding"
)

// Grid2d is a uniform spatial hash over accepted points.
//
// Cells are r/sqrt(2) wide, so a cell's diagonal is r and no two points
// r apart can ever share one. A point within r of a query can however be up
// to two cells away (r is ~1.41 cells), see reach().
type Grid2d struct {
	gridSize float32
	cells    map[uint64]Point2d
}

// NewGrid returns an empty grid sized for the minimum distance r
func NewGrid(r float32) *Grid2d {
	return &Grid2d{
		gridSize: r / math32.Sqrt2,
		cells:    map[uint64]Point2d{},
	}
}

// CellSize is the width (and height) of a single cell
func (g *Grid2d) CellSize() float32 {
	return g.gridSize
}

// Len returns the number of occupied cells
func (g *Grid2d) Len() int {
	return len(g.cells)
}

// CellOf returns the (x, y) cell that p falls in.
func (g *Grid2d) CellOf(p Point2d) (int, int) {
	return int(math32.Floor(p.X / g.gridSize)), int(math32.Floor(p.Y / g.gridSize))
}

// Get returns the point in cell (x, y), if any
func (g *Grid2d) Get(x, y int) (Point2d, bool) {
	if x < 0 || y < 0 {
		return Point2d{}, false
	}
	p, ok := g.cells[encoding.CellKey(x, y)]
	return p, ok
}

// HasNearby returns if any point in the grid is strictly closer than r to p.
// Only the block of cells around p's cell is checked, clamped at zero.
func (g *Grid2d) HasNearby(r float32, p Point2d) bool {
	cx, cy := g.CellOf(p)
	n := g.reach(r)

	for xx := clampZero(cx - n); xx <= cx+n; xx++ {
		for yy := clampZero(cy - n); yy <= cy+n; yy++ {
			pt, ok := g.cells[encoding.CellKey(xx, yy)]
			if !ok {
				continue
			}
			if pt.WithinR(r, p) {
				return true
			}
		}
	}
	return false
}

// AddPoint places p in it's cell, replacing anything there.
// Returns false if the cell was already occupied, which implies
// the caller has broken the spacing rule.
func (g *Grid2d) AddPoint(p Point2d) bool {
	key := encoding.CellKey(g.CellOf(p))
	_, taken := g.cells[key]
	g.cells[key] = p
	return !taken
}

// Points returns all points in the grid, in no particular order
func (g *Grid2d) Points() []Point2d {
	out := make([]Point2d, 0, len(g.cells))
	for _, p := range g.cells {
		out = append(out, p)
	}
	return out
}

// Occupancy returns a bitmap of cols x rows cells where bit
// (y * cols + x) is set if cell (x, y) holds a point.
// Cells outside of cols / rows are ignored.
func (g *Grid2d) Occupancy(cols, rows int) bitmap.Bitmap {
	bm := bitmap.New(cols * rows)
	for key := range g.cells {
		x, y := encoding.FromCellKey(key)
		if x >= cols || y >= rows {
			continue
		}
		bm.Set(y*cols+x, true)
	}
	return bm
}

// reach is how many cells out from the centre we must look to find
// everything within r.
func (g *Grid2d) reach(r float32) int {
	if g.gridSize <= 0 {
		return 0
	}
	return int(math32.Ceil(r / g.gridSize))
}

// clampZero stops cell indexes going negative
func clampZero(a int) int {
	if a > 0 {
		return a
	}
	return 0
}
