package poissondisk

import (
	"math"

	"github.com/unixpickle/model3d/model2d"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds generic stats about a sampling
type Stats struct {
	// number of points placed
	Count int

	// number of occupied grid cells (should always equal Count)
	Cells int

	// closest distance between any two points, 0 with fewer than 2 points
	MinDistance float64 `json:",omitempty"`

	// mean & standard deviation of each points distance to it's
	// nearest neighbour
	MeanNearest   float64 `json:",omitempty"`
	StdDevNearest float64 `json:",omitempty"`

	// points per unit area
	Density float64
}

// newStats works out Stats for the given points
func newStats(width, height float32, pts []Point2d, grid *Grid2d) *Stats {
	st := &Stats{Count: len(pts)}
	if grid != nil {
		st.Cells = grid.Len()
	}
	if area := float64(width) * float64(height); area > 0 {
		st.Density = float64(len(pts)) / area
	}

	nearest := nearestDistances(pts)
	if len(nearest) == 0 {
		return st
	}

	st.MinDistance = floats.Min(nearest)
	st.MeanNearest, st.StdDevNearest = stat.MeanStdDev(nearest, nil)

	return st
}

// nearestDistances returns, for each point, the distance to the closest
// other point. Empty if there are fewer than 2 points.
func nearestDistances(pts []Point2d) []float64 {
	if len(pts) < 2 {
		return nil
	}

	coords := toCoords(pts)
	tree := model2d.NewCoordTree(coords)

	out := make([]float64, 0, len(coords))
	for _, c := range coords {
		// nb. the closest result is c itself
		best := math.Inf(1)
		for _, n := range tree.KNN(2, c) {
			if n == c {
				continue
			}
			best = math.Min(best, n.Dist(c))
		}
		if !math.IsInf(best, 1) {
			out = append(out, best)
		}
	}
	return out
}

// toCoords converts our points to model2d coords
func toCoords(pts []Point2d) []model2d.Coord {
	coords := make([]model2d.Coord, len(pts))
	for i, p := range pts {
		coords[i] = model2d.Coord{X: float64(p.X), Y: float64(p.Y)}
	}
	return coords
}
