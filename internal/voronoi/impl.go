package voronoi

import (
	"fmt"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// based on
// https://github.com/unixpickle/voronoi-glass/blob/main/voronoi.go
//
// + repair drops collapsed edges without re-ordering

// VoronoiCell is the region of the plane closer to Center than
// to any other site.
type VoronoiCell struct {
	Center model2d.Coord
	Edges  []*model2d.Segment
}

type VoronoiDiagram []*VoronoiCell

// VoronoiCells computes the voronoi cells for a list of
// coordinates, assuming they are all contained within a
// bounding box.
//
// This is O(n^2) in the number of coords; each cell is the
// bounding box clipped by every bisector.
func VoronoiCells(min, max model2d.Coord, coords []model2d.Coord) VoronoiDiagram {
	cells := make([]*VoronoiCell, len(coords))
	for i, c := range coords {
		constraints := model2d.NewConvexPolytopeRect(min, max)
		for _, c1 := range coords {
			if c == c1 {
				continue
			}
			mp := c.Mid(c1)
			normal := c1.Sub(c).Normalize()
			constraints = append(constraints, &model2d.LinearConstraint{
				Normal: normal,
				Max:    normal.Dot(mp),
			})
		}
		cells[i] = &VoronoiCell{
			Center: c,
			Edges:  constraints.Mesh().SegmentSlice(),
		}
	}
	return cells
}

// Repair merges nearly identical coordinates so that adjacent
// cells share exact edge end points.
func (v VoronoiDiagram) Repair(epsilon float64) {
	coordSlice := v.Coords()
	if len(coordSlice) == 0 {
		return
	}

	coordSet := map[model2d.Coord]bool{}
	for _, c := range coordSlice {
		coordSet[c] = true
	}
	tree := model2d.NewCoordTree(coordSlice)

	mapping := map[model2d.Coord]model2d.Coord{}
	for _, c := range coordSlice {
		if !coordSet[c] {
			continue
		}
		for _, n := range neighborsInDistance(tree, c, epsilon) {
			if coordSet[n] {
				coordSet[n] = false
				mapping[n] = c
			}
		}
	}

	for _, cell := range v {
		for i := 0; i < len(cell.Edges); i++ {
			edge := cell.Edges[i]
			for j, c := range edge {
				if m, ok := mapping[c]; ok {
					edge[j] = m
				}
			}
			if edge[0] == edge[1] {
				// this was almost a singular edge
				essentials.UnorderedDelete(&cell.Edges, i)
				i--
			}
		}
	}
}

// Coords returns every unique edge end point in the diagram
func (v VoronoiDiagram) Coords() []model2d.Coord {
	coordSet := map[model2d.Coord]bool{}
	coordSlice := []model2d.Coord{}
	for _, cell := range v {
		for _, s := range cell.Edges {
			for _, p := range s {
				if !coordSet[p] {
					coordSet[p] = true
					coordSlice = append(coordSlice, p)
				}
			}
		}
	}
	return coordSlice
}

// Segments returns each edge once, even where it's shared by two cells.
func (v VoronoiDiagram) Segments() []*model2d.Segment {
	seen := map[string]bool{}
	out := []*model2d.Segment{}
	for _, cell := range v {
		for _, s := range cell.Edges {
			id := toEdgeID(s)
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, s)
		}
	}
	return out
}

// toEdgeID gives the same id for a segment regardless of direction
func toEdgeID(s *model2d.Segment) string {
	a, b := s[0], s[1]
	if b.X < a.X || (a.X == b.X && b.Y < a.Y) {
		a, b = b, a
	}
	return fmt.Sprintf("%v,%v-%v,%v", a.X, a.Y, b.X, b.Y)
}

func neighborsInDistance(tree *model2d.CoordTree, c model2d.Coord, epsilon float64) []model2d.Coord {
	for k := 2; true; k++ {
		neighbors := tree.KNN(k, c)
		if len(neighbors) < k {
			return neighbors
		}
		if neighbors[len(neighbors)-1].Dist(c) > epsilon {
			return neighbors[:len(neighbors)-1]
		}
	}
	panic("unreachable")
}
