package voronoi

import (
	"github.com/unixpickle/model3d/model2d"
)

// Voronoi wraps a VoronoiDiagram built over a set of sample points
type Voronoi struct {
	vg  VoronoiDiagram
	min model2d.Coord
	max model2d.Coord
}

// New builds a voronoi diagram for the given sites, clipped to the
// rectangle (min, max).
// Nb. sites should be unique; duplicates end up sharing a cell.
func New(min, max model2d.Coord, sites []model2d.Coord) *Voronoi {
	me := &Voronoi{min: min, max: max}
	me.vg = VoronoiCells(min, max, sites)
	me.vg.Repair(1e-8)
	return me
}

// Bounds returns the clipping rect of this diagram
func (v *Voronoi) Bounds() (model2d.Coord, model2d.Coord) {
	return v.min, v.max
}

// Cells returns one cell per site, in the order the sites were given
func (v *Voronoi) Cells() []*VoronoiCell {
	return v.vg
}

// Edges returns all unique cell edges
func (v *Voronoi) Edges() []*model2d.Segment {
	return v.vg.Segments()
}
