package poissondisk

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// ColourScheme defines how a sampling should be drawn.
// Nil colours are not drawn.
type ColourScheme struct {
	// pixels per unit of sampling space
	Scale float64

	// radius of each point in pixels, at least 1 pixel is drawn
	PointRadius float64

	Background color.Color
	Points     color.Color

	// Cells shades grid cells that hold a point
	Cells color.Color

	// Edges draws the voronoi diagram of the points. Slow on large sets.
	Edges color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Scale:       8,
		PointRadius: 2,
		Background:  colornames.White,
		Points:      colornames.Black,
	}
}

// PointMap is a graphical representation of a Sampling
type PointMap struct {
	s *Sampling
}

// newPointMap returns a map for the given sampling
func newPointMap(s *Sampling) *PointMap {
	return &PointMap{s: s}
}

// Image returns the sampling drawn with the given scheme.
// Image y runs down the page, so sampling y is flipped to keep (0,0)
// in the bottom left.
func (m *PointMap) Image(scheme *ColourScheme) image.Image {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	scale := scheme.Scale
	if scale <= 0 {
		scale = 1
	}

	bnds := m.s.Bounds(scale)
	ctx := gg.NewContextForRGBA(image.NewRGBA(bnds))
	h := float64(bnds.Max.Y)

	if scheme.Background != nil {
		ctx.SetColor(scheme.Background)
		ctx.Clear()
	}

	if scheme.Cells != nil && m.s.grid != nil {
		m.drawCells(ctx, scheme.Cells, scale, h)
	}

	if scheme.Edges != nil && len(m.s.Points) > 0 {
		ctx.SetColor(scheme.Edges)
		ctx.SetLineWidth(1)
		for _, e := range m.s.Voronoi().Edges() {
			ctx.DrawLine(e[0].X*scale, h-e[0].Y*scale, e[1].X*scale, h-e[1].Y*scale)
			ctx.Stroke()
		}
	}

	if scheme.Points != nil {
		r := scheme.PointRadius
		if r < 1 {
			r = 1
		}
		ctx.SetColor(scheme.Points)
		for _, p := range m.s.Points {
			ctx.DrawCircle(float64(p.X)*scale, h-float64(p.Y)*scale, r)
			ctx.Fill()
		}
	}

	return ctx.Image()
}

// drawCells shades every occupied grid cell
func (m *PointMap) drawCells(ctx *gg.Context, col color.Color, scale, h float64) {
	size := float64(m.s.grid.CellSize())
	cols := ceilInt(float64(m.s.Width) / size)
	rows := ceilInt(float64(m.s.Height) / size)

	bm := m.s.grid.Occupancy(cols, rows)
	ctx.SetColor(col)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if !bm.Get(y*cols + x) {
				continue
			}
			px := float64(x) * size * scale
			py := h - float64(y+1)*size*scale
			ctx.DrawRectangle(px, py, size*scale, size*scale)
			ctx.Fill()
		}
	}
}

// SavePNG draws the sampling with the given scheme & writes it to disk.
func (m *PointMap) SavePNG(fpath string, scheme *ColourScheme) error {
	return savePNG(fpath, m.Image(scheme))
}
