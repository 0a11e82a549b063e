package poissondisk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStats(t *testing.T) {
	pts := []Point2d{Pt(1, 1), Pt(4, 1), Pt(4, 5)}
	g := NewGrid(2)
	for _, p := range pts {
		g.AddPoint(p)
	}

	st := newStats(10, 10, pts, g)

	assert.Equal(t, 3, st.Count)
	assert.Equal(t, 3, st.Cells)
	assert.InDelta(t, 0.03, st.Density, 1e-9)

	// nearest distances are 3, 3 & 4
	assert.InDelta(t, 3, st.MinDistance, 1e-9)
	assert.InDelta(t, 10.0/3, st.MeanNearest, 1e-9)
	assert.InDelta(t, math.Sqrt(1.0/3), st.StdDevNearest, 1e-9)
}

func TestNewStatsTooFewPoints(t *testing.T) {
	st := newStats(10, 10, []Point2d{Pt(5, 5)}, nil)
	assert.Equal(t, 1, st.Count)
	assert.Equal(t, 0, st.Cells)
	assert.Equal(t, 0.0, st.MinDistance)
	assert.Equal(t, 0.0, st.MeanNearest)

	st = newStats(10, 10, nil, nil)
	assert.Equal(t, 0, st.Count)
	assert.Equal(t, 0.0, st.Density)
}

func TestSortPoints(t *testing.T) {
	pts := []Point2d{Pt(3, 2), Pt(1, 2), Pt(9, 0)}
	SortPoints(pts)
	assert.Equal(t, []Point2d{Pt(9, 0), Pt(1, 2), Pt(3, 2)}, pts)
}
