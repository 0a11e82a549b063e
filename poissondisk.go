package poissondisk

import (
	"encoding/json"
	"fmt"
	"image"
	"math/rand"
	"os"
	"time"

	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/poissondisk/internal/voronoi"
)

var (
	// ErrInvalidParameter implies the area or radius can't be sampled
	// (zero, negative, NaN or infinite).
	ErrInvalidParameter = fmt.Errorf("invalid sampling parameter")
)

// Sampling holds the result of a run along with enough information
// to reproduce it.
type Sampling struct {
	cfg *Config

	rng  *rand.Rand
	grid *Grid2d

	Width  float32
	Height float32
	Radius float32
	Seed   int64

	Points []Point2d
	Stats  *Stats `json:",omitempty"`
}

// New runs the sampler with the given config.
func New(cfg *Config) (*Sampling, error) {
	s := &Sampling{cfg: cfg}
	return s, s.build()
}

// JSON returns the sampling as json.
func (s *Sampling) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// SaveJSON writes a json file to the given path.
func (s *Sampling) SaveJSON(fpath string) error {
	data, err := s.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}

// Grid returns the spatial hash built during sampling
func (s *Sampling) Grid() *Grid2d {
	return s.grid
}

// Map returns a PointMap for drawing this sampling.
func (s *Sampling) Map() *PointMap {
	return newPointMap(s)
}

// Voronoi returns the voronoi diagram of the sampled points, clipped to
// the sampling area. Nb. this is O(n^2), fine for a few thousand points.
func (s *Sampling) Voronoi() *voronoi.Voronoi {
	return voronoi.New(
		model2d.Coord{X: 0, Y: 0},
		model2d.Coord{X: float64(s.Width), Y: float64(s.Height)},
		toCoords(s.Points),
	)
}

// Bounds returns the sampling area as an image.Rectangle (rounded up)
// scaled by `scale` pixels per unit.
func (s *Sampling) Bounds(scale float64) image.Rectangle {
	return image.Rect(0, 0, ceilInt(float64(s.Width)*scale), ceilInt(float64(s.Height)*scale))
}

// build runs the sampler. init must come first as it sets up the rng.
func (s *Sampling) build() error {
	err := s.init()
	if err != nil {
		return err
	}

	smp := newSampler(s.Width, s.Height, s.Radius, s.cfg.Attempts, s.rng)
	smp.setMode(s.cfg.Annulus)
	smp.maxPoints = s.cfg.MaxPoints
	if s.cfg.Logger != nil {
		smp.log = s.cfg.Logger.With("seed", s.Seed)
	}

	s.Points = smp.run()
	s.grid = smp.grid
	s.Stats = newStats(s.Width, s.Height, s.Points, s.grid)

	return nil
}

// init checks config & sets up the rng
func (s *Sampling) init() error {
	if s.cfg == nil {
		s.cfg = DefaultConfig()
	}

	err := s.cfg.Validate()
	if err != nil {
		return err
	}

	if s.cfg.Seed == 0 {
		s.cfg.Seed = time.Now().UnixNano()
	}
	s.Seed = s.cfg.Seed
	s.rng = rand.New(rand.NewSource(s.cfg.Seed))

	s.Width = s.cfg.Width
	s.Height = s.cfg.Height
	s.Radius = s.cfg.Radius

	return nil
}
