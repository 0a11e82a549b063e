package poissondisk

import (
	"log/slog"
	"time"

	"github.com/unixpickle/essentials"
)

// Sample returns points in (0, width) x (0, height) where no two points are
// closer than radius, using Bridson's method with the half circle annulus.
//
// attempts is the number of candidates tried around each active point before
// it's retired. The rng is advanced in place; seeding it the same way gives
// the same points.
//
// Returns an error wrapping ErrInvalidParameter if width, height or radius
// are not finite positive numbers.
func Sample(width, height, radius float32, attempts uint32, rng RandomSource) ([]Point2d, error) {
	err := validate(width, height, radius)
	if err != nil {
		return nil, err
	}
	s := newSampler(width, height, radius, attempts, rng)
	return s.run(), nil
}

// sampler holds the state of a single run. Nothing here is shared
// between runs.
type sampler struct {
	width    float32
	height   float32
	radius   float32
	attempts uint32
	rng      RandomSource

	// candidate generator, see AnnulusMode
	annulus func(p Point2d, r float32, rng RandomSource) Point2d

	// 0 or less is "no max"
	maxPoints int

	log *slog.Logger

	grid     *Grid2d
	active   []Point2d
	inactive []Point2d
}

// newSampler returns a sampler with default settings
func newSampler(width, height, radius float32, attempts uint32, rng RandomSource) *sampler {
	return &sampler{
		width:    width,
		height:   height,
		radius:   radius,
		attempts: attempts,
		rng:      rng,
		annulus:  Point2d.RandInAnnulus,
		log:      slog.New(slog.DiscardHandler),
		grid:     NewGrid(radius),
		active:   []Point2d{},
		inactive: []Point2d{},
	}
}

// setMode picks the candidate generator
func (s *sampler) setMode(mode AnnulusMode) {
	if mode == FullCircle {
		s.annulus = Point2d.RandInFullAnnulus
	} else {
		s.annulus = Point2d.RandInAnnulus
	}
}

// run performs the sampling & returns the retired (inactive) points,
// which by the time the active list is empty is every accepted point.
func (s *sampler) run() []Point2d {
	start := time.Now()
	corner := Point2d{X: s.width, Y: s.height}

	seed := RandInRect(s.width, s.height, s.rng)
	s.active = append(s.active, seed)
	s.grid.AddPoint(seed)

	for len(s.active) > 0 {
		if s.full() {
			// we're not allowed to place any more, retire everything
			s.inactive = append(s.inactive, s.active...)
			s.active = s.active[:0]
			break
		}

		i := int(s.rng.Uint32() % uint32(len(s.active)))
		pt := s.active[i]
		essentials.UnorderedDelete(&s.active, i)

		found, ok := s.candidate(pt, corner)
		if !ok {
			s.inactive = append(s.inactive, pt)
			continue
		}

		s.active = append(s.active, pt, found)
		if !s.grid.AddPoint(found) {
			// shouldn't be possible with cells sized r/sqrt(2)
			s.log.Warn("grid cell collision", "point", found, "radius", s.radius)
		}
	}

	s.log.Debug(
		"sampling complete",
		"points", len(s.inactive),
		"width", s.width,
		"height", s.height,
		"radius", s.radius,
		"attempts", s.attempts,
		"took", time.Since(start),
	)

	return s.inactive
}

// candidate tries up to `attempts` points around pt, returning the first
// that sits inside the area & isn't too close to anything.
func (s *sampler) candidate(pt, corner Point2d) (Point2d, bool) {
	for i := uint32(0); i < s.attempts; i++ {
		c := s.annulus(pt, s.radius, s.rng)
		if c.InBox(corner) && !s.grid.HasNearby(s.radius, c) {
			return c, true
		}
	}
	return Point2d{}, false
}

// full returns if we've hit maxPoints
func (s *sampler) full() bool {
	return s.maxPoints > 0 && s.grid.Len() >= s.maxPoints
}
