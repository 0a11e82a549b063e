package poissondisk

import (
	"github.com/chewxy/math32"
)

// Point2d is a point in the sampling area. Lower left corner of the
// area is always (0, 0).
type Point2d struct {
	X float32
	Y float32
}

// Pt is shorthand for Point2d{x, y}
func Pt(x, y float32) Point2d {
	return Point2d{X: x, Y: y}
}

// RandInRect returns a point uniformly placed in [0, width) x [0, height).
// Draws x first, then y.
func RandInRect(width, height float32, rng RandomSource) Point2d {
	x := rng.Float32() * width
	y := rng.Float32() * height
	return Point2d{X: x, Y: y}
}

// Distance between p & o. Uses hypot so large values don't overflow.
func (p Point2d) Distance(o Point2d) float32 {
	return math32.Hypot(o.X-p.X, o.Y-p.Y)
}

// RandInAnnulus returns a point between r and 2r away from p.
//
// The radius is linear in [r, 2r) (not uniform by area) and the angle only
// covers [0, Pi). With sin on x & cos on y that means candidates never land
// to the left of p. See RandInFullAnnulus for the uniform version.
func (p Point2d) RandInAnnulus(r float32, rng RandomSource) Point2d {
	radius := rng.Float32()*r + r
	xd, yd := math32.Sincos(rng.Float32() * math32.Pi)
	return Point2d{X: xd*radius + p.X, Y: yd*radius + p.Y}
}

// RandInFullAnnulus returns a point uniformly distributed (by area) in the
// ring between r and 2r around p, at any angle.
func (p Point2d) RandInFullAnnulus(r float32, rng RandomSource) Point2d {
	// area between r and 2r is 3*pi*r^2
	radius := math32.Sqrt(rng.Float32()*3*r*r + r*r)
	xd, yd := math32.Sincos(rng.Float32() * 2 * math32.Pi)
	return Point2d{X: xd*radius + p.X, Y: yd*radius + p.Y}
}

// InBox returns if p sits strictly inside the rectangle from (0,0)
// to corner. Points on the border are outside.
func (p Point2d) InBox(corner Point2d) bool {
	return p.X < corner.X && p.Y < corner.Y && p.X > 0 && p.Y > 0
}

// WithinR returns if o is strictly closer than r to p
func (p Point2d) WithinR(r float32, o Point2d) bool {
	return p.Distance(o) < r
}

// isFinite returns false for NaN & +/- Inf
func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
