// Package poissondisk generates blue noise point sets using Bridson's
// variant of Poisson-disk sampling.
//
// Points are placed inside a width x height rectangle (lower left corner at
// the origin) such that no two points are closer than a given radius. A
// uniform grid keeps the "is anything too close" test O(1), so a run is
// roughly linear in the number of points placed.
//
// The simplest entry point is Sample, which takes the caller's random
// source. New takes a Config, seeds it's own source & returns a Sampling
// that can be saved as json or drawn as a png.
package poissondisk
