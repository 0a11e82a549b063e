package poissondisk

// RandomSource is where the sampler gets all of it's randomness from.
// It's threaded through every call & advanced in place, so a seeded
// source gives the same points every time.
//
// Both *math/rand.Rand and *math/rand/v2.Rand satisfy this.
type RandomSource interface {
	// uniform value in [0, 1)
	Float32() float32

	// uniform value over the full uint32 range
	Uint32() uint32
}
