package core

import (
	"fmt"
	"math"
	"math/rand"
)

// MaxRejectionAttempts caps the rejection loop in RandomInUnitSphere.
// Each attempt is accepted with probability pi/6, so hitting the cap means the sampler is broken.
const MaxRejectionAttempts = 1000

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomFloatInRange returns a random float64 in [min, max)
func RandomFloatInRange(sampler Sampler, min, max float64) float64 {
	return min + (max-min)*sampler.Get1D()
}

// RandomVec3 returns a vector with each component in [0, 1)
func RandomVec3(sampler Sampler) Vec3 {
	return sampler.Get3D()
}

// RandomVec3InRange returns a vector with each component in [min, max)
func RandomVec3InRange(sampler Sampler, min, max float64) Vec3 {
	return NewVec3(
		RandomFloatInRange(sampler, min, max),
		RandomFloatInRange(sampler, min, max),
		RandomFloatInRange(sampler, min, max),
	)
}

// RandomInUnitSphere returns a point strictly inside the unit ball by rejection sampling.
// Panics if no candidate is accepted within MaxRejectionAttempts draws.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for attempt := 0; attempt < MaxRejectionAttempts; attempt++ {
		p := RandomVec3InRange(sampler, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
	panic(fmt.Sprintf("no point inside unit sphere after %d attempts", MaxRejectionAttempts))
}

// RandomUnitVector returns a random direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).UnitVector()
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
