package tilecoder

// DisplacementStrategy yields the fractional shift, in tile widths, applied
// to dimension dim of tiling tiling. Implementations must be pure and return
// a value in [0,1); New rejects anything else.
type DisplacementStrategy interface {
	Displacement(tiling, dim, tilings, dims int) float64
}

// DisplacementFunc adapts an ordinary function to DisplacementStrategy.
type DisplacementFunc func(tiling, dim, tilings, dims int) float64

// Displacement calls f(tiling, dim, tilings, dims).
func (f DisplacementFunc) Displacement(tiling, dim, tilings, dims int) float64 {
	return f(tiling, dim, tilings, dims)
}

// Asymmetric is the default strategy:
//
//	displacement(t, d) = ((t × (2d+1)) mod tilings) / tilings
//
// Odd multipliers give every dimension a distinct stagger per tiling, so
// tiling offsets never line up along a single axis.
var Asymmetric DisplacementStrategy = Multipliers()

// Uniform shifts every dimension of tiling t by t/tilings, i.e. all tilings
// are displaced along the main diagonal.
var Uniform DisplacementStrategy = DisplacementFunc(func(tiling, _, tilings, _ int) float64 {
	return float64(tiling%tilings) / float64(tilings)
})

// Multipliers returns the strategy ((t × m[d]) mod tilings) / tilings.
// Dimensions past len(m) fall back to the odd multiplier 2d+1, so
// Multipliers() with no arguments is the asymmetric scheme.
// Negative multipliers are folded into [0, tilings).
func Multipliers(m ...int) DisplacementStrategy {
	mult := make([]int, len(m))
	copy(mult, m)

	return DisplacementFunc(func(tiling, dim, tilings, _ int) float64 {
		k := 2*dim + 1
		if dim < len(mult) {
			k = mult[dim]
		}
		r := (tiling * k) % tilings
		if r < 0 {
			r += tilings
		}
		return float64(r) / float64(tilings)
	})
}

// Jitter returns pseudo-random displacements derived from seed. The value
// for each (tiling, dim) pair is a pure function of (seed, tiling·dims+dim),
// so two coders built with the same seed share the same table.
// seed==0 uses defaultJitterSeed.
func Jitter(seed int64) DisplacementStrategy {
	if seed == 0 {
		seed = defaultJitterSeed
	}
	return DisplacementFunc(func(tiling, dim, _, dims int) float64 {
		x := mixSeed(seed, uint64(tiling*dims+dim))
		// top 53 bits → [0,1)
		return float64(x>>11) / (1 << 53)
	})
}

// defaultJitterSeed is the stable seed used when callers pass seed==0.
const defaultJitterSeed int64 = 1

// mixSeed is a SplitMix64 finalizer over (seed, stream).
func mixSeed(seed int64, stream uint64) uint64 {
	x := uint64(seed) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
