package tilecoder

import "gonum.org/v1/gonum/mat"

// Limit is the closed range [Lower, Upper] covered along one dimension.
type Limit struct {
	Lower, Upper float64
}

// DimensionSpec describes how one dimension is split into tiles.
// Width is derived: (Upper-Lower)/Tiles.
type DimensionSpec struct {
	Tiles        int
	Lower, Upper float64
	Width        float64
}

// TileCoder maps coordinates of a bounded D-dimensional box to one active
// tile index per tiling. It is immutable once built and safe for concurrent
// use by any number of goroutines.
type TileCoder struct {
	specs     []DimensionSpec
	strides   []int      // mixed-radix stride of each dimension within a tiling
	offsets   *mat.Dense // tilings × D displacement fractions
	tilings   int
	blockSize int
	nTiles    int
}

// Option customizes construction of a TileCoder.
type Option func(*coderConfig)

type coderConfig struct {
	displacement DisplacementStrategy
}

func defaultCoderConfig() coderConfig {
	return coderConfig{displacement: Asymmetric}
}

// WithDisplacement overrides the displacement strategy.
// Panics on nil: a nil strategy is a programmer error, not bad input.
func WithDisplacement(s DisplacementStrategy) Option {
	if s == nil {
		panic("tilecoder: WithDisplacement(nil)")
	}
	return func(c *coderConfig) {
		c.displacement = s
	}
}
