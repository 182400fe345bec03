package tilecoder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// New builds a TileCoder over len(dims) dimensions. dims[i] is the number of
// tiles along dimension i, lims[i] its covered range, tilings the number of
// overlapping grids.
//
// Steps:
//  1. Validate counts and limits.
//  2. Derive per-dimension tile widths and mixed-radix strides.
//  3. Fill the tilings × D displacement table from the strategy.
//
// Errors (all wrap ErrConfig):
//   - ErrEmptyDims, ErrTileCount, ErrLimitsMismatch, ErrBadLimits,
//     ErrTilings, ErrTooManyTiles, ErrBadDisplacement.
//
// Complexity: O(tilings·D) time and memory.
func New(dims []int, lims []Limit, tilings int, opts ...Option) (*TileCoder, error) {
	cfg := defaultCoderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(dims) == 0 {
		return nil, ErrEmptyDims
	}
	if len(lims) != len(dims) {
		return nil, fmt.Errorf("len(lims)=%d, len(dims)=%d: %w", len(lims), len(dims), ErrLimitsMismatch)
	}
	if tilings < 1 {
		return nil, fmt.Errorf("tilings=%d: %w", tilings, ErrTilings)
	}
	if err := validateLimits(lims); err != nil {
		return nil, err
	}

	d := len(dims)
	specs := make([]DimensionSpec, d)
	strides := make([]int, d)
	blockSize := 1
	for i, n := range dims {
		if n < 1 {
			return nil, fmt.Errorf("dims[%d]=%d: %w", i, n, ErrTileCount)
		}
		w := (lims[i].Upper - lims[i].Lower) / float64(n)
		if !(w > 0) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("dims[%d]: tile width %g: %w", i, w, ErrBadLimits)
		}
		specs[i] = DimensionSpec{Tiles: n, Lower: lims[i].Lower, Upper: lims[i].Upper, Width: w}
		strides[i] = blockSize
		if blockSize > math.MaxInt/n {
			return nil, ErrTooManyTiles
		}
		blockSize *= n
	}
	if blockSize > math.MaxInt/tilings {
		return nil, ErrTooManyTiles
	}

	offsets := mat.NewDense(tilings, d, nil)
	for t := 0; t < tilings; t++ {
		for j := 0; j < d; j++ {
			v := cfg.displacement.Displacement(t, j, tilings, d)
			if !(v >= 0 && v < 1) {
				return nil, fmt.Errorf("tiling %d, dim %d: %v: %w", t, j, v, ErrBadDisplacement)
			}
			offsets.Set(t, j, v)
		}
	}

	return &TileCoder{
		specs:     specs,
		strides:   strides,
		offsets:   offsets,
		tilings:   tilings,
		blockSize: blockSize,
		nTiles:    tilings * blockSize,
	}, nil
}

// validateLimits rejects NaN/Inf bounds and lower >= upper.
func validateLimits(lims []Limit) error {
	bounds := make([]float64, 0, 2*len(lims))
	for _, l := range lims {
		bounds = append(bounds, l.Lower, l.Upper)
	}
	if floats.HasNaN(bounds) {
		return fmt.Errorf("NaN bound: %w", ErrBadLimits)
	}
	for i, l := range lims {
		if math.IsInf(l.Lower, 0) || math.IsInf(l.Upper, 0) {
			return fmt.Errorf("lims[%d]=[%g,%g]: %w", i, l.Lower, l.Upper, ErrBadLimits)
		}
		if l.Lower >= l.Upper {
			return fmt.Errorf("lims[%d]=[%g,%g]: %w", i, l.Lower, l.Upper, ErrBadLimits)
		}
	}
	return nil
}

// Lookup returns the active tile index of every tiling for coord, in
// ascending tiling order. The t-th index lies in
// [t·BlockSize(), (t+1)·BlockSize()).
//
// Coordinates outside the configured limits are clamped to the boundary
// tile, never rejected. NaN maps to tile 0 of that dimension.
//
// Returns ErrDimensionMismatch if len(coord) != Dims().
// Complexity: O(tilings·D); allocates only the result.
func (tc *TileCoder) Lookup(coord []float64) ([]int, error) {
	return tc.LookupInto(make([]int, 0, tc.tilings), coord)
}

// LookupInto is Lookup appending into dst. On error dst is returned unchanged.
func (tc *TileCoder) LookupInto(dst []int, coord []float64) ([]int, error) {
	if len(coord) != len(tc.specs) {
		return dst, fmt.Errorf("got %d values, want %d: %w", len(coord), len(tc.specs), ErrDimensionMismatch)
	}
	for t := 0; t < tc.tilings; t++ {
		disp := tc.offsets.RawRowView(t)
		flat := 0
		for d := range tc.specs {
			flat += tc.tileIndex(d, coord[d], disp[d]) * tc.strides[d]
		}
		dst = append(dst, t*tc.blockSize+flat)
	}
	return dst, nil
}

// tileIndex is floor((x-lower)/width + disp) clamped to [0, tiles-1].
func (tc *TileCoder) tileIndex(d int, x, disp float64) int {
	s := &tc.specs[d]
	scaled := (x-s.Lower)/s.Width + disp
	switch {
	case !(scaled >= 0): // negative or NaN
		return 0
	case scaled >= float64(s.Tiles):
		return s.Tiles - 1
	default:
		return int(scaled)
	}
}

// NTiles is the total addressable tile count, tilings × Π dims.
// A weight vector of exactly this length covers every index Lookup returns.
func (tc *TileCoder) NTiles() int { return tc.nTiles }

// BlockSize is the number of tiles in one tiling, Π dims.
func (tc *TileCoder) BlockSize() int { return tc.blockSize }

// Tilings returns the number of tilings.
func (tc *TileCoder) Tilings() int { return tc.tilings }

// Dims returns the dimensionality D.
func (tc *TileCoder) Dims() int { return len(tc.specs) }

// Spec returns the derived spec of dimension d. Panics if d is out of range.
func (tc *TileCoder) Spec(d int) DimensionSpec { return tc.specs[d] }

// Specs returns a copy of all dimension specs.
func (tc *TileCoder) Specs() []DimensionSpec {
	out := make([]DimensionSpec, len(tc.specs))
	copy(out, tc.specs)
	return out
}

// Displacements returns a copy of the tilings × D displacement table.
func (tc *TileCoder) Displacements() mat.Matrix {
	return mat.DenseCopyOf(tc.offsets)
}
