// Package tilecoder turns a continuous coordinate into a small, fixed set of
// discrete "active tile" indices: a sparse binary feature expansion for
// linear function approximation.
//
// What:
//
//   - A TileCoder lays `tilings` overlapping grids over a bounded D-dimensional
//     box. Dimension d is split into dims[d] equal tiles.
//   - Each grid is shifted by a fraction of a tile width per dimension
//     (the displacement table). The default Asymmetric scheme shifts tiling t
//     along dimension d by ((t·(2d+1)) mod tilings)/tilings.
//   - Lookup returns one index per tiling. Tiling t owns the contiguous block
//     [t·BlockSize, (t+1)·BlockSize), so NTiles = tilings·Π dims.
//
// Why:
//
//   - Nearby coordinates share most of their active tiles, distant ones share
//     none: a weighted sum over the active tiles generalises locally.
//
// Usage:
//
//	tc, err := tilecoder.New(
//		[]int{10, 10},
//		[]tilecoder.Limit{{0, 10}, {0, 10}},
//		8,
//	)
//	if err != nil {
//		// errors.Is(err, tilecoder.ErrConfig)
//	}
//	weights := make([]float64, tc.NTiles())
//	idx, _ := tc.Lookup([]float64{3.6, 7.21})
//	var v float64
//	for _, i := range idx {
//		v += weights[i]
//	}
//
// Boundaries:
//
//	Coordinates outside [Lower, Upper] are clamped to the boundary tile, so
//	floating-point overshoot such as Upper+1e-12 is harmless.
//
// Concurrency:
//
//	A TileCoder is immutable after New. Lookup, Features and LookupBatch may
//	be called from any number of goroutines without locking.
//
// Complexity:
//
//   - New:    O(tilings·D) time and memory.
//   - Lookup: O(tilings·D) time, one allocation of length tilings.
//
// Errors:
//
//   - ErrConfig (and the sentinels wrapping it) from New and Config.Build.
//   - ErrDimensionMismatch from Lookup when len(coord) != D.
package tilecoder
