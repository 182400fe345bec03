package tilecoder

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Features returns the binary feature vector of coord: length NTiles(),
// 1 at each active tile index and 0 elsewhere. Exactly Tilings() entries
// are non-zero.
func (tc *TileCoder) Features(coord []float64) (*mat.VecDense, error) {
	idx, err := tc.Lookup(coord)
	if err != nil {
		return nil, err
	}
	v := mat.NewVecDense(tc.nTiles, nil)
	for _, i := range idx {
		v.SetVec(i, 1)
	}
	return v, nil
}

// LookupBatch runs Lookup over every row of coords using up to workers
// goroutines (workers <= 0 means GOMAXPROCS). out[i] corresponds to
// coords[i]. The first failing row aborts the batch; its error carries
// the row index and wraps ErrDimensionMismatch.
func (tc *TileCoder) LookupBatch(coords [][]float64, workers int) ([][]int, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([][]int, len(coords))

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range coords {
		i := i
		g.Go(func() error {
			idx, err := tc.Lookup(coords[i])
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			out[i] = idx
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
