package tilecoder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tilecoding/tilecoder"
)

func build(t *testing.T, dims []int, tilings int, s tilecoder.DisplacementStrategy) *tilecoder.TileCoder {
	t.Helper()
	lims := make([]tilecoder.Limit, len(dims))
	for i := range lims {
		lims[i] = tilecoder.Limit{Lower: 0, Upper: float64(dims[i])}
	}
	tc, err := tilecoder.New(dims, lims, tilings, tilecoder.WithDisplacement(s))
	require.NoError(t, err)
	return tc
}

// TestAsymmetric_Table checks every entry against ((t·(2d+1)) mod T)/T.
func TestAsymmetric_Table(t *testing.T) {
	const tilings = 8
	tc := build(t, []int{4, 4, 4}, tilings, tilecoder.Asymmetric)
	table := tc.Displacements()

	for tl := 0; tl < tilings; tl++ {
		for d := 0; d < 3; d++ {
			want := float64((tl*(2*d+1))%tilings) / tilings
			assert.Equal(t, want, table.At(tl, d), "t=%d d=%d", tl, d)
		}
	}
	// tiling 0 is never displaced
	assert.Equal(t, []float64{0, 0, 0}, mat.Row(nil, 0, table))
}

// TestAsymmetric_IsDefault: omitting WithDisplacement yields the same table.
func TestAsymmetric_IsDefault(t *testing.T) {
	lims := []tilecoder.Limit{{Lower: 0, Upper: 1}, {Lower: 0, Upper: 1}}
	def, err := tilecoder.New([]int{5, 5}, lims, 6)
	require.NoError(t, err)
	explicit := build(t, []int{5, 5}, 6, tilecoder.Asymmetric)
	assert.True(t, mat.Equal(def.Displacements(), explicit.Displacements()))
}

// TestMultipliers covers defaults, overrides and negative folding.
func TestMultipliers(t *testing.T) {
	asym := build(t, []int{3, 3}, 8, tilecoder.Asymmetric)
	none := build(t, []int{3, 3}, 8, tilecoder.Multipliers())
	assert.True(t, mat.Equal(asym.Displacements(), none.Displacements()), "Multipliers() must equal Asymmetric")

	ones := build(t, []int{3, 3}, 8, tilecoder.Multipliers(1, 1))
	uni := build(t, []int{3, 3}, 8, tilecoder.Uniform)
	assert.True(t, mat.Equal(ones.Displacements(), uni.Displacements()), "Multipliers(1,1) must equal Uniform")

	// only dim 0 overridden; dim 1 keeps 2·1+1 = 3
	partial := build(t, []int{3, 3}, 8, tilecoder.Multipliers(5))
	assert.Equal(t, 5.0/8, partial.Displacements().At(1, 0))
	assert.Equal(t, 3.0/8, partial.Displacements().At(1, 1))

	neg := build(t, []int{3}, 4, tilecoder.Multipliers(-1))
	assert.Equal(t, 0.75, neg.Displacements().At(1, 0))
}

// TestJitter: reproducible for equal seeds, in range, seed-dependent.
func TestJitter(t *testing.T) {
	a := build(t, []int{6, 6}, 16, tilecoder.Jitter(7))
	b := build(t, []int{6, 6}, 16, tilecoder.Jitter(7))
	c := build(t, []int{6, 6}, 16, tilecoder.Jitter(8))

	assert.True(t, mat.Equal(a.Displacements(), b.Displacements()))
	assert.False(t, mat.Equal(a.Displacements(), c.Displacements()))

	zero := build(t, []int{6, 6}, 16, tilecoder.Jitter(0))
	one := build(t, []int{6, 6}, 16, tilecoder.Jitter(1))
	assert.True(t, mat.Equal(zero.Displacements(), one.Displacements()), "seed 0 falls back to the default seed")

	r, cols := a.Displacements().Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			v := a.Displacements().At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
}

// TestDisplacement_Rejected: strategies producing values outside [0,1)
// fail construction with ErrBadDisplacement.
func TestDisplacement_Rejected(t *testing.T) {
	bad := map[string]float64{
		"one":      1,
		"negative": -0.1,
		"NaN":      math.NaN(),
		"+Inf":     math.Inf(1),
	}
	for name, v := range bad {
		t.Run(name, func(t *testing.T) {
			s := tilecoder.DisplacementFunc(func(tiling, _, _, _ int) float64 {
				if tiling == 2 {
					return v
				}
				return 0
			})
			tc, err := tilecoder.New([]int{4}, []tilecoder.Limit{{Lower: 0, Upper: 1}}, 4, tilecoder.WithDisplacement(s))
			assert.Nil(t, tc)
			assert.ErrorIs(t, err, tilecoder.ErrBadDisplacement)
			assert.ErrorIs(t, err, tilecoder.ErrConfig)
		})
	}
}

// TestDisplacementFunc_Arguments: the strategy sees every (t, d) pair with
// the configured totals.
func TestDisplacementFunc_Arguments(t *testing.T) {
	type call struct{ t, d, tilings, dims int }
	var calls []call
	s := tilecoder.DisplacementFunc(func(tiling, dim, tilings, dims int) float64 {
		calls = append(calls, call{tiling, dim, tilings, dims})
		return 0
	})
	build(t, []int{2, 2, 2}, 3, s)

	require.Len(t, calls, 9)
	for _, c := range calls {
		assert.Equal(t, 3, c.tilings)
		assert.Equal(t, 3, c.dims)
	}
	assert.Equal(t, call{2, 2, 3, 3}, calls[len(calls)-1])
}

// TestWithDisplacement_NilPanics: nil strategy is a programmer error.
func TestWithDisplacement_NilPanics(t *testing.T) {
	assert.Panics(t, func() { tilecoder.WithDisplacement(nil) })
}
