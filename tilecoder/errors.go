// Package tilecoder: sentinel error set.
//
// Every construction failure wraps ErrConfig so callers can match the whole
// class with errors.Is(err, ErrConfig) or a single cause with its own
// sentinel. Lookup has exactly one failure mode: ErrDimensionMismatch.
package tilecoder

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is the root of all invalid-construction errors.
	ErrConfig = errors.New("tilecoder: invalid configuration")

	// ErrEmptyDims indicates no dimensions were given.
	ErrEmptyDims = fmt.Errorf("%w: dims must be non-empty", ErrConfig)

	// ErrTileCount indicates a dimension with fewer than one tile.
	ErrTileCount = fmt.Errorf("%w: tile count must be >= 1", ErrConfig)

	// ErrLimitsMismatch indicates len(lims) != len(dims).
	ErrLimitsMismatch = fmt.Errorf("%w: limits and dims differ in length", ErrConfig)

	// ErrBadLimits indicates lower >= upper, a non-finite bound, or a
	// tile width that is not a positive finite number.
	ErrBadLimits = fmt.Errorf("%w: limits must be finite with lower < upper", ErrConfig)

	// ErrTilings indicates a tiling count below one.
	ErrTilings = fmt.Errorf("%w: tilings must be >= 1", ErrConfig)

	// ErrTooManyTiles indicates the tile count does not fit in an int.
	ErrTooManyTiles = fmt.Errorf("%w: total tile count overflows int", ErrConfig)

	// ErrBadDisplacement indicates a strategy returned a value outside [0,1).
	ErrBadDisplacement = fmt.Errorf("%w: displacement must lie in [0,1)", ErrConfig)

	// ErrUnknownScheme indicates a config file named an unsupported scheme.
	ErrUnknownScheme = fmt.Errorf("%w: unknown displacement scheme", ErrConfig)

	// ErrDimensionMismatch indicates a coordinate whose length differs
	// from the configured dimensionality.
	ErrDimensionMismatch = errors.New("tilecoder: coordinate dimension mismatch")
)
