// Package tilecoding turns continuous state into sparse binary features for
// linear function approximation.
//
// 🚀 What is tile coding?
//
//	Several coarse grids ("tilings") are laid over a bounded space, each one
//	shifted by a fraction of a tile. A point activates exactly one tile per
//	tiling; nearby points share most active tiles, distant points share none.
//	A linear learner keeps one weight per tile and sums the active ones.
//
// ✨ Key features:
//   - any number of dimensions and tilings
//   - asymmetric (odd-multiplier) displacement by default, pluggable strategies
//   - boundary clamping: overshoot past the limits is never an error
//   - immutable coders, lock-free concurrent lookups, parallel batches
//   - YAML configuration and a small CLI
//
// Under the hood:
//
//	tilecoder/    — TileCoder, displacement strategies, feature vectors, config
//	cmd/tilecode/ — command-line front end over a YAML config
//
//	go get github.com/katalvlaran/tilecoding/tilecoder
package tilecoding
