// Package overlap scores two event streams with the simplest of the five
// algorithms: any-overlap, any-count-as-one. It trades TAES's fractional
// precision for a coarse, robust sanity check that is cheap to compute and
// easy to reason about.
package overlap
