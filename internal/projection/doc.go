// Package projection maintains the three orthographic views of a cubic volume
// as pairs of square boolean grids.
//
// Each view owns a filled grid, marking pixels covered by the silhouette of a
// committed sphere, and a candidate grid, marking pixels where the centre of a
// new sphere may still be placed. Filled cells are only ever set and candidate
// cells are only ever cleared once a GridSet has been created.
//
// # Coordinate System
//
// Grids are indexed by (col, row) with (0,0) at the top-left corner. The views
// share axes pairwise:
//   - Front: col = x, row = y
//   - Right: col = z, row = y
//   - Top:   col = z, row = x
//
// # Discs
//
// A disc of radius R centred on (cc, cr) covers every pixel (c, r) inside the
// grid with (c-cc)² + (r-cr)² <= R². A radius of zero covers the centre pixel
// only.
//
// # Thread Safety
//
// Grid and GridSet are not safe for concurrent use. Independent GridSets share
// no state and may be used from different goroutines.
package projection
