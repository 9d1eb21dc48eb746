// Package imaging renders the projections of a placement run as PNG images.
//
// Every view is drawn at one image pixel per grid cell, with (0,0) at the
// top-left corner, X along grid columns and Y along grid rows:
//   - Front: X = x, Y = y
//   - Right: X = z, Y = y
//   - Top:   X = z, Y = x
//
// # Render Modes
//
//   - filled: silhouettes of committed spheres, white on black
//   - candidate: pixels where a new centre could still go, white on black
//   - spheres: each silhouette in its own hue, later spheres on top
//   - outline: edges of the filled grid
//
// ViewSheet combines the three views into one unfolded-cube image; Scale and
// GridOverlay prepare images for inspection.
//
// # Output
//
// Results are returned as base64-encoded PNG in an ImageResult and can also
// be written to disk. Output paths must end in ".png".
//
// # Thread Safety
//
// Rendering only reads the grids. It is safe to render a finished run from
// several goroutines, but not a run whose engine is still stepping.
package imaging
