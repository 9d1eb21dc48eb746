// Package placement places non-overlapping spheres in a cube so that their
// front, right and top orthographic projections look like densely packed,
// non-overlapping circles.
//
// The Engine repeatedly samples a placeable pixel of the front view, picks a
// depth that is still placeable in both the right and top views, shrinks the
// radius until the sphere is free in all three views and commits it to the
// catalog. Committing paints the silhouette into the filled grids and removes
// a disc of radius r+RMin from the candidate grids. A sampled pixel that
// cannot host a sphere is marked dead. Each iteration therefore removes at
// least one front candidate and the loop ends after at most CubeSize²
// iterations.
//
// Runs are deterministic for a given Config, Seed included.
//
// # Radius Floor
//
// FloorPolicy selects how the shrink loop treats RMin. FloorReject (the
// default) only commits radii that were tested free. FloorAccept stops at
// RMin without testing and commits anyway, so spheres of radius RMin may
// overlap earlier ones.
package placement
