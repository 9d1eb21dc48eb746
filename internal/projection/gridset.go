package projection

import (
	"fmt"
	"math/rand"
)

// GridSet owns the filled and candidate grids of all three views.
type GridSet struct {
	size      int
	margin    int
	filled    [3]*Grid
	candidate [3]*Grid
}

// NewGridSet allocates six size×size grids. Filled grids start empty;
// candidate grids are placeable only inside [margin, size-margin) on both axes.
func NewGridSet(size, margin int) *GridSet {
	gs := &GridSet{size: size, margin: margin}
	for _, v := range Views {
		gs.filled[v] = NewGrid(size)
		cand := NewGrid(size)
		cand.SetRect(margin, margin, size-margin, size-margin)
		gs.candidate[v] = cand
	}
	return gs
}

// Size returns the side length shared by all grids.
func (gs *GridSet) Size() int { return gs.size }

// Margin returns the forbidden border width of the candidate grids.
func (gs *GridSet) Margin() int { return gs.margin }

// Filled returns the filled grid of a view. Callers must not modify it.
func (gs *GridSet) Filled(v View) *Grid { return gs.filled[v] }

// Candidates returns the candidate grid of a view. Callers must not modify it.
func (gs *GridSet) Candidates(v View) *Grid { return gs.candidate[v] }

// HasAnyCandidate reports whether the view still has a placeable pixel.
func (gs *GridSet) HasAnyCandidate(v View) bool { return gs.candidate[v].Any() }

// SampleCandidate draws one placeable pixel of the view uniformly at random.
//
// A column is chosen with probability proportional to its placeable count,
// then a row uniformly among the placeable rows of that column, so every
// placeable pixel has the same probability. It returns an error when the
// view has no placeable pixel.
func (gs *GridSet) SampleCandidate(v View, rng *rand.Rand) (Point, error) {
	g := gs.candidate[v]
	if !g.Any() {
		return Point{}, fmt.Errorf("no candidate pixels left in %s view", v)
	}
	p, ok := g.Nth(rng.Intn(g.Count()))
	if !ok {
		return Point{}, fmt.Errorf("candidate counts out of sync in %s view", v)
	}
	return p, nil
}

// SharedThirdAxis returns, in ascending order, the z positions that are still
// placeable both in row y of the right view and in row x of the top view.
func (gs *GridSet) SharedThirdAxis(y, x int) []int {
	right := gs.candidate[Right]
	top := gs.candidate[Top]
	if y < 0 || y >= gs.size || x < 0 || x >= gs.size {
		return nil
	}
	var zs []int
	for z := 0; z < gs.size; z++ {
		if right.At(z, y) && top.At(z, x) {
			zs = append(zs, z)
		}
	}
	return zs
}

// IsFree reports whether a disc of the given radius centred on p touches no
// filled pixel of the view. It does not modify any grid.
func (gs *GridSet) IsFree(v View, p Point, radius int) bool {
	return !gs.filled[v].DiscHitsAny(p, radius)
}

// FitsAll reports whether a sphere at (x, y, z) with the given radius is free
// in every view. Views are tested front, right, top.
func (gs *GridSet) FitsAll(x, y, z, radius int) bool {
	for _, v := range Views {
		if !gs.IsFree(v, Project(v, x, y, z), radius) {
			return false
		}
	}
	return true
}

// PaintSphere draws the silhouette of a sphere into all three filled grids.
func (gs *GridSet) PaintSphere(x, y, z, radius int) {
	for _, v := range Views {
		gs.filled[v].FillDisc(Project(v, x, y, z), radius)
	}
}

// SuppressNeighborhood clears a disc of the given radius around the projected
// centre in all three candidate grids.
func (gs *GridSet) SuppressNeighborhood(x, y, z, radius int) {
	for _, v := range Views {
		gs.candidate[v].ClearDisc(Project(v, x, y, z), radius)
	}
}

// MarkDead clears a single candidate pixel of the view.
func (gs *GridSet) MarkDead(v View, p Point) {
	gs.candidate[v].Clear(p.Col, p.Row)
}

// Coverage returns the fraction of the view covered by sphere silhouettes.
func (gs *GridSet) Coverage(v View) float64 {
	if gs.size == 0 {
		return 0
	}
	return float64(gs.filled[v].Count()) / float64(gs.size*gs.size)
}
