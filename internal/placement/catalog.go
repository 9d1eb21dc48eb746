package placement

import "github.com/ironsheep/sphere-projections-mcp/internal/projection"

// Sphere is a committed sphere: integer centre inside the cube and radius.
type Sphere struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Z      int `json:"z"`
	Radius int `json:"radius"`
}

// Center returns the projected centre of the sphere in the given view.
func (s Sphere) Center(v projection.View) projection.Point {
	return projection.Project(v, s.X, s.Y, s.Z)
}

// Catalog is the append-only, ordered list of committed spheres.
type Catalog struct {
	spheres []Sphere
}

// Append adds a sphere to the end of the catalog.
func (c *Catalog) Append(s Sphere) {
	c.spheres = append(c.spheres, s)
}

// All returns a copy of the catalog contents in commit order.
func (c *Catalog) All() []Sphere {
	out := make([]Sphere, len(c.spheres))
	copy(out, c.spheres)
	return out
}

// Len returns the number of committed spheres.
func (c *Catalog) Len() int { return len(c.spheres) }
