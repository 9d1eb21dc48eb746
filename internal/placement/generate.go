package placement

import "github.com/ironsheep/sphere-projections-mcp/internal/projection"

// Result is the outcome of a complete run.
type Result struct {
	Config  Config   `json:"config"`
	Spheres []Sphere `json:"spheres"`
	Stats   Stats    `json:"stats"`

	// Grids holds the final grids, for rendering.
	Grids *projection.GridSet `json:"-"`
}

// Generate validates cfg, runs the placement loop to completion and returns
// the committed spheres.
//
// The same Config (including Seed) always yields the same spheres.
func Generate(cfg Config, opts ...Option) (*Result, error) {
	e, err := NewEngine(cfg, opts...)
	if err != nil {
		return nil, err
	}
	spheres := e.Run()
	return &Result{
		Config:  e.cfg,
		Spheres: spheres,
		Stats:   e.Stats(),
		Grids:   e.Grids(),
	}, nil
}
