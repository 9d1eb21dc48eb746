package placement

import (
	"fmt"
	"math/rand"

	"github.com/ironsheep/sphere-projections-mcp/internal/projection"
)

// Outcome describes what a single Step did.
type Outcome int

const (
	// Committed means a sphere was added to the catalog.
	Committed Outcome = iota
	// NoSharedAxis means the sampled front pixel had no z position free in
	// both the right and top views and was marked dead.
	NoSharedAxis
	// FloorRejected means no radius >= RMin fitted and the front pixel was
	// marked dead (FloorReject only).
	FloorRejected
)

func (o Outcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case NoSharedAxis:
		return "no_shared_axis"
	case FloorRejected:
		return "floor_rejected"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Stats counts what happened during a run.
type Stats struct {
	Iterations    int                `json:"iterations"`
	Committed     int                `json:"committed"`
	DeadPixels    int                `json:"dead_pixels"`
	FloorRejected int                `json:"floor_rejected"`
	FloorAccepted int                `json:"floor_accepted"`
	Coverage      map[string]float64 `json:"coverage"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithOnCommit registers a hook called once for every committed sphere,
// after the grids have been updated. It cannot influence placement.
func WithOnCommit(fn func(Sphere)) Option {
	return func(e *Engine) { e.onCommit = fn }
}

// WithRand replaces the random source seeded from Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// Engine runs the placement loop over a GridSet.
//
// Each Step samples a placeable front pixel (col=x, row=y), picks a z that is
// still placeable in both the right and top views, shrinks the radius from the
// largest in-cube value until the sphere is free in all three views and then
// commits it. An Engine is single-use and not safe for concurrent use.
type Engine struct {
	cfg      Config
	grids    *projection.GridSet
	rng      *rand.Rand
	catalog  Catalog
	stats    Stats
	onCommit func(Sphere)
}

// NewEngine validates cfg and prepares fresh grids for a run.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.FloorPolicy == "" {
		cfg.FloorPolicy = FloorReject
	}
	e := newEngine(cfg, projection.NewGridSet(cfg.CubeSize, cfg.RMin))
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func newEngine(cfg Config, grids *projection.GridSet) *Engine {
	return &Engine{
		cfg:   cfg,
		grids: grids,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Grids exposes the grid set, for rendering. Callers must not modify it.
func (e *Engine) Grids() *projection.GridSet { return e.grids }

// Catalog returns the committed spheres in commit order.
func (e *Engine) Catalog() []Sphere { return e.catalog.All() }

// Stats returns the run counters with the current per-view coverage.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Coverage = make(map[string]float64, len(projection.Views))
	for _, v := range projection.Views {
		s.Coverage[v.String()] = e.grids.Coverage(v)
	}
	return s
}

// Step performs one iteration of the placement loop. It returns false, and
// does nothing, once the front view has no placeable pixel left.
func (e *Engine) Step() (Outcome, bool) {
	if !e.grids.HasAnyCandidate(projection.Front) {
		return 0, false
	}
	e.stats.Iterations++

	p, err := e.grids.SampleCandidate(projection.Front, e.rng)
	if err != nil {
		// HasAnyCandidate was true, so the counts are corrupt.
		panic(err)
	}
	x, y := p.Col, p.Row

	zs := e.grids.SharedThirdAxis(y, x)
	if len(zs) == 0 {
		e.grids.MarkDead(projection.Front, p)
		e.stats.DeadPixels++
		return NoSharedAxis, true
	}
	z := zs[e.rng.Intn(len(zs))]

	r, ok := e.shrink(x, y, z)
	if !ok {
		e.grids.MarkDead(projection.Front, p)
		e.stats.DeadPixels++
		e.stats.FloorRejected++
		return FloorRejected, true
	}

	s := Sphere{X: x, Y: y, Z: z, Radius: r}
	e.catalog.Append(s)
	e.grids.PaintSphere(x, y, z, r)
	e.grids.SuppressNeighborhood(x, y, z, r+e.cfg.RMin)
	e.stats.Committed++
	if e.onCommit != nil {
		e.onCommit(s)
	}
	return Committed, true
}

// fits reports whether a sphere of radius r at (x, y, z) is free in every
// view and keeps its projected centre at least r+rs away from every committed
// sphere of radius rs.
func (e *Engine) fits(x, y, z, r int) bool {
	if !e.grids.FitsAll(x, y, z, r) {
		return false
	}
	for _, s := range e.catalog.spheres {
		for _, v := range projection.Views {
			if TooClose(projection.Project(v, x, y, z), r, s.Center(v), s.Radius) {
				return false
			}
		}
	}
	return true
}

// shrink finds the largest radius at (x, y, z) that fits.
func (e *Engine) shrink(x, y, z int) (int, bool) {
	size := e.cfg.CubeSize
	r := minInt(e.cfg.RMax, x, size-1-x, y, size-1-y, z, size-1-z)

	if e.cfg.FloorPolicy == FloorAccept {
		for r > e.cfg.RMin {
			if e.fits(x, y, z, r) {
				return r, true
			}
			r--
		}
		e.stats.FloorAccepted++
		return r, true
	}

	for ; r >= e.cfg.RMin; r-- {
		if e.fits(x, y, z, r) {
			return r, true
		}
	}
	return 0, false
}

// Run steps until the front view is exhausted and returns the catalog.
func (e *Engine) Run() []Sphere {
	for {
		if _, more := e.Step(); !more {
			return e.Catalog()
		}
	}
}

func minInt(v int, rest ...int) int {
	for _, r := range rest {
		if r < v {
			v = r
		}
	}
	return v
}
