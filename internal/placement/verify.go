package placement

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ironsheep/sphere-projections-mcp/internal/projection"
)

// Violation kinds reported by Verify.
const (
	KindOutOfBounds = "out_of_bounds"
	KindRadius      = "radius_out_of_range"
	KindOverlap     = "overlap"
)

// Violation is one broken invariant.
type Violation struct {
	Kind string `json:"kind"`

	// A and B index the offending spheres in commit order. B is -1 for
	// single-sphere violations.
	A int `json:"a"`
	B int `json:"b"`

	View string `json:"view,omitempty"`

	// Distance between the projected centres, for overlaps.
	Distance float64 `json:"distance,omitempty"`

	// AtFloor is set when one of the spheres has radius RMin.
	AtFloor bool   `json:"at_floor"`
	Detail  string `json:"detail"`
}

// Report summarises a Verify pass.
type Report struct {
	Spheres    int         `json:"spheres"`
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`

	// MinClearance is, per view, the smallest centre distance minus the sum
	// of radii over all pairs. A valid run has no negative value.
	MinClearance map[string]float64 `json:"min_clearance,omitempty"`
}

// Verify checks the committed spheres against cfg: radius range, in-cube
// bounds and, in every view, that no two silhouettes share a pixel and no two
// projected centres are closer than the sum of their radii.
func Verify(cfg Config, spheres []Sphere) *Report {
	rep := &Report{Spheres: len(spheres), Violations: []Violation{}}

	for i, s := range spheres {
		if s.Radius < cfg.RMin || s.Radius > cfg.RMax {
			rep.Violations = append(rep.Violations, Violation{
				Kind:   KindRadius,
				A:      i,
				B:      -1,
				Detail: fmt.Sprintf("radius %d outside [%d, %d]", s.Radius, cfg.RMin, cfg.RMax),
			})
		}
		lo, hi := s.Radius, cfg.CubeSize-1-s.Radius
		if s.X < lo || s.X > hi || s.Y < lo || s.Y > hi || s.Z < lo || s.Z > hi {
			rep.Violations = append(rep.Violations, Violation{
				Kind:    KindOutOfBounds,
				A:       i,
				B:       -1,
				AtFloor: s.Radius == cfg.RMin,
				Detail:  fmt.Sprintf("centre (%d,%d,%d) not within [%d, %d]", s.X, s.Y, s.Z, lo, hi),
			})
		}
	}

	if len(spheres) > 1 {
		rep.MinClearance = make(map[string]float64, len(projection.Views))
	}
	for _, v := range projection.Views {
		minClear := math.Inf(1)
		for i := 0; i < len(spheres); i++ {
			a := spheres[i]
			ca := a.Center(v)
			for j := i + 1; j < len(spheres); j++ {
				b := spheres[j]
				cb := b.Center(v)
				d := planarDistance(ca, cb)
				if c := d - float64(a.Radius+b.Radius); c < minClear {
					minClear = c
				}
				var detail string
				switch {
				case DiscsOverlap(ca, a.Radius, cb, b.Radius):
					detail = fmt.Sprintf("silhouettes of radius %d and %d share pixels", a.Radius, b.Radius)
				case TooClose(ca, a.Radius, cb, b.Radius):
					detail = fmt.Sprintf("centres %.2f apart, radii sum to %d", d, a.Radius+b.Radius)
				default:
					continue
				}
				rep.Violations = append(rep.Violations, Violation{
					Kind:     KindOverlap,
					A:        i,
					B:        j,
					View:     v.String(),
					Distance: d,
					AtFloor:  a.Radius == cfg.RMin || b.Radius == cfg.RMin,
					Detail:   detail,
				})
			}
		}
		if rep.MinClearance != nil {
			rep.MinClearance[v.String()] = minClear
		}
	}

	rep.Valid = len(rep.Violations) == 0
	return rep
}

// DiscsOverlap reports whether the pixel discs of radius ra at a and rb at b
// have at least one pixel in common.
func DiscsOverlap(a projection.Point, ra int, b projection.Point, rb int) bool {
	dx, dy := a.Col-b.Col, a.Row-b.Row
	sum := ra + rb
	if dx*dx+dy*dy > sum*sum {
		return false
	}
	row0 := max(a.Row-ra, b.Row-rb)
	row1 := min(a.Row+ra, b.Row+rb)
	for row := row0; row <= row1; row++ {
		aLo, aHi, okA := projection.DiscSpan(a, ra, row)
		bLo, bHi, okB := projection.DiscSpan(b, rb, row)
		if okA && okB && aLo <= bHi && bLo <= aHi {
			return true
		}
	}
	return false
}

// TooClose reports whether the centres a and b are nearer than ra+rb. Pixel
// discs can be disjoint while their centres are that close.
func TooClose(a projection.Point, ra int, b projection.Point, rb int) bool {
	dx, dy := a.Col-b.Col, a.Row-b.Row
	sum := ra + rb
	return dx*dx+dy*dy < sum*sum
}

func planarDistance(a, b projection.Point) float64 {
	return r3.Norm(r3.Sub(
		r3.Vec{X: float64(a.Col), Y: float64(a.Row)},
		r3.Vec{X: float64(b.Col), Y: float64(b.Row)},
	))
}
