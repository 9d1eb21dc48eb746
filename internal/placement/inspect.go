package placement

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ironsheep/sphere-projections-mcp/internal/projection"
)

// PixelProbe describes one projection pixel of a finished run.
type PixelProbe struct {
	View string `json:"view"`
	Col  int    `json:"col"`
	Row  int    `json:"row"`

	// Filled is set when a committed silhouette covers the pixel.
	Filled bool `json:"filled"`

	// Placeable is set when a new centre could still be placed here.
	Placeable bool `json:"placeable"`

	// Spheres lists the catalog indices whose silhouettes cover the pixel.
	// More than one entry means an overlap.
	Spheres []int `json:"spheres"`
}

// Probe reports the state of pixel p in view v.
func Probe(res *Result, v projection.View, p projection.Point) (*PixelProbe, error) {
	if res == nil || res.Grids == nil {
		return nil, fmt.Errorf("run has no grids")
	}
	n := res.Grids.Size()
	if p.Col < 0 || p.Col >= n || p.Row < 0 || p.Row >= n {
		return nil, fmt.Errorf("pixel (%d,%d) outside %dx%d grid", p.Col, p.Row, n, n)
	}

	out := &PixelProbe{
		View:      v.String(),
		Col:       p.Col,
		Row:       p.Row,
		Filled:    res.Grids.Filled(v).At(p.Col, p.Row),
		Placeable: res.Grids.Candidates(v).At(p.Col, p.Row),
		Spheres:   []int{},
	}
	for i, s := range res.Spheres {
		c := s.Center(v)
		dc, dr := p.Col-c.Col, p.Row-c.Row
		if dc*dc+dr*dr <= s.Radius*s.Radius {
			out.Spheres = append(out.Spheres, i)
		}
	}
	return out, nil
}

// PlanarMeasurement relates two silhouettes in one view.
type PlanarMeasurement struct {
	DeltaCol     int     `json:"delta_col"`
	DeltaRow     int     `json:"delta_row"`
	Distance     float64 `json:"distance"`
	AngleDegrees float64 `json:"angle_degrees"`

	// Clearance is Distance minus the sum of radii.
	Clearance float64 `json:"clearance"`
	Overlap   bool    `json:"overlap"`
}

// Measurement relates two spheres of a catalog.
type Measurement struct {
	A int `json:"a"`
	B int `json:"b"`

	Distance  float64 `json:"distance"`
	Clearance float64 `json:"clearance"`

	Views map[string]PlanarMeasurement `json:"views"`
}

// Measure compares spheres a and b in space and in every view. Overlap is set
// when the pixel discs share a pixel or the clearance is negative.
func Measure(spheres []Sphere, a, b int) (*Measurement, error) {
	if a < 0 || a >= len(spheres) || b < 0 || b >= len(spheres) {
		return nil, fmt.Errorf("sphere index out of range: a=%d b=%d, have %d", a, b, len(spheres))
	}
	if a == b {
		return nil, fmt.Errorf("cannot measure sphere %d against itself", a)
	}
	sa, sb := spheres[a], spheres[b]
	radii := float64(sa.Radius + sb.Radius)

	d := r3.Norm(r3.Sub(
		r3.Vec{X: float64(sa.X), Y: float64(sa.Y), Z: float64(sa.Z)},
		r3.Vec{X: float64(sb.X), Y: float64(sb.Y), Z: float64(sb.Z)},
	))
	m := &Measurement{
		A:         a,
		B:         b,
		Distance:  round2(d),
		Clearance: round2(d - radii),
		Views:     make(map[string]PlanarMeasurement, len(projection.Views)),
	}

	for _, v := range projection.Views {
		ca, cb := sa.Center(v), sb.Center(v)
		dist := planarDistance(ca, cb)
		dc, dr := cb.Col-ca.Col, cb.Row-ca.Row
		m.Views[v.String()] = PlanarMeasurement{
			DeltaCol: dc,
			DeltaRow: dr,
			Distance: round2(dist),
			// 0 = towards increasing columns, 90 = towards increasing rows
			AngleDegrees: math.Round(math.Atan2(float64(dr), float64(dc))*1800/math.Pi) / 10,
			Clearance:    round2(dist - radii),
			Overlap:      DiscsOverlap(ca, sa.Radius, cb, sb.Radius) || TooClose(ca, sa.Radius, cb, sb.Radius),
		}
	}
	return m, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
