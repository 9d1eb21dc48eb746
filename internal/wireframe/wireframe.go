// Package wireframe draws a sphere catalog as an orthographic wireframe plot.
//
// Each sphere is a unit-sphere mesh (20 longitude × 10 latitude samples)
// scaled by its radius and translated to its centre. The scene is turned by
// an azimuth about the cube's vertical axis and an elevation about the
// horizontal screen axis, then projected orthographically.
package wireframe

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ironsheep/sphere-projections-mcp/internal/imaging"
	"github.com/ironsheep/sphere-projections-mcp/internal/placement"
)

const (
	meshU = 20 // samples around the vertical axis
	meshV = 10 // samples pole to pole
)

// Options controls the camera and output size.
type Options struct {
	// Azimuth and Elevation are in degrees.
	Azimuth   float64 `json:"azimuth"`
	Elevation float64 `json:"elevation"`

	// Size is the side length of the square output in points.
	Size vg.Length `json:"size"`
}

// dpi is the resolution gonum/plot uses for raster output.
const dpi = 96

// PixelSize converts a raster side length in pixels to plot units.
func PixelSize(px int) vg.Length {
	return vg.Length(px) * vg.Inch / dpi
}

// DefaultOptions matches a matplotlib 3D axes default camera.
func DefaultOptions() Options {
	return Options{Azimuth: -60, Elevation: 30, Size: 6 * vg.Inch}
}

// Plot builds the wireframe plot of spheres inside a cube of side cubeSize.
func Plot(spheres []placement.Sphere, cubeSize int, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d spheres, az %.0f°, el %.0f°", len(spheres), opts.Azimuth, opts.Elevation)
	p.HideAxes()

	cam := newCamera(float64(cubeSize), opts)

	if err := addLines(p, cam.cubeEdges(), color.Gray{Y: 160}, 0.5); err != nil {
		return nil, err
	}
	for i, s := range spheres {
		if err := addLines(p, cam.sphereLines(s), imaging.SphereColor(i), 0.4); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	// equal ranges keep circles round on a square canvas
	half := cam.extent
	p.X.Min, p.X.Max = -half, half
	p.Y.Min, p.Y.Max = -half, half
	return p, nil
}

// Render draws the plot and returns it as an ImageResult. When outputPath is
// set the plot is also saved there; its extension (.png, .svg, .pdf)
// selects the format.
func Render(spheres []placement.Sphere, cubeSize int, opts Options, outputPath string) (*imaging.ImageResult, error) {
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	p, err := Plot(spheres, cubeSize, opts)
	if err != nil {
		return nil, err
	}

	if outputPath != "" {
		if err := p.Save(opts.Size, opts.Size, outputPath); err != nil {
			return nil, fmt.Errorf("failed to save plot: %w", err)
		}
		if !strings.EqualFold(filepath.Ext(outputPath), ".png") {
			return &imaging.ImageResult{Path: outputPath, MimeType: mimeType(outputPath)}, nil
		}
	}

	wt, err := p.WriterTo(opts.Size, opts.Size, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render plot: %w", err)
	}
	res, err := imaging.EncodePNGBytes(buf.Bytes())
	if err != nil {
		return nil, err
	}
	res.Path = outputPath
	return res, nil
}

func mimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return "image/svg+xml"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

func addLines(p *plot.Plot, lines []plotter.XYs, c color.Color, width float64) error {
	for _, pts := range lines {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to create line: %w", err)
		}
		l.LineStyle.Color = c
		l.LineStyle.Width = vg.Points(width)
		p.Add(l)
	}
	return nil
}

// camera turns cube coordinates into screen coordinates centred on the cube.
type camera struct {
	centre r3.Vec
	yaw    r3.Rotation
	pitch  r3.Rotation
	extent float64
}

func newCamera(cubeSize float64, opts Options) camera {
	az := opts.Azimuth * math.Pi / 180
	el := opts.Elevation * math.Pi / 180
	// y is the vertical axis of the front view
	half := cubeSize / 2
	return camera{
		centre: r3.Vec{X: half, Y: half, Z: half},
		yaw:    r3.NewRotation(az, r3.Vec{Y: 1}),
		pitch:  r3.NewRotation(el, r3.Vec{X: 1}),
		// half of the cube's space diagonal, plus a small border
		extent: half*math.Sqrt(3) + 1,
	}
}

// project maps a point to the screen. Screen Y points up while cube y grows
// downwards, as in the front view image.
func (c camera) project(p r3.Vec) plotter.XY {
	q := c.pitch.Rotate(c.yaw.Rotate(r3.Sub(p, c.centre)))
	return plotter.XY{X: q.X, Y: -q.Y}
}

func (c camera) sphereLines(s placement.Sphere) []plotter.XYs {
	centre := r3.Vec{X: float64(s.X), Y: float64(s.Y), Z: float64(s.Z)}
	r := float64(s.Radius)
	point := func(u, v float64) r3.Vec {
		unit := r3.Vec{
			X: math.Cos(u) * math.Sin(v),
			Y: math.Cos(v),
			Z: math.Sin(u) * math.Sin(v),
		}
		return r3.Add(centre, r3.Scale(r, unit))
	}

	lines := make([]plotter.XYs, 0, meshU+meshV)
	// meridians
	for i := 0; i < meshU; i++ {
		u := 2 * math.Pi * float64(i) / float64(meshU-1)
		pts := make(plotter.XYs, meshV)
		for j := 0; j < meshV; j++ {
			v := math.Pi * float64(j) / float64(meshV-1)
			pts[j] = c.project(point(u, v))
		}
		lines = append(lines, pts)
	}
	// parallels
	for j := 0; j < meshV; j++ {
		v := math.Pi * float64(j) / float64(meshV-1)
		pts := make(plotter.XYs, meshU)
		for i := 0; i < meshU; i++ {
			u := 2 * math.Pi * float64(i) / float64(meshU-1)
			pts[i] = c.project(point(u, v))
		}
		lines = append(lines, pts)
	}
	return lines
}

func (c camera) cubeEdges() []plotter.XYs {
	n := 2 * c.centre.X
	corner := func(i int) r3.Vec {
		return r3.Vec{X: n * float64(i&1), Y: n * float64(i>>1&1), Z: n * float64(i>>2&1)}
	}
	var edges []plotter.XYs
	for a := 0; a < 8; a++ {
		for _, bit := range []int{1, 2, 4} {
			b := a | bit
			if b == a {
				continue
			}
			edges = append(edges, plotter.XYs{c.project(corner(a)), c.project(corner(b))})
		}
	}
	return edges
}
