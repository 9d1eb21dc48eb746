package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/effect"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/sphere-projections-mcp/internal/placement"
	"github.com/ironsheep/sphere-projections-mcp/internal/projection"
)

// Mode selects what a view rendering shows.
type Mode string

const (
	// ModeFilled shows the filled grid: silhouettes white on black.
	ModeFilled Mode = "filled"
	// ModeCandidate shows the candidate grid: placeable pixels white.
	ModeCandidate Mode = "candidate"
	// ModeSpheres paints every silhouette in its own hue, in commit order.
	ModeSpheres Mode = "spheres"
	// ModeOutline shows the edges of the filled grid.
	ModeOutline Mode = "outline"
)

// ParseMode converts a mode name. The empty string selects ModeSpheres.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeSpheres, nil
	case ModeFilled, ModeCandidate, ModeSpheres, ModeOutline:
		return m, nil
	default:
		return "", fmt.Errorf("unknown render mode: %q", s)
	}
}

// goldenAngle spreads consecutive hues as far apart as possible.
const goldenAngle = 137.50776405

// SphereColor returns the colour used for the i-th committed sphere.
func SphereColor(i int) color.NRGBA {
	h := math.Mod(float64(i)*goldenAngle, 360)
	r, g, b := colorful.Hsv(h, 0.65, 0.95).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// RenderView rasterizes one view of a run as a size×size image.
//
// Pixel (col, row) of the grid maps to image pixel (x=col, y=row). Spheres
// are only needed for ModeSpheres.
func RenderView(gs *projection.GridSet, spheres []placement.Sphere, v projection.View, mode Mode) (*image.NRGBA, error) {
	if gs == nil {
		return nil, fmt.Errorf("no grids to render")
	}
	switch mode {
	case ModeFilled:
		return maskImage(gs.Filled(v)), nil
	case ModeCandidate:
		return maskImage(gs.Candidates(v)), nil
	case ModeOutline:
		return opaque(effect.EdgeDetection(maskImage(gs.Filled(v)), 1.0)), nil
	case ModeSpheres:
		return sphereImage(gs.Size(), spheres, v), nil
	default:
		return nil, fmt.Errorf("unknown render mode: %q", mode)
	}
}

func maskImage(g *projection.Grid) *image.NRGBA {
	n := g.Size()
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if g.At(col, row) {
				img.SetNRGBA(col, row, white)
			} else {
				img.SetNRGBA(col, row, black)
			}
		}
	}
	return img
}

func sphereImage(size int, spheres []placement.Sphere, v projection.View) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{A: 255}), image.Point{}, draw.Src)
	for i, s := range spheres {
		c := SphereColor(i)
		center := s.Center(v)
		for row := center.Row - s.Radius; row <= center.Row+s.Radius; row++ {
			if row < 0 || row >= size {
				continue
			}
			lo, hi, ok := projection.DiscSpan(center, s.Radius, row)
			if !ok {
				continue
			}
			for col := max(lo, 0); col <= min(hi, size-1); col++ {
				img.SetNRGBA(col, row, c)
			}
		}
	}
	return img
}

// opaque copies the colour channels of src and drops its alpha.
func opaque(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := dst.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			copy(dst.Pix[di:di+3], src.Pix[si:si+3])
			dst.Pix[di+3] = 255
			si += 4
			di += 4
		}
	}
	return dst
}
