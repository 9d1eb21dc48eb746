package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/sphere-projections-mcp/internal/placement"
	"github.com/ironsheep/sphere-projections-mcp/internal/projection"
)

// ViewSheet lays the three views out as an unfolded cube on a 2n×2n canvas:
//
//	+-------+-------+
//	|  top  |       |
//	+-------+-------+
//	| front | right |
//	+-------+-------+
//
// The top view is rotated 90° counter-clockwise so that its x axis lines up
// with the columns of the front view.
func ViewSheet(gs *projection.GridSet, spheres []placement.Sphere, mode Mode) (*image.NRGBA, error) {
	if gs == nil {
		return nil, fmt.Errorf("no grids to render")
	}
	n := gs.Size()

	views := make(map[projection.View]*image.NRGBA, len(projection.Views))
	for _, v := range projection.Views {
		img, err := RenderView(gs, spheres, v, mode)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s view: %w", v, err)
		}
		views[v] = img
	}

	sheet := imaging.New(2*n, 2*n, color.NRGBA{R: 32, G: 32, B: 32, A: 255})
	sheet = imaging.Paste(sheet, imaging.Rotate90(views[projection.Top]), image.Pt(0, 0))
	sheet = imaging.Paste(sheet, views[projection.Front], image.Pt(0, n))
	sheet = imaging.Paste(sheet, views[projection.Right], image.Pt(n, n))
	return sheet, nil
}

// Scale enlarges img by an integer factor without smoothing so that single
// pixels stay visible. Factors below 2 return img unchanged.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor)
}
