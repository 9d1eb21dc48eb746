package imaging

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/sphere-projections-mcp/internal/placement"
	"github.com/ironsheep/sphere-projections-mcp/internal/projection"
)

// oneSphere returns grids holding a single sphere at (10, 20, 30) of radius 4.
func oneSphere(t *testing.T) (*projection.GridSet, []placement.Sphere) {
	t.Helper()
	gs := projection.NewGridSet(40, 2)
	s := placement.Sphere{X: 10, Y: 20, Z: 30, Radius: 4}
	gs.PaintSphere(s.X, s.Y, s.Z, s.Radius)
	gs.SuppressNeighborhood(s.X, s.Y, s.Z, s.Radius+2)
	return gs, []placement.Sphere{s}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeSpheres, false},
		{"filled", ModeFilled, false},
		{" Candidate ", ModeCandidate, false},
		{"outline", ModeOutline, false},
		{"wireframe", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseMode(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderView_Filled(t *testing.T) {
	gs, spheres := oneSphere(t)

	img, err := RenderView(gs, spheres, projection.Right, ModeFilled)
	if err != nil {
		t.Fatalf("RenderView failed: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 40 {
		t.Fatalf("dimensions: got %v, want 40x40", img.Bounds())
	}

	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}
	// right view centre is (z, y) = (30, 20)
	if got := img.NRGBAAt(30, 20); got != white {
		t.Errorf("centre pixel: got %v, want white", got)
	}
	if got := img.NRGBAAt(34, 20); got != white {
		t.Errorf("edge pixel: got %v, want white", got)
	}
	if got := img.NRGBAAt(35, 20); got != black {
		t.Errorf("outside pixel: got %v, want black", got)
	}
}

func TestRenderView_Candidate(t *testing.T) {
	gs, spheres := oneSphere(t)

	img, err := RenderView(gs, spheres, projection.Front, ModeCandidate)
	if err != nil {
		t.Fatalf("RenderView failed: %v", err)
	}
	if got := img.NRGBAAt(0, 0); got.R != 0 {
		t.Errorf("margin pixel should be forbidden, got %v", got)
	}
	if got := img.NRGBAAt(10, 20); got.R != 0 {
		t.Errorf("suppressed centre should be forbidden, got %v", got)
	}
	if got := img.NRGBAAt(30, 30); got.R != 255 {
		t.Errorf("free pixel should be placeable, got %v", got)
	}
}

func TestRenderView_Spheres(t *testing.T) {
	gs, spheres := oneSphere(t)

	img, err := RenderView(gs, spheres, projection.Top, ModeSpheres)
	if err != nil {
		t.Fatalf("RenderView failed: %v", err)
	}
	// top view centre is (z, x) = (30, 10)
	if got := img.NRGBAAt(30, 10); got != SphereColor(0) {
		t.Errorf("centre pixel: got %v, want %v", got, SphereColor(0))
	}
	if got := img.NRGBAAt(10, 10); got != (color.NRGBA{A: 255}) {
		t.Errorf("background: got %v, want opaque black", got)
	}
}

func TestRenderView_Outline(t *testing.T) {
	gs, spheres := oneSphere(t)

	img, err := RenderView(gs, spheres, projection.Front, ModeOutline)
	if err != nil {
		t.Fatalf("RenderView failed: %v", err)
	}
	if got := img.NRGBAAt(10, 20); got.R != 0 {
		t.Errorf("disc interior should have no edge, got %v", got)
	}
	if got := img.NRGBAAt(30, 5); got.R != 0 || got.A != 255 {
		t.Errorf("background should be opaque black, got %v", got)
	}
	bright := 0
	for y := 14; y <= 26; y++ {
		for x := 4; x <= 16; x++ {
			if img.NRGBAAt(x, y).R > 0 {
				bright++
			}
		}
	}
	if bright == 0 {
		t.Error("expected edge pixels around the silhouette")
	}
}

func TestRenderView_Errors(t *testing.T) {
	if _, err := RenderView(nil, nil, projection.Front, ModeFilled); err == nil {
		t.Error("expected error for nil grids")
	}
	gs, _ := oneSphere(t)
	if _, err := RenderView(gs, nil, projection.Front, Mode("bogus")); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestSphereColor_Distinct(t *testing.T) {
	seen := map[color.NRGBA]bool{}
	for i := 0; i < 16; i++ {
		c := SphereColor(i)
		if c.A != 255 {
			t.Errorf("color %d not opaque: %v", i, c)
		}
		seen[c] = true
	}
	if len(seen) != 16 {
		t.Errorf("expected 16 distinct colors, got %d", len(seen))
	}
}

func TestViewSheet_Layout(t *testing.T) {
	gs, spheres := oneSphere(t)

	sheet, err := ViewSheet(gs, spheres, ModeFilled)
	if err != nil {
		t.Fatalf("ViewSheet failed: %v", err)
	}
	if sheet.Bounds().Dx() != 80 || sheet.Bounds().Dy() != 80 {
		t.Fatalf("dimensions: got %v, want 80x80", sheet.Bounds())
	}

	white := color.NRGBA{255, 255, 255, 255}
	// front (x, y) = (10, 20) at offset (0, 40)
	if got := sheet.NRGBAAt(10, 60); got != white {
		t.Errorf("front centre: got %v", got)
	}
	// right (z, y) = (30, 20) at offset (40, 40)
	if got := sheet.NRGBAAt(70, 60); got != white {
		t.Errorf("right centre: got %v", got)
	}
	// top (z, x) = (30, 10) rotated CCW -> (x, 39-z) = (10, 9)
	if got := sheet.NRGBAAt(10, 9); got != white {
		t.Errorf("top centre: got %v", got)
	}
	if got := sheet.NRGBAAt(60, 20); got == white {
		t.Errorf("empty quadrant should not be white")
	}
}

func TestScale(t *testing.T) {
	img := blackImage(5, 3)
	img.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 255})

	out := Scale(img, 4)
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 12 {
		t.Fatalf("dimensions: got %v, want 20x12", out.Bounds())
	}
	if got := out.NRGBAAt(5, 5); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("scaled pixel: got %v, want red", got)
	}
	if Scale(img, 1) != img {
		t.Error("factor 1 should return the input")
	}
}

func TestEncode(t *testing.T) {
	img := blackImage(16, 8)

	res, err := Encode(img, "")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if res.Width != 16 || res.Height != 8 || res.MimeType != "image/png" || res.Path != "" {
		t.Errorf("unexpected result: %+v", res)
	}

	data, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	if decoded.Bounds().Dx() != 16 {
		t.Errorf("decoded width: got %d", decoded.Bounds().Dx())
	}
}

func TestEncode_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "front.png")

	res, err := Encode(blackImage(4, 4), path)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if res.Path != path {
		t.Errorf("Path: got %q, want %q", res.Path, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestSavePNG_RejectsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "front.jpg")
	if err := SavePNG(blackImage(2, 2), path); err == nil {
		t.Error("expected error for non-png path")
	}
}

func TestSavePNG_UpperCaseExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FRONT.PNG")
	if err := SavePNG(blackImage(2, 2), path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}
