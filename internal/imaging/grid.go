package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
)

// DefaultGridColor is the overlay colour used when none is given.
const DefaultGridColor = "#FF000080"

// GridOverlay draws a coordinate grid over img in place, one line every
// spacing pixels, starting at spacing. Lines are alpha-blended with the
// given hex colour (#RRGGBB or #RRGGBBAA). An unparsable colour falls back
// to semi-transparent red and a spacing below 1 draws nothing.
func GridOverlay(img *image.NRGBA, spacing int, gridColorHex string) {
	if spacing < 1 {
		return
	}
	gridColor, err := parseHexColor(gridColorHex)
	if err != nil {
		gridColor = color.NRGBA{R: 255, A: 128}
	}
	src := image.NewUniform(gridColor)
	b := img.Bounds()

	for x := b.Min.X + spacing; x < b.Max.X; x += spacing {
		draw.Draw(img, image.Rect(x, b.Min.Y, x+1, b.Max.Y), src, image.Point{}, draw.Over)
	}
	for y := b.Min.Y + spacing; y < b.Max.Y; y += spacing {
		draw.Draw(img, image.Rect(b.Min.X, y, b.Max.X, y+1), src, image.Point{}, draw.Over)
	}
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, err
	}

	switch len(hex) {
	case 6:
		return color.NRGBA{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}, nil
	case 8:
		return color.NRGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}
}
