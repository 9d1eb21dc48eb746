package projection

import (
	"fmt"
	"strings"
)

// View identifies one of the three orthographic projections.
type View int

const (
	Front View = iota
	Right
	Top
)

// Views lists every view in commit order.
var Views = [...]View{Front, Right, Top}

func (v View) String() string {
	switch v {
	case Front:
		return "front"
	case Right:
		return "right"
	case Top:
		return "top"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// ParseView converts a view name ("front", "right" or "top") to a View.
func ParseView(name string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "front":
		return Front, nil
	case "right":
		return Right, nil
	case "top":
		return Top, nil
	default:
		return 0, fmt.Errorf("unknown view: %q", name)
	}
}

// Point is a pixel position inside one view.
type Point struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Project maps a 3D coordinate to its pixel in the given view.
func Project(v View, x, y, z int) Point {
	switch v {
	case Right:
		return Point{Col: z, Row: y}
	case Top:
		return Point{Col: z, Row: x}
	default:
		return Point{Col: x, Row: y}
	}
}
