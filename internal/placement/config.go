package placement

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// MaxCubeSize bounds CubeSize. A run allocates six CubeSize² grids.
const MaxCubeSize = 4096

// FloorPolicy decides what happens when the shrink loop reaches RMin.
type FloorPolicy string

const (
	// FloorReject tests RMin like any other radius and marks the front pixel
	// dead when no radius >= RMin fits. Committed spheres never overlap.
	FloorReject FloorPolicy = "reject"

	// FloorAccept stops shrinking at RMin without testing it and commits the
	// sphere regardless. Spheres of radius RMin may overlap earlier ones.
	FloorAccept FloorPolicy = "accept"
)

// ParseFloorPolicy converts a policy name. The empty string selects FloorReject.
func ParseFloorPolicy(s string) (FloorPolicy, error) {
	switch FloorPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", FloorReject:
		return FloorReject, nil
	case FloorAccept:
		return FloorAccept, nil
	default:
		return "", fmt.Errorf("%w: unknown floor policy %q", ErrInvalidConfig, s)
	}
}

// Config holds the generation parameters. They are fixed for a run.
type Config struct {
	CubeSize    int         `json:"cube_size" yaml:"cube_size"`
	RMin        int         `json:"r_min" yaml:"r_min"`
	RMax        int         `json:"r_max" yaml:"r_max"`
	Seed        int64       `json:"seed" yaml:"seed"`
	FloorPolicy FloorPolicy `json:"floor_policy" yaml:"floor_policy"`
}

// DefaultConfig returns a 256 cube with radii from 5 to 100.
func DefaultConfig() Config {
	return Config{
		CubeSize:    256,
		RMin:        5,
		RMax:        100,
		Seed:        1,
		FloorPolicy: FloorReject,
	}
}

// Validate checks 0 < RMin <= RMax < CubeSize/2, that the cube is larger
// than 2*RMin and that it does not exceed MaxCubeSize.
func (c Config) Validate() error {
	if c.CubeSize > MaxCubeSize {
		return fmt.Errorf("%w: cube_size %d exceeds %d", ErrInvalidConfig, c.CubeSize, MaxCubeSize)
	}
	if c.RMin <= 0 {
		return fmt.Errorf("%w: r_min must be positive, got %d", ErrInvalidConfig, c.RMin)
	}
	if c.CubeSize <= 2*c.RMin {
		return fmt.Errorf("%w: cube_size %d leaves no room for r_min %d", ErrInvalidConfig, c.CubeSize, c.RMin)
	}
	if c.RMin > c.RMax {
		return fmt.Errorf("%w: r_min %d exceeds r_max %d", ErrInvalidConfig, c.RMin, c.RMax)
	}
	if 2*c.RMax >= c.CubeSize {
		return fmt.Errorf("%w: r_max %d must be below half of cube_size %d", ErrInvalidConfig, c.RMax, c.CubeSize)
	}
	if _, err := ParseFloorPolicy(string(c.FloorPolicy)); err != nil {
		return err
	}
	return nil
}
