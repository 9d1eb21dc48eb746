// Package config loads generation parameters from a YAML file and the
// environment.
//
// Precedence, lowest first: placement.DefaultConfig, the YAML file, SPHERE_*
// environment variables. Command-line flags are applied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/sphere-projections-mcp/internal/placement"
)

// Environment variables read by FromEnv.
const (
	EnvCubeSize    = "SPHERE_CUBE_SIZE"
	EnvRMin        = "SPHERE_R_MIN"
	EnvRMax        = "SPHERE_R_MAX"
	EnvSeed        = "SPHERE_SEED"
	EnvFloorPolicy = "SPHERE_FLOOR_POLICY"
	EnvConfigPath  = "SPHERE_CONFIG"
	EnvLogLevel    = "SPHERE_MCP_LOG_LEVEL"
)

const maxFileSize = 1 * 1024 * 1024

// File is the on-disk layout. Omitted fields keep their defaults.
type File struct {
	CubeSize    *int    `yaml:"cube_size"`
	RMin        *int    `yaml:"r_min"`
	RMax        *int    `yaml:"r_max"`
	Seed        *int64  `yaml:"seed"`
	FloorPolicy *string `yaml:"floor_policy"`
}

// LoadFile reads a YAML config file and applies it on top of base.
func LoadFile(path string, base placement.Config) (placement.Config, error) {
	cleanPath := filepath.Clean(path)
	switch ext := filepath.Ext(cleanPath); ext {
	case ".yaml", ".yml":
	default:
		return base, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return base, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return base, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("failed to parse config file: %w", err)
	}
	return f.apply(base)
}

func (f File) apply(cfg placement.Config) (placement.Config, error) {
	if f.CubeSize != nil {
		cfg.CubeSize = *f.CubeSize
	}
	if f.RMin != nil {
		cfg.RMin = *f.RMin
	}
	if f.RMax != nil {
		cfg.RMax = *f.RMax
	}
	if f.Seed != nil {
		cfg.Seed = *f.Seed
	}
	if f.FloorPolicy != nil {
		p, err := placement.ParseFloorPolicy(*f.FloorPolicy)
		if err != nil {
			return cfg, err
		}
		cfg.FloorPolicy = p
	}
	return cfg, nil
}

// FromEnv applies SPHERE_* variables found through lookup on top of base.
// Pass os.LookupEnv in production.
func FromEnv(base placement.Config, lookup func(string) (string, bool)) (placement.Config, error) {
	cfg := base
	ints := []struct {
		key string
		dst *int
	}{
		{EnvCubeSize, &cfg.CubeSize},
		{EnvRMin, &cfg.RMin},
		{EnvRMax, &cfg.RMax},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return base, fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}
	if v, ok := lookup(EnvSeed); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = n
	}
	if v, ok := lookup(EnvFloorPolicy); ok && strings.TrimSpace(v) != "" {
		p, err := placement.ParseFloorPolicy(v)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvFloorPolicy, err)
		}
		cfg.FloorPolicy = p
	}
	return cfg, nil
}

// Load builds the effective configuration: defaults, then the file named by
// path (or SPHERE_CONFIG when path is empty), then the environment.
func Load(path string) (placement.Config, error) {
	cfg := placement.DefaultConfig()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		var err error
		if cfg, err = LoadFile(path, cfg); err != nil {
			return cfg, err
		}
	}
	return FromEnv(cfg, os.LookupEnv)
}

// Debug reports whether debug logging was requested.
func Debug() bool {
	return strings.EqualFold(os.Getenv(EnvLogLevel), "debug")
}
