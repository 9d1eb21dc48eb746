package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/ironsheep/sphere-projections-mcp/internal/config"
	"github.com/ironsheep/sphere-projections-mcp/internal/imaging"
	"github.com/ironsheep/sphere-projections-mcp/internal/placement"
	"github.com/ironsheep/sphere-projections-mcp/internal/projection"
	"github.com/ironsheep/sphere-projections-mcp/internal/wireframe"
)

// generateOutput is what the generate subcommand prints.
type generateOutput struct {
	Config  placement.Config   `json:"config"`
	Spheres []placement.Sphere `json:"spheres"`
	Stats   placement.Stats    `json:"stats"`
	Report  *placement.Report  `json:"report,omitempty"`
}

// runGenerate parses args, runs one generation and writes the result as JSON
// to stdout. Flags take precedence over the environment and config file.
func runGenerate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	var (
		cfgPath  = fs.String("config", "", "YAML config file (default $SPHERE_CONFIG)")
		cubeSize = fs.Int("cube-size", 0, "cube side length")
		rMin     = fs.Int("r-min", 0, "smallest committed radius")
		rMax     = fs.Int("r-max", 0, "largest radius tried")
		seed     = fs.Int64("seed", 0, "random seed")
		policy   = fs.String("floor-policy", "", "reject or accept")
		verify   = fs.Bool("verify", false, "include an invariant report")
		mode     = fs.String("mode", "spheres", "render mode for --view-png and --sheet")
		viewPNG  = fs.String("view-png", "", "write the front view to this .png")
		sheet    = fs.String("sheet", "", "write the three-view sheet to this .png")
		scale    = fs.Int("scale", 1, "integer upscale for --view-png and --sheet")
		plotPath = fs.String("plot", "", "write a wireframe plot (.png, .svg or .pdf)")
		azimuth  = fs.Float64("azimuth", wireframe.DefaultOptions().Azimuth, "wireframe azimuth in degrees")
		elev     = fs.Float64("elevation", wireframe.DefaultOptions().Elevation, "wireframe elevation in degrees")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	var policyErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cube-size":
			cfg.CubeSize = *cubeSize
		case "r-min":
			cfg.RMin = *rMin
		case "r-max":
			cfg.RMax = *rMax
		case "seed":
			cfg.Seed = *seed
		case "floor-policy":
			cfg.FloorPolicy, policyErr = placement.ParseFloorPolicy(*policy)
		}
	})
	if policyErr != nil {
		return policyErr
	}
	renderMode, err := imaging.ParseMode(*mode)
	if err != nil {
		return err
	}
	if *scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", *scale)
	}

	var committed int
	onCommit := placement.WithOnCommit(func(s placement.Sphere) {
		committed++
		if config.Debug() {
			log.Printf("[DEBUG] sphere %d at (%d,%d,%d) r=%d", committed, s.X, s.Y, s.Z, s.Radius)
		}
	})
	res, err := placement.Generate(cfg, onCommit)
	if err != nil {
		return err
	}
	log.Printf("generated %d spheres in %d iterations", len(res.Spheres), res.Stats.Iterations)

	if *viewPNG != "" {
		img, err := imaging.RenderView(res.Grids, res.Spheres, projection.Front, renderMode)
		if err != nil {
			return err
		}
		if err := imaging.SavePNG(imaging.Scale(img, *scale), *viewPNG); err != nil {
			return err
		}
	}
	if *sheet != "" {
		img, err := imaging.ViewSheet(res.Grids, res.Spheres, renderMode)
		if err != nil {
			return err
		}
		if err := imaging.SavePNG(imaging.Scale(img, *scale), *sheet); err != nil {
			return err
		}
	}
	if *plotPath != "" {
		opts := wireframe.DefaultOptions()
		opts.Azimuth, opts.Elevation = *azimuth, *elev
		if _, err := wireframe.Render(res.Spheres, res.Config.CubeSize, opts, *plotPath); err != nil {
			return err
		}
	}

	out := generateOutput{Config: res.Config, Spheres: res.Spheres, Stats: res.Stats}
	if *verify {
		out.Report = placement.Verify(res.Config, res.Spheres)
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
