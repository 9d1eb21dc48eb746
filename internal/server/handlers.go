package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/sphere-projections-mcp/internal/imaging"
	"github.com/ironsheep/sphere-projections-mcp/internal/placement"
	"github.com/ironsheep/sphere-projections-mcp/internal/projection"
	"github.com/ironsheep/sphere-projections-mcp/internal/runs"
	"github.com/ironsheep/sphere-projections-mcp/internal/wireframe"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "spheres_generate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// maxScale bounds the upscale factor of rendered views.
const maxScale = 16

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("[DEBUG] tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return reply(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Looks up the run in the cache as needed
//  4. Calls the appropriate placement/imaging/wireframe function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Generation
	case "spheres_generate":
		return s.handleGenerate(args)

	// Run Management
	case "spheres_list_runs":
		return s.handleListRuns()
	case "spheres_get_run":
		return s.handleGetRun(args)
	case "spheres_evict_run":
		return s.handleEvictRun(args)
	case "spheres_verify":
		return s.handleVerify(args)

	// Inspection
	case "spheres_probe_pixel":
		return s.handleProbePixel(args)
	case "spheres_measure":
		return s.handleMeasure(args)

	// Rendering
	case "spheres_render_view":
		return s.handleRenderView(args)
	case "spheres_render_sheet":
		return s.handleRenderSheet(args)
	case "spheres_render_wireframe":
		return s.handleRenderWireframe(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Generation Handlers ===

type generateArgs struct {
	CubeSize    *int    `json:"cube_size"`
	RMin        *int    `json:"r_min"`
	RMax        *int    `json:"r_max"`
	Seed        *int64  `json:"seed"`
	FloorPolicy *string `json:"floor_policy"`
}

// config overlays the supplied arguments on base.
func (a generateArgs) config(base placement.Config) (placement.Config, error) {
	cfg := base
	if a.CubeSize != nil {
		cfg.CubeSize = *a.CubeSize
	}
	if a.RMin != nil {
		cfg.RMin = *a.RMin
	}
	if a.RMax != nil {
		cfg.RMax = *a.RMax
	}
	if a.Seed != nil {
		cfg.Seed = *a.Seed
	}
	if a.FloorPolicy != nil {
		p, err := placement.ParseFloorPolicy(*a.FloorPolicy)
		if err != nil {
			return cfg, err
		}
		cfg.FloorPolicy = p
	}
	return cfg, nil
}

type generateResult struct {
	RunID   string             `json:"run_id"`
	Config  placement.Config   `json:"config"`
	Spheres []placement.Sphere `json:"spheres"`
	Stats   placement.Stats    `json:"stats"`
}

func (s *Server) handleGenerate(args json.RawMessage) (interface{}, error) {
	var a generateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cfg, err := a.config(s.defaults)
	if err != nil {
		return nil, err
	}

	run, err := s.runs.Generate(cfg)
	if err != nil {
		return nil, err
	}
	if s.debug {
		log.Printf("[DEBUG] run %s: %d spheres in %d iterations", run.ID, len(run.Spheres), run.Stats.Iterations)
	}
	return generateResult{
		RunID:   run.ID,
		Config:  run.Config,
		Spheres: run.Spheres,
		Stats:   run.Stats,
	}, nil
}

// === Run Management Handlers ===

type runArgs struct {
	RunID string `json:"run_id"`
}

func (s *Server) lookupRun(args json.RawMessage) (*runs.Run, error) {
	var a runArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.RunID == "" {
		return nil, fmt.Errorf("run_id is required")
	}
	return s.runs.Get(a.RunID)
}

func (s *Server) handleListRuns() (interface{}, error) {
	return map[string]interface{}{
		"runs": s.runs.List(),
	}, nil
}

func (s *Server) handleGetRun(args json.RawMessage) (interface{}, error) {
	return s.lookupRun(args)
}

func (s *Server) handleEvictRun(args json.RawMessage) (interface{}, error) {
	var a runArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if !s.runs.Evict(a.RunID) {
		return nil, fmt.Errorf("%w: %s", runs.ErrNotFound, a.RunID)
	}
	return map[string]interface{}{
		"run_id":  a.RunID,
		"evicted": true,
	}, nil
}

func (s *Server) handleVerify(args json.RawMessage) (interface{}, error) {
	run, err := s.lookupRun(args)
	if err != nil {
		return nil, err
	}
	return placement.Verify(run.Config, run.Spheres), nil
}

// === Inspection Handlers ===

type probePixelArgs struct {
	RunID string `json:"run_id"`
	View  string `json:"view"`
	Col   int    `json:"col"`
	Row   int    `json:"row"`
}

func (s *Server) handleProbePixel(args json.RawMessage) (interface{}, error) {
	var a probePixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	view, err := projection.ParseView(a.View)
	if err != nil {
		return nil, err
	}
	run, err := s.runs.Get(a.RunID)
	if err != nil {
		return nil, err
	}
	return placement.Probe(run.Result, view, projection.Point{Col: a.Col, Row: a.Row})
}

type measureArgs struct {
	RunID string `json:"run_id"`
	A     int    `json:"a"`
	B     int    `json:"b"`
}

func (s *Server) handleMeasure(args json.RawMessage) (interface{}, error) {
	var a measureArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	run, err := s.runs.Get(a.RunID)
	if err != nil {
		return nil, err
	}
	return placement.Measure(run.Spheres, a.A, a.B)
}

// === Rendering Handlers ===

type renderViewArgs struct {
	RunID       string `json:"run_id"`
	View        string `json:"view"`
	Mode        string `json:"mode"`
	Scale       int    `json:"scale"`
	GridSpacing int    `json:"grid_spacing"`
	GridColor   string `json:"grid_color"`
	OutputPath  string `json:"output_path"`
}

func checkScale(scale int) (int, error) {
	if scale == 0 {
		return 1, nil
	}
	if scale < 0 || scale > maxScale {
		return 0, fmt.Errorf("scale must be between 1 and %d, got %d", maxScale, scale)
	}
	return scale, nil
}

func (s *Server) handleRenderView(args json.RawMessage) (interface{}, error) {
	var a renderViewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	view, err := projection.ParseView(a.View)
	if err != nil {
		return nil, err
	}
	mode, err := imaging.ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}
	scale, err := checkScale(a.Scale)
	if err != nil {
		return nil, err
	}
	if a.GridColor == "" {
		a.GridColor = imaging.DefaultGridColor
	}
	run, err := s.runs.Get(a.RunID)
	if err != nil {
		return nil, err
	}

	img, err := imaging.RenderView(run.Grids, run.Spheres, view, mode)
	if err != nil {
		return nil, err
	}
	img = imaging.Scale(img, scale)
	if a.GridSpacing > 0 {
		// spacing is in grid cells
		imaging.GridOverlay(img, a.GridSpacing*scale, a.GridColor)
	}
	return imaging.Encode(img, a.OutputPath)
}

type renderSheetArgs struct {
	RunID      string `json:"run_id"`
	Mode       string `json:"mode"`
	Scale      int    `json:"scale"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleRenderSheet(args json.RawMessage) (interface{}, error) {
	var a renderSheetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mode, err := imaging.ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}
	scale, err := checkScale(a.Scale)
	if err != nil {
		return nil, err
	}
	run, err := s.runs.Get(a.RunID)
	if err != nil {
		return nil, err
	}

	sheet, err := imaging.ViewSheet(run.Grids, run.Spheres, mode)
	if err != nil {
		return nil, err
	}
	return imaging.Encode(imaging.Scale(sheet, scale), a.OutputPath)
}

type renderWireframeArgs struct {
	RunID      string   `json:"run_id"`
	Azimuth    *float64 `json:"azimuth"`
	Elevation  *float64 `json:"elevation"`
	SizePx     int      `json:"size_px"`
	OutputPath string   `json:"output_path"`
}

func (s *Server) handleRenderWireframe(args json.RawMessage) (interface{}, error) {
	var a renderWireframeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts := wireframe.DefaultOptions()
	if a.Azimuth != nil {
		opts.Azimuth = *a.Azimuth
	}
	if a.Elevation != nil {
		opts.Elevation = *a.Elevation
	}
	if a.SizePx < 0 || a.SizePx > 4096 {
		return nil, fmt.Errorf("size_px must be between 1 and 4096, got %d", a.SizePx)
	}
	if a.SizePx > 0 {
		opts.Size = wireframe.PixelSize(a.SizePx)
	}
	run, err := s.runs.Get(a.RunID)
	if err != nil {
		return nil, err
	}
	return wireframe.Render(run.Spheres, run.Config.CubeSize, opts, a.OutputPath)
}
