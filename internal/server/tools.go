package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func runIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Run id returned by spheres_generate",
	}
}

func outputPathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Optional path to also save the image to. Must end in .png",
	}
}

func modeProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"filled", "candidate", "spheres", "outline"},
		"description": "What to draw. Default spheres",
		"default":     "spheres",
	}
}

func scaleProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Integer upscale factor (nearest neighbour). Default 1",
		"default":     1,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Generation
		{
			Name:        "spheres_generate",
			Description: "Generate spheres inside a cube so that their front, right and top projections are non-overlapping circles. Returns a run id for the render and verify tools, the spheres and run statistics. Omitted parameters use the server defaults.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"cube_size": map[string]interface{}{
						"type":        "integer",
						"description": "Side length of the cube and of each projection grid",
					},
					"r_min": map[string]interface{}{
						"type":        "integer",
						"description": "Smallest radius that may be committed",
					},
					"r_max": map[string]interface{}{
						"type":        "integer",
						"description": "Largest radius tried for a new sphere",
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Random seed. The same parameters and seed give the same spheres",
					},
					"floor_policy": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"reject", "accept"},
						"description": "reject skips points where even r_min does not fit; accept commits r_min untested",
					},
				},
			},
		},

		// Run Management
		{
			Name:        "spheres_list_runs",
			Description: "List cached runs with their configuration and sphere counts, oldest first.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "spheres_get_run",
			Description: "Return the configuration, spheres and statistics of a cached run.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"run_id": runIDProperty(),
				},
				"required": []string{"run_id"},
			},
		},
		{
			Name:        "spheres_evict_run",
			Description: "Drop a run from the cache.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"run_id": runIDProperty(),
				},
				"required": []string{"run_id"},
			},
		},
		{
			Name:        "spheres_verify",
			Description: "Check a run: radii in range, spheres inside the cube and no two silhouettes sharing a pixel in any view.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"run_id": runIDProperty(),
				},
				"required": []string{"run_id"},
			},
		},

		// Inspection
		{
			Name:        "spheres_probe_pixel",
			Description: "Report whether a projection pixel is filled or still placeable, and which spheres cover it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"run_id": runIDProperty(),
					"view": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"front", "right", "top"},
						"description": "Projection to probe",
					},
					"col": map[string]interface{}{
						"type":        "integer",
						"description": "Column (0-based, from left)",
					},
					"row": map[string]interface{}{
						"type":        "integer",
						"description": "Row (0-based, from top)",
					},
				},
				"required": []string{"run_id", "view", "col", "row"},
			},
		},
		{
			Name:        "spheres_measure",
			Description: "Measure the distance and clearance between two spheres of a run, in space and in each projection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"run_id": runIDProperty(),
					"a": map[string]interface{}{
						"type":        "integer",
						"description": "Index of the first sphere in commit order",
					},
					"b": map[string]interface{}{
						"type":        "integer",
						"description": "Index of the second sphere in commit order",
					},
				},
				"required": []string{"run_id", "a", "b"},
			},
		},

		// Rendering
		{
			Name:        "spheres_render_view",
			Description: "Render one projection of a run as base64-encoded PNG, one pixel per grid cell.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"run_id": runIDProperty(),
					"view": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"front", "right", "top"},
						"description": "Projection to draw: front (x, y), right (z, y) or top (z, x)",
					},
					"mode":  modeProperty(),
					"scale": scaleProperty(),
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Optional coordinate grid spacing in grid cells. 0 draws no grid",
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid color as hex (#RRGGBB or #RRGGBBAA). Default #FF000080",
						"default":     "#FF000080",
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"run_id", "view"},
			},
		},
		{
			Name:        "spheres_render_sheet",
			Description: "Render all three projections as one unfolded-cube sheet: top view rotated above the front view, right view beside it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"run_id":      runIDProperty(),
					"mode":        modeProperty(),
					"scale":       scaleProperty(),
					"output_path": outputPathProperty(),
				},
				"required": []string{"run_id"},
			},
		},
		{
			Name:        "spheres_render_wireframe",
			Description: "Plot the spheres of a run as a 3D wireframe seen from the given camera angles.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"run_id": runIDProperty(),
					"azimuth": map[string]interface{}{
						"type":        "number",
						"description": "Camera rotation about the vertical axis in degrees. Default -60",
						"default":     -60,
					},
					"elevation": map[string]interface{}{
						"type":        "number",
						"description": "Camera tilt in degrees. Default 30",
						"default":     30,
					},
					"size_px": map[string]interface{}{
						"type":        "integer",
						"description": "Side length of the square image in pixels. Default 576",
						"default":     576,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also save the plot to (.png, .svg or .pdf)",
					},
				},
				"required": []string{"run_id"},
			},
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return reply(req.ID, map[string]interface{}{"tools": GetToolDefinitions()})
}
