// Package server implements the MCP (Model Context Protocol) server for sphere
// projection generation.
//
// This package provides a JSON-RPC 2.0 server that exposes the placement
// engine, its invariant checker and the renderers through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Generation:
//   - spheres_generate: Run the placement engine and cache the result
//
// Run Management:
//   - spheres_list_runs: Summaries of cached runs
//   - spheres_get_run: Config, spheres and stats of one run
//   - spheres_evict_run: Drop a run
//   - spheres_verify: Check radii, bounds and silhouette overlap
//
// Inspection:
//   - spheres_probe_pixel: State of one projection pixel
//   - spheres_measure: Distance and clearance between two spheres
//
// Rendering:
//   - spheres_render_view: One projection as PNG
//   - spheres_render_sheet: All three projections in one image
//   - spheres_render_wireframe: 3D wireframe plot
//
// # Run Caching
//
// Every spheres_generate call stores its result, including the final
// projection grids, under a new UUID. Render and verify tools take that id.
// Runs stay cached until evicted or the process exits.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv, err := server.New(placement.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
