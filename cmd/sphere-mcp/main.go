package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/sphere-projections-mcp/internal/config"
	"github.com/ironsheep/sphere-projections-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol and JSON output)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("sphere-projections-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "generate":
			if err := runGenerate(os.Args[2:], os.Stdout); err != nil {
				log.Fatalf("generate: %v", err)
			}
			return
		}
	}

	if config.Debug() {
		log.Printf("Sphere Projections MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	defaults, err := config.Load("")
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	srv, err := server.New(defaults)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("sphere-projections-mcp - MCP server for sphere projection packing")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sphere-projections-mcp [options]           Run the MCP server on stdin/stdout")
	fmt.Println("  sphere-projections-mcp generate [flags]    Generate once and print JSON")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Run 'sphere-projections-mcp generate -h' for generate flags.")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  SPHERE_CONFIG=path.yaml         Config file with generation defaults")
	fmt.Println("  SPHERE_CUBE_SIZE, SPHERE_R_MIN, SPHERE_R_MAX,")
	fmt.Println("  SPHERE_SEED, SPHERE_FLOOR_POLICY  Override single defaults")
	fmt.Println("  SPHERE_MCP_LOG_LEVEL=debug      Enable debug logging")
	fmt.Println()
	fmt.Println("The server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
