package main

import (
	"log"
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/commands"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	commands.SetVersion(Version, BuildTime, GitCommit)
	if err := commands.Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
