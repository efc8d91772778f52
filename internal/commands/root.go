package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/server"
)

// Version information - set by SetVersion from main
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// logLevelEnv selects the log level; "debug" enables request logging.
const logLevelEnv = "COLOR_MCP_LOG_LEVEL"

var rootCmd = &cobra.Command{
	Use:   "color-mcp",
	Short: "MCP server for color conversion and palette generation",
	Long: `color-mcp converts hex colors to RGB, CMYK and HSV and derives related
colors: complements, triads, analogous hues, and randomized similar and
proportional variations.

Run without a subcommand to serve MCP over stdin/stdout.

Environment variables:
  COLOR_MCP_LOG_LEVEL=debug    Enable debug logging`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug := debugEnabled()
		if debug {
			log.Printf("Color MCP Server v%s (built %s, commit %s)", version, buildTime, gitCommit)
		}

		srv := server.New(server.WithDebug(debug))
		if err := srv.Run(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), versionText())
	},
}

func versionText() string {
	return fmt.Sprintf("color-tools-mcp %s\n  Build time: %s\n  Git commit: %s\n", version, buildTime, gitCommit)
}

func debugEnabled() bool {
	return os.Getenv(logLevelEnv) == "debug"
}

// SetVersion sets the version information
func SetVersion(v, built, commit string) {
	version = v
	buildTime = built
	gitCommit = commit
	rootCmd.Version = v
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(previewCmd)
}
