package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the vizwalk CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) raises it to
// debug. The logger is attached to the command context and accessible to
// all subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "vizwalk",
		Short:        "vizwalk runs classic graph algorithms and records their traces",
		Long:         `vizwalk runs the classic graph-traversal algorithms (BFS, DFS, Dijkstra, Eulerian trails, Hamiltonian cycles) over small demonstration graphs and records every visit, frontier operation, and edge relaxation as a replayable event trace.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("vizwalk %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd())

	return root.ExecuteContext(ctx)
}
