package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vizwalk/vizwalk/scene"
	"github.com/vizwalk/vizwalk/trace"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	file string // TOML scene file instead of a preset name
	out  string // trace destination (stdout if empty)
}

// newRunCmd creates the run command: execute one scene and emit its trace
// as JSON lines.
func newRunCmd() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "Run a scene and emit its trace as JSON lines",
		Long: `Run a built-in scene by name, or a TOML scene file via --file, and write
the recorded event trace as JSON lines: one header line with the run ID,
then one line per event.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveScene(args, opts.file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			logger.Debugf("running scene %q (%s)", s.Name, s.Run.Algorithm)

			rec := trace.NewRecorder()
			prog := newProgress(logger)
			sum, err := scene.Run(ctx, s, rec)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Scene %q finished: %d events, run %s", s.Name, sum.Events, rec.RunID()))
			if len(sum.Path) > 0 {
				logger.Infof("path: %v", sum.Path)
			}

			w, closeFn, err := traceWriter(cmd.OutOrStdout(), opts.out)
			if err != nil {
				return err
			}
			defer closeFn()

			return rec.WriteJSONLines(w)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "TOML scene file to run instead of a preset")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the trace to this file instead of stdout")

	return cmd
}

// resolveScene picks between a preset name and a TOML file.
func resolveScene(args []string, file string) (scene.Scene, error) {
	switch {
	case file != "" && len(args) > 0:
		return scene.Scene{}, errors.New("give either a scene name or --file, not both")
	case file != "":
		return scene.LoadFile(file)
	case len(args) == 1:
		return scene.Preset(args[0])
	default:
		return scene.Scene{}, errors.New("scene name or --file required; try 'vizwalk list'")
	}
}

// traceWriter returns the destination for the JSON-lines trace and a
// close function (a no-op for stdout).
func traceWriter(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create trace file: %w", err)
	}

	return f, func() { f.Close() }, nil
}
