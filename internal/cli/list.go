package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vizwalk/vizwalk/scene"
)

// newListCmd creates the list command showing the built-in scenes.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in demonstration scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCENE\tALGORITHM\tDESCRIPTION")
			for _, name := range scene.Names() {
				s, err := scene.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, s.Run.Algorithm, s.Description)
			}

			return w.Flush()
		},
	}
}
