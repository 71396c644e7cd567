package cli

import (
	"github.com/spf13/cobra"

	"ptt.dev/ptt/internal/tui"
)

// newViewCmd creates the view command
func newViewCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse mapped branches and their commits interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			return tui.RunBrowseTUI(rt.Engine.Branches().All(), rt.Engine.ShortID)
		},
	}

	return cmd
}
