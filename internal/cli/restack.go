package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRestackCmd creates the restack command
func newRestackCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restack <name> [newBase]",
		Short: "Replay a mapped branch's commits onto another base",
		Long: `Replay a mapped branch's commits onto another base.

Rebases exactly the commits belonging to the mapped branch onto newBase,
or onto the stack target recorded by "branch --stack" when newBase is
omitted. A local branch still sitting at the old head is moved to the
rewritten head.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			newBase := ""
			if len(args) > 1 {
				newBase = args[1]
			}

			newHead, err := rt.Engine.Restack(cmd.Context(), args[0], newBase)
			if err != nil {
				return err
			}

			if err := rt.Engine.Refresh(); err != nil {
				return err
			}
			if _, err := rt.Engine.Sync(); err != nil {
				return err
			}

			fmt.Printf("%s %s\n", rt.Engine.ShortID(newHead), args[0])
			return nil
		},
	}

	return cmd
}
