package cli

import (
	"github.com/spf13/cobra"
)

// newPushCmd creates the push command
func newPushCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push [name...]",
		Short: "Force-push mapped branch heads to the configured remote",
		Long: `Force-push mapped branch heads to the configured remote.

Each mapped head is pushed to refs/heads/<name> on the remote. Pushes are
forced: a restack rewrites history, so a non-fast-forward update is the
normal case. Without arguments every mapped branch is pushed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			names, err := resolveBranchArgs(rt.Engine, args)
			if err != nil {
				return err
			}

			for _, name := range names {
				if err := rt.Engine.Push(cmd.Context(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}
