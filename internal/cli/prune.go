package cli

import (
	"github.com/spf13/cobra"
)

// newPruneCmd creates the prune command
func newPruneCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "prune [name...]",
		Short: "Delete local branches that shadow mapped branches",
		Long: `Delete local branches that shadow mapped branches.

A local branch is pruned when its tip matches the mapped head. Branches that
have drifted from the mapped head are skipped with a warning unless --force
is given. Branch metadata sections are removed with the branch.`,
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

			deleted := 0
			for _, name := range names {
				ok, err := rt.Engine.PruneLocalBranch(cmd.Context(), name, force)
				if err != nil {
					return err
				}
				if ok {
					deleted++
				}
			}
			rt.Splog.Info("pruned %d of %d branch(es)", deleted, len(names))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Also delete branches whose tip drifted from the mapped head")

	return cmd
}
