package cli

import (
	"errors"

	"github.com/spf13/cobra"

	ptterrors "ptt.dev/ptt/internal/errors"
)

// newBranchCmd creates the branch command
func newBranchCmd(opts *rootOptions) *cobra.Command {
	var (
		all   bool
		force bool
		stack string
	)

	cmd := &cobra.Command{
		Use:   "branch [name...]",
		Short: "Create local branches at mapped branch heads",
		Long: `Create local branches at mapped branch heads.

Creates refs/heads/<name> pointing at the mapped head. An existing branch is
an error unless --force is given, in which case it is moved to the mapped
head. --stack records the given branch as the restack target for later
"restack" runs without an explicit --onto.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			var names []string
			if all {
				names = rt.Engine.Branches().Names()
			} else {
				if len(args) == 0 {
					return cmd.Usage()
				}
				names, err = resolveBranchArgs(rt.Engine, args)
				if err != nil {
					return err
				}
			}

			for _, name := range names {
				err := rt.Engine.CreateLocalBranch(name, stack)
				if errors.Is(err, ptterrors.ErrBranchExists) && force {
					err = rt.Engine.ForceUpdateLocalBranch(name)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Create a local branch for every mapped branch")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Move an existing branch to the mapped head")
	cmd.Flags().StringVar(&stack, "stack", "", "Record this branch as the default restack target")

	return cmd
}
