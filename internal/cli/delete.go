package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// newDeleteCmd creates the delete command
func newDeleteCmd(opts *rootOptions) *cobra.Command {
	var (
		yes   bool
		local bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "delete [name...]",
		Short: "Delete mapped branches from the remote (or locally with --local)",
		Long: `Delete mapped branches from the remote.

Removes refs/heads/<name> on the configured remote for each mapped branch.
The refs/ptt namespace is untouched. With --local the deletion targets the
local branches instead, refusing unmerged ones unless --force is given, and
drops their metadata sections. Prompts for confirmation unless --yes is
given.`,
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
			if len(names) == 0 {
				rt.Splog.Info("no mapped branches to delete")
				return nil
			}

			target := "the local repository"
			if !local {
				remote, err := rt.Engine.Remote()
				if err != nil {
					return err
				}
				target = remote
			}

			if !yes {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Delete %d branch(es) from %s?", len(names), target),
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					rt.Splog.Info("aborted")
					return nil
				}
			}

			for _, name := range names {
				if local {
					err = rt.Engine.DeleteLocalBranch(cmd.Context(), name, force)
				} else {
					err = rt.Engine.DeleteRemote(cmd.Context(), name)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without prompting for confirmation")
	cmd.Flags().BoolVar(&local, "local", false, "Delete local branches instead of remote ones")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "With --local, delete branches even when not fully merged")

	return cmd
}
