package cli

import (
	"github.com/spf13/cobra"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "checkout <name>",
		Short:   "Check out the local branch for a mapped branch",
		Aliases: []string{"co"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			return rt.Engine.Checkout(cmd.Context(), args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reset a drifted local branch to the mapped head before checkout")

	return cmd
}
