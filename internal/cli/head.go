package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newHeadCmd creates the head command
func newHeadCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "head [name...]",
		Short: "Print the full head commit of each mapped branch",
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
				branch, err := rt.Engine.Branch(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s %s\n", branch.Head.Hash, name)
			}
			return nil
		},
	}

	return cmd
}
