package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptt.dev/ptt/internal/output"
)

// newLsCmd creates the ls command
func newLsCmd(opts *rootOptions) *cobra.Command {
	var showCommits bool

	cmd := &cobra.Command{
		Use:     "ls [name...]",
		Short:   "List mapped branches discovered in the current history",
		Aliases: []string{"list"},
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

			if showCommits {
				for _, name := range names {
					branch, err := rt.Engine.Branch(name)
					if err != nil {
						return err
					}
					fmt.Printf("%s %s\n", output.OK(name), output.Dim(rt.Engine.ShortID(branch.Head.Hash)))
					for _, commit := range branch.Commits {
						fmt.Printf("  %s %s\n", output.Dim(rt.Engine.ShortID(commit.Hash)), commit.Subject())
					}
				}
				return nil
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				branch, err := rt.Engine.Branch(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					name,
					rt.Engine.ShortID(branch.Head.Hash),
					fmt.Sprintf("%d", len(branch.Commits)),
				})
			}
			fmt.Println(output.RenderTable([]string{"BRANCH", "HEAD", "COMMITS"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showCommits, "commits", "c", false, "Show the commits inside each mapped branch")

	return cmd
}
