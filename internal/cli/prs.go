package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptt.dev/ptt/internal/github"
	"ptt.dev/ptt/internal/output"
)

// newPrsCmd creates the prs command
func newPrsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prs",
		Short: "Show open GitHub pull requests for mapped branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			remote, err := rt.Engine.Remote()
			if err != nil {
				return err
			}
			remoteURL, err := rt.Backend.RemoteURL(remote)
			if err != nil {
				return err
			}

			client, err := github.NewClient(cmd.Context(), remoteURL)
			if err != nil {
				return err
			}
			prs, err := client.ListOpenPRs(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, rt.Engine.Branches().Len())
			for _, name := range rt.Engine.Branches().Names() {
				pr, ok := prs[name]
				if !ok {
					rows = append(rows, []string{name, output.Dim("-"), output.Dim("no open PR"), ""})
					continue
				}
				title := pr.Title
				if pr.Draft {
					title = output.Dim("[draft] ") + title
				}
				rows = append(rows, []string{name, fmt.Sprintf("#%d", pr.Number), title, pr.HTMLURL})
			}
			fmt.Println(output.RenderTable([]string{"BRANCH", "PR", "TITLE", "URL"}, rows))
			return nil
		},
	}

	return cmd
}
