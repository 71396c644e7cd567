package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptt.dev/ptt/internal/output"
)

// newStatsCmd creates the stats command
func newStatsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-branch diff sizes across the stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			stats, err := rt.Engine.Stats(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(stats))
			for _, stat := range stats {
				rows = append(rows, []string{
					stat.Name,
					fmt.Sprintf("%d", stat.Files),
					output.OK(fmt.Sprintf("+%d", stat.Added)),
					output.Bad(fmt.Sprintf("-%d", stat.Deleted)),
					fmt.Sprintf("%+d", stat.Delta()),
				})
			}
			fmt.Println(output.RenderTable([]string{"BRANCH", "FILES", "ADDED", "DELETED", "NET"}, rows))
			return nil
		},
	}

	return cmd
}
