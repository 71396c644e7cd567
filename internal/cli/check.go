package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptt.dev/ptt/internal/output"
)

// newCheckCmd creates the check command
func newCheckCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare every mapped branch against its remote counterpart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			statuses, err := rt.Engine.StatusAll(cmd.Context())
			if err != nil {
				return err
			}

			outOfSync := 0
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := output.OK("in sync")
				remote := rt.Engine.ShortID(status.RemoteHead)
				switch {
				case status.RemoteHead == "":
					state = output.Dim("absent")
					remote = "-"
					outOfSync++
				case !status.InSync:
					state = output.Bad("out of sync")
					outOfSync++
				}
				rows = append(rows, []string{
					status.Name,
					rt.Engine.ShortID(status.LocalHead),
					remote,
					state,
				})
			}
			fmt.Println(output.RenderTable([]string{"BRANCH", "LOCAL", "REMOTE", "STATE"}, rows))

			if outOfSync > 0 {
				return fmt.Errorf("%d of %d mapped branches differ from the remote", outOfSync, len(statuses))
			}
			return nil
		},
	}

	return cmd
}
