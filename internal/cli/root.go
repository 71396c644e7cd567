// Package cli wires the cobra command tree for git-ptt.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "git-ptt",
		Short: "git-ptt maps marker commits in a linear history onto logical branches",
		Long: `git-ptt partitions a linear commit history into named logical branches.

A commit whose message (or git note) carries a marker line such as "@feature-x"
seals everything accumulated since the previous marker into a mapped branch of
that name. Mapped heads are persisted under refs/ptt/ and can be pushed,
checked out, restacked and compared against the remote.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase logging verbosity (-v info, -vv debug)")
	flags.StringVarP(&opts.repoPath, "repo", "C", ".", "Path to the git repository")
	flags.StringVarP(&opts.base, "base", "b", "", "Base revision bounding the scanned range")
	flags.StringVarP(&opts.remote, "remote", "R", "", "Remote used by push, delete and check")
	flags.StringVarP(&opts.marker, "marker", "m", "", "Marker prefix recognized in commit messages and notes")
	flags.IntVar(&opts.shortIDLen, "short-id-len", 0, "Abbreviated hash length in output")
	flags.BoolVar(&opts.logFile, "log-file", false, "Also write debug logs to a rotating file")

	rootCmd.AddCommand(newLsCmd(opts))
	rootCmd.AddCommand(newHeadCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newPushCmd(opts))
	rootCmd.AddCommand(newDeleteCmd(opts))
	rootCmd.AddCommand(newPruneCmd(opts))
	rootCmd.AddCommand(newBranchCmd(opts))
	rootCmd.AddCommand(newCheckoutCmd(opts))
	rootCmd.AddCommand(newRestackCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newPrsCmd(opts))
	rootCmd.AddCommand(newViewCmd(opts))
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
