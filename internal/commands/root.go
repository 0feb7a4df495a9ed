package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/splittab-dev/splittab/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "splittab",
		Short:   "Group expense splitting and settlement tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("dir", "d", ".", "group data directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newMemberCommand())
	rootCmd.AddCommand(newExpenseCommand())
	rootCmd.AddCommand(newSettleCommand())
	rootCmd.AddCommand(newBalancesCommand())
	rootCmd.AddCommand(newResetCommand())
	rootCmd.AddCommand(newShareCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
