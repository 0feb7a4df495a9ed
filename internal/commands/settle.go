package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSettleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "settle <expense-id>",
		Short: "Toggle an expense between pending and settled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q", args[0])
			}

			st, _, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ex, err := st.ToggleStatus(id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Expense %d is now %s\n", ex.ID, ex.Status)
			return nil
		},
	}
}
