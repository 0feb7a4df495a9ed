package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "share <expense-id>",
		Short: "Print an expense as a shareable message",
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

			text, err := st.ShareText(id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
