package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMemberCommand() *cobra.Command {
	memberCmd := &cobra.Command{
		Use:   "member",
		Short: "Member registry operations",
	}
	memberCmd.AddCommand(newMemberAddCommand())
	memberCmd.AddCommand(newMemberListCommand())
	return memberCmd
}

func newMemberAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a member to the group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			m, err := st.AddMember(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", m)
			return nil
		},
	}
}

func newMemberListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List group members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, m := range st.Members() {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}
