package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/splittab-dev/splittab/internal/model"
)

func newExpenseCommand() *cobra.Command {
	expenseCmd := &cobra.Command{
		Use:   "expense",
		Short: "Expense operations",
	}
	expenseCmd.AddCommand(newExpenseAddCommand())
	expenseCmd.AddCommand(newExpenseListCommand())
	return expenseCmd
}

func newExpenseAddCommand() *cobra.Command {
	var payer string
	var itemSpecs []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long:  "Record a new expense. Each --item takes name:amount:consumer, e.g. --item tea:10:Pratik.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItemSpecs(itemSpecs)
			if err != nil {
				return err
			}

			st, cfg, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ex, err := st.CreateExpense(model.Member(payer), items)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added expense %d: %s paid %s%s for %d item(s)\n",
				ex.ID, ex.Payer, cfg.Group.Currency, ex.Total().StringFixed(2), len(ex.Items))
			return nil
		},
	}

	cmd.Flags().StringVar(&payer, "payer", "", "member who paid (required)")
	_ = cmd.MarkFlagRequired("payer")
	cmd.Flags().StringArrayVar(&itemSpecs, "item", nil, "line item as name:amount:consumer (repeatable)")

	return cmd
}

func newExpenseListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			expenses := st.Expenses()
			if len(expenses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses yet.")
				return nil
			}

			for i := len(expenses) - 1; i >= 0; i-- {
				ex := expenses[i]
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  %s%s  paid by %s  [%s]\n",
					ex.ID,
					ex.Date.Format("2006-01-02"),
					cfg.Group.Currency,
					ex.Total().StringFixed(2),
					ex.Payer,
					ex.Status,
				)
				for _, it := range ex.Items {
					fmt.Fprintf(cmd.OutOrStdout(), "    - %s %s%s (%s)\n",
						it.Name, cfg.Group.Currency, it.Amount.StringFixed(2), it.Consumer)
				}
			}
			return nil
		},
	}
}

// parseItemSpecs converts name:amount:consumer specs into line items.
func parseItemSpecs(specs []string) ([]model.LineItem, error) {
	items := make([]model.LineItem, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("item %q: want name:amount:consumer", spec)
		}

		amount, err := decimal.NewFromString(parts[1])
		if err != nil {
			return nil, fmt.Errorf("item %q: parsing amount: %w", spec, err)
		}

		items = append(items, model.LineItem{
			Name:     parts[0],
			Amount:   amount,
			Consumer: model.Member(parts[2]),
		})
	}
	return items, nil
}
