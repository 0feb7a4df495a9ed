package commands

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/splittab-dev/splittab/internal/balance"
	"github.com/splittab-dev/splittab/internal/model"
)

// settledBand is the tolerance inside which a balance displays as
// settled, absorbing sub-paisa rounding noise.
var settledBand = decimal.RequireFromString("0.01")

func newBalancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show who owes and who should receive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			members := st.Members()
			expenses := st.Expenses()
			balances := balance.Compute(members, expenses)

			fmt.Fprintf(cmd.OutOrStdout(), "Total pending: %s%s\n\n",
				cfg.Group.Currency, balance.TotalPending(expenses).StringFixed(2))

			// Registered members in insertion order, then any stale
			// names from old expenses, alphabetically.
			registered := make(map[model.Member]bool, len(members))
			ordered := make([]model.Member, 0, len(balances))
			for _, m := range members {
				registered[m] = true
				ordered = append(ordered, m)
			}
			var stale []model.Member
			for m := range balances {
				if !registered[m] {
					stale = append(stale, m)
				}
			}
			sort.Slice(stale, func(i, j int) bool { return stale[i] < stale[j] })
			ordered = append(ordered, stale...)

			for _, m := range ordered {
				amt := balances[m]
				label := "Settled"
				switch {
				case amt.GreaterThan(settledBand):
					label = "Should receive"
				case amt.LessThan(settledBand.Neg()):
					label = "Should pay"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-15s %s%s\n",
					m, label, cfg.Group.Currency, amt.StringFixed(2))
			}
			return nil
		},
	}
}
