package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/splittab-dev/splittab/internal/importer"
	"github.com/splittab-dev/splittab/internal/model"
)

func newImportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import expenses from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			rows, err := parser.Parse(f)
			if err != nil {
				return err
			}

			st, _, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			// Each row goes through the normal create path so every
			// validation rule applies.
			for i, row := range rows {
				_, err := st.CreateExpenseAt(model.Member(row.Payer), []model.LineItem{{
					Name:     row.Item,
					Amount:   row.Amount,
					Consumer: model.Member(row.Consumer),
				}}, row.Date)
				if err != nil {
					return fmt.Errorf("row %d: %w", i+2, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d expense(s)\n", len(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "simple", "import format")

	return cmd
}
