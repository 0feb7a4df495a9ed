package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/splittab-dev/splittab/internal/config"
	"github.com/splittab-dev/splittab/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var members []string
	var backend string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new group directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, members, backend)
		},
	}

	cmd.Flags().StringSliceVar(&members, "members", nil, "initial member names (default: built-in seed list)")
	cmd.Flags().StringVar(&backend, "backend", config.BackendFile, "storage backend (file or sqlite)")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, members []string, backend string) error {
	if backend != config.BackendFile && backend != config.BackendSQLite {
		return fmt.Errorf("unknown storage backend %q", backend)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating group dir: %w", err)
	}

	if members == nil {
		for _, m := range ledger.DefaultMembers {
			members = append(members, string(m))
		}
	}

	cfg := config.Default(members)
	cfg.Storage.Backend = backend

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized group in %s with %d members (%s backend)\n",
		dir, len(members), backend)
	return nil
}
