package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/splittab-dev/splittab/internal/config"
	"github.com/splittab-dev/splittab/internal/ledger"
	"github.com/splittab-dev/splittab/internal/model"
	"github.com/splittab-dev/splittab/internal/storage"
)

// dataSubdir holds the file backend's JSON snapshots.
const dataSubdir = "data"

// dbFile is the sqlite backend's database file.
const dbFile = "splittab.db"

// openStore builds a ledger store for the group directory named by the
// --dir flag. A missing config file means default settings; cleanup must
// be called when done.
func openStore(cmd *cobra.Command) (st *ledger.Store, cfg *config.Config, cleanup func() error, err error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err = config.Load(filepath.Join(dir, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default(nil)
	} else if err != nil {
		return nil, nil, nil, err
	}

	var gw storage.Gateway
	cleanup = func() error { return nil }

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		db, err := storage.NewSQLite(filepath.Join(dir, dbFile))
		if err != nil {
			return nil, nil, nil, err
		}
		gw = db
		cleanup = db.Close
	case config.BackendFile, "":
		gw = storage.NewFile(filepath.Join(dir, dataSubdir))
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	seed := make([]model.Member, len(cfg.Group.Members))
	for i, m := range cfg.Group.Members {
		seed[i] = model.Member(m)
	}

	st = ledger.New(gw, ledger.Options{
		SeedMembers: seed,
		Currency:    cfg.Group.Currency,
	})
	return st, cfg, cleanup, nil
}
