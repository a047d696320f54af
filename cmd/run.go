package cmd

import (
	"fmt"

	"github.com/algodrill/algodrill/internal/app"
	"github.com/algodrill/algodrill/internal/store"
	"github.com/algodrill/algodrill/internal/strategy"
	"github.com/spf13/cobra"
)

// runApp opens the store and launches the TUI under the given strategy
// configuration.
func runApp(cmd *cobra.Command, cfg strategy.Config) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Store:  st,
		Config: cfg,
	})
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
