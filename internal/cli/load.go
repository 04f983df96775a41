package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshika202/ecom-cursor-project/internal/dataset"
	"github.com/joshika202/ecom-cursor-project/internal/integrity"
	"github.com/joshika202/ecom-cursor-project/internal/logging"
	"github.com/joshika202/ecom-cursor-project/internal/store"
)

var loadDropExisting bool

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the generated CSV files into PostgreSQL",
	Long: `Read the five CSV files from the data directory, re-validate their
integrity, create the table schema, and bulk-load every table. An
existing schema is refused unless --drop-existing is given.

Example:
  ecomgen load --connection "postgres://..." --drop-existing`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().BoolVar(&loadDropExisting, "drop-existing", false,
		"drop existing dataset tables before loading")
}

func runLoad(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateStore(); err != nil {
		return err
	}

	d, err := dataset.ReadDir(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to read dataset (run generate first?): %w", err)
	}

	// Validate again at the load boundary: the CSV files may not come from
	// this process.
	if err := integrity.Validate(d); err != nil {
		return fmt.Errorf("dataset failed validation: %w", err)
	}

	ctx := context.Background()
	pool, err := store.Connect(ctx, cfg.Connection)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := store.CreateSchema(ctx, pool, loadDropExisting); err != nil {
		return err
	}
	if err := store.Load(ctx, pool, d); err != nil {
		return err
	}
	if err := store.SaveMetadata(ctx, pool, cfg.Generate.Seed, d); err != nil {
		return err
	}

	logging.Info().
		Int("orders", len(d.Orders)).
		Int("order_items", len(d.Items)).
		Msg("Dataset loaded")
	return nil
}
