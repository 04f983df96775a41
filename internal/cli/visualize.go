package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshika202/ecom-cursor-project/internal/logging"
	"github.com/joshika202/ecom-cursor-project/internal/report"
	"github.com/joshika202/ecom-cursor-project/internal/store"
)

var (
	visualizeOutput string
	visualizeLimit  int
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Render analytical results as PNG bar charts",
	Long: `Run the chart queries against the loaded database and write PNG bar
charts for top products by units sold and revenue by category.

Example:
  ecomgen visualize --connection "postgres://..." --output charts`,
	RunE: runVisualize,
}

func init() {
	visualizeCmd.Flags().StringVar(&visualizeOutput, "output", "",
		"directory to write chart PNGs to")
	visualizeCmd.Flags().IntVar(&visualizeLimit, "limit", 10,
		"products shown in the top-products chart")
}

func runVisualize(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateStore(); err != nil {
		return err
	}
	if visualizeOutput != "" {
		cfg.Visualize.Output = visualizeOutput
	}

	ctx := context.Background()
	pool, err := store.Connect(ctx, cfg.Connection)
	if err != nil {
		return err
	}
	defer pool.Close()

	products, err := report.TopProductsByUnitsSold(ctx, pool, visualizeLimit)
	if err != nil {
		return err
	}
	categories, err := report.RevenueByCategory(ctx, pool)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Visualize.Output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := writeChart(filepath.Join(cfg.Visualize.Output, "top_products.png"), func(f *os.File) error {
		return report.TopProductsChart(f, products)
	}); err != nil {
		return err
	}
	if err := writeChart(filepath.Join(cfg.Visualize.Output, "revenue_by_category.png"), func(f *os.File) error {
		return report.CategoryRevenueChart(f, categories)
	}); err != nil {
		return err
	}

	logging.Info().Str("output", cfg.Visualize.Output).Msg("Charts written")
	return nil
}

func writeChart(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}
