package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshika202/ecom-cursor-project/internal/report"
	"github.com/joshika202/ecom-cursor-project/internal/store"
)

var queryLimit int

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run the analytical queries and print result tables",
	Long: `Run the fixed analytical queries against the loaded database and
print each result as a table: top customers by revenue, top products by
units sold, the most recent order line items, and revenue by category.

Example:
  ecomgen query --connection "postgres://..." --limit 10`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0,
		"maximum rows per result")
}

func runQuery(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateStore(); err != nil {
		return err
	}
	if cmd.Flags().Changed("limit") {
		cfg.Query.Limit = queryLimit
	}
	n := cfg.Query.Limit

	ctx := context.Background()
	pool, err := store.Connect(ctx, cfg.Connection)
	if err != nil {
		return err
	}
	defer pool.Close()

	customers, err := report.TopCustomersByRevenue(ctx, pool, n)
	if err != nil {
		return err
	}
	cmd.Printf("=== Top %d customers by revenue ===\n", n)
	report.RenderCustomers(cmd.OutOrStdout(), customers)

	products, err := report.TopProductsByUnitsSold(ctx, pool, n)
	if err != nil {
		return err
	}
	cmd.Printf("\n=== Top %d products by units sold ===\n", n)
	report.RenderProducts(cmd.OutOrStdout(), products)

	lines, err := report.RecentOrderItems(ctx, pool, n)
	if err != nil {
		return err
	}
	cmd.Printf("\n=== %d most recent order line items ===\n", n)
	report.RenderOrderLines(cmd.OutOrStdout(), lines)

	categories, err := report.RevenueByCategory(ctx, pool)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\n=== Revenue by category ===")
	report.RenderCategories(cmd.OutOrStdout(), categories)

	return nil
}
