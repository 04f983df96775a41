package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joshika202/ecom-cursor-project/internal/dataset"
	"github.com/joshika202/ecom-cursor-project/internal/logging"
)

// CreateSchema creates the five dataset tables from the shared table
// definitions. If any of them already exists, replace=true drops and
// recreates the whole set; replace=false fails with ErrSchemaConflict so a
// stale load can never be silently appended to.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool, replace bool) error {
	existing, err := existingTables(ctx, pool)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		if !replace {
			return fmt.Errorf("%w: tables %v already exist; rerun with --drop-existing to replace them",
				ErrSchemaConflict, existing)
		}
		logging.Warn().Strs("tables", existing).Msg("Dropping existing schema")
		if err := DropSchema(ctx, pool); err != nil {
			return err
		}
	}

	for _, t := range dataset.Tables {
		if _, err := pool.Exec(ctx, t.DDL()); err != nil {
			return unavailable(fmt.Sprintf("create table %s", t.Name), err)
		}
	}
	logging.Info().Int("tables", len(dataset.Tables)).Msg("Schema created")
	return nil
}

// DropSchema drops the dataset tables and the metadata table.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	// Children first.
	for i := len(dataset.Tables) - 1; i >= 0; i-- {
		name := dataset.Tables[i].Name
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
			return unavailable(fmt.Sprintf("drop table %s", name), err)
		}
	}
	return DropMetadata(ctx, pool)
}

// Load bulk-inserts the dataset, one COPY per table in dependency order.
func Load(ctx context.Context, pool *pgxpool.Pool, d *dataset.Dataset) error {
	for _, t := range dataset.Tables {
		rows := tableRows(t.Name, d)
		n, err := pool.CopyFrom(ctx, pgx.Identifier{t.Name}, t.ColumnNames(), pgx.CopyFromRows(rows))
		if err != nil {
			return unavailable(fmt.Sprintf("bulk load %s", t.Name), err)
		}
		logging.Info().Str("table", t.Name).Int64("rows", n).Msg("Table loaded")
	}
	return nil
}

func existingTables(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	var existing []string
	for _, t := range dataset.Tables {
		var found bool
		err := pool.QueryRow(ctx, `
            SELECT EXISTS (
                SELECT FROM information_schema.tables
                WHERE table_schema = current_schema() AND table_name = $1
            )
        `, t.Name).Scan(&found)
		if err != nil {
			return nil, unavailable("inspect schema", err)
		}
		if found {
			existing = append(existing, t.Name)
		}
	}
	return existing, nil
}

// tableRows projects entities into bulk-load rows matching the shared column
// order of the table definitions.
func tableRows(table string, d *dataset.Dataset) [][]any {
	switch table {
	case dataset.TableProducts:
		rows := make([][]any, len(d.Products))
		for i, p := range d.Products {
			rows[i] = []any{p.ID, p.Name, p.Category, p.UnitPrice.Float(), p.Cost.Float(), p.Active}
		}
		return rows
	case dataset.TableCustomers:
		rows := make([][]any, len(d.Customers))
		for i, c := range d.Customers {
			rows[i] = []any{c.ID, c.FirstName, c.LastName, c.Email, c.City, c.State, c.SignupDate, c.LoyaltyTier}
		}
		return rows
	case dataset.TableOrders:
		rows := make([][]any, len(d.Orders))
		for i, o := range d.Orders {
			rows[i] = []any{o.ID, o.CustomerID, o.OrderDate, string(o.Status), o.ShippingMethod, o.Total.Float()}
		}
		return rows
	case dataset.TableOrderItems:
		rows := make([][]any, len(d.Items))
		for i, it := range d.Items {
			rows[i] = []any{it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice.Float(), it.LineTotal.Float()}
		}
		return rows
	case dataset.TableReviews:
		rows := make([][]any, len(d.Reviews))
		for i, r := range d.Reviews {
			rows[i] = []any{r.ID, r.OrderID, r.ProductID, r.CustomerID, r.Rating, r.ReviewDate, r.Text}
		}
		return rows
	}
	return nil
}
