package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joshika202/ecom-cursor-project/internal/datagen"
	"github.com/joshika202/ecom-cursor-project/internal/dataset"
	"github.com/joshika202/ecom-cursor-project/internal/testutil"
)

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	g, err := datagen.New(datagen.Config{
		Seed:              1,
		Products:          5,
		Customers:         5,
		Orders:            10,
		MaxItemsPerOrder:  3,
		ReviewProbability: 0.5,
		OrderWindowStart:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		OrderWindowEnd:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Failed to create generator: %v", err)
	}
	return g.Generate()
}

func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	baseConnStr := testutil.SkipIfNoPostgres(t)
	connStr, dbName := testutil.CreateTestDB(t, baseConnStr)
	pool := testutil.ConnectTestDB(t, connStr)
	t.Cleanup(func() {
		pool.Close()
		testutil.DropTestDB(t, baseConnStr, dbName)
	})
	return pool
}

func countRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Counting rows in %s: %v", table, err)
	}
	return n
}

func TestCreateSchemaAndLoad(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	d := testDataset(t)

	if err := CreateSchema(ctx, pool, false); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	if err := Load(ctx, pool, d); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, tbl := range dataset.Tables {
		want := d.Rows(tbl.Name)
		if got := countRows(t, pool, tbl.Name); got != want {
			t.Errorf("Table %s has %d rows, want %d", tbl.Name, got, want)
		}
	}
}

func TestCreateSchemaConflict(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, pool, false); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	err := CreateSchema(ctx, pool, false)
	if err == nil {
		t.Fatal("Expected schema conflict, got nil")
	}
	if !errors.Is(err, ErrSchemaConflict) {
		t.Errorf("Expected ErrSchemaConflict, got: %v", err)
	}
}

func TestCreateSchemaReplace(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	d := testDataset(t)

	if err := CreateSchema(ctx, pool, false); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	if err := Load(ctx, pool, d); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Replace drops the loaded data and recreates empty tables.
	if err := CreateSchema(ctx, pool, true); err != nil {
		t.Fatalf("CreateSchema with replace failed: %v", err)
	}
	for _, tbl := range dataset.Tables {
		if got := countRows(t, pool, tbl.Name); got != 0 {
			t.Errorf("Table %s has %d rows after replace, want 0", tbl.Name, got)
		}
	}

	// And the tables are loadable again.
	if err := Load(ctx, pool, d); err != nil {
		t.Fatalf("Load after replace failed: %v", err)
	}
}

func TestLoadedMoneyValues(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	d := testDataset(t)

	if err := CreateSchema(ctx, pool, false); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	if err := Load(ctx, pool, d); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// NUMERIC(10,2) columns round-trip the cent amounts exactly.
	for _, o := range d.Orders[:3] {
		var total float64
		err := pool.QueryRow(ctx,
			"SELECT order_total::float8 FROM orders WHERE order_id = $1", o.ID).Scan(&total)
		if err != nil {
			t.Fatalf("Querying order %d: %v", o.ID, err)
		}
		if total != o.Total.Float() {
			t.Errorf("Order %d total is %v, want %v", o.ID, total, o.Total.Float())
		}
	}
}

func TestSaveMetadata(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	d := testDataset(t)

	if err := SaveMetadata(ctx, pool, 42, d); err != nil {
		t.Fatalf("SaveMetadata failed: %v", err)
	}

	seed, err := GetMetadataValue(ctx, pool, "seed")
	if err != nil {
		t.Fatalf("GetMetadataValue failed: %v", err)
	}
	if seed != "42" {
		t.Errorf("Expected seed '42', got '%s'", seed)
	}

	rows, err := GetMetadataValue(ctx, pool, "rows_orders")
	if err != nil {
		t.Fatalf("GetMetadataValue failed: %v", err)
	}
	if rows != "10" {
		t.Errorf("Expected rows_orders '10', got '%s'", rows)
	}

	// Saving again upserts rather than failing.
	if err := SaveMetadata(ctx, pool, 43, d); err != nil {
		t.Fatalf("Second SaveMetadata failed: %v", err)
	}
	seed, err = GetMetadataValue(ctx, pool, "seed")
	if err != nil {
		t.Fatalf("GetMetadataValue failed: %v", err)
	}
	if seed != "43" {
		t.Errorf("Expected seed '43' after upsert, got '%s'", seed)
	}
}

func TestConnectBadConnString(t *testing.T) {
	_, err := Connect(context.Background(), "not a connection string")
	if err == nil {
		t.Fatal("Expected error for invalid connection string")
	}
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Errorf("Expected *UnavailableError, got: %v", err)
	}
}
