package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joshika202/ecom-cursor-project/internal/dataset"
	"github.com/joshika202/ecom-cursor-project/internal/logging"
	"github.com/joshika202/ecom-cursor-project/pkg/version"
)

const metadataTable = "dataset_metadata"

const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS dataset_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// SaveMetadata records what was loaded so later runs can tell which seed and
// counts produced the database contents.
func SaveMetadata(ctx context.Context, pool *pgxpool.Pool, seed uint64, d *dataset.Dataset) error {
	if _, err := pool.Exec(ctx, createMetadataTableSQL); err != nil {
		return unavailable("create metadata table", err)
	}

	metadata := map[string]string{
		"seed":      strconv.FormatUint(seed, 10),
		"version":   version.Short(),
		"loaded_at": time.Now().UTC().Format(time.RFC3339),
	}
	for _, t := range dataset.Tables {
		metadata["rows_"+t.Name] = strconv.Itoa(d.Rows(t.Name))
	}

	for key, value := range metadata {
		_, err := pool.Exec(ctx, `
            INSERT INTO dataset_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return unavailable(fmt.Sprintf("save metadata %s", key), err)
		}
	}

	logging.Debug().Uint64("seed", seed).Msg("Saved metadata")
	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, `
        SELECT value FROM dataset_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+metadataTable); err != nil {
		return unavailable("drop metadata table", err)
	}
	return nil
}
