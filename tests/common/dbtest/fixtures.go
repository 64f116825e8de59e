//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"reminder-scheduler/internal/infra/kv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertRawEntry writes a KV row directly, bypassing the repository. Used to
// plant orphans and corrupt records.
func InsertRawEntry(t *testing.T, db DBLike, key kv.Key, value []byte) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO kv_entries (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key.Encode(), value)
	require.NoError(t, err)
}

// CountEntries counts rows whose key starts with prefix.
func CountEntries(t *testing.T, db DBLike, prefix kv.Key) int {
	t.Helper()

	var n int
	p := prefix.Encode()
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM kv_entries WHERE substring(key from 1 for $2) = $1",
		p, len(p)).Scan(&n)
	require.NoError(t, err)
	return n
}

// truncates the KV table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE kv_entries")
	return err
}
