package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_CreatesKVTable(t *testing.T) {
	ctx := context.Background()

	db, repos, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NotNil(t, repos.KV)

	require.NoError(t, repos.KV.Set(ctx, "k", []byte("v")))
	v, err := repos.KV.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()

	db, _, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(ctx, db))
}
