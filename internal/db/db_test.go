package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northflank-guides/go-with-postgres/internal/config"
)

// Full lifecycle against a real Postgres: probe → ensure → insert → read →
// drop. Needs PG_* set; skipped otherwise.
func TestLifecycle(t *testing.T) {
	if os.Getenv("PG_HOST") == "" {
		t.Skip("PG_HOST not set; skipping database integration test")
	}

	ctx := context.Background()
	d, err := Connect(ctx, config.Load().DSN())
	require.NoError(t, err)
	defer d.Close()

	connected, err := d.Probe(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Connection to postgres successful!", connected)

	require.NoError(t, d.EnsureTable(ctx))
	// Safe to run twice.
	require.NoError(t, d.EnsureTable(ctx))
	defer d.DropTable(ctx)

	require.NoError(t, d.Insert(ctx, "bob"))

	records, err := d.ReadByName(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Name)
	assert.Equal(t, "bob", *records[0].Name)
	assert.NotZero(t, records[0].ID)
	assert.False(t, records[0].Date.IsZero())

	none, err := d.ReadByName(ctx, "never-written")
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)

	require.NoError(t, d.DropTable(ctx))

	_, err = d.ReadByName(ctx, "bob")
	assert.Error(t, err)
}
