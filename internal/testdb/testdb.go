// Package testdb provides an in-memory database for tests.
package testdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldworkhq/fieldwork/infrastructure/persistence"
	"github.com/fieldworkhq/fieldwork/internal/database"
)

// New creates an in-memory SQLite database with the full schema migrated.
// The connection is closed when the test finishes.
func New(t *testing.T) database.Database {
	t.Helper()

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, persistence.AutoMigrate(ctx, db))
	return db
}
