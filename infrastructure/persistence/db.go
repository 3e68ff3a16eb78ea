package persistence

import (
	"context"
	"fmt"

	"github.com/fieldworkhq/fieldwork/internal/database"
)

// AutoMigrate creates or updates the schema for every persistence model.
func AutoMigrate(ctx context.Context, db database.Database) error {
	err := db.Session(ctx).AutoMigrate(
		&JobModel{},
		&SignalModel{},
		&ToolModel{},
		&CompanyModel{},
		&SnapshotModel{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate schema: %w", err)
	}
	return nil
}
