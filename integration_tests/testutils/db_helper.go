package testutils

import (
	"context"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	scoringmigrations "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories/migrations"
)

// RunMigrations creates the migration tables and applies every scoring migration.
func RunMigrations(ctx context.Context, db *bun.DB) error {
	migrator := migrate.NewMigrator(db, scoringmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migration tables: %w", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("failed to run scoring migrations: %w", err)
	}
	if group.IsZero() {
		log.Println("No new scoring migrations to run")
	} else {
		log.Printf("Migrated scoring tables to %s", group)
	}
	return nil
}

// TruncateTables empties the match and player tables between tests.
func TruncateTables(ctx context.Context, db bun.IDB, tables ...string) error {
	for _, table := range tables {
		if _, err := db.NewTruncateTable().TableExpr("?", bun.Ident(table)).Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}
