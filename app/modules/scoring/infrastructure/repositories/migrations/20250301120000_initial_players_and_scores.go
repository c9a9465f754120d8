package scoringmigrations

import (
	"context"
	"fmt"

	scoringdb "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating players and scores tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewCreateTable().Model((*scoringdb.Player)(nil)).IfNotExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to create players table: %w", err)
			}

			if _, err := tx.NewCreateTable().Model((*scoringdb.Match)(nil)).
				IfNotExists().
				ForeignKey(`("player1_id") REFERENCES "players" ("player_id") ON DELETE CASCADE`).
				ForeignKey(`("player2_id") REFERENCES "players" ("player_id") ON DELETE CASCADE`).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to create scores table: %w", err)
			}

			fmt.Println("Players and scores tables created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping players and scores tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewDropTable().Model((*scoringdb.Match)(nil)).IfExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop scores table: %w", err)
			}
			if _, err := tx.NewDropTable().Model((*scoringdb.Player)(nil)).IfExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop players table: %w", err)
			}
			return nil
		})
	})
}
