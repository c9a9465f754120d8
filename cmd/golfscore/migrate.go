package main

import (
	"fmt"

	scoringdb "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories"
	scoringmigrations "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories/migrations"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"
)

func newMigrateCommand(env *runEnv) *cli.Command {
	// withMigrator opens the configured database for the lifetime of one action.
	withMigrator := func(fn func(c *cli.Context, m *migrate.Migrator) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			db, err := scoringdb.Open(c.Context, env.cfg.Database.Driver, env.cfg.Database.ConnString())
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error connecting to the database: %v", err), 1)
			}
			defer db.Close()

			if err := fn(c, migrate.NewMigrator(db, scoringmigrations.Migrations)); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		}
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: withMigrator(func(c *cli.Context, m *migrate.Migrator) error {
					if err := m.Init(c.Context); err != nil {
						return fmt.Errorf("initialize migrations: %w", err)
					}
					fmt.Fprintln(c.App.Writer, "Initialized migration tables")
					return nil
				}),
			},
			{
				Name:    "up",
				Aliases: []string{"migrate"},
				Usage:   "migrate database",
				Action: withMigrator(func(c *cli.Context, m *migrate.Migrator) error {
					if err := m.Init(c.Context); err != nil {
						return fmt.Errorf("initialize migrations: %w", err)
					}
					group, err := m.Migrate(c.Context)
					if err != nil {
						return err
					}
					if group.IsZero() {
						fmt.Fprintln(c.App.Writer, "No new migrations to run")
					} else {
						fmt.Fprintf(c.App.Writer, "Migrated to %s\n", group)
					}
					return nil
				}),
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group",
				Action: withMigrator(func(c *cli.Context, m *migrate.Migrator) error {
					group, err := m.Rollback(c.Context)
					if err != nil {
						return err
					}
					if group.IsZero() {
						fmt.Fprintln(c.App.Writer, "No groups to roll back")
					} else {
						fmt.Fprintf(c.App.Writer, "Rolled back %s\n", group)
					}
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: withMigrator(func(c *cli.Context, m *migrate.Migrator) error {
					ms, err := m.MigrationsWithStatus(c.Context)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Migrations: %s\n", ms)
					fmt.Fprintf(c.App.Writer, "  Applied: %s\n", ms.Applied())
					fmt.Fprintf(c.App.Writer, "  Unapplied: %s\n", ms.Unapplied())
					return nil
				}),
			},
		},
	}
}
