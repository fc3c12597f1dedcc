package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/agrimarket/negotiation-api/internal/config"
	"github.com/agrimarket/negotiation-api/migrations"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

// migrationsDir is where new migration files are written by the create command
const migrationsDir = "./migrations"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Migration error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the negotiation database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withDB(func(db *sql.DB, _ []string) error {
				if err := goose.Up(db, "."); err != nil {
					return fmt.Errorf("failed to run up migrations: %w", err)
				}
				fmt.Println("Migrations applied successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withDB(func(db *sql.DB, _ []string) error {
				if err := goose.Down(db, "."); err != nil {
					return fmt.Errorf("failed to run down migration: %w", err)
				}
				fmt.Println("Migration rolled back successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the status of every migration",
			Args:  cobra.NoArgs,
			RunE: withDB(func(db *sql.DB, _ []string) error {
				if err := goose.Status(db, "."); err != nil {
					return fmt.Errorf("failed to get migration status: %w", err)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: withDB(func(db *sql.DB, _ []string) error {
				if err := goose.Version(db, "."); err != nil {
					return fmt.Errorf("failed to get version: %w", err)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "create [name]",
			Short: "Create a new SQL migration file",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				if err := goose.Create(nil, migrationsDir, args[0], "sql"); err != nil {
					return fmt.Errorf("failed to create migration: %w", err)
				}
				fmt.Printf("Migration created: %s\n", args[0])
				return nil
			},
		},
	)

	return root
}

// withDB opens the configured PostgreSQL database with the embedded
// migrations registered, runs fn and closes the connection
func withDB(fn func(db *sql.DB, args []string) error) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err := sql.Open("postgres", cfg.Database.URL())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}

		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("failed to set dialect: %w", err)
		}

		return fn(db, args)
	}
}
