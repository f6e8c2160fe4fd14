package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Migrator applies pending schema migrations.
type Migrator interface {
	RunMigrations(ctx context.Context) error
}

// MigrateCmd creates the migrate command
func MigrateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, ok := app.Database.(Migrator)
			if !ok {
				return fmt.Errorf("database does not support migrations")
			}
			if err := migrator.RunMigrations(app.Ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			fmt.Println("\n✓ Database schema is up to date")
			return nil
		},
	}
}
