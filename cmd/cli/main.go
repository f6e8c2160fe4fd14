package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caringcompass/carematch/cmd/cli/commands"
	"github.com/caringcompass/carematch/internal/config"
	"github.com/caringcompass/carematch/pkg/geocode"
	"github.com/caringcompass/carematch/pkg/postgres"
	"github.com/caringcompass/carematch/pkg/utils/logging"
)

var (
	env string
	pg  *postgres.DB
)

func main() {
	// Commands close over the app context; initApp fills it in before any
	// command runs.
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "carematch",
		Short: "CareMatch CLI - Manage clients, caregivers and visits",
		Long:  `A CLI tool for managing home-care clients, caregiver rosters, visit schedules and caregiver matching.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
			if pg != nil {
				pg.Close()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.MigrateCmd(app))
	rootCmd.AddCommand(commands.AddClientCmd(app))
	rootCmd.AddCommand(commands.AddCaregiverCmd(app))
	rootCmd.AddCommand(commands.ListCaregiversCmd(app))
	rootCmd.AddCommand(commands.FindMatchCmd(app))
	rootCmd.AddCommand(commands.AssignVisitCmd(app))
	rootCmd.AddCommand(commands.ScheduleVisitsCmd(app))
	rootCmd.AddCommand(commands.RecordEVVCmd(app))
	rootCmd.AddCommand(commands.CompleteVisitCmd(app))
	rootCmd.AddCommand(commands.ExpiringCredentialsCmd(app))
	rootCmd.AddCommand(commands.CreateInviteCmd(app))
	rootCmd.AddCommand(commands.AcceptInviteCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, database, and geocoder
func initApp(app *commands.AppContext) error {
	app.Ctx = context.Background()

	var err error

	// Initialize logger
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Connect to Postgres
	app.Logger.Info("Connecting to database")
	pg, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Database = pg
	app.Logger.Info("Database connected successfully")

	// Initialize geocoder; the Redis cache is optional
	var cache geocode.Cache
	if app.Cfg.Geocoder.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     app.Cfg.Geocoder.RedisAddr,
			Password: app.Cfg.Geocoder.RedisPassword,
		})
		if err := rdb.Ping(app.Ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		cache = geocode.NewRedisCache(rdb)
		app.Logger.Debug("Geocode cache connected", zap.String("addr", app.Cfg.Geocoder.RedisAddr))
	}
	app.Geocoder = geocode.NewClient(app.Cfg.Geocoder.BaseURL, cache, app.Cfg.GeocodeCacheTTL(), app.Logger)

	return nil
}
