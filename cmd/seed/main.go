package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"mangahub/config"
	logs "mangahub/internal/infra/log"
	"mangahub/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const defaultBatchSize = 500

type seedFlags struct {
	dir       string
	batchSize int
	dryRun    bool
}

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

// Loads countries, states, cities and time zones from CSV files.
func main() {
	var flags seedFlags
	flag.StringVar(&flags.dir, "dir", "./data/geo", "Directory containing countries.csv, states.csv, cities.csv and timezones.csv")
	flag.IntVar(&flags.batchSize, "batch", defaultBatchSize, "Rows per insert statement")
	flag.BoolVar(&flags.dryRun, "dry-run", false, "Validate the files without writing to the database")
	flag.Parse()

	data, err := NewCSVLoader(flags.dir).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}

	if flags.dryRun {
		fmt.Printf("countries=%d states=%d cities=%d timezones=%d\n",
			len(data.Countries), len(data.States), len(data.Cities), len(data.TimeZones))

		return
	}

	var seedErr error
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(func(params runParams) {
			// Runs after the database hooks, so the connection has been pinged.
			params.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						_, seedErr = NewSeeder(params.DB, params.Logger, flags.batchSize).Seed(context.Background(), data)
						if seedErr != nil {
							params.Logger.Error("Seed failed", slog.Any("error", seedErr))
						}
						if err := params.Shutdown(); err != nil {
							params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
						}
					}()

					return nil
				},
			})
		}),
	)
	app.Run()

	if seedErr != nil {
		os.Exit(1)
	}
}
