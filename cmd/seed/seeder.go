package main

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// serialTables have explicit ids in the source files, so their sequences trail behind after a seed.
var serialTables = []string{"countries", "states", "cities", "timezones"}

// SeedResult counts the rows handed to the database per table.
type SeedResult struct {
	Countries int
	States    int
	Cities    int
	TimeZones int
}

// Seeder writes reference data. Existing rows are left untouched so reruns are safe.
type Seeder struct {
	db        *gorm.DB
	logger    *slog.Logger
	batchSize int
}

// NewSeeder creates a seeder that inserts batchSize rows per statement.
func NewSeeder(db *gorm.DB, logger *slog.Logger, batchSize int) *Seeder {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Seeder{db: db, logger: logger, batchSize: batchSize}
}

// Seed inserts parents before children in one transaction.
func (s *Seeder) Seed(ctx context.Context, data *ReferenceData) (*SeedResult, error) {
	result := &SeedResult{
		Countries: len(data.Countries),
		States:    len(data.States),
		Cities:    len(data.Cities),
		TimeZones: len(data.TimeZones),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx = tx.Clauses(clause.OnConflict{DoNothing: true})

		if err := insert(tx, data.Countries, s.batchSize); err != nil {
			return errors.Wrap(err, "insert countries")
		}
		s.logger.Info("Countries seeded", slog.Int("rows", result.Countries))

		if err := insert(tx, data.States, s.batchSize); err != nil {
			return errors.Wrap(err, "insert states")
		}
		s.logger.Info("States seeded", slog.Int("rows", result.States))

		if err := insert(tx, data.Cities, s.batchSize); err != nil {
			return errors.Wrap(err, "insert cities")
		}
		s.logger.Info("Cities seeded", slog.Int("rows", result.Cities))

		if err := insert(tx, data.TimeZones, s.batchSize); err != nil {
			return errors.Wrap(err, "insert timezones")
		}
		s.logger.Info("Time zones seeded", slog.Int("rows", result.TimeZones))

		return s.resetSequences(tx)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func insert[T any](tx *gorm.DB, rows []T, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}

	// Associations are only foreign keys here; never upsert the parent structs.
	return errors.WithStack(tx.Omit(clause.Associations).CreateInBatches(rows, batchSize).Error)
}

// resetSequences moves serial sequences past the seeded ids. Only PostgreSQL has them.
func (s *Seeder) resetSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}

	for _, table := range serialTables {
		err := tx.Exec(
			"SELECT setval(pg_get_serial_sequence(?, 'id'), COALESCE((SELECT MAX(id) FROM "+table+"), 0) + 1, false)",
			table,
		).Error
		if err != nil {
			return errors.Wrapf(err, "reset %s sequence", table)
		}
	}

	return nil
}
