package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mangahub/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.CountryModel{}, &model.StateModel{}, &model.CityModel{}, &model.TimeZoneModel{}))

	return db
}

func TestSeeder_Seed(t *testing.T) {
	db := newTestDB(t)
	data, err := NewCSVLoader(writeDataDir(t, validFiles())).Load()
	require.NoError(t, err)

	seeder := NewSeeder(db, slog.New(slog.NewTextHandler(io.Discard, nil)), 1)

	result, err := seeder.Seed(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, &SeedResult{Countries: 2, States: 2, Cities: 2, TimeZones: 2}, result)

	// A second run must not duplicate or fail on existing rows.
	_, err = seeder.Seed(context.Background(), data)
	require.NoError(t, err)

	var cities []model.CityModel
	require.NoError(t, db.Order("id").Find(&cities).Error)
	require.Len(t, cities, 2)
	assert.Equal(t, "Shinjuku", cities[0].Name)
	assert.Equal(t, 10, cities[0].StateID)

	var tz model.TimeZoneModel
	require.NoError(t, db.Where("zone_name = ?", "Europe/Paris").First(&tz).Error)
	assert.Equal(t, 2, tz.CountryID)

	for _, m := range []any{&model.CountryModel{}, &model.StateModel{}, &model.CityModel{}, &model.TimeZoneModel{}} {
		var n int64
		require.NoError(t, db.Model(m).Count(&n).Error)
		assert.Equal(t, int64(2), n)
	}
}
