package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mangahub/config"
	"mangahub/internal/domain/entity"
	"mangahub/internal/domain/repository"
	mockRepo "mangahub/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, cfg *config.Config) (repository.LocationRepository, *mockRepo.MockLocationRepository) {
	next := mockRepo.NewMockLocationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCachedLocationRepository(next, cfg, logger), next
}

func TestCachedLocationRepository_FindCountryByID_HitsOnce(t *testing.T) {
	repo, next := newTestCache(t, &config.Config{})
	ctx := context.Background()
	country := &entity.Country{ID: 1, Name: "Japan", ISO: "JP"}

	next.EXPECT().FindCountryByID(ctx, 1).Return(country, nil).Once()

	for range 3 {
		got, err := repo.FindCountryByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, country, got)
	}
}

func TestCachedLocationRepository_ErrorsAreNotCached(t *testing.T) {
	repo, next := newTestCache(t, &config.Config{})
	ctx := context.Background()
	state := &entity.State{ID: 7, Name: "Tokyo", CountryID: 1}

	next.EXPECT().FindStateByID(ctx, 7).Return(nil, errors.New("db down")).Once()
	next.EXPECT().FindStateByID(ctx, 7).Return(state, nil).Once()

	_, err := repo.FindStateByID(ctx, 7)
	require.Error(t, err)

	got, err := repo.FindStateByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestCachedLocationRepository_ListCountriesKeyedByFilter(t *testing.T) {
	repo, next := newTestCache(t, &config.Config{})
	ctx := context.Background()
	cursor := 10

	first := repository.CountryListFilter{Limit: 21, Order: repository.SortAsc}
	second := repository.CountryListFilter{Cursor: &cursor, Limit: 21, Order: repository.SortAsc}

	next.EXPECT().ListCountries(ctx, first).Return([]*entity.Country{{ID: 1}}, nil).Once()
	next.EXPECT().ListCountries(ctx, second).Return([]*entity.Country{{ID: 11}}, nil).Once()

	got, err := repo.ListCountries(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 1, got[0].ID)

	got, err = repo.ListCountries(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 11, got[0].ID)

	got, err = repo.ListCountries(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 1, got[0].ID)
}

func TestCachedLocationRepository_CitiesInBoxBypassCache(t *testing.T) {
	repo, next := newTestCache(t, nil)
	ctx := context.Background()
	box := repository.BoundingBox{MinLat: 35, MaxLat: 36, MinLng: 139, MaxLng: 140}

	next.EXPECT().ListCitiesInBox(ctx, box, 5).Return([]*entity.City{{ID: 3}}, nil).Twice()

	for range 2 {
		_, err := repo.ListCitiesInBox(ctx, box, 5)
		require.NoError(t, err)
	}
}

func TestCachedLocationRepository_EntriesExpire(t *testing.T) {
	repo, next := newTestCache(t, &config.Config{Cache: &config.CacheConfig{Size: 4, TTL: 20 * time.Millisecond}})
	ctx := context.Background()
	zones := []*entity.TimeZone{{ID: 1, ZoneName: "Asia/Tokyo", CountryID: 1}}

	next.EXPECT().ListTimeZonesByCountry(ctx, 1).Return(zones, nil).Twice()

	_, err := repo.ListTimeZonesByCountry(ctx, 1)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := repo.ListTimeZonesByCountry(ctx, 1)
		return err == nil && len(next.Calls) == 2
	}, time.Second, 30*time.Millisecond)
}
