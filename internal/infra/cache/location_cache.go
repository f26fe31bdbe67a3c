// Package cache provides in-process caches over read-mostly repositories.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mangahub/config"
	"mangahub/internal/domain/entity"
	"mangahub/internal/domain/repository"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedLocationRepository serves geographic reference data from an expirable LRU.
// Reference tables are only written by the seed command, so entries are never invalidated explicitly.
type cachedLocationRepository struct {
	next   repository.LocationRepository
	store  *expirable.LRU[string, any]
	logger *slog.Logger
}

// NewCachedLocationRepository wraps next with an LRU sized and aged by the cache config.
func NewCachedLocationRepository(next repository.LocationRepository, cfg *config.Config, logger *slog.Logger) repository.LocationRepository {
	size, ttl := 1024, time.Hour
	if cfg.Cache != nil {
		if cfg.Cache.Size > 0 {
			size = cfg.Cache.Size
		}
		if cfg.Cache.TTL > 0 {
			ttl = cfg.Cache.TTL
		}
	}

	return &cachedLocationRepository{
		next:   next,
		store:  expirable.NewLRU[string, any](size, nil, ttl),
		logger: logger.With(slog.String("component", "location_cache")),
	}
}

// load returns the cached value for key or fills it from fetch. Errors are never cached.
func load[T any](c *cachedLocationRepository, key string, fetch func() (T, error)) (T, error) {
	if v, ok := c.store.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	value, err := fetch()
	if err != nil {
		return value, err
	}

	if evicted := c.store.Add(key, value); evicted {
		c.logger.Debug("location cache evicted an entry", slog.Int("size", c.store.Len()))
	}

	return value, nil
}

func (c *cachedLocationRepository) ListCountries(ctx context.Context, filter repository.CountryListFilter) ([]*entity.Country, error) {
	cursor := "-"
	if filter.Cursor != nil {
		cursor = fmt.Sprint(*filter.Cursor)
	}
	key := fmt.Sprintf("countries:%s:%d:%s:%s", cursor, filter.Limit, filter.Order, filter.Search)

	return load(c, key, func() ([]*entity.Country, error) {
		return c.next.ListCountries(ctx, filter)
	})
}

func (c *cachedLocationRepository) FindCountryByID(ctx context.Context, id int) (*entity.Country, error) {
	return load(c, fmt.Sprintf("country:%d", id), func() (*entity.Country, error) {
		return c.next.FindCountryByID(ctx, id)
	})
}

func (c *cachedLocationRepository) FindCountryByISO(ctx context.Context, iso string) (*entity.Country, error) {
	return load(c, "country-iso:"+iso, func() (*entity.Country, error) {
		return c.next.FindCountryByISO(ctx, iso)
	})
}

func (c *cachedLocationRepository) FindStateByID(ctx context.Context, id int) (*entity.State, error) {
	return load(c, fmt.Sprintf("state:%d", id), func() (*entity.State, error) {
		return c.next.FindStateByID(ctx, id)
	})
}

func (c *cachedLocationRepository) ListStatesByCountry(ctx context.Context, countryID int) ([]*entity.State, error) {
	return load(c, fmt.Sprintf("states:%d", countryID), func() ([]*entity.State, error) {
		return c.next.ListStatesByCountry(ctx, countryID)
	})
}

func (c *cachedLocationRepository) FindCityByID(ctx context.Context, id int) (*entity.City, error) {
	return load(c, fmt.Sprintf("city:%d", id), func() (*entity.City, error) {
		return c.next.FindCityByID(ctx, id)
	})
}

func (c *cachedLocationRepository) ListCitiesByState(ctx context.Context, stateID int) ([]*entity.City, error) {
	return load(c, fmt.Sprintf("cities:%d", stateID), func() ([]*entity.City, error) {
		return c.next.ListCitiesByState(ctx, stateID)
	})
}

// ListCitiesInBox is not cached; coordinates make every key unique.
func (c *cachedLocationRepository) ListCitiesInBox(ctx context.Context, box repository.BoundingBox, limit int) ([]*entity.City, error) {
	return c.next.ListCitiesInBox(ctx, box, limit)
}

func (c *cachedLocationRepository) FindTimeZoneByID(ctx context.Context, id int) (*entity.TimeZone, error) {
	return load(c, fmt.Sprintf("timezone:%d", id), func() (*entity.TimeZone, error) {
		return c.next.FindTimeZoneByID(ctx, id)
	})
}

func (c *cachedLocationRepository) ListTimeZonesByCountry(ctx context.Context, countryID int) ([]*entity.TimeZone, error) {
	return load(c, fmt.Sprintf("timezones:%d", countryID), func() ([]*entity.TimeZone, error) {
		return c.next.ListTimeZonesByCountry(ctx, countryID)
	})
}
