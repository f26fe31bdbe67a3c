package repository

import (
	"context"

	"mangahub/internal/domain/entity"
)

// CountryListFilter drives cursor pagination over countries.
type CountryListFilter struct {
	Cursor *int
	Limit  int // Rows to fetch; callers over-fetch by one to detect a next page.
	Search string
	Order  SortOrder
}

// BoundingBox is a latitude/longitude rectangle around an origin point.
type BoundingBox struct {
	MinLat, MaxLat       float64
	MinLng, MaxLng       float64
	// Candidates are ranked by distance from the origin before any limit applies.
	OriginLat, OriginLng float64
}

// LocationRepository reads geographic reference data.
type LocationRepository interface {
	ListCountries(ctx context.Context, filter CountryListFilter) ([]*entity.Country, error)
	FindCountryByID(ctx context.Context, id int) (*entity.Country, error)
	FindCountryByISO(ctx context.Context, iso string) (*entity.Country, error)

	FindStateByID(ctx context.Context, id int) (*entity.State, error)
	ListStatesByCountry(ctx context.Context, countryID int) ([]*entity.State, error)

	FindCityByID(ctx context.Context, id int) (*entity.City, error)
	ListCitiesByState(ctx context.Context, stateID int) ([]*entity.City, error)
	// ListCitiesInBox returns up to limit cities inside box, closest to its origin first.
	ListCitiesInBox(ctx context.Context, box BoundingBox, limit int) ([]*entity.City, error)

	FindTimeZoneByID(ctx context.Context, id int) (*entity.TimeZone, error)
	ListTimeZonesByCountry(ctx context.Context, countryID int) ([]*entity.TimeZone, error)
}
