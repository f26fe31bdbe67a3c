package usecase

import (
	"context"

	"mangahub/internal/domain/entity"
)

const (
	DefaultCountryLimit = 20
	DefaultNearestLimit = 10
	MaxNearestRadiusKm  = 500
)

// ListCountriesQuery is a cursor-paginated country search.
type ListCountriesQuery struct {
	Cursor *int   `validate:"omitempty,min=1"`
	Limit  int    `validate:"omitempty,min=1,max=100"`
	Search string `validate:"omitempty,max=100"`
	Order  string `validate:"omitempty,oneof=asc desc"`
}

// NearestCitiesQuery looks up cities around a coordinate.
type NearestCitiesQuery struct {
	Latitude  float64 `validate:"min=-90,max=90"`
	Longitude float64 `validate:"min=-180,max=180"`
	RadiusKm  float64 `validate:"omitempty,gt=0,max=500"`
	Limit     int     `validate:"omitempty,min=1,max=100"`
}

// LocationUsecase serves geographic reference data and address resolution.
type LocationUsecase interface {
	ListCountries(ctx context.Context, query *ListCountriesQuery) (*CursorPage[*entity.Country], error)
	GetCountryByISO(ctx context.Context, iso string) (*entity.Country, error)
	ListStates(ctx context.Context, countryID int) ([]*entity.State, error)
	ListCities(ctx context.Context, stateID int) ([]*entity.City, error)
	ListTimeZones(ctx context.Context, countryID int) ([]*entity.TimeZone, error)
	NearestCities(ctx context.Context, query *NearestCitiesQuery) ([]*entity.NearbyCity, error)
	// ValidateAndBuildAddress resolves the referenced rows into "City, State, Country".
	// It returns nil for an empty input.
	ValidateAndBuildAddress(ctx context.Context, input *entity.AddressInput) (*string, error)
}
