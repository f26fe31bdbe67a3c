package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultNearestRadiusKm = 50
	// Over-fetch candidates from the bounding box, whose corners fall outside the radius.
	nearestCandidateFactor = 4
	kmPerDegreeLatitude    = 111.32
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Logger       *slog.Logger
}

// NewLocationService creates a new location service instance.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// ListCountries pages through countries by id. A next cursor is only returned when another row exists.
func (srv *locationService) ListCountries(ctx context.Context, query *usecase.ListCountriesQuery) (*usecase.CursorPage[*entity.Country], error) {
	limit := query.Limit
	if limit <= 0 {
		limit = usecase.DefaultCountryLimit
	}
	if limit > usecase.MaxPageLimit {
		limit = usecase.MaxPageLimit
	}

	countries, err := srv.locationRepo.ListCountries(ctx, repository.CountryListFilter{
		Cursor: query.Cursor,
		Limit:  limit + 1,
		Search: strings.TrimSpace(query.Search),
		Order:  sortOrder(query.Order, repository.SortAsc),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	page := &usecase.CursorPage[*entity.Country]{Items: countries}
	if len(countries) > limit {
		page.Items = countries[:limit]
		next := page.Items[limit-1].ID
		page.NextCursor = &next
	}
	if page.Items == nil {
		page.Items = []*entity.Country{}
	}

	return page, nil
}

func (srv *locationService) GetCountryByISO(ctx context.Context, iso string) (*entity.Country, error) {
	iso = strings.ToUpper(strings.TrimSpace(iso))

	country, err := srv.locationRepo.FindCountryByISO(ctx, iso)
	if err != nil {
		return nil, notFound(err, domainerrors.NewNotFoundError("Country with ISO %s not found", iso), "failed to find country")
	}

	return country, nil
}

func (srv *locationService) ListStates(ctx context.Context, countryID int) ([]*entity.State, error) {
	if _, err := srv.findCountry(ctx, countryID); err != nil {
		return nil, err
	}

	states, err := srv.locationRepo.ListStatesByCountry(ctx, countryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list states")
	}

	return states, nil
}

func (srv *locationService) ListCities(ctx context.Context, stateID int) ([]*entity.City, error) {
	if _, err := srv.findState(ctx, stateID); err != nil {
		return nil, err
	}

	cities, err := srv.locationRepo.ListCitiesByState(ctx, stateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	return cities, nil
}

func (srv *locationService) ListTimeZones(ctx context.Context, countryID int) ([]*entity.TimeZone, error) {
	if _, err := srv.findCountry(ctx, countryID); err != nil {
		return nil, err
	}

	zones, err := srv.locationRepo.ListTimeZonesByCountry(ctx, countryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list time zones")
	}

	return zones, nil
}

// NearestCities returns cities within the radius of a point, closest first.
func (srv *locationService) NearestCities(ctx context.Context, query *usecase.NearestCitiesQuery) ([]*entity.NearbyCity, error) {
	radius := query.RadiusKm
	if radius <= 0 {
		radius = defaultNearestRadiusKm
	}
	radius = math.Min(radius, usecase.MaxNearestRadiusKm)

	limit := query.Limit
	if limit <= 0 {
		limit = usecase.DefaultNearestLimit
	}

	origin := orb.Point{query.Longitude, query.Latitude}

	candidates, err := srv.locationRepo.ListCitiesInBox(ctx, boundingBox(origin, radius), limit*nearestCandidateFactor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list candidate cities")
	}

	nearby := make([]*entity.NearbyCity, 0, len(candidates))
	for _, city := range candidates {
		distance := geo.Distance(origin, orb.Point{city.Longitude, city.Latitude}) / 1000
		if distance > radius {
			continue
		}
		nearby = append(nearby, &entity.NearbyCity{City: *city, DistanceKm: math.Round(distance*100) / 100})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	srv.log(ctx).Debug("Nearest cities resolved",
		slog.Float64("latitude", query.Latitude),
		slog.Float64("longitude", query.Longitude),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(nearby)))

	return nearby, nil
}

// ValidateAndBuildAddress walks city, state and country, checking that each belongs to the next.
func (srv *locationService) ValidateAndBuildAddress(ctx context.Context, input *entity.AddressInput) (*string, error) {
	if input.IsEmpty() {
		return nil, nil
	}

	var (
		parts     []string
		stateID   = input.StateID
		countryID = input.CountryID
	)

	if input.CityID != nil {
		city, err := srv.findCity(ctx, *input.CityID)
		if err != nil {
			return nil, err
		}
		if stateID != nil && *stateID != city.StateID {
			return nil, domainerrors.ErrCityStateMismatch
		}
		stateID = &city.StateID
		parts = append(parts, city.Name)
	}

	if stateID != nil {
		state, err := srv.findState(ctx, *stateID)
		if err != nil {
			return nil, err
		}
		if countryID != nil && *countryID != state.CountryID {
			return nil, domainerrors.ErrStateCountryMismatch
		}
		countryID = &state.CountryID
		parts = append(parts, state.Name)
	}

	if countryID != nil {
		country, err := srv.findCountry(ctx, *countryID)
		if err != nil {
			return nil, err
		}
		parts = append(parts, country.Name)
	}

	if input.TimeZoneID != nil {
		zone, err := srv.locationRepo.FindTimeZoneByID(ctx, *input.TimeZoneID)
		if err != nil {
			return nil, notFound(err, domainerrors.NewNotFoundError("Time zone with id %d not found", *input.TimeZoneID), "failed to find time zone")
		}
		if countryID != nil && zone.CountryID != *countryID {
			return nil, domainerrors.ErrTimeZoneCountryMismatch
		}
	}

	if len(parts) == 0 {
		return nil, nil
	}

	address := strings.Join(parts, ", ")

	return &address, nil
}

func (srv *locationService) findCountry(ctx context.Context, id int) (*entity.Country, error) {
	country, err := srv.locationRepo.FindCountryByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domainerrors.NewNotFoundError("Country with id %d not found", id), "failed to find country")
	}

	return country, nil
}

func (srv *locationService) findState(ctx context.Context, id int) (*entity.State, error) {
	state, err := srv.locationRepo.FindStateByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domainerrors.NewNotFoundError("State with id %d not found", id), "failed to find state")
	}

	return state, nil
}

func (srv *locationService) findCity(ctx context.Context, id int) (*entity.City, error) {
	city, err := srv.locationRepo.FindCityByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domainerrors.NewNotFoundError("City with id %d not found", id), "failed to find city")
	}

	return city, nil
}

// boundingBox approximates the square of side 2*radiusKm centred on origin.
func boundingBox(origin orb.Point, radiusKm float64) repository.BoundingBox {
	latDelta := radiusKm / kmPerDegreeLatitude

	lngDelta := 180.0
	if cos := math.Cos(origin.Lat() * math.Pi / 180); cos > 1e-6 {
		lngDelta = math.Min(radiusKm/(kmPerDegreeLatitude*cos), 180)
	}

	return repository.BoundingBox{
		MinLat: math.Max(origin.Lat()-latDelta, -90),
		MaxLat: math.Min(origin.Lat()+latDelta, 90),
		MinLng: math.Max(origin.Lon()-lngDelta, -180),
		MaxLng: math.Min(origin.Lon()+lngDelta, 180),

		OriginLat: origin.Lat(),
		OriginLng: origin.Lon(),
	}
}
