package postgres

import (
	"context"
	"math"
	"strings"

	"mangahub/internal/domain/entity"
	"mangahub/internal/domain/repository"
	"mangahub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository reads the geographic reference tables.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// ListCountries returns countries after the cursor in id order.
func (repo *locationRepository) ListCountries(ctx context.Context, filter repository.CountryListFilter) ([]*entity.Country, error) {
	query := repo.db.WithContext(ctx).Model(&model.CountryModel{})

	if filter.Cursor != nil {
		if filter.Order == repository.SortDesc {
			query = query.Where("id < ?", *filter.Cursor)
		} else {
			query = query.Where("id > ?", *filter.Cursor)
		}
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		cond, args := searchCondition(repo.db, search, "name")
		query = query.Where(repo.db.Where(cond, args...).Or("iso = ?", strings.ToUpper(search)))
	}

	order := filter.Order
	if order == "" {
		order = repository.SortAsc
	}

	var rows []model.CountryModel
	if err := query.Order(orderBy("id", order)).Limit(filter.Limit).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	countries := make([]*entity.Country, 0, len(rows))
	for i := range rows {
		countries = append(countries, toCountryDomain(&rows[i]))
	}

	return countries, nil
}

// FindCountryByID retrieves a country by id.
func (repo *locationRepository) FindCountryByID(ctx context.Context, id int) (*entity.Country, error) {
	var row model.CountryModel
	if err := repo.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find country")
	}

	return toCountryDomain(&row), nil
}

// FindCountryByISO retrieves a country by its upper-case ISO code.
func (repo *locationRepository) FindCountryByISO(ctx context.Context, iso string) (*entity.Country, error) {
	var row model.CountryModel
	if err := repo.db.WithContext(ctx).Where("iso = ?", iso).First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to find country by iso")
	}

	return toCountryDomain(&row), nil
}

// FindStateByID retrieves a state by id.
func (repo *locationRepository) FindStateByID(ctx context.Context, id int) (*entity.State, error) {
	var row model.StateModel
	if err := repo.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find state")
	}

	return toStateDomain(&row), nil
}

// ListStatesByCountry lists a country's states by name.
func (repo *locationRepository) ListStatesByCountry(ctx context.Context, countryID int) ([]*entity.State, error) {
	var rows []model.StateModel
	if err := repo.db.WithContext(ctx).Where("country_id = ?", countryID).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list states")
	}

	states := make([]*entity.State, 0, len(rows))
	for i := range rows {
		states = append(states, toStateDomain(&rows[i]))
	}

	return states, nil
}

// FindCityByID retrieves a city by id.
func (repo *locationRepository) FindCityByID(ctx context.Context, id int) (*entity.City, error) {
	var row model.CityModel
	if err := repo.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find city")
	}

	return toCityDomain(&row), nil
}

// ListCitiesByState lists a state's cities by name.
func (repo *locationRepository) ListCitiesByState(ctx context.Context, stateID int) ([]*entity.City, error) {
	var rows []model.CityModel
	if err := repo.db.WithContext(ctx).Where("state_id = ?", stateID).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	return toCitiesDomain(rows), nil
}

// ListCitiesInBox returns cities inside the bounding box, nearest to its origin first.
// Ranking uses an equirectangular approximation; callers refine with a geodesic distance.
func (repo *locationRepository) ListCitiesInBox(ctx context.Context, box repository.BoundingBox, limit int) ([]*entity.City, error) {
	lngScale := math.Cos(box.OriginLat * math.Pi / 180)
	nearestFirst := clause.OrderBy{Expression: clause.Expr{
		SQL:                "(latitude - ?) * (latitude - ?) + (longitude - ?) * (longitude - ?) * ?, id",
		Vars:               []any{box.OriginLat, box.OriginLat, box.OriginLng, box.OriginLng, lngScale * lngScale},
		WithoutParentheses: true,
	}}

	var rows []model.CityModel
	if err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Order(nearestFirst).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cities in box")
	}

	return toCitiesDomain(rows), nil
}

// FindTimeZoneByID retrieves a time zone by id.
func (repo *locationRepository) FindTimeZoneByID(ctx context.Context, id int) (*entity.TimeZone, error) {
	var row model.TimeZoneModel
	if err := repo.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, notFoundOr(err, "failed to find time zone")
	}

	return toTimeZoneDomain(&row), nil
}

// ListTimeZonesByCountry lists a country's time zones by zone name.
func (repo *locationRepository) ListTimeZonesByCountry(ctx context.Context, countryID int) ([]*entity.TimeZone, error) {
	var rows []model.TimeZoneModel
	if err := repo.db.WithContext(ctx).Where("country_id = ?", countryID).Order("zone_name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list time zones")
	}

	zones := make([]*entity.TimeZone, 0, len(rows))
	for i := range rows {
		zones = append(zones, toTimeZoneDomain(&rows[i]))
	}

	return zones, nil
}

// --- Mapper Functions ---

func toCountryDomain(data *model.CountryModel) *entity.Country {
	return &entity.Country{ID: data.ID, Name: data.Name, ISO: data.ISO}
}

func toStateDomain(data *model.StateModel) *entity.State {
	return &entity.State{ID: data.ID, Name: data.Name, CountryID: data.CountryID}
}

func toCityDomain(data *model.CityModel) *entity.City {
	return &entity.City{
		ID:        data.ID,
		Name:      data.Name,
		StateID:   data.StateID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}

func toCitiesDomain(rows []model.CityModel) []*entity.City {
	cities := make([]*entity.City, 0, len(rows))
	for i := range rows {
		cities = append(cities, toCityDomain(&rows[i]))
	}

	return cities
}

func toTimeZoneDomain(data *model.TimeZoneModel) *entity.TimeZone {
	return &entity.TimeZone{
		ID:            data.ID,
		Name:          data.Name,
		Abbreviation:  data.Abbreviation,
		GMTOffset:     data.GMTOffset,
		GMTOffsetName: data.GMTOffsetName,
		TZName:        data.TZName,
		ZoneName:      data.ZoneName,
		CountryID:     data.CountryID,
	}
}
