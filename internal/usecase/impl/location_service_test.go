package impl

import (
	"context"
	"testing"

	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	mockRepo "mangahub/internal/mocks/repository"
	"mangahub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLocationService(t *testing.T) (usecase.LocationUsecase, *mockRepo.MockLocationRepository) {
	repo := mockRepo.NewMockLocationRepository(t)

	return NewLocationService(LocationServiceParams{LocationRepo: repo, Logger: newDiscardLogger()}), repo
}

func countries(ids ...int) []*entity.Country {
	out := make([]*entity.Country, 0, len(ids))
	for _, id := range ids {
		out = append(out, &entity.Country{ID: id, Name: "Country", ISO: "CC"})
	}

	return out
}

func TestLocationService_ListCountries_Cursor(t *testing.T) {
	t.Run("over-fetch reveals next cursor", func(t *testing.T) {
		svc, repo := createTestLocationService(t)

		repo.EXPECT().
			ListCountries(mock.Anything, repository.CountryListFilter{Limit: 3, Search: "ja", Order: repository.SortAsc}).
			Return(countries(4, 5, 6), nil)

		page, err := svc.ListCountries(context.Background(), &usecase.ListCountriesQuery{Limit: 2, Search: " ja "})

		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		require.NotNil(t, page.NextCursor)
		assert.Equal(t, 5, *page.NextCursor)
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		svc, repo := createTestLocationService(t)
		cursor := 10

		repo.EXPECT().
			ListCountries(mock.Anything, repository.CountryListFilter{Cursor: &cursor, Limit: 21, Order: repository.SortDesc}).
			Return(countries(9, 8), nil)

		page, err := svc.ListCountries(context.Background(), &usecase.ListCountriesQuery{Cursor: &cursor, Order: "desc"})

		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("empty result serializes as empty list", func(t *testing.T) {
		svc, repo := createTestLocationService(t)

		repo.EXPECT().ListCountries(mock.Anything, mock.Anything).Return(nil, nil)

		page, err := svc.ListCountries(context.Background(), &usecase.ListCountriesQuery{})

		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})
}

func TestLocationService_GetCountryByISO(t *testing.T) {
	svc, repo := createTestLocationService(t)

	repo.EXPECT().FindCountryByISO(mock.Anything, "JP").Return(&entity.Country{ID: 1, Name: "Japan", ISO: "JP"}, nil)
	repo.EXPECT().FindCountryByISO(mock.Anything, "ZZ").Return(nil, repository.ErrNotFound)

	country, err := svc.GetCountryByISO(context.Background(), "jp")
	require.NoError(t, err)
	assert.Equal(t, "Japan", country.Name)

	_, err = svc.GetCountryByISO(context.Background(), "zz")
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "Country with ISO ZZ not found", appErr.Message())
}

func TestLocationService_ListStates_MissingCountry(t *testing.T) {
	svc, repo := createTestLocationService(t)

	repo.EXPECT().FindCountryByID(mock.Anything, 99).Return(nil, repository.ErrNotFound)

	_, err := svc.ListStates(context.Background(), 99)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Country with id 99 not found", appErr.Message())
}

func TestLocationService_NearestCities(t *testing.T) {
	svc, repo := createTestLocationService(t)

	// Tokyo, Yokohama (~28 km) and Osaka (~400 km).
	candidates := []*entity.City{
		{ID: 3, Name: "Osaka", Latitude: 34.6937, Longitude: 135.5023},
		{ID: 2, Name: "Yokohama", Latitude: 35.4437, Longitude: 139.6380},
		{ID: 1, Name: "Tokyo", Latitude: 35.6762, Longitude: 139.6503},
	}

	repo.EXPECT().
		ListCitiesInBox(mock.Anything, mock.MatchedBy(func(box repository.BoundingBox) bool {
			return box.MinLat < 35.6762 && box.MaxLat > 35.6762 && box.MinLng < 139.6503 && box.MaxLng > 139.6503 &&
				box.OriginLat == 35.6762 && box.OriginLng == 139.6503
		}), 8).
		Return(candidates, nil)

	nearby, err := svc.NearestCities(context.Background(), &usecase.NearestCitiesQuery{
		Latitude:  35.6762,
		Longitude: 139.6503,
		RadiusKm:  100,
		Limit:     2,
	})

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "Tokyo", nearby[0].Name)
	assert.InDelta(t, 0, nearby[0].DistanceKm, 0.01)
	assert.Equal(t, "Yokohama", nearby[1].Name)
	assert.InDelta(t, 26, nearby[1].DistanceKm, 3)
}

func TestLocationService_ValidateAndBuildAddress(t *testing.T) {
	japan := &entity.Country{ID: 1, Name: "Japan", ISO: "JP"}
	osakaPref := &entity.State{ID: 10, Name: "Osaka", CountryID: 1}
	osaka := &entity.City{ID: 100, Name: "Osaka City", StateID: 10}
	tokyoZone := &entity.TimeZone{ID: 5, ZoneName: "Asia/Tokyo", CountryID: 1}
	otherZone := &entity.TimeZone{ID: 6, ZoneName: "Europe/Paris", CountryID: 2}

	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name    string
		input   *entity.AddressInput
		setup   func(repo *mockRepo.MockLocationRepository)
		want    *string
		wantErr error
	}{
		{
			name:  "empty input",
			input: &entity.AddressInput{},
			setup: func(*mockRepo.MockLocationRepository) {},
		},
		{
			name:  "city resolves state and country",
			input: &entity.AddressInput{CityID: intPtr(100), TimeZoneID: intPtr(5)},
			setup: func(repo *mockRepo.MockLocationRepository) {
				repo.EXPECT().FindCityByID(mock.Anything, 100).Return(osaka, nil)
				repo.EXPECT().FindStateByID(mock.Anything, 10).Return(osakaPref, nil)
				repo.EXPECT().FindCountryByID(mock.Anything, 1).Return(japan, nil)
				repo.EXPECT().FindTimeZoneByID(mock.Anything, 5).Return(tokyoZone, nil)
			},
			want: ptr("Osaka City, Osaka, Japan"),
		},
		{
			name:  "city outside state",
			input: &entity.AddressInput{StateID: intPtr(11), CityID: intPtr(100)},
			setup: func(repo *mockRepo.MockLocationRepository) {
				repo.EXPECT().FindCityByID(mock.Anything, 100).Return(osaka, nil)
			},
			wantErr: domainerrors.ErrCityStateMismatch,
		},
		{
			name:  "state outside country",
			input: &entity.AddressInput{CountryID: intPtr(2), StateID: intPtr(10)},
			setup: func(repo *mockRepo.MockLocationRepository) {
				repo.EXPECT().FindStateByID(mock.Anything, 10).Return(osakaPref, nil)
			},
			wantErr: domainerrors.ErrStateCountryMismatch,
		},
		{
			name:  "time zone of another country",
			input: &entity.AddressInput{CountryID: intPtr(1), TimeZoneID: intPtr(6)},
			setup: func(repo *mockRepo.MockLocationRepository) {
				repo.EXPECT().FindCountryByID(mock.Anything, 1).Return(japan, nil)
				repo.EXPECT().FindTimeZoneByID(mock.Anything, 6).Return(otherZone, nil)
			},
			wantErr: domainerrors.ErrTimeZoneCountryMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := createTestLocationService(t)
			tt.setup(repo)

			address, err := svc.ValidateAndBuildAddress(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, address)
		})
	}
}

func TestLocationService_ValidateAndBuildAddress_MissingCity(t *testing.T) {
	svc, repo := createTestLocationService(t)
	cityID := 404

	repo.EXPECT().FindCityByID(mock.Anything, 404).Return(nil, repository.ErrNotFound)

	_, err := svc.ValidateAndBuildAddress(context.Background(), &entity.AddressInput{CityID: &cityID})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "City with id 404 not found", appErr.Message())
}
