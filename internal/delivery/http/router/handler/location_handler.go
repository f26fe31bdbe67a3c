package handler

import (
	"net/http"

	"mangahub/internal/delivery/http/response"
	"mangahub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
}

// LocationHandler serves the geographic reference data.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
	}
}

// ListCountries pages through countries with a cursor.
func (h *LocationHandler) ListCountries(c echo.Context) error {
	var query usecase.ListCountriesQuery
	err := echo.QueryParamsBinder(c).
		Int("limit", &query.Limit).
		String("search", &query.Search).
		String("order", &query.Order).
		BindError()
	if err != nil {
		return bindingFailed(err)
	}
	if query.Cursor, err = optionalInt(c, "cursor"); err != nil {
		return err
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	page, err := h.locationUC.ListCountries(c.Request().Context(), &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Countries retrieved successfully")
}

// GetCountry looks a country up by its ISO code.
func (h *LocationHandler) GetCountry(c echo.Context) error {
	country, err := h.locationUC.GetCountryByISO(c.Request().Context(), c.Param("iso"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, country, "Country retrieved successfully")
}

// ListStates lists the states of a country.
func (h *LocationHandler) ListStates(c echo.Context) error {
	countryID, err := intParam(c, "countryId")
	if err != nil {
		return err
	}

	states, err := h.locationUC.ListStates(c.Request().Context(), countryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, states, "States retrieved successfully")
}

// ListTimeZones lists the time zones of a country.
func (h *LocationHandler) ListTimeZones(c echo.Context) error {
	countryID, err := intParam(c, "countryId")
	if err != nil {
		return err
	}

	zones, err := h.locationUC.ListTimeZones(c.Request().Context(), countryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, zones, "Time zones retrieved successfully")
}

// ListCities lists the cities of a state.
func (h *LocationHandler) ListCities(c echo.Context) error {
	stateID, err := intParam(c, "stateId")
	if err != nil {
		return err
	}

	cities, err := h.locationUC.ListCities(c.Request().Context(), stateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cities, "Cities retrieved successfully")
}

// NearestCities finds cities around lat/lng.
func (h *LocationHandler) NearestCities(c echo.Context) error {
	var query usecase.NearestCitiesQuery
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &query.Latitude).
		MustFloat64("lng", &query.Longitude).
		Float64("radiusKm", &query.RadiusKm).
		Int("limit", &query.Limit).
		BindError()
	if err != nil {
		return bindingFailed(err)
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	cities, err := h.locationUC.NearestCities(c.Request().Context(), &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cities, "Cities retrieved successfully")
}
