package handler

import (
	"net/http"

	"mangahub/internal/delivery/http/response"
	"mangahub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
}

// RatingHandler serves reader ratings of a manga.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
}

// NewRatingHandler is the constructor for RatingHandler.
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{ratingUC: params.RatingUC}
}

// List pages through the ratings of a manga.
func (h *RatingHandler) List(c echo.Context) error {
	mangaID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	ratings, err := h.ratingUC.ListByManga(c.Request().Context(), mangaID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved successfully")
}

// Mine returns the caller's rating of a manga.
func (h *RatingHandler) Mine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mangaID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	rating, err := h.ratingUC.GetMine(c.Request().Context(), user.ID, mangaID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rating, "Rating retrieved successfully")
}

// Rate creates or replaces the caller's rating.
func (h *RatingHandler) Rate(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mangaID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.RateInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	rating, err := h.ratingUC.Rate(c.Request().Context(), user.ID, mangaID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rating, "Rating saved successfully")
}

// Delete removes the caller's rating and returns the new aggregate.
func (h *RatingHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mangaID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.ratingUC.Delete(c.Request().Context(), user.ID, mangaID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Rating deleted successfully")
}
