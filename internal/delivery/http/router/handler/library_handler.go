package handler

import (
	"net/http"

	"mangahub/internal/delivery/http/response"
	"mangahub/internal/domain/entity"
	"mangahub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LibraryHandlerParams holds dependencies for LibraryHandler, injected by Fx.
type LibraryHandlerParams struct {
	fx.In

	LibraryUC usecase.LibraryUsecase
}

// LibraryHandler serves the caller's favorites and reading history.
type LibraryHandler struct {
	libraryUC usecase.LibraryUsecase
}

// NewLibraryHandler is the constructor for LibraryHandler.
func NewLibraryHandler(params LibraryHandlerParams) *LibraryHandler {
	return &LibraryHandler{libraryUC: params.LibraryUC}
}

// AddFavorite adds the manga in the path to the caller's favorites.
func (h *LibraryHandler) AddFavorite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mangaID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	favorite, err := h.libraryUC.AddFavorite(c.Request().Context(), user.ID, mangaID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, favorite, "Manga added to favorites")
}

// RemoveFavorite removes the manga in the path from the caller's favorites.
func (h *LibraryHandler) RemoveFavorite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mangaID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.libraryUC.RemoveFavorite(c.Request().Context(), user.ID, mangaID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListFavorites pages through the caller's favorites.
func (h *LibraryHandler) ListFavorites(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	favorites, err := h.libraryUC.ListFavorites(c.Request().Context(), user.ID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// ListHistory pages through the caller's reading history.
func (h *LibraryHandler) ListHistory(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var query usecase.ListHistoryQuery
	if err := bindPage(echo.QueryParamsBinder(c), &query.PageQuery).BindError(); err != nil {
		return bindingFailed(err)
	}
	if raw := optionalString(c, "status"); raw != nil {
		status := entity.HistoryStatus(*raw)
		query.Status = &status
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	history, err := h.libraryUC.ListHistory(c.Request().Context(), user.ID, &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "Reading history retrieved successfully")
}

// RecordProgress marks a chapter as read.
func (h *LibraryHandler) RecordProgress(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.RecordProgressInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	history, err := h.libraryUC.RecordProgress(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "Reading progress saved")
}

// UpdateHistoryStatus changes the reading state of a manga.
func (h *LibraryHandler) UpdateHistoryStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mangaID, err := uuidParam(c, "mangaId")
	if err != nil {
		return err
	}

	var input usecase.UpdateHistoryStatusInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	history, err := h.libraryUC.UpdateHistoryStatus(c.Request().Context(), user.ID, mangaID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "Reading status updated")
}

// DeleteHistory forgets the reading history of a manga.
func (h *LibraryHandler) DeleteHistory(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mangaID, err := uuidParam(c, "mangaId")
	if err != nil {
		return err
	}

	if err := h.libraryUC.DeleteHistory(c.Request().Context(), user.ID, mangaID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
