package handler

import (
	"net/http"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/delivery/http/middleware"
	"mangahub/internal/delivery/http/response"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MangaHandlerParams holds dependencies for MangaHandler, injected by Fx.
type MangaHandlerParams struct {
	fx.In

	MangaUC usecase.MangaUsecase
}

// MangaHandler serves the manga catalog.
type MangaHandler struct {
	mangaUC usecase.MangaUsecase
}

// NewMangaHandler is the constructor for MangaHandler.
func NewMangaHandler(params MangaHandlerParams) *MangaHandler {
	return &MangaHandler{mangaUC: params.MangaUC}
}

// List pages through the catalog visible to the caller.
func (h *MangaHandler) List(c echo.Context) error {
	var query usecase.ListMangasQuery
	var status string
	err := bindPage(echo.QueryParamsBinder(c), &query.PageQuery).
		String("search", &query.Search).
		String("status", &status).
		String("tag", &query.TagSlug).
		String("sort", &query.Sort).
		String("order", &query.Order).
		BindError()
	if err != nil {
		return bindingFailed(err)
	}
	if status != "" {
		s := entity.MangaStatus(status)
		query.Status = &s
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	page, err := h.mangaUC.List(c.Request().Context(), deliverycontext.GetUser(c), &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Mangas retrieved successfully")
}

// Get returns a manga by id or slug.
func (h *MangaHandler) Get(c echo.Context) error {
	manga, err := h.mangaUC.Get(c.Request().Context(), deliverycontext.GetUser(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, manga, "Manga retrieved successfully")
}

// QRCode renders a PNG linking to the manga page.
func (h *MangaHandler) QRCode(c echo.Context) error {
	png, err := h.mangaUC.ShareQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Create adds a manga.
func (h *MangaHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.MangaInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	manga, err := h.mangaUC.Create(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, manga, "Manga created successfully")
}

// Update replaces a manga.
func (h *MangaHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.MangaInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	manga, err := h.mangaUC.Update(c.Request().Context(), user.ID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, manga, "Manga updated successfully")
}

// Delete soft deletes a manga.
func (h *MangaHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.mangaUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// SetTags replaces the tag set of a manga.
func (h *MangaHandler) SetTags(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.SetTagsInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	manga, err := h.mangaUC.SetTags(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, manga, "Manga tags updated successfully")
}

// UploadCover stores the uploaded image as the manga cover.
func (h *MangaHandler) UploadCover(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	file := middleware.Upload(c)
	if file == nil {
		return domainerrors.ErrNoFileUploaded
	}

	manga, err := h.mangaUC.UploadCover(c.Request().Context(), id, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, manga, "Cover uploaded successfully")
}
