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

// TagHandlerParams holds dependencies for TagHandler, injected by Fx.
type TagHandlerParams struct {
	fx.In

	TagUC usecase.TagUsecase
}

// TagHandler serves the tag catalog.
type TagHandler struct {
	tagUC usecase.TagUsecase
}

// NewTagHandler is the constructor for TagHandler.
func NewTagHandler(params TagHandlerParams) *TagHandler {
	return &TagHandler{tagUC: params.TagUC}
}

// List returns the tags, optionally of one type or matching a search.
func (h *TagHandler) List(c echo.Context) error {
	query := usecase.ListTagsQuery{Search: c.QueryParam("search")}
	if raw := optionalString(c, "type"); raw != nil {
		tagType := entity.TagType(*raw)
		query.Type = &tagType
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	tags, err := h.tagUC.List(c.Request().Context(), &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tags, "Tags retrieved successfully")
}

// Get returns one tag by slug.
func (h *TagHandler) Get(c echo.Context) error {
	tag, err := h.tagUC.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tag, "Tag retrieved successfully")
}

// Create adds a tag.
func (h *TagHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.TagInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	tag, err := h.tagUC.Create(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, tag, "Tag created successfully")
}

// Update replaces a tag.
func (h *TagHandler) Update(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.TagInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	tag, err := h.tagUC.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tag, "Tag updated successfully")
}

// Delete soft deletes a tag.
func (h *TagHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.tagUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
