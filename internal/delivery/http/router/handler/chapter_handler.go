package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/delivery/http/middleware"
	"mangahub/internal/delivery/http/response"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublishChapterRequest optionally schedules the publication time.
type PublishChapterRequest struct {
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// ChapterHandlerParams holds dependencies for ChapterHandler, injected by Fx.
type ChapterHandlerParams struct {
	fx.In

	ChapterUC usecase.ChapterUsecase
	Logger    *slog.Logger
}

// ChapterHandler serves chapters and their pages.
type ChapterHandler struct {
	chapterUC usecase.ChapterUsecase
	logger    *slog.Logger
}

// NewChapterHandler is the constructor for ChapterHandler.
func NewChapterHandler(params ChapterHandlerParams) *ChapterHandler {
	return &ChapterHandler{
		chapterUC: params.ChapterUC,
		logger:    params.Logger,
	}
}

// ListByManga lists the chapters of a manga.
func (h *ChapterHandler) ListByManga(c echo.Context) error {
	mangaID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	chapters, err := h.chapterUC.ListByManga(c.Request().Context(), deliverycontext.GetUser(c), mangaID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chapters, "Chapters retrieved successfully")
}

// Create adds a chapter to a manga.
func (h *ChapterHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mangaID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ChapterInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	chapter, err := h.chapterUC.Create(c.Request().Context(), user.ID, mangaID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, chapter, "Chapter created successfully")
}

// Read returns a chapter with its pages.
func (h *ChapterHandler) Read(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	chapter, err := h.chapterUC.Read(c.Request().Context(), deliverycontext.GetUser(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chapter, "Chapter retrieved successfully")
}

// Update replaces a chapter.
func (h *ChapterHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ChapterInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	chapter, err := h.chapterUC.Update(c.Request().Context(), user.ID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chapter, "Chapter updated successfully")
}

// Delete removes a chapter.
func (h *ChapterHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.chapterUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Publish makes a chapter visible to readers.
func (h *ChapterHandler) Publish(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req PublishChapterRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	chapter, err := h.chapterUC.Publish(c.Request().Context(), id, req.PublishedAt)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chapter, "Chapter published successfully")
}

// ListPages lists the pages of a chapter in reading order.
func (h *ChapterHandler) ListPages(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	pages, err := h.chapterUC.ListPages(c.Request().Context(), deliverycontext.GetUser(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pages, "Pages retrieved successfully")
}

// UploadPages appends the uploaded images as pages.
func (h *ChapterHandler) UploadPages(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	files := middleware.Uploads(c)
	if len(files) == 0 {
		return domainerrors.ErrNoFileUploaded
	}

	pages, err := h.chapterUC.UploadPages(c.Request().Context(), user.ID, id, files)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Pages uploaded",
		slog.String("chapter_id", id.String()),
		slog.Int("count", len(pages)),
	)

	return response.Created(c, pages, "Pages uploaded successfully")
}

// DeletePage removes one page.
func (h *ChapterHandler) DeletePage(c echo.Context) error {
	pageID, err := uuidParam(c, "pageId")
	if err != nil {
		return err
	}

	if err := h.chapterUC.DeletePage(c.Request().Context(), pageID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
