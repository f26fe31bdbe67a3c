package handler

import (
	"net/http"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/delivery/http/response"
	"mangahub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PinCommentRequest pins or unpins a comment; pinning is the default.
type PinCommentRequest struct {
	Pinned *bool `json:"pinned,omitempty"`
}

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
}

// CommentHandler serves threaded comments on mangas and chapters.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
}

// NewCommentHandler is the constructor for CommentHandler.
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{commentUC: params.CommentUC}
}

// ListByManga pages through the top-level comments of a manga.
func (h *CommentHandler) ListByManga(c echo.Context) error {
	mangaID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	comments, err := h.commentUC.ListByManga(c.Request().Context(), deliverycontext.GetUser(c), mangaID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "Comments retrieved successfully")
}

// ListByChapter pages through the top-level comments of a chapter.
func (h *CommentHandler) ListByChapter(c echo.Context) error {
	chapterID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	comments, err := h.commentUC.ListByChapter(c.Request().Context(), deliverycontext.GetUser(c), chapterID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "Comments retrieved successfully")
}

// CreateForManga posts a comment on the manga in the path.
func (h *CommentHandler) CreateForManga(c echo.Context) error {
	mangaID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	return h.create(c, func(input *usecase.CreateCommentInput) { input.MangaID = &mangaID })
}

// CreateForChapter posts a comment on the chapter in the path.
func (h *CommentHandler) CreateForChapter(c echo.Context) error {
	chapterID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	return h.create(c, func(input *usecase.CreateCommentInput) { input.ChapterID = &chapterID })
}

func (h *CommentHandler) create(c echo.Context, scope func(input *usecase.CreateCommentInput)) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.CreateCommentInput
	if err := bindBody(c, &input); err != nil {
		return err
	}
	scope(&input)

	comment, err := h.commentUC.Create(c.Request().Context(), user, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, comment, "Comment created successfully")
}

// Thread returns a comment and all of its replies.
func (h *CommentHandler) Thread(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	thread, err := h.commentUC.GetThread(c.Request().Context(), deliverycontext.GetUser(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, thread, "Comment thread retrieved successfully")
}

// Update edits the caller's own comment.
func (h *CommentHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateCommentInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	comment, err := h.commentUC.Update(c.Request().Context(), user, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment updated successfully")
}

// Delete removes a comment with its replies.
func (h *CommentHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentUC.Delete(c.Request().Context(), user, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Pin pins or unpins a comment.
func (h *CommentHandler) Pin(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req PinCommentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	pinned := req.Pinned == nil || *req.Pinned

	comment, err := h.commentUC.Pin(c.Request().Context(), id, pinned)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment pin updated successfully")
}
