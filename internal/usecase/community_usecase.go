package usecase

import (
	"context"

	"mangahub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Comments ---

// CreateCommentInput posts a comment on exactly one of a manga or a chapter.
type CreateCommentInput struct {
	MangaID         *uuid.UUID `json:"mangaId,omitempty"`
	ChapterID       *uuid.UUID `json:"chapterId,omitempty"`
	Content         string     `json:"content" validate:"required,min=1,max=5000"`
	IsSpoiler       bool       `json:"isSpoiler"`
	ParentCommentID *uuid.UUID `json:"parentCommentId,omitempty"`
}

// UpdateCommentInput edits the author's own comment.
type UpdateCommentInput struct {
	Content   *string `json:"content,omitempty" validate:"omitempty,min=1,max=5000"`
	IsSpoiler *bool   `json:"isSpoiler,omitempty"`
}

// CommentUsecase manages threaded comments.
type CommentUsecase interface {
	Create(ctx context.Context, author *entity.User, input *CreateCommentInput) (*entity.Comment, error)
	// ListByManga and ListByChapter apply the same draft and mature rules as reading the target.
	ListByManga(ctx context.Context, viewer *entity.User, mangaID uuid.UUID, page PageQuery) (*Paginated[*entity.Comment], error)
	ListByChapter(ctx context.Context, viewer *entity.User, chapterID uuid.UUID, page PageQuery) (*Paginated[*entity.Comment], error)
	// GetThread returns the comment and all of its replies ordered by depth then creation time.
	GetThread(ctx context.Context, viewer *entity.User, id uuid.UUID) ([]*entity.Comment, error)
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, input *UpdateCommentInput) (*entity.Comment, error)
	// Delete removes the comment together with every reply below it.
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error
	Pin(ctx context.Context, id uuid.UUID, pinned bool) (*entity.Comment, error)
}

// --- Ratings ---

// RateInput scores a manga between 0 and 10 with at most two decimals.
type RateInput struct {
	Score  float64 `json:"score" validate:"min=0,max=10,maxdecimals=2"`
	Review *string `json:"review,omitempty" validate:"omitempty,max=5000"`
}

// RatingSummary is the aggregate shown on a manga.
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
}

// RatingUsecase manages one rating per reader and manga.
type RatingUsecase interface {
	Rate(ctx context.Context, userID, mangaID uuid.UUID, input *RateInput) (*entity.Rating, error)
	Delete(ctx context.Context, userID, mangaID uuid.UUID) (*RatingSummary, error)
	GetMine(ctx context.Context, userID, mangaID uuid.UUID) (*entity.Rating, error)
	ListByManga(ctx context.Context, mangaID uuid.UUID, page PageQuery) (*Paginated[*entity.Rating], error)
}

// --- Library ---

// RecordProgressInput marks a chapter, and optionally a page, as read.
type RecordProgressInput struct {
	MangaID   uuid.UUID             `json:"mangaId" validate:"required"`
	ChapterID uuid.UUID             `json:"chapterId" validate:"required"`
	PageID    *uuid.UUID            `json:"pageId,omitempty"`
	Status    *entity.HistoryStatus `json:"status,omitempty" validate:"omitempty,oneof=reading completed on_hold dropped plan_to_read"`
}

// UpdateHistoryStatusInput changes the reading state of a manga.
type UpdateHistoryStatusInput struct {
	Status entity.HistoryStatus `json:"status" validate:"required,oneof=reading completed on_hold dropped plan_to_read"`
}

// ListHistoryQuery pages through reading history, optionally by status.
type ListHistoryQuery struct {
	PageQuery
	Status *entity.HistoryStatus `validate:"omitempty,oneof=reading completed on_hold dropped plan_to_read"`
}

// LibraryUsecase manages a reader's favorites and reading history.
type LibraryUsecase interface {
	AddFavorite(ctx context.Context, userID, mangaID uuid.UUID) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, mangaID uuid.UUID) error
	ListFavorites(ctx context.Context, userID uuid.UUID, page PageQuery) (*Paginated[*entity.Favorite], error)

	RecordProgress(ctx context.Context, userID uuid.UUID, input *RecordProgressInput) (*entity.ReadingHistory, error)
	UpdateHistoryStatus(ctx context.Context, userID, mangaID uuid.UUID, input *UpdateHistoryStatusInput) (*entity.ReadingHistory, error)
	ListHistory(ctx context.Context, userID uuid.UUID, query *ListHistoryQuery) (*Paginated[*entity.ReadingHistory], error)
	DeleteHistory(ctx context.Context, userID, mangaID uuid.UUID) error
}
