package repository

import (
	"context"

	"mangahub/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentListFilter selects top-level comments of one manga or chapter.
type CommentListFilter struct {
	PageRequest
	MangaID   *uuid.UUID
	ChapterID *uuid.UUID
}

// CommentRepository persists comments together with their closure rows.
type CommentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	// Create inserts the comment, its self row and one row per ancestor of its parent.
	Create(ctx context.Context, comment *entity.Comment) error
	Update(ctx context.Context, comment *entity.Comment) error
	// ListTopLevel lists root comments, pinned first then newest.
	ListTopLevel(ctx context.Context, filter CommentListFilter) ([]*entity.Comment, int64, error)
	// ListSubtree returns rootID and all of its descendants ordered by depth then creation time.
	ListSubtree(ctx context.Context, rootID uuid.UUID) ([]*entity.Comment, error)
	// DeleteSubtree removes rootID and all of its descendants and returns what was removed.
	DeleteSubtree(ctx context.Context, rootID uuid.UUID) ([]*entity.Comment, error)
	AdjustReplyCount(ctx context.Context, id uuid.UUID, delta int) error
}

// RatingRepository persists ratings.
type RatingRepository interface {
	FindByUserAndManga(ctx context.Context, userID, mangaID uuid.UUID) (*entity.Rating, error)
	ListByManga(ctx context.Context, mangaID uuid.UUID, page PageRequest) ([]*entity.Rating, int64, error)
	Create(ctx context.Context, rating *entity.Rating) error
	Update(ctx context.Context, rating *entity.Rating) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Summary returns the average score and number of ratings of a manga.
	Summary(ctx context.Context, mangaID uuid.UUID) (float64, int, error)
}

// FavoriteRepository persists favorites.
type FavoriteRepository interface {
	Exists(ctx context.Context, userID, mangaID uuid.UUID) (bool, error)
	Create(ctx context.Context, favorite *entity.Favorite) error
	// Delete removes the favorite and reports whether one existed.
	Delete(ctx context.Context, userID, mangaID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page PageRequest) ([]*entity.Favorite, int64, error)
}

// HistoryRepository persists reading progress.
type HistoryRepository interface {
	FindByUserAndManga(ctx context.Context, userID, mangaID uuid.UUID) (*entity.ReadingHistory, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *entity.HistoryStatus, page PageRequest) ([]*entity.ReadingHistory, int64, error)
	Create(ctx context.Context, history *entity.ReadingHistory) error
	Update(ctx context.Context, history *entity.ReadingHistory) error
	// Delete removes the entry and reports whether one existed.
	Delete(ctx context.Context, userID, mangaID uuid.UUID) (bool, error)
}
