package repository

import (
	"context"

	"mangahub/internal/domain/entity"

	"github.com/google/uuid"
)

// MangaCounter names a denormalized counter column on mangas.
type MangaCounter string

const (
	MangaViewCount     MangaCounter = "view_count"
	MangaFavoriteCount MangaCounter = "favorite_count"
	MangaCommentCount  MangaCounter = "comment_count"
	MangaChapterCount  MangaCounter = "chapter_count"
)

// MangaSortField is a column mangas may be listed by.
type MangaSortField string

const (
	MangaSortCreatedAt     MangaSortField = "createdAt"
	MangaSortTitle         MangaSortField = "title"
	MangaSortAverageRating MangaSortField = "averageRating"
	MangaSortViewCount     MangaSortField = "viewCount"
	MangaSortFavoriteCount MangaSortField = "favoriteCount"
)

// MangaListFilter narrows a manga listing.
type MangaListFilter struct {
	PageRequest
	Search       string
	Status       *entity.MangaStatus
	TagSlug      string
	Sort         MangaSortField
	Order        SortOrder
	IncludeAdult bool
}

// MangaRepository persists catalog titles.
type MangaRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Manga, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Manga, error)
	// SlugExists also considers soft-deleted rows, since the unique index does.
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter MangaListFilter) ([]*entity.Manga, int64, error)
	Create(ctx context.Context, manga *entity.Manga) error
	Update(ctx context.Context, manga *entity.Manga) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// ReplaceTags sets the manga's tag set to tagIDs.
	ReplaceTags(ctx context.Context, mangaID uuid.UUID, tagIDs []uuid.UUID) error
	AdjustCounter(ctx context.Context, id uuid.UUID, counter MangaCounter, delta int) error
	SetRatingSummary(ctx context.Context, id uuid.UUID, average float64, count int) error
}

// ChapterCounter names a denormalized counter column on chapters.
type ChapterCounter string

const (
	ChapterViewCount    ChapterCounter = "view_count"
	ChapterPageCount    ChapterCounter = "page_count"
	ChapterCommentCount ChapterCounter = "comment_count"
)

// ChapterRepository persists chapters.
type ChapterRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Chapter, error)
	FindByMangaAndNumber(ctx context.Context, mangaID uuid.UUID, number float64) (*entity.Chapter, error)
	// FindLatest returns the highest-numbered chapter of a manga.
	FindLatest(ctx context.Context, mangaID uuid.UUID) (*entity.Chapter, error)
	ListByManga(ctx context.Context, mangaID uuid.UUID, publishedOnly bool) ([]*entity.Chapter, error)
	Create(ctx context.Context, chapter *entity.Chapter) error
	Update(ctx context.Context, chapter *entity.Chapter) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	AdjustCounter(ctx context.Context, id uuid.UUID, counter ChapterCounter, delta int) error
}

// PageRepository persists chapter pages.
type PageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Page, error)
	ListByChapter(ctx context.Context, chapterID uuid.UUID) ([]*entity.Page, error)
	// MaxNumber returns the highest page number in a chapter, or 0 for an empty chapter.
	MaxNumber(ctx context.Context, chapterID uuid.UUID) (int, error)
	CreateMany(ctx context.Context, pages []*entity.Page) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// TagListFilter narrows a tag listing.
type TagListFilter struct {
	Type   *entity.TagType
	Search string
}

// TagRepository persists tags.
type TagRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Tag, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Tag, error)
	// ExistsByNameOrSlug reports a clash with another tag, ignoring excludeID when set.
	ExistsByNameOrSlug(ctx context.Context, name, slug string, excludeID *uuid.UUID) (bool, error)
	List(ctx context.Context, filter TagListFilter) ([]*entity.Tag, error)
	Create(ctx context.Context, tag *entity.Tag) error
	Update(ctx context.Context, tag *entity.Tag) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	AdjustUsage(ctx context.Context, ids []uuid.UUID, delta int) error
}
