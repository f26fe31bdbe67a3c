package usecase

import (
	"context"
	"time"

	"mangahub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Tags ---

// ListTagsQuery filters the tag catalog.
type ListTagsQuery struct {
	Type   *entity.TagType `validate:"omitempty,oneof=genre theme demographic format content"`
	Search string          `validate:"omitempty,max=100"`
}

// TagInput creates or replaces a tag.
type TagInput struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	Type        *entity.TagType `json:"type,omitempty" validate:"omitempty,oneof=genre theme demographic format content"`
	Color       *string         `json:"color,omitempty" validate:"omitempty,hexcolor,len=7"`
	IsActive    *bool           `json:"isActive,omitempty"`
}

// TagUsecase manages the tag catalog.
type TagUsecase interface {
	List(ctx context.Context, query *ListTagsQuery) ([]*entity.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tag, error)
	Create(ctx context.Context, actorID uuid.UUID, input *TagInput) (*entity.Tag, error)
	Update(ctx context.Context, id uuid.UUID, input *TagInput) (*entity.Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// --- Mangas ---

// ListMangasQuery narrows and orders the manga catalog.
type ListMangasQuery struct {
	PageQuery
	Search  string              `validate:"omitempty,max=255"`
	Status  *entity.MangaStatus `validate:"omitempty,oneof=ACTIVED INACTIVE ONGOING COMPLETED HIATUS CANCELLED"`
	TagSlug string              `validate:"omitempty,max=100"`
	Sort    string              `validate:"omitempty,oneof=createdAt title averageRating viewCount favoriteCount"`
	Order   string              `validate:"omitempty,oneof=asc desc"`
}

// MangaInput creates or replaces a manga. TagIDs, when present, replaces the tag set.
type MangaInput struct {
	Title             string              `json:"title" validate:"required,min=1,max=255"`
	Description       *string             `json:"description,omitempty" validate:"omitempty,max=10000"`
	IsMature          bool                `json:"isMature"`
	Status            *entity.MangaStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVED INACTIVE ONGOING COMPLETED HIATUS CANCELLED"`
	PublicationDate   *string             `json:"publicationDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CompletionDate    *string             `json:"completionDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Author            *string             `json:"author,omitempty" validate:"omitempty,max=255"`
	Artist            *string             `json:"artist,omitempty" validate:"omitempty,max=255"`
	Publisher         *string             `json:"publisher,omitempty" validate:"omitempty,max=255"`
	AlternativeTitles []string            `json:"alternativeTitles,omitempty" validate:"omitempty,dive,min=1,max=255"`
	OriginalLanguage  *string             `json:"originalLanguage,omitempty" validate:"omitempty,min=2,max=10"`
	TagIDs            []uuid.UUID         `json:"tagIds,omitempty"`
}

// SetTagsInput replaces the tag set of a manga.
type SetTagsInput struct {
	TagIDs []uuid.UUID `json:"tagIds" validate:"max=50"`
}

// MangaUsecase manages catalog titles. A nil viewer is an anonymous reader.
type MangaUsecase interface {
	List(ctx context.Context, viewer *entity.User, query *ListMangasQuery) (*Paginated[*entity.Manga], error)
	// Get resolves a manga by id or slug and counts the view.
	Get(ctx context.Context, viewer *entity.User, idOrSlug string) (*entity.Manga, error)
	Create(ctx context.Context, actorID uuid.UUID, input *MangaInput) (*entity.Manga, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *MangaInput) (*entity.Manga, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetTags(ctx context.Context, id uuid.UUID, input *SetTagsInput) (*entity.Manga, error)
	UploadCover(ctx context.Context, id uuid.UUID, file *FileUpload) (*entity.Manga, error)
	// ShareQR renders a PNG QR code linking to the manga page.
	ShareQR(ctx context.Context, slug string) ([]byte, error)
}

// --- Chapters & pages ---

// ChapterInput creates or replaces a chapter.
type ChapterInput struct {
	Number      float64 `json:"number" validate:"min=0"`
	Title       *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ChapterDetail is a chapter together with its ordered pages.
type ChapterDetail struct {
	*entity.Chapter
	Pages []*entity.Page `json:"pages"`
}

// ChapterUsecase manages chapters and their pages.
type ChapterUsecase interface {
	// ListByManga lists chapters ordered by number. Unpublished chapters are only listed for staff.
	ListByManga(ctx context.Context, viewer *entity.User, mangaID uuid.UUID) ([]*entity.Chapter, error)
	// Read returns the chapter with its pages and counts the view.
	Read(ctx context.Context, viewer *entity.User, id uuid.UUID) (*ChapterDetail, error)
	Create(ctx context.Context, actorID, mangaID uuid.UUID, input *ChapterInput) (*entity.Chapter, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input *ChapterInput) (*entity.Chapter, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Publish(ctx context.Context, id uuid.UUID, at *time.Time) (*entity.Chapter, error)

	// ListPages applies the same draft and mature rules as Read without counting a view.
	ListPages(ctx context.Context, viewer *entity.User, chapterID uuid.UUID) ([]*entity.Page, error)
	UploadPages(ctx context.Context, actorID, chapterID uuid.UUID, files []*FileUpload) ([]*entity.Page, error)
	DeletePage(ctx context.Context, pageID uuid.UUID) error
}
