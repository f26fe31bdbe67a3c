package entity

import (
	"time"

	"github.com/google/uuid"
)

// MangaStatus is the publication state of a title.
type MangaStatus string

const (
	MangaStatusActived   MangaStatus = "ACTIVED"
	MangaStatusInactive  MangaStatus = "INACTIVE"
	MangaStatusOngoing   MangaStatus = "ONGOING"
	MangaStatusCompleted MangaStatus = "COMPLETED"
	MangaStatusHiatus    MangaStatus = "HIATUS"
	MangaStatusCancelled MangaStatus = "CANCELLED"
)

// IsValid checks if the status is a known value.
func (s MangaStatus) IsValid() bool {
	switch s {
	case MangaStatusActived, MangaStatusInactive, MangaStatusOngoing,
		MangaStatusCompleted, MangaStatusHiatus, MangaStatusCancelled:
		return true
	default:
		return false
	}
}

// Manga is a title in the catalog. Counters are denormalized and maintained by the services.
type Manga struct {
	ID                uuid.UUID   `json:"id"`
	Title             string      `json:"title"`
	Slug              string      `json:"slug"`
	Description       *string     `json:"description"`
	CoverURL          *string     `json:"coverUrl"`
	BannerURL         *string     `json:"bannerUrl"`
	IsMature          bool        `json:"isMature"`
	Status            MangaStatus `json:"status"`
	PublicationDate   *time.Time  `json:"publicationDate"`
	CompletionDate    *time.Time  `json:"completionDate"`
	AverageRating     float64     `json:"averageRating"`
	RatingCount       int         `json:"ratingCount"`
	ViewCount         int         `json:"viewCount"`
	FavoriteCount     int         `json:"favoriteCount"`
	CommentCount      int         `json:"commentCount"`
	ChapterCount      int         `json:"chapterCount"`
	Author            *string     `json:"author"`
	Artist            *string     `json:"artist"`
	Publisher         *string     `json:"publisher"`
	AlternativeTitles []string    `json:"alternativeTitles"`
	OriginalLanguage  string      `json:"originalLanguage"`
	Tags              []Tag       `json:"tags"`
	CreatedByID       *uuid.UUID  `json:"createdById"`
	UpdatedByID       *uuid.UUID  `json:"updatedById"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// Chapter is an installment of a Manga. Numbers are fractional to allow extras such as 10.5.
type Chapter struct {
	ID           uuid.UUID  `json:"id"`
	MangaID      uuid.UUID  `json:"mangaId"`
	Number       float64    `json:"number"`
	Title        *string    `json:"title"`
	Slug         string     `json:"slug"`
	Description  *string    `json:"description"`
	PublishedAt  *time.Time `json:"publishedAt"`
	ViewCount    int        `json:"viewCount"`
	PageCount    int        `json:"pageCount"`
	CommentCount int        `json:"commentCount"`
	IsActive     bool       `json:"isActive"`
	CreatedByID  *uuid.UUID `json:"createdById"`
	UpdatedByID  *uuid.UUID `json:"updatedById"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// IsPublished reports whether the chapter has been released to readers.
func (c *Chapter) IsPublished() bool {
	return c.PublishedAt != nil
}

// Page is a single image of a Chapter.
type Page struct {
	ID           uuid.UUID  `json:"id"`
	ChapterID    uuid.UUID  `json:"chapterId"`
	Number       int        `json:"number"`
	ImageURL     string     `json:"imageUrl"`
	ThumbnailURL *string    `json:"thumbnailUrl"`
	StorageKey   string     `json:"-"` // Provider public id used for deletion.
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	FileSize     int64      `json:"fileSize"`
	Format       string     `json:"format"`
	Hash         string     `json:"hash"` // Hex sha256 of the stored bytes.
	IsActive     bool       `json:"isActive"`
	IsProcessed  bool       `json:"isProcessed"`
	CreatedByID  *uuid.UUID `json:"createdById"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// TagType classifies a Tag.
type TagType string

const (
	TagTypeGenre       TagType = "genre"
	TagTypeTheme       TagType = "theme"
	TagTypeDemographic TagType = "demographic"
	TagTypeFormat      TagType = "format"
	TagTypeContent     TagType = "content"
)

// IsValid checks if the tag type is a known value.
func (t TagType) IsValid() bool {
	switch t {
	case TagTypeGenre, TagTypeTheme, TagTypeDemographic, TagTypeFormat, TagTypeContent:
		return true
	default:
		return false
	}
}

// Tag labels mangas by genre, theme and so on.
type Tag struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description,omitempty"`
	Type        TagType    `json:"type"`
	Color       *string    `json:"color,omitempty"` // #RRGGBB
	IsActive    bool       `json:"isActive"`
	UsageCount  int        `json:"usageCount"`
	CreatedByID *uuid.UUID `json:"createdById,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
