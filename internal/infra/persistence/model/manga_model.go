package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MangaModel mirrors the 'mangas' table.
type MangaModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title             string    `gorm:"type:varchar(255);not null;index"`
	Slug              string    `gorm:"type:varchar(300);not null;uniqueIndex"`
	Description       *string   `gorm:"type:text"`
	CoverURL          *string   `gorm:"column:cover_url;type:varchar(500)"`
	BannerURL         *string   `gorm:"column:banner_url;type:varchar(500)"`
	IsMature          bool      `gorm:"not null"`
	Status            string    `gorm:"type:varchar(20);not null;default:ACTIVED;index"`
	PublicationDate   *time.Time
	CompletionDate    *time.Time
	AverageRating     float64    `gorm:"type:numeric(4,2);not null;default:0"`
	RatingCount       int        `gorm:"not null;default:0"`
	ViewCount         int        `gorm:"not null;default:0"`
	FavoriteCount     int        `gorm:"not null;default:0"`
	CommentCount      int        `gorm:"not null;default:0"`
	ChapterCount      int        `gorm:"not null;default:0"`
	Author            *string    `gorm:"type:varchar(255)"`
	Artist            *string    `gorm:"type:varchar(255)"`
	Publisher         *string    `gorm:"type:varchar(255)"`
	AlternativeTitles []string   `gorm:"type:text;serializer:json"`
	OriginalLanguage  string     `gorm:"type:varchar(10);not null;default:ja"`
	Tags              []TagModel `gorm:"many2many:manga_tags;joinForeignKey:MangaID;joinReferences:TagID"`
	CreatedByID       *uuid.UUID `gorm:"type:uuid"`
	UpdatedByID       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MangaModel) TableName() string {
	return "mangas"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *MangaModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// ChapterModel mirrors the 'chapters' table. (manga_id, number) is unique.
type ChapterModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MangaID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_chapters_manga_number"`
	Manga        MangaModel `gorm:"constraint:OnDelete:CASCADE"`
	Number       float64    `gorm:"type:double precision;not null;uniqueIndex:idx_chapters_manga_number"`
	Title        *string    `gorm:"type:varchar(255)"`
	Slug         string     `gorm:"type:varchar(350);not null;uniqueIndex"`
	Description  *string    `gorm:"type:text"`
	PublishedAt  *time.Time
	ViewCount    int        `gorm:"not null;default:0"`
	PageCount    int        `gorm:"not null;default:0"`
	CommentCount int        `gorm:"not null;default:0"`
	IsActive     bool       `gorm:"not null"`
	CreatedByID  *uuid.UUID `gorm:"type:uuid"`
	UpdatedByID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ChapterModel) TableName() string {
	return "chapters"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *ChapterModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// PageModel mirrors the 'pages' table.
type PageModel struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ChapterID    uuid.UUID    `gorm:"type:uuid;not null;index:idx_pages_chapter_number"`
	Chapter      ChapterModel `gorm:"constraint:OnDelete:CASCADE"`
	Number       int          `gorm:"not null;index:idx_pages_chapter_number"`
	ImageURL     string       `gorm:"column:image_url;type:varchar(500);not null"`
	ThumbnailURL *string      `gorm:"column:thumbnail_url;type:varchar(500)"`
	StorageKey   string       `gorm:"type:varchar(500)"`
	Width        int
	Height       int
	FileSize     int64
	Format       string     `gorm:"type:varchar(10)"`
	Hash         string     `gorm:"type:varchar(64);index"`
	IsActive     bool       `gorm:"not null"`
	IsProcessed  bool       `gorm:"not null"`
	CreatedByID  *uuid.UUID `gorm:"type:uuid"`
	UpdatedByID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PageModel) TableName() string {
	return "pages"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *PageModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// TagModel mirrors the 'tags' table.
type TagModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug        string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description *string    `gorm:"type:text"`
	Type        string     `gorm:"type:varchar(20);not null;default:genre;index"`
	Color       *string    `gorm:"type:varchar(7)"`
	IsActive    bool       `gorm:"not null"`
	UsageCount  int        `gorm:"not null;default:0"`
	CreatedByID *uuid.UUID `gorm:"type:uuid"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *TagModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}
