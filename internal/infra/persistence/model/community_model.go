package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentModel mirrors the 'comments' table. Exactly one of MangaID and ChapterID is set.
type CommentModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Content         string     `gorm:"type:text;not null"`
	IsActive        bool       `gorm:"not null"`
	IsEdited        bool       `gorm:"not null"`
	IsPinned        bool       `gorm:"not null"`
	IsSpoiler       bool       `gorm:"not null"`
	LikeCount       int        `gorm:"not null;default:0"`
	DislikeCount    int        `gorm:"not null;default:0"`
	ReplyCount      int        `gorm:"not null;default:0"`
	MangaID         *uuid.UUID `gorm:"type:uuid;index"`
	ChapterID       *uuid.UUID `gorm:"type:uuid;index"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	User            UserModel  `gorm:"constraint:OnDelete:CASCADE"`
	ParentCommentID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *CommentModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// CommentClosureModel mirrors 'comments_closure': one row per (ancestor, descendant) pair,
// including the depth-0 self row of every comment.
type CommentClosureModel struct {
	AncestorID   uuid.UUID    `gorm:"column:id_ancestor;type:uuid;primaryKey"`
	DescendantID uuid.UUID    `gorm:"column:id_descendant;type:uuid;primaryKey;index"`
	Depth        int          `gorm:"not null"`
	Ancestor     CommentModel `gorm:"foreignKey:AncestorID;constraint:OnDelete:CASCADE"`
	Descendant   CommentModel `gorm:"foreignKey:DescendantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CommentClosureModel) TableName() string {
	return "comments_closure"
}

// RatingModel mirrors the 'ratings' table. (user_id, manga_id) is unique.
type RatingModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Score     float64    `gorm:"type:numeric(4,2);not null"`
	Review    *string    `gorm:"type:text"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_manga"`
	User      UserModel  `gorm:"constraint:OnDelete:CASCADE"`
	MangaID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_manga;index"`
	Manga     MangaModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *RatingModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// FavoriteModel mirrors the 'favorites' table. (user_id, manga_id) is unique.
type FavoriteModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_manga"`
	User      UserModel  `gorm:"constraint:OnDelete:CASCADE"`
	MangaID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_manga"`
	Manga     MangaModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *FavoriteModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// ReadingHistoryModel mirrors the 'reading_history' table. (user_id, manga_id) is unique.
type ReadingHistoryModel struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_history_user_manga"`
	User              UserModel     `gorm:"constraint:OnDelete:CASCADE"`
	MangaID           uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_history_user_manga"`
	Manga             MangaModel    `gorm:"constraint:OnDelete:CASCADE"`
	LastChapterReadID *uuid.UUID    `gorm:"type:uuid"`
	LastChapterRead   *ChapterModel `gorm:"foreignKey:LastChapterReadID;constraint:OnDelete:SET NULL"`
	LastPageReadID    *uuid.UUID    `gorm:"type:uuid"`
	LastPageRead      *PageModel    `gorm:"foreignKey:LastPageReadID;constraint:OnDelete:SET NULL"`
	ChaptersRead      int           `gorm:"not null;default:0"`
	PagesRead         int           `gorm:"not null;default:0"`
	LastReadAt        time.Time     `gorm:"not null;index"`
	Status            string        `gorm:"type:varchar(20);not null;default:reading"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReadingHistoryModel) TableName() string {
	return "reading_history"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *ReadingHistoryModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}
