package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a post on a manga or a chapter. Replies form a tree stored as a closure table.
type Comment struct {
	ID              uuid.UUID  `json:"id"`
	Content         string     `json:"content"`
	IsActive        bool       `json:"isActive"`
	IsEdited        bool       `json:"isEdited"`
	IsPinned        bool       `json:"isPinned"`
	IsSpoiler       bool       `json:"isSpoiler"`
	LikeCount       int        `json:"likeCount"`
	DislikeCount    int        `json:"dislikeCount"`
	ReplyCount      int        `json:"replyCount"`
	MangaID         *uuid.UUID `json:"mangaId"`
	ChapterID       *uuid.UUID `json:"chapterId"`
	UserID          uuid.UUID  `json:"userId"`
	ParentCommentID *uuid.UUID `json:"parentCommentId"`
	Depth           int        `json:"depth"` // Distance from the thread root; only set on thread reads.
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// HasSingleContext reports whether exactly one of manga or chapter is referenced.
func (c *Comment) HasSingleContext() bool {
	return (c.MangaID == nil) != (c.ChapterID == nil)
}

// SameContext reports whether two comments are attached to the same manga or chapter.
func (c *Comment) SameContext(other *Comment) bool {
	return equalIDs(c.MangaID, other.MangaID) && equalIDs(c.ChapterID, other.ChapterID)
}

func equalIDs(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

// Rating is a user's score for a manga, one per (user, manga).
type Rating struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	MangaID   uuid.UUID `json:"mangaId"`
	Score     float64   `json:"score"` // 0 to 10 with two decimals.
	Review    *string   `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Favorite marks a manga in a user's library.
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	MangaID   uuid.UUID `json:"mangaId"`
	Manga     *Manga    `json:"manga,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryStatus is the reader's progress state for a manga.
type HistoryStatus string

const (
	HistoryReading    HistoryStatus = "reading"
	HistoryCompleted  HistoryStatus = "completed"
	HistoryOnHold     HistoryStatus = "on_hold"
	HistoryDropped    HistoryStatus = "dropped"
	HistoryPlanToRead HistoryStatus = "plan_to_read"
)

// IsValid checks if the status is a known value.
func (s HistoryStatus) IsValid() bool {
	switch s {
	case HistoryReading, HistoryCompleted, HistoryOnHold, HistoryDropped, HistoryPlanToRead:
		return true
	default:
		return false
	}
}

// ReadingHistory tracks a user's progress through one manga.
type ReadingHistory struct {
	ID                uuid.UUID     `json:"id"`
	UserID            uuid.UUID     `json:"userId"`
	MangaID           uuid.UUID     `json:"mangaId"`
	Manga             *Manga        `json:"manga,omitempty"`
	LastChapterReadID *uuid.UUID    `json:"lastChapterReadId"`
	LastPageReadID    *uuid.UUID    `json:"lastPageReadId"`
	ChaptersRead      int           `json:"chaptersRead"`
	PagesRead         int           `json:"pagesRead"`
	LastReadAt        time.Time     `json:"lastReadAt"`
	Status            HistoryStatus `json:"status"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}
