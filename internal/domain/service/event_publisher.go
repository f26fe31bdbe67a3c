package service

import (
	"context"
)

// CatalogEventType names a catalog change.
type CatalogEventType string

const (
	EventMangaCreated     CatalogEventType = "manga.created"
	EventChapterPublished CatalogEventType = "chapter.published"
)

// CatalogEvent is emitted after a catalog change has been committed.
type CatalogEvent struct {
	Type       CatalogEventType `json:"type"`
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	MangaID    string           `json:"manga_id"`
	ChapterID  string           `json:"chapter_id,omitempty"`
	Slug       string           `json:"slug"`
	Title      string           `json:"title"`
	OccurredAt int64            `json:"occurred_at"` // Unix seconds
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog event for downstream consumers
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
