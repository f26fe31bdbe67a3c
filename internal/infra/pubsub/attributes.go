package pubsub

import "mangahub/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.CatalogEvent) map[string]string {
	attributes := map[string]string{
		"event_type": string(event.Type),
		"manga_id":   event.MangaID,
	}
	if event.ChapterID != "" {
		attributes["chapter_id"] = event.ChapterID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
