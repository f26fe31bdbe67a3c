package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mangahub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishCatalogEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.CatalogEvent{
		Type:      service.EventChapterPublished,
		RequestID: "req-1",
		MangaID:   "manga-1",
		ChapterID: "chapter-1",
		Slug:      "monster",
		Title:     "Monster",
	}

	require.NoError(t, publisher.PublishCatalogEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "chapter.published", received.Message.Attributes["event_type"])
	assert.Equal(t, "chapter-1", received.Message.Attributes["chapter_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.CatalogEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishCatalogEvent(context.Background(), &service.CatalogEvent{Type: service.EventMangaCreated})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
