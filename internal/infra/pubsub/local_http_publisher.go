package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"mangahub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/catalog-events"

// localHTTPPublisher POSTs events in the Pub/Sub push format so push subscribers can be exercised locally.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Pub/Sub uses when pushing to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher that pushes to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// PublishCatalogEvent wraps the event in a push envelope and POSTs it.
func (p *localHTTPPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = eventAttributes(event)
	push.Message.MessageID = uuid.NewString()
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned status %d", resp.StatusCode)
	}

	p.logger.Debug("catalog event pushed",
		slog.String("type", string(event.Type)),
		slog.String("manga_id", event.MangaID),
	)

	return nil
}

// Close is a no-op; the HTTP client holds no resources that need releasing.
func (p *localHTTPPublisher) Close() error {
	return nil
}
