package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"mangahub/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and verifies that topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	publisher := client.Publisher(topicID)
	// Events of one manga are delivered in publish order.
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishCatalogEvent publishes the event and waits for the server acknowledgement.
func (p *googlePubSubPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.MangaID,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		p.publisher.ResumePublish(event.MangaID)

		return errors.Wrapf(err, "failed to publish %s", event.Type)
	}

	p.logger.Debug("catalog event published",
		slog.String("type", string(event.Type)),
		slog.String("manga_id", event.MangaID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
