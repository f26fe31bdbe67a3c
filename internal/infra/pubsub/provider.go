// Package pubsub publishes catalog events to Google Pub/Sub or, in development, to a local HTTP endpoint.
package pubsub

import (
	"context"
	"log/slog"

	"mangahub/config"
	"mangahub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCatalogEvent(_ context.Context, event *service.CatalogEvent) error {
	p.logger.Debug("event publishing disabled, skipping",
		slog.String("type", string(event.Type)),
		slog.String("manga_id", event.MangaID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// NewNoopPublisher returns a publisher that only logs at debug level.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "pubsub"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return NewNoopPublisher(logger), nil
	}

	var publisher service.EventPublisher

	switch cfg.Provider {
	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher", slog.String("endpoint", cfg.LocalEndpoint))

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}

		// The client outlives this constructor, so it must not inherit a start-up deadline.
		google, err := NewGooglePubSubPublisher(context.Background(), cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
		publisher = google

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
