// Package storage stores uploaded images with the object storage vendor selected in the configuration.
package storage

import (
	"context"
	"log/slog"

	"mangahub/config"
	"mangahub/internal/domain/service"

	"go.uber.org/fx"
)

// ProviderParams holds dependencies for StorageProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStorageProvider creates the StorageProvider named by storage.provider. The choice is made once;
// there is no fallback to another vendor at runtime.
func NewStorageProvider(params ProviderParams) (service.StorageProvider, error) {
	cfg := params.Config.Storage
	logger := params.Logger.With(slog.String("component", "storage"), slog.String("provider", cfg.Provider))

	switch cfg.Provider {
	case config.StorageCloudinary:
		logger.Info("Using cloudinary storage", slog.String("folder", cfg.Cloudinary.Folder))

		return newCloudinaryProvider(cfg, logger)

	case config.StorageSupabase:
		logger.Info("Using supabase storage", slog.String("bucket", cfg.Supabase.Bucket))

		return newObjectProvider(cfg.Provider, newSupabaseStore(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.Bucket), logger), nil
	}

	bucket, baseURL, err := openBucket(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Using blob storage", slog.String("base_url", baseURL))

	provider := newObjectProvider(cfg.Provider, newBlobStore(bucket, baseURL), logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing storage bucket")

			return provider.Close()
		},
	})

	return provider, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStorageProvider),
)
