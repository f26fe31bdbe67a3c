package main

import (
	"context"
	"log/slog"
	"os"

	"mangahub/config"
	"mangahub/internal/delivery"
	"mangahub/internal/delivery/http"
	"mangahub/internal/delivery/http/middleware"
	"mangahub/internal/delivery/http/router/handler"
	"mangahub/internal/infra/auth"
	"mangahub/internal/infra/cache"
	logs "mangahub/internal/infra/log"
	"mangahub/internal/infra/persistence/postgres"
	"mangahub/internal/infra/pubsub"
	"mangahub/internal/infra/qrcode"
	"mangahub/internal/infra/storage"
	"mangahub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		storage.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewLocationRepository,
			postgres.NewTagRepository,
			postgres.NewMangaRepository,
			postgres.NewChapterRepository,
			postgres.NewPageRepository,
			postgres.NewCommentRepository,
			postgres.NewRatingRepository,
			postgres.NewFavoriteRepository,
			postgres.NewHistoryRepository,
		),
		// Reference data never changes at runtime; serve it from memory.
		fx.Decorate(cache.NewCachedLocationRepository),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewLocationService,
			impl.NewTagService,
			impl.NewMangaService,
			impl.NewChapterService,
			impl.NewCommentService,
			impl.NewRatingService,
			impl.NewLibraryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRateLimitMiddleware,
			middleware.NewUploadMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSystemHandler,
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewLocationHandler,
			handler.NewTagHandler,
			handler.NewMangaHandler,
			handler.NewChapterHandler,
			handler.NewCommentHandler,
			handler.NewRatingHandler,
			handler.NewLibraryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
