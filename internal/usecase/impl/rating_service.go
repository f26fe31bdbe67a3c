package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	mangaRepo  repository.MangaRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RatingRepo repository.RatingRepository
	MangaRepo  repository.MangaRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		mangaRepo:  params.MangaRepo,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// Rate creates or replaces the reader's rating and refreshes the manga's aggregate.
func (srv *ratingService) Rate(ctx context.Context, userID, mangaID uuid.UUID, input *usecase.RateInput) (*entity.Rating, error) {
	var rating *entity.Rating
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratingRepo := repoFactory.NewRatingRepository()

		if _, err := repoFactory.NewMangaRepository().FindByID(ctx, mangaID); err != nil {
			return notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
		}

		var err error
		rating, err = ratingRepo.FindByUserAndManga(ctx, userID, mangaID)
		switch {
		case err == nil:
			rating.Score = input.Score
			rating.Review = input.Review
			if err := ratingRepo.Update(ctx, rating); err != nil {
				return errors.Wrap(err, "failed to update rating")
			}
		case errors.Is(err, repository.ErrNotFound):
			rating = &entity.Rating{UserID: userID, MangaID: mangaID, Score: input.Score, Review: input.Review}
			if err := ratingRepo.Create(ctx, rating); err != nil {
				return errors.Wrap(err, "failed to create rating")
			}
			if err := repoFactory.NewUserRepository().AdjustCounter(ctx, userID, repository.UserRatingsCount, 1); err != nil {
				return errors.Wrap(err, "failed to count user rating")
			}
		default:
			return errors.Wrap(err, "failed to find rating")
		}

		_, err = refreshRatingSummary(ctx, repoFactory, mangaID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute rating transaction")
	}

	srv.log(ctx).Debug("Manga rated", slog.Any("mangaID", mangaID), slog.Float64("score", input.Score))

	return rating, nil
}

// Delete removes the reader's rating and returns the refreshed aggregate.
func (srv *ratingService) Delete(ctx context.Context, userID, mangaID uuid.UUID) (*usecase.RatingSummary, error) {
	var summary *usecase.RatingSummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratingRepo := repoFactory.NewRatingRepository()

		rating, err := ratingRepo.FindByUserAndManga(ctx, userID, mangaID)
		if err != nil {
			return notFound(err, domainerrors.ErrRatingNotFound, "failed to find rating")
		}

		if err := ratingRepo.Delete(ctx, rating.ID); err != nil {
			return errors.Wrap(err, "failed to delete rating")
		}
		if err := repoFactory.NewUserRepository().AdjustCounter(ctx, userID, repository.UserRatingsCount, -1); err != nil {
			return errors.Wrap(err, "failed to release user rating count")
		}

		summary, err = refreshRatingSummary(ctx, repoFactory, mangaID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute rating deletion transaction")
	}

	return summary, nil
}

func (srv *ratingService) GetMine(ctx context.Context, userID, mangaID uuid.UUID) (*entity.Rating, error) {
	rating, err := srv.ratingRepo.FindByUserAndManga(ctx, userID, mangaID)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrRatingNotFound, "failed to find rating")
	}

	return rating, nil
}

func (srv *ratingService) ListByManga(ctx context.Context, mangaID uuid.UUID, page usecase.PageQuery) (*usecase.Paginated[*entity.Rating], error) {
	if _, err := srv.mangaRepo.FindByID(ctx, mangaID); err != nil {
		return nil, notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
	}

	req := page.Request()
	ratings, total, err := srv.ratingRepo.ListByManga(ctx, mangaID, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return usecase.NewPaginated(ratings, total, req), nil
}

// refreshRatingSummary recomputes the aggregate from the rating rows and stores it on the manga.
func refreshRatingSummary(ctx context.Context, repoFactory repository.RepositoryFactory, mangaID uuid.UUID) (*usecase.RatingSummary, error) {
	average, count, err := repoFactory.NewRatingRepository().Summary(ctx, mangaID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize ratings")
	}
	average = math.Round(average*100) / 100

	if err := repoFactory.NewMangaRepository().SetRatingSummary(ctx, mangaID, average, count); err != nil {
		return nil, errors.Wrap(err, "failed to store rating summary")
	}

	return &usecase.RatingSummary{AverageRating: average, RatingCount: count}, nil
}
