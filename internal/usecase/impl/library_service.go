package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// libraryService implements the LibraryUsecase interface.
type libraryService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	historyRepo  repository.HistoryRepository
	logger       *slog.Logger
	now          func() time.Time
}

// LibraryServiceParams holds dependencies for LibraryService, injected by Fx.
type LibraryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	HistoryRepo  repository.HistoryRepository
	Logger       *slog.Logger
}

// NewLibraryService is the constructor for libraryService.
func NewLibraryService(params LibraryServiceParams) usecase.LibraryUsecase {
	return &libraryService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		historyRepo:  params.HistoryRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *libraryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *libraryService) AddFavorite(ctx context.Context, userID, mangaID uuid.UUID) (*entity.Favorite, error) {
	var favorite *entity.Favorite
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.NewFavoriteRepository()
		mangaRepo := repoFactory.NewMangaRepository()

		manga, err := mangaRepo.FindByID(ctx, mangaID)
		if err != nil {
			return notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
		}

		exists, err := favoriteRepo.Exists(ctx, userID, mangaID)
		if err != nil {
			return errors.Wrap(err, "failed to check favorite")
		}
		if exists {
			return domainerrors.ErrAlreadyFavorited
		}

		favorite = &entity.Favorite{UserID: userID, MangaID: mangaID, Manga: manga}
		if err := favoriteRepo.Create(ctx, favorite); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domainerrors.ErrAlreadyFavorited
			}

			return errors.Wrap(err, "failed to create favorite")
		}

		return srv.adjustFavoriteCounters(ctx, repoFactory, userID, mangaID, 1)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute favorite transaction")
	}

	srv.log(ctx).Debug("Favorite added", slog.Any("userID", userID), slog.Any("mangaID", mangaID))

	return favorite, nil
}

func (srv *libraryService) RemoveFavorite(ctx context.Context, userID, mangaID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		removed, err := repoFactory.NewFavoriteRepository().Delete(ctx, userID, mangaID)
		if err != nil {
			return errors.Wrap(err, "failed to delete favorite")
		}
		if !removed {
			return domainerrors.ErrFavoriteNotFound
		}

		return srv.adjustFavoriteCounters(ctx, repoFactory, userID, mangaID, -1)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute favorite removal transaction")
	}

	return nil
}

func (srv *libraryService) adjustFavoriteCounters(ctx context.Context, repoFactory repository.RepositoryFactory, userID, mangaID uuid.UUID, delta int) error {
	if err := repoFactory.NewMangaRepository().AdjustCounter(ctx, mangaID, repository.MangaFavoriteCount, delta); err != nil {
		return errors.Wrap(err, "failed to adjust manga favorite count")
	}

	return errors.Wrap(
		repoFactory.NewUserRepository().AdjustCounter(ctx, userID, repository.UserFavoritesCount, delta),
		"failed to adjust user favorite count",
	)
}

func (srv *libraryService) ListFavorites(ctx context.Context, userID uuid.UUID, page usecase.PageQuery) (*usecase.Paginated[*entity.Favorite], error) {
	req := page.Request()

	favorites, total, err := srv.favoriteRepo.ListByUser(ctx, userID, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return usecase.NewPaginated(favorites, total, req), nil
}

// RecordProgress upserts the reader's position in a manga.
// Reaching the last chapter of a completed manga completes the entry unless a status is given.
func (srv *libraryService) RecordProgress(ctx context.Context, userID uuid.UUID, input *usecase.RecordProgressInput) (*entity.ReadingHistory, error) {
	var history *entity.ReadingHistory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		historyRepo := repoFactory.NewHistoryRepository()
		chapterRepo := repoFactory.NewChapterRepository()

		manga, err := repoFactory.NewMangaRepository().FindByID(ctx, input.MangaID)
		if err != nil {
			return notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
		}

		chapter, err := chapterRepo.FindByID(ctx, input.ChapterID)
		if err != nil {
			return notFound(err, domainerrors.ErrChapterNotFound, "failed to find chapter")
		}
		if chapter.MangaID != manga.ID {
			return domainerrors.ErrChapterMangaMismatch
		}

		if input.PageID != nil {
			page, err := repoFactory.NewPageRepository().FindByID(ctx, *input.PageID)
			if err != nil {
				return notFound(err, domainerrors.ErrPageNotFound, "failed to find page")
			}
			if page.ChapterID != chapter.ID {
				return domainerrors.ErrPageChapterMismatch
			}
		}

		history, err = historyRepo.FindByUserAndManga(ctx, userID, manga.ID)
		isNew := errors.Is(err, repository.ErrNotFound)
		if err != nil && !isNew {
			return errors.Wrap(err, "failed to find reading history")
		}
		if isNew {
			history = &entity.ReadingHistory{UserID: userID, MangaID: manga.ID}
		}

		if history.LastChapterReadID == nil || *history.LastChapterReadID != chapter.ID {
			history.ChaptersRead++
		}
		if input.PageID != nil {
			history.PagesRead++
		}
		history.LastChapterReadID = &chapter.ID
		history.LastPageReadID = input.PageID
		history.LastReadAt = srv.now()

		status, err := progressStatus(ctx, chapterRepo, manga, chapter, input.Status)
		if err != nil {
			return err
		}
		history.Status = status

		if isNew {
			return errors.Wrap(historyRepo.Create(ctx, history), "failed to create reading history")
		}

		return errors.Wrap(historyRepo.Update(ctx, history), "failed to update reading history")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute reading progress transaction")
	}

	return history, nil
}

func progressStatus(
	ctx context.Context,
	chapterRepo repository.ChapterRepository,
	manga *entity.Manga,
	chapter *entity.Chapter,
	explicit *entity.HistoryStatus,
) (entity.HistoryStatus, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if manga.Status != entity.MangaStatusCompleted {
		return entity.HistoryReading, nil
	}

	latest, err := chapterRepo.FindLatest(ctx, manga.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.HistoryReading, nil
		}

		return "", errors.Wrap(err, "failed to find latest chapter")
	}
	if latest.ID == chapter.ID {
		return entity.HistoryCompleted, nil
	}

	return entity.HistoryReading, nil
}

func (srv *libraryService) UpdateHistoryStatus(ctx context.Context, userID, mangaID uuid.UUID, input *usecase.UpdateHistoryStatusInput) (*entity.ReadingHistory, error) {
	history, err := srv.historyRepo.FindByUserAndManga(ctx, userID, mangaID)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrHistoryNotFound, "failed to find reading history")
	}

	history.Status = input.Status
	if err := srv.historyRepo.Update(ctx, history); err != nil {
		return nil, notFound(err, domainerrors.ErrHistoryNotFound, "failed to update reading history")
	}

	return history, nil
}

func (srv *libraryService) ListHistory(ctx context.Context, userID uuid.UUID, query *usecase.ListHistoryQuery) (*usecase.Paginated[*entity.ReadingHistory], error) {
	req := query.Request()

	entries, total, err := srv.historyRepo.ListByUser(ctx, userID, query.Status, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reading history")
	}

	return usecase.NewPaginated(entries, total, req), nil
}

func (srv *libraryService) DeleteHistory(ctx context.Context, userID, mangaID uuid.UUID) error {
	removed, err := srv.historyRepo.Delete(ctx, userID, mangaID)
	if err != nil {
		return errors.Wrap(err, "failed to delete reading history")
	}
	if !removed {
		return domainerrors.ErrHistoryNotFound
	}

	return nil
}
