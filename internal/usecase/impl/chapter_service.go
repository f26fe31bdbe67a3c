package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/domain/service"
	"mangahub/internal/usecase"
	"mangahub/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chapterService implements the ChapterUsecase interface.
type chapterService struct {
	txManager   repository.TransactionManager
	mangaRepo   repository.MangaRepository
	chapterRepo repository.ChapterRepository
	pageRepo    repository.PageRepository
	storage     service.StorageProvider
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// ChapterServiceParams holds dependencies for ChapterService, injected by Fx.
type ChapterServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	MangaRepo   repository.MangaRepository
	ChapterRepo repository.ChapterRepository
	PageRepo    repository.PageRepository
	Storage     service.StorageProvider
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewChapterService is the constructor for chapterService.
func NewChapterService(params ChapterServiceParams) usecase.ChapterUsecase {
	return &chapterService{
		txManager:   params.TxManager,
		mangaRepo:   params.MangaRepo,
		chapterRepo: params.ChapterRepo,
		pageRepo:    params.PageRepo,
		storage:     params.Storage,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *chapterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *chapterService) ListByManga(ctx context.Context, viewer *entity.User, mangaID uuid.UUID) ([]*entity.Chapter, error) {
	manga, err := srv.findManga(ctx, mangaID)
	if err != nil {
		return nil, err
	}
	if err := checkMatureAccess(manga, viewer); err != nil {
		return nil, err
	}

	chapters, err := srv.chapterRepo.ListByManga(ctx, mangaID, !isStaff(viewer))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chapters")
	}

	return chapters, nil
}

// Read returns a published chapter with its pages. Staff can also read drafts.
func (srv *chapterService) Read(ctx context.Context, viewer *entity.User, id uuid.UUID) (*usecase.ChapterDetail, error) {
	chapter, err := srv.findVisibleChapter(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	pages, err := srv.pageRepo.ListByChapter(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pages")
	}
	if pages == nil {
		pages = []*entity.Page{}
	}

	if err := srv.chapterRepo.AdjustCounter(ctx, id, repository.ChapterViewCount, 1); err != nil {
		srv.log(ctx).Warn("Failed to count chapter view", slog.Any("chapterID", id), slog.Any("error", err))
	} else {
		chapter.ViewCount++
	}

	return &usecase.ChapterDetail{Chapter: chapter, Pages: pages}, nil
}

func (srv *chapterService) Create(ctx context.Context, actorID, mangaID uuid.UUID, input *usecase.ChapterInput) (*entity.Chapter, error) {
	chapter := &entity.Chapter{
		MangaID:     mangaID,
		IsActive:    true,
		CreatedByID: &actorID,
		UpdatedByID: &actorID,
	}
	applyChapterInput(chapter, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mangaRepo := repoFactory.NewMangaRepository()
		chapterRepo := repoFactory.NewChapterRepository()

		manga, err := mangaRepo.FindByID(ctx, mangaID)
		if err != nil {
			return notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
		}

		if err := ensureChapterNumberFree(ctx, chapterRepo, mangaID, chapter.Number, nil); err != nil {
			return err
		}
		chapter.Slug = chapterSlug(manga.Slug, chapter.Number)

		if err := chapterRepo.Create(ctx, chapter); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domainerrors.ErrChapterExists
			}

			return errors.Wrap(err, "failed to create chapter")
		}

		if err := mangaRepo.AdjustCounter(ctx, mangaID, repository.MangaChapterCount, 1); err != nil {
			return errors.Wrap(err, "failed to count manga chapter")
		}

		return errors.Wrap(
			repoFactory.NewUserRepository().AdjustCounter(ctx, actorID, repository.UserChaptersCreated, 1),
			"failed to count created chapter",
		)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create chapter", slog.Any("mangaID", mangaID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute chapter creation transaction")
	}

	srv.log(ctx).Debug("Chapter created", slog.Any("chapterID", chapter.ID), slog.String("slug", chapter.Slug))

	return chapter, nil
}

func (srv *chapterService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.ChapterInput) (*entity.Chapter, error) {
	var chapter *entity.Chapter
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		chapterRepo := repoFactory.NewChapterRepository()

		var err error
		chapter, err = chapterRepo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, domainerrors.ErrChapterNotFound, "failed to find chapter")
		}

		previousNumber := chapter.Number
		applyChapterInput(chapter, input)
		chapter.UpdatedByID = &actorID

		if chapter.Number != previousNumber {
			if err := ensureChapterNumberFree(ctx, chapterRepo, chapter.MangaID, chapter.Number, &id); err != nil {
				return err
			}

			manga, err := repoFactory.NewMangaRepository().FindByID(ctx, chapter.MangaID)
			if err != nil {
				return notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
			}
			chapter.Slug = chapterSlug(manga.Slug, chapter.Number)
		}

		if err := chapterRepo.Update(ctx, chapter); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domainerrors.ErrChapterExists
			}

			return notFound(err, domainerrors.ErrChapterNotFound, "failed to update chapter")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute chapter update transaction")
	}

	return chapter, nil
}

func (srv *chapterService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		chapterRepo := repoFactory.NewChapterRepository()

		chapter, err := chapterRepo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, domainerrors.ErrChapterNotFound, "failed to find chapter")
		}

		if err := chapterRepo.SoftDelete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete chapter")
		}

		return errors.Wrap(
			repoFactory.NewMangaRepository().AdjustCounter(ctx, chapter.MangaID, repository.MangaChapterCount, -1),
			"failed to release manga chapter count",
		)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute chapter deletion transaction")
	}

	srv.log(ctx).Info("Chapter deleted", slog.Any("chapterID", id))

	return nil
}

// Publish releases the chapter at the given time, or now, and announces it.
func (srv *chapterService) Publish(ctx context.Context, id uuid.UUID, at *time.Time) (*entity.Chapter, error) {
	chapter, err := srv.findChapter(ctx, id)
	if err != nil {
		return nil, err
	}

	manga, err := srv.findManga(ctx, chapter.MangaID)
	if err != nil {
		return nil, err
	}

	publishedAt := srv.now()
	if at != nil {
		publishedAt = *at
	}
	chapter.PublishedAt = &publishedAt

	if err := srv.chapterRepo.Update(ctx, chapter); err != nil {
		return nil, notFound(err, domainerrors.ErrChapterNotFound, "failed to publish chapter")
	}

	publishCatalogEvent(ctx, srv.publisher, srv.log(ctx), &service.CatalogEvent{
		Type:       service.EventChapterPublished,
		MangaID:    manga.ID.String(),
		ChapterID:  chapter.ID.String(),
		Slug:       chapter.Slug,
		Title:      manga.Title,
		OccurredAt: publishedAt.Unix(),
	})

	srv.log(ctx).Info("Chapter published", slog.Any("chapterID", id), slog.Time("publishedAt", publishedAt))

	return chapter, nil
}

func (srv *chapterService) ListPages(ctx context.Context, viewer *entity.User, chapterID uuid.UUID) ([]*entity.Page, error) {
	if _, err := srv.findVisibleChapter(ctx, viewer, chapterID); err != nil {
		return nil, err
	}

	pages, err := srv.pageRepo.ListByChapter(ctx, chapterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pages")
	}

	return pages, nil
}

// UploadPages stores the images and appends them after the chapter's current last page.
// Stored objects are removed again when the database write fails.
func (srv *chapterService) UploadPages(ctx context.Context, actorID, chapterID uuid.UUID, files []*usecase.FileUpload) ([]*entity.Page, error) {
	if len(files) == 0 {
		return nil, domainerrors.ErrNoFileUploaded
	}

	if _, err := srv.findChapter(ctx, chapterID); err != nil {
		return nil, err
	}

	data := make([][]byte, len(files))
	for i, file := range files {
		data[i] = file.Data
	}

	results, err := srv.storage.UploadMany(ctx, data, service.UploadOptions{
		Folder:            fmt.Sprintf("chapters/%s", chapterID),
		GenerateThumbnail: true,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to upload pages",
			slog.Any("chapterID", chapterID),
			slog.Int("files", len(files)),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	var pages []*entity.Page
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pageRepo := repoFactory.NewPageRepository()

		last, err := pageRepo.MaxNumber(ctx, chapterID)
		if err != nil {
			return errors.Wrap(err, "failed to read last page number")
		}

		pages = make([]*entity.Page, len(results))
		for i, result := range results {
			pages[i] = &entity.Page{
				ChapterID:    chapterID,
				Number:       last + i + 1,
				ImageURL:     result.URL,
				ThumbnailURL: result.ThumbnailURL,
				StorageKey:   result.PublicID,
				Width:        result.Width,
				Height:       result.Height,
				FileSize:     result.Size,
				Format:       result.Format,
				Hash:         util.ChecksumBytes(files[i].Data),
				IsActive:     true,
				IsProcessed:  true,
				CreatedByID:  &actorID,
			}
		}

		if err := pageRepo.CreateMany(ctx, pages); err != nil {
			return errors.Wrap(err, "failed to create pages")
		}

		return errors.Wrap(
			repoFactory.NewChapterRepository().AdjustCounter(ctx, chapterID, repository.ChapterPageCount, len(pages)),
			"failed to count chapter pages",
		)
	})
	if err != nil {
		srv.discardUploads(ctx, results)

		return nil, errors.Wrap(err, "failed to execute page upload transaction")
	}

	srv.log(ctx).Info("Pages uploaded",
		slog.Any("chapterID", chapterID),
		slog.Int("count", len(pages)),
		slog.String("provider", srv.storage.Name()))

	return pages, nil
}

// DeletePage removes the page row and then, best effort, its stored image.
func (srv *chapterService) DeletePage(ctx context.Context, pageID uuid.UUID) error {
	var page *entity.Page
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pageRepo := repoFactory.NewPageRepository()

		var err error
		page, err = pageRepo.FindByID(ctx, pageID)
		if err != nil {
			return notFound(err, domainerrors.ErrPageNotFound, "failed to find page")
		}

		if err := pageRepo.SoftDelete(ctx, pageID); err != nil {
			return errors.Wrap(err, "failed to delete page")
		}

		return errors.Wrap(
			repoFactory.NewChapterRepository().AdjustCounter(ctx, page.ChapterID, repository.ChapterPageCount, -1),
			"failed to release chapter page count",
		)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute page deletion transaction")
	}

	if page.StorageKey != "" {
		if err := srv.storage.Delete(ctx, page.StorageKey); err != nil {
			srv.log(ctx).Warn("Failed to delete page image",
				slog.Any("pageID", pageID),
				slog.String("key", page.StorageKey),
				slog.Any("error", err))
		}
	}

	return nil
}

func (srv *chapterService) discardUploads(ctx context.Context, results []*service.UploadResult) {
	keys := make([]string, 0, len(results))
	for _, result := range results {
		keys = append(keys, result.PublicID)
	}

	if err := srv.storage.DeleteMany(ctx, keys); err != nil {
		srv.log(ctx).Warn("Failed to discard uploaded pages", slog.Int("count", len(keys)), slog.Any("error", err))
	}
}

func (srv *chapterService) findChapter(ctx context.Context, id uuid.UUID) (*entity.Chapter, error) {
	chapter, err := srv.chapterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrChapterNotFound, "failed to find chapter")
	}

	return chapter, nil
}

// findVisibleChapter hides drafts and inactive chapters from non-staff and applies the mature gate of the owning manga.
func (srv *chapterService) findVisibleChapter(ctx context.Context, viewer *entity.User, id uuid.UUID) (*entity.Chapter, error) {
	chapter, err := srv.findChapter(ctx, id)
	if err != nil {
		return nil, err
	}
	if (!chapter.IsPublished() || !chapter.IsActive) && !isStaff(viewer) {
		return nil, domainerrors.ErrChapterNotFound
	}

	manga, err := srv.findManga(ctx, chapter.MangaID)
	if err != nil {
		return nil, err
	}
	if err := checkMatureAccess(manga, viewer); err != nil {
		return nil, err
	}

	return chapter, nil
}

func (srv *chapterService) findManga(ctx context.Context, id uuid.UUID) (*entity.Manga, error) {
	manga, err := srv.mangaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
	}

	return manga, nil
}

func applyChapterInput(chapter *entity.Chapter, input *usecase.ChapterInput) {
	chapter.Number = input.Number
	chapter.Title = input.Title
	chapter.Description = input.Description
	if input.IsActive != nil {
		chapter.IsActive = *input.IsActive
	}
}

func ensureChapterNumberFree(ctx context.Context, chapterRepo repository.ChapterRepository, mangaID uuid.UUID, number float64, excludeID *uuid.UUID) error {
	existing, err := chapterRepo.FindByMangaAndNumber(ctx, mangaID, number)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check chapter number")
	}
	if excludeID != nil && existing.ID == *excludeID {
		return nil
	}

	return domainerrors.ErrChapterExists
}

// chapterSlug renders e.g. "one-piece-chapter-10-5" for chapter 10.5.
func chapterSlug(mangaSlug string, number float64) string {
	n := strings.ReplaceAll(strconv.FormatFloat(number, 'f', -1, 64), ".", "-")

	return fmt.Sprintf("%s-chapter-%s", mangaSlug, n)
}

func isStaff(user *entity.User) bool {
	return user != nil && user.IsModerator()
}
