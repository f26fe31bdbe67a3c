package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/domain/service"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	coverMaxWidth            = 1200
	coverMaxHeight           = 1800
	defaultMangaLanguage     = "ja"
	maxSlugCollisionAttempts = 100
)

// mangaService implements the MangaUsecase interface.
type mangaService struct {
	txManager repository.TransactionManager
	mangaRepo repository.MangaRepository
	storage   service.StorageProvider
	publisher service.EventPublisher
	qrCode    service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
}

// MangaServiceParams holds dependencies for MangaService, injected by Fx.
type MangaServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	MangaRepo repository.MangaRepository
	Storage   service.StorageProvider
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewMangaService is the constructor for mangaService.
func NewMangaService(params MangaServiceParams) usecase.MangaUsecase {
	return &mangaService{
		txManager: params.TxManager,
		mangaRepo: params.MangaRepo,
		storage:   params.Storage,
		publisher: params.Publisher,
		qrCode:    params.QRCode,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *mangaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// List hides mature titles from anonymous readers and readers who have not opted in.
func (srv *mangaService) List(ctx context.Context, viewer *entity.User, query *usecase.ListMangasQuery) (*usecase.Paginated[*entity.Manga], error) {
	page := query.Request()

	sort := repository.MangaSortField(query.Sort)
	if sort == "" {
		sort = repository.MangaSortCreatedAt
	}

	mangas, total, err := srv.mangaRepo.List(ctx, repository.MangaListFilter{
		PageRequest:  page,
		Search:       strings.TrimSpace(query.Search),
		Status:       query.Status,
		TagSlug:      strings.TrimSpace(query.TagSlug),
		Sort:         sort,
		Order:        sortOrder(query.Order, repository.SortDesc),
		IncludeAdult: viewer.CanSeeMature(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mangas")
	}

	return usecase.NewPaginated(mangas, total, page), nil
}

// Get resolves idOrSlug and counts the view. A failed view count is logged, not returned.
func (srv *mangaService) Get(ctx context.Context, viewer *entity.User, idOrSlug string) (*entity.Manga, error) {
	manga, err := srv.resolve(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if err := checkMatureAccess(manga, viewer); err != nil {
		return nil, err
	}

	if err := srv.mangaRepo.AdjustCounter(ctx, manga.ID, repository.MangaViewCount, 1); err != nil {
		srv.log(ctx).Warn("Failed to count manga view", slog.Any("mangaID", manga.ID), slog.Any("error", err))
	} else {
		manga.ViewCount++
	}

	return manga, nil
}

func (srv *mangaService) resolve(ctx context.Context, idOrSlug string) (*entity.Manga, error) {
	var (
		manga *entity.Manga
		err   error
	)
	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		manga, err = srv.mangaRepo.FindByID(ctx, id)
	} else {
		manga, err = srv.mangaRepo.FindBySlug(ctx, strings.ToLower(idOrSlug))
	}
	if err != nil {
		return nil, notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
	}

	return manga, nil
}

// Create adds a title, credits its creator and announces it.
func (srv *mangaService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.MangaInput) (*entity.Manga, error) {
	manga := &entity.Manga{
		Status:           entity.MangaStatusOngoing,
		OriginalLanguage: defaultMangaLanguage,
		CreatedByID:      &actorID,
		UpdatedByID:      &actorID,
	}
	if err := applyMangaInput(manga, input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating manga", slog.String("title", manga.Title), slog.Any("actorID", actorID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mangaRepo := repoFactory.NewMangaRepository()

		slug, err := uniqueSlug(ctx, mangaRepo, slugify(manga.Title, "manga"))
		if err != nil {
			return err
		}
		manga.Slug = slug

		if err := mangaRepo.Create(ctx, manga); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domainerrors.NewConflictError("Manga with slug %s already exists", slug)
			}

			return errors.Wrap(err, "failed to create manga")
		}

		if input.TagIDs != nil {
			if err := replaceMangaTags(ctx, repoFactory, manga, input.TagIDs); err != nil {
				return err
			}
		}

		return errors.Wrap(
			repoFactory.NewUserRepository().AdjustCounter(ctx, actorID, repository.UserMangasCreated, 1),
			"failed to count created manga",
		)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create manga", slog.String("title", manga.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute manga creation transaction")
	}

	publishCatalogEvent(ctx, srv.publisher, srv.log(ctx), &service.CatalogEvent{
		Type:       service.EventMangaCreated,
		MangaID:    manga.ID.String(),
		Slug:       manga.Slug,
		Title:      manga.Title,
		OccurredAt: srv.now().Unix(),
	})

	srv.log(ctx).Debug("Manga created", slog.Any("mangaID", manga.ID), slog.String("slug", manga.Slug))

	return manga, nil
}

// Update replaces the editable fields. The slug follows the title.
func (srv *mangaService) Update(ctx context.Context, actorID, id uuid.UUID, input *usecase.MangaInput) (*entity.Manga, error) {
	var manga *entity.Manga
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mangaRepo := repoFactory.NewMangaRepository()

		var err error
		manga, err = mangaRepo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
		}

		previousTitle := manga.Title
		if err := applyMangaInput(manga, input); err != nil {
			return err
		}
		manga.UpdatedByID = &actorID

		if manga.Title != previousTitle {
			if candidate := slugify(manga.Title, "manga"); candidate != manga.Slug {
				slug, err := uniqueSlug(ctx, mangaRepo, candidate)
				if err != nil {
					return err
				}
				manga.Slug = slug
			}
		}

		if err := mangaRepo.Update(ctx, manga); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domainerrors.NewConflictError("Manga with slug %s already exists", manga.Slug)
			}

			return notFound(err, domainerrors.ErrMangaNotFound, "failed to update manga")
		}

		if input.TagIDs != nil {
			return replaceMangaTags(ctx, repoFactory, manga, input.TagIDs)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute manga update transaction")
	}

	srv.log(ctx).Debug("Manga updated", slog.Any("mangaID", id))

	return manga, nil
}

// Delete soft deletes the manga and releases its tag usage.
func (srv *mangaService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mangaRepo := repoFactory.NewMangaRepository()

		manga, err := mangaRepo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
		}

		if err := mangaRepo.SoftDelete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete manga")
		}

		if tagIDs := tagIDsOf(manga.Tags); len(tagIDs) > 0 {
			return errors.Wrap(repoFactory.NewTagRepository().AdjustUsage(ctx, tagIDs, -1), "failed to release tag usage")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute manga deletion transaction")
	}

	srv.log(ctx).Info("Manga deleted", slog.Any("mangaID", id))

	return nil
}

func (srv *mangaService) SetTags(ctx context.Context, id uuid.UUID, input *usecase.SetTagsInput) (*entity.Manga, error) {
	var manga *entity.Manga
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		manga, err = repoFactory.NewMangaRepository().FindByID(ctx, id)
		if err != nil {
			return notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
		}

		return replaceMangaTags(ctx, repoFactory, manga, input.TagIDs)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute manga tags transaction")
	}

	return manga, nil
}

func (srv *mangaService) UploadCover(ctx context.Context, id uuid.UUID, file *usecase.FileUpload) (*entity.Manga, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, domainerrors.ErrNoFileUploaded
	}

	manga, err := srv.mangaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
	}

	result, err := srv.storage.Upload(ctx, file.Data, service.UploadOptions{
		Folder:            fmt.Sprintf("mangas/%s", id),
		Filename:          "cover",
		ContentType:       file.ContentType,
		MaxWidth:          coverMaxWidth,
		MaxHeight:         coverMaxHeight,
		GenerateThumbnail: true,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to upload cover",
			slog.Any("mangaID", id),
			slog.String("provider", srv.storage.Name()),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	manga.CoverURL = &result.URL
	if err := srv.mangaRepo.Update(ctx, manga); err != nil {
		return nil, notFound(err, domainerrors.ErrMangaNotFound, "failed to store cover")
	}

	return manga, nil
}

func (srv *mangaService) ShareQR(ctx context.Context, slug string) ([]byte, error) {
	manga, err := srv.mangaRepo.FindBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
	}

	png, err := srv.qrCode.GenerateMangaShareQR(manga.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render share code")
	}

	return png, nil
}

func applyMangaInput(manga *entity.Manga, input *usecase.MangaInput) error {
	publication, err := parseOptionalDate(input.PublicationDate)
	if err != nil {
		return err
	}
	completion, err := parseOptionalDate(input.CompletionDate)
	if err != nil {
		return err
	}

	manga.Title = strings.TrimSpace(input.Title)
	manga.Description = input.Description
	manga.IsMature = input.IsMature
	manga.PublicationDate = publication
	manga.CompletionDate = completion
	manga.Author = input.Author
	manga.Artist = input.Artist
	manga.Publisher = input.Publisher
	manga.AlternativeTitles = input.AlternativeTitles
	if input.Status != nil {
		manga.Status = *input.Status
	}
	if input.OriginalLanguage != nil {
		manga.OriginalLanguage = strings.TrimSpace(*input.OriginalLanguage)
	}

	return nil
}

// uniqueSlug returns base, or base suffixed with -2, -3 and so on until no manga uses it.
func uniqueSlug(ctx context.Context, mangaRepo repository.MangaRepository, base string) (string, error) {
	candidate := base
	for i := 2; i <= maxSlugCollisionAttempts; i++ {
		exists, err := mangaRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug")
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	return "", domainerrors.NewConflictError("Could not allocate a unique slug for %s", base)
}

// replaceMangaTags swaps the tag set and moves usage counts from removed to added tags.
func replaceMangaTags(ctx context.Context, repoFactory repository.RepositoryFactory, manga *entity.Manga, tagIDs []uuid.UUID) error {
	tagRepo := repoFactory.NewTagRepository()
	tagIDs = dedupeIDs(tagIDs)

	tags := []*entity.Tag{}
	if len(tagIDs) > 0 {
		var err error
		tags, err = tagRepo.FindByIDs(ctx, tagIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load tags")
		}
		if len(tags) != len(tagIDs) {
			return domainerrors.ErrTagNotFound
		}
	}

	previous := tagIDsOf(manga.Tags)
	added, removed := diffIDs(previous, tagIDs)

	if err := repoFactory.NewMangaRepository().ReplaceTags(ctx, manga.ID, tagIDs); err != nil {
		return errors.Wrap(err, "failed to replace manga tags")
	}
	if len(removed) > 0 {
		if err := tagRepo.AdjustUsage(ctx, removed, -1); err != nil {
			return errors.Wrap(err, "failed to release tag usage")
		}
	}
	if len(added) > 0 {
		if err := tagRepo.AdjustUsage(ctx, added, 1); err != nil {
			return errors.Wrap(err, "failed to count tag usage")
		}
	}

	manga.Tags = make([]entity.Tag, 0, len(tags))
	for _, tag := range tags {
		manga.Tags = append(manga.Tags, *tag)
	}

	return nil
}

func tagIDsOf(tags []entity.Tag) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(tags))
	for i := range tags {
		ids = append(ids, tags[i].ID)
	}

	return ids
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// diffIDs returns the ids only in next (added) and only in previous (removed).
func diffIDs(previous, next []uuid.UUID) (added, removed []uuid.UUID) {
	inPrevious := make(map[uuid.UUID]struct{}, len(previous))
	for _, id := range previous {
		inPrevious[id] = struct{}{}
	}
	inNext := make(map[uuid.UUID]struct{}, len(next))
	for _, id := range next {
		inNext[id] = struct{}{}
		if _, ok := inPrevious[id]; !ok {
			added = append(added, id)
		}
	}
	for _, id := range previous {
		if _, ok := inNext[id]; !ok {
			removed = append(removed, id)
		}
	}

	return added, removed
}

// publishCatalogEvent announces a committed change. Failures are logged and never surface to the caller.
func publishCatalogEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.CatalogEvent) {
	event.RequestID = deliverycontext.RequestIDFromContext(ctx)

	if err := publisher.PublishCatalogEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish catalog event",
			slog.String("type", string(event.Type)),
			slog.String("mangaID", event.MangaID),
			slog.Any("error", err))
	}
}
