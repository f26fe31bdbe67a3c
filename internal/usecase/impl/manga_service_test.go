package impl

import (
	"context"
	"testing"
	"time"

	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/domain/service"
	mockRepo "mangahub/internal/mocks/repository"
	mockSvc "mangahub/internal/mocks/service"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mangaServiceFixtures struct {
	service   usecase.MangaUsecase
	txManager *mockRepo.MockTransactionManager
	mangaRepo *mockRepo.MockMangaRepository
	storage   *mockSvc.MockStorageProvider
	publisher *mockSvc.MockEventPublisher
	qrCode    *mockSvc.MockQRCodeService
}

func createTestMangaService(t *testing.T) mangaServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	mangaRepo := mockRepo.NewMockMangaRepository(t)
	storage := mockSvc.NewMockStorageProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	svc := NewMangaService(MangaServiceParams{
		TxManager: txManager,
		MangaRepo: mangaRepo,
		Storage:   storage,
		Publisher: publisher,
		QRCode:    qrCode,
		Logger:    newDiscardLogger(),
	})
	svc.(*mangaService).now = func() time.Time { return fixedNow }

	return mangaServiceFixtures{
		service:   svc,
		txManager: txManager,
		mangaRepo: mangaRepo,
		storage:   storage,
		publisher: publisher,
		qrCode:    qrCode,
	}
}

func newTestManga() *entity.Manga {
	return &entity.Manga{
		ID:     uuid.New(),
		Title:  "Blue Harbor",
		Slug:   "blue-harbor",
		Status: entity.MangaStatusOngoing,
	}
}

func TestMangaService_List_HidesMatureContent(t *testing.T) {
	adult := newTestUser(entity.RoleUser)
	optedOut := newTestUser(entity.RoleUser)
	optedOut.ShowMatureContent = false

	tests := []struct {
		name         string
		viewer       *entity.User
		includeAdult bool
	}{
		{name: "anonymous", viewer: nil, includeAdult: false},
		{name: "opted out", viewer: optedOut, includeAdult: false},
		{name: "opted in", viewer: adult, includeAdult: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMangaService(t)

			fx.mangaRepo.EXPECT().
				List(mock.Anything, mock.MatchedBy(func(filter repository.MangaListFilter) bool {
					return filter.IncludeAdult == tt.includeAdult &&
						filter.Sort == repository.MangaSortCreatedAt &&
						filter.Order == repository.SortDesc
				})).
				Return([]*entity.Manga{newTestManga()}, int64(1), nil)

			page, err := fx.service.List(context.Background(), tt.viewer, &usecase.ListMangasQuery{})

			require.NoError(t, err)
			assert.Len(t, page.Items, 1)
		})
	}
}

func TestMangaService_Get_CountsViewBySlugOrID(t *testing.T) {
	fx := createTestMangaService(t)
	manga := newTestManga()

	fx.mangaRepo.EXPECT().FindBySlug(mock.Anything, "blue-harbor").Return(manga, nil)
	fx.mangaRepo.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
	fx.mangaRepo.EXPECT().AdjustCounter(mock.Anything, manga.ID, repository.MangaViewCount, 1).Return(nil).Twice()

	got, err := fx.service.Get(context.Background(), nil, "Blue-Harbor")
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewCount)

	got, err = fx.service.Get(context.Background(), nil, manga.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)
}

func TestMangaService_Get_MatureForbiddenForAnonymous(t *testing.T) {
	fx := createTestMangaService(t)
	manga := newTestManga()
	manga.IsMature = true

	fx.mangaRepo.EXPECT().FindBySlug(mock.Anything, manga.Slug).Return(manga, nil)

	_, err := fx.service.Get(context.Background(), nil, manga.Slug)

	assert.ErrorIs(t, err, domainerrors.ErrMatureContentNotAllowed)
}

func TestMangaService_Create_SuffixesSlugAndPublishes(t *testing.T) {
	fx := createTestMangaService(t)
	actorID := uuid.New()
	tagID := uuid.New()

	txMangaRepo := mockRepo.NewMockMangaRepository(t)
	txTagRepo := mockRepo.NewMockTagRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := expectTransaction(t, fx.txManager)
	factory.EXPECT().NewMangaRepository().Return(txMangaRepo)
	factory.EXPECT().NewTagRepository().Return(txTagRepo)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	txMangaRepo.EXPECT().SlugExists(mock.Anything, "blue-harbor").Return(true, nil)
	txMangaRepo.EXPECT().SlugExists(mock.Anything, "blue-harbor-2").Return(true, nil)
	txMangaRepo.EXPECT().SlugExists(mock.Anything, "blue-harbor-3").Return(false, nil)
	txMangaRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Manga")).
		Run(func(_ context.Context, manga *entity.Manga) { manga.ID = uuid.New() }).
		Return(nil)
	txTagRepo.EXPECT().FindByIDs(mock.Anything, []uuid.UUID{tagID}).Return([]*entity.Tag{{ID: tagID, Name: "Action"}}, nil)
	txMangaRepo.EXPECT().ReplaceTags(mock.Anything, mock.Anything, []uuid.UUID{tagID}).Return(nil)
	txTagRepo.EXPECT().AdjustUsage(mock.Anything, []uuid.UUID{tagID}, 1).Return(nil)
	txUserRepo.EXPECT().AdjustCounter(mock.Anything, actorID, repository.UserMangasCreated, 1).Return(nil)

	fx.publisher.EXPECT().
		PublishCatalogEvent(mock.Anything, mock.MatchedBy(func(event *service.CatalogEvent) bool {
			return event.Type == service.EventMangaCreated && event.Slug == "blue-harbor-3" && event.OccurredAt == fixedNow.Unix()
		})).
		Return(nil)

	manga, err := fx.service.Create(context.Background(), actorID, &usecase.MangaInput{
		Title:  "Blue Harbor",
		TagIDs: []uuid.UUID{tagID, tagID},
	})

	require.NoError(t, err)
	assert.Equal(t, "blue-harbor-3", manga.Slug)
	assert.Equal(t, entity.MangaStatusOngoing, manga.Status)
	require.Len(t, manga.Tags, 1)
	assert.Equal(t, "Action", manga.Tags[0].Name)
}

func TestMangaService_Create_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestMangaService(t)
	actorID := uuid.New()

	txMangaRepo := mockRepo.NewMockMangaRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := expectTransaction(t, fx.txManager)
	factory.EXPECT().NewMangaRepository().Return(txMangaRepo)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	txMangaRepo.EXPECT().SlugExists(mock.Anything, "blue-harbor").Return(false, nil)
	txMangaRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	txUserRepo.EXPECT().AdjustCounter(mock.Anything, actorID, repository.UserMangasCreated, 1).Return(nil)
	fx.publisher.EXPECT().PublishCatalogEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	_, err := fx.service.Create(context.Background(), actorID, &usecase.MangaInput{Title: "Blue Harbor"})

	require.NoError(t, err)
}

func TestMangaService_SetTags_MovesUsage(t *testing.T) {
	fx := createTestMangaService(t)
	manga := newTestManga()
	kept, dropped, added := uuid.New(), uuid.New(), uuid.New()
	manga.Tags = []entity.Tag{{ID: kept}, {ID: dropped}}

	txMangaRepo := mockRepo.NewMockMangaRepository(t)
	txTagRepo := mockRepo.NewMockTagRepository(t)
	factory := expectTransaction(t, fx.txManager)
	factory.EXPECT().NewMangaRepository().Return(txMangaRepo)
	factory.EXPECT().NewTagRepository().Return(txTagRepo)

	txMangaRepo.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
	txTagRepo.EXPECT().FindByIDs(mock.Anything, []uuid.UUID{kept, added}).
		Return([]*entity.Tag{{ID: kept}, {ID: added}}, nil)
	txMangaRepo.EXPECT().ReplaceTags(mock.Anything, manga.ID, []uuid.UUID{kept, added}).Return(nil)
	txTagRepo.EXPECT().AdjustUsage(mock.Anything, []uuid.UUID{dropped}, -1).Return(nil)
	txTagRepo.EXPECT().AdjustUsage(mock.Anything, []uuid.UUID{added}, 1).Return(nil)

	updated, err := fx.service.SetTags(context.Background(), manga.ID, &usecase.SetTagsInput{TagIDs: []uuid.UUID{kept, added}})

	require.NoError(t, err)
	assert.Len(t, updated.Tags, 2)
}

func TestMangaService_SetTags_UnknownTag(t *testing.T) {
	fx := createTestMangaService(t)
	manga := newTestManga()
	missing := uuid.New()

	txMangaRepo := mockRepo.NewMockMangaRepository(t)
	txTagRepo := mockRepo.NewMockTagRepository(t)
	factory := expectTransaction(t, fx.txManager)
	factory.EXPECT().NewMangaRepository().Return(txMangaRepo)
	factory.EXPECT().NewTagRepository().Return(txTagRepo)

	txMangaRepo.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
	txTagRepo.EXPECT().FindByIDs(mock.Anything, []uuid.UUID{missing}).Return([]*entity.Tag{}, nil)

	_, err := fx.service.SetTags(context.Background(), manga.ID, &usecase.SetTagsInput{TagIDs: []uuid.UUID{missing}})

	assert.ErrorIs(t, err, domainerrors.ErrTagNotFound)
}

func TestMangaService_Delete_ReleasesTags(t *testing.T) {
	fx := createTestMangaService(t)
	manga := newTestManga()
	tagID := uuid.New()
	manga.Tags = []entity.Tag{{ID: tagID}}

	txMangaRepo := mockRepo.NewMockMangaRepository(t)
	txTagRepo := mockRepo.NewMockTagRepository(t)
	factory := expectTransaction(t, fx.txManager)
	factory.EXPECT().NewMangaRepository().Return(txMangaRepo)
	factory.EXPECT().NewTagRepository().Return(txTagRepo)

	txMangaRepo.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
	txMangaRepo.EXPECT().SoftDelete(mock.Anything, manga.ID).Return(nil)
	txTagRepo.EXPECT().AdjustUsage(mock.Anything, []uuid.UUID{tagID}, -1).Return(nil)

	require.NoError(t, fx.service.Delete(context.Background(), manga.ID))
}

func TestMangaService_UploadCover(t *testing.T) {
	fx := createTestMangaService(t)
	manga := newTestManga()

	fx.mangaRepo.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
	fx.storage.EXPECT().
		Upload(mock.Anything, []byte{1, 2}, mock.MatchedBy(func(opts service.UploadOptions) bool {
			return opts.Folder == "mangas/"+manga.ID.String() && opts.GenerateThumbnail
		})).
		Return(&service.UploadResult{URL: "https://cdn.example.com/cover.jpg"}, nil)
	fx.mangaRepo.EXPECT().Update(mock.Anything, manga).Return(nil)

	updated, err := fx.service.UploadCover(context.Background(), manga.ID, &usecase.FileUpload{Data: []byte{1, 2}})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cover.jpg", *updated.CoverURL)
}

func TestMangaService_ShareQR(t *testing.T) {
	fx := createTestMangaService(t)
	manga := newTestManga()

	fx.mangaRepo.EXPECT().FindBySlug(mock.Anything, "blue-harbor").Return(manga, nil)
	fx.qrCode.EXPECT().GenerateMangaShareQR("blue-harbor").Return([]byte("png"), nil)

	png, err := fx.service.ShareQR(context.Background(), "blue-harbor")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestDiffIDs(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	added, removed := diffIDs([]uuid.UUID{a, b}, []uuid.UUID{b, c})

	assert.Equal(t, []uuid.UUID{c}, added)
	assert.Equal(t, []uuid.UUID{a}, removed)
}
