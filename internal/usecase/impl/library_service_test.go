package impl

import (
	"context"
	"testing"
	"time"

	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	mockRepo "mangahub/internal/mocks/repository"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type libraryServiceFixtures struct {
	service      usecase.LibraryUsecase
	txManager    *mockRepo.MockTransactionManager
	favoriteRepo *mockRepo.MockFavoriteRepository
	historyRepo  *mockRepo.MockHistoryRepository
}

func createTestLibraryService(t *testing.T) libraryServiceFixtures {
	fx := libraryServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		historyRepo:  mockRepo.NewMockHistoryRepository(t),
	}
	fx.service = NewLibraryService(LibraryServiceParams{
		TxManager:    fx.txManager,
		FavoriteRepo: fx.favoriteRepo,
		HistoryRepo:  fx.historyRepo,
		Logger:       newDiscardLogger(),
	})
	fx.service.(*libraryService).now = func() time.Time { return fixedNow }

	return fx
}

func TestLibraryService_AddFavorite(t *testing.T) {
	userID := uuid.New()
	manga := newTestManga()

	t.Run("counts on both sides", func(t *testing.T) {
		fx := createTestLibraryService(t)

		txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		txMangaRepo := mockRepo.NewMockMangaRepository(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory := expectTransaction(t, fx.txManager)
		factory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
		factory.EXPECT().NewMangaRepository().Return(txMangaRepo)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)

		txMangaRepo.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
		txFavoriteRepo.EXPECT().Exists(mock.Anything, userID, manga.ID).Return(false, nil)
		txFavoriteRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Favorite")).Return(nil)
		txMangaRepo.EXPECT().AdjustCounter(mock.Anything, manga.ID, repository.MangaFavoriteCount, 1).Return(nil)
		txUserRepo.EXPECT().AdjustCounter(mock.Anything, userID, repository.UserFavoritesCount, 1).Return(nil)

		favorite, err := fx.service.AddFavorite(context.Background(), userID, manga.ID)

		require.NoError(t, err)
		assert.Equal(t, manga, favorite.Manga)
	})

	t.Run("twice conflicts", func(t *testing.T) {
		fx := createTestLibraryService(t)

		txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		txMangaRepo := mockRepo.NewMockMangaRepository(t)
		factory := expectTransaction(t, fx.txManager)
		factory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
		factory.EXPECT().NewMangaRepository().Return(txMangaRepo)

		txMangaRepo.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
		txFavoriteRepo.EXPECT().Exists(mock.Anything, userID, manga.ID).Return(true, nil)

		_, err := fx.service.AddFavorite(context.Background(), userID, manga.ID)

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyFavorited)
	})
}

func TestLibraryService_RemoveFavorite_Missing(t *testing.T) {
	fx := createTestLibraryService(t)
	userID, mangaID := uuid.New(), uuid.New()

	txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	factory := expectTransaction(t, fx.txManager)
	factory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
	txFavoriteRepo.EXPECT().Delete(mock.Anything, userID, mangaID).Return(false, nil)

	err := fx.service.RemoveFavorite(context.Background(), userID, mangaID)

	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

type progressRepos struct {
	history *mockRepo.MockHistoryRepository
	manga   *mockRepo.MockMangaRepository
	chapter *mockRepo.MockChapterRepository
	page    *mockRepo.MockPageRepository
}

func expectProgressTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) progressRepos {
	repos := progressRepos{
		history: mockRepo.NewMockHistoryRepository(t),
		manga:   mockRepo.NewMockMangaRepository(t),
		chapter: mockRepo.NewMockChapterRepository(t),
		page:    mockRepo.NewMockPageRepository(t),
	}

	factory := expectTransaction(t, txManager)
	factory.EXPECT().NewHistoryRepository().Return(repos.history)
	factory.EXPECT().NewMangaRepository().Return(repos.manga)
	factory.EXPECT().NewChapterRepository().Return(repos.chapter)
	factory.EXPECT().NewPageRepository().Return(repos.page).Maybe()

	return repos
}

func TestLibraryService_RecordProgress(t *testing.T) {
	userID := uuid.New()

	t.Run("first read creates history", func(t *testing.T) {
		fx := createTestLibraryService(t)
		repos := expectProgressTransaction(t, fx.txManager)
		manga := newTestManga()
		chapter := newTestChapter(manga.ID)
		page := &entity.Page{ID: uuid.New(), ChapterID: chapter.ID}

		repos.manga.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
		repos.chapter.EXPECT().FindByID(mock.Anything, chapter.ID).Return(chapter, nil)
		repos.page.EXPECT().FindByID(mock.Anything, page.ID).Return(page, nil)
		repos.history.EXPECT().FindByUserAndManga(mock.Anything, userID, manga.ID).Return(nil, repository.ErrNotFound)
		repos.history.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.ReadingHistory")).Return(nil)

		history, err := fx.service.RecordProgress(context.Background(), userID, &usecase.RecordProgressInput{
			MangaID:   manga.ID,
			ChapterID: chapter.ID,
			PageID:    &page.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, history.ChaptersRead)
		assert.Equal(t, 1, history.PagesRead)
		assert.Equal(t, entity.HistoryReading, history.Status)
		assert.Equal(t, fixedNow, history.LastReadAt)
	})

	t.Run("same chapter does not count twice", func(t *testing.T) {
		fx := createTestLibraryService(t)
		repos := expectProgressTransaction(t, fx.txManager)
		manga := newTestManga()
		chapter := newTestChapter(manga.ID)
		existing := &entity.ReadingHistory{
			UserID:            userID,
			MangaID:           manga.ID,
			LastChapterReadID: &chapter.ID,
			ChaptersRead:      4,
			Status:            entity.HistoryReading,
		}

		repos.manga.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
		repos.chapter.EXPECT().FindByID(mock.Anything, chapter.ID).Return(chapter, nil)
		repos.history.EXPECT().FindByUserAndManga(mock.Anything, userID, manga.ID).Return(existing, nil)
		repos.history.EXPECT().Update(mock.Anything, existing).Return(nil)

		history, err := fx.service.RecordProgress(context.Background(), userID, &usecase.RecordProgressInput{
			MangaID:   manga.ID,
			ChapterID: chapter.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, 4, history.ChaptersRead)
		assert.Nil(t, history.LastPageReadID)
	})

	t.Run("last chapter of completed manga completes", func(t *testing.T) {
		fx := createTestLibraryService(t)
		repos := expectProgressTransaction(t, fx.txManager)
		manga := newTestManga()
		manga.Status = entity.MangaStatusCompleted
		chapter := newTestChapter(manga.ID)

		repos.manga.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
		repos.chapter.EXPECT().FindByID(mock.Anything, chapter.ID).Return(chapter, nil)
		repos.chapter.EXPECT().FindLatest(mock.Anything, manga.ID).Return(chapter, nil)
		repos.history.EXPECT().FindByUserAndManga(mock.Anything, userID, manga.ID).Return(nil, repository.ErrNotFound)
		repos.history.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		history, err := fx.service.RecordProgress(context.Background(), userID, &usecase.RecordProgressInput{
			MangaID:   manga.ID,
			ChapterID: chapter.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.HistoryCompleted, history.Status)
	})

	t.Run("chapter of another manga", func(t *testing.T) {
		fx := createTestLibraryService(t)
		repos := expectProgressTransaction(t, fx.txManager)
		manga := newTestManga()
		chapter := newTestChapter(uuid.New())

		repos.manga.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
		repos.chapter.EXPECT().FindByID(mock.Anything, chapter.ID).Return(chapter, nil)

		_, err := fx.service.RecordProgress(context.Background(), userID, &usecase.RecordProgressInput{
			MangaID:   manga.ID,
			ChapterID: chapter.ID,
		})

		assert.ErrorIs(t, err, domainerrors.ErrChapterMangaMismatch)
	})

	t.Run("page of another chapter", func(t *testing.T) {
		fx := createTestLibraryService(t)
		repos := expectProgressTransaction(t, fx.txManager)
		manga := newTestManga()
		chapter := newTestChapter(manga.ID)
		page := &entity.Page{ID: uuid.New(), ChapterID: uuid.New()}

		repos.manga.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
		repos.chapter.EXPECT().FindByID(mock.Anything, chapter.ID).Return(chapter, nil)
		repos.page.EXPECT().FindByID(mock.Anything, page.ID).Return(page, nil)

		_, err := fx.service.RecordProgress(context.Background(), userID, &usecase.RecordProgressInput{
			MangaID:   manga.ID,
			ChapterID: chapter.ID,
			PageID:    &page.ID,
		})

		assert.ErrorIs(t, err, domainerrors.ErrPageChapterMismatch)
	})
}

func TestLibraryService_UpdateHistoryStatus(t *testing.T) {
	fx := createTestLibraryService(t)
	userID, mangaID := uuid.New(), uuid.New()
	history := &entity.ReadingHistory{UserID: userID, MangaID: mangaID, Status: entity.HistoryReading}

	fx.historyRepo.EXPECT().FindByUserAndManga(mock.Anything, userID, mangaID).Return(history, nil)
	fx.historyRepo.EXPECT().Update(mock.Anything, history).Return(nil)

	updated, err := fx.service.UpdateHistoryStatus(context.Background(), userID, mangaID, &usecase.UpdateHistoryStatusInput{Status: entity.HistoryOnHold})

	require.NoError(t, err)
	assert.Equal(t, entity.HistoryOnHold, updated.Status)
}

func TestLibraryService_ListHistory_PassesStatus(t *testing.T) {
	fx := createTestLibraryService(t)
	userID := uuid.New()
	status := entity.HistoryDropped

	fx.historyRepo.EXPECT().
		ListByUser(mock.Anything, userID, &status, repository.PageRequest{Page: 1, Limit: 10}).
		Return(nil, int64(0), nil)

	page, err := fx.service.ListHistory(context.Background(), userID, &usecase.ListHistoryQuery{Status: &status})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestLibraryService_DeleteHistory_Missing(t *testing.T) {
	fx := createTestLibraryService(t)
	userID, mangaID := uuid.New(), uuid.New()

	fx.historyRepo.EXPECT().Delete(mock.Anything, userID, mangaID).Return(false, nil)

	err := fx.service.DeleteHistory(context.Background(), userID, mangaID)

	assert.ErrorIs(t, err, domainerrors.ErrHistoryNotFound)
}
