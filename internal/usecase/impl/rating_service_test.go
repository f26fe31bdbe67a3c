package impl

import (
	"context"
	"testing"

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

func createTestRatingService(t *testing.T) (usecase.RatingUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockRatingRepository, *mockRepo.MockMangaRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	mangaRepo := mockRepo.NewMockMangaRepository(t)

	svc := NewRatingService(RatingServiceParams{
		TxManager:  txManager,
		RatingRepo: ratingRepo,
		MangaRepo:  mangaRepo,
		Logger:     newDiscardLogger(),
	})

	return svc, txManager, ratingRepo, mangaRepo
}

func TestRatingService_Rate(t *testing.T) {
	userID, mangaID := uuid.New(), uuid.New()

	t.Run("first rating counts for the user", func(t *testing.T) {
		svc, txManager, _, _ := createTestRatingService(t)

		txRatingRepo := mockRepo.NewMockRatingRepository(t)
		txMangaRepo := mockRepo.NewMockMangaRepository(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory := expectTransaction(t, txManager)
		factory.EXPECT().NewRatingRepository().Return(txRatingRepo)
		factory.EXPECT().NewMangaRepository().Return(txMangaRepo)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)

		txMangaRepo.EXPECT().FindByID(mock.Anything, mangaID).Return(&entity.Manga{ID: mangaID}, nil)
		txRatingRepo.EXPECT().FindByUserAndManga(mock.Anything, userID, mangaID).Return(nil, repository.ErrNotFound)
		txRatingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Rating")).Return(nil)
		txUserRepo.EXPECT().AdjustCounter(mock.Anything, userID, repository.UserRatingsCount, 1).Return(nil)
		txRatingRepo.EXPECT().Summary(mock.Anything, mangaID).Return(8.3333333, 3, nil)
		txMangaRepo.EXPECT().SetRatingSummary(mock.Anything, mangaID, 8.33, 3).Return(nil)

		rating, err := svc.Rate(context.Background(), userID, mangaID, &usecase.RateInput{Score: 7.5})

		require.NoError(t, err)
		assert.InDelta(t, 7.5, rating.Score, 0.0001)
	})

	t.Run("second rating replaces the first", func(t *testing.T) {
		svc, txManager, _, _ := createTestRatingService(t)
		existing := &entity.Rating{ID: uuid.New(), UserID: userID, MangaID: mangaID, Score: 4}

		txRatingRepo := mockRepo.NewMockRatingRepository(t)
		txMangaRepo := mockRepo.NewMockMangaRepository(t)
		factory := expectTransaction(t, txManager)
		factory.EXPECT().NewRatingRepository().Return(txRatingRepo)
		factory.EXPECT().NewMangaRepository().Return(txMangaRepo)

		txMangaRepo.EXPECT().FindByID(mock.Anything, mangaID).Return(&entity.Manga{ID: mangaID}, nil)
		txRatingRepo.EXPECT().FindByUserAndManga(mock.Anything, userID, mangaID).Return(existing, nil)
		txRatingRepo.EXPECT().Update(mock.Anything, existing).Return(nil)
		txRatingRepo.EXPECT().Summary(mock.Anything, mangaID).Return(9.0, 1, nil)
		txMangaRepo.EXPECT().SetRatingSummary(mock.Anything, mangaID, 9.0, 1).Return(nil)

		rating, err := svc.Rate(context.Background(), userID, mangaID, &usecase.RateInput{Score: 9, Review: ptr("better on reread")})

		require.NoError(t, err)
		assert.Equal(t, existing.ID, rating.ID)
		assert.Equal(t, "better on reread", *rating.Review)
	})
}

func TestRatingService_Delete(t *testing.T) {
	userID, mangaID := uuid.New(), uuid.New()

	t.Run("returns refreshed summary", func(t *testing.T) {
		svc, txManager, _, _ := createTestRatingService(t)
		existing := &entity.Rating{ID: uuid.New(), UserID: userID, MangaID: mangaID}

		txRatingRepo := mockRepo.NewMockRatingRepository(t)
		txMangaRepo := mockRepo.NewMockMangaRepository(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory := expectTransaction(t, txManager)
		factory.EXPECT().NewRatingRepository().Return(txRatingRepo)
		factory.EXPECT().NewMangaRepository().Return(txMangaRepo)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)

		txRatingRepo.EXPECT().FindByUserAndManga(mock.Anything, userID, mangaID).Return(existing, nil)
		txRatingRepo.EXPECT().Delete(mock.Anything, existing.ID).Return(nil)
		txUserRepo.EXPECT().AdjustCounter(mock.Anything, userID, repository.UserRatingsCount, -1).Return(nil)
		txRatingRepo.EXPECT().Summary(mock.Anything, mangaID).Return(0.0, 0, nil)
		txMangaRepo.EXPECT().SetRatingSummary(mock.Anything, mangaID, 0.0, 0).Return(nil)

		summary, err := svc.Delete(context.Background(), userID, mangaID)

		require.NoError(t, err)
		assert.Equal(t, &usecase.RatingSummary{AverageRating: 0, RatingCount: 0}, summary)
	})

	t.Run("nothing to delete", func(t *testing.T) {
		svc, txManager, _, _ := createTestRatingService(t)

		txRatingRepo := mockRepo.NewMockRatingRepository(t)
		factory := expectTransaction(t, txManager)
		factory.EXPECT().NewRatingRepository().Return(txRatingRepo)
		txRatingRepo.EXPECT().FindByUserAndManga(mock.Anything, userID, mangaID).Return(nil, repository.ErrNotFound)

		_, err := svc.Delete(context.Background(), userID, mangaID)

		assert.ErrorIs(t, err, domainerrors.ErrRatingNotFound)
	})
}

func TestRatingService_ListByManga(t *testing.T) {
	svc, _, ratingRepo, mangaRepo := createTestRatingService(t)
	mangaID := uuid.New()

	mangaRepo.EXPECT().FindByID(mock.Anything, mangaID).Return(&entity.Manga{ID: mangaID}, nil)
	ratingRepo.EXPECT().
		ListByManga(mock.Anything, mangaID, repository.PageRequest{Page: 2, Limit: 5}).
		Return([]*entity.Rating{{ID: uuid.New()}}, int64(6), nil)

	page, err := svc.ListByManga(context.Background(), mangaID, usecase.PageQuery{Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 1)
}
