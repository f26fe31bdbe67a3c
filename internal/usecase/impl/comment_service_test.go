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

type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	txManager   *mockRepo.MockTransactionManager
	commentRepo *mockRepo.MockCommentRepository
	mangaRepo   *mockRepo.MockMangaRepository
	chapterRepo *mockRepo.MockChapterRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	fx := commentServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		commentRepo: mockRepo.NewMockCommentRepository(t),
		mangaRepo:   mockRepo.NewMockMangaRepository(t),
		chapterRepo: mockRepo.NewMockChapterRepository(t),
	}
	fx.service = NewCommentService(CommentServiceParams{
		TxManager:   fx.txManager,
		CommentRepo: fx.commentRepo,
		MangaRepo:   fx.mangaRepo,
		ChapterRepo: fx.chapterRepo,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestCommentService_Create_RequiresSingleContext(t *testing.T) {
	mangaID, chapterID := uuid.New(), uuid.New()

	tests := []struct {
		name  string
		input *usecase.CreateCommentInput
	}{
		{name: "neither", input: &usecase.CreateCommentInput{Content: "hi"}},
		{name: "both", input: &usecase.CreateCommentInput{Content: "hi", MangaID: &mangaID, ChapterID: &chapterID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommentService(t)

			_, err := fx.service.Create(context.Background(), newTestUser(entity.RoleUser), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrCommentContext)
		})
	}
}

func TestCommentService_Create_Reply(t *testing.T) {
	fx := createTestCommentService(t)
	author := newTestUser(entity.RoleUser)
	mangaID := uuid.New()
	parent := &entity.Comment{ID: uuid.New(), MangaID: &mangaID, UserID: uuid.New()}

	txCommentRepo := mockRepo.NewMockCommentRepository(t)
	txMangaRepo := mockRepo.NewMockMangaRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := expectTransaction(t, fx.txManager)
	factory.EXPECT().NewCommentRepository().Return(txCommentRepo)
	factory.EXPECT().NewMangaRepository().Return(txMangaRepo)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	txMangaRepo.EXPECT().FindByID(mock.Anything, mangaID).Return(&entity.Manga{ID: mangaID}, nil)
	txCommentRepo.EXPECT().FindByID(mock.Anything, parent.ID).Return(parent, nil)
	txCommentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Comment")).Return(nil)
	txCommentRepo.EXPECT().AdjustReplyCount(mock.Anything, parent.ID, 1).Return(nil)
	txMangaRepo.EXPECT().AdjustCounter(mock.Anything, mangaID, repository.MangaCommentCount, 1).Return(nil)
	txUserRepo.EXPECT().AdjustCounter(mock.Anything, author.ID, repository.UserCommentsCount, 1).Return(nil)

	comment, err := fx.service.Create(context.Background(), author, &usecase.CreateCommentInput{
		MangaID:         &mangaID,
		Content:         "  agreed  ",
		ParentCommentID: &parent.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "agreed", comment.Content)
	assert.True(t, comment.IsActive)
}

func TestCommentService_Create_ReplyOnOtherChapter(t *testing.T) {
	fx := createTestCommentService(t)
	chapterID, otherChapterID := uuid.New(), uuid.New()
	parent := &entity.Comment{ID: uuid.New(), ChapterID: &otherChapterID}

	txCommentRepo := mockRepo.NewMockCommentRepository(t)
	txChapterRepo := mockRepo.NewMockChapterRepository(t)
	factory := expectTransaction(t, fx.txManager)
	factory.EXPECT().NewCommentRepository().Return(txCommentRepo)
	factory.EXPECT().NewChapterRepository().Return(txChapterRepo)

	txChapterRepo.EXPECT().FindByID(mock.Anything, chapterID).Return(&entity.Chapter{ID: chapterID}, nil)
	txCommentRepo.EXPECT().FindByID(mock.Anything, parent.ID).Return(parent, nil)

	_, err := fx.service.Create(context.Background(), newTestUser(entity.RoleUser), &usecase.CreateCommentInput{
		ChapterID:       &chapterID,
		Content:         "wrong thread",
		ParentCommentID: &parent.ID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCommentParentContext)
}

func TestCommentService_GetThread_Empty(t *testing.T) {
	fx := createTestCommentService(t)
	id := uuid.New()

	fx.commentRepo.EXPECT().ListSubtree(mock.Anything, id).Return([]*entity.Comment{}, nil)

	_, err := fx.service.GetThread(context.Background(), nil, id)

	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}

func TestCommentService_Update(t *testing.T) {
	t.Run("owner edits", func(t *testing.T) {
		fx := createTestCommentService(t)
		author := newTestUser(entity.RoleUser)
		comment := &entity.Comment{ID: uuid.New(), UserID: author.ID, Content: "old"}

		fx.commentRepo.EXPECT().FindByID(mock.Anything, comment.ID).Return(comment, nil)
		fx.commentRepo.EXPECT().Update(mock.Anything, comment).Return(nil)

		updated, err := fx.service.Update(context.Background(), author, comment.ID, &usecase.UpdateCommentInput{Content: ptr("new")})

		require.NoError(t, err)
		assert.Equal(t, "new", updated.Content)
		assert.True(t, updated.IsEdited)
	})

	t.Run("moderators cannot edit others", func(t *testing.T) {
		fx := createTestCommentService(t)
		comment := &entity.Comment{ID: uuid.New(), UserID: uuid.New()}

		fx.commentRepo.EXPECT().FindByID(mock.Anything, comment.ID).Return(comment, nil)

		_, err := fx.service.Update(context.Background(), newTestUser(entity.RoleModerator), comment.ID, &usecase.UpdateCommentInput{Content: ptr("x")})

		assert.ErrorIs(t, err, domainerrors.ErrCommentNotOwner)
	})
}

func TestCommentService_Delete_RollsBackSubtreeCounters(t *testing.T) {
	fx := createTestCommentService(t)
	moderator := newTestUser(entity.RoleModerator)
	mangaID := uuid.New()
	parentID := uuid.New()
	authorA, authorB := uuid.New(), uuid.New()
	root := &entity.Comment{ID: uuid.New(), MangaID: &mangaID, UserID: authorA, ParentCommentID: &parentID}
	removed := []*entity.Comment{
		root,
		{ID: uuid.New(), MangaID: &mangaID, UserID: authorB},
		{ID: uuid.New(), MangaID: &mangaID, UserID: authorA},
	}

	txCommentRepo := mockRepo.NewMockCommentRepository(t)
	txMangaRepo := mockRepo.NewMockMangaRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := expectTransaction(t, fx.txManager)
	factory.EXPECT().NewCommentRepository().Return(txCommentRepo)
	factory.EXPECT().NewMangaRepository().Return(txMangaRepo)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	txCommentRepo.EXPECT().FindByID(mock.Anything, root.ID).Return(root, nil)
	txCommentRepo.EXPECT().DeleteSubtree(mock.Anything, root.ID).Return(removed, nil)
	txCommentRepo.EXPECT().AdjustReplyCount(mock.Anything, parentID, -1).Return(nil)
	txMangaRepo.EXPECT().AdjustCounter(mock.Anything, mangaID, repository.MangaCommentCount, -3).Return(nil)
	txUserRepo.EXPECT().AdjustCounter(mock.Anything, authorA, repository.UserCommentsCount, -2).Return(nil)
	txUserRepo.EXPECT().AdjustCounter(mock.Anything, authorB, repository.UserCommentsCount, -1).Return(nil)

	require.NoError(t, fx.service.Delete(context.Background(), moderator, root.ID))
}

func TestCommentService_Delete_NotOwner(t *testing.T) {
	fx := createTestCommentService(t)
	comment := &entity.Comment{ID: uuid.New(), UserID: uuid.New()}

	txCommentRepo := mockRepo.NewMockCommentRepository(t)
	factory := expectTransaction(t, fx.txManager)
	factory.EXPECT().NewCommentRepository().Return(txCommentRepo)
	txCommentRepo.EXPECT().FindByID(mock.Anything, comment.ID).Return(comment, nil)

	err := fx.service.Delete(context.Background(), newTestUser(entity.RoleUser), comment.ID)

	assert.ErrorIs(t, err, domainerrors.ErrCommentNotOwner)
}

func TestCommentService_ListByChapter_MissingChapter(t *testing.T) {
	fx := createTestCommentService(t)
	chapterID := uuid.New()

	fx.chapterRepo.EXPECT().FindByID(mock.Anything, chapterID).Return(nil, repository.ErrNotFound)

	_, err := fx.service.ListByChapter(context.Background(), nil, chapterID, usecase.PageQuery{})

	assert.ErrorIs(t, err, domainerrors.ErrChapterNotFound)
}

func TestCommentService_ListByManga_MatureGate(t *testing.T) {
	manga := newTestManga()
	manga.IsMature = true

	t.Run("anonymous refused", func(t *testing.T) {
		fx := createTestCommentService(t)
		fx.mangaRepo.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)

		_, err := fx.service.ListByManga(context.Background(), nil, manga.ID, usecase.PageQuery{})

		assert.ErrorIs(t, err, domainerrors.ErrMatureContentNotAllowed)
	})

	t.Run("opted-in reader", func(t *testing.T) {
		fx := createTestCommentService(t)
		fx.mangaRepo.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)
		fx.commentRepo.EXPECT().
			ListTopLevel(mock.Anything, mock.MatchedBy(func(filter repository.CommentListFilter) bool {
				return filter.MangaID != nil && *filter.MangaID == manga.ID
			})).
			Return([]*entity.Comment{{ID: uuid.New()}}, int64(1), nil)

		page, err := fx.service.ListByManga(context.Background(), newTestUser(entity.RoleUser), manga.ID, usecase.PageQuery{})

		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
	})
}

func TestCommentService_ListByChapter_Visibility(t *testing.T) {
	t.Run("draft chapter hidden from readers", func(t *testing.T) {
		fx := createTestCommentService(t)
		chapter := &entity.Chapter{ID: uuid.New(), MangaID: uuid.New(), IsActive: true}

		fx.chapterRepo.EXPECT().FindByID(mock.Anything, chapter.ID).Return(chapter, nil)

		_, err := fx.service.ListByChapter(context.Background(), newTestUser(entity.RoleUser), chapter.ID, usecase.PageQuery{})

		assert.ErrorIs(t, err, domainerrors.ErrChapterNotFound)
	})

	t.Run("chapter of a mature manga refused to anonymous viewers", func(t *testing.T) {
		fx := createTestCommentService(t)
		manga := newTestManga()
		manga.IsMature = true
		published := fixedNow
		chapter := &entity.Chapter{ID: uuid.New(), MangaID: manga.ID, IsActive: true, PublishedAt: &published}

		fx.chapterRepo.EXPECT().FindByID(mock.Anything, chapter.ID).Return(chapter, nil)
		fx.mangaRepo.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)

		_, err := fx.service.ListByChapter(context.Background(), nil, chapter.ID, usecase.PageQuery{})

		assert.ErrorIs(t, err, domainerrors.ErrMatureContentNotAllowed)
	})
}

func TestCommentService_GetThread_MatureGate(t *testing.T) {
	fx := createTestCommentService(t)
	manga := newTestManga()
	manga.IsMature = true
	root := &entity.Comment{ID: uuid.New(), MangaID: &manga.ID, UserID: uuid.New()}

	fx.commentRepo.EXPECT().ListSubtree(mock.Anything, root.ID).Return([]*entity.Comment{root}, nil)
	fx.mangaRepo.EXPECT().FindByID(mock.Anything, manga.ID).Return(manga, nil)

	_, err := fx.service.GetThread(context.Background(), nil, root.ID)

	assert.ErrorIs(t, err, domainerrors.ErrMatureContentNotAllowed)
}
