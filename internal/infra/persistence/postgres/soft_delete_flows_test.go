package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mangahub/internal/domain/entity"
	"mangahub/internal/domain/repository"
	"mangahub/internal/infra/persistence/model"
	"mangahub/internal/usecase"
	"mangahub/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestCommentService(db *gorm.DB) usecase.CommentUsecase {
	return impl.NewCommentService(impl.CommentServiceParams{
		TxManager:   NewTransactionManager(db),
		CommentRepo: NewCommentRepository(db),
		MangaRepo:   NewMangaRepository(db),
		ChapterRepo: NewChapterRepository(db),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func unscopedUser(t *testing.T, db *gorm.DB, user *entity.User) model.UserModel {
	t.Helper()

	var row model.UserModel
	require.NoError(t, db.Unscoped().Where("id = ?", user.ID).First(&row).Error)

	return row
}

func unscopedManga(t *testing.T, db *gorm.DB, manga *entity.Manga) model.MangaModel {
	t.Helper()

	var row model.MangaModel
	require.NoError(t, db.Unscoped().Where("id = ?", manga.ID).First(&row).Error)

	return row
}

func TestCounters_AdjustSoftDeletedRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "reader")
	manga := seedManga(t, db, "Monster", "monster", false)
	chapter := &entity.Chapter{MangaID: manga.ID, Number: 1, Slug: "monster-chapter-1", IsActive: true}
	require.NoError(t, NewChapterRepository(db).Create(ctx, chapter))

	require.NoError(t, NewUserRepository(db).AdjustCounter(ctx, user.ID, repository.UserCommentsCount, 2))
	require.NoError(t, NewUserRepository(db).SoftDelete(ctx, user.ID))
	require.NoError(t, NewMangaRepository(db).SoftDelete(ctx, manga.ID))
	require.NoError(t, NewChapterRepository(db).SoftDelete(ctx, chapter.ID))

	require.NoError(t, NewUserRepository(db).AdjustCounter(ctx, user.ID, repository.UserCommentsCount, -1))
	require.NoError(t, NewMangaRepository(db).AdjustCounter(ctx, manga.ID, repository.MangaFavoriteCount, 1))
	require.NoError(t, NewChapterRepository(db).AdjustCounter(ctx, chapter.ID, repository.ChapterCommentCount, 1))

	assert.Equal(t, 1, unscopedUser(t, db, user).CommentsCount)
	assert.Equal(t, 1, unscopedManga(t, db, manga).FavoriteCount)

	var chapterRow model.ChapterModel
	require.NoError(t, db.Unscoped().Where("id = ?", chapter.ID).First(&chapterRow).Error)
	assert.Equal(t, 1, chapterRow.CommentCount)

	// Rows that never existed are still reported.
	assert.ErrorIs(t, NewUserRepository(db).AdjustCounter(ctx, manga.ID, repository.UserCommentsCount, 1), repository.ErrNotFound)
}

func TestCommentService_DeleteThreadWithSoftDeletedReplier(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := seedUser(t, db, "author")
	replier := seedUser(t, db, "replier")
	manga := seedManga(t, db, "Monster", "monster", false)
	comments := newTestCommentService(db)

	root, err := comments.Create(ctx, author, &usecase.CreateCommentInput{Content: "root", MangaID: &manga.ID})
	require.NoError(t, err)
	_, err = comments.Create(ctx, replier, &usecase.CreateCommentInput{Content: "reply", MangaID: &manga.ID, ParentCommentID: &root.ID})
	require.NoError(t, err)

	require.NoError(t, NewUserRepository(db).SoftDelete(ctx, replier.ID))

	require.NoError(t, comments.Delete(ctx, author, root.ID))

	_, err = NewCommentRepository(db).FindByID(ctx, root.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Zero(t, unscopedUser(t, db, author).CommentsCount)
	assert.Zero(t, unscopedUser(t, db, replier).CommentsCount)
	assert.Zero(t, unscopedManga(t, db, manga).CommentCount)
}

func TestCommentService_DeleteOnSoftDeletedManga(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := seedUser(t, db, "author")
	manga := seedManga(t, db, "Monster", "monster", false)
	comments := newTestCommentService(db)

	comment, err := comments.Create(ctx, author, &usecase.CreateCommentInput{Content: "root", MangaID: &manga.ID})
	require.NoError(t, err)

	require.NoError(t, NewMangaRepository(db).SoftDelete(ctx, manga.ID))

	require.NoError(t, comments.Delete(ctx, author, comment.ID))
	assert.Zero(t, unscopedManga(t, db, manga).CommentCount)
}

func TestLibraryService_RemoveFavoriteOfSoftDeletedManga(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "reader")
	manga := seedManga(t, db, "Monster", "monster", false)
	library := impl.NewLibraryService(impl.LibraryServiceParams{
		TxManager:    NewTransactionManager(db),
		FavoriteRepo: NewFavoriteRepository(db),
		HistoryRepo:  NewHistoryRepository(db),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, err := library.AddFavorite(ctx, user.ID, manga.ID)
	require.NoError(t, err)

	require.NoError(t, NewMangaRepository(db).SoftDelete(ctx, manga.ID))

	require.NoError(t, library.RemoveFavorite(ctx, user.ID, manga.ID))
	assert.Zero(t, unscopedUser(t, db, user).FavoritesCount)
	assert.Zero(t, unscopedManga(t, db, manga).FavoriteCount)
}
