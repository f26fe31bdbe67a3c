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

func createTestTagService(t *testing.T) (usecase.TagUsecase, *mockRepo.MockTagRepository) {
	repo := mockRepo.NewMockTagRepository(t)

	return NewTagService(TagServiceParams{TagRepo: repo, Logger: newDiscardLogger()}), repo
}

func TestTagService_Create(t *testing.T) {
	t.Run("defaults to an active genre", func(t *testing.T) {
		svc, repo := createTestTagService(t)
		actorID := uuid.New()

		repo.EXPECT().ExistsByNameOrSlug(mock.Anything, "Slice of Life", "slice-of-life", (*uuid.UUID)(nil)).Return(false, nil)
		repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Tag")).Return(nil)

		tag, err := svc.Create(context.Background(), actorID, &usecase.TagInput{Name: " Slice of Life "})

		require.NoError(t, err)
		assert.Equal(t, "slice-of-life", tag.Slug)
		assert.Equal(t, entity.TagTypeGenre, tag.Type)
		assert.True(t, tag.IsActive)
		assert.Equal(t, &actorID, tag.CreatedByID)
	})

	t.Run("name taken", func(t *testing.T) {
		svc, repo := createTestTagService(t)

		repo.EXPECT().ExistsByNameOrSlug(mock.Anything, "Action", "action", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := svc.Create(context.Background(), uuid.New(), &usecase.TagInput{Name: "Action"})

		assert.ErrorIs(t, err, domainerrors.ErrTagExists)
	})

	t.Run("symbols only falls back", func(t *testing.T) {
		svc, repo := createTestTagService(t)

		repo.EXPECT().ExistsByNameOrSlug(mock.Anything, "!!!", "tag", (*uuid.UUID)(nil)).Return(false, nil)
		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

		_, err := svc.Create(context.Background(), uuid.New(), &usecase.TagInput{Name: "!!!"})

		assert.ErrorIs(t, err, domainerrors.ErrTagExists)
	})
}

func TestTagService_Update_ExcludesItself(t *testing.T) {
	svc, repo := createTestTagService(t)
	tag := &entity.Tag{ID: uuid.New(), Name: "Romance", Slug: "romance", Type: entity.TagTypeGenre, IsActive: true}
	themeType := entity.TagTypeTheme

	repo.EXPECT().FindByID(mock.Anything, tag.ID).Return(tag, nil)
	repo.EXPECT().ExistsByNameOrSlug(mock.Anything, "Romance", "romance", &tag.ID).Return(false, nil)
	repo.EXPECT().Update(mock.Anything, tag).Return(nil)

	updated, err := svc.Update(context.Background(), tag.ID, &usecase.TagInput{Name: "Romance", Type: &themeType})

	require.NoError(t, err)
	assert.Equal(t, entity.TagTypeTheme, updated.Type)
}

func TestTagService_GetBySlug(t *testing.T) {
	svc, repo := createTestTagService(t)

	repo.EXPECT().FindBySlug(mock.Anything, "isekai").Return(nil, repository.ErrNotFound)

	_, err := svc.GetBySlug(context.Background(), " ISEKAI ")

	assert.ErrorIs(t, err, domainerrors.ErrTagNotFound)
}

func TestTagService_Delete(t *testing.T) {
	svc, repo := createTestTagService(t)
	id := uuid.New()

	repo.EXPECT().SoftDelete(mock.Anything, id).Return(repository.ErrNotFound)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrTagNotFound)
}
