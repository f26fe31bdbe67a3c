package postgres

import (
	"context"

	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements repository.FavoriteRepository using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Exists reports whether the user has favorited the manga.
func (repo *favoriteRepository) Exists(ctx context.Context, userID, mangaID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.FavoriteModel{}).
		Where("user_id = ? AND manga_id = ?", userID, mangaID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}

// Create persists a new favorite.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	row := &model.FavoriteModel{
		ID:      favorite.ID,
		UserID:  favorite.UserID,
		MangaID: favorite.MangaID,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return errors.Wrap(repository.ErrDuplicate, "favorite already exists")
		case isForeignKeyConstraintViolation(err):
			return repository.ErrNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = row.ID
	favorite.CreatedAt = row.CreatedAt

	return nil
}

// Delete removes the favorite and reports whether one existed.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, mangaID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND manga_id = ?", userID, mangaID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete favorite")
	}

	return result.RowsAffected > 0, nil
}

// ListByUser returns one page of a user's favorites with their mangas, newest first.
func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID, page repository.PageRequest) ([]*entity.Favorite, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.FavoriteModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count favorites")
	}

	var rows []model.FavoriteModel
	if err := query.Preload("Manga").Preload("Manga.Tags").
		Order("created_at DESC").Order("id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(rows))
	for i := range rows {
		favorite := &entity.Favorite{
			ID:        rows[i].ID,
			UserID:    rows[i].UserID,
			MangaID:   rows[i].MangaID,
			CreatedAt: rows[i].CreatedAt,
		}
		if rows[i].Manga.ID != uuid.Nil {
			favorite.Manga = toMangaDomain(&rows[i].Manga)
		}
		favorites = append(favorites, favorite)
	}

	return favorites, total, nil
}
