package postgres

import (
	"context"
	"math"

	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements repository.RatingRepository using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// FindByUserAndManga retrieves the rating a user gave a manga.
func (repo *ratingRepository) FindByUserAndManga(ctx context.Context, userID, mangaID uuid.UUID) (*entity.Rating, error) {
	var row model.RatingModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND manga_id = ?", userID, mangaID).
		First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to find rating")
	}

	return toRatingDomain(&row), nil
}

// ListByManga returns one page of a manga's ratings, newest first.
func (repo *ratingRepository) ListByManga(ctx context.Context, mangaID uuid.UUID, page repository.PageRequest) ([]*entity.Rating, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.RatingModel{}).Where("manga_id = ?", mangaID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count ratings")
	}

	var rows []model.RatingModel
	if err := query.Order("created_at DESC").Order("id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list ratings")
	}

	ratings := make([]*entity.Rating, 0, len(rows))
	for i := range rows {
		ratings = append(ratings, toRatingDomain(&rows[i]))
	}

	return ratings, total, nil
}

// Create persists a new rating.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	row := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return errors.Wrap(repository.ErrDuplicate, "rating already exists")
		case isForeignKeyConstraintViolation(err):
			return repository.ErrNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = row.ID
	rating.CreatedAt = row.CreatedAt
	rating.UpdatedAt = row.UpdatedAt

	return nil
}

// Update rewrites the score and review of a rating.
func (repo *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	result := repo.db.WithContext(ctx).Model(&model.RatingModel{}).
		Where("id = ?", rating.ID).
		Updates(map[string]any{"score": rating.Score, "review": rating.Review})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a rating.
func (repo *ratingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RatingModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Summary returns the average score, rounded to two decimals, and the number of ratings of a manga.
func (repo *ratingRepository) Summary(ctx context.Context, mangaID uuid.UUID) (float64, int, error) {
	var summary struct {
		Average *float64
		Total   int
	}
	if err := repo.db.WithContext(ctx).Model(&model.RatingModel{}).
		Select("AVG(score) AS average, COUNT(*) AS total").
		Where("manga_id = ?", mangaID).
		Scan(&summary).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to summarize ratings")
	}

	if summary.Average == nil {
		return 0, summary.Total, nil
	}

	return math.Round(*summary.Average*100) / 100, summary.Total, nil
}

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	return &entity.Rating{
		ID:        data.ID,
		UserID:    data.UserID,
		MangaID:   data.MangaID,
		Score:     data.Score,
		Review:    data.Review,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	return &model.RatingModel{
		ID:        data.ID,
		UserID:    data.UserID,
		MangaID:   data.MangaID,
		Score:     data.Score,
		Review:    data.Review,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
