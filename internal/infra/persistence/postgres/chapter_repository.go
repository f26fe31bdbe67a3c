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

// chapterRepository implements repository.ChapterRepository using GORM.
type chapterRepository struct {
	db *gorm.DB
}

// NewChapterRepository is the constructor for chapterRepository.
func NewChapterRepository(db *gorm.DB) repository.ChapterRepository {
	return &chapterRepository{db: db}
}

// FindByID retrieves a chapter by id.
func (repo *chapterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Chapter, error) {
	var row model.ChapterModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to find chapter")
	}

	return toChapterDomain(&row), nil
}

// FindByMangaAndNumber retrieves a chapter by its position within a manga, including soft-deleted rows
// because the unique index covers them too.
func (repo *chapterRepository) FindByMangaAndNumber(ctx context.Context, mangaID uuid.UUID, number float64) (*entity.Chapter, error) {
	var row model.ChapterModel
	if err := repo.db.WithContext(ctx).Unscoped().
		Where("manga_id = ? AND number = ?", mangaID, number).
		First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to find chapter by number")
	}

	return toChapterDomain(&row), nil
}

// FindLatest returns the highest-numbered chapter of a manga.
func (repo *chapterRepository) FindLatest(ctx context.Context, mangaID uuid.UUID) (*entity.Chapter, error) {
	var row model.ChapterModel
	if err := repo.db.WithContext(ctx).
		Where("manga_id = ?", mangaID).
		Order("number DESC").
		First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to find latest chapter")
	}

	return toChapterDomain(&row), nil
}

// ListByManga lists chapters ordered by number.
func (repo *chapterRepository) ListByManga(ctx context.Context, mangaID uuid.UUID, publishedOnly bool) ([]*entity.Chapter, error) {
	query := repo.db.WithContext(ctx).Where("manga_id = ?", mangaID)
	if publishedOnly {
		query = query.Where("published_at IS NOT NULL AND is_active = ?", true)
	}

	var rows []model.ChapterModel
	if err := query.Order("number ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chapters")
	}

	chapters := make([]*entity.Chapter, 0, len(rows))
	for i := range rows {
		chapters = append(chapters, toChapterDomain(&rows[i]))
	}

	return chapters, nil
}

// Create persists a new chapter.
func (repo *chapterRepository) Create(ctx context.Context, chapter *entity.Chapter) error {
	row := fromChapterDomain(chapter)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicate, "chapter already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chapter")
	}

	chapter.ID = row.ID
	chapter.CreatedAt = row.CreatedAt
	chapter.UpdatedAt = row.UpdatedAt

	return nil
}

// Update writes the editable columns of a chapter.
func (repo *chapterRepository) Update(ctx context.Context, chapter *entity.Chapter) error {
	row := fromChapterDomain(chapter)

	result := repo.db.WithContext(ctx).Model(row).Select("*").
		Omit("id", "manga_id", "created_at", "deleted_at", "created_by_id", "view_count", "page_count", "comment_count", "Manga").
		Updates(row)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrDuplicate, "chapter already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update chapter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	chapter.UpdatedAt = row.UpdatedAt

	return nil
}

// SoftDelete marks a chapter deleted.
func (repo *chapterRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ChapterModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete chapter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// AdjustCounter adds delta to a denormalized chapter counter.
func (repo *chapterRepository) AdjustCounter(ctx context.Context, id uuid.UUID, counter repository.ChapterCounter, delta int) error {
	return adjustColumn(repo.db.WithContext(ctx), &model.ChapterModel{}, id, string(counter), delta)
}

func toChapterDomain(data *model.ChapterModel) *entity.Chapter {
	return &entity.Chapter{
		ID:           data.ID,
		MangaID:      data.MangaID,
		Number:       data.Number,
		Title:        data.Title,
		Slug:         data.Slug,
		Description:  data.Description,
		PublishedAt:  data.PublishedAt,
		ViewCount:    data.ViewCount,
		PageCount:    data.PageCount,
		CommentCount: data.CommentCount,
		IsActive:     data.IsActive,
		CreatedByID:  data.CreatedByID,
		UpdatedByID:  data.UpdatedByID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromChapterDomain(data *entity.Chapter) *model.ChapterModel {
	return &model.ChapterModel{
		ID:           data.ID,
		MangaID:      data.MangaID,
		Number:       data.Number,
		Title:        data.Title,
		Slug:         data.Slug,
		Description:  data.Description,
		PublishedAt:  data.PublishedAt,
		ViewCount:    data.ViewCount,
		PageCount:    data.PageCount,
		CommentCount: data.CommentCount,
		IsActive:     data.IsActive,
		CreatedByID:  data.CreatedByID,
		UpdatedByID:  data.UpdatedByID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
