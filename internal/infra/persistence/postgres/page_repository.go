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

// pageRepository implements repository.PageRepository using GORM.
type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository is the constructor for pageRepository.
func NewPageRepository(db *gorm.DB) repository.PageRepository {
	return &pageRepository{db: db}
}

// FindByID retrieves a page by id.
func (repo *pageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Page, error) {
	var row model.PageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to find page")
	}

	return toPageDomain(&row), nil
}

// ListByChapter lists a chapter's pages in reading order.
func (repo *pageRepository) ListByChapter(ctx context.Context, chapterID uuid.UUID) ([]*entity.Page, error) {
	var rows []model.PageModel
	if err := repo.db.WithContext(ctx).
		Where("chapter_id = ?", chapterID).
		Order("number ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pages")
	}

	pages := make([]*entity.Page, 0, len(rows))
	for i := range rows {
		pages = append(pages, toPageDomain(&rows[i]))
	}

	return pages, nil
}

// MaxNumber returns the highest page number of a chapter.
func (repo *pageRepository) MaxNumber(ctx context.Context, chapterID uuid.UUID) (int, error) {
	var maxNumber int
	if err := repo.db.WithContext(ctx).Model(&model.PageModel{}).
		Where("chapter_id = ?", chapterID).
		Select("COALESCE(MAX(number), 0)").
		Scan(&maxNumber).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read last page number")
	}

	return maxNumber, nil
}

// CreateMany persists pages in one statement.
func (repo *pageRepository) CreateMany(ctx context.Context, pages []*entity.Page) error {
	if len(pages) == 0 {
		return nil
	}

	rows := make([]*model.PageModel, 0, len(pages))
	for _, page := range pages {
		rows = append(rows, fromPageDomain(page))
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pages")
	}

	for i, row := range rows {
		pages[i].ID = row.ID
		pages[i].CreatedAt = row.CreatedAt
		pages[i].UpdatedAt = row.UpdatedAt
	}

	return nil
}

// SoftDelete marks a page deleted.
func (repo *pageRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PageModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete page")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func toPageDomain(data *model.PageModel) *entity.Page {
	return &entity.Page{
		ID:           data.ID,
		ChapterID:    data.ChapterID,
		Number:       data.Number,
		ImageURL:     data.ImageURL,
		ThumbnailURL: data.ThumbnailURL,
		StorageKey:   data.StorageKey,
		Width:        data.Width,
		Height:       data.Height,
		FileSize:     data.FileSize,
		Format:       data.Format,
		Hash:         data.Hash,
		IsActive:     data.IsActive,
		IsProcessed:  data.IsProcessed,
		CreatedByID:  data.CreatedByID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPageDomain(data *entity.Page) *model.PageModel {
	return &model.PageModel{
		ID:           data.ID,
		ChapterID:    data.ChapterID,
		Number:       data.Number,
		ImageURL:     data.ImageURL,
		ThumbnailURL: data.ThumbnailURL,
		StorageKey:   data.StorageKey,
		Width:        data.Width,
		Height:       data.Height,
		FileSize:     data.FileSize,
		Format:       data.Format,
		Hash:         data.Hash,
		IsActive:     data.IsActive,
		IsProcessed:  data.IsProcessed,
		CreatedByID:  data.CreatedByID,
		UpdatedByID:  data.CreatedByID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
