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

// historyRepository implements repository.HistoryRepository using GORM.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

// FindByUserAndManga retrieves a user's progress on a manga.
func (repo *historyRepository) FindByUserAndManga(ctx context.Context, userID, mangaID uuid.UUID) (*entity.ReadingHistory, error) {
	var row model.ReadingHistoryModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND manga_id = ?", userID, mangaID).
		First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to find reading history")
	}

	return toHistoryDomain(&row), nil
}

// ListByUser returns one page of a user's history, most recently read first.
func (repo *historyRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	status *entity.HistoryStatus,
	page repository.PageRequest,
) ([]*entity.ReadingHistory, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReadingHistoryModel{}).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reading history")
	}

	var rows []model.ReadingHistoryModel
	if err := query.Preload("Manga").
		Order("last_read_at DESC").Order("id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reading history")
	}

	entries := make([]*entity.ReadingHistory, 0, len(rows))
	for i := range rows {
		entries = append(entries, toHistoryDomain(&rows[i]))
	}

	return entries, total, nil
}

// Create persists a new history entry.
func (repo *historyRepository) Create(ctx context.Context, history *entity.ReadingHistory) error {
	row := fromHistoryDomain(history)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return errors.Wrap(repository.ErrDuplicate, "reading history already exists")
		case isForeignKeyConstraintViolation(err):
			return repository.ErrNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reading history")
	}

	history.ID = row.ID
	history.CreatedAt = row.CreatedAt
	history.UpdatedAt = row.UpdatedAt

	return nil
}

// Update writes the progress columns of a history entry.
func (repo *historyRepository) Update(ctx context.Context, history *entity.ReadingHistory) error {
	result := repo.db.WithContext(ctx).Model(&model.ReadingHistoryModel{}).
		Where("id = ?", history.ID).
		Updates(map[string]any{
			"last_chapter_read_id": history.LastChapterReadID,
			"last_page_read_id":    history.LastPageReadID,
			"chapters_read":        history.ChaptersRead,
			"pages_read":           history.PagesRead,
			"last_read_at":         history.LastReadAt,
			"status":               string(history.Status),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reading history")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the entry and reports whether one existed.
func (repo *historyRepository) Delete(ctx context.Context, userID, mangaID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND manga_id = ?", userID, mangaID).
		Delete(&model.ReadingHistoryModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete reading history")
	}

	return result.RowsAffected > 0, nil
}

func toHistoryDomain(data *model.ReadingHistoryModel) *entity.ReadingHistory {
	history := &entity.ReadingHistory{
		ID:                data.ID,
		UserID:            data.UserID,
		MangaID:           data.MangaID,
		LastChapterReadID: data.LastChapterReadID,
		LastPageReadID:    data.LastPageReadID,
		ChaptersRead:      data.ChaptersRead,
		PagesRead:         data.PagesRead,
		LastReadAt:        data.LastReadAt,
		Status:            entity.HistoryStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if data.Manga.ID != uuid.Nil {
		history.Manga = toMangaDomain(&data.Manga)
	}

	return history
}

func fromHistoryDomain(data *entity.ReadingHistory) *model.ReadingHistoryModel {
	status := data.Status
	if status == "" {
		status = entity.HistoryReading
	}

	return &model.ReadingHistoryModel{
		ID:                data.ID,
		UserID:            data.UserID,
		MangaID:           data.MangaID,
		LastChapterReadID: data.LastChapterReadID,
		LastPageReadID:    data.LastPageReadID,
		ChaptersRead:      data.ChaptersRead,
		PagesRead:         data.PagesRead,
		LastReadAt:        data.LastReadAt,
		Status:            string(status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
