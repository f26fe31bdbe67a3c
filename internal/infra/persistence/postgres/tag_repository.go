package postgres

import (
	"context"
	"strings"

	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tagRepository implements repository.TagRepository using GORM.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// FindByID retrieves a tag by id.
func (repo *tagRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	var row model.TagModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to find tag")
	}

	return toTagDomain(&row), nil
}

// FindBySlug retrieves a tag by slug.
func (repo *tagRepository) FindBySlug(ctx context.Context, slug string) (*entity.Tag, error) {
	var row model.TagModel
	if err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to find tag by slug")
	}

	return toTagDomain(&row), nil
}

// FindByIDs retrieves every existing tag among ids.
func (repo *tagRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Tag, error) {
	if len(ids) == 0 {
		return []*entity.Tag{}, nil
	}

	var rows []model.TagModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tags")
	}

	return toTagsDomain(rows), nil
}

// ExistsByNameOrSlug reports whether another tag, deleted or not, already uses the name or slug.
func (repo *tagRepository) ExistsByNameOrSlug(ctx context.Context, name, slug string, excludeID *uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).Unscoped().Model(&model.TagModel{}).
		Where("(LOWER(name) = ? OR slug = ?)", strings.ToLower(name), slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check tag uniqueness")
	}

	return count > 0, nil
}

// List returns tags by name, optionally narrowed by type and search.
func (repo *tagRepository) List(ctx context.Context, filter repository.TagListFilter) ([]*entity.Tag, error) {
	query := repo.db.WithContext(ctx).Where("is_active = ?", true)
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Search != "" {
		cond, args := searchCondition(repo.db, filter.Search, "name")
		query = query.Where(cond, args...)
	}

	var rows []model.TagModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return toTagsDomain(rows), nil
}

// Create persists a new tag.
func (repo *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	row := fromTagDomain(tag)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicate, "tag already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tag")
	}

	tag.ID = row.ID
	tag.CreatedAt = row.CreatedAt
	tag.UpdatedAt = row.UpdatedAt

	return nil
}

// Update writes the editable columns of a tag.
func (repo *tagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	row := fromTagDomain(tag)

	result := repo.db.WithContext(ctx).Model(row).Select("*").
		Omit("id", "created_at", "deleted_at", "created_by_id", "usage_count").
		Updates(row)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrDuplicate, "tag already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	tag.UpdatedAt = row.UpdatedAt

	return nil
}

// SoftDelete marks a tag deleted and unlinks it from mangas.
func (repo *tagRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	result := db.Where("id = ?", id).Delete(&model.TagModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete tag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	if err := db.Exec("DELETE FROM manga_tags WHERE tag_id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to unlink tag")
	}

	return nil
}

// AdjustUsage adds delta to the usage counter of every tag in ids.
func (repo *tagRepository) AdjustUsage(ctx context.Context, ids []uuid.UUID, delta int) error {
	if len(ids) == 0 || delta == 0 {
		return nil
	}

	column := clause.Column{Name: "usage_count"}
	err := repo.db.WithContext(ctx).Model(&model.TagModel{}).
		Where("id IN ?", ids).
		UpdateColumn("usage_count", gorm.Expr("CASE WHEN ? + ? < 0 THEN 0 ELSE ? + ? END", column, delta, column, delta)).
		Error

	return errors.Wrap(err, "failed to adjust tag usage")
}

func toTagDomain(data *model.TagModel) *entity.Tag {
	return &entity.Tag{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Type:        entity.TagType(data.Type),
		Color:       data.Color,
		IsActive:    data.IsActive,
		UsageCount:  data.UsageCount,
		CreatedByID: data.CreatedByID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toTagsDomain(rows []model.TagModel) []*entity.Tag {
	tags := make([]*entity.Tag, 0, len(rows))
	for i := range rows {
		tags = append(tags, toTagDomain(&rows[i]))
	}

	return tags
}

func fromTagDomain(data *entity.Tag) *model.TagModel {
	tagType := data.Type
	if tagType == "" {
		tagType = entity.TagTypeGenre
	}

	return &model.TagModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Type:        string(tagType),
		Color:       data.Color,
		IsActive:    data.IsActive,
		UsageCount:  data.UsageCount,
		CreatedByID: data.CreatedByID,
		UpdatedByID: data.CreatedByID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
