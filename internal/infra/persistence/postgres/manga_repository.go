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

var mangaSortColumns = map[repository.MangaSortField]string{
	repository.MangaSortCreatedAt:     "created_at",
	repository.MangaSortTitle:         "title",
	repository.MangaSortAverageRating: "average_rating",
	repository.MangaSortViewCount:     "view_count",
	repository.MangaSortFavoriteCount: "favorite_count",
}

// mangaCounterColumns are maintained by AdjustCounter and SetRatingSummary, never by Update.
var mangaCounterColumns = []string{
	"average_rating", "rating_count", "view_count", "favorite_count", "comment_count", "chapter_count",
}

// mangaRepository implements repository.MangaRepository using GORM.
type mangaRepository struct {
	db *gorm.DB
}

// NewMangaRepository is the constructor for mangaRepository.
func NewMangaRepository(db *gorm.DB) repository.MangaRepository {
	return &mangaRepository{db: db}
}

// FindByID retrieves a manga with its tags.
func (repo *mangaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Manga, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a manga with its tags.
func (repo *mangaRepository) FindBySlug(ctx context.Context, slug string) (*entity.Manga, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *mangaRepository) findOne(ctx context.Context, query string, arg any) (*entity.Manga, error) {
	var row model.MangaModel
	if err := repo.db.WithContext(ctx).Preload("Tags").Where(query, arg).First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to find manga")
	}

	return toMangaDomain(&row), nil
}

// SlugExists reports whether any manga, deleted or not, uses slug.
func (repo *mangaRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Unscoped().Model(&model.MangaModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check manga slug")
	}

	return count > 0, nil
}

// List returns one page of mangas.
func (repo *mangaRepository) List(ctx context.Context, filter repository.MangaListFilter) ([]*entity.Manga, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.MangaModel{})

	if filter.Search != "" {
		cond, args := searchCondition(repo.db, filter.Search, "title")
		query = query.Where(cond, args...)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if !filter.IncludeAdult {
		query = query.Where("is_mature = ?", false)
	}
	if filter.TagSlug != "" {
		tagged := repo.db.Table("manga_tags").
			Select("manga_tags.manga_id").
			Joins("JOIN tags ON tags.id = manga_tags.tag_id").
			Where("tags.slug = ? AND tags.deleted_at IS NULL", filter.TagSlug)
		query = query.Where("id IN (?)", tagged)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count mangas")
	}

	column, ok := mangaSortColumns[filter.Sort]
	if !ok {
		column = "created_at"
	}

	var rows []model.MangaModel
	if err := query.Preload("Tags").
		Order(orderBy(column, filter.Order)).
		Order(orderBy("id", filter.Order)).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list mangas")
	}

	mangas := make([]*entity.Manga, 0, len(rows))
	for i := range rows {
		mangas = append(mangas, toMangaDomain(&rows[i]))
	}

	return mangas, total, nil
}

// Create persists a new manga. Tags are attached separately through ReplaceTags.
func (repo *mangaRepository) Create(ctx context.Context, manga *entity.Manga) error {
	row := fromMangaDomain(manga)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicate, "manga slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create manga")
	}

	manga.ID = row.ID
	manga.CreatedAt = row.CreatedAt
	manga.UpdatedAt = row.UpdatedAt

	return nil
}

// Update writes the editable columns of a manga.
func (repo *mangaRepository) Update(ctx context.Context, manga *entity.Manga) error {
	row := fromMangaDomain(manga)

	omit := append([]string{"id", "created_at", "deleted_at", "created_by_id", "Tags"}, mangaCounterColumns...)
	result := repo.db.WithContext(ctx).Model(row).Select("*").Omit(omit...).Updates(row)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrDuplicate, "manga slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update manga")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	manga.UpdatedAt = row.UpdatedAt

	return nil
}

// SoftDelete marks a manga deleted.
func (repo *mangaRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MangaModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete manga")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ReplaceTags rewrites the manga_tags rows of a manga.
func (repo *mangaRepository) ReplaceTags(ctx context.Context, mangaID uuid.UUID, tagIDs []uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Exec("DELETE FROM manga_tags WHERE manga_id = ?", mangaID).Error; err != nil {
		return errors.Wrap(err, "failed to clear manga tags")
	}
	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]map[string]any, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, map[string]any{"manga_id": mangaID, "tag_id": tagID})
	}
	if err := db.Table("manga_tags").Create(links).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrNotFound
		}

		return errors.Wrap(err, "failed to link manga tags")
	}

	return nil
}

// AdjustCounter adds delta to a denormalized manga counter.
func (repo *mangaRepository) AdjustCounter(ctx context.Context, id uuid.UUID, counter repository.MangaCounter, delta int) error {
	return adjustColumn(repo.db.WithContext(ctx), &model.MangaModel{}, id, string(counter), delta)
}

// SetRatingSummary stores the recomputed rating aggregate.
func (repo *mangaRepository) SetRatingSummary(ctx context.Context, id uuid.UUID, average float64, count int) error {
	result := repo.db.WithContext(ctx).Model(&model.MangaModel{}).Where("id = ?", id).
		UpdateColumns(map[string]any{"average_rating": average, "rating_count": count})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update rating summary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMangaDomain(data *model.MangaModel) *entity.Manga {
	tags := make([]entity.Tag, 0, len(data.Tags))
	for i := range data.Tags {
		tags = append(tags, *toTagDomain(&data.Tags[i]))
	}

	alternativeTitles := data.AlternativeTitles
	if alternativeTitles == nil {
		alternativeTitles = []string{}
	}

	return &entity.Manga{
		ID:                data.ID,
		Title:             data.Title,
		Slug:              data.Slug,
		Description:       data.Description,
		CoverURL:          data.CoverURL,
		BannerURL:         data.BannerURL,
		IsMature:          data.IsMature,
		Status:            entity.MangaStatus(data.Status),
		PublicationDate:   data.PublicationDate,
		CompletionDate:    data.CompletionDate,
		AverageRating:     data.AverageRating,
		RatingCount:       data.RatingCount,
		ViewCount:         data.ViewCount,
		FavoriteCount:     data.FavoriteCount,
		CommentCount:      data.CommentCount,
		ChapterCount:      data.ChapterCount,
		Author:            data.Author,
		Artist:            data.Artist,
		Publisher:         data.Publisher,
		AlternativeTitles: alternativeTitles,
		OriginalLanguage:  data.OriginalLanguage,
		Tags:              tags,
		CreatedByID:       data.CreatedByID,
		UpdatedByID:       data.UpdatedByID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromMangaDomain(data *entity.Manga) *model.MangaModel {
	status := data.Status
	if status == "" {
		status = entity.MangaStatusActived
	}

	return &model.MangaModel{
		ID:                data.ID,
		Title:             data.Title,
		Slug:              data.Slug,
		Description:       data.Description,
		CoverURL:          data.CoverURL,
		BannerURL:         data.BannerURL,
		IsMature:          data.IsMature,
		Status:            string(status),
		PublicationDate:   data.PublicationDate,
		CompletionDate:    data.CompletionDate,
		AverageRating:     data.AverageRating,
		RatingCount:       data.RatingCount,
		ViewCount:         data.ViewCount,
		FavoriteCount:     data.FavoriteCount,
		CommentCount:      data.CommentCount,
		ChapterCount:      data.ChapterCount,
		Author:            data.Author,
		Artist:            data.Artist,
		Publisher:         data.Publisher,
		AlternativeTitles: data.AlternativeTitles,
		OriginalLanguage:  data.OriginalLanguage,
		CreatedByID:       data.CreatedByID,
		UpdatedByID:       data.UpdatedByID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
