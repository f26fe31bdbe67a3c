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

// commentRow is a comment joined with its closure depth relative to a thread root.
type commentRow struct {
	model.CommentModel
	Depth int
}

// commentRepository implements repository.CommentRepository using GORM and a closure table.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// FindByID retrieves a comment by id.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var row model.CommentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFoundOr(err, "failed to find comment")
	}

	return toCommentDomain(&row, 0), nil
}

// Create inserts the comment and its closure rows. Run it inside a transaction.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	db := repo.db.WithContext(ctx)
	row := fromCommentDomain(comment)

	if err := db.Omit(clause.Associations).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	self := model.CommentClosureModel{AncestorID: row.ID, DescendantID: row.ID, Depth: 0}
	if err := db.Omit(clause.Associations).Create(&self).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment closure")
	}

	if row.ParentCommentID != nil {
		// Every ancestor of the parent, the parent's own self row included, gains the new comment one level deeper.
		err := db.Exec(
			`INSERT INTO comments_closure (id_ancestor, id_descendant, depth)
			 SELECT id_ancestor, ?, depth + 1 FROM comments_closure WHERE id_descendant = ?`,
			row.ID, *row.ParentCommentID,
		).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to link comment ancestors")
		}
	}

	comment.ID = row.ID
	comment.CreatedAt = row.CreatedAt
	comment.UpdatedAt = row.UpdatedAt

	return nil
}

// Update writes the editable columns of a comment.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	result := repo.db.WithContext(ctx).Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"content":    comment.Content,
			"is_edited":  comment.IsEdited,
			"is_pinned":  comment.IsPinned,
			"is_spoiler": comment.IsSpoiler,
			"is_active":  comment.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ListTopLevel lists root comments of a manga or chapter, pinned first then newest.
func (repo *commentRepository) ListTopLevel(ctx context.Context, filter repository.CommentListFilter) ([]*entity.Comment, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CommentModel{}).Where("parent_comment_id IS NULL")
	if filter.MangaID != nil {
		query = query.Where("manga_id = ?", *filter.MangaID)
	}
	if filter.ChapterID != nil {
		query = query.Where("chapter_id = ?", *filter.ChapterID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count comments")
	}

	var rows []model.CommentModel
	if err := query.
		Order("is_pinned DESC").
		Order("created_at DESC").
		Order("id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, toCommentDomain(&rows[i], 0))
	}

	return comments, total, nil
}

// ListSubtree returns rootID and all of its descendants ordered by depth then creation time.
func (repo *commentRepository) ListSubtree(ctx context.Context, rootID uuid.UUID) ([]*entity.Comment, error) {
	rows, err := repo.subtree(repo.db.WithContext(ctx), rootID)
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, toCommentDomain(&rows[i].CommentModel, rows[i].Depth))
	}

	return comments, nil
}

func (repo *commentRepository) subtree(db *gorm.DB, rootID uuid.UUID) ([]commentRow, error) {
	var rows []commentRow
	err := db.Table("comments").
		Select("comments.*, comments_closure.depth AS depth").
		Joins("JOIN comments_closure ON comments_closure.id_descendant = comments.id").
		Where("comments_closure.id_ancestor = ?", rootID).
		Order("comments_closure.depth ASC").
		Order("comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load comment thread")
	}

	return rows, nil
}

// DeleteSubtree removes rootID with all of its descendants and returns the removed comments. Run it inside a transaction.
func (repo *commentRepository) DeleteSubtree(ctx context.Context, rootID uuid.UUID) ([]*entity.Comment, error) {
	db := repo.db.WithContext(ctx)

	rows, err := repo.subtree(db, rootID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	ids := make([]uuid.UUID, 0, len(rows))
	removed := make([]*entity.Comment, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
		removed = append(removed, toCommentDomain(&rows[i].CommentModel, rows[i].Depth))
	}

	if err := db.Where("id_descendant IN ?", ids).Delete(&model.CommentClosureModel{}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete comment closure")
	}
	if err := db.Where("id IN ?", ids).Delete(&model.CommentModel{}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete comments")
	}

	return removed, nil
}

// AdjustReplyCount adds delta to a comment's reply counter.
func (repo *commentRepository) AdjustReplyCount(ctx context.Context, id uuid.UUID, delta int) error {
	return adjustColumn(repo.db.WithContext(ctx), &model.CommentModel{}, id, "reply_count", delta)
}

func toCommentDomain(data *model.CommentModel, depth int) *entity.Comment {
	return &entity.Comment{
		ID:              data.ID,
		Content:         data.Content,
		IsActive:        data.IsActive,
		IsEdited:        data.IsEdited,
		IsPinned:        data.IsPinned,
		IsSpoiler:       data.IsSpoiler,
		LikeCount:       data.LikeCount,
		DislikeCount:    data.DislikeCount,
		ReplyCount:      data.ReplyCount,
		MangaID:         data.MangaID,
		ChapterID:       data.ChapterID,
		UserID:          data.UserID,
		ParentCommentID: data.ParentCommentID,
		Depth:           depth,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:              data.ID,
		Content:         data.Content,
		IsActive:        data.IsActive,
		IsEdited:        data.IsEdited,
		IsPinned:        data.IsPinned,
		IsSpoiler:       data.IsSpoiler,
		LikeCount:       data.LikeCount,
		DislikeCount:    data.DislikeCount,
		ReplyCount:      data.ReplyCount,
		MangaID:         data.MangaID,
		ChapterID:       data.ChapterID,
		UserID:          data.UserID,
		ParentCommentID: data.ParentCommentID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
