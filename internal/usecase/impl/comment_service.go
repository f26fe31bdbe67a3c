package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	mangaRepo   repository.MangaRepository
	chapterRepo repository.ChapterRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	MangaRepo   repository.MangaRepository
	ChapterRepo repository.ChapterRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		mangaRepo:   params.MangaRepo,
		chapterRepo: params.ChapterRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// Create posts a comment or a reply. A reply must stay on its parent's manga or chapter.
func (srv *commentService) Create(ctx context.Context, author *entity.User, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	comment := &entity.Comment{
		Content:         strings.TrimSpace(input.Content),
		IsActive:        true,
		IsSpoiler:       input.IsSpoiler,
		MangaID:         input.MangaID,
		ChapterID:       input.ChapterID,
		UserID:          author.ID,
		ParentCommentID: input.ParentCommentID,
	}
	if !comment.HasSingleContext() {
		return nil, domainerrors.ErrCommentContext
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.NewCommentRepository()

		if err := checkCommentTarget(ctx, repoFactory, comment); err != nil {
			return err
		}

		if comment.ParentCommentID != nil {
			parent, err := commentRepo.FindByID(ctx, *comment.ParentCommentID)
			if err != nil {
				return notFound(err, domainerrors.ErrCommentNotFound, "failed to find parent comment")
			}
			if !parent.SameContext(comment) {
				return domainerrors.ErrCommentParentContext
			}
		}

		if err := commentRepo.Create(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to create comment")
		}

		if comment.ParentCommentID != nil {
			if err := commentRepo.AdjustReplyCount(ctx, *comment.ParentCommentID, 1); err != nil {
				return errors.Wrap(err, "failed to count reply")
			}
		}

		if err := adjustCommentTarget(ctx, repoFactory, comment, 1); err != nil {
			return err
		}

		return errors.Wrap(
			repoFactory.NewUserRepository().AdjustCounter(ctx, author.ID, repository.UserCommentsCount, 1),
			"failed to count user comment",
		)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute comment creation transaction")
	}

	srv.log(ctx).Debug("Comment created", slog.Any("commentID", comment.ID), slog.Any("userID", author.ID))

	return comment, nil
}

func (srv *commentService) ListByManga(ctx context.Context, viewer *entity.User, mangaID uuid.UUID, page usecase.PageQuery) (*usecase.Paginated[*entity.Comment], error) {
	if err := srv.checkVisible(ctx, viewer, &mangaID, nil); err != nil {
		return nil, err
	}

	return srv.listTopLevel(ctx, repository.CommentListFilter{PageRequest: page.Request(), MangaID: &mangaID})
}

func (srv *commentService) ListByChapter(ctx context.Context, viewer *entity.User, chapterID uuid.UUID, page usecase.PageQuery) (*usecase.Paginated[*entity.Comment], error) {
	if err := srv.checkVisible(ctx, viewer, nil, &chapterID); err != nil {
		return nil, err
	}

	return srv.listTopLevel(ctx, repository.CommentListFilter{PageRequest: page.Request(), ChapterID: &chapterID})
}

func (srv *commentService) listTopLevel(ctx context.Context, filter repository.CommentListFilter) (*usecase.Paginated[*entity.Comment], error) {
	comments, total, err := srv.commentRepo.ListTopLevel(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return usecase.NewPaginated(comments, total, filter.PageRequest), nil
}

func (srv *commentService) GetThread(ctx context.Context, viewer *entity.User, id uuid.UUID) ([]*entity.Comment, error) {
	thread, err := srv.commentRepo.ListSubtree(ctx, id)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrCommentNotFound, "failed to load thread")
	}
	if len(thread) == 0 {
		return nil, domainerrors.ErrCommentNotFound
	}

	if err := srv.checkVisible(ctx, viewer, thread[0].MangaID, thread[0].ChapterID); err != nil {
		return nil, err
	}

	return thread, nil
}

// Update edits the author's own comment and marks it edited.
func (srv *commentService) Update(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.UpdateCommentInput) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrCommentNotFound, "failed to find comment")
	}
	if comment.UserID != actor.ID {
		return nil, domainerrors.ErrCommentNotOwner
	}

	if input.Content != nil {
		comment.Content = strings.TrimSpace(*input.Content)
	}
	if input.IsSpoiler != nil {
		comment.IsSpoiler = *input.IsSpoiler
	}
	comment.IsEdited = true

	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, notFound(err, domainerrors.ErrCommentNotFound, "failed to update comment")
	}

	return comment, nil
}

// Delete removes the comment with every reply below it and rolls the counters back by the subtree size.
func (srv *commentService) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	var removed []*entity.Comment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.NewCommentRepository()

		comment, err := commentRepo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, domainerrors.ErrCommentNotFound, "failed to find comment")
		}
		if comment.UserID != actor.ID && !actor.IsModerator() {
			return domainerrors.ErrCommentNotOwner
		}

		removed, err = commentRepo.DeleteSubtree(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete comment thread")
		}

		if comment.ParentCommentID != nil {
			if err := commentRepo.AdjustReplyCount(ctx, *comment.ParentCommentID, -1); err != nil {
				return errors.Wrap(err, "failed to release reply count")
			}
		}

		if err := adjustCommentTarget(ctx, repoFactory, comment, -len(removed)); err != nil {
			return err
		}

		userRepo := repoFactory.NewUserRepository()
		for userID, count := range countByAuthor(removed) {
			if err := userRepo.AdjustCounter(ctx, userID, repository.UserCommentsCount, -count); err != nil {
				return errors.Wrap(err, "failed to release user comment count")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute comment deletion transaction")
	}

	srv.log(ctx).Info("Comment thread deleted",
		slog.Any("commentID", id),
		slog.Int("removed", len(removed)),
		slog.Any("actorID", actor.ID))

	return nil
}

func (srv *commentService) Pin(ctx context.Context, id uuid.UUID, pinned bool) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrCommentNotFound, "failed to find comment")
	}

	comment.IsPinned = pinned
	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, notFound(err, domainerrors.ErrCommentNotFound, "failed to pin comment")
	}

	return comment, nil
}

// checkVisible hides comments on draft chapters from non-staff and on mature titles from viewers who have not opted in.
func (srv *commentService) checkVisible(ctx context.Context, viewer *entity.User, mangaID, chapterID *uuid.UUID) error {
	if chapterID != nil {
		chapter, err := srv.chapterRepo.FindByID(ctx, *chapterID)
		if err != nil {
			return notFound(err, domainerrors.ErrChapterNotFound, "failed to find chapter")
		}
		if (!chapter.IsPublished() || !chapter.IsActive) && !isStaff(viewer) {
			return domainerrors.ErrChapterNotFound
		}
		mangaID = &chapter.MangaID
	}
	if mangaID == nil {
		return nil
	}

	manga, err := srv.mangaRepo.FindByID(ctx, *mangaID)
	if err != nil {
		return notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
	}

	return checkMatureAccess(manga, viewer)
}

func checkCommentTarget(ctx context.Context, repoFactory repository.RepositoryFactory, comment *entity.Comment) error {
	if comment.MangaID != nil {
		_, err := repoFactory.NewMangaRepository().FindByID(ctx, *comment.MangaID)
		if err != nil {
			return notFound(err, domainerrors.ErrMangaNotFound, "failed to find manga")
		}

		return nil
	}

	_, err := repoFactory.NewChapterRepository().FindByID(ctx, *comment.ChapterID)
	if err != nil {
		return notFound(err, domainerrors.ErrChapterNotFound, "failed to find chapter")
	}

	return nil
}

func adjustCommentTarget(ctx context.Context, repoFactory repository.RepositoryFactory, comment *entity.Comment, delta int) error {
	if delta == 0 {
		return nil
	}

	if comment.MangaID != nil {
		return errors.Wrap(
			repoFactory.NewMangaRepository().AdjustCounter(ctx, *comment.MangaID, repository.MangaCommentCount, delta),
			"failed to adjust manga comment count",
		)
	}

	return errors.Wrap(
		repoFactory.NewChapterRepository().AdjustCounter(ctx, *comment.ChapterID, repository.ChapterCommentCount, delta),
		"failed to adjust chapter comment count",
	)
}

func countByAuthor(comments []*entity.Comment) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, comment := range comments {
		counts[comment.UserID]++
	}

	return counts
}
