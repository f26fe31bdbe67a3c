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

type tagService struct {
	tagRepo repository.TagRepository
	logger  *slog.Logger
}

// TagServiceParams holds dependencies for TagService, injected by Fx.
type TagServiceParams struct {
	fx.In

	TagRepo repository.TagRepository
	Logger  *slog.Logger
}

// NewTagService is the constructor for tagService.
func NewTagService(params TagServiceParams) usecase.TagUsecase {
	return &tagService{
		tagRepo: params.TagRepo,
		logger:  params.Logger,
	}
}

func (srv *tagService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *tagService) List(ctx context.Context, query *usecase.ListTagsQuery) ([]*entity.Tag, error) {
	tags, err := srv.tagRepo.List(ctx, repository.TagListFilter{
		Type:   query.Type,
		Search: strings.TrimSpace(query.Search),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

func (srv *tagService) GetBySlug(ctx context.Context, slug string) (*entity.Tag, error) {
	tag, err := srv.tagRepo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, notFound(err, domainerrors.ErrTagNotFound, "failed to find tag")
	}

	return tag, nil
}

func (srv *tagService) Create(ctx context.Context, actorID uuid.UUID, input *usecase.TagInput) (*entity.Tag, error) {
	tag := &entity.Tag{
		Type:        entity.TagTypeGenre,
		IsActive:    true,
		CreatedByID: &actorID,
	}
	applyTagInput(tag, input)

	if err := srv.ensureUnique(ctx, tag, nil); err != nil {
		return nil, err
	}

	if err := srv.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domainerrors.ErrTagExists
		}

		return nil, errors.Wrap(err, "failed to create tag")
	}

	srv.log(ctx).Info("Tag created", slog.String("slug", tag.Slug), slog.Any("actorID", actorID))

	return tag, nil
}

func (srv *tagService) Update(ctx context.Context, id uuid.UUID, input *usecase.TagInput) (*entity.Tag, error) {
	tag, err := srv.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrTagNotFound, "failed to find tag")
	}

	applyTagInput(tag, input)

	if err := srv.ensureUnique(ctx, tag, &id); err != nil {
		return nil, err
	}

	if err := srv.tagRepo.Update(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domainerrors.ErrTagExists
		}

		return nil, notFound(err, domainerrors.ErrTagNotFound, "failed to update tag")
	}

	return tag, nil
}

func (srv *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.tagRepo.SoftDelete(ctx, id); err != nil {
		return notFound(err, domainerrors.ErrTagNotFound, "failed to delete tag")
	}

	srv.log(ctx).Info("Tag deleted", slog.Any("tagID", id))

	return nil
}

func (srv *tagService) ensureUnique(ctx context.Context, tag *entity.Tag, excludeID *uuid.UUID) error {
	exists, err := srv.tagRepo.ExistsByNameOrSlug(ctx, tag.Name, tag.Slug, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check tag uniqueness")
	}
	if exists {
		return domainerrors.ErrTagExists
	}

	return nil
}

func applyTagInput(tag *entity.Tag, input *usecase.TagInput) {
	tag.Name = strings.TrimSpace(input.Name)
	tag.Slug = slugify(tag.Name, "tag")
	tag.Description = input.Description
	tag.Color = input.Color
	if input.Type != nil {
		tag.Type = *input.Type
	}
	if input.IsActive != nil {
		tag.IsActive = *input.IsActive
	}
}
