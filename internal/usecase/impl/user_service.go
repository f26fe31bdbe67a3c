package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/domain/service"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	avatarMaxSize       = 512
	avatarThumbnailSize = 128
	bannerMaxWidth      = 1920
	bannerMaxHeight     = 1080
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	locations usecase.LocationUsecase
	hasher    service.PasswordHasher
	storage   service.StorageProvider
	logger    *slog.Logger
	now       func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Locations usecase.LocationUsecase
	Hasher    service.PasswordHasher
	Storage   service.StorageProvider
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		locations: params.Locations,
		hasher:    params.Hasher,
		storage:   params.Storage,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *userService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrUserNotFound, "failed to find user")
	}

	return user, nil
}

func (srv *userService) List(ctx context.Context, query *usecase.ListUsersQuery) (*usecase.Paginated[*entity.User], error) {
	page := query.Request()

	sort := repository.UserSortField(query.Sort)
	if sort == "" {
		sort = repository.UserSortCreatedAt
	}

	users, total, err := srv.userRepo.List(ctx, repository.UserListFilter{
		PageRequest: page,
		Search:      strings.TrimSpace(query.Search),
		Sort:        sort,
		Order:       sortOrder(query.Order, repository.SortDesc),
		Role:        query.Role,
		Active:      query.Active,
		Verified:    query.Verified,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return usecase.NewPaginated(users, total, page), nil
}

// Create opens an account on behalf of an administrator or a public sign-up form.
// Unlike Register it issues no tokens.
func (srv *userService) Create(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	userName := strings.TrimSpace(input.UserName)

	birthDate, err := parseOptionalDate(input.BirthDate)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating user", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:              strings.TrimSpace(input.Name),
		LastName:          strings.TrimSpace(input.LastName),
		UserName:          userName,
		Email:             email,
		Password:          hash,
		BirthDate:         birthDate,
		Role:              entity.RoleUser,
		IsActive:          true,
		PreferredLanguage: defaultPreferredLanguage,
		Theme:             entity.ThemeLight,
	}
	user.ShowMatureContent = user.IsAdult(srv.now())

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := ensureEmailFree(ctx, userRepo, email, domainerrors.ErrEmailInUse); err != nil {
			return err
		}
		if err := ensureUserNameFree(ctx, userRepo, userName, domainerrors.ErrUserNameInUse); err != nil {
			return err
		}

		return mapDuplicate(userRepo.Create(ctx, user), "failed to create user")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user creation transaction")
	}

	srv.log(ctx).Debug("User created", slog.Any("userID", user.ID))

	return user, nil
}

// Update replaces the editable profile fields.
func (srv *userService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	return srv.Patch(ctx, id, &usecase.PatchUserInput{
		Name:      &input.Name,
		LastName:  &input.LastName,
		UserName:  &input.UserName,
		Email:     &input.Email,
		BirthDate: input.BirthDate,
		Address:   input.Address,
	})
}

// Patch applies the present fields, re-checking uniqueness only for values that change.
func (srv *userService) Patch(ctx context.Context, id uuid.UUID, input *usecase.PatchUserInput) (*entity.User, error) {
	birthDate, err := parseOptionalDate(input.BirthDate)
	if err != nil {
		return nil, err
	}

	var address *string
	if !input.Address.IsEmpty() {
		address, err = srv.locations.ValidateAndBuildAddress(ctx, input.Address)
		if err != nil {
			return nil, err
		}
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err = userRepo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, domainerrors.ErrUserNotFound, "failed to find user")
		}

		if input.Email != nil {
			email := normalizeEmail(*input.Email)
			if email != user.Email {
				if err := ensureEmailFree(ctx, userRepo, email, domainerrors.ErrEmailInUse); err != nil {
					return err
				}
				user.Email = email
			}
		}
		if input.UserName != nil {
			userName := strings.TrimSpace(*input.UserName)
			if userName != user.UserName {
				if err := ensureUserNameFree(ctx, userRepo, userName, domainerrors.ErrUserNameInUse); err != nil {
					return err
				}
				user.UserName = userName
			}
		}
		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}
		if input.LastName != nil {
			user.LastName = strings.TrimSpace(*input.LastName)
		}
		if birthDate != nil {
			user.BirthDate = birthDate
			if !user.IsAdult(srv.now()) {
				user.ShowMatureContent = false
			}
		}
		if address != nil {
			user.Address = address
		}

		return mapDuplicate(userRepo.Update(ctx, user), "failed to update user")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	srv.log(ctx).Debug("User updated", slog.Any("userID", id))

	return user, nil
}

func (srv *userService) UpdateBiography(ctx context.Context, id uuid.UUID, input *usecase.UpdateBiographyInput) (*entity.User, error) {
	return srv.modify(ctx, id, func(user *entity.User) error {
		biography := strings.TrimSpace(input.Biography)
		if biography == "" {
			user.Biography = nil
		} else {
			user.Biography = &biography
		}

		return nil
	})
}

// UpdatePreferences changes the reader preferences. Mature content can only be enabled by adults.
func (srv *userService) UpdatePreferences(ctx context.Context, id uuid.UUID, input *usecase.UpdatePreferencesInput) (*entity.User, error) {
	return srv.modify(ctx, id, func(user *entity.User) error {
		if input.ShowMatureContent != nil {
			if *input.ShowMatureContent && !user.IsAdult(srv.now()) {
				return domainerrors.ErrMatureContentNotAllowed
			}
			user.ShowMatureContent = *input.ShowMatureContent
		}
		if input.Theme != nil {
			user.Theme = *input.Theme
		}
		if input.PreferredLanguage != nil {
			user.PreferredLanguage = strings.TrimSpace(*input.PreferredLanguage)
		}

		return nil
	})
}

// ChangePassword replaces the password and signs out every other session.
func (srv *userService) ChangePassword(ctx context.Context, id uuid.UUID, input *usecase.ChangePasswordInput) error {
	if input.NewPassword != input.ConfirmNewPassword {
		return domainerrors.ErrPasswordMismatch
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, domainerrors.ErrUserNotFound, "failed to find user")
		}
		if !srv.hasher.Check(input.CurrentPassword, user.Password) {
			return domainerrors.ErrCurrentPasswordIncorrect
		}
		if input.CurrentPassword == input.NewPassword {
			return domainerrors.ErrPasswordUnchanged
		}

		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		now := srv.now()
		user.Password = hash
		user.LastPasswordChange = &now
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		// Update never touches the refresh token column.
		if err := userRepo.SetRefreshToken(ctx, id, nil); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}
		user.RefreshToken = nil

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", id))

	return nil
}

func (srv *userService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByID(ctx, id); err != nil {
			return notFound(err, domainerrors.ErrUserNotFound, "failed to find user")
		}

		return errors.Wrap(userRepo.SoftDelete(ctx, id), "failed to delete user")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

func (srv *userService) Verify(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.modify(ctx, id, func(user *entity.User) error {
		if user.IsVerified {
			return domainerrors.ErrUserAlreadyVerified
		}

		now := srv.now()
		user.IsVerified = true
		user.EmailVerifiedAt = &now
		user.VerificationToken = nil

		return nil
	})
}

func (srv *userService) UpdateAvatar(ctx context.Context, id uuid.UUID, file *usecase.FileUpload) (*entity.User, error) {
	return srv.uploadProfileImage(ctx, id, file, service.UploadOptions{
		Folder:            fmt.Sprintf("users/%s", id),
		Filename:          "avatar",
		ContentType:       file.ContentType,
		MaxWidth:          avatarMaxSize,
		MaxHeight:         avatarMaxSize,
		GenerateThumbnail: true,
		ThumbnailWidth:    avatarThumbnailSize,
		ThumbnailHeight:   avatarThumbnailSize,
	}, func(user *entity.User, url string) {
		user.ProfilePictureURL = &url
	})
}

func (srv *userService) UpdateBanner(ctx context.Context, id uuid.UUID, file *usecase.FileUpload) (*entity.User, error) {
	return srv.uploadProfileImage(ctx, id, file, service.UploadOptions{
		Folder:      fmt.Sprintf("users/%s", id),
		Filename:    "banner",
		ContentType: file.ContentType,
		MaxWidth:    bannerMaxWidth,
		MaxHeight:   bannerMaxHeight,
	}, func(user *entity.User, url string) {
		user.BannerURL = &url
	})
}

func (srv *userService) uploadProfileImage(
	ctx context.Context,
	id uuid.UUID,
	file *usecase.FileUpload,
	opts service.UploadOptions,
	assign func(user *entity.User, url string),
) (*entity.User, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, domainerrors.ErrNoFileUploaded
	}

	if _, err := srv.GetByID(ctx, id); err != nil {
		return nil, err
	}

	result, err := srv.storage.Upload(ctx, file.Data, opts)
	if err != nil {
		srv.log(ctx).Error("Failed to upload profile image",
			slog.Any("userID", id),
			slog.String("provider", srv.storage.Name()),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return srv.modify(ctx, id, func(user *entity.User) error {
		assign(user, result.URL)

		return nil
	})
}

// modify loads the user, applies change and saves it inside one transaction.
func (srv *userService) modify(ctx context.Context, id uuid.UUID, change func(user *entity.User) error) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		var err error
		user, err = userRepo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, domainerrors.ErrUserNotFound, "failed to find user")
		}

		if err := change(user); err != nil {
			return err
		}

		return errors.Wrap(userRepo.Update(ctx, user), "failed to update user")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user transaction")
	}

	return user, nil
}

// mapDuplicate reports a unique-index violation as a conflict and wraps other failures.
func mapDuplicate(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return domainerrors.NewConflictError("Email or username already in use")
	}

	return errors.Wrap(err, action)
}
