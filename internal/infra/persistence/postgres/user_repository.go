// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var userSortColumns = map[repository.UserSortField]string{
	repository.UserSortCreatedAt:   "created_at",
	repository.UserSortName:        "name",
	repository.UserSortUserName:    "user_name",
	repository.UserSortEmail:       "email",
	repository.UserSortLastLoginAt: "last_login_at",
}

// userManagedColumns have dedicated writers (AdjustCounter, SetRefreshToken, TouchLastLogin) and are never written by Update.
var userManagedColumns = []string{
	"mangas_created", "chapters_created", "comments_count", "favorites_count", "ratings_count",
	"refresh_token", "last_login_at",
}

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByUserName retrieves a single user by their user name.
func (repo *userRepository) FindByUserName(ctx context.Context, userName string) (*entity.User, error) {
	return repo.findOne(ctx, "user_name = ?", userName)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		return nil, notFoundOr(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// List returns one page of users matching the filter.
func (repo *userRepository) List(ctx context.Context, filter repository.UserListFilter) ([]*entity.User, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})

	if filter.Search != "" {
		cond, args := searchCondition(repo.db, filter.Search, "name", "last_name", "user_name", "email")
		query = query.Where(cond, args...)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", string(*filter.Role))
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.Verified != nil {
		query = query.Where("is_verified = ?", *filter.Verified)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	column, ok := userSortColumns[filter.Sort]
	if !ok {
		column = "created_at"
	}

	var rows []model.UserModel
	if err := query.
		Order(orderBy(column, filter.Order)).
		Order(orderBy("id", filter.Order)).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, toUserDomain(&rows[i]))
	}

	return users, total, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateUserWriteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the profile columns of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	omit := append([]string{"id", "created_at", "deleted_at"}, userManagedColumns...)
	result := repo.db.WithContext(ctx).Model(userM).Select("*").Omit(omit...).Updates(userM)
	if result.Error != nil {
		return translateUserWriteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// SetRefreshToken stores or clears the user's refresh token.
func (repo *userRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, token *string) error {
	return repo.updateColumn(ctx, id, "refresh_token", token)
}

// TouchLastLogin records a successful sign-in.
func (repo *userRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.updateColumn(ctx, id, "last_login_at", at)
}

func (repo *userRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// AdjustCounter adds delta to a denormalized user counter.
func (repo *userRepository) AdjustCounter(ctx context.Context, id uuid.UUID, counter repository.UserCounter, delta int) error {
	return adjustColumn(repo.db.WithContext(ctx), &model.UserModel{}, id, string(counter), delta)
}

// SoftDelete marks the user deleted; associated rows are left untouched.
func (repo *userRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.UserModel{}).Where("id = ?", id).Update("refresh_token", nil).Error; err != nil {
			return errors.Wrap(err, "failed to clear refresh token")
		}

		result := tx.Where("id = ?", id).Delete(&model.UserModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete user")
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}

		return nil
	})
}

func translateUserWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return errors.Wrap(repository.ErrDuplicate, err.Error())
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.NewBadRequestError("missing required user information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                   data.ID,
		Name:                 data.Name,
		LastName:             data.LastName,
		UserName:             data.UserName,
		Email:                data.Email,
		Password:             data.Password,
		Biography:            data.Biography,
		BirthDate:            data.BirthDate,
		Role:                 entity.Role(data.Role),
		IsVerified:           data.IsVerified,
		IsActive:             data.IsActive,
		RefreshToken:         data.RefreshToken,
		LastPasswordChange:   data.LastPasswordChange,
		EmailVerifiedAt:      data.EmailVerifiedAt,
		VerificationToken:    data.VerificationToken,
		ResetPasswordToken:   data.ResetPasswordToken,
		ResetPasswordExpires: data.ResetPasswordExpires,
		ProfilePictureURL:    data.ProfilePictureURL,
		BannerURL:            data.BannerURL,
		Address:              data.Address,
		MangasCreated:        data.MangasCreated,
		ChaptersCreated:      data.ChaptersCreated,
		CommentsCount:        data.CommentsCount,
		FavoritesCount:       data.FavoritesCount,
		RatingsCount:         data.RatingsCount,
		ShowMatureContent:    data.ShowMatureContent,
		PreferredLanguage:    data.PreferredLanguage,
		Theme:                entity.Theme(data.Theme),
		LastLoginAt:          data.LastLoginAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
	if data.DeletedAt.Valid {
		deletedAt := data.DeletedAt.Time
		user.DeletedAt = &deletedAt
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if role == "" {
		role = entity.RoleUser
	}

	return &model.UserModel{
		ID:                   data.ID,
		Name:                 data.Name,
		LastName:             data.LastName,
		UserName:             data.UserName,
		Email:                data.Email,
		Password:             data.Password,
		Biography:            data.Biography,
		BirthDate:            data.BirthDate,
		Role:                 string(role),
		IsVerified:           data.IsVerified,
		IsActive:             data.IsActive,
		RefreshToken:         data.RefreshToken,
		LastPasswordChange:   data.LastPasswordChange,
		EmailVerifiedAt:      data.EmailVerifiedAt,
		VerificationToken:    data.VerificationToken,
		ResetPasswordToken:   data.ResetPasswordToken,
		ResetPasswordExpires: data.ResetPasswordExpires,
		ProfilePictureURL:    data.ProfilePictureURL,
		BannerURL:            data.BannerURL,
		Address:              data.Address,
		MangasCreated:        data.MangasCreated,
		ChaptersCreated:      data.ChaptersCreated,
		CommentsCount:        data.CommentsCount,
		FavoritesCount:       data.FavoritesCount,
		RatingsCount:         data.RatingsCount,
		ShowMatureContent:    data.ShowMatureContent,
		PreferredLanguage:    data.PreferredLanguage,
		Theme:                string(data.Theme),
		LastLoginAt:          data.LastLoginAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
