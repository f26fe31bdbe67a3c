package usecase

import (
	"context"

	"mangahub/internal/domain/entity"

	"github.com/google/uuid"
)

// ListUsersQuery narrows and orders the user listing.
type ListUsersQuery struct {
	PageQuery
	Search   string       `validate:"omitempty,max=100"`
	Sort     string       `validate:"omitempty,oneof=createdAt name userName email lastLoginAt"`
	Order    string       `validate:"omitempty,oneof=asc desc"`
	Role     *entity.Role `validate:"omitempty,oneof=USER MODERATOR ADMIN OWNER"`
	Active   *bool
	Verified *bool
}

// CreateUserInput is the administrative and public account creation payload.
type CreateUserInput struct {
	Name      string  `json:"name" validate:"required,min=2,max=100"`
	LastName  string  `json:"lastName" validate:"required,min=2,max=100"`
	UserName  string  `json:"userName" validate:"required,min=3,max=100,username"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8,securepassword"`
	BirthDate *string `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02,pastdate"`
}

// UpdateUserInput replaces the editable profile fields (PUT).
type UpdateUserInput struct {
	Name      string               `json:"name" validate:"required,min=2,max=100"`
	LastName  string               `json:"lastName" validate:"required,min=2,max=100"`
	UserName  string               `json:"userName" validate:"required,min=3,max=100,username"`
	Email     string               `json:"email" validate:"required,email"`
	BirthDate *string              `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02,pastdate"`
	Address   *entity.AddressInput `json:"address,omitempty"`
}

// PatchUserInput changes only the fields that are present (PATCH).
type PatchUserInput struct {
	Name      *string              `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	LastName  *string              `json:"lastName,omitempty" validate:"omitempty,min=2,max=100"`
	UserName  *string              `json:"userName,omitempty" validate:"omitempty,min=3,max=100,username"`
	Email     *string              `json:"email,omitempty" validate:"omitempty,email"`
	BirthDate *string              `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02,pastdate"`
	Address   *entity.AddressInput `json:"address,omitempty"`
}

// UpdateBiographyInput replaces the profile text.
type UpdateBiographyInput struct {
	Biography string `json:"biography" validate:"max=2000"`
}

// UpdatePreferencesInput changes reader preferences; absent fields are kept.
type UpdatePreferencesInput struct {
	Theme             *entity.Theme `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	PreferredLanguage *string       `json:"preferredLanguage,omitempty" validate:"omitempty,min=2,max=10"`
	ShowMatureContent *bool         `json:"showMatureContent,omitempty"`
}

// ChangePasswordInput requires the current password and a confirmed new one.
type ChangePasswordInput struct {
	CurrentPassword    string `json:"currentPassword" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required,min=8,securepassword"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required"`
}

// UserUsecase defines the account management operations.
type UserUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	List(ctx context.Context, query *ListUsersQuery) (*Paginated[*entity.User], error)
	Create(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	Patch(ctx context.Context, id uuid.UUID, input *PatchUserInput) (*entity.User, error)
	UpdateBiography(ctx context.Context, id uuid.UUID, input *UpdateBiographyInput) (*entity.User, error)
	UpdatePreferences(ctx context.Context, id uuid.UUID, input *UpdatePreferencesInput) (*entity.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, input *ChangePasswordInput) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Verify(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, file *FileUpload) (*entity.User, error)
	UpdateBanner(ctx context.Context, id uuid.UUID, file *FileUpload) (*entity.User, error)
}
