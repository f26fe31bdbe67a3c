package repository

import (
	"context"
	"time"

	"mangahub/internal/domain/entity"

	"github.com/google/uuid"
)

// UserCounter names a denormalized counter column on users.
type UserCounter string

const (
	UserMangasCreated   UserCounter = "mangas_created"
	UserChaptersCreated UserCounter = "chapters_created"
	UserCommentsCount   UserCounter = "comments_count"
	UserFavoritesCount  UserCounter = "favorites_count"
	UserRatingsCount    UserCounter = "ratings_count"
)

// UserSortField is a column users may be listed by.
type UserSortField string

const (
	UserSortCreatedAt   UserSortField = "createdAt"
	UserSortName        UserSortField = "name"
	UserSortUserName    UserSortField = "userName"
	UserSortEmail       UserSortField = "email"
	UserSortLastLoginAt UserSortField = "lastLoginAt"
)

// UserListFilter narrows a user listing.
type UserListFilter struct {
	PageRequest
	Search   string
	Sort     UserSortField
	Order    SortOrder
	Role     *entity.Role
	Active   *bool
	Verified *bool
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single active-row user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUserName retrieves a single user by their user name.
	FindByUserName(ctx context.Context, userName string) (*entity.User, error)

	// List returns one page of users and the total number of matches.
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// SetRefreshToken stores or clears (nil) the single active refresh token.
	SetRefreshToken(ctx context.Context, id uuid.UUID, token *string) error

	// TouchLastLogin records a successful sign-in.
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// AdjustCounter adds delta to a denormalized counter, never going below zero.
	AdjustCounter(ctx context.Context, id uuid.UUID, counter UserCounter, delta int) error

	// SoftDelete marks the user deleted and clears its refresh token.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
