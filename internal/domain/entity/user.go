// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AdultAge is the age from which mature content may be enabled.
const AdultAge = 18

// Theme is the UI theme a reader prefers.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// User is the core entity in the system, representing a unique reader or staff account.
type User struct {
	ID                   uuid.UUID  `json:"id"`                 // UUIDv7 identifier.
	Name                 string     `json:"name"`               // Given name.
	LastName             string     `json:"lastName"`           // Family name.
	UserName             string     `json:"userName"`           // Unique handle, trimmed.
	Email                string     `json:"email"`              // Unique, lowercased login identifier.
	Password             string     `json:"-"`                  // bcrypt hash, never serialized.
	Biography            *string    `json:"biography"`          // Free-form profile text.
	BirthDate            *time.Time `json:"birthDate"`          // Drives age and mature-content gating.
	Role                 Role       `json:"role"`               // Authorization role.
	IsVerified           bool       `json:"isVerified"`         // Set by an administrator.
	IsActive             bool       `json:"isActive"`           // Inactive accounts cannot sign in.
	RefreshToken         *string    `json:"-"`                  // The single active refresh token.
	LastPasswordChange   *time.Time `json:"lastPasswordChange"` // Timestamp of the latest password change.
	EmailVerifiedAt      *time.Time `json:"emailVerifiedAt"`
	VerificationToken    *string    `json:"-"`
	ResetPasswordToken   *string    `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	ProfilePictureURL    *string    `json:"profilePictureUrl"`
	BannerURL            *string    `json:"bannerUrl"`
	Address              *string    `json:"address"` // Denormalized "City, State, Country" string.
	MangasCreated        int        `json:"mangasCreated"`
	ChaptersCreated      int        `json:"chaptersCreated"`
	CommentsCount        int        `json:"commentsCount"`
	FavoritesCount       int        `json:"favoritesCount"`
	RatingsCount         int        `json:"ratingsCount"`
	ShowMatureContent    bool       `json:"showMatureContent"`
	PreferredLanguage    string     `json:"preferredLanguage"`
	Theme                Theme      `json:"theme"`
	LastLoginAt          *time.Time `json:"lastLoginAt"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
	DeletedAt            *time.Time `json:"-"`
}

// FullName joins the given and family names.
func (u *User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.LastName)
}

// Age returns the user's age in whole years at now, or -1 when no birth date is known.
func (u *User) Age(now time.Time) int {
	if u.BirthDate == nil {
		return -1
	}

	return AgeAt(*u.BirthDate, now)
}

// IsAdult reports whether the user is at least AdultAge years old at now.
func (u *User) IsAdult(now time.Time) bool {
	return u.Age(now) >= AdultAge
}

// IsAdmin reports whether the user holds an administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleOwner
}

// IsModerator reports whether the user may moderate catalog and community content.
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator || u.IsAdmin()
}

// CanSeeMature reports whether mature titles should be listed for this reader.
// A nil user is anonymous.
func (u *User) CanSeeMature() bool {
	return u != nil && u.ShowMatureContent
}

// MarshalJSON adds the computed profile fields.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User

	var age *int
	if a := u.Age(time.Now()); a >= 0 {
		age = &a
	}

	return json.Marshal(struct {
		plain
		FullName    string `json:"fullName"`
		Age         *int   `json:"age"`
		IsAdult     bool   `json:"isAdult"`
		IsAdmin     bool   `json:"isAdmin"`
		IsModerator bool   `json:"isModerator"`
	}{
		plain:       plain(u),
		FullName:    u.FullName(),
		Age:         age,
		IsAdult:     age != nil && *age >= AdultAge,
		IsAdmin:     u.IsAdmin(),
		IsModerator: u.IsModerator(),
	})
}

// AgeAt computes whole years between birth and now, accounting for a birthday not yet reached this year.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}

	return age
}
