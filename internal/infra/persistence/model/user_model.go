package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name                 string     `gorm:"type:varchar(100);not null"`
	LastName             string     `gorm:"type:varchar(100);not null"`
	UserName             string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email                string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password             string     `gorm:"type:varchar(255);not null"`
	Biography            *string    `gorm:"type:text"`
	BirthDate            *time.Time `gorm:"type:date"`
	Role                 string     `gorm:"type:varchar(20);not null;default:USER"`
	IsVerified           bool       `gorm:"not null"`
	IsActive             bool       `gorm:"not null"`
	RefreshToken         *string    `gorm:"type:text"`
	LastPasswordChange   *time.Time
	EmailVerifiedAt      *time.Time
	VerificationToken    *string `gorm:"type:varchar(255)"`
	ResetPasswordToken   *string `gorm:"type:varchar(255)"`
	ResetPasswordExpires *time.Time
	ProfilePictureURL    *string `gorm:"column:profile_picture_url;type:varchar(500)"`
	BannerURL            *string `gorm:"column:banner_url;type:varchar(500)"`
	Address              *string `gorm:"type:text"`
	MangasCreated        int     `gorm:"not null;default:0"`
	ChaptersCreated      int     `gorm:"not null;default:0"`
	CommentsCount        int     `gorm:"not null;default:0"`
	FavoritesCount       int     `gorm:"not null;default:0"`
	RatingsCount         int     `gorm:"not null;default:0"`
	ShowMatureContent    bool    `gorm:"not null"`
	PreferredLanguage    string  `gorm:"type:varchar(10);not null;default:en"`
	Theme                string  `gorm:"type:varchar(10);not null;default:light"`
	LastLoginAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUIDv7 primary key.
func (m *UserModel) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)

	return nil
}
