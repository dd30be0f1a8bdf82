package domain

import (
	"context"
	"io"
	"strings"
	"time"
)

const DefaultAvatar = "default.jpg"

// Profile holds the editable details of a staff account. It is created on first access.
type Profile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Avatar    string    `gorm:"type:varchar(255);not null;default:default.jpg" json:"avatar"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "user_profiles" }

type ProfileForm struct {
	Bio string `json:"bio" form:"bio" valid:"stringlength(0|500)~Ensure this value has at most 500 characters"`
}

func (f *ProfileForm) Validate() error {
	f.Bio = strings.TrimSpace(f.Bio)
	if errs := checkTags(f); len(errs) > 0 {
		return NewValidationError(errs)
	}
	return nil
}

type ProfileRepo interface {
	GetOrCreateProfile(ctx context.Context, userID uint) (*Profile, error)
	UpdateProfile(ctx context.Context, profile *Profile) error
}

type ProfileUseCase interface {
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
	// UpdateProfile replaces the bio. A nil avatar keeps the current picture.
	UpdateProfile(ctx context.Context, userID uint, form *ProfileForm, avatarName string, avatar io.Reader) (*Profile, error)
}
