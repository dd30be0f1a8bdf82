package repository

import (
	"context"
	"fmt"
	"sponsorship/domain"

	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(database *gorm.DB) domain.ProfileRepo {
	return &profileRepository{
		db: database,
	}
}

// GetOrCreateProfile returns the user's profile, creating a blank one on first access.
// A concurrent insert that loses the race on the unique index reads back the winner's row.
func (pr *profileRepository) GetOrCreateProfile(ctx context.Context, userID uint) (*domain.Profile, error) {
	db := pr.db.WithContext(ctx)

	var users int64
	if err := db.Model(&domain.User{}).Where("user_id = ?", userID).Count(&users).Error; err != nil {
		return nil, fmt.Errorf("could not check user: %w", err)
	}
	if users == 0 {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}

	var profile domain.Profile
	if err := db.Where("user_id = ?", userID).Limit(1).Find(&profile).Error; err != nil {
		return nil, fmt.Errorf("could not look up profile: %w", err)
	}
	if profile.ID != 0 {
		return &profile, nil
	}

	profile = domain.Profile{UserID: userID, Avatar: domain.DefaultAvatar}
	if err := db.Create(&profile).Error; err != nil {
		if !isUniqueViolation(err) {
			return nil, fmt.Errorf("could not insert profile: %w", err)
		}
		profile = domain.Profile{}
		if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			return nil, fmt.Errorf("could not look up profile: %w", err)
		}
	}

	return &profile, nil
}

func (pr *profileRepository) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	result := pr.db.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"bio":    profile.Bio,
			"avatar": profile.Avatar,
		})
	if result.Error != nil {
		return fmt.Errorf("could not update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("profile of user %d: %w", profile.UserID, domain.ErrNotFound)
	}
	return nil
}
