package repository

import (
	"context"
	"errors"
	"fmt"
	"sponsorship/domain"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) domain.UserRepo {
	return &userRepository{
		db: database,
	}
}

func (ur *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := ur.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return &user, nil
}

func (ur *userRepository) FindUserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := ur.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFoundOr(err, "user", id)
	}
	return &user, nil
}

func (ur *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if err := ur.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username %s already exists: %w", user.Username, domain.ErrDuplicate)
		}
		return fmt.Errorf("could not insert user: %w", err)
	}
	return nil
}

func (ur *userRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	result := ur.db.WithContext(ctx).Model(&domain.User{}).Where("user_id = ?", id).Update("password", hash)
	if result.Error != nil {
		return fmt.Errorf("could not update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
