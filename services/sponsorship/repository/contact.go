package repository

import (
	"context"
	"fmt"
	"sponsorship/domain"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(database *gorm.DB) domain.ContactRepo {
	return &contactRepository{
		db: database,
	}
}

func (cr *contactRepository) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	if err := cr.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("could not save contact message: %w", err)
	}
	return nil
}
