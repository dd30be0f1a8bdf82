package repository

import (
	"context"
	"fmt"
	"sponsorship/domain"

	"gorm.io/gorm"
)

type policyRepository struct {
	db *gorm.DB
}

func NewPolicyRepository(database *gorm.DB) domain.PolicyRepo {
	return &policyRepository{
		db: database,
	}
}

func (pr *policyRepository) ListPolicies(ctx context.Context, search, page string) (*[]domain.Policy, *domain.PageMeta, error) {
	var policies []domain.Policy

	meta, err := findPage(ctx, pr.db, &domain.Policy{}, &policies, searchScope("title", search), "created_at DESC, id DESC", page, domain.DefaultPageSize)
	if err != nil {
		return nil, nil, err
	}

	return &policies, meta, nil
}

func (pr *policyRepository) GetPolicyByID(ctx context.Context, id uint) (*domain.Policy, error) {
	var policy domain.Policy
	if err := pr.db.WithContext(ctx).First(&policy, id).Error; err != nil {
		return nil, notFoundOr(err, "policy", id)
	}
	return &policy, nil
}

func (pr *policyRepository) CreatePolicy(ctx context.Context, policy *domain.Policy) error {
	if err := pr.db.WithContext(ctx).Create(policy).Error; err != nil {
		return fmt.Errorf("could not insert policy: %w", err)
	}
	return nil
}

func (pr *policyRepository) UpdatePolicy(ctx context.Context, policy *domain.Policy) error {
	result := pr.db.WithContext(ctx).Model(&domain.Policy{ID: policy.ID}).Updates(map[string]interface{}{
		"title":   policy.Title,
		"content": policy.Content,
	})
	if result.Error != nil {
		return fmt.Errorf("could not update policy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("policy %d: %w", policy.ID, domain.ErrNotFound)
	}
	return nil
}

func (pr *policyRepository) DeletePolicy(ctx context.Context, id uint) error {
	return RunInTx(ctx, pr.db, func(tx *gorm.DB) error {
		if err := tx.Where("policy_id = ?", id).Delete(&domain.PolicyRead{}).Error; err != nil {
			return fmt.Errorf("could not delete policy reads: %w", err)
		}

		result := tx.Delete(&domain.Policy{}, id)
		if result.Error != nil {
			return fmt.Errorf("could not delete policy: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("policy %d: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// ValidatePolicy moves is_valid from false to true. The conditional update makes a
// repeated call a no-op that reports false.
func (pr *policyRepository) ValidatePolicy(ctx context.Context, id uint) (bool, error) {
	db := pr.db.WithContext(ctx)

	result := db.Model(&domain.Policy{}).Where("id = ? AND is_valid = ?", id, false).Update("is_valid", true)
	if result.Error != nil {
		return false, fmt.Errorf("could not validate policy: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	found, err := exists(db, &domain.Policy{}, id)
	if err != nil {
		return false, fmt.Errorf("could not check policy: %w", err)
	}
	if !found {
		return false, fmt.Errorf("policy %d: %w", id, domain.ErrNotFound)
	}
	return false, nil
}

// MarkPolicyRead is a get-or-create on (user, policy). A concurrent insert that
// loses the race on the unique index reads back the winner's row.
func (pr *policyRepository) MarkPolicyRead(ctx context.Context, userID, policyID uint) (*domain.PolicyRead, bool, error) {
	db := pr.db.WithContext(ctx)

	found, err := exists(db, &domain.Policy{}, policyID)
	if err != nil {
		return nil, false, fmt.Errorf("could not check policy: %w", err)
	}
	if !found {
		return nil, false, fmt.Errorf("policy %d: %w", policyID, domain.ErrNotFound)
	}

	var read domain.PolicyRead
	if err := db.Where("user_id = ? AND policy_id = ?", userID, policyID).Limit(1).Find(&read).Error; err != nil {
		return nil, false, fmt.Errorf("could not look up policy read: %w", err)
	}
	if read.ID != 0 {
		return &read, false, nil
	}

	read = domain.PolicyRead{UserID: userID, PolicyID: policyID}
	if err := db.Create(&read).Error; err != nil {
		if !isUniqueViolation(err) {
			return nil, false, fmt.Errorf("could not insert policy read: %w", err)
		}
		read = domain.PolicyRead{}
		if err := db.Where("user_id = ? AND policy_id = ?", userID, policyID).First(&read).Error; err != nil {
			return nil, false, fmt.Errorf("could not look up policy read: %w", err)
		}
		return &read, false, nil
	}

	return &read, true, nil
}
