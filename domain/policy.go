package domain

import (
	"context"
	"strings"
	"time"
)

type Policy struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:varchar(100);not null;index" json:"title" valid:"required~Title is required,stringlength(1|100)~Ensure this value has at most 100 characters"`
	Content   string    `gorm:"type:text;not null" json:"content" valid:"required~Content is required"`
	IsValid   bool      `gorm:"not null;default:false" json:"is_valid"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Policy) TableName() string { return "policies" }

// Validate checks the editable fields. IsValid is never taken from input.
func (p *Policy) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	if errs := checkTags(p); len(errs) > 0 {
		return NewValidationError(errs)
	}
	return nil
}

type PolicyRead struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_user_policy" json:"user_id"`
	PolicyID uint      `gorm:"not null;uniqueIndex:idx_user_policy;index" json:"policy_id"`
	ReadAt   time.Time `gorm:"autoCreateTime" json:"read_at"`
}

func (PolicyRead) TableName() string { return "policy_reads" }

type PolicyRepo interface {
	ListPolicies(ctx context.Context, search, page string) (*[]Policy, *PageMeta, error)
	GetPolicyByID(ctx context.Context, id uint) (*Policy, error)
	CreatePolicy(ctx context.Context, policy *Policy) error
	UpdatePolicy(ctx context.Context, policy *Policy) error
	DeletePolicy(ctx context.Context, id uint) error
	// ValidatePolicy reports whether this call flipped the policy to valid.
	ValidatePolicy(ctx context.Context, id uint) (bool, error)
	// MarkPolicyRead reports whether this call created the acknowledgement.
	MarkPolicyRead(ctx context.Context, userID, policyID uint) (*PolicyRead, bool, error)
}

type PolicyUseCase interface {
	ListPolicies(ctx context.Context, search, page string) (*[]Policy, *PageMeta, error)
	GetPolicy(ctx context.Context, id uint) (*Policy, error)
	CreatePolicy(ctx context.Context, policy *Policy, userID uint) (*Policy, error)
	UpdatePolicy(ctx context.Context, id uint, policy *Policy) (*Policy, error)
	DeletePolicy(ctx context.Context, id uint) error
	ValidatePolicy(ctx context.Context, id uint) (bool, error)
	MarkPolicyRead(ctx context.Context, userID, policyID uint) (*PolicyRead, bool, error)
}
