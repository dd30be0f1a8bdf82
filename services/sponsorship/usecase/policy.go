package usecase

import (
	"context"
	"sponsorship/domain"
	"time"
)

type policyUC struct {
	repo    domain.PolicyRepo
	TimeOut time.Duration
}

func NewPolicyUseCase(repo domain.PolicyRepo, timeOut time.Duration) domain.PolicyUseCase {
	return &policyUC{
		repo:    repo,
		TimeOut: timeOut,
	}
}

func (pu *policyUC) ListPolicies(ctx context.Context, search, page string) (*[]domain.Policy, *domain.PageMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.ListPolicies(ctx, search, page)
}

func (pu *policyUC) GetPolicy(ctx context.Context, id uint) (*domain.Policy, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetPolicyByID(ctx, id)
}

// CreatePolicy always starts the policy out as not yet validated.
func (pu *policyUC) CreatePolicy(ctx context.Context, policy *domain.Policy, userID uint) (*domain.Policy, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	policy.ID = 0
	policy.IsValid = false
	policy.CreatedBy = userID

	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	if err := pu.repo.CreatePolicy(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

func (pu *policyUC) UpdatePolicy(ctx context.Context, id uint, policy *domain.Policy) (*domain.Policy, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	policy.ID = id

	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	if err := pu.repo.UpdatePolicy(ctx, policy); err != nil {
		return nil, err
	}
	return pu.repo.GetPolicyByID(ctx, id)
}

func (pu *policyUC) DeletePolicy(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.DeletePolicy(ctx, id)
}

func (pu *policyUC) ValidatePolicy(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.ValidatePolicy(ctx, id)
}

func (pu *policyUC) MarkPolicyRead(ctx context.Context, userID, policyID uint) (*domain.PolicyRead, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.MarkPolicyRead(ctx, userID, policyID)
}
