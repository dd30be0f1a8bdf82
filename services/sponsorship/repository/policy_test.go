package repository

import (
	"context"
	"sponsorship/domain"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PolicyRepositorySuite struct {
	repoSuite
	repo domain.PolicyRepo
}

func TestPolicyRepositorySuite(t *testing.T) {
	suite.Run(t, new(PolicyRepositorySuite))
}

func (s *PolicyRepositorySuite) SetupTest() {
	s.repoSuite.SetupTest()
	s.repo = NewPolicyRepository(s.db)
}

func (s *PolicyRepositorySuite) seedPolicy(title string) *domain.Policy {
	p := &domain.Policy{Title: title, Content: "Body of " + title, CreatedBy: 1}
	s.Require().NoError(s.repo.CreatePolicy(context.Background(), p))
	return p
}

func (s *PolicyRepositorySuite) TestValidateOnlyOnce() {
	ctx := context.Background()
	p := s.seedPolicy("Child protection")

	changed, err := s.repo.ValidatePolicy(ctx, p.ID)
	s.Require().NoError(err)
	s.True(changed)

	changed, err = s.repo.ValidatePolicy(ctx, p.ID)
	s.Require().NoError(err)
	s.False(changed)

	got, err := s.repo.GetPolicyByID(ctx, p.ID)
	s.Require().NoError(err)
	s.True(got.IsValid)

	_, err = s.repo.ValidatePolicy(ctx, 404)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PolicyRepositorySuite) TestMarkReadIsIdempotent() {
	ctx := context.Background()
	p := s.seedPolicy("Safeguarding")

	first, created, err := s.repo.MarkPolicyRead(ctx, 7, p.ID)
	s.Require().NoError(err)
	s.True(created)

	second, created, err := s.repo.MarkPolicyRead(ctx, 7, p.ID)
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.ID, second.ID)
	s.Equal(int64(1), s.count(&domain.PolicyRead{}))

	_, _, err = s.repo.MarkPolicyRead(ctx, 7, 404)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PolicyRepositorySuite) TestDeleteRemovesReads() {
	ctx := context.Background()
	p := s.seedPolicy("Safeguarding")
	_, _, err := s.repo.MarkPolicyRead(ctx, 1, p.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.repo.DeletePolicy(ctx, p.ID))
	s.Equal(int64(0), s.count(&domain.PolicyRead{}))
	s.ErrorIs(s.repo.DeletePolicy(ctx, p.ID), domain.ErrNotFound)
}

func (s *PolicyRepositorySuite) TestUpdateAndSearch() {
	ctx := context.Background()
	p := s.seedPolicy("Travel")
	s.seedPolicy("Finance")

	p.Title = "Travel and visits"
	s.Require().NoError(s.repo.UpdatePolicy(ctx, p))

	found, meta, err := s.repo.ListPolicies(ctx, "VISITS", "")
	s.Require().NoError(err)
	s.Require().Len(*found, 1)
	s.Equal(p.ID, (*found)[0].ID)
	s.Equal(int64(1), meta.Total)

	s.ErrorIs(s.repo.UpdatePolicy(ctx, &domain.Policy{ID: 404, Title: "x", Content: "y"}), domain.ErrNotFound)
}
