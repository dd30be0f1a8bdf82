package usecase

import (
	"context"
	"sponsorship/domain"
	"time"
)

type sponsorshipUC struct {
	repo    domain.SponsorshipRepo
	TimeOut time.Duration
	now     func() time.Time
}

func NewSponsorshipUseCase(repo domain.SponsorshipRepo, timeOut time.Duration) domain.SponsorshipUseCase {
	return &sponsorshipUC{
		repo:    repo,
		TimeOut: timeOut,
		now:     time.Now,
	}
}

func (su *sponsorshipUC) ListCandidates(ctx context.Context) (*domain.SponsorshipCandidates, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.ListCandidates(ctx)
}

// CreateSponsorship links a sponsor to a child. The existence check gives the friendly
// duplicate error; the unique index catches whatever races past it.
func (su *sponsorshipUC) CreateSponsorship(ctx context.Context, req *domain.SponsorshipRequest) (*domain.ChildSponsorship, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	sponsorship, err := req.Build(su.now())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	found, err := su.repo.SponsorshipExists(ctx, req.SponsorID, req.ChildID)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, domain.ErrSponsorshipExists
	}

	if err := su.repo.CreateSponsorship(ctx, sponsorship); err != nil {
		return nil, err
	}
	return sponsorship, nil
}

func (su *sponsorshipUC) TerminateSponsorship(ctx context.Context, childID uint) error {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.TerminateSponsorship(ctx, childID)
}

func (su *sponsorshipUC) DeleteSponsorship(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.DeleteSponsorship(ctx, id)
}

func (su *sponsorshipUC) ListSponsoredChildren(ctx context.Context, search, page string) (*[]domain.Child, *domain.PageMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.ListSponsoredChildren(ctx, search, page)
}

func (su *sponsorshipUC) GetChildReport(ctx context.Context, childID uint) (*domain.ChildSponsorshipReport, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	child, links, err := su.repo.ListSponsorshipsByChild(ctx, childID)
	if err != nil {
		return nil, err
	}

	return &domain.ChildSponsorshipReport{
		ChildID:      child.ID,
		PrefixedID:   child.PrefixedID(),
		FullName:     child.FullName,
		IsSponsored:  child.IsSponsored,
		Sponsorships: *links,
	}, nil
}
