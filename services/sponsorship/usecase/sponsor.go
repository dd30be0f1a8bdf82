package usecase

import (
	"context"
	"sponsorship/domain"
	"time"
)

type sponsorUC struct {
	repo    domain.SponsorRepo
	TimeOut time.Duration
	now     func() time.Time
}

func NewSponsorUseCase(repo domain.SponsorRepo, timeOut time.Duration) domain.SponsorUseCase {
	return &sponsorUC{
		repo:    repo,
		TimeOut: timeOut,
		now:     time.Now,
	}
}

func (su *sponsorUC) ListSponsors(ctx context.Context, search, page string) (*[]domain.Sponsor, *domain.PageMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.ListSponsors(ctx, search, page, domain.No)
}

func (su *sponsorUC) ListDepartedSponsors(ctx context.Context, search, page string) (*[]domain.Sponsor, *domain.PageMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.ListSponsors(ctx, search, page, domain.Yes)
}

func (su *sponsorUC) GetSponsor(ctx context.Context, id uint) (*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.GetSponsorByID(ctx, id)
}

func (su *sponsorUC) CreateSponsor(ctx context.Context, form *domain.SponsorForm) (*domain.Sponsor, error) {
	sponsor, err := form.Build(su.now())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	if err := su.repo.CreateSponsor(ctx, sponsor); err != nil {
		return nil, err
	}
	return sponsor, nil
}

func (su *sponsorUC) UpdateSponsor(ctx context.Context, id uint, form *domain.SponsorForm) (*domain.Sponsor, error) {
	sponsor, err := form.Build(su.now())
	if err != nil {
		return nil, err
	}
	sponsor.ID = id

	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	if err := su.repo.UpdateSponsor(ctx, sponsor); err != nil {
		return nil, err
	}
	return su.repo.GetSponsorByID(ctx, id)
}

func (su *sponsorUC) DeleteSponsor(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.DeleteSponsor(ctx, id)
}

func (su *sponsorUC) DepartSponsor(ctx context.Context, id uint, req *domain.DepartureRequest) (*domain.SponsorDeparture, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	departure, err := req.Build(id, su.now())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	if err := su.repo.DepartSponsor(ctx, departure); err != nil {
		return nil, err
	}
	return departure, nil
}

func (su *sponsorUC) ReinstateSponsor(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.ReinstateSponsor(ctx, id)
}
