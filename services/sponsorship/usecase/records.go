package usecase

import (
	"context"
	"sponsorship/domain"
)

func (cu *childUC) ListCorrespondence(ctx context.Context, childID uint) (*[]domain.ChildCorrespondence, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.ListCorrespondence(ctx, childID)
}

func (cu *childUC) CreateCorrespondence(ctx context.Context, childID uint, form *domain.CorrespondenceForm) (*domain.ChildCorrespondence, error) {
	correspondence, err := form.Build(childID, cu.now())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	if err := cu.repo.CreateCorrespondence(ctx, correspondence); err != nil {
		return nil, err
	}
	return correspondence, nil
}

func (cu *childUC) DeleteCorrespondence(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.DeleteCorrespondence(ctx, id)
}

func (cu *childUC) ListIncidents(ctx context.Context, childID uint) (*[]domain.ChildIncident, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.ListIncidents(ctx, childID)
}

func (cu *childUC) CreateIncident(ctx context.Context, childID uint, reportedBy string, form *domain.IncidentForm) (*domain.ChildIncident, error) {
	incident, err := form.Build(childID, reportedBy, cu.now())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	if err := cu.repo.CreateIncident(ctx, incident); err != nil {
		return nil, err
	}
	return incident, nil
}

func (cu *childUC) DeleteIncident(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.DeleteIncident(ctx, id)
}
