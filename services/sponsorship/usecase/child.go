package usecase

import (
	"context"
	"io"
	"sponsorship/domain"
	"time"
)

type childUC struct {
	repo     domain.ChildRepo
	pictures *pictureStore
	TimeOut  time.Duration
	now      func() time.Time
}

func NewChildUseCase(repo domain.ChildRepo, uploadDir string, timeOut time.Duration) domain.ChildUseCase {
	return &childUC{
		repo:     repo,
		pictures: &pictureStore{dir: uploadDir, sub: pictureDir, field: "picture"},
		TimeOut:  timeOut,
		now:      time.Now,
	}
}

func (cu *childUC) ListChildren(ctx context.Context, search, page string) (*[]domain.Child, *domain.PageMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.ListChildren(ctx, search, page)
}

func (cu *childUC) GetChild(ctx context.Context, id uint) (*domain.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.GetChildByID(ctx, id)
}

// buildNew validates a registration. A new child has no sponsorship links yet,
// so is_sponsored always starts at No whatever the input says.
func (cu *childUC) buildNew(form *domain.ChildForm) (*domain.Child, error) {
	child, err := form.Build(cu.now())
	if err != nil {
		return nil, err
	}
	child.IsSponsored = domain.No
	return child, nil
}

func (cu *childUC) CreateChild(ctx context.Context, form *domain.ChildForm) (*domain.Child, error) {
	child, err := cu.buildNew(form)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	if err := cu.repo.CreateChild(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (cu *childUC) UpdateChild(ctx context.Context, id uint, form *domain.ChildForm) (*domain.Child, error) {
	child, err := form.Build(cu.now())
	if err != nil {
		return nil, err
	}
	child.ID = id

	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	if err := cu.repo.UpdateChild(ctx, child); err != nil {
		return nil, err
	}
	return cu.repo.GetChildByID(ctx, id)
}

func (cu *childUC) DeleteChild(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	picture, err := cu.repo.DeleteChild(ctx, id)
	if err != nil {
		return err
	}
	if picture != nil {
		cu.pictures.remove(*picture)
	}
	return nil
}

func (cu *childUC) DeleteAllChildren(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	deleted, pictures, err := cu.repo.DeleteAllChildren(ctx)
	if err != nil {
		return 0, err
	}
	for _, picture := range pictures {
		cu.pictures.remove(picture)
	}
	return deleted, nil
}

// UploadProfilePicture stores the resized image first and then points the child at it.
// The new file is removed again if the database write fails, the replaced one once it succeeds.
func (cu *childUC) UploadProfilePicture(ctx context.Context, childID uint, filename string, r io.Reader) (*domain.ChildProfilePicture, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	if _, err := cu.repo.GetChildByID(ctx, childID); err != nil {
		return nil, err
	}

	path, err := cu.pictures.save(filename, r)
	if err != nil {
		return nil, err
	}

	pic := &domain.ChildProfilePicture{ChildID: childID, Picture: path}
	previous, err := cu.repo.SaveProfilePicture(ctx, pic)
	if err != nil {
		cu.pictures.remove(path)
		return nil, err
	}
	if previous != nil && *previous != path {
		cu.pictures.remove(*previous)
	}
	return pic, nil
}

func (cu *childUC) ListProgress(ctx context.Context, childID uint) (*[]domain.ChildProgress, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.ListProgress(ctx, childID)
}

func (cu *childUC) CreateProgress(ctx context.Context, childID uint, form *domain.ProgressForm) (*domain.ChildProgress, error) {
	progress, err := form.Build(childID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	if err := cu.repo.CreateProgress(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (cu *childUC) DeleteProgress(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.DeleteProgress(ctx, id)
}

func (cu *childUC) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.GetDashboard(ctx)
}
