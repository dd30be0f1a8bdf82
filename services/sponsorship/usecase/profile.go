package usecase

import (
	"context"
	"io"
	"sponsorship/domain"
	"time"
)

type profileUC struct {
	repo    domain.ProfileRepo
	avatars *pictureStore
	TimeOut time.Duration
}

func NewProfileUseCase(repo domain.ProfileRepo, uploadDir string, timeOut time.Duration) domain.ProfileUseCase {
	return &profileUC{
		repo:    repo,
		avatars: &pictureStore{dir: uploadDir, sub: avatarDir, field: "avatar"},
		TimeOut: timeOut,
	}
}

func (pu *profileUC) GetProfile(ctx context.Context, userID uint) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetOrCreateProfile(ctx, userID)
}

// UpdateProfile stores a new avatar before the row points at it. The new file is
// removed again if the write fails, the replaced one once it succeeds.
func (pu *profileUC) UpdateProfile(ctx context.Context, userID uint, form *domain.ProfileForm, avatarName string, avatar io.Reader) (*domain.Profile, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	profile, err := pu.repo.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	previous := profile.Avatar
	profile.Bio = form.Bio
	if avatar != nil {
		path, err := pu.avatars.save(avatarName, avatar)
		if err != nil {
			return nil, err
		}
		profile.Avatar = path
	}

	if err := pu.repo.UpdateProfile(ctx, profile); err != nil {
		if profile.Avatar != previous {
			pu.avatars.remove(profile.Avatar)
		}
		return nil, err
	}
	if profile.Avatar != previous {
		pu.avatars.remove(previous)
	}
	return profile, nil
}
