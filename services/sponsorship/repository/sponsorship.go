package repository

import (
	"context"
	"fmt"
	"sponsorship/domain"

	"gorm.io/gorm"
)

type sponsorshipRepository struct {
	db *gorm.DB
}

func NewSponsorshipRepository(database *gorm.DB) domain.SponsorshipRepo {
	return &sponsorshipRepository{
		db: database,
	}
}

// ListCandidates returns the children and sponsors that may be linked, both still in the programme.
func (sr *sponsorshipRepository) ListCandidates(ctx context.Context) (*domain.SponsorshipCandidates, error) {
	candidates := domain.SponsorshipCandidates{
		Children: []domain.Child{},
		Sponsors: []domain.Sponsor{},
	}

	db := sr.db.WithContext(ctx)
	if err := db.Where("is_departed = ?", domain.No).Order("id ASC").Find(&candidates.Children).Error; err != nil {
		return nil, fmt.Errorf("could not list children: %w", err)
	}
	if err := db.Where("is_departed = ?", domain.No).Order("id ASC").Find(&candidates.Sponsors).Error; err != nil {
		return nil, fmt.Errorf("could not list sponsors: %w", err)
	}

	return &candidates, nil
}

func (sr *sponsorshipRepository) SponsorshipExists(ctx context.Context, sponsorID, childID uint) (bool, error) {
	var count int64
	err := sr.db.WithContext(ctx).Model(&domain.ChildSponsorship{}).
		Where("sponsor_id = ? AND child_id = ?", sponsorID, childID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("could not check sponsorship: %w", err)
	}
	return count > 0, nil
}

// CreateSponsorship inserts the link and marks the child sponsored as one unit.
// The unique index on (sponsor_id, child_id) is the final word on duplicates.
func (sr *sponsorshipRepository) CreateSponsorship(ctx context.Context, sponsorship *domain.ChildSponsorship) error {
	return RunInTx(ctx, sr.db, func(tx *gorm.DB) error {
		var sponsor domain.Sponsor
		if err := tx.First(&sponsor, sponsorship.SponsorID).Error; err != nil {
			return notFoundOr(err, "sponsor", sponsorship.SponsorID)
		}

		var child domain.Child
		if err := tx.First(&child, sponsorship.ChildID).Error; err != nil {
			return notFoundOr(err, "child", sponsorship.ChildID)
		}

		fields := map[string]string{}
		if sponsor.IsDeparted == domain.Yes {
			fields["sponsor_id"] = "Sponsor has departed and cannot take new sponsorships"
		}
		if child.IsDeparted == domain.Yes {
			fields["child_id"] = "Child has departed and cannot be sponsored"
		}
		if len(fields) > 0 {
			return domain.NewValidationError(fields)
		}

		if err := tx.Omit("Sponsor", "Child").Create(sponsorship).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrSponsorshipExists
			}
			return fmt.Errorf("could not insert sponsorship: %w", err)
		}

		err := tx.Model(&domain.Child{}).Where("id = ?", child.ID).Update("is_sponsored", domain.Yes).Error
		if err != nil {
			return fmt.Errorf("could not mark child sponsored: %w", err)
		}
		return nil
	})
}

// TerminateSponsorship only clears the child's sponsored flag. The link rows stay as they are.
func (sr *sponsorshipRepository) TerminateSponsorship(ctx context.Context, childID uint) error {
	result := sr.db.WithContext(ctx).Model(&domain.Child{}).Where("id = ?", childID).Update("is_sponsored", domain.No)
	if result.Error != nil {
		return fmt.Errorf("could not terminate sponsorship: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("child %d: %w", childID, domain.ErrNotFound)
	}
	return nil
}

func (sr *sponsorshipRepository) DeleteSponsorship(ctx context.Context, id uint) error {
	return RunInTx(ctx, sr.db, func(tx *gorm.DB) error {
		var link domain.ChildSponsorship
		if err := tx.First(&link, id).Error; err != nil {
			return notFoundOr(err, "sponsorship", id)
		}

		if err := tx.Delete(&domain.ChildSponsorship{}, link.ID).Error; err != nil {
			return fmt.Errorf("could not delete sponsorship: %w", err)
		}

		return syncSponsoredFlag(tx, link.ChildID)
	})
}

func (sr *sponsorshipRepository) ListSponsoredChildren(ctx context.Context, search, page string) (*[]domain.Child, *domain.PageMeta, error) {
	var children []domain.Child

	filter := func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_departed = ? AND is_sponsored = ?", domain.No, domain.Yes).Scopes(searchScope("full_name", search))
	}

	meta, err := findPage(ctx, sr.db, &domain.Child{}, &children, filter, "id ASC", page, domain.DefaultPageSize)
	if err != nil {
		return nil, nil, err
	}

	return &children, meta, nil
}

func (sr *sponsorshipRepository) ListSponsorshipsByChild(ctx context.Context, childID uint) (*domain.Child, *[]domain.ChildSponsorship, error) {
	var child domain.Child
	if err := sr.db.WithContext(ctx).First(&child, childID).Error; err != nil {
		return nil, nil, notFoundOr(err, "child", childID)
	}

	var links []domain.ChildSponsorship
	err := sr.db.WithContext(ctx).
		Preload("Sponsor").
		Where("child_id = ?", childID).
		Order("start_date DESC, id DESC").
		Find(&links).Error
	if err != nil {
		return nil, nil, fmt.Errorf("could not list sponsorships: %w", err)
	}

	return &child, &links, nil
}

// syncSponsoredFlag clears the child's sponsored flag once no link references it.
// It never raises the flag, so a terminated sponsorship stays terminated.
func syncSponsoredFlag(tx *gorm.DB, childID uint) error {
	var remaining int64
	if err := tx.Model(&domain.ChildSponsorship{}).Where("child_id = ?", childID).Count(&remaining).Error; err != nil {
		return fmt.Errorf("could not count sponsorships: %w", err)
	}
	if remaining > 0 {
		return nil
	}

	if err := tx.Model(&domain.Child{}).Where("id = ?", childID).Update("is_sponsored", domain.No).Error; err != nil {
		return fmt.Errorf("could not update sponsored flag: %w", err)
	}
	return nil
}
