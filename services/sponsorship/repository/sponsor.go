package repository

import (
	"context"
	"fmt"
	"sponsorship/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sponsorRepository struct {
	db *gorm.DB
}

func NewSponsorRepository(database *gorm.DB) domain.SponsorRepo {
	return &sponsorRepository{
		db: database,
	}
}

// ListSponsors pages the sponsors whose departure status equals departed. The
// search matches first name, last name or both together.
func (sr *sponsorRepository) ListSponsors(ctx context.Context, search, page string, departed domain.YesNo) (*[]domain.Sponsor, *domain.PageMeta, error) {
	var sponsors []domain.Sponsor

	filter := func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_departed = ?", departed).Scopes(searchScope("first_name || ' ' || last_name", search))
	}

	var preload []scope
	if departed == domain.Yes {
		preload = append(preload, func(tx *gorm.DB) *gorm.DB {
			return tx.Preload("Departures", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("departure_date DESC, id DESC")
			})
		})
	}

	meta, err := findPage(ctx, sr.db, &domain.Sponsor{}, &sponsors, filter, "id ASC", page, domain.DefaultPageSize, preload...)
	if err != nil {
		return nil, nil, err
	}

	return &sponsors, meta, nil
}

func (sr *sponsorRepository) GetSponsorByID(ctx context.Context, id uint) (*domain.Sponsor, error) {
	var sponsor domain.Sponsor

	err := sr.db.WithContext(ctx).
		Preload("Departures", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("departure_date DESC, id DESC")
		}).
		First(&sponsor, id).Error
	if err != nil {
		return nil, notFoundOr(err, "sponsor", id)
	}

	return &sponsor, nil
}

func (sr *sponsorRepository) CreateSponsor(ctx context.Context, sponsor *domain.Sponsor) error {
	if err := sr.db.WithContext(ctx).Omit(clause.Associations).Create(sponsor).Error; err != nil {
		return fmt.Errorf("could not insert sponsor: %w", err)
	}
	return nil
}

// UpdateSponsor leaves the departure status alone, that moves only through depart and reinstate.
func (sr *sponsorRepository) UpdateSponsor(ctx context.Context, sponsor *domain.Sponsor) error {
	result := sr.db.WithContext(ctx).
		Model(&domain.Sponsor{ID: sponsor.ID}).
		Select("*").
		Omit("id", "created_at", "is_departed", clause.Associations).
		Updates(sponsor)
	if result.Error != nil {
		return fmt.Errorf("could not update sponsor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("sponsor %d: %w", sponsor.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteSponsor removes the sponsor with its departures and sponsorships. Children
// left without any sponsorship are marked as not sponsored.
func (sr *sponsorRepository) DeleteSponsor(ctx context.Context, id uint) error {
	return RunInTx(ctx, sr.db, func(tx *gorm.DB) error {
		found, err := exists(tx, &domain.Sponsor{}, id)
		if err != nil {
			return fmt.Errorf("could not check sponsor: %w", err)
		}
		if !found {
			return fmt.Errorf("sponsor %d: %w", id, domain.ErrNotFound)
		}

		var childIDs []uint
		if err := tx.Model(&domain.ChildSponsorship{}).Where("sponsor_id = ?", id).Pluck("child_id", &childIDs).Error; err != nil {
			return fmt.Errorf("could not list sponsored children: %w", err)
		}

		if err := tx.Where("sponsor_id = ?", id).Delete(&domain.ChildSponsorship{}).Error; err != nil {
			return fmt.Errorf("could not delete sponsorships: %w", err)
		}
		if err := tx.Where("sponsor_id = ?", id).Delete(&domain.SponsorDeparture{}).Error; err != nil {
			return fmt.Errorf("could not delete departures: %w", err)
		}
		if err := tx.Delete(&domain.Sponsor{}, id).Error; err != nil {
			return fmt.Errorf("could not delete sponsor: %w", err)
		}

		for _, childID := range childIDs {
			if err := syncSponsoredFlag(tx, childID); err != nil {
				return err
			}
		}
		return nil
	})
}

// DepartSponsor records the departure and flags the sponsor as departed in one unit.
func (sr *sponsorRepository) DepartSponsor(ctx context.Context, departure *domain.SponsorDeparture) error {
	return RunInTx(ctx, sr.db, func(tx *gorm.DB) error {
		var sponsor domain.Sponsor
		if err := tx.First(&sponsor, departure.SponsorID).Error; err != nil {
			return notFoundOr(err, "sponsor", departure.SponsorID)
		}

		if sponsor.IsDeparted == domain.Yes {
			return domain.NewValidationError(map[string]string{
				"sponsor_id": "Sponsor has already departed",
			})
		}

		if err := tx.Create(departure).Error; err != nil {
			return fmt.Errorf("could not insert departure: %w", err)
		}

		err := tx.Model(&domain.Sponsor{}).Where("id = ?", sponsor.ID).Update("is_departed", domain.Yes).Error
		if err != nil {
			return fmt.Errorf("could not mark sponsor departed: %w", err)
		}
		return nil
	})
}

// ReinstateSponsor clears the departed flag. Departure history is kept.
func (sr *sponsorRepository) ReinstateSponsor(ctx context.Context, id uint) error {
	result := sr.db.WithContext(ctx).Model(&domain.Sponsor{}).Where("id = ?", id).Update("is_departed", domain.No)
	if result.Error != nil {
		return fmt.Errorf("could not reinstate sponsor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("sponsor %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
