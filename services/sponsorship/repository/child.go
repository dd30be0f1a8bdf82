package repository

import (
	"context"
	"fmt"
	"sponsorship/domain"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type childRepository struct {
	db *gorm.DB
}

func NewChildRepository(database *gorm.DB) domain.ChildRepo {
	return &childRepository{
		db: database,
	}
}

func (cr *childRepository) ListChildren(ctx context.Context, search, page string) (*[]domain.Child, *domain.PageMeta, error) {
	var children []domain.Child

	meta, err := findPage(ctx, cr.db, &domain.Child{}, &children, searchScope("full_name", search), "id ASC", page, domain.ChildPageSize)
	if err != nil {
		return nil, nil, err
	}

	return &children, meta, nil
}

func (cr *childRepository) GetChildByID(ctx context.Context, id uint) (*domain.Child, error) {
	var child domain.Child

	err := cr.db.WithContext(ctx).
		Preload("ProfilePicture").
		Preload("Progress", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC, id DESC")
		}).
		Preload("Correspondence", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(correspondenceOrder)
		}).
		Preload("Incidents", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(incidentOrder)
		}).
		First(&child, id).Error
	if err != nil {
		return nil, notFoundOr(err, "child", id)
	}

	return &child, nil
}

func (cr *childRepository) CreateChild(ctx context.Context, child *domain.Child) error {
	if err := cr.db.WithContext(ctx).Omit(clause.Associations).Create(child).Error; err != nil {
		return fmt.Errorf("could not insert child: %w", err)
	}
	return nil
}

// UpdateChild overwrites every editable column. The sponsorship flag belongs to
// the sponsorship transitions and is left untouched.
func (cr *childRepository) UpdateChild(ctx context.Context, child *domain.Child) error {
	result := cr.db.WithContext(ctx).
		Model(&domain.Child{ID: child.ID}).
		Select("*").
		Omit("id", "created_at", "is_sponsored", clause.Associations).
		Updates(child)
	if result.Error != nil {
		return fmt.Errorf("could not update child: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("child %d: %w", child.ID, domain.ErrNotFound)
	}
	return nil
}

// Deleting a child removes every row that refers to it, sponsorship links included.
func (cr *childRepository) DeleteChild(ctx context.Context, id uint) (*string, error) {
	var picturePath *string

	err := RunInTx(ctx, cr.db, func(tx *gorm.DB) error {
		var child domain.Child
		if err := tx.Preload("ProfilePicture").First(&child, id).Error; err != nil {
			return notFoundOr(err, "child", id)
		}

		if child.ProfilePicture != nil {
			path := child.ProfilePicture.Picture
			picturePath = &path
		}

		if err := deleteChildDependents(tx, "child_id = ?", id); err != nil {
			return err
		}

		if err := tx.Delete(&domain.Child{}, id).Error; err != nil {
			return fmt.Errorf("could not delete child: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return picturePath, nil
}

func (cr *childRepository) DeleteAllChildren(ctx context.Context) (int64, []string, error) {
	var (
		deleted  int64
		pictures []string
	)

	err := RunInTx(ctx, cr.db, func(tx *gorm.DB) error {
		if err := tx.Model(&domain.ChildProfilePicture{}).Pluck("picture", &pictures).Error; err != nil {
			return fmt.Errorf("could not list pictures: %w", err)
		}

		if err := deleteChildDependents(tx, "1 = 1"); err != nil {
			return err
		}

		result := tx.Where("1 = 1").Delete(&domain.Child{})
		if result.Error != nil {
			return fmt.Errorf("could not delete children: %w", result.Error)
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	return deleted, pictures, nil
}

func deleteChildDependents(tx *gorm.DB, where string, args ...interface{}) error {
	for _, model := range []interface{}{
		&domain.ChildProfilePicture{},
		&domain.ChildProgress{},
		&domain.ChildCorrespondence{},
		&domain.ChildIncident{},
		&domain.ChildSponsorship{},
	} {
		if err := tx.Where(where, args...).Delete(model).Error; err != nil {
			return fmt.Errorf("could not delete %T rows: %w", model, err)
		}
	}
	return nil
}

func (cr *childRepository) SaveProfilePicture(ctx context.Context, pic *domain.ChildProfilePicture) (*string, error) {
	var previous *string

	err := RunInTx(ctx, cr.db, func(tx *gorm.DB) error {
		found, err := exists(tx, &domain.Child{}, pic.ChildID)
		if err != nil {
			return fmt.Errorf("could not check child: %w", err)
		}
		if !found {
			return fmt.Errorf("child %d: %w", pic.ChildID, domain.ErrNotFound)
		}

		var current domain.ChildProfilePicture
		err = tx.Where("child_id = ?", pic.ChildID).Limit(1).Find(&current).Error
		if err != nil {
			return fmt.Errorf("could not get current picture: %w", err)
		}

		pic.IsCurrent = true
		if current.ID == 0 {
			return tx.Create(pic).Error
		}

		path := current.Picture
		previous = &path
		pic.ID = current.ID
		pic.UploadedAt = time.Now()
		return tx.Model(&current).Updates(map[string]interface{}{
			"picture":     pic.Picture,
			"uploaded_at": pic.UploadedAt,
			"is_current":  true,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return previous, nil
}

func (cr *childRepository) ListProgress(ctx context.Context, childID uint) (*[]domain.ChildProgress, error) {
	return listChildRecords[domain.ChildProgress](ctx, cr.db, childID, "created_at DESC, id DESC", "progress")
}

func (cr *childRepository) CreateProgress(ctx context.Context, progress *domain.ChildProgress) error {
	return createChildRecord(ctx, cr.db, progress.ChildID, progress, "progress")
}

func (cr *childRepository) DeleteProgress(ctx context.Context, id uint) error {
	return deleteRecord(ctx, cr.db, &domain.ChildProgress{}, id, "progress")
}

func (cr *childRepository) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	var d domain.Dashboard
	db := cr.db.WithContext(ctx)

	counts := []struct {
		model interface{}
		where string
		args  []interface{}
		dest  *int64
	}{
		{&domain.Child{}, "1 = 1", nil, &d.TotalChildren},
		{&domain.Child{}, "is_sponsored = ?", []interface{}{domain.Yes}, &d.SponsoredChildren},
		{&domain.Child{}, "is_departed = ?", []interface{}{domain.Yes}, &d.DepartedChildren},
		{&domain.Sponsor{}, "is_departed = ?", []interface{}{domain.No}, &d.ActiveSponsors},
		{&domain.Sponsor{}, "is_departed = ?", []interface{}{domain.Yes}, &d.DepartedSponsors},
		{&domain.Policy{}, "1 = 1", nil, &d.Policies},
	}

	for _, c := range counts {
		if err := db.Model(c.model).Where(c.where, c.args...).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("could not count %T: %w", c.model, err)
		}
	}

	return &d, nil
}
