package repository

import (
	"context"
	"fmt"
	"sponsorship/domain"

	"gorm.io/gorm"
)

const (
	correspondenceOrder = "date_sent DESC, id DESC"
	incidentOrder       = "incident_date DESC, id DESC"
)

func requireChild(db *gorm.DB, childID uint) error {
	found, err := exists(db, &domain.Child{}, childID)
	if err != nil {
		return fmt.Errorf("could not check child: %w", err)
	}
	if !found {
		return fmt.Errorf("child %d: %w", childID, domain.ErrNotFound)
	}
	return nil
}

// listChildRecords loads every T that belongs to childID. A missing child is NotFound,
// a child without records gives an empty list.
func listChildRecords[T any](ctx context.Context, database *gorm.DB, childID uint, order, what string) (*[]T, error) {
	db := database.WithContext(ctx)
	if err := requireChild(db, childID); err != nil {
		return nil, err
	}

	var records []T
	if err := db.Where("child_id = ?", childID).Order(order).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("could not list %s: %w", what, err)
	}
	return &records, nil
}

func createChildRecord(ctx context.Context, database *gorm.DB, childID uint, record interface{}, what string) error {
	db := database.WithContext(ctx)
	if err := requireChild(db, childID); err != nil {
		return err
	}

	if err := db.Create(record).Error; err != nil {
		return fmt.Errorf("could not insert %s: %w", what, err)
	}
	return nil
}

func deleteRecord(ctx context.Context, database *gorm.DB, model interface{}, id uint, what string) error {
	result := database.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return fmt.Errorf("could not delete %s: %w", what, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
	}
	return nil
}

func (cr *childRepository) ListCorrespondence(ctx context.Context, childID uint) (*[]domain.ChildCorrespondence, error) {
	return listChildRecords[domain.ChildCorrespondence](ctx, cr.db, childID, correspondenceOrder, "correspondence")
}

func (cr *childRepository) CreateCorrespondence(ctx context.Context, correspondence *domain.ChildCorrespondence) error {
	return createChildRecord(ctx, cr.db, correspondence.ChildID, correspondence, "correspondence")
}

func (cr *childRepository) DeleteCorrespondence(ctx context.Context, id uint) error {
	return deleteRecord(ctx, cr.db, &domain.ChildCorrespondence{}, id, "correspondence")
}

func (cr *childRepository) ListIncidents(ctx context.Context, childID uint) (*[]domain.ChildIncident, error) {
	return listChildRecords[domain.ChildIncident](ctx, cr.db, childID, incidentOrder, "incidents")
}

func (cr *childRepository) CreateIncident(ctx context.Context, incident *domain.ChildIncident) error {
	return createChildRecord(ctx, cr.db, incident.ChildID, incident, "incident")
}

func (cr *childRepository) DeleteIncident(ctx context.Context, id uint) error {
	return deleteRecord(ctx, cr.db, &domain.ChildIncident{}, id, "incident")
}
