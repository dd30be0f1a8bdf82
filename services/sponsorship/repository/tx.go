package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// RunInTx runs fn inside one transaction. Any error or panic from fn rolls
// the whole unit back. The commit happens only after fn returns nil.
func RunInTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) (err error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("could not begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}
