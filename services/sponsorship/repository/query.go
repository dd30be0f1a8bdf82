package repository

import (
	"context"
	"errors"
	"fmt"
	"sponsorship/domain"
	"sponsorship/helpers"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type scope = func(*gorm.DB) *gorm.DB

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-insensitive LIKE operand matching search anywhere.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(search))) + "%"
}

// searchScope filters on LOWER(expr) containing search. A blank search keeps every row.
func searchScope(expr, search string) scope {
	return func(tx *gorm.DB) *gorm.DB {
		if strings.TrimSpace(search) == "" {
			return tx
		}
		return tx.Where(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, expr), containsPattern(search))
	}
}

// findPage counts the rows matching filter, resolves the page token against that
// total and loads the page into dest. The extra scopes apply to the page load only.
func findPage(ctx context.Context, db *gorm.DB, model, dest interface{}, filter scope, order, page string, perPage int, extra ...scope) (*domain.PageMeta, error) {
	var total int64
	if err := db.WithContext(ctx).Model(model).Scopes(filter).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("could not count records: %w", err)
	}

	meta := helpers.ResolvePage(page, total, perPage)

	err := db.WithContext(ctx).Model(model).
		Scopes(filter).
		Scopes(extra...).
		Order(order).
		Limit(meta.PerPage).
		Offset(meta.Offset()).
		Find(dest).Error
	if err != nil {
		return nil, fmt.Errorf("could not load page %d: %w", meta.Page, err)
	}

	return &meta, nil
}

// notFoundOr maps gorm.ErrRecordNotFound to domain.ErrNotFound, naming the record.
func notFoundOr(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
	}
	return fmt.Errorf("could not get %s %d: %w", what, id, err)
}

// isUniqueViolation needs TranslateError on the gorm config for dialects other than postgres.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// exists reports whether a row of model with the given primary key is present.
func exists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
