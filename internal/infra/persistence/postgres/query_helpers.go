package postgres

import (
	"strings"

	"mangahub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// searchCondition builds a case-insensitive "contains" match over columns. Postgres uses ILIKE;
// other dialects fall back to LOWER() LIKE so the repositories also run on SQLite.
func searchCondition(db *gorm.DB, search string, columns ...string) (string, []any) {
	pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
	postgres := db.Dialector.Name() == "postgres"

	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		if postgres {
			parts = append(parts, column+` ILIKE ? ESCAPE '\'`)
		} else {
			parts = append(parts, "LOWER("+column+`) LIKE ? ESCAPE '\'`)
		}
		args = append(args, pattern)
	}

	return "(" + strings.Join(parts, " OR ") + ")", args
}

// orderBy returns a safe ORDER BY clause for a whitelisted column.
func orderBy(column string, order repository.SortOrder) clause.OrderByColumn {
	return clause.OrderByColumn{
		Column: clause.Column{Name: column},
		Desc:   order != repository.SortAsc,
	}
}

// adjustColumn adds delta to an integer counter column without letting it drop below zero.
// Soft-deleted rows are still counted so releasing their counters never fails.
func adjustColumn(db *gorm.DB, value any, id uuid.UUID, column string, delta int) error {
	if delta == 0 {
		return nil
	}

	quoted := clause.Column{Name: column}
	expr := gorm.Expr("CASE WHEN ? + ? < 0 THEN 0 ELSE ? + ? END", quoted, delta, quoted, delta)

	result := db.Unscoped().Model(value).Where("id = ?", id).UpdateColumn(column, expr)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to adjust %s", column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// notFoundOr maps gorm.ErrRecordNotFound to repository.ErrNotFound and wraps anything else.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}

	return errors.Wrap(err, message)
}
