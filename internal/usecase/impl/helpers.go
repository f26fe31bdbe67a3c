// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"
	"time"

	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// normalizeEmail lowercases and trims an email address before lookups and writes.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// parseDate parses a YYYY-MM-DD value in UTC.
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, domainerrors.NewBadRequestError("Invalid date %q, expected YYYY-MM-DD", value)
	}

	return t, nil
}

// parseOptionalDate parses value when present.
func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	t, err := parseDate(*value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// notFound translates a repository miss into the given domain error and wraps anything else.
func notFound(err error, appErr error, action string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErr
	}

	return errors.Wrap(err, action)
}

// checkMatureAccess refuses mature titles to viewers who have not opted in.
func checkMatureAccess(manga *entity.Manga, viewer *entity.User) error {
	if manga.IsMature && !viewer.CanSeeMature() {
		return domainerrors.ErrMatureContentNotAllowed
	}

	return nil
}

// sortOrder maps the query value onto the repository order, using fallback when empty.
func sortOrder(value string, fallback repository.SortOrder) repository.SortOrder {
	switch strings.ToLower(value) {
	case string(repository.SortAsc):
		return repository.SortAsc
	case string(repository.SortDesc):
		return repository.SortDesc
	default:
		return fallback
	}
}

// slugify builds a URL slug, falling back to fallback for titles without any sluggable character.
func slugify(value, fallback string) string {
	s := slug.Make(value)
	if s == "" {
		return fallback
	}

	return s
}

func ptr[T any](v T) *T {
	return &v
}
