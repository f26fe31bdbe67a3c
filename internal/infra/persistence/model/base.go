package model

import "github.com/google/uuid"

// newID returns a time-ordered UUIDv7, falling back to v4 if the clock source fails.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

// assignID fills a zero primary key before insert.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = newID()
	}
}

// All returns every model in dependency order, for AutoMigrate in tests and the gen tool.
func All() []any {
	return []any{
		&CountryModel{},
		&StateModel{},
		&CityModel{},
		&TimeZoneModel{},
		&UserModel{},
		&TagModel{},
		&MangaModel{},
		&ChapterModel{},
		&PageModel{},
		&CommentModel{},
		&CommentClosureModel{},
		&RatingModel{},
		&FavoriteModel{},
		&ReadingHistoryModel{},
	}
}
