package main

import (
	"mangahub/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the persistence models.
func main() {
	models := []any{
		model.UserModel{},
		model.CountryModel{},
		model.StateModel{},
		model.CityModel{},
		model.TimeZoneModel{},
		model.TagModel{},
		model.MangaModel{},
		model.ChapterModel{},
		model.PageModel{},
		model.CommentModel{},
		model.CommentClosureModel{},
		model.RatingModel{},
		model.FavoriteModel{},
		model.ReadingHistoryModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
