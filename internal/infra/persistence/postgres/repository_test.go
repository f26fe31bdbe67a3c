package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"mangahub/config"
	"mangahub/internal/domain/entity"
	"mangahub/internal/domain/repository"
	"mangahub/internal/infra/persistence/model"
	"mangahub/internal/usecase"
	"mangahub/internal/usecase/impl"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	db = configure(db, slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection would otherwise open its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, userName string) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:              "Test",
		LastName:          "User",
		UserName:          userName,
		Email:             userName + "@example.com",
		Password:          "hash",
		Role:              entity.RoleUser,
		IsActive:          true,
		PreferredLanguage: "en",
		Theme:             entity.ThemeLight,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedManga(t *testing.T, db *gorm.DB, title, slug string, mature bool) *entity.Manga {
	t.Helper()

	manga := &entity.Manga{
		Title:            title,
		Slug:             slug,
		IsMature:         mature,
		Status:           entity.MangaStatusOngoing,
		OriginalLanguage: "ja",
	}
	require.NoError(t, NewMangaRepository(db).Create(context.Background(), manga))

	return manga
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "reader")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, byte(7), user.ID[6]>>4, "ids are UUIDv7")

	byEmail, err := repo.FindByEmail(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byName, err := repo.FindByUserName(ctx, "reader")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "reader")

	dup := &entity.User{
		Name:     "Other",
		LastName: "User",
		UserName: "other",
		Email:    "reader@example.com",
		Password: "hash",
		IsActive: true,
	}
	err := NewUserRepository(db).Create(context.Background(), dup)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserRepository_ListSearchAndPaging(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	for _, name := range []string{"alice", "albert", "bob"} {
		seedUser(t, db, name)
	}

	users, total, err := repo.List(context.Background(), repository.UserListFilter{
		PageRequest: repository.PageRequest{Page: 1, Limit: 1},
		Search:      "AL",
		Sort:        repository.UserSortUserName,
		Order:       repository.SortAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, users, 1)
	assert.Equal(t, "albert", users[0].UserName)
}

func TestUserRepository_AdjustCounterNeverNegative(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "reader")

	require.NoError(t, repo.AdjustCounter(ctx, user.ID, repository.UserCommentsCount, 2))
	require.NoError(t, repo.AdjustCounter(ctx, user.ID, repository.UserCommentsCount, -5))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CommentsCount)
}

func TestUserRepository_UpdateFromStaleEntityKeepsManagedColumns(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "reader")

	stale, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)

	token := "rotated"
	loginAt := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.AdjustCounter(ctx, user.ID, repository.UserCommentsCount, 3))
	require.NoError(t, repo.AdjustCounter(ctx, user.ID, repository.UserFavoritesCount, 1))
	require.NoError(t, repo.SetRefreshToken(ctx, user.ID, &token))
	require.NoError(t, repo.TouchLastLogin(ctx, user.ID, loginAt))

	stale.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, stale))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 3, got.CommentsCount)
	assert.Equal(t, 1, got.FavoritesCount)
	require.NotNil(t, got.RefreshToken)
	assert.Equal(t, "rotated", *got.RefreshToken)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, loginAt.Equal(*got.LastLoginAt))
}

func TestUserRepository_SoftDeleteKeepsRelatedRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "reader")
	manga := seedManga(t, db, "Berserk", "berserk", false)

	token := "refresh"
	require.NoError(t, repo.SetRefreshToken(ctx, user.ID, &token))
	require.NoError(t, NewRatingRepository(db).Create(ctx, &entity.Rating{UserID: user.ID, MangaID: manga.ID, Score: 9}))

	require.NoError(t, repo.SoftDelete(ctx, user.ID))

	_, err := repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	var stored model.UserModel
	require.NoError(t, db.Unscoped().Where("id = ?", user.ID).First(&stored).Error)
	assert.True(t, stored.DeletedAt.Valid)
	assert.Nil(t, stored.RefreshToken)

	rating, err := NewRatingRepository(db).FindByUserAndManga(ctx, user.ID, manga.ID)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, rating.Score, 0.001)

	assert.ErrorIs(t, repo.SoftDelete(ctx, user.ID), repository.ErrNotFound)
}

func TestLocationRepository_ListCountriesCursor(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	countries := []model.CountryModel{
		{Name: "Argentina", ISO: "AR"},
		{Name: "Brazil", ISO: "BR"},
		{Name: "Chile", ISO: "CL"},
		{Name: "Peru", ISO: "PE"},
	}
	require.NoError(t, db.Create(&countries).Error)

	first, err := repo.ListCountries(ctx, repository.CountryListFilter{Limit: 2, Order: repository.SortAsc})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "AR", first[0].ISO)

	cursor := first[1].ID
	next, err := repo.ListCountries(ctx, repository.CountryListFilter{Cursor: &cursor, Limit: 5, Order: repository.SortAsc})
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.Equal(t, "CL", next[0].ISO)

	desc, err := repo.ListCountries(ctx, repository.CountryListFilter{Cursor: &cursor, Limit: 5, Order: repository.SortDesc})
	require.NoError(t, err)
	require.Len(t, desc, 1)
	assert.Equal(t, "AR", desc[0].ISO)

	byISO, err := repo.ListCountries(ctx, repository.CountryListFilter{Limit: 5, Search: "pe"})
	require.NoError(t, err)
	require.Len(t, byISO, 1)
	assert.Equal(t, "Peru", byISO[0].Name)
}

func TestLocationRepository_CitiesInBox(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)

	country := model.CountryModel{Name: "Japan", ISO: "JP"}
	require.NoError(t, db.Create(&country).Error)
	state := model.StateModel{Name: "Tokyo", CountryID: country.ID}
	require.NoError(t, db.Omit("Country").Create(&state).Error)
	cities := []model.CityModel{
		{Name: "Shinjuku", StateID: state.ID, Latitude: 35.69, Longitude: 139.70},
		{Name: "Sapporo", StateID: state.ID, Latitude: 43.06, Longitude: 141.35},
	}
	require.NoError(t, db.Omit("State").Create(&cities).Error)

	found, err := repo.ListCitiesInBox(context.Background(), repository.BoundingBox{
		MinLat: 35, MaxLat: 36, MinLng: 139, MaxLng: 140,
	}, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Shinjuku", found[0].Name)
}

func TestLocationRepository_CitiesInBoxNearestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocationRepository(db)

	country := model.CountryModel{Name: "Japan", ISO: "JP"}
	require.NoError(t, db.Create(&country).Error)
	state := model.StateModel{Name: "Tokyo", CountryID: country.ID}
	require.NoError(t, db.Omit("Country").Create(&state).Error)

	// Far rows get the lowest ids so an unordered scan would return them first.
	var cities []model.CityModel
	for i := range 10 {
		cities = append(cities, model.CityModel{
			Name: fmt.Sprintf("far%d", i), StateID: state.ID, Latitude: 35.3, Longitude: 139.0 + float64(i)*0.001,
		})
	}
	cities = append(cities, model.CityModel{Name: "closest", StateID: state.ID, Latitude: 35.0001, Longitude: 139.0})
	require.NoError(t, db.Omit("State").Create(&cities).Error)

	found, err := repo.ListCitiesInBox(context.Background(), repository.BoundingBox{
		MinLat: 34.5, MaxLat: 35.5, MinLng: 138.5, MaxLng: 139.5,
		OriginLat: 35, OriginLng: 139,
	}, 4)
	require.NoError(t, err)
	require.Len(t, found, 4)
	assert.Equal(t, "closest", found[0].Name)
	assert.Equal(t, "far0", found[1].Name)
}

func TestLocationService_NearestCitiesRanksBeforeLimiting(t *testing.T) {
	db := newTestDB(t)

	country := model.CountryModel{Name: "Japan", ISO: "JP"}
	require.NoError(t, db.Create(&country).Error)
	state := model.StateModel{Name: "Tokyo", CountryID: country.ID}
	require.NoError(t, db.Omit("Country").Create(&state).Error)

	var cities []model.CityModel
	for i := range 10 {
		cities = append(cities, model.CityModel{
			Name: fmt.Sprintf("far%d", i), StateID: state.ID, Latitude: 35.3, Longitude: 139.0 + float64(i)*0.001,
		})
	}
	cities = append(cities, model.CityModel{Name: "closest", StateID: state.ID, Latitude: 35.0001, Longitude: 139.0})
	require.NoError(t, db.Omit("State").Create(&cities).Error)

	locations := impl.NewLocationService(impl.LocationServiceParams{
		LocationRepo: NewLocationRepository(db),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	nearby, err := locations.NearestCities(context.Background(), &usecase.NearestCitiesQuery{
		Latitude: 35, Longitude: 139, RadiusKm: 50, Limit: 1,
	})
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "closest", nearby[0].Name)
	assert.Less(t, nearby[0].DistanceKm, 0.1)
}

func TestMangaRepository_TagsAndListing(t *testing.T) {
	db := newTestDB(t)
	mangas := NewMangaRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	action := &entity.Tag{Name: "Action", Slug: "action", Type: entity.TagTypeGenre, IsActive: true}
	require.NoError(t, tags.Create(ctx, action))

	berserk := seedManga(t, db, "Berserk", "berserk", true)
	yotsuba := seedManga(t, db, "Yotsuba&!", "yotsuba", false)
	require.NoError(t, mangas.ReplaceTags(ctx, yotsuba.ID, []uuid.UUID{action.ID}))

	got, err := mangas.FindBySlug(ctx, "yotsuba")
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "action", got.Tags[0].Slug)

	safe, total, err := mangas.List(ctx, repository.MangaListFilter{PageRequest: repository.PageRequest{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, safe, 1)
	assert.Equal(t, yotsuba.ID, safe[0].ID)

	all, total, err := mangas.List(ctx, repository.MangaListFilter{
		PageRequest:  repository.PageRequest{Page: 1, Limit: 10},
		IncludeAdult: true,
		Sort:         repository.MangaSortTitle,
		Order:        repository.SortAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, berserk.ID, all[0].ID)

	tagged, total, err := mangas.List(ctx, repository.MangaListFilter{
		PageRequest:  repository.PageRequest{Page: 1, Limit: 10},
		IncludeAdult: true,
		TagSlug:      "action",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, yotsuba.ID, tagged[0].ID)
}

func TestMangaRepository_SlugExistsIncludesDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewMangaRepository(db)
	ctx := context.Background()
	manga := seedManga(t, db, "Monster", "monster", false)

	require.NoError(t, repo.SoftDelete(ctx, manga.ID))

	exists, err := repo.SlugExists(ctx, "monster")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByID(ctx, manga.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTagRepository_ExistsByNameOrSlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	tag := &entity.Tag{Name: "Slice of Life", Slug: "slice-of-life", Type: entity.TagTypeGenre, IsActive: true}
	require.NoError(t, repo.Create(ctx, tag))

	exists, err := repo.ExistsByNameOrSlug(ctx, "slice of life", "other", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByNameOrSlug(ctx, "Slice of Life", "slice-of-life", &tag.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.AdjustUsage(ctx, []uuid.UUID{tag.ID}, -1))
	got, err := repo.FindByID(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.UsageCount)
}

func TestChapterRepository_UniqueNumberAndOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewChapterRepository(db)
	ctx := context.Background()
	manga := seedManga(t, db, "Monster", "monster", false)

	for _, number := range []float64{2, 1, 1.5} {
		chapter := &entity.Chapter{MangaID: manga.ID, Number: number, Slug: uuid.NewString(), IsActive: true}
		require.NoError(t, repo.Create(ctx, chapter))
	}

	dup := &entity.Chapter{MangaID: manga.ID, Number: 1, Slug: "dup", IsActive: true}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicate)

	chapters, err := repo.ListByManga(ctx, manga.ID, false)
	require.NoError(t, err)
	require.Len(t, chapters, 3)
	assert.InDelta(t, 1.5, chapters[1].Number, 0.001)

	latest, err := repo.FindLatest(ctx, manga.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, latest.Number, 0.001)

	published, err := repo.ListByManga(ctx, manga.ID, true)
	require.NoError(t, err)
	assert.Empty(t, published)
}

func TestPageRepository_MaxNumberAndCreateMany(t *testing.T) {
	db := newTestDB(t)
	repo := NewPageRepository(db)
	ctx := context.Background()
	manga := seedManga(t, db, "Monster", "monster", false)
	chapter := &entity.Chapter{MangaID: manga.ID, Number: 1, Slug: "monster-chapter-1", IsActive: true}
	require.NoError(t, NewChapterRepository(db).Create(ctx, chapter))

	last, err := repo.MaxNumber(ctx, chapter.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, last)

	pages := []*entity.Page{
		{ChapterID: chapter.ID, Number: 2, ImageURL: "b", IsActive: true},
		{ChapterID: chapter.ID, Number: 1, ImageURL: "a", IsActive: true},
	}
	require.NoError(t, repo.CreateMany(ctx, pages))
	assert.NotEqual(t, uuid.Nil, pages[0].ID)

	last, err = repo.MaxNumber(ctx, chapter.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, last)

	listed, err := repo.ListByChapter(ctx, chapter.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "a", listed[0].ImageURL)
}

func TestCommentRepository_ClosureTable(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "reader")
	manga := seedManga(t, db, "Monster", "monster", false)

	newComment := func(parent *entity.Comment) *entity.Comment {
		comment := &entity.Comment{Content: "text", IsActive: true, MangaID: &manga.ID, UserID: user.ID}
		if parent != nil {
			comment.ParentCommentID = &parent.ID
		}
		require.NoError(t, repo.Create(ctx, comment))

		return comment
	}

	root := newComment(nil)
	reply := newComment(root)
	nested := newComment(reply)
	sibling := newComment(nil)

	var closureRows int64
	require.NoError(t, db.Model(&model.CommentClosureModel{}).Where("id_descendant = ?", nested.ID).Count(&closureRows).Error)
	assert.Equal(t, int64(3), closureRows, "a depth-2 reply has a self row plus two ancestors")

	thread, err := repo.ListSubtree(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, thread, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{thread[0].Depth, thread[1].Depth, thread[2].Depth})
	assert.Equal(t, nested.ID, thread[2].ID)

	top, total, err := repo.ListTopLevel(ctx, repository.CommentListFilter{
		PageRequest: repository.PageRequest{Page: 1, Limit: 10},
		MangaID:     &manga.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, top, 2)

	removed, err := repo.DeleteSubtree(ctx, reply.ID)
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	_, err = repo.FindByID(ctx, nested.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.FindByID(ctx, root.ID)
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, sibling.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.CommentClosureModel{}).Where("id_descendant = ?", nested.ID).Count(&closureRows).Error)
	assert.Zero(t, closureRows)
}

func TestRatingRepository_UniqueAndSummary(t *testing.T) {
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()
	manga := seedManga(t, db, "Monster", "monster", false)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx, &entity.Rating{UserID: alice.ID, MangaID: manga.ID, Score: 8}))
	require.NoError(t, repo.Create(ctx, &entity.Rating{UserID: bob.ID, MangaID: manga.ID, Score: 7.5}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Rating{UserID: bob.ID, MangaID: manga.ID, Score: 1}), repository.ErrDuplicate)

	average, count, err := repo.Summary(ctx, manga.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.InDelta(t, 7.75, average, 0.001)

	average, count, err = repo.Summary(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, average)
}

func TestFavoriteRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "reader")
	manga := seedManga(t, db, "Monster", "monster", false)

	require.NoError(t, repo.Create(ctx, &entity.Favorite{UserID: user.ID, MangaID: manga.ID}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Favorite{UserID: user.ID, MangaID: manga.ID}), repository.ErrDuplicate)

	favorites, total, err := repo.ListByUser(ctx, user.ID, repository.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.NotNil(t, favorites[0].Manga)
	assert.Equal(t, "monster", favorites[0].Manga.Slug)

	removed, err := repo.Delete(ctx, user.ID, manga.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, user.ID, manga.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestHistoryRepository_ListByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "reader")
	monster := seedManga(t, db, "Monster", "monster", false)
	pluto := seedManga(t, db, "Pluto", "pluto", false)

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.ReadingHistory{
		UserID: user.ID, MangaID: monster.ID, LastReadAt: now.Add(-time.Hour), Status: entity.HistoryCompleted,
	}))
	require.NoError(t, repo.Create(ctx, &entity.ReadingHistory{
		UserID: user.ID, MangaID: pluto.ID, LastReadAt: now, Status: entity.HistoryReading,
	}))

	all, total, err := repo.ListByUser(ctx, user.ID, nil, repository.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, pluto.ID, all[0].MangaID)
	require.NotNil(t, all[0].Manga)

	completed := entity.HistoryCompleted
	done, total, err := repo.ListByUser(ctx, user.ID, &completed, repository.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, monster.ID, done[0].MangaID)

	entry, err := repo.FindByUserAndManga(ctx, user.ID, pluto.ID)
	require.NoError(t, err)
	entry.PagesRead = 12
	require.NoError(t, repo.Update(ctx, entry))

	entry, err = repo.FindByUserAndManga(ctx, user.ID, pluto.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, entry.PagesRead)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tag := &entity.Tag{Name: "Horror", Slug: "horror", Type: entity.TagTypeGenre, IsActive: true}
		require.NoError(t, factory.NewTagRepository().Create(ctx, tag))

		return repository.ErrNotFound
	})
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = NewTagRepository(db).FindBySlug(ctx, "horror")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
