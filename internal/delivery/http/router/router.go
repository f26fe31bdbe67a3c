// Package router contains routing for the HTTP delivery.
package router

import (
	"mangahub/internal/delivery/http/middleware"
	"mangahub/internal/delivery/http/router/handler"
	"mangahub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	fieldFile      = "file"
	fieldFiles     = "files"
	maxPageUploads = 50
)

type RouterParams struct {
	fx.In

	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	UploadMiddleware    *middleware.UploadMiddleware

	SystemHandler   *handler.SystemHandler
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	LocationHandler *handler.LocationHandler
	TagHandler      *handler.TagHandler
	MangaHandler    *handler.MangaHandler
	ChapterHandler  *handler.ChapterHandler
	CommentHandler  *handler.CommentHandler
	RatingHandler   *handler.RatingHandler
	LibraryHandler  *handler.LibraryHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the routes of the service.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.SystemHandler.Health)
	e.GET("/", r.SystemHandler.Root)

	api := e.Group("/api")

	r.registerAuthRoutes(api)
	r.registerUserRoutes(api)
	r.registerCountryRoutes(api)
	r.registerTagRoutes(api)
	r.registerMangaRoutes(api)
	r.registerChapterRoutes(api)
	r.registerCommentRoutes(api)
	r.registerLibraryRoutes(api)

	e.RouteNotFound("/*", r.SystemHandler.RouteNotFound)
}

func (r *router) registerAuthRoutes(api *echo.Group) {
	auth := api.Group("/auth", r.RateLimitMiddleware.Auth())
	{
		auth.POST("/register", r.AuthHandler.Register)
		auth.POST("/login", r.AuthHandler.Login)
		auth.POST("/refresh", r.AuthHandler.Refresh)
		auth.POST("/logout", r.AuthHandler.Logout, r.AuthMiddleware.Authenticate)
		auth.GET("/me", r.AuthHandler.Me, r.AuthMiddleware.Authenticate)
	}
}

func (r *router) registerUserRoutes(api *echo.Group) {
	authn := r.AuthMiddleware.Authenticate
	admin := r.AuthMiddleware.Authorize(entity.AdminRoles...)
	single := r.UploadMiddleware.Single(fieldFile)

	users := api.Group("/users")
	{
		users.GET("/me", r.UserHandler.GetMe, authn)
		users.PUT("/me", r.UserHandler.UpdateMe, authn)
		users.PATCH("/me", r.UserHandler.PatchMe, authn)
		users.PATCH("/me/biography", r.UserHandler.UpdateBiography, authn)
		users.PATCH("/me/preferences", r.UserHandler.UpdatePreferences, authn)
		users.POST("/me/change-password", r.UserHandler.ChangePassword, authn, r.RateLimitMiddleware.Password())
		users.POST("/me/avatar", r.UserHandler.UploadAvatar, authn, single)
		users.POST("/me/banner", r.UserHandler.UploadBanner, authn, single)

		users.POST("", r.UserHandler.Create)
		users.GET("", r.UserHandler.List, authn)
		users.GET("/:id", r.UserHandler.Get, authn)

		users.PUT("/:id", r.UserHandler.Update, authn, admin)
		users.PATCH("/:id", r.UserHandler.Patch, authn, admin)
		users.DELETE("/:id", r.UserHandler.Delete, authn, admin)
		users.POST("/:id/verify", r.UserHandler.Verify, authn, admin)
	}
}

func (r *router) registerCountryRoutes(api *echo.Group) {
	countries := api.Group("/countries")
	{
		countries.GET("", r.LocationHandler.ListCountries)
		countries.GET("/nearest-cities", r.LocationHandler.NearestCities)
		countries.GET("/states/:stateId/cities", r.LocationHandler.ListCities)
		countries.GET("/:iso", r.LocationHandler.GetCountry)
		countries.GET("/:countryId/states", r.LocationHandler.ListStates)
		countries.GET("/:countryId/timezones", r.LocationHandler.ListTimeZones)
	}
}

func (r *router) registerTagRoutes(api *echo.Group) {
	authn := r.AuthMiddleware.Authenticate
	staff := r.AuthMiddleware.Authorize(entity.StaffRoles...)

	tags := api.Group("/tags")
	{
		tags.GET("", r.TagHandler.List)
		tags.GET("/:slug", r.TagHandler.Get)
		tags.POST("", r.TagHandler.Create, authn, staff)
		tags.PUT("/:id", r.TagHandler.Update, authn, staff)
		tags.DELETE("/:id", r.TagHandler.Delete, authn, staff)
	}
}

func (r *router) registerMangaRoutes(api *echo.Group) {
	authn := r.AuthMiddleware.Authenticate
	staff := r.AuthMiddleware.Authorize(entity.StaffRoles...)

	mangas := api.Group("/mangas", r.AuthMiddleware.OptionalAuthenticate)
	{
		mangas.GET("", r.MangaHandler.List)
		mangas.GET("/:id", r.MangaHandler.Get)
		mangas.GET("/:id/qrcode", r.MangaHandler.QRCode)

		mangas.POST("", r.MangaHandler.Create, authn, staff)
		mangas.PUT("/:id", r.MangaHandler.Update, authn, staff)
		mangas.DELETE("/:id", r.MangaHandler.Delete, authn, staff)
		mangas.PUT("/:id/tags", r.MangaHandler.SetTags, authn, staff)
		mangas.POST("/:id/cover", r.MangaHandler.UploadCover, authn, staff, r.UploadMiddleware.Single(fieldFile))

		mangas.GET("/:id/chapters", r.ChapterHandler.ListByManga)
		mangas.POST("/:id/chapters", r.ChapterHandler.Create, authn, staff)

		mangas.GET("/:id/comments", r.CommentHandler.ListByManga)
		mangas.POST("/:id/comments", r.CommentHandler.CreateForManga, authn)

		mangas.GET("/:id/ratings", r.RatingHandler.List)
		mangas.GET("/:id/ratings/me", r.RatingHandler.Mine, authn)
		mangas.PUT("/:id/ratings", r.RatingHandler.Rate, authn)
		mangas.DELETE("/:id/ratings", r.RatingHandler.Delete, authn)

		mangas.POST("/:id/favorite", r.LibraryHandler.AddFavorite, authn)
		mangas.DELETE("/:id/favorite", r.LibraryHandler.RemoveFavorite, authn)
	}
}

func (r *router) registerChapterRoutes(api *echo.Group) {
	authn := r.AuthMiddleware.Authenticate
	staff := r.AuthMiddleware.Authorize(entity.StaffRoles...)

	chapters := api.Group("/chapters", r.RateLimitMiddleware.Reading(), r.AuthMiddleware.OptionalAuthenticate)
	{
		chapters.DELETE("/pages/:pageId", r.ChapterHandler.DeletePage, authn, staff)

		chapters.GET("/:id", r.ChapterHandler.Read)
		chapters.PUT("/:id", r.ChapterHandler.Update, authn, staff)
		chapters.DELETE("/:id", r.ChapterHandler.Delete, authn, staff)
		chapters.POST("/:id/publish", r.ChapterHandler.Publish, authn, staff)

		chapters.GET("/:id/pages", r.ChapterHandler.ListPages)
		chapters.POST("/:id/pages", r.ChapterHandler.UploadPages, authn, staff, r.UploadMiddleware.Multiple(fieldFiles, maxPageUploads))

		chapters.GET("/:id/comments", r.CommentHandler.ListByChapter)
		chapters.POST("/:id/comments", r.CommentHandler.CreateForChapter, authn)
	}
}

func (r *router) registerCommentRoutes(api *echo.Group) {
	authn := r.AuthMiddleware.Authenticate
	staff := r.AuthMiddleware.Authorize(entity.StaffRoles...)

	comments := api.Group("/comments", r.AuthMiddleware.OptionalAuthenticate)
	{
		comments.GET("/:id/thread", r.CommentHandler.Thread)
		comments.PATCH("/:id", r.CommentHandler.Update, authn)
		comments.DELETE("/:id", r.CommentHandler.Delete, authn)
		comments.POST("/:id/pin", r.CommentHandler.Pin, authn, staff)
	}
}

func (r *router) registerLibraryRoutes(api *echo.Group) {
	library := api.Group("/library", r.AuthMiddleware.Authenticate)
	{
		library.GET("/favorites", r.LibraryHandler.ListFavorites)
		library.GET("/history", r.LibraryHandler.ListHistory)
		library.PUT("/history", r.LibraryHandler.RecordProgress)
		library.PATCH("/history/:mangaId", r.LibraryHandler.UpdateHistoryStatus)
		library.DELETE("/history/:mangaId", r.LibraryHandler.DeleteHistory)
	}
}
