package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mangahub/config"
	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/delivery/http/middleware"
	"mangahub/internal/delivery/http/router"
	"mangahub/internal/delivery/http/router/handler"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	mockUsecase "mangahub/internal/mocks/usecase"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e       *echo.Echo
	auth    *mockUsecase.MockAuthUsecase
	manga   *mockUsecase.MockMangaUsecase
	tag     *mockUsecase.MockTagUsecase
	library *mockUsecase.MockLibraryUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = config.EnvTest
	cfg.Env.ServiceName = "mangahub"
	cfg.Env.Version = "1.0.0"
	cfg.SecretKey.Access = "access"
	cfg.SecretKey.Refresh = "refresh"
	cfg.Storage = &config.StorageConfig{Provider: config.StorageMemory}
	cfg.HTTP.MaxRequestBodySize = "1M"
	cfg.HTTP.CorsOrigin = "*"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		auth:    mockUsecase.NewMockAuthUsecase(t),
		manga:   mockUsecase.NewMockMangaUsecase(t),
		tag:     mockUsecase.NewMockTagUsecase(t),
		library: mockUsecase.NewMockLibraryUsecase(t),
	}

	routerParams := router.RouterParams{
		AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: ts.auth}),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(cfg),
		UploadMiddleware:    middleware.NewUploadMiddleware(cfg),
		SystemHandler:       handler.NewSystemHandler(cfg),
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: ts.auth}),
		UserHandler:         handler.NewUserHandler(handler.UserHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t), Logger: logger}),
		LocationHandler:     handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: mockUsecase.NewMockLocationUsecase(t)}),
		TagHandler:          handler.NewTagHandler(handler.TagHandlerParams{TagUC: ts.tag}),
		MangaHandler:        handler.NewMangaHandler(handler.MangaHandlerParams{MangaUC: ts.manga}),
		ChapterHandler:      handler.NewChapterHandler(handler.ChapterHandlerParams{ChapterUC: mockUsecase.NewMockChapterUsecase(t), Logger: logger}),
		CommentHandler:      handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: mockUsecase.NewMockCommentUsecase(t)}),
		RatingHandler:       handler.NewRatingHandler(handler.RatingHandlerParams{RatingUC: mockUsecase.NewMockRatingUsecase(t)}),
		LibraryHandler:      handler.NewLibraryHandler(handler.LibraryHandlerParams{LibraryUC: ts.library}),
	}

	ts.e = NewEcho(ServerParams{
		Cfg:                 cfg,
		Logger:              logger,
		RouterParams:        routerParams,
		ErrorMiddleware:     middleware.NewErrorMiddleware(logger, cfg),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
		LoggerMiddleware:    middleware.NewLoggerMiddleware(logger, cfg),
	})

	return ts
}

func (ts *testServer) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestServer_System(t *testing.T) {
	ts := newTestServer(t)

	t.Run("health", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/health", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[handler.HealthResponse](t, rec)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, config.EnvTest, body.Environment)
		_, err := time.Parse(time.RFC3339Nano, body.Timestamp)
		assert.NoError(t, err)
		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("root", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[handler.RootResponse](t, rec)
		assert.Equal(t, "mangahub", body.Name)
		assert.Equal(t, "1.0.0", body.Version)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/api/nothing/here", "", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decode[domainerrors.ErrorResponse](t, rec)
		assert.Equal(t, "Route not found", body.Message)
		assert.Equal(t, "/api/nothing/here", body.Path)
	})
}

func TestServer_Login(t *testing.T) {
	ts := newTestServer(t)

	t.Run("validation failure", func(t *testing.T) {
		rec := ts.do(http.MethodPost, "/api/auth/login", `{"identifier":"reader"}`, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[domainerrors.ErrorResponse](t, rec)
		assert.Equal(t, "Validation failed", body.Message)
		assert.Contains(t, body.Errors, domainerrors.FieldError{Field: "password", Message: "password is required"})
	})

	t.Run("success envelope", func(t *testing.T) {
		user := &entity.User{ID: uuid.New(), UserName: "reader", Role: entity.RoleUser, IsActive: true}
		ts.auth.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Identifier: "reader", Password: "Secret123!"}).
			Return(&usecase.AuthOutput{User: user, AccessToken: "a", RefreshToken: "r"}, nil).
			Once()

		rec := ts.do(http.MethodPost, "/api/auth/login", `{"identifier":"reader","password":"Secret123!"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[struct {
			Message string             `json:"message"`
			Data    usecase.AuthOutput `json:"data"`
		}](t, rec)
		assert.Equal(t, "Login successful", body.Message)
		assert.Equal(t, "a", body.Data.AccessToken)
		assert.Equal(t, "r", body.Data.RefreshToken)
	})
}

func TestServer_Authorization(t *testing.T) {
	ts := newTestServer(t)
	reader := &entity.User{ID: uuid.New(), Role: entity.RoleUser, IsActive: true}
	ts.auth.EXPECT().Authenticate(mock.Anything, "reader-token").Return(reader, nil).Maybe()

	t.Run("library needs a token", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/api/library/favorites", "", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "No token provided", decode[domainerrors.ErrorResponse](t, rec).Message)
	})

	t.Run("tag writes need staff", func(t *testing.T) {
		rec := ts.do(http.MethodPut, "/api/tags/"+uuid.NewString(), `{"name":"Action"}`, "reader-token")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("catalog reads pass the optional viewer", func(t *testing.T) {
		manga := &entity.Manga{ID: uuid.New(), Title: "Blue Period", Slug: "blue-period"}
		ts.manga.EXPECT().Get(mock.Anything, reader, "blue-period").Return(manga, nil).Once()

		rec := ts.do(http.MethodGet, "/api/mangas/blue-period", "", "reader-token")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[struct {
			Data entity.Manga `json:"data"`
		}](t, rec)
		assert.Equal(t, "blue-period", body.Data.Slug)
	})

	t.Run("anonymous catalog read", func(t *testing.T) {
		ts.manga.EXPECT().Get(mock.Anything, (*entity.User)(nil), "missing").Return(nil, domainerrors.ErrMangaNotFound).Once()

		rec := ts.do(http.MethodGet, "/api/mangas/missing", "", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Manga not found", decode[domainerrors.ErrorResponse](t, rec).Message)
	})
}

func TestServer_QRCode(t *testing.T) {
	ts := newTestServer(t)
	ts.manga.EXPECT().ShareQR(mock.Anything, "blue-period").Return([]byte("\x89PNG"), nil).Once()

	rec := ts.do(http.MethodGet, "/api/mangas/blue-period/qrcode", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes())
}
