package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/delivery/http/validator"
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

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())

	fields := make([]string, 0, len(appErr.Fields()))
	for _, f := range appErr.Fields() {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, field)
}

func TestUserHandler_List(t *testing.T) {
	t.Run("binds filters", func(t *testing.T) {
		userUC := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
		c, rec := newTestContext(http.MethodGet, "/api/users?page=2&limit=5&role=ADMIN&active=false&search=kai&order=asc", "")

		userUC.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(q *usecase.ListUsersQuery) bool {
				return q.Page == 2 && q.Limit == 5 &&
					q.Role != nil && *q.Role == entity.RoleAdmin &&
					q.Active != nil && !*q.Active &&
					q.Verified == nil &&
					q.Search == "kai" && q.Order == "asc"
			})).
			Return(&usecase.Paginated[*entity.User]{Items: []*entity.User{}, Page: 2, Limit: 5}, nil)

		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a non boolean filter", func(t *testing.T) {
		h := NewUserHandler(UserHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t)})
		c, _ := newTestContext(http.MethodGet, "/api/users?active=maybe", "")

		requireValidationField(t, h.List(c), "active")
	})

	t.Run("rejects a non numeric page", func(t *testing.T) {
		h := NewUserHandler(UserHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t)})
		c, _ := newTestContext(http.MethodGet, "/api/users?page=first", "")

		requireValidationField(t, h.List(c), "page")
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		h := NewUserHandler(UserHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t)})
		c, _ := newTestContext(http.MethodGet, "/api/users?role=ROOT", "")

		requireValidationField(t, h.List(c), "role")
	})
}

func TestUserHandler_Get_InvalidID(t *testing.T) {
	h := NewUserHandler(UserHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t)})
	c, _ := newTestContext(http.MethodGet, "/api/users/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "Invalid id", appErr.Message())
}

func TestCommentHandler_Pin(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "defaults to pinned", body: "", want: true},
		{name: "explicit unpin", body: `{"pinned":false}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			commentUC := mockUsecase.NewMockCommentUsecase(t)
			commentUC.EXPECT().Pin(mock.Anything, id, tt.want).Return(&entity.Comment{ID: id, IsPinned: tt.want}, nil)

			c, rec := newTestContext(http.MethodPost, "/api/comments/"+id.String()+"/pin", tt.body)
			c.SetParamNames("id")
			c.SetParamValues(id.String())

			require.NoError(t, NewCommentHandler(CommentHandlerParams{CommentUC: commentUC}).Pin(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestChapterHandler_ListPages_PassesViewer(t *testing.T) {
	id := uuid.New()
	viewer := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	t.Run("signed in", func(t *testing.T) {
		chapterUC := mockUsecase.NewMockChapterUsecase(t)
		chapterUC.EXPECT().ListPages(mock.Anything, viewer, id).Return([]*entity.Page{{Number: 1}}, nil)

		c, rec := newTestContext(http.MethodGet, "/api/chapters/"+id.String()+"/pages", "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		deliverycontext.SetUser(c, viewer)

		require.NoError(t, NewChapterHandler(ChapterHandlerParams{ChapterUC: chapterUC}).ListPages(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("anonymous draft is not found", func(t *testing.T) {
		chapterUC := mockUsecase.NewMockChapterUsecase(t)
		chapterUC.EXPECT().ListPages(mock.Anything, (*entity.User)(nil), id).Return(nil, domainerrors.ErrChapterNotFound)

		c, _ := newTestContext(http.MethodGet, "/api/chapters/"+id.String()+"/pages", "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		err := NewChapterHandler(ChapterHandlerParams{ChapterUC: chapterUC}).ListPages(c)

		assert.ErrorIs(t, err, domainerrors.ErrChapterNotFound)
	})
}

func TestCommentHandler_ListByManga_PassesViewer(t *testing.T) {
	id := uuid.New()
	viewer := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	commentUC := mockUsecase.NewMockCommentUsecase(t)
	commentUC.EXPECT().
		ListByManga(mock.Anything, viewer, id, mock.AnythingOfType("usecase.PageQuery")).
		Return(usecase.NewPaginated([]*entity.Comment{}, 0, usecase.PageQuery{}.Request()), nil)

	c, rec := newTestContext(http.MethodGet, "/api/mangas/"+id.String()+"/comments", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	deliverycontext.SetUser(c, viewer)

	require.NoError(t, NewCommentHandler(CommentHandlerParams{CommentUC: commentUC}).ListByManga(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationHandler_NearestCities(t *testing.T) {
	t.Run("coordinates are required", func(t *testing.T) {
		h := NewLocationHandler(LocationHandlerParams{LocationUC: mockUsecase.NewMockLocationUsecase(t)})
		c, _ := newTestContext(http.MethodGet, "/api/countries/nearest-cities?lng=2.35", "")

		requireValidationField(t, h.NearestCities(c), "lat")
	})

	t.Run("passes the query through", func(t *testing.T) {
		locationUC := mockUsecase.NewMockLocationUsecase(t)
		locationUC.EXPECT().
			NearestCities(mock.Anything, &usecase.NearestCitiesQuery{Latitude: 48.85, Longitude: 2.35, RadiusKm: 25, Limit: 3}).
			Return([]*entity.NearbyCity{{City: entity.City{ID: 200, Name: "Paris"}, DistanceKm: 0.4}}, nil)
		h := NewLocationHandler(LocationHandlerParams{LocationUC: locationUC})
		c, rec := newTestContext(http.MethodGet, "/api/countries/nearest-cities?lat=48.85&lng=2.35&radiusKm=25&limit=3", "")

		require.NoError(t, h.NearestCities(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data []entity.NearbyCity `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Paris", body.Data[0].Name)
	})
}

func TestAuthHandler_Me_UsesContextUser(t *testing.T) {
	user := &entity.User{ID: uuid.New(), UserName: "kai"}
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().Me(mock.Anything, user.ID).Return(user, nil)

	c, rec := newTestContext(http.MethodGet, "/api/auth/me", "")
	deliverycontext.SetUser(c, user)

	require.NoError(t, NewAuthHandler(AuthHandlerParams{AuthUC: authUC}).Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
