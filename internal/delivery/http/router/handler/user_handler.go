package handler

import (
	"log/slog"
	"net/http"

	"mangahub/internal/delivery/http/middleware"
	"mangahub/internal/delivery/http/response"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// GetMe returns the profile of the authenticated user.
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return h.get(c, user.ID)
}

// UpdateMe replaces the profile of the authenticated user.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return h.update(c, user.ID)
}

// PatchMe partially updates the profile of the authenticated user.
func (h *UserHandler) PatchMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return h.patch(c, user.ID)
}

// UpdateBiography replaces the biography of the authenticated user.
func (h *UserHandler) UpdateBiography(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateBiographyInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	updated, err := h.userUC.UpdateBiography(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Biography updated successfully")
}

// UpdatePreferences changes the reader preferences of the authenticated user.
func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.UpdatePreferencesInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	updated, err := h.userUC.UpdatePreferences(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Preferences updated successfully")
}

// ChangePassword changes the password of the authenticated user.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.ChangePasswordInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	if err := h.userUC.ChangePassword(c.Request().Context(), user.ID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// UploadAvatar stores the uploaded image as the avatar of the authenticated user.
func (h *UserHandler) UploadAvatar(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	file := middleware.Upload(c)
	if file == nil {
		return domainerrors.ErrNoFileUploaded
	}

	updated, err := h.userUC.UpdateAvatar(c.Request().Context(), user.ID, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Avatar updated successfully")
}

// UploadBanner stores the uploaded image as the banner of the authenticated user.
func (h *UserHandler) UploadBanner(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	file := middleware.Upload(c)
	if file == nil {
		return domainerrors.ErrNoFileUploaded
	}

	updated, err := h.userUC.UpdateBanner(c.Request().Context(), user.ID, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Banner updated successfully")
}

// Create registers an account without issuing tokens.
func (h *UserHandler) Create(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, user, "User created successfully")
}

// List pages through accounts.
func (h *UserHandler) List(c echo.Context) error {
	var query usecase.ListUsersQuery
	var role string
	err := bindPage(echo.QueryParamsBinder(c), &query.PageQuery).
		String("search", &query.Search).
		String("sort", &query.Sort).
		String("order", &query.Order).
		String("role", &role).
		BindError()
	if err != nil {
		return bindingFailed(err)
	}
	if role != "" {
		r := entity.Role(role)
		query.Role = &r
	}
	if query.Active, err = optionalBool(c, "active"); err != nil {
		return err
	}
	if query.Verified, err = optionalBool(c, "verified"); err != nil {
		return err
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	page, err := h.userUC.List(c.Request().Context(), &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Users retrieved successfully")
}

// Get returns one account.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	return h.get(c, id)
}

// Update replaces an account profile.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	return h.update(c, id)
}

// Patch partially updates an account profile.
func (h *UserHandler) Patch(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	return h.patch(c, id)
}

// Delete soft deletes an account.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.SoftDelete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("User deleted", slog.String("user_id", id.String()))

	return response.NoContent(c)
}

// Verify marks an account as verified.
func (h *UserHandler) Verify(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.Verify(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User verified successfully")
}

func (h *UserHandler) get(c echo.Context, id uuid.UUID) error {
	user, err := h.userUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

func (h *UserHandler) update(c echo.Context, id uuid.UUID) error {
	var input usecase.UpdateUserInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

func (h *UserHandler) patch(c echo.Context, id uuid.UUID) error {
	var input usecase.PatchUserInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.Patch(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}
