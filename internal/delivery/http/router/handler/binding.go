package handler

import (
	"strconv"
	"strings"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindBody decodes the JSON body into dst and validates it.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return err
	}

	return c.Validate(dst)
}

// bindingFailed reports a query parameter that could not be parsed as a field error.
func bindingFailed(err error) error {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return domainerrors.NewValidationError([]domainerrors.FieldError{{
			Field:   bindingErr.Field,
			Message: bindingErr.Field + " is invalid",
		}})
	}

	return err
}

func bindPage(b *echo.ValueBinder, page *usecase.PageQuery) *echo.ValueBinder {
	return b.Int("page", &page.Page).Int("limit", &page.Limit)
}

// pageQuery binds and validates page/limit.
func pageQuery(c echo.Context) (usecase.PageQuery, error) {
	var page usecase.PageQuery
	if err := bindPage(echo.QueryParamsBinder(c), &page).BindError(); err != nil {
		return page, bindingFailed(err)
	}

	return page, c.Validate(&page)
}

// optionalString returns nil when the query parameter is absent or blank.
func optionalString(c echo.Context, name string) *string {
	value := strings.TrimSpace(c.QueryParam(name))
	if value == "" {
		return nil
	}

	return &value
}

func optionalBool(c echo.Context, name string) (*bool, error) {
	raw := optionalString(c, name)
	if raw == nil {
		return nil, nil
	}

	value, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, invalidField(name)
	}

	return &value, nil
}

func optionalInt(c echo.Context, name string) (*int, error) {
	raw := optionalString(c, name)
	if raw == nil {
		return nil, nil
	}

	value, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, invalidField(name)
	}

	return &value, nil
}

func invalidField(name string) error {
	return domainerrors.NewValidationError([]domainerrors.FieldError{{Field: name, Message: name + " is invalid"}})
}

// uuidParam parses a path parameter as a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewBadRequestError("Invalid %s", name)
	}

	return id, nil
}

// intParam parses a positive integer path parameter.
func intParam(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, domainerrors.NewBadRequestError("Invalid %s", name)
	}

	return id, nil
}

// currentUser returns the authenticated user; routes using it sit behind Authenticate.
func currentUser(c echo.Context) (*entity.User, error) {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	return user, nil
}
