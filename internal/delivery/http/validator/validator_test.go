package validator

import (
	"testing"
	"time"

	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *CustomValidator {
	cv := New()
	cv.now = func() time.Time { return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC) }

	return cv
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:      "Aki",
		LastName:  "Tanaka",
		UserName:  "aki_t",
		Email:     "aki@example.com",
		Password:  "Secret123",
		BirthDate: "1990-03-03",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Validation failed", appErr.Message())

	out := make(map[string]string, len(appErr.Fields()))
	for _, field := range appErr.Fields() {
		out[field.Field] = field.Message
	}

	return out
}

func TestValidate_RegisterInput(t *testing.T) {
	cv := newTestValidator()

	require.NoError(t, cv.Validate(validRegisterInput()))

	tests := []struct {
		name    string
		mutate  func(in *usecase.RegisterInput)
		field   string
		message string
	}{
		{
			name:    "user name characters",
			mutate:  func(in *usecase.RegisterInput) { in.UserName = "aki t!" },
			field:   "userName",
			message: "userName can only contain letters, numbers, underscores and hyphens",
		},
		{
			name:    "weak password",
			mutate:  func(in *usecase.RegisterInput) { in.Password = "alllowercase1" },
			field:   "password",
			message: "password must contain at least one uppercase letter, one lowercase letter and one number",
		},
		{
			name:    "future birth date",
			mutate:  func(in *usecase.RegisterInput) { in.BirthDate = "2030-01-01" },
			field:   "birthDate",
			message: "birthDate cannot be in the future",
		},
		{
			name:    "minor",
			mutate:  func(in *usecase.RegisterInput) { in.BirthDate = "2010-01-01" },
			field:   "birthDate",
			message: "You must be at least 18 years old",
		},
		{
			name:    "turns 18 tomorrow",
			mutate:  func(in *usecase.RegisterInput) { in.BirthDate = "2007-06-16" },
			field:   "birthDate",
			message: "You must be at least 18 years old",
		},
		{
			name:    "bad email",
			mutate:  func(in *usecase.RegisterInput) { in.Email = "not-an-email" },
			field:   "email",
			message: "email must be a valid email address",
		},
		{
			name:    "short name",
			mutate:  func(in *usecase.RegisterInput) { in.Name = "A" },
			field:   "name",
			message: "name must be at least 2 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegisterInput()
			tt.mutate(input)

			fields := fieldsOf(t, cv.Validate(input))

			assert.Equal(t, tt.message, fields[tt.field])
		})
	}
}

func TestValidate_SecurePassword(t *testing.T) {
	cv := newTestValidator()

	base := usecase.CreateUserInput{Name: "Aki", LastName: "Tanaka", UserName: "aki_t", Email: "aki@example.com"}

	ok := base
	ok.Password = "Secret1!"
	require.NoError(t, cv.Validate(&ok))

	missingSpecial := base
	missingSpecial.Password = "Secret123"
	fields := fieldsOf(t, cv.Validate(&missingSpecial))
	assert.Contains(t, fields["password"], "special character")
}

func TestValidate_MaxDecimals(t *testing.T) {
	cv := newTestValidator()

	require.NoError(t, cv.Validate(&usecase.RateInput{Score: 7.25}))
	require.NoError(t, cv.Validate(&usecase.RateInput{Score: 10}))

	fields := fieldsOf(t, cv.Validate(&usecase.RateInput{Score: 7.125}))
	assert.Equal(t, "score must have at most 2 decimal places", fields["score"])

	fields = fieldsOf(t, cv.Validate(&usecase.RateInput{Score: 10.5}))
	assert.Equal(t, "score must be at most 10", fields["score"])
}

func TestValidate_OneOf(t *testing.T) {
	cv := newTestValidator()

	fields := fieldsOf(t, cv.Validate(&usecase.ListMangasQuery{Order: "sideways"}))

	assert.Equal(t, "order must be one of: asc, desc", fields["order"])
}

func TestValidate_EmbeddedFieldsAreFlattened(t *testing.T) {
	cv := newTestValidator()

	fields := fieldsOf(t, cv.Validate(&usecase.ListUsersQuery{PageQuery: usecase.PageQuery{Limit: 500}}))

	assert.Contains(t, fields, "limit")
	assert.NotContains(t, fields, "PageQuery.limit")
}
