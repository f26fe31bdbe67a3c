// Package validator adapts go-playground/validator to echo and registers the account rules.
package validator

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

var userNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New builds the validator with the custom tags registered.
func New() *CustomValidator {
	cv := &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}

	// Report fields by their JSON name so messages match the request body.
	cv.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			// Embedded structs keep their Go name so fieldPath can flatten them.
			if field.Anonymous {
				return ""
			}

			return lowerFirst(field.Name)
		}

		return name
	})

	mustRegister(cv.validate, "username", validateUserName)
	mustRegister(cv.validate, "strongpassword", validateStrongPassword)
	mustRegister(cv.validate, "securepassword", validateSecurePassword)
	mustRegister(cv.validate, "pastdate", cv.validatePastDate)
	mustRegister(cv.validate, "adult", cv.validateAdult)
	mustRegister(cv.validate, "maxdecimals", validateMaxDecimals)

	return cv
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(errors.Wrapf(err, "register validation %s", tag))
	}
}

// Validate checks i and turns rule violations into a validation AppError.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return domainerrors.NewValidationError(FieldErrors(validationErrs))
	}

	return errors.Wrap(err, "failed to validate request")
}

// FieldErrors renders validator errors as field/message pairs.
func FieldErrors(errs validator.ValidationErrors) []domainerrors.FieldError {
	fields := make([]domainerrors.FieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}

	return fields
}

// fieldPath drops the top-level struct name and embedded structs:
// "RegisterInput.email" becomes "email", "ListUsersQuery.PageQuery.limit" becomes "limit".
func fieldPath(fe validator.FieldError) string {
	segments := strings.Split(fe.Namespace(), ".")
	if len(segments) < 2 {
		return fe.Field()
	}

	path := make([]string, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		if segment != "" && unicode.IsUpper(rune(segment[0])) {
			continue
		}
		path = append(path, segment)
	}
	if len(path) == 0 {
		return fe.Field()
	}

	return strings.Join(path, ".")
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return field + " must be at least " + fe.Param() + " characters"
		}

		return field + " must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return field + " must be at most " + fe.Param() + " characters"
		}

		return field + " must be at most " + fe.Param()
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "len":
		return field + " must be exactly " + fe.Param() + " characters"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return field + " must be a valid date (YYYY-MM-DD)"
	case "hexcolor":
		return field + " must be a hex color like #FF5733"
	case "username":
		return field + " can only contain letters, numbers, underscores and hyphens"
	case "strongpassword":
		return field + " must contain at least one uppercase letter, one lowercase letter and one number"
	case "securepassword":
		return field + " must contain at least one uppercase letter, one number and one special character"
	case "pastdate":
		return field + " cannot be in the future"
	case "adult":
		return "You must be at least 18 years old"
	case "maxdecimals":
		return field + " must have at most " + fe.Param() + " decimal places"
	default:
		return field + " is invalid"
	}
}

func validateUserName(fl validator.FieldLevel) bool {
	return userNamePattern.MatchString(fl.Field().String())
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	var upper, lower, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return upper && lower && digit
}

func validateSecurePassword(fl validator.FieldLevel) bool {
	var upper, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	return upper && digit && special
}

// validatePastDate accepts dates up to and including today. Unparsable values are left to the datetime tag.
func (cv *CustomValidator) validatePastDate(fl validator.FieldLevel) bool {
	date, err := time.Parse(dateLayout, fl.Field().String())
	if err != nil {
		return true
	}

	return !date.After(cv.now().UTC())
}

func (cv *CustomValidator) validateAdult(fl validator.FieldLevel) bool {
	date, err := time.Parse(dateLayout, fl.Field().String())
	if err != nil {
		return true
	}

	return entity.AgeAt(date, cv.now().UTC()) >= entity.AdultAge
}

// validateMaxDecimals checks the number of fraction digits of a float, e.g. `maxdecimals=2`.
func validateMaxDecimals(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	var value float64
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		value = fl.Field().Float()
	default:
		return true
	}

	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	dot := strings.IndexByte(formatted, '.')
	if dot < 0 {
		return true
	}

	return len(formatted)-dot-1 <= limit
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
