// Package validation binds request data and validates it.
//
// Rules are declared with go-playground/validator struct tags. Failures are
// converted into one errs.FieldError per offending field, named after the
// field's JSON (or path parameter) name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/offered-places/internal/errs"
)

// Validatable is implemented by request payloads that know how to validate
// themselves, usually by calling ValidateStruct.
type Validatable interface {
	Validate() error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	return v
}

// fieldName reports a struct field under the name clients use: its json tag,
// or its path parameter name for fields hidden from JSON.
func fieldName(fld reflect.StructField) string {
	if name, _, _ := strings.Cut(fld.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	if name := fld.Tag.Get("param"); name != "" {
		return name
	}
	return strings.ToLower(fld.Name)
}

// ValidateStruct runs the tag rules of v.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}

// PathBinder is implemented by payloads that read their own path
// parameters. A value that does not convert is reported against the
// parameter's name.
type PathBinder interface {
	BindPath(b *echo.ValueBinder) error
}

// BindAndValidate binds path parameters and body into payload, then
// validates it. Failures come back as a 400 *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if pb, ok := payload.(PathBinder); ok {
		if err := pb.BindPath(echo.PathParamsBinder(c)); err != nil {
			return bindError(err)
		}
	}

	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}

func bindError(err error) *errs.HTTPError {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return errs.NewBadRequestError("Validation failed", nil, []errs.FieldError{{
			Field: bindingErr.Field,
			Error: "has an invalid value",
		}})
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return errs.NewBadRequestError(fmt.Sprintf("Invalid request: %v", echoErr.Message), nil, nil)
	}

	return errs.NewBadRequestError("Invalid request: "+err.Error(), nil, nil)
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs.ValidationError(err).Message, []errs.FieldError{}
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fe.Field(),
			Error: ruleMessage(fe),
		})
	}

	return "Validation failed", fieldErrors
}

// ruleMessage describes the rule a field violated.
func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"

	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "url":
		return "must be a valid URL"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed rule %s:%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed rule %s", fe.Tag())
	}
}
