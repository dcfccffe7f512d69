package profile

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/harborsight/crewfit/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks an input object against its range contracts. Missing data
// degrades gracefully inside the engine, but out-of-range values are a caller
// bug, so callers run this before invoking any scoring component.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("input validation failed", err.Error())
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Namespace()] = "failed '" + fe.Tag() + "' constraint"
	}
	return apperrors.NewValidationErrorWithMap(details)
}
