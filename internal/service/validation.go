package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "problem-selection-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError converts the first validator failure into an application ValidationError
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(field, "is required")
	case "max":
		return apperrors.NewValidationError(field, fmt.Sprintf("must be at most %s characters", fe.Param()))
	default:
		return apperrors.NewValidationError(field, "is invalid")
	}
}

// jsonFieldName maps a Go field name like TeamID onto its JSON name teamId
func jsonFieldName(name string) string {
	if name == "" {
		return name
	}
	if strings.HasSuffix(name, "ID") {
		name = strings.TrimSuffix(name, "ID") + "Id"
	}
	return strings.ToLower(name[:1]) + name[1:]
}
