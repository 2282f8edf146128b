package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-dream-journal/models"
)

// Field name constants used to restrict validation of a dream to a subset of
// its fields. They match the JSON names of [models.Dream].
const (
	FieldTitle      = "title"
	FieldLucidity   = "lucidity"
	FieldImportance = "importance"
)

// dreamFields maps wire names onto struct field names of [models.Dream].
var dreamFields = map[string]string{
	FieldTitle:      "Title",
	FieldLucidity:   "Lucidity",
	FieldImportance: "Importance",
}

type DreamValidator struct {
	validate *validator.Validate
}

func NewDreamValidator() Validator {
	return &DreamValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks a dream draft. Errors wrap [ErrInvalidDream] and name every
// offending field.
func (v *DreamValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Dream:
		return v.validateDream(ctx, value, fields...)
	case *models.Dream:
		if value == nil {
			return fmt.Errorf("%w: nil dream", ErrInvalidDream)
		}
		return v.validateDream(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *DreamValidator) validateDream(ctx context.Context, dream models.Dream, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, dream)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := dreamFields[f]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
			names = append(names, name)
		}
		err = v.validate.StructPartialCtx(ctx, dream, names...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidDream, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidDream, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
