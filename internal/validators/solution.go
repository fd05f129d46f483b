package validators

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-uaa/models"
)

// Field names accepted by [SolutionValidator].
const (
	FieldUUID    = "uuid"
	FieldName    = "name"
	FieldVersion = "version"
	FieldSummary = "summary"
)

// CompositeFieldMaxLength bounds every field of the composite dialog.
const CompositeFieldMaxLength = 50

var compositeFieldPattern = regexp.MustCompile(`^[\p{L}\p{N} _.,\-]*$`)

// SolutionValidator validates [models.CompositeSolutionUpdate]. The same
// rules run in the dialog client and on the server.
type SolutionValidator struct{}

// NewSolutionValidator constructs a [SolutionValidator].
func NewSolutionValidator() Validator {
	return &SolutionValidator{}
}

func (v *SolutionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CompositeSolutionUpdate:
		return v.validateCompositeUpdate(value, fields...)
	case *models.CompositeSolutionUpdate:
		return v.validateCompositeUpdate(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SolutionValidator) validateCompositeUpdate(update models.CompositeSolutionUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUUID, FieldName, FieldVersion, FieldSummary}
	}

	for _, f := range fields {
		switch f {
		case FieldUUID:
			if update.UUID == "" {
				return ErrInvalidUUID
			}
		case FieldName:
			if update.Name == "" {
				return ErrNameRequired
			}
			if err := ValidateCompositeField(FieldName, update.Name); err != nil {
				return err
			}
		case FieldVersion:
			if update.Version == "" {
				return ErrVersionRequired
			}
			if err := ValidateCompositeField(FieldVersion, update.Version); err != nil {
				return err
			}
		case FieldSummary:
			if err := ValidateCompositeField(FieldSummary, update.Summary); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateCompositeField checks one dialog field against the length and
// character rules. Emptiness is not checked here.
func ValidateCompositeField(field, value string) error {
	if utf8.RuneCountInString(value) > CompositeFieldMaxLength {
		return fmt.Errorf("%w: %s (max %d characters)", ErrFieldTooLong, field, CompositeFieldMaxLength)
	}
	if !compositeFieldPattern.MatchString(value) {
		return fmt.Errorf("%w: %s", ErrInvalidCharacter, field)
	}
	return nil
}
