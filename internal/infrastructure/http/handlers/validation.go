package handlers

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
)

const dateLayout = "2006-01-02"

// Accepted time log timestamp layouts; zone-less forms are read as UTC.
var timestampLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs validator tags and reports the first failure by JSON field name.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return domerrors.Validation(err.Error())
	}
	fe := ve[0]
	switch fe.Tag() {
	case "required":
		return domerrors.Validation(fe.Field() + " is required")
	case "max":
		return domerrors.Validation(fe.Field() + " is too long")
	case "email":
		return domerrors.Validation(fe.Field() + " must be a valid email")
	default:
		return domerrors.Validation(fe.Field() + " is invalid")
	}
}

// SanitizeEmail trims and lowercases email. Run it before validation.
func SanitizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// optional trims s and maps blank to nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func parseDate(field string, s *string) (*time.Time, error) {
	s = optional(s)
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, domerrors.Validation(field + " must be YYYY-MM-DD")
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func parseTimestamp(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domerrors.Validation(field + " must be an RFC 3339 timestamp")
}
