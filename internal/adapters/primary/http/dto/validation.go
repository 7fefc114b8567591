package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"heart-risk-service/internal/core/domain"
)

// RegisterValidations installs the "feature" tag and reports field errors
// under their wire names (age, cp, ...) instead of Go field names.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v.RegisterValidation("feature", validateFeature)
}

func validateFeature(fl validator.FieldLevel) bool {
	f, ok := domain.LookupFeature(fl.Param())
	if !ok {
		return false
	}

	var value float64
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value = float64(fl.Field().Int())
	case reflect.Float32, reflect.Float64:
		value = fl.Field().Float()
	default:
		return false
	}
	return f.Check(value) == nil
}

// FieldErrors turns binding validation errors into one message per field.
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		f, ok := domain.LookupFeature(name)
		if !ok {
			out[name] = fmt.Sprintf("%s failed %s validation", name, fe.Tag())
			continue
		}
		if fe.Tag() == "required" {
			out[name] = requiredMessage(f)
			continue
		}
		out[name] = fmt.Sprintf("%s must be between %s and %s",
			f.Label, domain.FormatNumber(f.Min), domain.FormatNumber(f.Max))
	}
	return out
}

// BlankFields reports posted features whose value is empty. Form binding
// would otherwise turn them into 0.
func BlankFields(posted map[string]string) map[string]string {
	var out map[string]string
	for _, f := range domain.Features() {
		v, ok := posted[f.Name]
		if !ok || strings.TrimSpace(v) != "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[f.Name] = requiredMessage(f)
	}
	return out
}

func requiredMessage(f domain.Feature) string {
	return fmt.Sprintf("%s is required", f.Label)
}
