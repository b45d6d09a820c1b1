package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	kineticerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNames = map[string]struct{}{"": {}, "default": {}, "auto": {}, "dark": {}, "light": {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := themeNames[strings.ToLower(strings.TrimSpace(fl.Field().String()))]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// Validate checks settings against their struct rules.
func Validate(settings *Settings) error {
	return convertValidationError(validatorInstance().Struct(settings))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return kineticerrors.NewValidationError(field, msg, err)
	}

	return kineticerrors.NewValidationError("settings", err.Error(), err)
}

// yamlishFieldName turns Settings.Burst.Particles into burst.particles.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snake(part)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
