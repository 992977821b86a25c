package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/placement"
	fkerrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their document keys.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("placement", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || placement.Placement(value).Valid()
		})

		_ = v.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || placement.Strategy(value).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks cfg against its struct rules.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fkerrors.NewValidationError("config", "configuration is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError normalizes validator errors into floatkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := documentFieldName(ve)
		return fkerrors.NewValidationError(field, describe(ve), err)
	}

	return fkerrors.NewValidationError("config", err.Error(), err)
}

// documentFieldName drops the root type from the namespace, leaving
// "engine.margin" style paths.
func documentFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s entries", fe.Param())
	case "placement":
		return fmt.Sprintf("unknown placement %q", fe.Value())
	case "strategy":
		return fmt.Sprintf("unknown strategy %q", fe.Value())
	}
	return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
}
