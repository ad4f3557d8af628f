package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	mustRegister(v, "size", func(fl validator.FieldLevel) bool {
		return Size(fl.Field().String()).Valid()
	})
	mustRegister(v, "workload", func(fl validator.FieldLevel) bool {
		return Workload(fl.Field().Float()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Errorf("register %s validation: %w", tag, err))
	}
}

// Validate checks every argument of in before any arithmetic runs. Fields are
// checked in declaration order (distance, size, fragility, workload) and the first
// failure is reported. The fragile distance limit is checked last, once all fields
// are well formed.
func Validate(in Input) error {
	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return newError(fieldSentinel(fieldErrs[0].StructField()), fieldErrs[0])
		}
		return fmt.Errorf("validate input: %w", err)
	}
	if *in.Fragile && *in.Distance > MaxFragileDistanceKm {
		return newError(ErrFragileTooFar, nil)
	}
	return nil
}

func fieldSentinel(field string) *Error {
	switch field {
	case "Distance":
		return ErrInvalidDistance
	case "Size":
		return ErrInvalidSize
	case "Fragile":
		return ErrInvalidFragility
	default:
		return ErrInvalidWorkload
	}
}
