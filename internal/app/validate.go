package app

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MessageProvider lets a request override the generated message for a field.
// Keys are struct field names; a missing key falls back to a message built
// from the violated rule.
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// gate wraps a validator instance and turns rule violations into field
// errors. It is a pure check: no I/O, no side effects.
type gate struct {
	validate *validator.Validate
}

func newGate() *gate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Decimals validate as their float value so numeric rules (gt, gte)
	// apply to money fields.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &gate{validate: v}
}

// check evaluates every rule declared on the request and collects all
// violations. A request type without rules always passes. A non-struct
// request is a programming error and is returned as a Go error.
func (g *gate) check(req any) ([]FieldError, error) {
	err := g.validate.Struct(req)
	if err == nil {
		return nil, nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return nil, fmt.Errorf("validate request: %w", err)
	}

	var messages map[string]string
	if mp, ok := req.(MessageProvider); ok {
		messages = mp.ValidationMessages()
	}

	fieldErrs := make([]FieldError, 0, len(violations))
	for _, v := range violations {
		msg, ok := messages[v.Field()]
		if !ok {
			msg = defaultMessage(v)
		}
		fieldErrs = append(fieldErrs, FieldError{Field: v.Field(), Message: msg})
	}
	return fieldErrs, nil
}

func defaultMessage(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", v.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", v.Field(), v.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", v.Field(), v.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", v.Field(), v.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", v.Field(), v.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters.", v.Field(), v.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", v.Field())
	case "eqfield":
		return fmt.Sprintf("%s must match %s.", v.Field(), v.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits.", v.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", v.Field(), v.Param())
	default:
		return fmt.Sprintf("%s is invalid.", v.Field())
	}
}
