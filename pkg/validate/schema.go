// Package validate turns raw form fields into typed records.
//
// A Schema is a list of Fields evaluated in order against the submitted values.
// Every field is checked even after one fails, so callers get the complete set of
// problems for a submission. The typed record is returned only when all fields pass.
package validate

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// FieldErrors maps a field name to its human-readable messages.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Field describes one form field.
type Field[T any] struct {
	Name string
	// Coerce converts the raw value before Tag is checked. Nil keeps the raw string.
	Coerce func(raw string) (any, error)
	// Tag is a go-playground/validator tag, e.g. "required" or "oneof=a b".
	Tag string
	// Message is reported when coercion or Tag fails.
	Message string
	Set     func(dst *T, value any)
}

type Schema[T any] struct {
	fields []Field[T]
}

func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	return &Schema[T]{fields: fields}
}

// Parse validates raw against every field. On failure the zero T is returned
// together with the errors of all failed fields.
func (s *Schema[T]) Parse(raw map[string]string) (T, FieldErrors) {
	var out T
	errs := FieldErrors{}

	for _, f := range s.fields {
		value, ok := s.check(f, raw[f.Name])
		if !ok {
			errs.add(f.Name, f.Message)
			continue
		}
		if f.Set != nil {
			f.Set(&out, value)
		}
	}

	if len(errs) > 0 {
		var zero T
		return zero, errs
	}
	return out, nil
}

func (s *Schema[T]) check(f Field[T], raw string) (any, bool) {
	var value any = raw
	if f.Coerce != nil {
		v, err := f.Coerce(raw)
		if err != nil {
			return nil, false
		}
		value = v
	}
	if err := engine.Var(value, f.Tag); err != nil {
		return nil, false
	}
	return value, true
}
