package union

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// OneOf is an untagged union over an open-ended arm set. T is a struct
// whose exported pointer fields are the arms, tried in field order on
// decode. It covers the shapes Union2 through Union4 cannot, such as an
// enum with eight variants.
type OneOf[T any] struct {
	Arms T
}

// UnmarshalJSON implements json.Unmarshaler for OneOf.
func (o *OneOf[T]) UnmarshalJSON(data []byte) error {
	return UnmarshalArms(data, &o.Arms)
}

// MarshalJSON implements json.Marshaler for OneOf.
func (o OneOf[T]) MarshalJSON() ([]byte, error) {
	return MarshalArms(o.Arms)
}

// Validate validates the active union member.
func (o OneOf[T]) Validate(validate *validator.Validate) error {
	rv := reflect.ValueOf(o.Arms)
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("union arms must be a struct, got %s", rv.Kind())
	}

	count := 0
	var value interface{}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		if !rt.Field(i).IsExported() {
			continue
		}
		av := rv.Field(i)
		if av.Kind() == reflect.Pointer && !av.IsNil() {
			count++
			value = av.Interface()
		}
	}

	if count == 0 {
		return errors.New("exactly one union option must be set")
	}
	if count > 1 {
		return errors.New("only one union option can be set")
	}

	return validateArm(validate, value)
}

// Value returns the active value and its arm name. It returns (nil, "")
// when no arm is set.
func (o OneOf[T]) Value() (interface{}, string) {
	rv := reflect.ValueOf(o.Arms)
	if rv.Kind() != reflect.Struct {
		return nil, ""
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		if !rt.Field(i).IsExported() {
			continue
		}
		av := rv.Field(i)
		if av.Kind() == reflect.Pointer && !av.IsNil() {
			return av.Interface(), rt.Field(i).Name
		}
	}

	return nil, ""
}

// UnmarshalArms decodes data into the first accepting arm of an arms
// struct. arms must be a non-nil pointer to a struct whose exported
// fields are all pointers. Previously set arms are cleared first.
func UnmarshalArms(data []byte, arms interface{}) error {
	pv := reflect.ValueOf(arms)
	if pv.Kind() != reflect.Pointer || pv.IsNil() {
		return fmt.Errorf("union arms must be a non-nil struct pointer, got %T", arms)
	}
	rv := pv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("union arms must be a struct, got %s", rv.Kind())
	}
	clearArms(rv)

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Type.Kind() != reflect.Pointer {
			return fmt.Errorf("union arm %s must be a pointer, got %s", f.Name, f.Type.Kind())
		}

		candidate := reflect.New(f.Type.Elem())
		if err := json.Unmarshal(data, candidate.Interface()); err != nil {
			continue
		}
		if !screen(candidate.Interface()) {
			continue
		}

		rv.Field(i).Set(candidate)
		return nil
	}

	return noMatch(rt)
}

// MarshalArms encodes the first non-nil arm of an arms struct.
func MarshalArms(arms interface{}) ([]byte, error) {
	rv := reflect.ValueOf(arms)
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("union arms must be a struct, got %s", rv.Kind())
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		av := rv.Field(i)
		if av.Kind() != reflect.Pointer {
			return nil, fmt.Errorf("union arm %s must be a pointer, got %s", f.Name, av.Kind())
		}
		if av.IsNil() {
			continue
		}
		return json.Marshal(av.Interface())
	}

	return nil, errors.New("no value set in union")
}

// clearArms resets every settable pointer arm so state from a previous
// decode cannot survive a retry.
func clearArms(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.Pointer && f.CanSet() {
			f.Set(reflect.Zero(f.Type()))
		}
	}
}

// noMatch builds the no-arm-accepted error. Arms implementing
// Discriminant get their advertised values listed.
func noMatch(rt reflect.Type) error {
	var wants []string
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() || f.Type.Kind() != reflect.Pointer {
			continue
		}
		if d, ok := reflect.New(f.Type.Elem()).Elem().Interface().(Discriminant); ok {
			wants = append(wants, d.Describe())
		}
	}

	if len(wants) == 0 {
		return fmt.Errorf("failed to unmarshal into any union type: data does not match any of the union variants")
	}
	return fmt.Errorf("failed to unmarshal into any union type: data does not match any of the union variants (checked against %s)", strings.Join(wants, ", "))
}
