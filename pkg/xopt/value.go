package xopt

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// name returns the option's display form for error messages, preferring the
// short spelling to match what users most often typed.
func (o *Option) name() string {
	if o.Short != 0 {
		return "-" + string(o.Short)
	}
	return "--" + o.Long
}

// assign applies one option to the destination struct. When hasValue is
// false the option was used flag-style: bool fields are set true and
// integer fields are incremented (occurrence counting, as in -vvv).
// Conversion failures are wrapped in a ValueError naming the option.
func assign(dst any, opt *Option, value string, hasValue bool) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("destination must be a non-nil pointer to a struct")
	}

	field := v.Elem().FieldByName(opt.Field)
	if !field.IsValid() {
		return fmt.Errorf("option %s: no field %q in %s", opt.name(), opt.Field, v.Elem().Type())
	}
	if !field.CanSet() {
		return fmt.Errorf("option %s: field %q is not settable", opt.name(), opt.Field)
	}

	if !hasValue {
		return applyFlag(field, opt)
	}
	if err := setFieldValue(field, value); err != nil {
		return &ValueError{Option: opt.name(), Value: value, Err: err}
	}
	return nil
}

// applyFlag handles an option used without a value.
func applyFlag(field reflect.Value, opt *Option) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		field = field.Elem()
	}

	switch field.Kind() {
	case reflect.Bool:
		field.SetBool(true)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		field.SetInt(field.Int() + 1)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		field.SetUint(field.Uint() + 1)
		return nil
	default:
		return &ValueError{
			Option: opt.name(),
			Err:    fmt.Errorf("field %q of type %s requires a value", opt.Field, field.Type()),
		}
	}
}

// setFieldValue converts a raw string into the field's type. Pointer fields
// are allocated on first assignment, letting callers distinguish "never
// seen" (nil) from "set to the zero value".
func setFieldValue(field reflect.Value, value string) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		field = field.Elem()
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
		return nil

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool value %q: %w", value, err)
		}
		field.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", value, err)
			}
			field.SetInt(int64(d))
			return nil
		}
		i, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q: %w", value, err)
		}
		field.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q: %w", value, err)
		}
		field.SetUint(u)
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q: %w", value, err)
		}
		field.SetFloat(f)
		return nil

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", field.Type())
		}
		field.Set(reflect.Append(field, reflect.ValueOf(value)))
		return nil

	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
}
