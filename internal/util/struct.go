package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized returns an error naming the first nil pointer,
// interface, map or func field of the struct s points to. Fields tagged
// `wire:"-"` are skipped.
func IsStructInitialized(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return errors.New("struct is nil")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return errors.Errorf("expected struct, got %s", v.Kind())
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if field.Tag.Get("wire") == "-" {
			continue
		}

		switch v.Field(i).Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
			if v.Field(i).IsNil() {
				return errors.Errorf("struct field %s is not initialized", field.Name)
			}
		default:
		}
	}

	return nil
}
