package sink

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
)

// ErrBadTarget is returned when a FindAll destination is not a pointer to
// a slice of schema models.
var ErrBadTarget = errors.New("destination must be a pointer to a slice of entities")

// Target inspects a FindAll destination. It returns the slice the results
// go to, the element type and the table name of the element kind.
func Target(dest any) (reflect.Value, reflect.Type, string, error) {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() ||
		rv.Elem().Kind() != reflect.Slice {
		return reflect.Value{}, nil, "", fmt.Errorf("%w: got %T", ErrBadTarget, dest)
	}

	slice := rv.Elem()
	elem := slice.Type().Elem()
	if elem.Kind() != reflect.Struct {
		return reflect.Value{}, nil, "", fmt.Errorf("%w: got %T", ErrBadTarget, dest)
	}
	ent, ok := reflect.Zero(elem).Interface().(schema.Entity)
	if !ok {
		return reflect.Value{}, nil, "", fmt.Errorf("%w: got %T", ErrBadTarget, dest)
	}
	return slice, elem, ent.TableName(), nil
}
