package telegraf

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoFields is returned when a point reaches the write boundary with an
// empty field set. The daemon requires at least one field per point; tags
// are optional.
var ErrNoFields = errors.New("point has no fields")

// UnsupportedTypeError is returned when no field value variant exists for a
// Go type.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported field value type %s", e.Type)
}
