package bundle

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is matched by every [*TypeMismatchError].
	ErrTypeMismatch = errors.New("bundle value has unexpected type")
	// ErrInvalidKey is returned when a decoded map carries a non-string key.
	ErrInvalidKey = errors.New("bundle key must be a string")
)

// TypeMismatchError reports a present key whose value is not of the type
// requested by the caller.
type TypeMismatchError struct {
	Key      string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("bundle key %q: expected %s, got %s", e.Key, e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrTypeMismatch) true for any *TypeMismatchError.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case Bundle, map[string]any:
		return "bundle"
	default:
		return fmt.Sprintf("%T", v)
	}
}
