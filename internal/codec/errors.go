package codec

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown payload format")
	ErrNotAMap       = errors.New("payload is not a key-value map")
)
