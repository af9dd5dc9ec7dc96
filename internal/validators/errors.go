package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyHost        = errors.New("proxy host must not be empty")
	ErrInvalidPort      = errors.New("proxy port must be a number in 1..65535")
	ErrInvalidProxyType = errors.New("unsupported proxy type")
	ErrInvalidDimension = errors.New("video dimension must be a positive number")
)
