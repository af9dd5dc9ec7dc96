package service

import "errors"

var (
	ErrNilContainerInfo = errors.New("no container info provided")
	ErrValidation       = errors.New("container info failed validation")
)
