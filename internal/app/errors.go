package app

import "errors"

var (
	ErrReadInput   = errors.New("error reading input")
	ErrWriteOutput = errors.New("error writing output")
)
