package shared

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEndian     = errors.New("unknown byte order")
	ErrInsufficientSpace = errors.New("insufficient disk space")
)

type ConfigMismatchError struct {
	Param    string
	Expected string
	Found    string
	Path     string
}

func (err ConfigMismatchError) Error() string {
	return fmt.Sprintf("`%v` mismatch; expected: %v, found: %v, path: %v",
		err.Param, err.Expected, err.Found, err.Path)
}
