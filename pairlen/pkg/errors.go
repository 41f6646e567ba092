package pairlen

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrDivisionByZero = errors.New("length bound truncates to zero")
	ErrEmptyInput = errors.New("empty input")
	ErrMissingLookup = errors.New("missing length lookup")
	ErrInvalidFraction = errors.New("invalid fraction")
	ErrBadLine = errors.New("bad line")
)

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}
