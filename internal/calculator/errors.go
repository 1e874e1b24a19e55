package calculator

import "errors"

var (
	// ErrDivisionByZero is returned when the divisor of a Divide is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownOperation is returned for any token or value outside the four operations.
	ErrUnknownOperation = errors.New("unknown operation")
)
