// Package calculator implements the four floating-point operations behind the
// calc command.
package calculator

import "fmt"

// Result is a successful evaluation of one operation.
type Result struct {
	Operation Operation `json:"operation"`
	Operand1  float64   `json:"operand1"`
	Operand2  float64   `json:"operand2"`
	Value     float64   `json:"result"`
}

// Calculate applies op to a and b. A zero divisor yields ErrDivisionByZero and
// an operation outside the supported set yields ErrUnknownOperation; in both
// cases the returned value is 0 and must not be used.
func Calculate(a, b float64, op Operation) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownOperation, string(op))
	}
}

// CalculateToken parses token with ParseOperation and calculates.
func CalculateToken(a, b float64, token string) (float64, error) {
	op, err := ParseOperation(token)
	if err != nil {
		return 0, err
	}
	return Calculate(a, b, op)
}

// Evaluate is Calculate returning a Result. On failure the Result is empty.
func Evaluate(a, b float64, op Operation) (Result, error) {
	v, err := Calculate(a, b, op)
	if err != nil {
		return Result{}, err
	}
	return Result{Operation: op, Operand1: a, Operand2: b, Value: v}, nil
}
