package calculator

import (
	"fmt"
	"strings"
)

// Operation selects one of the four supported arithmetic actions.
type Operation string

const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

const tokenPrefix = "--"

var symbols = map[Operation]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "*",
	Divide:   "/",
}

// Operations returns the supported operations in canonical order.
func Operations() []Operation {
	return []Operation{Add, Subtract, Multiply, Divide}
}

// ParseOperation maps a CLI token ("--add") or a bare name ("add") to an Operation.
// Matching is case-insensitive.
func ParseOperation(token string) (Operation, error) {
	name := strings.ToLower(strings.TrimSpace(token))
	name = strings.TrimPrefix(name, tokenPrefix)

	op := Operation(name)
	if !op.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownOperation, token)
	}
	return op, nil
}

// Valid reports whether op is one of the four operations.
func (op Operation) Valid() bool {
	_, ok := symbols[op]
	return ok
}

// Token returns the CLI flag form of the operation, e.g. "--add".
func (op Operation) Token() string {
	return tokenPrefix + string(op)
}

// Symbol returns the arithmetic symbol, or "?" for an invalid operation.
func (op Operation) Symbol() string {
	if s, ok := symbols[op]; ok {
		return s
	}
	return "?"
}

func (op Operation) String() string {
	return string(op)
}
