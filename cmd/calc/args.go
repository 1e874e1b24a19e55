package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"calc/internal/calculator"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const usageLine = "Usage: calc <operation> <operand1> <operand2>"

// UsageError reports a malformed command line. It maps to ExitUsageError.
type UsageError struct {
	Err error
	// Usage overrides the root usage line, e.g. for subcommands.
	Usage string
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// usageArgs wraps a positional-argument validator so that its failures are
// reported as usage errors with the command's own usage line.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &UsageError{Err: err, Usage: "Usage: " + cmd.UseLine()}
		}
		return nil
	}
}

// request is a parsed command line, before evaluation. Exactly one of op and
// token is set: op when the operation came from a flag, token when it came
// from the first positional argument.
type request struct {
	op       calculator.Operation
	token    string
	operand1 float64
	operand2 float64
}

// parseRequest combines the operation flags and positional arguments into a request.
func parseRequest(cmd *cobra.Command, args []string) (request, error) {
	ops := selectedOperations(cmd)

	var req request
	var operands []string
	switch {
	case len(ops) > 1:
		tokens := make([]string, len(ops))
		for i, op := range ops {
			tokens[i] = op.Token()
		}
		return req, usageErrorf("only one operation may be given, got %s", strings.Join(tokens, ", "))
	case len(ops) == 1:
		if len(args) != 2 {
			return req, usageErrorf("expected 2 operands, got %d", len(args))
		}
		req.op = ops[0]
		operands = args
	case len(args) == 3:
		req.token = args[0]
		operands = args[1:]
	case len(args) == 2:
		return req, usageErrorf("an operation is required (one of %s)", operationTokens())
	default:
		return req, usageErrorf("expected 3 arguments, got %d", len(args))
	}

	var err error
	if req.operand1, err = parseOperand("operand1", operands[0]); err != nil {
		return req, err
	}
	if req.operand2, err = parseOperand("operand2", operands[1]); err != nil {
		return req, err
	}
	return req, nil
}

// parseOperand converts a decimal literal to a finite float64.
func parseOperand(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, usageErrorf("%s %q is not a number", name, s)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, usageErrorf("%s %q must be a finite number", name, s)
	}
	return v, nil
}

func selectedOperations(cmd *cobra.Command) []calculator.Operation {
	var ops []calculator.Operation
	for _, op := range calculator.Operations() {
		if set, err := cmd.Flags().GetBool(op.String()); err == nil && set {
			ops = append(ops, op)
		}
	}
	return ops
}

func operationTokens() string {
	ops := calculator.Operations()
	tokens := make([]string, len(ops))
	for i, op := range ops {
		tokens[i] = op.Token()
	}
	return strings.Join(tokens, ", ")
}

// normalizeArgs protects negative numeric operands from the flag parser. When
// any operand before "--" is a negative literal, flags (with their values) are
// kept in place and every operand is moved, in order, behind a single trailing
// "--". Flags may therefore appear before, between or after the operands.
// Values of flags that take an argument ("--precision -1") are never moved.
func normalizeArgs(cmd *cobra.Command, args []string) []string {
	var flags, operands []string
	negative := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			operands = append(operands, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(arg):
			negative = true
			operands = append(operands, arg)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flags = append(flags, arg)
			if takesValue(cmd, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			operands = append(operands, arg)
		}
	}

	if !negative {
		return args
	}
	if len(operands) > 0 && isSubcommand(cmd, operands[0]) {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, operands...)
}

func isSubcommand(cmd *cobra.Command, name string) bool {
	for _, c := range cmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(cmd *cobra.Command, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		if f = cmd.Flags().Lookup(name); f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
	} else if len(arg) == 2 {
		if f = cmd.Flags().ShorthandLookup(arg[1:]); f == nil {
			f = cmd.PersistentFlags().ShorthandLookup(arg[1:])
		}
	}
	return f != nil && f.NoOptDefVal == ""
}
