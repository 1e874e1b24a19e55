package main

import (
	"calc/internal/calculator"
	"calc/internal/telemetry"

	"github.com/spf13/cobra"
)

func runCalculate(cmd *cobra.Command, args []string) error {
	req, err := parseRequest(cmd, args)
	if err != nil {
		return err
	}

	if req.token != "" {
		return calculateToken(req.token, req.operand1, req.operand2)
	}
	return calculate(req.op, req.operand1, req.operand2)
}

// calculate evaluates one operation, records it and prints the outcome.
func calculate(op calculator.Operation, a, b float64) error {
	res, err := calculator.Evaluate(a, b, op)
	return report(op, res, err, a, b)
}

// calculateToken is calculate for an operation given as a positional token
// ("add", "--divide"). Unrecognised tokens are recorded under the unknown label.
func calculateToken(token string, a, b float64) error {
	value, err := calculator.CalculateToken(a, b, token)

	var res calculator.Result
	op, parseErr := calculator.ParseOperation(token)
	if err == nil && parseErr == nil {
		res = calculator.Result{Operation: op, Operand1: a, Operand2: b, Value: value}
	}
	return report(op, res, err, a, b)
}

func report(op calculator.Operation, res calculator.Result, err error, a, b float64) error {
	current.observe(op, res.Value, err)
	if err != nil {
		telemetry.LogDebug("Calculation failed", "operation", op.String(), "operand1", a, "operand2", b, "error", err)
		return err
	}

	telemetry.LogDebug("Calculated", "operation", op.String(), "operand1", a, "operand2", b, "result", res.Value)
	return current.printer.PrintResult(res)
}
