package main

import (
	"fmt"

	"calc/internal/calculator"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// askOneFunc is swapped out in tests.
var askOneFunc = survey.AskOne

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Interactively choose an operation and enter the operands",
	Long: `Asks for the operation and both operands on the terminal, then prints the
result exactly as the non-interactive form would.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	ops := calculator.Operations()
	options := make([]string, len(ops))
	for i, op := range ops {
		options[i] = op.String()
	}

	var choice string
	if err := askOneFunc(&survey.Select{
		Message: "Operation:",
		Options: options,
		Default: options[0],
		Description: func(value string, index int) string {
			return fmt.Sprintf("operand1 %s operand2", ops[index].Symbol())
		},
	}, &choice); err != nil {
		return err
	}

	op, err := calculator.ParseOperation(choice)
	if err != nil {
		return err
	}

	a, err := askOperand("operand1", "First operand:")
	if err != nil {
		return err
	}
	b, err := askOperand("operand2", "Second operand:")
	if err != nil {
		return err
	}

	return calculate(op, a, b)
}

func askOperand(name, message string) (float64, error) {
	var raw string
	err := askOneFunc(&survey.Input{Message: message}, &raw,
		survey.WithValidator(survey.Required),
		survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			_, err := parseOperand(name, s)
			return err
		}),
	)
	if err != nil {
		return 0, err
	}
	return parseOperand(name, raw)
}
