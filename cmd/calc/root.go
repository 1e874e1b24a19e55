package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"calc/internal/calculator"
	"calc/internal/config"
	"calc/internal/telemetry"
	"calc/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// current holds the per-invocation state built once configuration is loaded.
var current *session

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "calc <operation> <operand1> <operand2>",
	Short: "Add, subtract, multiply or divide two numbers",
	Long: `calc applies one arithmetic operation to two decimal operands and prints
the result. The operation is one of --add, --subtract, --multiply or --divide.

Examples:
  calc --add 5 3
  calc --divide -- -9 2
  calc multiply 1.5 4`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: initConfig,
	RunE:              runCalculate,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

type session struct {
	settings config.Settings
	printer  *ui.Printer
	metrics  *telemetry.Metrics
	closeLog func() error
}

func newSession(cmd *cobra.Command, s config.Settings) *session {
	return &session{
		settings: s,
		printer:  ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), s),
		metrics:  telemetry.NewMetrics(),
		closeLog: telemetry.InitLogger(cmd.ErrOrStderr(), s.Verbose, s.LogFile),
	}
}

// observe records a calculation outcome. Operations outside the supported set
// share one label.
func (s *session) observe(op calculator.Operation, value float64, err error) {
	label := op.String()
	if !op.Valid() {
		label = "unknown"
	}
	s.metrics.ObserveCalculation(label, calculationStatus(err), value)
}

func (s *session) finish() {
	if s.settings.MetricsFile != "" {
		if err := s.metrics.WriteTextfile(s.settings.MetricsFile); err != nil {
			telemetry.LogError("Failed to write metrics", err, "path", s.settings.MetricsFile)
		}
	}
	if err := s.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
	}
}

// Execute runs the root command against os.Args and exits with the resulting code.
// This is called by main.main().
func Execute() {
	// Wrap Execute in panic recovery for graceful shutdown
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(ExitError)
		}
	}()

	if code := run(rootCmd, os.Args[1:]); code != ExitSuccess {
		exit(code)
	}
}

// run executes root with args, reports any error and returns the exit code.
func run(root *cobra.Command, args []string) int {
	current = nil
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	root.SetArgs(normalizeArgs(root, args))
	err := root.Execute()

	sess := current
	if sess == nil {
		// Flag parsing or configuration failed before initConfig finished.
		sess = newSession(root, fallbackSettings())
	}
	defer sess.finish()

	if err != nil {
		usage := ""
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			usage = usageLine
			if usageErr.Usage != "" {
				usage = usageErr.Usage
			}
		}
		sess.printer.PrintError(err, usage)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	var usageErr *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usageErr):
		return ExitUsageError
	case errors.Is(err, config.ErrInvalid):
		return ExitConfigError
	default:
		return ExitError
	}
}

func calculationStatus(err error) string {
	switch {
	case err == nil:
		return telemetry.StatusSuccess
	case errors.Is(err, calculator.ErrDivisionByZero):
		return telemetry.StatusDivisionByZero
	case errors.Is(err, calculator.ErrUnknownOperation):
		return telemetry.StatusUnknownOperation
	default:
		return telemetry.StatusError
	}
}

// fallbackSettings uses the configuration when it loads cleanly and the
// defaults otherwise, so early errors are still printed in the requested format.
func fallbackSettings() config.Settings {
	if err := config.Load(cfgFile); err == nil && config.ValidateConfig() == nil {
		return config.FromViper()
	}
	return config.Settings{
		Precision: config.DefaultPrecision,
		Output:    config.DefaultOutput,
		Color:     config.DefaultColor,
	}
}

func init() {
	for _, op := range calculator.Operations() {
		rootCmd.Flags().Bool(op.String(), false, fmt.Sprintf("%s the operands (operand1 %s operand2)", capitalize(op.String()), op.Symbol()))
	}
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./calc.yaml when present)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringP("output", "o", string(config.DefaultOutput), "Output format (text, json)")
	rootCmd.PersistentFlags().Int("precision", config.DefaultPrecision, "Significant digits in text output (-1 for shortest exact)")
	rootCmd.PersistentFlags().String("color", string(config.DefaultColor), "Color output (auto, always, never)")
	rootCmd.PersistentFlags().String("log-file", "", "Also append JSON logs to this file")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this textfile after each run")

	bindFlags()
}

// bindFlags binds the persistent flags to their configuration keys.
func bindFlags() {
	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag(config.KeyPrecision, rootCmd.PersistentFlags().Lookup("precision"))
	viper.BindPFlag(config.KeyColor, rootCmd.PersistentFlags().Lookup("color"))
	viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag(config.KeyMetricsFile, rootCmd.PersistentFlags().Lookup("metrics-file"))
}

// initConfig loads and validates configuration, then builds the session.
func initConfig(cmd *cobra.Command, args []string) error {
	if err := config.Load(cfgFile); err != nil {
		return err
	}
	if err := config.ValidateConfig(); err != nil {
		return err
	}

	current = newSession(cmd, config.FromViper())
	if used := viper.ConfigFileUsed(); used != "" {
		telemetry.LogInfo("Using config file", "path", used)
	}
	return nil
}

// flagError turns an unrecognised long flag on the root command into an unknown
// operation ("calc --pow 2 3"); every other flag problem is a usage error.
func flagError(cmd *cobra.Command, err error) error {
	if cmd == cmd.Root() {
		if name, ok := strings.CutPrefix(err.Error(), "unknown flag: "); ok && strings.HasPrefix(name, "--") {
			return fmt.Errorf("%w %q", calculator.ErrUnknownOperation, name)
		}
	}
	return &UsageError{Err: err}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
