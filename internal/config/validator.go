package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid marks configuration that could not be read or failed validation.
var ErrInvalid = errors.New("invalid configuration")

// Precision bounds. -1 selects the shortest representation that round-trips.
const (
	MinPrecision = -1
	MaxPrecision = 17
)

// ValidateConfig validates configuration values and returns an error listing every problem.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var problems []string

	if viper.IsSet(KeyPrecision) {
		raw := viper.GetString(KeyPrecision)
		precision, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			problems = append(problems, fmt.Sprintf("precision must be an integer, got: %q", raw))
		} else if precision < MinPrecision || precision > MaxPrecision {
			problems = append(problems, fmt.Sprintf("precision must be between %d and %d, got: %d", MinPrecision, MaxPrecision, precision))
		}
	}

	output := OutputFormat(viper.GetString(KeyOutput))
	if output != OutputText && output != OutputJSON {
		problems = append(problems, fmt.Sprintf("output must be one of [text json], got: %q", output))
	}

	color := ColorMode(viper.GetString(KeyColor))
	if color != ColorAuto && color != ColorAlways && color != ColorNever {
		problems = append(problems, fmt.Sprintf("color must be one of [auto always never], got: %q", color))
	}

	if viper.IsSet(KeyLogFile) && viper.GetString(KeyLogFile) != "" && viper.GetString(KeyLogFile) == viper.GetString(KeyMetricsFile) {
		problems = append(problems, "log_file and metrics_file must not point to the same file")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalid, strings.Join(problems, "\n  "))
	}

	return nil
}
