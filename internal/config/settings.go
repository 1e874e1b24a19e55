package config

import (
	"github.com/spf13/viper"
)

// Configuration keys. Each maps to a CALC_<KEY> environment variable and a
// persistent flag of the same name with '_' replaced by '-'.
const (
	KeyPrecision   = "precision"
	KeyOutput      = "output"
	KeyColor       = "color"
	KeyVerbose     = "verbose"
	KeyLogFile     = "log_file"
	KeyMetricsFile = "metrics_file"
)

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// ColorMode controls ANSI styling of terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Settings is the typed view of the loaded configuration.
type Settings struct {
	Precision   int
	Output      OutputFormat
	Color       ColorMode
	Verbose     bool
	LogFile     string
	MetricsFile string
}

// FromViper reads Settings from the global viper instance.
func FromViper() Settings {
	return Settings{
		Precision:   viper.GetInt(KeyPrecision),
		Output:      OutputFormat(viper.GetString(KeyOutput)),
		Color:       ColorMode(viper.GetString(KeyColor)),
		Verbose:     viper.GetBool(KeyVerbose),
		LogFile:     viper.GetString(KeyLogFile),
		MetricsFile: viper.GetString(KeyMetricsFile),
	}
}
