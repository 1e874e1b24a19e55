package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CALC_PRECISION.
const EnvPrefix = "CALC"

// Default values for every configuration key.
const (
	DefaultPrecision = 6
	DefaultOutput    = OutputText
	DefaultColor     = ColorAuto
)

// Load initializes the configuration from an optional file and environment variables.
// An explicit cfgFile must be readable; otherwise calc.yaml in the working directory
// is used when present. Nothing is ever written.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("calc")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("%w: reading %s: %v", ErrInvalid, describe(cfgFile), err)
	}
	return nil
}

// SetDefaults registers the default for every key.
func SetDefaults() {
	viper.SetDefault(KeyPrecision, DefaultPrecision)
	viper.SetDefault(KeyOutput, string(DefaultOutput))
	viper.SetDefault(KeyColor, string(DefaultColor))
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyMetricsFile, "")
}

func describe(cfgFile string) string {
	if cfgFile == "" {
		return "calc.yaml"
	}
	return cfgFile
}
