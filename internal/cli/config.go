package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Formats understood by the input reader.
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "WRAPCTL"

// Config holds the settings shared by every command.
type Config struct {
	// Format of the input document: auto, json or yaml
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`
	// Strict makes search compare values by type as well as value
	Strict   bool `mapstructure:"strict"`
	MinDepth int  `mapstructure:"min_depth"`
	// Indent is the indentation width of json and yaml output; 0 keeps json on one line
	Indent int `mapstructure:"indent"`
}

// UnknownFormatError occurs when the configured input format is not supported.
type UnknownFormatError struct {
	Format string
}

// Error implements the error interface.
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown input format: %q", e.Format)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("format", FormatAuto)
	v.SetDefault("log_level", "warn")
	v.SetDefault("strict", false)
	v.SetDefault("min_depth", 0)
	v.SetDefault("indent", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// bindFlag ties a config key to a command line flag. Errors only occur
// for a nil flag, which is a programming error.
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// loadConfig merges defaults, the optional config file, the environment
// and flags, in increasing priority.
func loadConfig(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	switch cfg.Format {
	case FormatAuto, FormatJSON, FormatYAML:
	default:
		return Config{}, UnknownFormatError{Format: cfg.Format}
	}
	return cfg, nil
}
