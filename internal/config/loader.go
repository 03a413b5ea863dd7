package config

import (
	"errors"
	"io"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"qr-generator/internal/constants"
	apperrors "qr-generator/internal/errors"
)

const (
	keyURL       = "url"
	keyOutputDir = "output-dir"
	keyLogDir    = "log-dir"
	keyLogLevel  = "log-level"
	keyPreview   = "preview"
)

// Load resolves the configuration from command-line flags, environment
// variables and built-in defaults, in that order of precedence.
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, &apperrors.ConfigError{Section: "flags", Message: "invalid arguments", Err: err}
	}

	v := viper.New()

	// Set default values
	v.SetDefault(keyURL, constants.DefaultURL)
	v.SetDefault(keyOutputDir, constants.DefaultOutputDir)
	v.SetDefault(keyLogDir, constants.DefaultLogDir)
	v.SetDefault(keyLogLevel, constants.DefaultLogLevel)
	v.SetDefault(keyPreview, false)

	// Define environment variables
	v.BindEnv(keyURL, constants.EnvURL)
	v.BindEnv(keyOutputDir, constants.EnvOutputDir)
	v.BindEnv(keyLogDir, constants.EnvLogDir)
	v.BindEnv(keyLogLevel, constants.EnvLogLevel)
	v.BindEnv(keyPreview, constants.EnvPreview)

	// Flags only win when given explicitly
	if err := v.BindPFlags(fs); err != nil {
		return nil, &apperrors.ConfigError{Section: "flags", Message: "failed to bind flags", Err: err}
	}

	return &Config{
		URL:       v.GetString(keyURL),
		OutputDir: v.GetString(keyOutputDir),
		LogDir:    v.GetString(keyLogDir),
		LogLevel:  v.GetString(keyLogLevel),
		Preview:   v.GetBool(keyPreview),
	}, nil
}

// Usage returns the flag help text
func Usage() string {
	return newFlagSet().FlagUsages()
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("qrgen", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.String(keyURL, constants.DefaultURL, "URL/text to encode into a QR code (env "+constants.EnvURL+")")
	fs.String(keyOutputDir, constants.DefaultOutputDir, "Directory to write QR codes (env "+constants.EnvOutputDir+")")
	fs.String(keyLogDir, constants.DefaultLogDir, "Directory for logs (env "+constants.EnvLogDir+")")
	fs.String(keyLogLevel, constants.DefaultLogLevel, "Log level (env "+constants.EnvLogLevel+")")
	fs.Bool(keyPreview, false, "Render the QR code to the terminal on stderr (env "+constants.EnvPreview+")")
	return fs
}
