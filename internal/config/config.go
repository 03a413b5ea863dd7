package config

import "qr-generator/internal/models"

// Config represents the effective configuration of one invocation
type Config struct {
	URL       string `mapstructure:"url"`
	OutputDir string `mapstructure:"output-dir"`
	LogDir    string `mapstructure:"log-dir"`
	LogLevel  string `mapstructure:"log-level"`
	Preview   bool   `mapstructure:"preview"`
}

// Request returns the generation request described by the configuration
func (c *Config) Request() models.GenerationRequest {
	return models.GenerationRequest{
		URL:       c.URL,
		OutputDir: c.OutputDir,
		LogDir:    c.LogDir,
	}
}
