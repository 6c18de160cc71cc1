// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/bizvet/bizvet/pkg/validation"
)

// Configuration holds all configuration for bizvet.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Monitor MonitorConfig `yaml:"monitor,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// MonitorConfig holds error monitoring options
type MonitorConfig struct {
	Enabled     bool    `yaml:"enabled,omitempty"`
	Schedule    string  `yaml:"schedule,omitempty"`    // cron schedule for summary logging
	WindowHours float64 `yaml:"windowHours,omitempty"` // error summary window
	MaxTracked  int     `yaml:"maxTracked,omitempty"`  // error history capacity
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Logging.Level != "" {
		if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	if c.Logging.Format != "" {
		if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	if c.Monitor.Schedule != "" {
		if err := validation.ValidateSchedule(c.Monitor.Schedule); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	if c.Monitor.WindowHours < 0 {
		warnings = append(warnings, fmt.Sprintf("monitor windowHours must not be negative, got %v", c.Monitor.WindowHours))
	}
	if c.Monitor.MaxTracked < 0 {
		warnings = append(warnings, fmt.Sprintf("monitor maxTracked must not be negative, got %d", c.Monitor.MaxTracked))
	}

	return warnings
}
