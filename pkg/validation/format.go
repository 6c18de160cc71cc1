// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/bizvet/bizvet/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV && format != constants.OutputFormatJSON {
		return fmt.Errorf("expected output format of %s, %s, or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
	}
	return nil
}

// ValidateLogLevel checks if the log level is supported. An empty level is
// valid and selects the default.
func ValidateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("expected log level of debug, info, warn, or error, got %s", level)
	}
}

// ValidateLogFormat checks if the log format is supported. An empty format
// is valid and selects the default.
func ValidateLogFormat(format string) error {
	switch format {
	case "", "json", "console":
		return nil
	default:
		return fmt.Errorf("expected log format of json or console, got %s", format)
	}
}
