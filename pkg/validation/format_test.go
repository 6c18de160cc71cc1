package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid csv format",
			format:    "csv",
			expectErr: false,
		},
		{
			name:      "Valid json format",
			format:    "json",
			expectErr: false,
		},
		{
			name:      "Invalid format",
			format:    "xml",
			expectErr: true,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
		{
			name:      "Leading/trailing spaces",
			format:    " pretty ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) expected error, got nil", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", tt.format, err)
			}
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		expectErr bool
	}{
		{
			name:      "Empty selects default",
			level:     "",
			expectErr: false,
		},
		{
			name:      "Debug",
			level:     "debug",
			expectErr: false,
		},
		{
			name:      "Warning alias",
			level:     "warning",
			expectErr: false,
		},
		{
			name:      "Unknown level",
			level:     "trace",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogLevel(tt.level)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateLogLevel(%q) expected error, got nil", tt.level)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateLogLevel(%q) unexpected error: %v", tt.level, err)
			}
		})
	}
}

func TestValidateLogFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Empty selects default",
			format:    "",
			expectErr: false,
		},
		{
			name:      "JSON",
			format:    "json",
			expectErr: false,
		},
		{
			name:      "Console",
			format:    "console",
			expectErr: false,
		},
		{
			name:      "Unknown format",
			format:    "logfmt",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateLogFormat(%q) expected error, got nil", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateLogFormat(%q) unexpected error: %v", tt.format, err)
			}
		})
	}
}
