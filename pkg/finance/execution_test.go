package finance

import (
	"strings"
	"testing"
)

func TestExecuteCodeAlwaysRefuses(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{
			name: "Benign arithmetic",
			code: "result = 2 + 2",
		},
		{
			name: "Empty code",
			code: "",
		},
		{
			name: "Hostile code",
			code: "import os; os.system('rm -rf /')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExecuteCode(tt.code)

			if got.Success {
				t.Error("expected Success to be false")
			}
			if got.Output != "" {
				t.Errorf("expected empty output, got %q", got.Output)
			}
			if got.Variables == nil || len(got.Variables) != 0 {
				t.Errorf("expected empty variables map, got %v", got.Variables)
			}
			if !strings.Contains(got.Error, "disabled") {
				t.Errorf("expected error to mention the disabled feature, got %q", got.Error)
			}
		})
	}
}
