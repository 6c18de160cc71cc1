package output

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	result := map[string]any{
		"npv": 38877.13,
	}

	output := captureStdout(t, func() {
		PrettyFormat("npv", result)
	})

	if !strings.Contains(output, "--- Results for operation npv ---") {
		t.Errorf("PrettyFormat missing operation header: %q", output)
	}
	if !strings.Contains(output, "Metric | Value") {
		t.Errorf("PrettyFormat missing table header: %q", output)
	}
	if !strings.Contains(output, "$38,877.13") {
		t.Errorf("PrettyFormat missing formatted currency: %q", output)
	}
}

func TestPrettyFormatProjection(t *testing.T) {
	result := map[string]any{
		"revenues":   []float64{100000, 120000},
		"net_income": []float64{15000, 18000},
		"years":      []int{1, 2},
	}

	output := captureStdout(t, func() {
		PrettyFormat("projection", result)
	})

	if !strings.Contains(output, "$100,000.00, $120,000.00") {
		t.Errorf("PrettyFormat missing revenue series: %q", output)
	}
	if !strings.Contains(output, "1, 2") {
		t.Errorf("PrettyFormat missing year series: %q", output)
	}
}

func TestPrettyFormatInfiniteSentinel(t *testing.T) {
	result := map[string]any{
		"payback_period_years": math.Inf(1),
	}

	output := captureStdout(t, func() {
		PrettyFormat("payback", result)
	})

	if !strings.Contains(output, "Inf") {
		t.Errorf("PrettyFormat should render +Inf as Inf: %q", output)
	}
}

func TestPrettyFormatPercentKeys(t *testing.T) {
	result := map[string]any{
		"roi_percentage": 50.0,
	}

	output := captureStdout(t, func() {
		PrettyFormat("roi", result)
	})

	if !strings.Contains(output, "50.00%") {
		t.Errorf("PrettyFormat should render percent units: %q", output)
	}
}

func TestPrettyFormatEmptyResult(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrettyFormat panicked with empty result: %v", r)
		}
	}()

	_ = captureStdout(t, func() {
		PrettyFormat("npv", map[string]any{})
	})
}

func TestCsvFormat(t *testing.T) {
	result := map[string]any{
		"ltv_cac_ratio":  4.0,
		"is_sustainable": true,
	}

	output := captureStdout(t, func() {
		CsvFormat("unit_economics", result)
	})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 3 {
		t.Fatalf("CsvFormat should produce header + 2 data lines, got %d: %q", len(lines), output)
	}
	if lines[0] != `"operation","metric","value"` {
		t.Errorf("CsvFormat header = %q", lines[0])
	}
	if !strings.Contains(output, `"unit_economics","is_sustainable","true"`) {
		t.Errorf("CsvFormat missing boolean row: %q", output)
	}
	if !strings.Contains(output, `"unit_economics","ltv_cac_ratio","4"`) {
		t.Errorf("CsvFormat missing ratio row: %q", output)
	}
}

func TestCsvFormatKeepsFullPrecision(t *testing.T) {
	result := map[string]any{
		"irr": 0.1537,
	}

	output := captureStdout(t, func() {
		CsvFormat("irr", result)
	})

	if !strings.Contains(output, `"0.1537"`) {
		t.Errorf("CsvFormat should not truncate rates: %q", output)
	}
}

func TestJSONStringReplacesInfinity(t *testing.T) {
	result := map[string]any{
		"payback_period_years": math.Inf(1),
		"npv":                  1000.5,
	}

	encoded, err := JSONString(result)
	if err != nil {
		t.Fatalf("JSONString() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
		t.Fatalf("JSONString() produced invalid JSON: %v", err)
	}
	if decoded["payback_period_years"] != "Infinity" {
		t.Errorf("JSONString() payback = %v, want \"Infinity\"", decoded["payback_period_years"])
	}
	if decoded["npv"] != 1000.5 {
		t.Errorf("JSONString() npv = %v, want 1000.5", decoded["npv"])
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{name: "positive infinity", value: math.Inf(1), want: "Infinity"},
		{name: "negative infinity", value: math.Inf(-1), want: "-Infinity"},
		{name: "finite float untouched", value: 42.5, want: 42.5},
		{name: "string untouched", value: "hello", want: "hello"},
		{name: "bool untouched", value: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.value); got != tt.want {
				t.Errorf("Sanitize(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestSanitizeNested(t *testing.T) {
	value := map[string]any{
		"series": []float64{1.5, math.Inf(1)},
		"inner":  map[string]any{"rate": math.Inf(-1)},
	}

	sanitized, ok := Sanitize(value).(map[string]any)
	if !ok {
		t.Fatalf("Sanitize() = %T, want map", Sanitize(value))
	}

	series, ok := sanitized["series"].([]any)
	if !ok {
		t.Fatalf("Sanitize() series = %T, want []any", sanitized["series"])
	}
	if series[0] != 1.5 || series[1] != "Infinity" {
		t.Errorf("Sanitize() series = %v", series)
	}

	inner := sanitized["inner"].(map[string]any)
	if inner["rate"] != "-Infinity" {
		t.Errorf("Sanitize() inner rate = %v, want -Infinity", inner["rate"])
	}

	// The original value is left untouched.
	if !math.IsInf(value["series"].([]float64)[1], 1) {
		t.Error("Sanitize() mutated its input")
	}
}

func TestJSONFormat(t *testing.T) {
	output := captureStdout(t, func() {
		if err := JSONFormat(map[string]any{"roi_percentage": 50.0}); err != nil {
			t.Errorf("JSONFormat() error = %v", err)
		}
	})

	if !strings.Contains(output, `"roi_percentage":50`) {
		t.Errorf("JSONFormat output = %q", output)
	}
}
