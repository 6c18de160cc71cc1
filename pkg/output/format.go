// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bizvet/bizvet/pkg/format"
)

// currencyKeys are result fields holding dollar amounts.
var currencyKeys = map[string]bool{
	"npv":        true,
	"revenues":   true,
	"ebitda":     true,
	"net_income": true,
}

// percentKeys are result fields already expressed in percent units.
var percentKeys = map[string]bool{
	"roi_percentage":    true,
	"annual_churn_rate": true,
	"health_score":      true,
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(operation string, result map[string]any) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Results for operation %s ---\n", operation)

	keys := sortedKeys(result)
	width := len("Metric")
	for _, key := range keys {
		if len(key) > width {
			width = len(key)
		}
	}

	fmt.Printf("%-*s | %s\n", width, "Metric", "Value")
	fmt.Printf("%s | %s\n", strings.Repeat("_", width), "_____")
	for _, key := range keys {
		fmt.Printf("%-*s | %s\n", width, key, renderValue(p, key, result[key]))
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(operation string, result map[string]any) {
	fmt.Printf("\"operation\",\"metric\",\"value\"\n")
	for _, key := range sortedKeys(result) {
		fmt.Printf("\"%s\",\"%s\",\"%s\"\n", operation, key, csvValue(result[key]))
	}
}

// JSONFormat outputs the result as a single JSON document.
func JSONFormat(result map[string]any) error {
	encoded, err := JSONString(result)
	if err != nil {
		return err
	}
	fmt.Println(encoded)
	return nil
}

// JSONString renders the result as JSON. Non-finite numbers are replaced
// with their string names first, since encoding/json rejects them.
func JSONString(result map[string]any) (string, error) {
	encoded, err := json.Marshal(Sanitize(result))
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(encoded), nil
}

// Sanitize recursively replaces non-finite floats with the strings
// "Infinity", "-Infinity", and "NaN" so the value can pass through
// encoding/json. Calculations use +Inf as a sentinel for quantities that
// are never reached, such as the payback period of a venture with no
// positive cash flow.
func Sanitize(value any) any {
	switch v := value.(type) {
	case float64:
		switch {
		case math.IsInf(v, 1):
			return "Infinity"
		case math.IsInf(v, -1):
			return "-Infinity"
		case math.IsNaN(v):
			return "NaN"
		}
		return v
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = Sanitize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Sanitize(item)
		}
		return out
	case []float64:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Sanitize(item)
		}
		return out
	}
	return value
}

func sortedKeys(result map[string]any) []string {
	keys := make([]string, 0, len(result))
	for key := range result {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func renderValue(p *message.Printer, key string, value any) string {
	switch v := value.(type) {
	case float64:
		return renderNumber(p, key, v)
	case []float64:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = renderNumber(p, key, item)
		}
		return strings.Join(parts, ", ")
	case []int:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = strconv.Itoa(item)
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = renderValue(p, key, item)
		}
		return strings.Join(parts, ", ")
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case nil:
		return ""
	}
	encoded, err := json.Marshal(Sanitize(value))
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(encoded)
}

func renderNumber(p *message.Printer, key string, value float64) string {
	switch {
	case math.IsInf(value, 1):
		return "Inf"
	case math.IsInf(value, -1):
		return "-Inf"
	case math.IsNaN(value):
		return "NaN"
	}
	if currencyKeys[key] {
		return format.Currency(value)
	}
	if percentKeys[key] {
		return p.Sprintf("%.2f%%", value)
	}
	return p.Sprintf("%v", value)
}

func csvValue(value any) string {
	switch v := value.(type) {
	case float64:
		return csvNumber(v)
	case []float64:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = csvNumber(item)
		}
		return strings.Join(parts, ",")
	case []int:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = strconv.Itoa(item)
		}
		return strings.Join(parts, ",")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = csvValue(item)
		}
		return strings.Join(parts, ",")
	case bool:
		return strconv.FormatBool(v)
	case string:
		return strings.ReplaceAll(v, `"`, `""`)
	case nil:
		return ""
	}
	encoded, err := json.Marshal(Sanitize(value))
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return strings.ReplaceAll(string(encoded), `"`, `""`)
}

func csvNumber(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return "Inf"
	case math.IsInf(value, -1):
		return "-Inf"
	case math.IsNaN(value):
		return "NaN"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
