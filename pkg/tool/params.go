package tool

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bizvet/bizvet/pkg/errtrack"
)

// floatValue coerces a parameter value to float64. JSON decoding yields
// float64 for every number; plain ints are accepted for requests assembled
// in-process.
func floatValue(raw any, key string) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, typeError(key, "number", raw)
}

// intValue coerces a parameter value to int. JSON carries integers as
// float64, so integral floats are accepted; fractional values are not.
func intValue(raw any, key string) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int(v), nil
		}
	}
	return 0, typeError(key, "integer", raw)
}

// floatSliceValue coerces a parameter value to a []float64.
func floatSliceValue(raw any, key string) ([]float64, error) {
	switch v := raw.(type) {
	case []float64:
		return v, nil
	case []any:
		out := make([]float64, 0, len(v))
		for i, item := range v {
			f, err := floatValue(item, fmt.Sprintf("%s[%d]", key, i))
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
		return out, nil
	}
	return nil, typeError(key, "array of numbers", raw)
}

// stringValue coerces a parameter value to string.
func stringValue(raw any, key string) (string, error) {
	if v, ok := raw.(string); ok {
		return v, nil
	}
	return "", typeError(key, "string", raw)
}

func typeError(key, want string, got any) error {
	msg := fmt.Sprintf("Type validation failed: %s: expected %s, got %T", key, want, got)
	return errtrack.NewValidation(errtrack.CodeTypeValidationFailed, msg,
		map[string]any{"field": key, "expected": want})
}

// rejectUnknownKeys fails when params carries a key outside the known set.
// Operations with optional parameters use this to surface misspelled keys
// instead of silently falling back to defaults.
func rejectUnknownKeys(params map[string]any, known ...string) error {
	allowed := make(map[string]struct{}, len(known))
	for _, key := range known {
		allowed[key] = struct{}{}
	}

	var unknown []string
	for key := range params {
		if _, ok := allowed[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)

	return errtrack.NewValidation(errtrack.CodeUnknownKeys,
		fmt.Sprintf("Unknown parameters: %s", strings.Join(unknown, ", ")),
		map[string]any{"unknown_keys": unknown})
}
