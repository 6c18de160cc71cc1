// Package testutil provides common utility functions for testing.
package testutil

// SampleParams returns a minimal valid params map for the named operation.
// Every operation the calculator dispatches is covered. Returns nil for
// unknown operations.
func SampleParams(operation string) map[string]any {
	switch operation {
	case "npv":
		return map[string]any{
			"cash_flows":    []any{-1000.0, 500.0, 400.0, 300.0},
			"discount_rate": 0.1,
		}
	case "irr":
		return map[string]any{
			"cash_flows": []any{-1000.0, 400.0, 400.0, 400.0},
		}
	case "payback":
		return map[string]any{
			"initial_investment": 1000.0,
			"annual_cash_flow":   250.0,
		}
	case "break_even":
		return map[string]any{
			"fixed_costs":            50000.0,
			"price_per_unit":         150.0,
			"variable_cost_per_unit": 50.0,
		}
	case "roi":
		return map[string]any{
			"gain": 1500.0,
			"cost": 1000.0,
		}
	case "projection":
		return map[string]any{
			"initial_revenue": 100000.0,
			"growth_rate":     0.2,
		}
	case "unit_economics":
		return map[string]any{
			"customer_acquisition_cost": 100.0,
			"customer_lifetime_value":   400.0,
			"monthly_churn_rate":        0.05,
			"average_revenue_per_user":  50.0,
		}
	case "execute_code":
		return map[string]any{
			"code": "print('hello')",
		}
	}
	return nil
}

// ResultFloat extracts a numeric value from a tool result map. The second
// return reports whether the key was present with a numeric value.
func ResultFloat(result map[string]any, key string) (float64, bool) {
	raw, ok := result[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// ResultError extracts the error message from a tool result map. The second
// return reports whether the result carried an error.
func ResultError(result map[string]any) (string, bool) {
	raw, ok := result["error"]
	if !ok {
		return "", false
	}
	msg, ok := raw.(string)
	return msg, ok
}
