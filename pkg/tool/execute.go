package tool

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/bizvet/bizvet/pkg/constants"
	"github.com/bizvet/bizvet/pkg/errtrack"
	"github.com/bizvet/bizvet/pkg/finance"
)

// Execute routes a tool request to the matching calculation and returns the
// result as a flat map ready for JSON encoding.
//
// Failures split two ways. A request that is malformed as a whole (empty
// operation, nil params, unknown operation) is answered as data, with an
// "error" key in the returned map, so agents can read the refusal like any
// other result. A missing or mistyped parameter inside an otherwise
// well-formed request is returned as a typed error (see errtrack) for the
// calling shell to translate.
func Execute(logger *zap.Logger, operation string, params map[string]any) (map[string]any, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := validateRequest(operation, params); err != nil {
		logger.Error("tool request validation failed",
			zap.String("op", "tool.Execute"),
			zap.String("operation", operation),
			zap.Error(err),
		)
		return map[string]any{
			"error":     fmt.Sprintf("Validation failed: %s", err.Error()),
			"operation": operation,
		}, nil
	}

	logger.Debug("executing financial operation",
		zap.String("op", "tool.Execute"),
		zap.String("operation", operation),
	)

	switch Operation(operation) {
	case OpNPV:
		return executeNPV(params)
	case OpIRR:
		return executeIRR(params)
	case OpPayback:
		return executePayback(params)
	case OpBreakEven:
		return executeBreakEven(params)
	case OpROI:
		return executeROI(params)
	case OpProjection:
		return executeProjection(params)
	case OpUnitEconomics:
		return executeUnitEconomics(params)
	case OpExecuteCode:
		return executeCode(params)
	default:
		logger.Warn("unknown financial operation requested",
			zap.String("op", "tool.Execute"),
			zap.String("operation", operation),
		)
		return map[string]any{
			"error": fmt.Sprintf("Unknown operation: %s", operation),
		}, nil
	}
}

func validateRequest(operation string, params map[string]any) error {
	if operation == "" {
		return errtrack.NewValidation("", "operation must be a non-empty string", nil)
	}
	return errtrack.ValidateInput(params, nil)
}

// IsErrorResult reports whether a dispatcher result is a protocol-level
// failure rather than an operation payload. execute_code responses carry an
// error field by contract and do not count as failures.
func IsErrorResult(result map[string]any) bool {
	msg, ok := result["error"].(string)
	if !ok || msg == "" {
		return false
	}
	_, isCodeExecution := result["success"]
	return !isCodeExecution
}

func executeNPV(params map[string]any) (map[string]any, error) {
	if err := errtrack.ValidateInput(params, []string{"cash_flows", "discount_rate"}); err != nil {
		return nil, err
	}
	cashFlows, err := floatSliceValue(params["cash_flows"], "cash_flows")
	if err != nil {
		return nil, err
	}
	discountRate, err := floatValue(params["discount_rate"], "discount_rate")
	if err != nil {
		return nil, err
	}
	return map[string]any{"npv": finance.NPV(cashFlows, discountRate)}, nil
}

func executeIRR(params map[string]any) (map[string]any, error) {
	if err := errtrack.ValidateInput(params, []string{"cash_flows"}); err != nil {
		return nil, err
	}
	cashFlows, err := floatSliceValue(params["cash_flows"], "cash_flows")
	if err != nil {
		return nil, err
	}
	return map[string]any{"irr": finance.IRR(cashFlows)}, nil
}

func executePayback(params map[string]any) (map[string]any, error) {
	if err := errtrack.ValidateInput(params, []string{"initial_investment", "annual_cash_flow"}); err != nil {
		return nil, err
	}
	initialInvestment, err := floatValue(params["initial_investment"], "initial_investment")
	if err != nil {
		return nil, err
	}
	annualCashFlow, err := floatValue(params["annual_cash_flow"], "annual_cash_flow")
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"payback_period_years": finance.Payback(initialInvestment, annualCashFlow),
	}, nil
}

func executeBreakEven(params map[string]any) (map[string]any, error) {
	if err := errtrack.ValidateInput(params, []string{"fixed_costs", "price_per_unit", "variable_cost_per_unit"}); err != nil {
		return nil, err
	}
	fixedCosts, err := floatValue(params["fixed_costs"], "fixed_costs")
	if err != nil {
		return nil, err
	}
	pricePerUnit, err := floatValue(params["price_per_unit"], "price_per_unit")
	if err != nil {
		return nil, err
	}
	variableCostPerUnit, err := floatValue(params["variable_cost_per_unit"], "variable_cost_per_unit")
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"break_even_units": finance.BreakEven(fixedCosts, pricePerUnit, variableCostPerUnit),
	}, nil
}

func executeROI(params map[string]any) (map[string]any, error) {
	if err := errtrack.ValidateInput(params, []string{"gain", "cost"}); err != nil {
		return nil, err
	}
	gain, err := floatValue(params["gain"], "gain")
	if err != nil {
		return nil, err
	}
	cost, err := floatValue(params["cost"], "cost")
	if err != nil {
		return nil, err
	}
	return map[string]any{"roi_percentage": finance.ROI(gain, cost)}, nil
}

func executeProjection(params map[string]any) (map[string]any, error) {
	if err := rejectUnknownKeys(params,
		"initial_revenue", "growth_rate", "years", "operating_margin", "tax_rate"); err != nil {
		return nil, err
	}
	if err := errtrack.ValidateInput(params, []string{"initial_revenue", "growth_rate"}); err != nil {
		return nil, err
	}

	initialRevenue, err := floatValue(params["initial_revenue"], "initial_revenue")
	if err != nil {
		return nil, err
	}
	growthRate, err := floatValue(params["growth_rate"], "growth_rate")
	if err != nil {
		return nil, err
	}

	years := constants.DefaultProjectionYears
	if raw, ok := params["years"]; ok {
		if years, err = intValue(raw, "years"); err != nil {
			return nil, err
		}
	}
	operatingMargin := constants.DefaultOperatingMargin
	if raw, ok := params["operating_margin"]; ok {
		if operatingMargin, err = floatValue(raw, "operating_margin"); err != nil {
			return nil, err
		}
	}
	taxRate := constants.DefaultTaxRate
	if raw, ok := params["tax_rate"]; ok {
		if taxRate, err = floatValue(raw, "tax_rate"); err != nil {
			return nil, err
		}
	}

	proj := finance.Project(initialRevenue, growthRate, years, operatingMargin, taxRate)
	return map[string]any{
		"revenues":   proj.Revenues,
		"ebitda":     proj.EBITDA,
		"net_income": proj.NetIncome,
		"years":      proj.Years,
	}, nil
}

func executeUnitEconomics(params map[string]any) (map[string]any, error) {
	if err := rejectUnknownKeys(params,
		"customer_acquisition_cost", "customer_lifetime_value",
		"monthly_churn_rate", "average_revenue_per_user"); err != nil {
		return nil, err
	}
	if err := errtrack.ValidateInput(params, []string{
		"customer_acquisition_cost", "customer_lifetime_value",
		"monthly_churn_rate", "average_revenue_per_user"}); err != nil {
		return nil, err
	}

	cac, err := floatValue(params["customer_acquisition_cost"], "customer_acquisition_cost")
	if err != nil {
		return nil, err
	}
	ltv, err := floatValue(params["customer_lifetime_value"], "customer_lifetime_value")
	if err != nil {
		return nil, err
	}
	monthlyChurn, err := floatValue(params["monthly_churn_rate"], "monthly_churn_rate")
	if err != nil {
		return nil, err
	}
	arpu, err := floatValue(params["average_revenue_per_user"], "average_revenue_per_user")
	if err != nil {
		return nil, err
	}

	economics := finance.AnalyzeUnitEconomics(cac, ltv, monthlyChurn, arpu)
	return map[string]any{
		"ltv_cac_ratio":         economics.LTVCACRatio,
		"months_to_recover_cac": economics.MonthsToRecoverCAC,
		"annual_churn_rate":     economics.AnnualChurnRate,
		"is_sustainable":        economics.IsSustainable,
		"health_score":          economics.HealthScore,
	}, nil
}

func executeCode(params map[string]any) (map[string]any, error) {
	if err := errtrack.ValidateInput(params, []string{"code"}); err != nil {
		return nil, err
	}
	code, err := stringValue(params["code"], "code")
	if err != nil {
		return nil, err
	}

	exec := finance.ExecuteCode(code)
	return map[string]any{
		"success":   exec.Success,
		"output":    exec.Output,
		"variables": exec.Variables,
		"error":     exec.Error,
	}, nil
}
