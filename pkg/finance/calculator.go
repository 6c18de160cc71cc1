// Package finance provides deterministic financial calculations for
// business-idea validation: discounted cash-flow metrics, payback and
// break-even analysis, multi-year projections, and SaaS unit economics.
// Every function is pure and safe for concurrent use.
package finance

import (
	"math"

	"github.com/bizvet/bizvet/pkg/mathutil"
)

// Newton-Raphson parameters for IRR.
const (
	irrInitialGuess  = 0.1
	irrTolerance     = 1e-6
	irrMaxIterations = 100
	irrMinRate       = -0.99
	irrMaxRate       = 10.0
)

// NPV calculates the net present value of a cash-flow series. Index 0 is
// the flow at t=0, conventionally the (negative) initial investment, so it
// is not discounted. An empty series yields 0. The discount rate is not
// range-checked; rates at or below -100% are the caller's responsibility.
func NPV(cashFlows []float64, discountRate float64) float64 {
	npv := 0.0
	for t, cf := range cashFlows {
		npv += cf / math.Pow(1+discountRate, float64(t))
	}
	return npv
}

// IRR calculates the internal rate of return, the discount rate at which
// NPV reaches zero, using Newton-Raphson iteration bounded to [-0.99, 10].
// Fewer than two cash flows have no meaningful IRR and yield 0. If the
// loop hits the iteration cap without converging, the last computed rate
// is returned as a best effort rather than an error.
func IRR(cashFlows []float64) float64 {
	if len(cashFlows) < 2 {
		return 0.0
	}

	rate := irrInitialGuess
	for i := 0; i < irrMaxIterations; i++ {
		npv := 0.0
		dnpv := 0.0
		for t, cf := range cashFlows {
			npv += cf / math.Pow(1+rate, float64(t))
			dnpv += -float64(t) * cf / math.Pow(1+rate, float64(t+1))
		}

		if math.Abs(npv) < irrTolerance {
			return rate
		}
		// A flat gradient means the update is unusable; keep the current rate.
		if math.Abs(dnpv) < irrTolerance {
			break
		}

		rate = rate - npv/dnpv
		if rate < irrMinRate {
			rate = irrMinRate
		} else if rate > irrMaxRate {
			rate = irrMaxRate
		}
	}

	return rate
}

// Payback calculates the simple payback period in years. A non-positive
// annual cash flow can never recover the investment and yields +Inf; a
// zero investment pays back immediately.
func Payback(initialInvestment, annualCashFlow float64) float64 {
	if annualCashFlow <= 0 {
		return math.Inf(1)
	}
	return initialInvestment / annualCashFlow
}

// BreakEven calculates the unit volume at which revenue covers fixed and
// variable costs, rounded up since partial units are not sold. A price at
// or below the variable cost can never break even and yields +Inf. Finite
// results are integral-valued.
func BreakEven(fixedCosts, pricePerUnit, variableCostPerUnit float64) float64 {
	if pricePerUnit <= variableCostPerUnit {
		return math.Inf(1)
	}
	contributionMargin := pricePerUnit - variableCostPerUnit
	return math.Ceil(fixedCosts / contributionMargin)
}

// ROI calculates return on investment as a percentage of cost. A zero cost
// has no meaningful ratio and yields 0.
func ROI(gain, cost float64) float64 {
	return mathutil.CalculatePercentage(gain-cost, cost)
}
