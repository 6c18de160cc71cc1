package finance

// Metrics aggregates the headline results of a financial analysis. The
// calculator never constructs this itself; callers assemble it from
// individually computed values. BreakEvenPoint is a float64 because the
// break-even contract includes +Inf, which integers cannot carry.
type Metrics struct {
	NPV            float64 `json:"npv"`
	IRR            float64 `json:"irr"`
	PaybackPeriod  float64 `json:"payback_period"`
	BreakEvenPoint float64 `json:"break_even_point"`
	ROI            float64 `json:"roi"`
}
