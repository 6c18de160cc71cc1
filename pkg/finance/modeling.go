package finance

import (
	"math"

	"github.com/bizvet/bizvet/pkg/constants"
	"github.com/bizvet/bizvet/pkg/mathutil"
)

// Projection holds parallel multi-year projection series. Years carries the
// 1-indexed display labels matching each series entry.
type Projection struct {
	Revenues  []float64 `json:"revenues"`
	EBITDA    []float64 `json:"ebitda"`
	NetIncome []float64 `json:"net_income"`
	Years     []int     `json:"years"`
}

// Project generates a multi-year financial projection. Revenue compounds
// from initialRevenue, which stands as year one unchanged; EBITDA applies
// the operating margin and net income applies the tax rate on top of it.
// Growth may be zero or negative. A non-positive year count yields empty
// series.
func Project(initialRevenue, growthRate float64, years int, operatingMargin, taxRate float64) Projection {
	if years < 0 {
		years = 0
	}

	proj := Projection{
		Revenues:  make([]float64, 0, years),
		EBITDA:    make([]float64, 0, years),
		NetIncome: make([]float64, 0, years),
		Years:     make([]int, 0, years),
	}

	for year := 0; year < years; year++ {
		revenue := initialRevenue * math.Pow(1+growthRate, float64(year))
		ebitda := revenue * operatingMargin
		netIncome := ebitda * (1 - taxRate)

		proj.Revenues = append(proj.Revenues, revenue)
		proj.EBITDA = append(proj.EBITDA, ebitda)
		proj.NetIncome = append(proj.NetIncome, netIncome)
		proj.Years = append(proj.Years, year+1)
	}

	return proj
}

// UnitEconomics scores the health of subscription unit economics.
type UnitEconomics struct {
	LTVCACRatio        float64 `json:"ltv_cac_ratio"`
	MonthsToRecoverCAC float64 `json:"months_to_recover_cac"`
	AnnualChurnRate    float64 `json:"annual_churn_rate"`
	IsSustainable      bool    `json:"is_sustainable"`
	HealthScore        float64 `json:"health_score"`
}

// AnalyzeUnitEconomics evaluates lifetime-value and CAC-recovery ratios for
// a subscription business. A non-positive CAC yields a zero ratio and a
// non-positive ARPU yields zero recovery months; degenerate inputs are
// answered with zeros, never errors. Sustainability uses the 3:1 LTV:CAC
// benchmark, and the health score scales that ratio linearly with 100 as
// the cap.
func AnalyzeUnitEconomics(cac, ltv, monthlyChurnRate, arpu float64) UnitEconomics {
	ratio := 0.0
	if cac > 0 {
		ratio = ltv / cac
	}

	monthsToRecover := 0.0
	if arpu > 0 {
		monthsToRecover = cac / arpu
	}

	annualChurn := 1 - math.Pow(1-monthlyChurnRate, constants.MonthsPerYear)

	return UnitEconomics{
		LTVCACRatio:        ratio,
		MonthsToRecoverCAC: monthsToRecover,
		AnnualChurnRate:    annualChurn * constants.PercentageMultiplier,
		IsSustainable:      ratio > constants.SustainableLTVCACRatio,
		HealthScore:        mathutil.Min(constants.MaxHealthScore, ratio/constants.SustainableLTVCACRatio*constants.PercentageMultiplier),
	}
}
