package finance

import (
	"math"
	"testing"

	"github.com/bizvet/bizvet/pkg/mathutil"
)

func TestProjectGrowthLaw(t *testing.T) {
	initialRevenue := 1000000.0
	growthRate := 0.2
	years := 5
	operatingMargin := 0.2
	taxRate := 0.25

	proj := Project(initialRevenue, growthRate, years, operatingMargin, taxRate)

	if len(proj.Revenues) != years || len(proj.EBITDA) != years || len(proj.NetIncome) != years || len(proj.Years) != years {
		t.Fatalf("expected %d entries in every series, got %d/%d/%d/%d",
			years, len(proj.Revenues), len(proj.EBITDA), len(proj.NetIncome), len(proj.Years))
	}

	for y := 0; y < years; y++ {
		wantRevenue := initialRevenue * math.Pow(1+growthRate, float64(y))
		if proj.Revenues[y] != wantRevenue {
			t.Errorf("Revenues[%d] = %v, want %v", y, proj.Revenues[y], wantRevenue)
		}
		if proj.EBITDA[y] != proj.Revenues[y]*operatingMargin {
			t.Errorf("EBITDA[%d] = %v, want %v", y, proj.EBITDA[y], proj.Revenues[y]*operatingMargin)
		}
		if proj.NetIncome[y] != proj.EBITDA[y]*(1-taxRate) {
			t.Errorf("NetIncome[%d] = %v, want %v", y, proj.NetIncome[y], proj.EBITDA[y]*(1-taxRate))
		}
		if proj.Years[y] != y+1 {
			t.Errorf("Years[%d] = %d, want %d", y, proj.Years[y], y+1)
		}
	}

	// First projected year is the initial revenue itself.
	if proj.Revenues[0] != initialRevenue {
		t.Errorf("Revenues[0] = %v, want %v", proj.Revenues[0], initialRevenue)
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name           string
		initialRevenue float64
		growthRate     float64
		years          int
		check          func(t *testing.T, proj Projection)
	}{
		{
			name:           "Zero growth stays flat",
			initialRevenue: 50000,
			growthRate:     0,
			years:          3,
			check: func(t *testing.T, proj Projection) {
				for y, revenue := range proj.Revenues {
					if revenue != 50000 {
						t.Errorf("Revenues[%d] = %v, want 50000", y, revenue)
					}
				}
			},
		},
		{
			name:           "Negative growth contracts",
			initialRevenue: 80000,
			growthRate:     -0.1,
			years:          4,
			check: func(t *testing.T, proj Projection) {
				for y := 1; y < len(proj.Revenues); y++ {
					if proj.Revenues[y] >= proj.Revenues[y-1] {
						t.Errorf("Revenues[%d] = %v, want below %v", y, proj.Revenues[y], proj.Revenues[y-1])
					}
				}
			},
		},
		{
			name:           "Zero years yields empty series",
			initialRevenue: 80000,
			growthRate:     0.3,
			years:          0,
			check: func(t *testing.T, proj Projection) {
				if len(proj.Revenues) != 0 || len(proj.Years) != 0 {
					t.Errorf("expected empty projection, got %d revenues and %d years",
						len(proj.Revenues), len(proj.Years))
				}
			},
		},
		{
			name:           "Negative years yields empty series",
			initialRevenue: 80000,
			growthRate:     0.3,
			years:          -2,
			check: func(t *testing.T, proj Projection) {
				if len(proj.Revenues) != 0 {
					t.Errorf("expected empty projection, got %d revenues", len(proj.Revenues))
				}
			},
		},
		{
			name:           "Single year",
			initialRevenue: 1200,
			growthRate:     0.5,
			years:          1,
			check: func(t *testing.T, proj Projection) {
				if len(proj.Revenues) != 1 || proj.Revenues[0] != 1200 {
					t.Errorf("expected single ungrown year, got %+v", proj.Revenues)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := Project(tt.initialRevenue, tt.growthRate, tt.years, 0.2, 0.25)
			tt.check(t, proj)
		})
	}
}

func TestAnalyzeUnitEconomics(t *testing.T) {
	tests := []struct {
		name              string
		cac               float64
		ltv               float64
		monthlyChurn      float64
		arpu              float64
		expectedRatio     float64
		expectedMonths    float64
		expectSustainable bool
		expectedHealth    float64
	}{
		{
			name:              "Healthy SaaS business",
			cac:               100,
			ltv:               400,
			monthlyChurn:      0.05,
			arpu:              50,
			expectedRatio:     4.0,
			expectedMonths:    2.0,
			expectSustainable: true,
			expectedHealth:    100, // raw 133% capped
		},
		{
			name:              "Ratio exactly at the benchmark is not sustainable",
			cac:               100,
			ltv:               300,
			monthlyChurn:      0.05,
			arpu:              50,
			expectedRatio:     3.0,
			expectedMonths:    2.0,
			expectSustainable: false,
			expectedHealth:    100,
		},
		{
			name:              "Weak unit economics",
			cac:               300,
			ltv:               300,
			monthlyChurn:      0.08,
			arpu:              25,
			expectedRatio:     1.0,
			expectedMonths:    12.0,
			expectSustainable: false,
			expectedHealth:    100.0 / 3.0,
		},
		{
			name:              "Zero CAC yields zero ratio",
			cac:               0,
			ltv:               400,
			monthlyChurn:      0.05,
			arpu:              50,
			expectedRatio:     0,
			expectedMonths:    0,
			expectSustainable: false,
			expectedHealth:    0,
		},
		{
			name:              "Zero ARPU yields zero recovery months",
			cac:               100,
			ltv:               400,
			monthlyChurn:      0.05,
			arpu:              0,
			expectedRatio:     4.0,
			expectedMonths:    0,
			expectSustainable: true,
			expectedHealth:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeUnitEconomics(tt.cac, tt.ltv, tt.monthlyChurn, tt.arpu)

			if got.LTVCACRatio != tt.expectedRatio {
				t.Errorf("LTVCACRatio = %v, want %v", got.LTVCACRatio, tt.expectedRatio)
			}
			if got.MonthsToRecoverCAC != tt.expectedMonths {
				t.Errorf("MonthsToRecoverCAC = %v, want %v", got.MonthsToRecoverCAC, tt.expectedMonths)
			}
			if got.IsSustainable != tt.expectSustainable {
				t.Errorf("IsSustainable = %v, want %v", got.IsSustainable, tt.expectSustainable)
			}
			if !mathutil.WithinTolerance(got.HealthScore, tt.expectedHealth, 1e-9) {
				t.Errorf("HealthScore = %v, want %v", got.HealthScore, tt.expectedHealth)
			}
		})
	}
}

func TestAnalyzeUnitEconomicsAnnualChurn(t *testing.T) {
	tests := []struct {
		name         string
		monthlyChurn float64
		expected     float64
		tolerance    float64
	}{
		{
			name:         "Five percent monthly compounds to about 46 percent",
			monthlyChurn: 0.05,
			expected:     45.96399,
			tolerance:    0.0001,
		},
		{
			name:         "No churn",
			monthlyChurn: 0,
			expected:     0,
			tolerance:    0,
		},
		{
			name:         "Total monthly churn",
			monthlyChurn: 1.0,
			expected:     100,
			tolerance:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeUnitEconomics(100, 400, tt.monthlyChurn, 50)
			if tt.tolerance == 0 {
				if got.AnnualChurnRate != tt.expected {
					t.Errorf("AnnualChurnRate = %v, want %v", got.AnnualChurnRate, tt.expected)
				}
			} else if !mathutil.WithinTolerance(got.AnnualChurnRate, tt.expected, tt.tolerance) {
				t.Errorf("AnnualChurnRate = %.5f, want %.5f (±%v)", got.AnnualChurnRate, tt.expected, tt.tolerance)
			}
		})
	}
}

func TestHealthScoreScalesLinearlyBelowCap(t *testing.T) {
	got := AnalyzeUnitEconomics(100, 200, 0.03, 40)
	want := 2.0 / 3.0 * 100.0
	if !mathutil.WithinTolerance(got.HealthScore, want, 1e-9) {
		t.Errorf("HealthScore = %v, want %v", got.HealthScore, want)
	}
}
