package service

import (
	"testing"

	"rpa-roi/domain"
)

func TestAnalyzeWorkload_Status(t *testing.T) {
	tests := []struct {
		name      string
		employees float64
		want      domain.WorkloadStatus
	}{
		// 2400 tasks * 0.8h = 1920h = 1 FTE required
		{"overworked", 0.5, domain.WorkloadOverworked},
		{"balanced", 1, domain.WorkloadBalanced},
		{"underutilized", 2, domain.WorkloadUnderutilized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.CalculatorInputs{
				NumEmployees:    tt.employees,
				UtilizationRate: 100,
				AnnualWorkload:  2400,
				ProcessingTime:  0.8,
			}

			got := AnalyzeWorkload(in, CalculateROI(in))

			if got.Status != tt.want {
				t.Errorf("expected %s, got %s (gap %.1f%%)", tt.want, got.Status, got.UtilizationGap)
			}
		})
	}
}

func TestAnalyzeWorkload_Counts(t *testing.T) {
	in := workedExample()

	got := AnalyzeWorkload(in, CalculateROI(in))

	assertClose(t, "monthlyWorkload", got.MonthlyWorkload, 5000.0/12)
	assertClose(t, "avgDailyWorkload", got.AvgDailyWorkload, 5000.0/12/22)
	assertClose(t, "annualErrorCount", got.AnnualErrorCount, 400)
	assertClose(t, "monthlyErrorCount", got.MonthlyErrorCount, 400.0/12)
	assertClose(t, "annualErrorCost", got.AnnualErrorCost, 4_000_000)
}

func TestAnalyzeWorkload_NoWorkload(t *testing.T) {
	in := domain.CalculatorInputs{NumEmployees: 3, UtilizationRate: 100}

	got := AnalyzeWorkload(in, CalculateROI(in))

	if got.UtilizationGap != 0 {
		t.Errorf("expected zero gap without workload, got %f", got.UtilizationGap)
	}
	if got.Status != domain.WorkloadBalanced {
		t.Errorf("expected balanced, got %s", got.Status)
	}
}
