package service

import "rpa-roi/domain"

// AnalyzeWorkload compares the staffed FTE with the FTE the workload needs.
// res must come from CalculateROI(in).
func AnalyzeWorkload(in domain.CalculatorInputs, res domain.CalculationResults) domain.WorkloadAnalysis {
	in = NormalizeInputs(in)

	gap := 0.0
	if res.RequiredFTE > 0 {
		gap = (res.RequiredFTE - res.InputFTE) / res.RequiredFTE * 100
	}

	status := domain.WorkloadBalanced
	switch {
	case gap > OverworkedGapThreshold:
		status = domain.WorkloadOverworked
	case gap < UnderutilizedGapThreshold:
		status = domain.WorkloadUnderutilized
	}

	monthly := in.AnnualWorkload / MonthsPerYear
	annualErrors := in.AnnualWorkload * in.ErrorRate / 100

	return domain.WorkloadAnalysis{
		InputFTE:          res.InputFTE,
		RequiredFTE:       res.RequiredFTE,
		UtilizationGap:    gap,
		Status:            status,
		MonthlyWorkload:   monthly,
		AvgDailyWorkload:  monthly / WorkingDaysPerMonth,
		AnnualErrorCount:  annualErrors,
		MonthlyErrorCount: annualErrors / MonthsPerYear,
		AnnualErrorCost:   annualErrors * in.AvgErrorCost,
	}
}
