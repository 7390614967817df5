package service

import (
	"fmt"

	"rpa-roi/domain"
)

// Breakdown walks through how res was derived from in, one formula per step,
// in the order the engine evaluates them.
func Breakdown(in domain.CalculatorInputs, res domain.CalculationResults) []domain.BreakdownStep {
	in = NormalizeInputs(in)
	hourlyWage := in.AvgSalary * BenefitLoadingRate / MonthsPerYear / HoursPerMonth
	yearOneCost := res.InitialInvestment + res.AnnualOperatingCost

	steps := []domain.BreakdownStep{
		{
			Title:   "Annual operating cost",
			Formula: fmt.Sprintf("%.0f license x %.0f bots x 12 months", in.MonthlyLicensePerBot, in.NumBots),
			Value:   res.AnnualOperatingCost,
		},
		{
			Title:   "Initial investment (one-time only)",
			Formula: fmt.Sprintf("%.0f development + %.0f consulting", in.DevelopmentCost, in.ConsultingCost),
			Value:   res.InitialInvestment,
		},
		{
			Title:   "Staffed FTE",
			Formula: fmt.Sprintf("%g employees x %g%% utilization", in.NumEmployees, in.UtilizationRate),
			Value:   res.InputFTE,
		},
		{
			Title:   "Current annual labor cost",
			Formula: fmt.Sprintf("%.0f salary x %.2f benefits x %.2f FTE", in.AvgSalary, BenefitLoadingRate, res.InputFTE),
			Value:   res.CurrentAnnualLaborCost,
		},
		{
			Title:   "Annual labor savings",
			Formula: fmt.Sprintf("%.0f labor cost x %g%% automated", res.CurrentAnnualLaborCost, in.AutomationRate),
			Value:   res.AnnualLaborSavings,
		},
		{
			Title: "Annual error savings",
			Formula: fmt.Sprintf("%g tasks/12 x %g%% errors x %g%% reduced x %g%% automated x (%g h x %.0f/h + %.0f) x 12",
				in.AnnualWorkload, in.ErrorRate, in.ErrorReductionRate, in.AutomationRate,
				in.ProcessingTime, hourlyWage, in.AvgErrorCost),
			Value: res.AnnualErrorSavings,
		},
		{
			Title:   "Total annual savings",
			Formula: fmt.Sprintf("%.0f labor + %.0f errors", res.AnnualLaborSavings, res.AnnualErrorSavings),
			Value:   res.TotalAnnualSavings,
		},
		{
			Title:   "Year 1 ROI (%)",
			Formula: fmt.Sprintf("(%.0f savings - %.0f cost) / %.0f cost x 100", res.TotalAnnualSavings, yearOneCost, yearOneCost),
			Value:   res.Year1ROI,
		},
		{
			Title:   "Required FTE",
			Formula: fmt.Sprintf("%g tasks x %g h / %.0f h per FTE", in.AnnualWorkload, in.ProcessingTime, HoursPerFTEYear),
			Value:   res.RequiredFTE,
		},
	}

	switch res.PaybackStatus {
	case domain.PaybackReached:
		steps = append(steps, domain.BreakdownStep{
			Title:   "Payback period (months)",
			Formula: fmt.Sprintf("%.0f investment / (%.0f net benefit / 12)", res.InitialInvestment, res.Year1NetBenefit),
			Value:   res.PaybackPeriodMonths,
		})
	case domain.PaybackImmediate:
		steps = append(steps, domain.BreakdownStep{
			Title:   "Payback period (months)",
			Formula: "no one-time investment to recover",
			Value:   res.PaybackPeriodMonths,
		})
	default:
		steps = append(steps, domain.BreakdownStep{
			Title:   "Payback period (months)",
			Formula: fmt.Sprintf("never: savings %.0f do not exceed operating cost %.0f", res.TotalAnnualSavings, res.AnnualOperatingCost),
			Value:   res.PaybackPeriodMonths,
		})
	}

	return steps
}
