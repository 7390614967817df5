package service

import (
	"math"

	"rpa-roi/domain"
)

// CalculateROI derives every financial and workload figure from in.
// It normalizes in first and never fails.
func CalculateROI(in domain.CalculatorInputs) domain.CalculationResults {
	in = NormalizeInputs(in)

	automation := in.AutomationRate / 100
	errorReduction := in.ErrorReductionRate / 100

	// Labor economics
	monthlyLoadedSalary := in.AvgSalary * BenefitLoadingRate / MonthsPerYear
	hourlyWage := monthlyLoadedSalary / HoursPerMonth
	inputFTE := in.NumEmployees * (in.UtilizationRate / 100)
	currentLaborCost := in.AvgSalary * BenefitLoadingRate * inputFTE

	// License fees recur every year, so they are operating cost, not investment.
	initialInvestment := in.DevelopmentCost + in.ConsultingCost
	annualOperatingCost := in.MonthlyLicensePerBot * in.NumBots * MonthsPerYear

	laborSavings := currentLaborCost * automation

	// Error reduction only applies to the automated share of the work.
	monthlyErrors := (in.AnnualWorkload / MonthsPerYear) * (in.ErrorRate / 100)
	avoidedErrors := monthlyErrors * errorReduction * automation
	costPerError := in.ProcessingTime*hourlyWage + in.AvgErrorCost
	errorSavings := avoidedErrors * costPerError * MonthsPerYear

	totalSavings := laborSavings + errorSavings

	year1TotalCost := initialInvestment + annualOperatingCost
	year1NetBenefit := totalSavings - annualOperatingCost

	res := domain.CalculationResults{
		InitialInvestment:      initialInvestment,
		AnnualOperatingCost:    annualOperatingCost,
		AnnualLaborSavings:     laborSavings,
		AnnualErrorSavings:     errorSavings,
		TotalAnnualSavings:     totalSavings,
		InputFTE:               inputFTE,
		CurrentAnnualLaborCost: currentLaborCost,
		Year1NetBenefit:        year1NetBenefit,
		Year1ROI:               roi(totalSavings-year1TotalCost, year1TotalCost),
	}

	res.Total3YearCost, res.Total3YearSavings, res.Total3YearProfit = horizon(initialInvestment, annualOperatingCost, totalSavings, 3)
	res.Year3ROI = roi(res.Total3YearProfit, res.Total3YearCost)
	res.Total5YearCost, res.Total5YearSavings, res.Total5YearProfit = horizon(initialInvestment, annualOperatingCost, totalSavings, 5)
	res.Year5ROI = roi(res.Total5YearProfit, res.Total5YearCost)

	res.PaybackPeriodMonths, res.PaybackStatus = payback(initialInvestment, year1NetBenefit/MonthsPerYear)

	res.TotalAnnualWorkHours = in.AnnualWorkload * in.ProcessingTime
	res.RequiredFTE = res.TotalAnnualWorkHours / HoursPerFTEYear

	res.MonthlyCashFlow = cashFlow(initialInvestment, annualOperatingCost, totalSavings)

	return res
}

// horizon returns cumulative cost, savings and profit over years, with flat
// yearly rates.
func horizon(investment, operatingCost, savings, years float64) (cost, totalSavings, profit float64) {
	cost = investment + operatingCost*years
	totalSavings = savings * years
	return cost, totalSavings, totalSavings - cost
}

// roi is profit over cost in percent; 0 when there is no cost or the ratio
// is not finite.
func roi(profit, cost float64) float64 {
	if cost == 0 {
		return 0
	}
	r := profit / cost * 100
	if !isFinite(r) {
		return 0
	}
	return r
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func payback(investment, monthlyNetBenefit float64) (float64, domain.PaybackStatus) {
	if monthlyNetBenefit <= 0 {
		return PaybackUnreachable, domain.PaybackUnreachable
	}
	if investment == 0 {
		return PaybackImmediate, domain.PaybackImmediate
	}
	return investment / monthlyNetBenefit, domain.PaybackReached
}

// cashFlow spreads the annual figures evenly over ProjectionMonths months.
func cashFlow(investment, operatingCost, savings float64) []domain.CashFlowPoint {
	points := make([]domain.CashFlowPoint, 0, ProjectionMonths)
	monthlyCost := operatingCost / MonthsPerYear
	monthlySavings := savings / MonthsPerYear

	cumulativeCost := investment
	cumulativeSavings := 0.0
	for m := 1; m <= ProjectionMonths; m++ {
		cumulativeCost += monthlyCost
		cumulativeSavings += monthlySavings
		points = append(points, domain.CashFlowPoint{
			Month:             m,
			CumulativeCost:    cumulativeCost,
			CumulativeSavings: cumulativeSavings,
			NetCashFlow:       cumulativeSavings - cumulativeCost,
		})
	}
	return points
}

// NormalizeInputs clamps every field into its valid range. Non-finite and
// negative values become 0, percent fields are capped at MaxPercent and the
// rest at MaxAmount.
func NormalizeInputs(in domain.CalculatorInputs) domain.CalculatorInputs {
	return domain.CalculatorInputs{
		NumEmployees:         amount(in.NumEmployees),
		AvgSalary:            amount(in.AvgSalary),
		AnnualWorkload:       amount(in.AnnualWorkload),
		UtilizationRate:      percent(in.UtilizationRate),
		ErrorRate:            percent(in.ErrorRate),
		AvgErrorCost:         amount(in.AvgErrorCost),
		ProcessingTime:       amount(in.ProcessingTime),
		MonthlyLicensePerBot: amount(in.MonthlyLicensePerBot),
		NumBots:              amount(in.NumBots),
		DevelopmentCost:      amount(in.DevelopmentCost),
		ConsultingCost:       amount(in.ConsultingCost),
		AutomationRate:       percent(in.AutomationRate),
		ErrorReductionRate:   percent(in.ErrorReductionRate),
	}
}

func nonNegative(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}

func amount(v float64) float64 {
	return math.Min(nonNegative(v), MaxAmount)
}

func percent(v float64) float64 {
	return math.Min(nonNegative(v), MaxPercent)
}
