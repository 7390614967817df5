package domain

// CalculatorInputs are the user-editable assumptions of an automation
// business case. Percent fields hold values in the 0-100 range.
type CalculatorInputs struct {
	// Current state
	NumEmployees    float64 `json:"numEmployees"`
	AvgSalary       float64 `json:"avgSalary"`      // annual
	AnnualWorkload  float64 `json:"annualWorkload"` // tasks per year
	UtilizationRate float64 `json:"utilizationRate"`
	ErrorRate       float64 `json:"errorRate"`
	AvgErrorCost    float64 `json:"avgErrorCost"`   // direct loss per error, rework excluded
	ProcessingTime  float64 `json:"processingTime"` // hours per task

	// Automation investment
	MonthlyLicensePerBot float64 `json:"monthlyLicensePerBot"`
	NumBots              float64 `json:"numBots"`
	DevelopmentCost      float64 `json:"developmentCost"` // one-time
	ConsultingCost       float64 `json:"consultingCost"`  // one-time
	AutomationRate       float64 `json:"automationRate"`
	ErrorReductionRate   float64 `json:"errorReductionRate"`
}

// PaybackStatus tells how PaybackPeriodMonths should be read.
type PaybackStatus string

const (
	PaybackReached     PaybackStatus = "reached"
	PaybackImmediate   PaybackStatus = "immediate"
	PaybackUnreachable PaybackStatus = "unreachable"
)

type CashFlowPoint struct {
	Month             int     `json:"month"`
	CumulativeCost    float64 `json:"cumulativeCost"`
	CumulativeSavings float64 `json:"cumulativeSavings"`
	NetCashFlow       float64 `json:"netCashFlow"`
}

// CalculationResults is everything derived from one CalculatorInputs value.
type CalculationResults struct {
	InitialInvestment   float64 `json:"initialInvestment"`
	AnnualOperatingCost float64 `json:"annualOperatingCost"`

	AnnualLaborSavings float64 `json:"annualLaborSavings"`
	AnnualErrorSavings float64 `json:"annualErrorSavings"`
	TotalAnnualSavings float64 `json:"totalAnnualSavings"`

	TotalAnnualWorkHours   float64 `json:"totalAnnualWorkHours"`
	RequiredFTE            float64 `json:"requiredFTE"`
	InputFTE               float64 `json:"inputFTE"`
	CurrentAnnualLaborCost float64 `json:"currentAnnualLaborCost"`

	Year1NetBenefit     float64       `json:"year1NetBenefit"`
	Year1ROI            float64       `json:"year1ROI"`
	Year3ROI            float64       `json:"year3ROI"`
	Year5ROI            float64       `json:"year5ROI"`
	PaybackPeriodMonths float64       `json:"paybackPeriodMonths"`
	PaybackStatus       PaybackStatus `json:"paybackStatus"`

	Total3YearCost    float64 `json:"total3YearCost"`
	Total3YearSavings float64 `json:"total3YearSavings"`
	Total3YearProfit  float64 `json:"total3YearProfit"`

	Total5YearCost    float64 `json:"total5YearCost"`
	Total5YearSavings float64 `json:"total5YearSavings"`
	Total5YearProfit  float64 `json:"total5YearProfit"`

	MonthlyCashFlow []CashFlowPoint `json:"monthlyCashFlow"`
}

// DefaultInputs returns the single-operator starting point used when the
// caller has no inputs of its own.
func DefaultInputs() CalculatorInputs {
	return CalculatorInputs{
		NumEmployees:    1,
		AvgSalary:       40_000_000,
		AnnualWorkload:  6_000, // 500 per month
		UtilizationRate: 100,
		ErrorRate:       1,
		AvgErrorCost:    10_000,
		ProcessingTime:  10.0 / 60.0, // 10 minutes

		MonthlyLicensePerBot: 400_000,
		NumBots:              3,
		DevelopmentCost:      3_000_000,
		ConsultingCost:       0,
		AutomationRate:       100,
		ErrorReductionRate:   95,
	}
}
