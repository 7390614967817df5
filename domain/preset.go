package domain

type ScenarioID string

const (
	ScenarioConservative ScenarioID = "conservative"
	ScenarioStandard     ScenarioID = "standard"
	ScenarioOptimistic   ScenarioID = "optimistic"
)

// ScenarioIDs lists every known scenario in display order.
var ScenarioIDs = []ScenarioID{ScenarioConservative, ScenarioStandard, ScenarioOptimistic}

type ScaleID string

const (
	ScaleSmall  ScaleID = "small"
	ScaleMedium ScaleID = "medium"
	ScaleLarge  ScaleID = "large"
)

var ScaleIDs = []ScaleID{ScaleSmall, ScaleMedium, ScaleLarge}

// InputOverride is a partial CalculatorInputs. Nil fields are left as they are
// when the override is merged.
type InputOverride struct {
	NumEmployees         *float64 `json:"numEmployees,omitempty" yaml:"numEmployees,omitempty"`
	AvgSalary            *float64 `json:"avgSalary,omitempty" yaml:"avgSalary,omitempty"`
	AnnualWorkload       *float64 `json:"annualWorkload,omitempty" yaml:"annualWorkload,omitempty"`
	UtilizationRate      *float64 `json:"utilizationRate,omitempty" yaml:"utilizationRate,omitempty"`
	ErrorRate            *float64 `json:"errorRate,omitempty" yaml:"errorRate,omitempty"`
	AvgErrorCost         *float64 `json:"avgErrorCost,omitempty" yaml:"avgErrorCost,omitempty"`
	ProcessingTime       *float64 `json:"processingTime,omitempty" yaml:"processingTime,omitempty"`
	MonthlyLicensePerBot *float64 `json:"monthlyLicensePerBot,omitempty" yaml:"monthlyLicensePerBot,omitempty"`
	NumBots              *float64 `json:"numBots,omitempty" yaml:"numBots,omitempty"`
	DevelopmentCost      *float64 `json:"developmentCost,omitempty" yaml:"developmentCost,omitempty"`
	ConsultingCost       *float64 `json:"consultingCost,omitempty" yaml:"consultingCost,omitempty"`
	AutomationRate       *float64 `json:"automationRate,omitempty" yaml:"automationRate,omitempty"`
	ErrorReductionRate   *float64 `json:"errorReductionRate,omitempty" yaml:"errorReductionRate,omitempty"`
}

// Merge returns a copy of in with every non-nil field of o written over it.
func (o InputOverride) Merge(in CalculatorInputs) CalculatorInputs {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	out := in
	set(&out.NumEmployees, o.NumEmployees)
	set(&out.AvgSalary, o.AvgSalary)
	set(&out.AnnualWorkload, o.AnnualWorkload)
	set(&out.UtilizationRate, o.UtilizationRate)
	set(&out.ErrorRate, o.ErrorRate)
	set(&out.AvgErrorCost, o.AvgErrorCost)
	set(&out.ProcessingTime, o.ProcessingTime)
	set(&out.MonthlyLicensePerBot, o.MonthlyLicensePerBot)
	set(&out.NumBots, o.NumBots)
	set(&out.DevelopmentCost, o.DevelopmentCost)
	set(&out.ConsultingCost, o.ConsultingCost)
	set(&out.AutomationRate, o.AutomationRate)
	set(&out.ErrorReductionRate, o.ErrorReductionRate)
	return out
}

// Float is a helper for building overrides from literals.
func Float(v float64) *float64 {
	return &v
}
