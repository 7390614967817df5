package service

// Fixed model policy. These are not user inputs.
const (
	BenefitLoadingRate  = 1.12 // mandatory severance and benefits on top of salary
	MonthsPerYear       = 12.0
	HoursPerMonth       = 160.0  // standard working hours per month
	HoursPerFTEYear     = 1920.0 // 40 h/week x 48 weeks
	ProjectionMonths    = 60
	WorkingDaysPerMonth = 22.0

	// PaybackUnreachable is reported when monthly net benefit is not positive.
	PaybackUnreachable = -1.0
	// PaybackImmediate is reported when there is no one-time investment to recover.
	PaybackImmediate = 0.0

	// Workload gap bands, in percent of required FTE.
	OverworkedGapThreshold    = 20.0
	UnderutilizedGapThreshold = -20.0

	MaxPercent = 100.0
	// MaxAmount caps every amount and count input. Products of capped inputs
	// stay well inside float64 range.
	MaxAmount = 1e12
)
