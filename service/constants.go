package service

const (
	MaxMonthlyInvestment = 10_000_000.0 // 10 millones por mes
	MaxTargetAmount      = 10_000_000_000.0
	MaxAnnualReturnRate  = 100.0 // 100% anual
	MaxInflationRate     = 1000.0
	MaxStepUpPercentage  = 100.0
	MaxTimePeriodYears   = 100.0

	MonthsPerYear = 12
)
