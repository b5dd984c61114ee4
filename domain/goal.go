package domain

type GoalInput struct {
	TargetAmount     float64 `json:"targetAmount"`
	AnnualReturnRate float64 `json:"annualReturnRate"`
	TimePeriod       float64 `json:"timePeriod"`
	InflationRate    float64 `json:"inflationRate,omitempty"`
}

type GoalResult struct {
	TargetAmount     float64 `json:"targetAmount"`
	AnnualReturnRate float64 `json:"annualReturnRate"`
	TimePeriod       float64 `json:"timePeriod"`
	InflationRate    float64 `json:"inflationRate"`

	RequiredMonthlyInvestment float64 `json:"requiredMonthlyInvestment"`
	// RequiredMonthlyInvestmentReal is nil when the real return rate is at or
	// below -100% and no finite contribution can reach the goal.
	RequiredMonthlyInvestmentReal *float64 `json:"requiredMonthlyInvestmentReal"`
	RealReturnRate                float64  `json:"realReturnRate"`
	TotalMonths                   int      `json:"totalMonths"`
}
