package domain

type StepUpInput struct {
	InitialInvestment float64 `json:"initialInvestment"`
	AnnualReturnRate  float64 `json:"annualReturnRate"`
	TimePeriod        float64 `json:"timePeriod"`
	StepUpPercentage  float64 `json:"stepUpPercentage"`
	InflationRate     float64 `json:"inflationRate,omitempty"`
}

type StepUpResult struct {
	InitialInvestment float64 `json:"initialInvestment"`
	AnnualReturnRate  float64 `json:"annualReturnRate"`
	TimePeriod        float64 `json:"timePeriod"`
	StepUpPercentage  float64 `json:"stepUpPercentage"`
	InflationRate     float64 `json:"inflationRate"`

	TotalInvested                float64 `json:"totalInvested"`
	EstimatedReturns             float64 `json:"estimatedReturns"`
	FutureValue                  float64 `json:"futureValue"`
	InflationAdjustedFutureValue float64 `json:"inflationAdjustedFutureValue"`
	InflationAdjustedReturns     float64 `json:"inflationAdjustedReturns"`
}
