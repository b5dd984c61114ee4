package domain

type SIPInput struct {
	MonthlyInvestment float64 `json:"monthlyInvestment"`
	AnnualReturnRate  float64 `json:"annualReturnRate"`
	TimePeriod        float64 `json:"timePeriod"` // years
	InflationRate     float64 `json:"inflationRate,omitempty"`
}

type SIPResult struct {
	MonthlyInvestment float64 `json:"monthlyInvestment"`
	AnnualReturnRate  float64 `json:"annualReturnRate"`
	TimePeriod        float64 `json:"timePeriod"`
	InflationRate     float64 `json:"inflationRate"`

	TotalInvested                float64 `json:"totalInvested"`
	EstimatedReturns             float64 `json:"estimatedReturns"`
	FutureValue                  float64 `json:"futureValue"`
	InflationAdjustedFutureValue float64 `json:"inflationAdjustedFutureValue"`
	InflationAdjustedReturns     float64 `json:"inflationAdjustedReturns"`
	RealReturnRate               float64 `json:"realReturnRate"`
	TotalMonths                  int     `json:"totalMonths"`
}

// YearlyBreakup is one row of the year-wise projection history,
// cumulative up to and including the given year.
type YearlyBreakup struct {
	Year                     int     `json:"year"`
	Invested                 float64 `json:"invested"`
	Value                    float64 `json:"value"`
	Returns                  float64 `json:"returns"`
	InflationAdjustedValue   float64 `json:"inflationAdjustedValue"`
	InflationAdjustedReturns float64 `json:"inflationAdjustedReturns"`
}
