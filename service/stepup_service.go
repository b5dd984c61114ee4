package service

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"sip-planner/domain"
)

type StepUpService struct {
	logger *zap.Logger
}

func NewStepUpService(logger *zap.Logger) *StepUpService {
	return &StepUpService{logger: logger}
}

// CalculateStepUpSIP projects a SIP whose contribution grows by a fixed
// percentage at every anniversary. There is no closed form once the
// installment changes yearly, so each of the 12*years contributions is
// compounded forward to the horizon individually.
func (s *StepUpService) CalculateStepUpSIP(
	input domain.StepUpInput,
) (domain.StepUpResult, error) {

	if input.InitialInvestment <= 0 {
		return domain.StepUpResult{}, fmt.Errorf("%w: initial investment must be positive", ErrInvalidArgument)
	}
	if input.InitialInvestment > MaxMonthlyInvestment {
		return domain.StepUpResult{}, fmt.Errorf("%w: initial investment exceeds maximum of %.2f", ErrInvalidArgument, MaxMonthlyInvestment)
	}
	if input.AnnualReturnRate <= 0 {
		return domain.StepUpResult{}, fmt.Errorf("%w: annual return rate must be positive", ErrInvalidArgument)
	}
	if input.AnnualReturnRate > MaxAnnualReturnRate {
		return domain.StepUpResult{}, fmt.Errorf("%w: annual return rate exceeds maximum of %.2f%%", ErrInvalidArgument, MaxAnnualReturnRate)
	}
	if input.TimePeriod <= 0 {
		return domain.StepUpResult{}, fmt.Errorf("%w: time period must be positive", ErrInvalidArgument)
	}
	if input.TimePeriod > MaxTimePeriodYears {
		return domain.StepUpResult{}, fmt.Errorf("%w: time period exceeds maximum of %.0f years", ErrInvalidArgument, MaxTimePeriodYears)
	}
	if input.StepUpPercentage < 0 {
		return domain.StepUpResult{}, fmt.Errorf("%w: step-up percentage cannot be negative", ErrInvalidArgument)
	}
	if input.StepUpPercentage > MaxStepUpPercentage {
		return domain.StepUpResult{}, fmt.Errorf("%w: step-up percentage exceeds maximum of %.2f%%", ErrInvalidArgument, MaxStepUpPercentage)
	}
	if input.InflationRate < 0 {
		return domain.StepUpResult{}, fmt.Errorf("%w: inflation rate cannot be negative", ErrInvalidArgument)
	}
	if input.InflationRate > MaxInflationRate {
		return domain.StepUpResult{}, fmt.Errorf("%w: inflation rate exceeds maximum of %.2f%%", ErrInvalidArgument, MaxInflationRate)
	}

	monthlyRate := (input.AnnualReturnRate / 100) / MonthsPerYear
	years := int(input.TimePeriod)

	futureValue := 0.0
	totalInvested := 0.0
	contribution := input.InitialInvestment

	for year := 1; year <= years; year++ {
		for month := 1; month <= MonthsPerYear; month++ {
			// compounding periods between this installment and the horizon,
			// counting the month it is paid in (annuity-due)
			remainingMonths := float64((years-year)*MonthsPerYear + (MonthsPerYear - month + 1))
			futureValue += contribution * math.Pow(1+monthlyRate, remainingMonths)
			totalInvested += contribution
		}
		contribution *= 1 + input.StepUpPercentage/100
	}

	adjustedFutureValue := adjustForInflation(futureValue, input.InflationRate, input.TimePeriod)

	return domain.StepUpResult{
		InitialInvestment: input.InitialInvestment,
		AnnualReturnRate:  input.AnnualReturnRate,
		TimePeriod:        input.TimePeriod,
		StepUpPercentage:  input.StepUpPercentage,
		InflationRate:     input.InflationRate,

		TotalInvested:                roundToUnit(totalInvested),
		EstimatedReturns:             roundToUnit(futureValue - totalInvested),
		FutureValue:                  roundToUnit(futureValue),
		InflationAdjustedFutureValue: roundToUnit(adjustedFutureValue),
		InflationAdjustedReturns:     roundToUnit(adjustedFutureValue - totalInvested),
	}, nil
}
