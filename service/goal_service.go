package service

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"sip-planner/domain"
)

type GoalService struct {
	logger *zap.Logger
}

func NewGoalService(logger *zap.Logger) *GoalService {
	return &GoalService{logger: logger}
}

// CalculateRequiredSIP inverts the annuity-due projection: given a target
// future value it returns the monthly contribution needed to reach it.
// Alongside the nominal amount it computes a real-terms amount at the
// inflation-subtracted rate; that one has no finite answer when the real
// rate is at or below -100%, which is reported as a nil field rather than
// an error because the nominal part is still meaningful.
func (s *GoalService) CalculateRequiredSIP(
	input domain.GoalInput,
) (domain.GoalResult, error) {

	if input.TargetAmount <= 0 {
		return domain.GoalResult{}, fmt.Errorf("%w: target amount must be positive", ErrInvalidArgument)
	}
	if input.TargetAmount > MaxTargetAmount {
		return domain.GoalResult{}, fmt.Errorf("%w: target amount exceeds maximum of %.2f", ErrInvalidArgument, MaxTargetAmount)
	}
	if input.AnnualReturnRate <= 0 {
		return domain.GoalResult{}, fmt.Errorf("%w: annual return rate must be positive", ErrInvalidArgument)
	}
	if input.AnnualReturnRate > MaxAnnualReturnRate {
		return domain.GoalResult{}, fmt.Errorf("%w: annual return rate exceeds maximum of %.2f%%", ErrInvalidArgument, MaxAnnualReturnRate)
	}
	if input.TimePeriod <= 0 {
		return domain.GoalResult{}, fmt.Errorf("%w: time period must be positive", ErrInvalidArgument)
	}
	if input.TimePeriod > MaxTimePeriodYears {
		return domain.GoalResult{}, fmt.Errorf("%w: time period exceeds maximum of %.0f years", ErrInvalidArgument, MaxTimePeriodYears)
	}
	if input.InflationRate < 0 {
		return domain.GoalResult{}, fmt.Errorf("%w: inflation rate cannot be negative", ErrInvalidArgument)
	}
	if input.InflationRate > MaxInflationRate {
		return domain.GoalResult{}, fmt.Errorf("%w: inflation rate exceeds maximum of %.2f%%", ErrInvalidArgument, MaxInflationRate)
	}

	monthlyRate := (input.AnnualReturnRate / 100) / MonthsPerYear
	months := input.TimePeriod * MonthsPerYear

	requiredNominal := input.TargetAmount / annuityDueFactor(monthlyRate, months)

	realRate := input.AnnualReturnRate - input.InflationRate
	realMonthlyRate := (realRate / 100) / MonthsPerYear

	var requiredReal *float64
	switch {
	case realMonthlyRate == 0:
		// no real growth: straight-line contribution
		flat := roundToUnit(input.TargetAmount / months)
		requiredReal = &flat
	case realRate <= -100:
		// capital fully eroded before the horizon: the goal is unreachable
		// in real terms, reported as nil rather than an error
		s.logger.Debug("goal unreachable in real terms",
			zap.Float64("real_rate", realRate))
		requiredReal = nil
	default:
		real := roundToUnit(input.TargetAmount / annuityDueFactor(realMonthlyRate, months))
		requiredReal = &real
	}

	return domain.GoalResult{
		TargetAmount:     input.TargetAmount,
		AnnualReturnRate: input.AnnualReturnRate,
		TimePeriod:       input.TimePeriod,
		InflationRate:    input.InflationRate,

		RequiredMonthlyInvestment:     roundToUnit(requiredNominal),
		RequiredMonthlyInvestmentReal: requiredReal,
		RealReturnRate:                realRate,
		TotalMonths:                   int(math.Round(months)),
	}, nil
}
