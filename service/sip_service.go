package service

import (
	"encoding/json"
	"fmt"
	"math"

	"go.uber.org/zap"

	"sip-planner/domain"
	"sip-planner/repository"
)

// roundToUnit redondea un valor monetario a la unidad entera más cercana.
// Rounding happens only at the result boundary; intermediate math keeps
// full float64 precision.
func roundToUnit(value float64) float64 {
	return math.Round(value)
}

// adjustForInflation deflates a future value by the annual inflation rate
// over the given horizon in years.
func adjustForInflation(futureValue, inflationRate, years float64) float64 {
	if inflationRate <= 0 {
		return futureValue
	}
	return futureValue / math.Pow(1+inflationRate/100, years)
}

// annuityDueFactor is the future value of 1 unit contributed at the start
// of each of n months at the given monthly rate.
func annuityDueFactor(monthlyRate, months float64) float64 {
	return ((math.Pow(1+monthlyRate, months) - 1) / monthlyRate) * (1 + monthlyRate)
}

type SIPService struct {
	repo   repository.SIPRepository
	cache  repository.CacheRepository
	logger *zap.Logger
}

// NewSIPService creates a new SIPService with the given repository and cache.
func NewSIPService(
	repo repository.SIPRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *SIPService {
	return &SIPService{repo: repo, cache: cache, logger: logger}
}

func validateSIPInput(input domain.SIPInput) error {
	if input.MonthlyInvestment <= 0 {
		return fmt.Errorf("%w: monthly investment must be positive", ErrInvalidArgument)
	}
	if input.MonthlyInvestment > MaxMonthlyInvestment {
		return fmt.Errorf("%w: monthly investment exceeds maximum of %.2f", ErrInvalidArgument, MaxMonthlyInvestment)
	}
	if input.AnnualReturnRate <= 0 {
		return fmt.Errorf("%w: annual return rate must be positive", ErrInvalidArgument)
	}
	if input.AnnualReturnRate > MaxAnnualReturnRate {
		return fmt.Errorf("%w: annual return rate exceeds maximum of %.2f%%", ErrInvalidArgument, MaxAnnualReturnRate)
	}
	if input.TimePeriod <= 0 {
		return fmt.Errorf("%w: time period must be positive", ErrInvalidArgument)
	}
	if input.TimePeriod > MaxTimePeriodYears {
		return fmt.Errorf("%w: time period exceeds maximum of %.0f years", ErrInvalidArgument, MaxTimePeriodYears)
	}
	if input.InflationRate < 0 {
		return fmt.Errorf("%w: inflation rate cannot be negative", ErrInvalidArgument)
	}
	if input.InflationRate > MaxInflationRate {
		return fmt.Errorf("%w: inflation rate exceeds maximum of %.2f%%", ErrInvalidArgument, MaxInflationRate)
	}
	return nil
}

// Calculate projects the future value of a fixed monthly SIP under
// compound growth. The contribution is treated as an annuity-due: each
// installment is paid at the start of its month and compounds one extra
// period.
func (s *SIPService) Calculate(
	input domain.SIPInput,
) (domain.SIPResult, error) {

	if err := validateSIPInput(input); err != nil {
		return domain.SIPResult{}, err
	}

	cacheKey := sipCacheKey(input)
	if cached, ok := s.cache.Get(cacheKey); ok {
		var result domain.SIPResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		s.logger.Warn("discarding malformed cached projection",
			zap.String("key", cacheKey))
	}

	// monthlyRate is strictly positive here, so the factor's division is safe
	monthlyRate := (input.AnnualReturnRate / 100) / MonthsPerYear
	months := input.TimePeriod * MonthsPerYear

	futureValue := input.MonthlyInvestment * annuityDueFactor(monthlyRate, months)
	totalInvested := input.MonthlyInvestment * months
	adjustedFutureValue := adjustForInflation(futureValue, input.InflationRate, input.TimePeriod)

	result := domain.SIPResult{
		MonthlyInvestment: input.MonthlyInvestment,
		AnnualReturnRate:  input.AnnualReturnRate,
		TimePeriod:        input.TimePeriod,
		InflationRate:     input.InflationRate,

		TotalInvested:                roundToUnit(totalInvested),
		EstimatedReturns:             roundToUnit(futureValue - totalInvested),
		FutureValue:                  roundToUnit(futureValue),
		InflationAdjustedFutureValue: roundToUnit(adjustedFutureValue),
		InflationAdjustedReturns:     roundToUnit(adjustedFutureValue - totalInvested),
		// approximation: simple subtraction, not the Fisher relation
		RealReturnRate: input.AnnualReturnRate - input.InflationRate,
		TotalMonths:    int(math.Round(months)),
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(input, result); err != nil {
		s.logger.Warn("failed to save sip calculation", zap.Error(err))
	}

	if data, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(cacheKey, string(data)); err != nil {
			s.logger.Warn("failed to cache sip calculation", zap.Error(err))
		}
	}

	return result, nil
}

// GetYearWiseBreakup projects the SIP year by year: entry k is the result
// of Calculate with the time period cut to k years. The whole history is
// materialized up front since callers chart it as one series.
func (s *SIPService) GetYearWiseBreakup(
	input domain.SIPInput,
) ([]domain.YearlyBreakup, error) {

	if err := validateSIPInput(input); err != nil {
		return nil, err
	}

	years := int(input.TimePeriod)
	breakup := make([]domain.YearlyBreakup, 0, years)

	for year := 1; year <= years; year++ {
		yearInput := input
		yearInput.TimePeriod = float64(year)

		result, err := s.Calculate(yearInput)
		if err != nil {
			return nil, err
		}

		breakup = append(breakup, domain.YearlyBreakup{
			Year:                     year,
			Invested:                 result.TotalInvested,
			Value:                    result.FutureValue,
			Returns:                  result.EstimatedReturns,
			InflationAdjustedValue:   result.InflationAdjustedFutureValue,
			InflationAdjustedReturns: result.InflationAdjustedReturns,
		})
	}

	return breakup, nil
}

func sipCacheKey(input domain.SIPInput) string {
	return fmt.Sprintf("sip:%g:%g:%g:%g",
		input.MonthlyInvestment,
		input.AnnualReturnRate,
		input.TimePeriod,
		input.InflationRate,
	)
}
