package service

import (
	"math"
	"strconv"
	"time"

	"btc-direction-predictor/internal/domain"
)

// GrowthPerMinute is the fixed linear drift applied for every whole minute
// between now and the target time.
const GrowthPerMinute = 0.0001

// Evaluate extrapolates currentPrice to targetTime and classifies it against
// targetPrice. Targets at or before now yield the invalid-target result.
// ErrInvalidTargetPrice is returned when targetPrice is so small that the
// confidence overflows float64.
func Evaluate(currentPrice float64, now time.Time, targetPrice float64, targetTime time.Time) (domain.PredictionResult, error) {
	if !targetTime.After(now) {
		return domain.InvalidTargetTime(), nil
	}

	minutesLeft := MinutesUntil(now, targetTime)
	predicted := currentPrice * (1 + GrowthPerMinute*float64(minutesLeft))

	direction := domain.DirectionBelow
	if predicted > targetPrice {
		direction = domain.DirectionAbove
	}

	confidence := math.Abs(predicted-targetPrice) / targetPrice * 100
	if !finite(confidence) || !finite(predicted) {
		return domain.PredictionResult{}, ErrInvalidTargetPrice
	}
	confidence = round2(confidence)
	predictedRounded := round2(predicted)
	current, target := currentPrice, targetPrice

	return domain.PredictionResult{
		CurrentPrice:   &current,
		PredictedPrice: &predictedRounded,
		TargetPrice:    &target,
		TargetTime:     targetTime.Format(domain.ResultTimeLayout),
		Prediction:     direction,
		Confidence:     confidence,
	}, nil
}

// MinutesUntil returns the number of whole minutes from now to target, or 0
// when target is not in the future.
func MinutesUntil(now, target time.Time) int64 {
	d := target.Sub(now)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Minute)
}

// round2 rounds the exact binary value of v to two decimals. Exact ties go
// to even.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
