package domain

import "time"

// Layouts for target times. Requests carry minute precision, responses echo
// the time back with seconds.
const (
	TargetTimeLayout = "2006-01-02 15:04"
	ResultTimeLayout = "2006-01-02 15:04:05"
)

// InvalidTimeFormatMessage is reported for target times not matching
// TargetTimeLayout.
const InvalidTimeFormatMessage = "Invalid time format. Use YYYY-MM-DD HH:MM"

// DefaultSymbol is the trading pair quoted when none is configured.
const DefaultSymbol = "BTCUSDT"

type Direction string

const (
	DirectionAbove             Direction = "Above"
	DirectionBelow             Direction = "Below"
	DirectionInvalidTargetTime Direction = "Invalid Target Time"
)

// PredictionRequest is a validated prediction query. TargetTime is UTC.
type PredictionRequest struct {
	TargetPrice float64
	TargetTime  time.Time
}

// PredictionResult is returned to callers as-is. Price fields are nil when
// the target time was not in the future, which keeps them out of the JSON.
type PredictionResult struct {
	CurrentPrice   *float64  `json:"current_price,omitempty"`
	PredictedPrice *float64  `json:"predicted_price,omitempty"`
	TargetPrice    *float64  `json:"target_price,omitempty"`
	TargetTime     string    `json:"target_time,omitempty"`
	Prediction     Direction `json:"prediction"`
	Confidence     float64   `json:"confidence"`
}

// InvalidTargetTime is the result for targets at or before the evaluation time.
func InvalidTargetTime() PredictionResult {
	return PredictionResult{Prediction: DirectionInvalidTargetTime, Confidence: 0}
}

// ParseTargetTime parses a TargetTimeLayout string as UTC.
func ParseTargetTime(s string) (time.Time, error) {
	return time.ParseInLocation(TargetTimeLayout, s, time.UTC)
}
