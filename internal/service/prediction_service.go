package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"btc-direction-predictor/internal/domain"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrInvalidTargetPrice is returned for target prices that are not positive
// finite numbers or too small to produce a finite confidence.
var ErrInvalidTargetPrice = errors.New("target price must be positive")

// PriceProvider quotes the current price of the configured trading pair.
type PriceProvider interface {
	FetchPrice(ctx context.Context) (float64, error)
}

// PredictionService fetches the reference price and runs Evaluate on it.
type PredictionService struct {
	tracer   trace.Tracer
	provider PriceProvider
	now      func() time.Time
}

func NewPredictionService(tracer trace.Tracer, provider PriceProvider) *PredictionService {
	return &PredictionService{
		tracer:   tracer,
		provider: provider,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the evaluation clock. Used by tests.
func (s *PredictionService) WithClock(now func() time.Time) *PredictionService {
	s.now = now
	return s
}

// Predict returns the direction of the price at req.TargetTime relative to
// req.TargetPrice. Targets that are not in the future are answered without
// contacting the provider. Provider failures are returned wrapped.
func (s *PredictionService) Predict(ctx context.Context, req domain.PredictionRequest) (domain.PredictionResult, error) {
	ctx, span := s.tracer.Start(ctx, "prediction-service.predict")
	defer span.End()

	if !(req.TargetPrice > 0) || math.IsInf(req.TargetPrice, 1) {
		return domain.PredictionResult{}, ErrInvalidTargetPrice
	}

	now := s.now()
	span.SetAttributes(
		attribute.Float64("target_price", req.TargetPrice),
		attribute.String("target_time", req.TargetTime.Format(domain.ResultTimeLayout)),
	)

	if !req.TargetTime.After(now) {
		log.Debug().
			Time("target_time", req.TargetTime).
			Time("now", now).
			Msg("target time is not in the future")
		return domain.InvalidTargetTime(), nil
	}

	current, err := s.provider.FetchPrice(ctx)
	if err != nil {
		span.RecordError(err)
		return domain.PredictionResult{}, fmt.Errorf("get current price: %w", err)
	}

	result, err := Evaluate(current, now, req.TargetPrice, req.TargetTime)
	if err != nil {
		log.Debug().
			Float64("current_price", current).
			Float64("target_price", req.TargetPrice).
			Msg("confidence out of range")
		return domain.PredictionResult{}, err
	}
	span.SetAttributes(
		attribute.String("prediction", string(result.Prediction)),
		attribute.Float64("confidence", result.Confidence),
	)
	log.Debug().
		Float64("current_price", current).
		Float64("target_price", req.TargetPrice).
		Int64("minutes_left", MinutesUntil(now, req.TargetTime)).
		Str("prediction", string(result.Prediction)).
		Float64("confidence", result.Confidence).
		Msg("prediction evaluated")

	return result, nil
}
