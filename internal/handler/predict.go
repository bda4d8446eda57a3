package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"btc-direction-predictor/internal/domain"
	"btc-direction-predictor/internal/provider"
	"btc-direction-predictor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	msgInvalidTimeFormat  = domain.InvalidTimeFormatMessage
	msgInvalidTargetPrice = "target_price must be a positive number"
	msgInvalidBody        = "invalid request body"
	msgUpstreamFailure    = "failed to fetch current price"
)

// PredictRequest is the JSON body of POST /predict.
type PredictRequest struct {
	TargetPrice *PriceValue `json:"target_price" swaggertype:"number" example:"51000"`
	TargetTime  *string     `json:"target_time" example:"2025-01-01 12:00"`
}

// PriceValue accepts a JSON number or a numeric string. Values that are
// neither are kept as not OK instead of failing the whole body.
type PriceValue struct {
	Value float64
	OK    bool
}

func (p *PriceValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return nil
		}
		p.Value, p.OK = d.InexactFloat64(), true
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	p.Value, p.OK = f, true
	return nil
}

// Predict godoc
// @Summary      Predict price direction at a target time
// @Description  Extrapolates the current price linearly to target_time and reports whether it ends Above or Below target_price
// @Tags         prediction
// @Accept       json
// @Produce      json
// @Param        request  body      PredictRequest  true  "Target price and time (YYYY-MM-DD HH:MM, UTC)"
// @Success      200      {object}  domain.PredictionResult
// @Failure      400      {object}  map[string]string
// @Failure      502      {object}  map[string]string
// @Router       /predict [post]
func (h *Handler) Predict(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.predict")
	defer span.End()

	var body PredictRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	if body.TargetTime == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidTimeFormat})
		return
	}
	targetTime, err := domain.ParseTargetTime(*body.TargetTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidTimeFormat})
		return
	}

	if body.TargetPrice == nil || !body.TargetPrice.OK || body.TargetPrice.Value <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidTargetPrice})
		return
	}

	span.SetAttributes(
		attribute.Float64("target_price", body.TargetPrice.Value),
		attribute.String("target_time", *body.TargetTime),
	)

	result, err := h.predictor.Predict(ctx, domain.PredictionRequest{
		TargetPrice: body.TargetPrice.Value,
		TargetTime:  targetTime,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTargetPrice) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidTargetPrice})
			return
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, msgUpstreamFailure)
		evt := log.Error().Err(err).Str("request_id", RequestIDFrom(c))
		var fetchErr *provider.FetchError
		if errors.As(err, &fetchErr) {
			evt = evt.Str("symbol", fetchErr.Symbol).Bool("parse_error", errors.Is(err, provider.ErrParse))
		}
		evt.Msg("prediction failed")

		c.JSON(http.StatusBadGateway, gin.H{"error": msgUpstreamFailure})
		return
	}

	c.JSON(http.StatusOK, result)
}
