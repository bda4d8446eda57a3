package handler

import (
	"context"

	"btc-direction-predictor/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// Predictor is satisfied by *service.PredictionService.
type Predictor interface {
	Predict(ctx context.Context, req domain.PredictionRequest) (domain.PredictionResult, error)
}

type Handler struct {
	tracer    trace.Tracer
	predictor Predictor
}

func New(tracer trace.Tracer, predictor Predictor) *Handler {
	return &Handler{
		tracer:    tracer,
		predictor: predictor,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.POST("/predict", h.Predict)
}
