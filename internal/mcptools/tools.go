package mcptools

import (
	"context"
	"errors"

	"btc-direction-predictor/internal/domain"
	"btc-direction-predictor/internal/service"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

const PredictToolName = "predict_price_direction"

var (
	errInvalidTimeFormat  = errors.New(domain.InvalidTimeFormatMessage)
	errInvalidTargetPrice = errors.New("target_price must be a positive number")
)

// Predictor is satisfied by *service.PredictionService.
type Predictor interface {
	Predict(ctx context.Context, req domain.PredictionRequest) (domain.PredictionResult, error)
}

type PredictInput struct {
	TargetPrice float64 `json:"target_price" jsonschema:"price level to compare against, must be positive"`
	TargetTime  string  `json:"target_time" jsonschema:"future UTC time formatted YYYY-MM-DD HH:MM"`
}

// NewServer returns an MCP server exposing the prediction as a single tool.
func NewServer(name, version string, predictor Predictor) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        PredictToolName,
		Description: "Linearly extrapolates the current price to target_time and reports whether it ends Above or Below target_price, with a distance-based confidence percentage.",
	}, PredictHandler(predictor))
	return server
}

// PredictHandler validates the tool input the same way POST /predict does.
func PredictHandler(predictor Predictor) mcp.ToolHandlerFor[PredictInput, domain.PredictionResult] {
	return func(ctx context.Context, req *mcp.CallToolRequest, in PredictInput) (*mcp.CallToolResult, domain.PredictionResult, error) {
		targetTime, err := domain.ParseTargetTime(in.TargetTime)
		if err != nil {
			return nil, domain.PredictionResult{}, errInvalidTimeFormat
		}
		if in.TargetPrice <= 0 {
			return nil, domain.PredictionResult{}, errInvalidTargetPrice
		}

		result, err := predictor.Predict(ctx, domain.PredictionRequest{
			TargetPrice: in.TargetPrice,
			TargetTime:  targetTime,
		})
		if errors.Is(err, service.ErrInvalidTargetPrice) {
			return nil, domain.PredictionResult{}, errInvalidTargetPrice
		}
		if err != nil {
			log.Error().Err(err).Str("tool", PredictToolName).Msg("prediction failed")
			return nil, domain.PredictionResult{}, err
		}
		return nil, result, nil
	}
}
