package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"btc-direction-predictor/internal/config"
	"btc-direction-predictor/internal/logger"
	"btc-direction-predictor/internal/mcptools"
	"btc-direction-predictor/internal/provider"
	"btc-direction-predictor/internal/service"
	"btc-direction-predictor/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initTracerFunc = tracing.InitTracer
	runServerFunc  = func(ctx context.Context, server *mcp.Server) error {
		return server.Run(ctx, &mcp.StdioTransport{})
	}
)

// Serves the prediction tool over stdio. Stdout carries the protocol, so
// logs go to stderr.
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()
	logger.SetupWithWriter(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracer")
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("error shutting down tracer provider")
		}
	}()

	client := provider.NewHTTPClient(cfg.UpstreamTimeout())
	priceProvider := provider.NewBinanceProvider(tracer, client, cfg.BinanceBaseURL, cfg.Symbol)
	predictionService := service.NewPredictionService(tracer, priceProvider)

	server := mcptools.NewServer(tracing.ServiceName, tracing.ServiceVersion, predictionService)

	log.Info().Str("symbol", priceProvider.Symbol()).Msg("serving MCP over stdio")
	if err := runServerFunc(ctx, server); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("mcp server stopped")
	}
}
