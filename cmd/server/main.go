package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"btc-direction-predictor/internal/config"
	"btc-direction-predictor/internal/handler"
	"btc-direction-predictor/internal/logger"
	"btc-direction-predictor/internal/provider"
	"btc-direction-predictor/internal/service"
	"btc-direction-predictor/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "btc-direction-predictor/docs"
)

var (
	loadEnvFunc          = godotenv.Load
	loadConfigFunc       = config.Load
	setupLoggerFunc      = logger.Setup
	initTracerFunc       = tracing.InitTracer
	newPriceProviderFunc = func(tracer trace.Tracer, cfg *config.Config) service.PriceProvider {
		client := provider.NewHTTPClient(cfg.UpstreamTimeout())
		return provider.NewBinanceProvider(tracer, client, cfg.BinanceBaseURL, cfg.Symbol)
	}
	newPredictionServiceFunc = service.NewPredictionService
	newHandlerFunc           = handler.New
	newRouterFunc            = gin.New
	setupSignalNotify        = signal.Notify
	waitForSignalFunc        = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc      = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc   = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           BTC Direction Predictor API
// @version         1.0
// @description     Linear extrapolation of the current BTCUSDT price against a target price and time.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()
	setupLoggerFunc(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracer")
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("error shutting down tracer provider")
		}
	}()

	priceProvider := newPriceProviderFunc(tracer, cfg)
	predictionService := newPredictionServiceFunc(tracer, priceProvider)
	h := newHandlerFunc(tracer, predictionService)

	r := newRouterFunc()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(tracing.ServiceName))
	r.Use(handler.RequestID(), handler.AccessLog())

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		log.Info().
			Str("addr", cfg.HTTPAddr).
			Str("symbol", cfg.Symbol).
			Dur("upstream_timeout", cfg.UpstreamTimeout()).
			Msg("starting HTTP server")
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Info().Msg("shutting down server")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
