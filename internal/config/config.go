package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"btc-direction-predictor/internal/domain"
	"btc-direction-predictor/internal/provider"

	"github.com/rs/zerolog/log"
)

type Config struct {
	HTTPAddr string

	BinanceBaseURL      string
	Symbol              string
	UpstreamTimeoutSecs int

	LogLevel  string
	LogFormat string
}

// UpstreamTimeout is the bound applied to every outbound price request.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSecs) * time.Second
}

func Load() *Config {
	cfg := &Config{}

	cfg.HTTPAddr = strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	cfg.BinanceBaseURL = strings.TrimSpace(os.Getenv("BINANCE_BASE_URL"))
	if cfg.BinanceBaseURL == "" {
		cfg.BinanceBaseURL = provider.DefaultBaseURL
	}

	cfg.Symbol = strings.ToUpper(strings.TrimSpace(os.Getenv("PREDICT_SYMBOL")))
	if cfg.Symbol == "" {
		cfg.Symbol = domain.DefaultSymbol
	}

	cfg.UpstreamTimeoutSecs = 10
	if v := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.UpstreamTimeoutSecs = n
		} else {
			log.Warn().Str("value", v).Msg("invalid UPSTREAM_TIMEOUT_SECS, defaulting to 10")
		}
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT")))
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		log.Warn().Str("value", cfg.LogFormat).Msg("unsupported LOG_FORMAT, defaulting to console")
		cfg.LogFormat = "console"
	}

	return cfg
}
