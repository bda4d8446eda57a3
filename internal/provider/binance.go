package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"btc-direction-predictor/internal/domain"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the public Binance REST API.
const DefaultBaseURL = "https://api.binance.com"

const defaultUpstreamTimeout = 10 * time.Second

// BinanceProvider quotes the last traded price of a single symbol from the
// Binance public ticker endpoint. It performs exactly one request per call.
type BinanceProvider struct {
	client  *http.Client
	baseURL string
	symbol  string
	tracer  trace.Tracer
}

// NewHTTPClient builds the outbound client shared by the provider.
// A non-positive timeout falls back to 10 seconds.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}
	return &http.Client{Timeout: timeout}
}

// NewBinanceProvider creates a provider for symbol. Empty baseURL or symbol
// select the public API and BTCUSDT.
func NewBinanceProvider(tracer trace.Tracer, client *http.Client, baseURL, symbol string) *BinanceProvider {
	if client == nil {
		client = NewHTTPClient(defaultUpstreamTimeout)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		symbol = domain.DefaultSymbol
	}
	return &BinanceProvider{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		symbol:  symbol,
		tracer:  tracer,
	}
}

// Symbol returns the trading pair this provider quotes.
func (p *BinanceProvider) Symbol() string {
	return p.symbol
}

// FetchPrice returns the current price. Errors are *FetchError values
// matching ErrNetwork or ErrParse.
func (p *BinanceProvider) FetchPrice(ctx context.Context) (float64, error) {
	ctx, span := p.tracer.Start(ctx, "binance.fetch-price")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", p.symbol))

	price, err := p.fetchPrice(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch price failed")
		return 0, err
	}
	span.SetAttributes(attribute.Float64("price", price))
	return price, nil
}

func (p *BinanceProvider) fetchPrice(ctx context.Context) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", p.baseURL, url.QueryEscape(p.symbol))

	body, err := p.doRequest(ctx, endpoint)
	if err != nil {
		return 0, &FetchError{Symbol: p.symbol, Kind: ErrNetwork, Err: err}
	}

	// Response shape: {"symbol": "BTCUSDT", "price": "97000.12000000"}
	var raw struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, &FetchError{Symbol: p.symbol, Kind: ErrParse, Err: err}
	}

	price, err := parsePrice(raw.Price)
	if err != nil {
		return 0, &FetchError{Symbol: p.symbol, Kind: ErrParse, Err: err}
	}
	return price, nil
}

func (p *BinanceProvider) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return io.ReadAll(resp.Body)
}

// parsePrice converts the ticker's decimal string into a positive float.
func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("missing price field")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("price %q is not numeric: %w", s, err)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("price %q is not positive", s)
	}
	return d.InexactFloat64(), nil
}
