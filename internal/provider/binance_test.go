package provider

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func stubClient(status int, body string) *http.Client {
	return &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(bytes.NewReader([]byte(body))),
				Header:     make(http.Header),
			}, nil
		}),
	}
}

func TestBinanceProviderFetchPrice(t *testing.T) {
	t.Parallel()

	var gotPath, gotSymbol string
	client := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			gotPath = req.URL.Path
			gotSymbol = req.URL.Query().Get("symbol")
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"symbol":"BTCUSDT","price":"97123.45000000"}`)),
				Header:     make(http.Header),
			}, nil
		}),
	}

	p := NewBinanceProvider(testTracer, client, "http://example/", "btcusdt")
	price, err := p.FetchPrice(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 97123.45 {
		t.Fatalf("expected 97123.45, got %f", price)
	}
	if gotPath != "/api/v3/ticker/price" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotSymbol != "BTCUSDT" {
		t.Fatalf("unexpected symbol: %s", gotSymbol)
	}
}

func TestNewBinanceProviderDefaults(t *testing.T) {
	p := NewBinanceProvider(testTracer, nil, "", "")
	if p.baseURL != DefaultBaseURL {
		t.Fatalf("expected default base url, got %s", p.baseURL)
	}
	if p.Symbol() != "BTCUSDT" {
		t.Fatalf("expected default symbol, got %s", p.Symbol())
	}
	if p.client == nil || p.client.Timeout != defaultUpstreamTimeout {
		t.Fatalf("expected default client with timeout, got %+v", p.client)
	}
}

func TestNewHTTPClientTimeout(t *testing.T) {
	if got := NewHTTPClient(3 * time.Second).Timeout; got != 3*time.Second {
		t.Fatalf("expected 3s, got %v", got)
	}
	if got := NewHTTPClient(0).Timeout; got != defaultUpstreamTimeout {
		t.Fatalf("expected default timeout, got %v", got)
	}
}

func TestBinanceProviderFetchPriceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		kind   error
	}{
		{"server error", http.StatusInternalServerError, `{"code":-1}`, ErrNetwork},
		{"bad request", http.StatusBadRequest, `{"code":-1121,"msg":"Invalid symbol."}`, ErrNetwork},
		{"malformed json", http.StatusOK, `{"price":`, ErrParse},
		{"missing price", http.StatusOK, `{"symbol":"BTCUSDT"}`, ErrParse},
		{"numeric price field", http.StatusOK, `{"price":97000}`, ErrParse},
		{"non numeric price", http.StatusOK, `{"price":"abc"}`, ErrParse},
		{"zero price", http.StatusOK, `{"price":"0.00000000"}`, ErrParse},
		{"negative price", http.StatusOK, `{"price":"-1.5"}`, ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewBinanceProvider(testTracer, stubClient(tt.status, tt.body), "http://example", "BTCUSDT")
			_, err := p.FetchPrice(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) || fetchErr.Symbol != "BTCUSDT" {
				t.Fatalf("expected FetchError for BTCUSDT, got %#v", err)
			}
		})
	}
}

func TestBinanceProviderStatusError(t *testing.T) {
	p := NewBinanceProvider(testTracer, stubClient(http.StatusTeapot, "nope"), "http://example", "")
	_, err := p.FetchPrice(context.Background())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusTeapot || statusErr.Body != "nope" {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
}

func TestBinanceProviderTransportError(t *testing.T) {
	client := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}),
	}
	p := NewBinanceProvider(testTracer, client, "http://example", "")
	if _, err := p.FetchPrice(context.Background()); !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestBinanceProviderTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	p := NewBinanceProvider(testTracer, NewHTTPClient(20*time.Millisecond), srv.URL, "")

	start := time.Now()
	_, err := p.FetchPrice(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected network error on timeout, got %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Fatalf("fetch should stop at the client timeout")
	}
}

func TestBinanceProviderHonorsContext(t *testing.T) {
	client := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		}),
	}
	p := NewBinanceProvider(testTracer, client, "http://example", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.FetchPrice(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestParsePrice(t *testing.T) {
	tests := map[string]float64{
		"1":              1,
		"50000.00000000": 50000,
		" 0.5 ":          0.5,
	}
	for in, want := range tests {
		got, err := parsePrice(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %f, got %f", in, want, got)
		}
	}
}
