package provider

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork covers transport failures, timeouts and non-200 responses.
	ErrNetwork = errors.New("network error")
	// ErrParse covers bodies without a well-formed positive price.
	ErrParse = errors.New("parse error")
)

// FetchError is returned by FetchPrice. It matches its Kind and the
// underlying cause with errors.Is.
type FetchError struct {
	Symbol string
	Kind   error
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s price: %v: %v", e.Symbol, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// StatusError represents a non-200 response from the exchange.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("binance API error %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}
