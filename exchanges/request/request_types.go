package request

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

const userAgent = "User-Agent"

// Public request errors
var (
	ErrTransport          = errors.New("transport failure")
	ErrRequestSystemIsNil = errors.New("request system is nil")
	ErrDelayNotAllowed    = errors.New("delay not allowed")
)

// Requester struct for the request client
type Requester struct {
	httpClient   *http.Client
	name         string
	userAgent    string
	limiter      *rate.Limiter
	registerer   prometheus.Registerer
	usageHeaders []string
	metrics      *metrics
}

// Item is a temp item for requests
type Item struct {
	Method  string
	Path    string
	Headers map[string]string
	// Endpoint labels the request in logs and metrics, Path is used when empty
	Endpoint string
	// Result is decoded from a successful response body when not nil
	Result any
	// HeaderResponse receives the response headers, including on non 2xx
	// responses
	HeaderResponse *http.Header
	Verbose        bool
	HTTPDebugging  bool
}

// Generate defines a closure for functionality outside of the requester to
// generate new *http.Request on every attempt.
type Generate func() (*Item, error)

// RequesterOption is a function option that can be applied to configure a Requester when creating it.
type RequesterOption func(*Requester)

// HTTPError is returned when the server responds with a non 2xx status code
type HTTPError struct {
	Requester  string
	StatusCode int
	Status     string
	Body       []byte
	Header     http.Header
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s unsuccessful HTTP status code: %d raw response: %s", e.Requester, e.StatusCode, e.Body)
}
