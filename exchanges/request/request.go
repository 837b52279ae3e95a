package request

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/thrasher-corp/binancespot/encoding/json"
	"github.com/thrasher-corp/binancespot/log"
)

var (
	errHTTPClientIsNil        = errors.New("http client is nil")
	errRequestFunctionIsNil   = errors.New("request function is nil")
	errServiceNameUnset       = errors.New("service name unset")
	errRequestItemNil         = errors.New("request item is nil")
	errInvalidPath            = errors.New("invalid path")
	errHeaderResponseMapIsNil = errors.New("header response map is nil")
)

// New returns a new Requester
func New(name string, httpRequester *http.Client, opts ...RequesterOption) (*Requester, error) {
	if name == "" {
		return nil, errServiceNameUnset
	}
	if httpRequester == nil {
		return nil, errHTTPClientIsNil
	}

	r := &Requester{
		httpClient: httpRequester,
		name:       name,
	}

	for _, o := range opts {
		o(r)
	}

	if r.registerer != nil {
		m, err := newMetrics(r.name, r.registerer)
		if err != nil {
			return nil, err
		}
		r.metrics = m
	}

	return r, nil
}

// WithUserAgent sets the User-Agent header on every request that does not
// set one itself
func WithUserAgent(ua string) RequesterOption {
	return func(r *Requester) {
		r.userAgent = ua
	}
}

// Name returns the requester name
func (r *Requester) Name() string {
	return r.name
}

// SendPayload handles sending HTTP/HTTPS requests. A single attempt is made,
// no retries are performed.
func (r *Requester) SendPayload(ctx context.Context, newRequest Generate) error {
	if r == nil {
		return ErrRequestSystemIsNil
	}

	if newRequest == nil {
		return errRequestFunctionIsNil
	}

	if err := r.waitForLimiter(ctx); err != nil {
		return err
	}

	p, err := newRequest()
	if err != nil {
		return err
	}

	return r.doRequest(ctx, p)
}

// validateRequest validates the requester item fields
func (i *Item) validateRequest(ctx context.Context, r *Requester) (*http.Request, error) {
	if r == nil {
		return nil, ErrRequestSystemIsNil
	}

	if i == nil {
		return nil, errRequestItemNil
	}

	if i.Path == "" {
		return nil, errInvalidPath
	}

	if i.HeaderResponse != nil && *i.HeaderResponse == nil {
		return nil, errHeaderResponseMapIsNil
	}

	req, err := http.NewRequestWithContext(ctx, i.Method, i.Path, http.NoBody)
	if err != nil {
		return nil, err
	}

	for k, v := range i.Headers {
		req.Header.Add(k, v)
	}

	if r.userAgent != "" && req.Header.Get(userAgent) == "" {
		req.Header.Add(userAgent, r.userAgent)
	}

	if i.HTTPDebugging {
		// Err not evaluated due to validation check above
		dump, _ := httputil.DumpRequestOut(req, false)
		log.Debugf(log.RequestSys, "DumpRequest:\n%s", dump)
	}

	return req, nil
}

func (r *Requester) doRequest(ctx context.Context, p *Item) error {
	req, err := p.validateRequest(ctx, r)
	if err != nil {
		return err
	}

	endpoint := p.Endpoint
	if endpoint == "" {
		endpoint = req.URL.Path
	}
	if endpoint == "" {
		endpoint = "/"
	}

	verbose := IsVerbose(ctx, p.Verbose)
	if verbose {
		log.Debugf(log.RequestSys, "%s request path: %s", r.name, p.Path)
		for k, d := range req.Header {
			log.Debugf(log.RequestSys, "%s request header [%s]: %s", r.name, k, d)
		}
		log.Debugf(log.RequestSys, "%s request type: %s", r.name, req.Method)
	}

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.metrics.observe(endpoint, 0, time.Since(start))
		return fmt.Errorf("%s %w: %w", r.name, ErrTransport, err)
	}
	defer resp.Body.Close()

	contents, err := io.ReadAll(resp.Body)
	r.metrics.observe(endpoint, resp.StatusCode, time.Since(start))
	if err != nil {
		return fmt.Errorf("%s %w: reading response body: %w", r.name, ErrTransport, err)
	}
	r.metrics.observeUsage(resp.Header, r.usageHeaders)

	if p.HeaderResponse != nil {
		for k, v := range resp.Header {
			(*p.HeaderResponse)[k] = v
		}
	}

	if p.HTTPDebugging {
		dump, err := httputil.DumpResponse(resp, false)
		if err != nil {
			log.Errorf(log.RequestSys, "DumpResponse invalid response: %v:", err)
		}
		log.Debugf(log.RequestSys, "DumpResponse Headers (%v):\n%s", p.Path, dump)
		log.Debugf(log.RequestSys, "DumpResponse Body (%v):\n %s", p.Path, contents)
	}

	if verbose {
		log.Debugf(log.RequestSys, "%s HTTP status: %s, Code: %v", r.name, resp.Status, resp.StatusCode)
		if !p.HTTPDebugging {
			log.Debugf(log.RequestSys, "%s raw response: %s", r.name, contents)
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &HTTPError{
			Requester:  r.name,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       contents,
			Header:     resp.Header.Clone(),
		}
	}

	if p.Result == nil {
		return nil
	}
	return json.Decode(contents, p.Result)
}
