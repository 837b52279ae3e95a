package mock

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"

	"github.com/thrasher-corp/binancespot/encoding/json"
)

const noMatchBody = `{"code":-1000,"msg":"no mock response matches the request"}`

var (
	errNoRoutes      = errors.New("mock file holds no routes")
	errFilePathUnset = errors.New("mock file path unset")
	errInvalidQuery  = errors.New("invalid mock query string")
)

// VCRMock holds canned responses keyed by path then HTTP method
type VCRMock struct {
	Routes map[string]map[string][]HTTPResponse `json:"routes"`
}

// HTTPResponse is a canned response returned when a request carries exactly
// QueryString
type HTTPResponse struct {
	QueryString string            `json:"queryString"`
	StatusCode  int               `json:"statusCode,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Data        json.RawMessage   `json:"data"`
}

// NewVCRServer starts a server replaying the mock file at path. The caller
// must close the returned server.
func NewVCRServer(path string) (*httptest.Server, error) {
	if path == "" {
		return nil, errFilePathUnset
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m VCRMock
	if err := json.Unmarshal(contents, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewServer(m)
}

// NewServer starts a server replaying m. Unmatched requests are answered
// with 404 and an exchange style error envelope.
func NewServer(m VCRMock) (*httptest.Server, error) {
	if len(m.Routes) == 0 {
		return nil, errNoRoutes
	}
	for path, methods := range m.Routes {
		for method, responses := range methods {
			for i := range responses {
				if _, err := url.ParseQuery(responses[i].QueryString); err != nil {
					return nil, fmt.Errorf("%w %s %s: %w", errInvalidQuery, method, path, err)
				}
			}
		}
	}
	return httptest.NewServer(m.handler()), nil
}

func (m VCRMock) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, ok := m.match(r)
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(noMatchBody))
			return
		}
		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		if resp.StatusCode != 0 {
			w.WriteHeader(resp.StatusCode)
		}
		_, _ = w.Write(resp.Data)
	})
}

func (m VCRMock) match(r *http.Request) (HTTPResponse, bool) {
	for _, resp := range m.Routes[r.URL.Path][r.Method] {
		want, _ := url.ParseQuery(resp.QueryString)
		if MatchURLVals(want, r.URL.Query()) {
			return resp, true
		}
	}
	return HTTPResponse{}, false
}
