//go:build !mock_test_off

// This will build if build tag mock_test_off is not parsed and will run all
// tests in _test.go against the recorded responses in testdata
package binance

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/thrasher-corp/binancespot/exchanges/mock"
)

var mockTests = true

func TestMain(m *testing.M) {
	s, err := mock.NewVCRServer(filepath.Join("testdata", "http.json"))
	if err != nil {
		log.Fatalf("Binance mock server error: %s", err)
	}

	e, err = New(Config{BaseURL: s.URL, HTTPClient: s.Client()})
	if err != nil {
		log.Fatalf("Binance New error: %s", err)
	}

	code := m.Run()
	s.Close()
	os.Exit(code)
}
