package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/thrasher-corp/binancespot/common/crypto"
	"github.com/thrasher-corp/binancespot/config"
	"github.com/thrasher-corp/binancespot/exchanges/binance"
	"github.com/thrasher-corp/binancespot/log"
	"github.com/thrasher-corp/binancespot/signaler"
	"github.com/urfave/cli/v2"
)

var (
	configPath   string
	baseURL      string
	apiKey       string
	apiSecret    string
	timeout      time.Duration
	verbose      bool
	noColour     bool
	outputFormat string

	exch *binance.Exchange
)

func colours() aurora.Aurora {
	return aurora.NewAurora(!noColour)
}

// setupClient loads the config, applies flag overrides and builds the client
func setupClient(c *cli.Context) error {
	if !validFormat(outputFormat) {
		return fmt.Errorf("%w: %q", errUnsupportedFormat, outputFormat)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if c.IsSet("baseurl") {
		cfg.BaseURL = baseURL
	}
	if c.IsSet("apikey") {
		cfg.APIKey = crypto.NewSensitiveString(apiKey)
	}
	if c.IsSet("apisecret") {
		cfg.APISecret = crypto.NewSensitiveString(apiSecret)
	}
	if c.IsSet("timeout") {
		cfg.Timeout = timeout
	}
	if verbose {
		cfg.Verbose = true
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// stdout carries command output
	switch cfg.Logging.Output {
	case "console", "stdout":
		cfg.Logging.Output = "stderr"
	case "both":
		cfg.Logging.Output = "file|stderr"
	}
	if err := log.SetupGlobalLogger(&cfg.Logging); err != nil {
		return err
	}

	exch, err = cfg.NewExchange()
	return err
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "binancecli"
	app.EnableBashCompletion = true
	app.Usage = "command line interface for the Binance spot market data API"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "the config file to load, YAML, JSON or TOML",
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:        "baseurl",
			Value:       binance.APIURL,
			Usage:       "override the config base URL",
			Destination: &baseURL,
		},
		&cli.StringFlag{
			Name:        "apikey",
			Usage:       "override the config API key",
			Destination: &apiKey,
		},
		&cli.StringFlag{
			Name:        "apisecret",
			Usage:       "override the config API secret",
			Destination: &apiSecret,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "override the config HTTP timeout",
			Destination: &timeout,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "log requests and responses",
			Destination: &verbose,
		},
		&cli.BoolFlag{
			Name:        "nocolour",
			Aliases:     []string{"nocolor"},
			Usage:       "disable coloured rate limit output",
			Destination: &noColour,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Value:       formatJSON,
			Usage:       "the output format, json or yaml",
			Destination: &outputFormat,
		},
	}
	app.Before = setupClient
	app.After = func(*cli.Context) error {
		return log.CloseLogger()
	}
	app.Commands = []*cli.Command{
		pingCommand,
		serverTimeCommand,
		exchangeInfoCommand,
		depthCommand,
		tradesCommand,
		historicalTradesCommand,
		aggTradesCommand,
		klinesCommand,
		uiKlinesCommand,
		avgPriceCommand,
		ticker24hrCommand,
		tradingDayCommand,
		rollingTickerCommand,
		priceCommand,
		bookTickerCommand,
	}
	return app
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// Capture cancel for interrupt
		<-signaler.WaitForInterrupt()
		cancel()
		fmt.Fprintln(os.Stderr, "binancecli interrupted")
		os.Exit(1)
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
