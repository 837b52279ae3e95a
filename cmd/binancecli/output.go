package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/thrasher-corp/binancespot/encoding/json"
	"github.com/thrasher-corp/binancespot/exchanges/binance"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUnsupportedFormat = errors.New("unsupported output format")

func validFormat(f string) bool {
	return f == formatJSON || f == formatYAML
}

// writeOutput renders v to w. YAML is produced from the JSON encoding so
// that field names and value formatting match the JSON output.
func writeOutput(w io.Writer, format string, v any) error {
	j, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		return err
	}
	switch format {
	case formatJSON:
		_, err = fmt.Fprintln(w, string(j))
		return err
	case formatYAML:
		d := json.NewDecoder(bytes.NewReader(j))
		d.UseNumber()
		var generic any
		if err := d.Decode(&generic); err != nil {
			return err
		}
		y, err := yaml.Marshal(yamlNumbers(generic))
		if err != nil {
			return err
		}
		_, err = w.Write(y)
		return err
	}
	return fmt.Errorf("%w: %q", errUnsupportedFormat, format)
}

// yamlNumber keeps the JSON text of a number and emits it as a plain YAML
// int or float scalar
type yamlNumber json.Number

// MarshalYAML implements yaml.Marshaler
func (n yamlNumber) MarshalYAML() (any, error) {
	tag := "!!int"
	if strings.ContainsAny(string(n), ".eE") {
		tag = "!!float"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(n)}, nil
}

// yamlNumbers replaces every json.Number in a decoded document with a
// yamlNumber, yaml.v3 would otherwise quote them as strings
func yamlNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		return yamlNumber(val)
	case map[string]any:
		for k, e := range val {
			val[k] = yamlNumbers(e)
		}
	case []any:
		for i, e := range val {
			val[i] = yamlNumbers(e)
		}
	}
	return v
}

// printUsage writes the rate limit usage reported by the exchange
func printUsage(w io.Writer, au aurora.Aurora, h binance.Headers) {
	usage := func(label string, m map[string]uint64) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%v %s: %v\n", au.Cyan(label), k, au.Bold(m[k]))
		}
	}
	usage("used weight", h.UsedWeight)
	usage("order count", h.OrderCount)
	if h.RetryAfter != nil {
		fmt.Fprintf(w, "%v %ds\n", au.Yellow("retry after"), *h.RetryAfter)
	}
}

// printAPIError writes the documented meaning of an exchange error code to w
// with its back off hint
func printAPIError(w io.Writer, au aurora.Aurora, err *binance.APIError) {
	fmt.Fprintf(w, "%v %d: %s\n", au.Red("code"), int(err.Code), err.Code.Message())
	if err.RetryAfter != nil {
		fmt.Fprintf(w, "%v %ds\n", au.Yellow("retry after"), *err.RetryAfter)
	}
}

// render prints the usage headers to the error writer and the result to the
// output writer
func render[T any](c *cli.Context, resp *binance.Response[T], err error) error {
	if err != nil {
		var apiErr *binance.APIError
		if errors.As(err, &apiErr) {
			printAPIError(c.App.ErrWriter, colours(), apiErr)
		}
		return err
	}
	printUsage(c.App.ErrWriter, colours(), resp.Headers)
	return writeOutput(c.App.Writer, outputFormat, resp.Result)
}
