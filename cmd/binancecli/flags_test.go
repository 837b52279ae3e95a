package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type flagTestParams struct {
	Interval string `cli:"interval,required"`
	SymbolSelector
	Limit    *uint64 `cli:"limit"`
	FromID   *int64  `cli:"fromid"`
	Depth    uint64  `cli:"depth"`
	Offset   int64   `cli:"offset"`
	Price    float64 `cli:"price"`
	Show     *bool   `cli:"show"`
	Enabled  bool    `cli:"enabled"`
	Untagged string
}

func TestFlagsFromStruct(t *testing.T) {
	t.Parallel()
	flags := FlagsFromStruct(&flagTestParams{Interval: "1m", Price: 3.1415}, map[string]string{"price": "the price"})
	require.Len(t, flags, 10)
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, f.Names()[0])
	}
	assert.Equal(t, []string{"interval", "symbol", "symbols", "limit", "fromid", "depth", "offset", "price", "show", "enabled"}, names)

	sf, ok := flags[0].(*cli.StringFlag)
	require.True(t, ok)
	assert.True(t, sf.Required)
	assert.Equal(t, "1m", sf.Value)
	pf, ok := flags[7].(*cli.Float64Flag)
	require.True(t, ok)
	assert.Equal(t, "the price", pf.Usage)
	assert.Equal(t, 3.1415, pf.Value)

	assert.Panics(t, func() { FlagsFromStruct(flagTestParams{}, nil) })
	assert.Panics(t, func() {
		FlagsFromStruct(&struct {
			D chan int `cli:"d"`
		}{}, nil)
	})
	assert.PanicsWithValue(t, `duplicate cli field name: "symbol"`, func() {
		FlagsFromStruct(&struct {
			Symbol string `cli:"symbol"`
			SymbolSelector
		}{}, nil)
	}, "a reused flag name must be reported before urfave applies it")
}

func TestUnmarshalCLIFields(t *testing.T) {
	t.Parallel()
	type params struct {
		SymbolSelector
		Limit  *uint64 `cli:"limit"`
		FromID *int64  `cli:"fromid"`
		Depth  uint64  `cli:"depth"`
		Show   *bool   `cli:"show"`
	}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range FlagsFromStruct(&params{}, nil) {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse([]string{"--symbol", "ETHBTC", "--symbols", "A,B", "--limit", "5", "--depth", "7", "--show=false"}))
	c := cli.NewContext(cli.NewApp(), set, nil)

	var p params
	require.NoError(t, unmarshalCLIFields(c, &p))
	assert.Equal(t, "ETHBTC", p.Symbol)
	assert.Equal(t, []string{"A", "B"}, p.Symbols)
	require.NotNil(t, p.Limit)
	assert.Equal(t, uint64(5), *p.Limit)
	assert.Nil(t, p.FromID, "unset pointer flags must stay nil")
	assert.Equal(t, uint64(7), p.Depth)
	require.NotNil(t, p.Show)
	assert.False(t, *p.Show)

	assert.ErrorIs(t, unmarshalCLIFields(c, p), errNotStructPointer)
}
