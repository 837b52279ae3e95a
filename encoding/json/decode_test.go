package json

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBadColour = errors.New("bad colour")

type colour string

func (c *colour) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"RED"`, `"GREEN"`:
		*c = colour(data[1 : len(data)-1])
		return nil
	}
	return fmt.Errorf("%w: %s", errBadColour, data)
}

type pair struct {
	Left  int64
	Right string
}

func (p *pair) UnmarshalJSON(data []byte) error {
	var raw []RawMessage
	if err := Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return &IndexError{Index: min(len(raw), 2), Err: errors.New("wrong arity")}
	}
	if err := Unmarshal(raw[0], &p.Left); err != nil {
		return &IndexError{Index: 0, Err: err}
	}
	if err := Unmarshal(raw[1], &p.Right); err != nil {
		return &IndexError{Index: 1, Err: err}
	}
	return nil
}

type wrapped struct {
	Inner inner
}

func (w *wrapped) UnmarshalJSON(data []byte) error {
	return Decode(data, &w.Inner)
}

type inner struct {
	Count int `json:"count"`
}

type document struct {
	Name    string            `json:"name"`
	Items   []item            `json:"items"`
	Pairs   [][]pair          `json:"pairs"`
	Lookup  map[string]colour `json:"lookup"`
	Wrapped *wrapped          `json:"wrapped"`
	Ignored int               `json:"-"`
	embedded
}

type embedded struct {
	Extra int `json:"extra"`
}

type item struct {
	ID      int64    `json:"id"`
	Colours []colour `json:"colours"`
}

func TestDecode(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		input string
		path  string
		err   error
	}{
		"enum in nested list":     {input: `{"items":[{"id":1,"colours":["RED"]},{"id":2,"colours":["GREEN","BLUE"]}]}`, path: "items[1].colours[1]", err: errBadColour},
		"wrong scalar type":       {input: `{"name":"a","items":[{"id":"x"}]}`, path: "items[0].id"},
		"positional element":      {input: `{"pairs":[[[1,"a"]],[[2,"b"],[3,4]]]}`, path: "pairs[1][1][1]"},
		"positional arity":        {input: `{"pairs":[[[1]]]}`, path: "pairs[0][0][1]"},
		"map value":               {input: `{"lookup":{"sky":"BLUE"}}`, path: "lookup.sky", err: errBadColour},
		"nested decode error":     {input: `{"wrapped":{"count":"many"}}`, path: "wrapped.count"},
		"embedded field":          {input: `{"extra":"x"}`, path: "extra"},
		"case insensitive field":  {input: `{"ITEMS":[{"ID":true}]}`, path: "ITEMS[0].ID"},
		"escaped string value ok": {input: `{"name":"a\"b","items":[{"id":"y"}]}`, path: "items[0].id"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var d document
			err := Decode([]byte(tc.input), &d)
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.path, de.PathString())
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestDecodeSuccess(t *testing.T) {
	t.Parallel()
	var d document
	require.NoError(t, Decode([]byte(`{"name":"a","items":[{"id":1,"colours":["RED"]}],"pairs":[[[1,"x"]]],"extra":3}`), &d))
	assert.Equal(t, "a", d.Name)
	require.Len(t, d.Items, 1)
	assert.Equal(t, colour("RED"), d.Items[0].Colours[0])
	assert.Equal(t, pair{Left: 1, Right: "x"}, d.Pairs[0][0])
	assert.Equal(t, 3, d.Extra)
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()
	var d document
	err := Decode([]byte(`{"name":"x"`), &d)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Empty(t, de.Path)
	var syntax *SyntaxError
	assert.ErrorAs(t, err, &syntax)

	assert.Error(t, Decode([]byte(`{}`), d), "non pointer targets must be rejected")
}

func TestDecodeErrorString(t *testing.T) {
	t.Parallel()
	e := &DecodeError{Path: []string{"symbols", "[0]", "orderTypes", "[2]"}, Err: errBadColour}
	assert.Equal(t, "symbols[0].orderTypes[2]: bad colour", e.Error())
	assert.Equal(t, "bad colour", (&DecodeError{Err: errBadColour}).Error())
	assert.Equal(t, "index 3: bad colour", (&IndexError{Index: 3, Err: errBadColour}).Error())
}
