package types

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime(t *testing.T) {
	t.Parallel()
	var testTime Time

	for _, zero := range []string{`0`, `""`, `"0"`, `null`} {
		require.NoError(t, json.Unmarshal([]byte(zero), &testTime))
		assert.True(t, testTime.IsZero(), zero)
	}

	require.NoError(t, json.Unmarshal([]byte(`1499040000000`), &testTime))
	assert.Equal(t, time.UnixMilli(1499040000000), testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`"1628736847325"`), &testTime))
	assert.Equal(t, time.UnixMilli(1628736847325), testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`1628736847325123`), &testTime))
	assert.Equal(t, time.UnixMicro(1628736847325123), testTime.Time())

	assert.Error(t, json.Unmarshal([]byte(`"abcdefg"`), &testTime))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &testTime))
}

func TestTimeMarshalJSON(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(NewTime(time.UnixMilli(1499644799999)))
	require.NoError(t, err)
	assert.Equal(t, `1499644799999`, string(b))

	b, err = json.Marshal(Time{})
	require.NoError(t, err)
	assert.Equal(t, `0`, string(b))

	var back Time
	require.NoError(t, json.Unmarshal([]byte(`1499644799999`), &back))
	assert.Equal(t, int64(1499644799999), back.UnixMilli())
}

func TestTimeEncodeValues(t *testing.T) {
	t.Parallel()
	v := url.Values{}
	require.NoError(t, Time{}.EncodeValues("startTime", &v))
	assert.Empty(t, v)

	require.NoError(t, NewTime(time.UnixMilli(1499040000000)).EncodeValues("startTime", &v))
	assert.Equal(t, "1499040000000", v.Get("startTime"))
}
