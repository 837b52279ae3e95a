package types

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Time is an exchange timestamp carried on the wire as epoch milliseconds.
// It decodes from a JSON number or a quoted number; 16 digit values are
// treated as microseconds, which the exchange emits when a client opts into
// microsecond time units. The zero value means absent.
type Time time.Time

// NewTime converts a time.Time into an exchange timestamp
func NewTime(t time.Time) Time {
	return Time(t)
}

// UnmarshalJSON deserializes json, and timestamp information.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	switch s {
	case "null", "0", `""`, `"0"`:
		*t = Time(time.Time{})
		return nil
	}

	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into Time: %w", data, err)
	}

	if len(s) == 16 {
		*t = Time(time.UnixMicro(v))
		return nil
	}
	*t = Time(time.UnixMilli(v))
	return nil
}

// Time represents a time instance.
func (t Time) Time() time.Time { return time.Time(t) }

// IsZero returns true when the timestamp was absent
func (t Time) IsZero() bool { return t.Time().IsZero() }

// UnixMilli returns the timestamp in epoch milliseconds, 0 when absent
func (t Time) UnixMilli() int64 {
	if t.IsZero() {
		return 0
	}
	return t.Time().UnixMilli()
}

// String returns a string representation of the time.
func (t Time) String() string {
	return t.Time().String()
}

// MarshalJSON serializes the time to epoch milliseconds
func (t Time) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.UnixMilli(), 10), nil
}

// EncodeValues adds the timestamp to query values as epoch milliseconds,
// zero timestamps are omitted
func (t Time) EncodeValues(key string, v *url.Values) error {
	if t.IsZero() {
		return nil
	}
	v.Set(key, strconv.FormatInt(t.UnixMilli(), 10))
	return nil
}
