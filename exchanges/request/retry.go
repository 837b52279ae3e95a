package request

import (
	"net/http"
	"strconv"
	"strings"
)

// RetryAfterHeader is the response header carrying the server's back off hint
const RetryAfterHeader = "Retry-After"

// RetryAfter returns the Retry-After hint in whole seconds. The second return
// value is false when the header is absent or is not a non-negative integer,
// HTTP-date values are not interpreted.
func RetryAfter(h http.Header) (uint64, bool) {
	v := strings.TrimSpace(h.Get(RetryAfterHeader))
	if v == "" {
		return 0, false
	}
	secs, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return secs, true
}
