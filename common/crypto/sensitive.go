package crypto

import (
	"crypto/subtle"
	"fmt"
)

// Redacted is printed in place of a sensitive value
const Redacted = "REDACTED"

// SensitiveString holds a credential. Every printable representation of it
// is Redacted, the underlying value is only available through Expose.
// Values are comparable with == on their real content.
type SensitiveString struct {
	value string
}

// NewSensitiveString wraps a credential
func NewSensitiveString[T ~string | ~[]byte](v T) SensitiveString {
	return SensitiveString{value: string(v)}
}

// Expose returns the underlying value
func (s SensitiveString) Expose() string {
	return s.value
}

// IsEmpty returns true if no value is held
func (s SensitiveString) IsEmpty() bool {
	return s.value == ""
}

// Equal compares the underlying values in constant time
func (s SensitiveString) Equal(other SensitiveString) bool {
	return subtle.ConstantTimeCompare([]byte(s.value), []byte(other.value)) == 1
}

// String implements fmt.Stringer
func (s SensitiveString) String() string {
	return Redacted
}

// GoString implements fmt.GoStringer for %#v
func (s SensitiveString) GoString() string {
	return Redacted
}

// Format implements fmt.Formatter so that no verb, including %x and %q,
// can reach the underlying value
func (s SensitiveString) Format(f fmt.State, verb rune) {
	if verb == 'q' {
		_, _ = fmt.Fprintf(f, "%q", Redacted)
		return
	}
	_, _ = f.Write([]byte(Redacted))
}

// MarshalText implements encoding.TextMarshaler
func (s SensitiveString) MarshalText() ([]byte, error) {
	return []byte(Redacted), nil
}

// MarshalJSON implements json.Marshaler
func (s SensitiveString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Redacted + `"`), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and stores the raw value
func (s *SensitiveString) UnmarshalText(text []byte) error {
	s.value = string(text)
	return nil
}
