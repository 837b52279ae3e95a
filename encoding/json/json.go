// Package json is the JSON codec used across the module. It forwards to the
// standard library and adds Decode, which reports where in a document a
// decode failed.
package json

import "encoding/json"

// Implementation forwards
var (
	Marshal       = json.Marshal
	MarshalIndent = json.MarshalIndent
	Unmarshal     = json.Unmarshal
	NewDecoder    = json.NewDecoder
	NewEncoder    = json.NewEncoder
	Valid         = json.Valid
)

type (
	// RawMessage is a raw encoded JSON value
	RawMessage = json.RawMessage
	// Marshaler is implemented by types that can marshal themselves into valid JSON
	Marshaler = json.Marshaler
	// Unmarshaler is implemented by types that can unmarshal a JSON description of themselves
	Unmarshaler = json.Unmarshaler
	// UnmarshalTypeError describes a JSON value that was not appropriate for a value of a specific Go type
	UnmarshalTypeError = json.UnmarshalTypeError
	// Number is a JSON number literal kept as text
	Number = json.Number
	// SyntaxError is a description of a JSON syntax error
	SyntaxError = json.SyntaxError
)
