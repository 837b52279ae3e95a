package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

var (
	unmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	errStopWalk     = errors.New("stop walk")
)

// DecodeError is returned by Decode. Path holds the field names and
// bracketed array indices leading to the first value that failed to decode,
// it is empty when the document itself is malformed.
type DecodeError struct {
	Path []string
	Err  error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	p := e.PathString()
	if p == "" {
		return e.Err.Error()
	}
	return p + ": " + e.Err.Error()
}

// Unwrap returns the underlying decode error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PathString renders Path as dotted field names with indices in brackets,
// e.g. symbols[0].orderTypes[2]
func (e *DecodeError) PathString() string {
	var sb strings.Builder
	for _, p := range e.Path {
		if sb.Len() > 0 && !strings.HasPrefix(p, "[") {
			sb.WriteByte('.')
		}
		sb.WriteString(p)
	}
	return sb.String()
}

// IndexError is returned by positional array decoders to identify the
// element that failed. Decode folds the index into the reported path.
type IndexError struct {
	Index int
	Err   error
}

// Error implements the error interface
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d: %v", e.Index, e.Err)
}

// Unwrap returns the element error
func (e *IndexError) Unwrap() error {
	return e.Err
}

// Decode unmarshals data into v. Any failure is returned as a *DecodeError
// carrying the path to the first offending value.
func Decode(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	var invalid *json.InvalidUnmarshalError
	if errors.As(err, &invalid) {
		return err
	}
	path, cause := locate(data, reflect.TypeOf(v).Elem(), nil)
	if cause == nil {
		path, cause = nil, err
	}
	return &DecodeError{Path: path, Err: cause}
}

// locate decodes data into a fresh value of type t. When that fails it walks
// the document alongside the type to find the deepest failing value.
func locate(data []byte, t reflect.Type, path []string) ([]string, error) {
	err := json.Unmarshal(data, reflect.New(t).Interface())
	if err == nil {
		return nil, nil
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return unwrapPositional(path, err)
	}

	var (
		found []string
		cause error
	)
	switch t.Kind() {
	case reflect.Struct:
		fields := jsonFields(t)
		_ = jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
			f, ok := matchField(fields, string(key))
			if !ok {
				return nil
			}
			if found, cause = locate(rawValue(value, dataType), f.typ, appendPath(path, string(key))); cause != nil {
				return errStopWalk
			}
			return nil
		})
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			break
		}
		_ = jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
			if found, cause = locate(rawValue(value, dataType), t.Elem(), appendPath(path, string(key))); cause != nil {
				return errStopWalk
			}
			return nil
		})
	case reflect.Slice, reflect.Array:
		i := 0
		_, _ = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
			if cause == nil {
				found, cause = locate(rawValue(value, dataType), t.Elem(), appendPath(path, indexElement(i)))
			}
			i++
		})
	}
	if cause != nil {
		return found, cause
	}
	return path, err
}

// unwrapPositional extends the path with the location reported by a custom
// decoder, outermost first
func unwrapPositional(path []string, err error) ([]string, error) {
	switch e := err.(type) {
	case *DecodeError:
		return unwrapPositional(append(slices.Clip(path), e.Path...), e.Err)
	case *IndexError:
		return unwrapPositional(appendPath(path, indexElement(e.Index)), e.Err)
	}
	return path, err
}

type jsonField struct {
	name string
	typ  reflect.Type
}

func jsonFields(t reflect.Type) []jsonField {
	fields := make([]jsonField, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if sf.Anonymous && name == "" {
			ft := sf.Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				fields = append(fields, jsonFields(ft)...)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, jsonField{name: name, typ: sf.Type})
	}
	return fields
}

// matchField follows encoding/json matching, exact name first then case
// insensitive
func matchField(fields []jsonField, key string) (jsonField, bool) {
	for i := range fields {
		if fields[i].name == key {
			return fields[i], true
		}
	}
	for i := range fields {
		if strings.EqualFold(fields[i].name, key) {
			return fields[i], true
		}
	}
	return jsonField{}, false
}

// rawValue restores the quotes jsonparser strips from string values
func rawValue(value []byte, dataType jsonparser.ValueType) []byte {
	if dataType != jsonparser.String {
		return value
	}
	quoted := make([]byte, 0, len(value)+2)
	quoted = append(quoted, '"')
	quoted = append(quoted, value...)
	return append(quoted, '"')
}

func appendPath(path []string, elem string) []string {
	return append(slices.Clip(path), elem)
}

func indexElement(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
