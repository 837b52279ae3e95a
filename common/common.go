package common

import (
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strings"

	"github.com/google/go-querystring/query"
)

// EncodeQuery encodes a url tagged parameter struct into a query string.
// Keys are emitted in struct field declaration order, with embedded structs
// flattened in place, rather than the alphabetical order url.Values.Encode
// produces. A nil pointer or a struct with every field omitted yields an
// empty string.
func EncodeQuery(params any) (string, error) {
	if params == nil {
		return "", nil
	}
	v := reflect.ValueOf(params)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return "", nil
	}
	values, err := query.Values(params)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", nil
	}

	var sb strings.Builder
	write := func(key string) {
		for _, val := range values[key] {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(url.QueryEscape(key))
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(val))
		}
		delete(values, key)
	}

	for _, key := range fieldOrder(v.Type()) {
		write(key)
	}
	// Keys contributed by custom encoders under names not found in the struct
	leftover := make([]string, 0, len(values))
	for key := range values {
		leftover = append(leftover, key)
	}
	slices.Sort(leftover)
	for _, key := range leftover {
		write(key)
	}
	return sb.String(), nil
}

// fieldOrder returns the url tag names of a struct type in declaration order
func fieldOrder(t reflect.Type) []string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.PkgPath != "" && !sf.Anonymous {
			continue
		}
		tag := sf.Tag.Get("url")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			ft := sf.Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if sf.Anonymous && ft.Kind() == reflect.Struct {
				keys = append(keys, fieldOrder(ft)...)
				continue
			}
			name = sf.Name
		}
		keys = append(keys, name)
	}
	return keys
}

// JoinErrors wraps a sentinel error with additional context
func JoinErrors(sentinel, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
