package main

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/urfave/cli/v2"
)

var (
	errNotStructPointer  = errors.New("params must be a pointer to a struct")
	errDuplicateCLIField = errors.New("duplicate cli field name")
)

// cliField is a struct field tagged for use as a command flag
type cliField struct {
	name     string
	required bool
	index    []int
}

// cliFields returns the cli tagged fields of t, embedded untagged structs are
// flattened
func cliFields(t reflect.Type) []cliField {
	var fields []cliField
	for i := range t.NumField() {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("cli")
		if !ok {
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				for _, f := range cliFields(sf.Type) {
					f.index = append([]int{i}, f.index...)
					fields = append(fields, f)
				}
			}
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		fields = append(fields, cliField{name: name, required: opts == "required", index: []int{i}})
	}
	return fields
}

// FlagsFromStruct builds command flags from the cli tags of params. Field
// values become flag defaults, pointer fields have none. usage maps a flag
// name to its help text.
func FlagsFromStruct(params any, usage map[string]string) []cli.Flag {
	v := reflect.ValueOf(params)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		panic(errNotStructPointer)
	}
	v = v.Elem()
	fields := cliFields(v.Type())
	flags := make([]cli.Flag, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.name]; ok {
			panic(fmt.Sprintf("%v: %q", errDuplicateCLIField, f.name))
		}
		seen[f.name] = struct{}{}
		fv := v.FieldByIndex(f.index)
		u := usage[f.name]
		switch val := fv.Interface().(type) {
		case string:
			flags = append(flags, &cli.StringFlag{Name: f.name, Usage: u, Required: f.required, Value: val})
		case []string:
			var def *cli.StringSlice
			if len(val) > 0 {
				def = cli.NewStringSlice(val...)
			}
			flags = append(flags, &cli.StringSliceFlag{Name: f.name, Usage: u, Required: f.required, Value: def})
		case int64:
			flags = append(flags, &cli.Int64Flag{Name: f.name, Usage: u, Required: f.required, Value: val})
		case *int64:
			flags = append(flags, &cli.Int64Flag{Name: f.name, Usage: u, Required: f.required})
		case uint64:
			flags = append(flags, &cli.Uint64Flag{Name: f.name, Usage: u, Required: f.required, Value: val})
		case *uint64:
			flags = append(flags, &cli.Uint64Flag{Name: f.name, Usage: u, Required: f.required})
		case float64:
			flags = append(flags, &cli.Float64Flag{Name: f.name, Usage: u, Required: f.required, Value: val})
		case bool:
			flags = append(flags, &cli.BoolFlag{Name: f.name, Usage: u, Required: f.required, Value: val})
		case *bool:
			flags = append(flags, &cli.BoolFlag{Name: f.name, Usage: u, Required: f.required})
		default:
			panic(fmt.Sprintf("unsupported cli field %q of type %T", f.name, val))
		}
	}
	return flags
}

// unmarshalCLIFields populates params from the command flags. Pointer fields
// are only set when their flag was supplied.
func unmarshalCLIFields(c *cli.Context, params any) error {
	v := reflect.ValueOf(params)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errNotStructPointer
	}
	v = v.Elem()
	for _, f := range cliFields(v.Type()) {
		fv := v.FieldByIndex(f.index)
		switch fv.Interface().(type) {
		case string:
			fv.SetString(c.String(f.name))
		case []string:
			fv.Set(reflect.ValueOf(c.StringSlice(f.name)))
		case int64:
			fv.SetInt(c.Int64(f.name))
		case uint64:
			fv.SetUint(c.Uint64(f.name))
		case float64:
			fv.SetFloat(c.Float64(f.name))
		case bool:
			fv.SetBool(c.Bool(f.name))
		case *int64:
			if c.IsSet(f.name) {
				n := c.Int64(f.name)
				fv.Set(reflect.ValueOf(&n))
			}
		case *uint64:
			if c.IsSet(f.name) {
				n := c.Uint64(f.name)
				fv.Set(reflect.ValueOf(&n))
			}
		case *bool:
			if c.IsSet(f.name) {
				b := c.Bool(f.name)
				fv.Set(reflect.ValueOf(&b))
			}
		default:
			return fmt.Errorf("unsupported cli field %q of type %s", f.name, fv.Type())
		}
	}
	return nil
}
