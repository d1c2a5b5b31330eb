package funcall

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
)

// Typed adapts a function taking a struct argument into a Func. The args
// map is round-tripped through JSON into T, so field matching follows
// encoding/json rules and json tags are respected. A decode failure is
// returned from the adapted Func and surfaces through Call as a CallError.
func Typed[T any](fn func(ctx context.Context, args T) (any, error)) Func {
	return func(ctx context.Context, args map[string]any) (any, error) {
		var v T
		if len(args) > 0 {
			data, err := json.Marshal(args)
			if err != nil {
				return nil, err
			}
			if err := json.Unmarshal(data, &v); err != nil {
				return nil, err
			}
		}
		return fn(ctx, v)
	}
}

// NewTyped starts a builder wrapping a struct-argument function via Typed.
// The function name is derived from fn, and at bind time every declared
// parameter must correspond to a JSON-visible field of T.
//
// Example:
//
//	type WeatherArgs struct {
//	    Location string `json:"location"`
//	    Unit     string `json:"unit"`
//	}
//
//	funcall.NewTyped(func(ctx context.Context, args WeatherArgs) (any, error) {
//	    return lookupWeather(args.Location, args.Unit)
//	}, "Get the current weather in a given location.").
//	    Param("location", funcall.String).
//	    Desc("location", "The city and state, e.g. San Francisco, CA").
//	    Required("location").
//	    Name("get_weather").
//	    BindTo(registry)
func NewTyped[T any](fn func(ctx context.Context, args T) (any, error), purpose string) *Builder {
	b := New(Typed(fn), purpose)
	b.name = funcName(fn)
	b.fields = fieldNames(reflect.TypeOf((*T)(nil)).Elem())
	return b
}

// NewReflected is NewTyped with the parameter declarations derived from T.
// Field names are taken from json tags and kinds from the Go types: strings
// map to String, integer types to Int, floats to Float, bools to Bool,
// slices and arrays to List, and maps and nested structs to Dict. Pointer
// fields declare the kind of their element.
//
// Only names and kinds are derived. Descriptions, enums, and the required
// list are declared with the usual builder calls, and binding validates the
// result exactly like hand-declared parameters. An Enum call replaces the
// reflected kind for that parameter.
//
// Example:
//
//	type WeatherArgs struct {
//	    Location string `json:"location"`
//	    Unit     string `json:"unit"`
//	}
//
//	funcall.NewReflected(func(ctx context.Context, args WeatherArgs) (any, error) {
//	    return lookupWeather(args.Location, args.Unit)
//	}, "Get the current weather in a given location.").
//	    Desc("location", "The city and state, e.g. San Francisco, CA").
//	    Enum("unit", "celsius", "fahrenheit").
//	    Desc("unit", "The temperature unit to use").
//	    Required("location").
//	    Name("get_weather").
//	    BindTo(registry)
func NewReflected[T any](fn func(ctx context.Context, args T) (any, error), purpose string) *Builder {
	b := NewTyped(fn, purpose)
	for _, p := range reflectParams(reflect.TypeOf((*T)(nil)).Elem()) {
		b.setParam(p)
	}
	return b
}

// reflectParams maps a struct's exported fields to parameter declarations
// in field order. Non-struct types yield nil.
func reflectParams(t reflect.Type) []ParameterSpec {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var params []ParameterSpec
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name == "" {
			name = f.Name
		}
		params = append(params, ParameterSpec{Name: name, Kind: kindOf(f.Type)})
	}
	return params
}

// kindOf maps a Go type to the closest parameter kind.
func kindOf(t reflect.Type) Kind {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Bool:
		return Bool
	case reflect.Slice, reflect.Array:
		return List
	case reflect.Map, reflect.Struct:
		return Dict
	default:
		return String
	}
}

// fieldNames collects the JSON-visible field names of a struct type.
// Non-struct types yield nil, which disables the parameter check.
func fieldNames(t reflect.Type) map[string]struct{} {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	fields := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name == "" {
			name = f.Name
		}
		fields[name] = struct{}{}
	}
	return fields
}
