package funcall

import (
	"maps"
	"reflect"
	"runtime"
	"slices"
	"strings"
)

// Builder accumulates descriptor metadata before binding. Create one with
// New, NewTyped, or NewReflected, declare parameters, then finish with
// BindTo or Bind.
// Validation is eager: BindTo checks everything before touching the
// registry, so a failed bind registers nothing.
//
// Example:
//
//	weather, err := funcall.New(getWeather, "Get the current weather in a given location.").
//	    Param("location", funcall.String).
//	    Desc("location", "The city and state, e.g. San Francisco, CA").
//	    Enum("unit", "celsius", "fahrenheit").
//	    Desc("unit", "The unit of temperature").
//	    Required("location").
//	    BindTo(registry)
type Builder struct {
	fn       Func
	name     string
	purpose  string
	params   []ParameterSpec
	desc     map[string]string
	required []string
	disabled bool
	fields   map[string]struct{} // typed-argument field names, nil skips the check
}

// New starts a builder wrapping fn. The function name is derived from the
// function value; anonymous functions should set one with Name.
func New(fn Func, purpose string) *Builder {
	b := &Builder{
		fn:      fn,
		purpose: strings.TrimSpace(purpose),
		desc:    make(map[string]string),
	}
	if fn != nil {
		b.name = funcName(fn)
	}
	return b
}

// Name overrides the derived function name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Param declares a primitive parameter of the given kind. Redeclaring a
// name replaces the earlier declaration in place.
func (b *Builder) Param(name string, kind Kind) *Builder {
	b.setParam(ParameterSpec{Name: name, Kind: kind})
	return b
}

// Enum declares a parameter restricted to the given literal values.
// Literals may be strings, bools, integers, or floats, mixed freely.
func (b *Builder) Enum(name string, literals ...any) *Builder {
	b.setParam(ParameterSpec{Name: name, Enum: append([]any{}, literals...)})
	return b
}

// Desc sets the description for a declared parameter. Every declared
// parameter must have a non-empty one.
func (b *Builder) Desc(name, description string) *Builder {
	b.desc[name] = description
	return b
}

// Required marks parameters the model must always supply.
func (b *Builder) Required(names ...string) *Builder {
	b.required = append(b.required, names...)
	return b
}

// Disabled binds the descriptor with the enabled flag initially off.
func (b *Builder) Disabled() *Builder {
	b.disabled = true
	return b
}

func (b *Builder) setParam(p ParameterSpec) {
	for i := range b.params {
		if b.params[i].Name == p.Name {
			b.params[i] = p
			return
		}
	}
	b.params = append(b.params, p)
}

// BindTo validates the metadata, constructs the descriptor, and registers
// it in r. Validation failures are *SchemaError wrapping a sentinel cause;
// a strict registry may additionally return *DuplicateError.
func (b *Builder) BindTo(r *Registry) (*Descriptor, error) {
	d, err := b.build()
	if err != nil {
		return nil, err
	}
	if err := r.Register(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Bind is BindTo on the package Default registry.
func (b *Builder) Bind() (*Descriptor, error) {
	return b.BindTo(Default)
}

// MustBindTo is like BindTo but panics on error.
func (b *Builder) MustBindTo(r *Registry) *Descriptor {
	d, err := b.BindTo(r)
	if err != nil {
		panic(err)
	}
	return d
}

// MustBind is like Bind but panics on error.
func (b *Builder) MustBind() *Descriptor {
	d, err := b.Bind()
	if err != nil {
		panic(err)
	}
	return d
}

func (b *Builder) build() (*Descriptor, error) {
	if b.fn == nil {
		return nil, &SchemaError{Func: b.name, Err: ErrNilFunction}
	}
	if b.purpose == "" {
		return nil, &SchemaError{Func: b.name, Err: ErrEmptyPurpose}
	}
	if b.name == "" {
		return nil, &SchemaError{Err: ErrEmptyName}
	}

	declared := make(map[string]bool, len(b.params))
	params := make([]ParameterSpec, len(b.params))
	for i, p := range b.params {
		declared[p.Name] = true
		if p.Enumerated() {
			if len(p.Enum) == 0 {
				return nil, &SchemaError{Func: b.name, Param: p.Name, Err: ErrEmptyEnum}
			}
			for _, lit := range p.Enum {
				if !validLiteral(lit) {
					return nil, &SchemaError{Func: b.name, Param: p.Name, Err: ErrBadLiteral}
				}
			}
		} else if !p.Kind.Valid() {
			return nil, &SchemaError{Func: b.name, Param: p.Name, Err: ErrBadKind}
		}
		if b.desc[p.Name] == "" {
			return nil, &SchemaError{Func: b.name, Param: p.Name, Err: ErrNoDescription}
		}
		p.Description = b.desc[p.Name]
		params[i] = p
	}

	for _, name := range slices.Sorted(maps.Keys(b.desc)) {
		if !declared[name] {
			return nil, &SchemaError{Func: b.name, Param: name, Err: ErrStrayDescription}
		}
	}
	for _, name := range b.required {
		if !declared[name] {
			return nil, &SchemaError{Func: b.name, Param: name, Err: ErrUnknownRequired}
		}
	}
	if b.fields != nil {
		for _, p := range params {
			if _, ok := b.fields[p.Name]; !ok {
				return nil, &SchemaError{Func: b.name, Param: p.Name, Err: ErrUnknownParameter}
			}
		}
	}

	for _, name := range b.required {
		for i := range params {
			if params[i].Name == name {
				params[i].Required = true
			}
		}
	}

	d := &Descriptor{
		name:    b.name,
		purpose: b.purpose,
		params:  params,
		fn:      b.fn,
	}
	d.enabled.Store(!b.disabled)
	return d, nil
}

func validLiteral(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// funcName derives a registration name from a func value: import path and
// receiver qualifiers dropped, method-value "-fm" suffix stripped.
func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
