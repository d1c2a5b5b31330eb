package funcall

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Registry holds bound descriptors and answers every downstream question
// about them: the serialized tools array, the tool_choice value, a status
// report, and dispatch by name. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Descriptor
	order   []string
	strict  bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithStrict makes registration fail with DuplicateError when a name is
// reused, instead of replacing the earlier descriptor.
func WithStrict() RegistryOption {
	return func(r *Registry) {
		r.strict = true
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries: make(map[string]*Descriptor),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the process-wide registry used by the package-level functions
// and by Builder.Bind.
var Default = NewRegistry()

// Register inserts a bound descriptor under its name. Reusing a name
// replaces the earlier entry at its original position, unless the registry
// is strict, in which case Register returns a *DuplicateError and changes
// nothing. Normal use goes through Builder.BindTo, which calls Register
// after validation. Registering a nil or unbound descriptor panics.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil || d.name == "" {
		panic("funcall: Register of nil or unbound descriptor")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[d.name]; exists {
		if r.strict {
			return &DuplicateError{Name: d.name}
		}
	} else {
		r.order = append(r.order, d.name)
	}
	r.entries[d.name] = d
	return nil
}

// Get retrieves a descriptor by name, enabled or not.
// Returns the descriptor and true if found, or nil and false if not found.
func (r *Registry) Get(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.entries[name]
	return d, ok
}

// Enabled returns the currently enabled descriptors keyed by name. The map
// is a fresh copy; mutating it does not affect the registry.
func (r *Registry) Enabled() map[string]*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*Descriptor)
	for name, d := range r.entries {
		if d.Enabled() {
			out[name] = d
		}
	}
	return out
}

// Tools serializes every enabled descriptor in registration order, shaped
// for the tools array of a chat completion request. The result is computed
// from live state on every call, so a disabled function disappears without
// any re-registration. No functions enabled yields an empty slice.
func (r *Registry) Tools() []ToolSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]ToolSchema, 0, len(r.order))
	for _, name := range r.order {
		if d := r.entries[name]; d.Enabled() {
			tools = append(tools, d.Schema())
		}
	}
	return tools
}

// ToolChoice returns ToolChoiceAuto when at least one function is enabled,
// and ToolChoiceNone (serialized as JSON null) otherwise.
func (r *Registry) ToolChoice() ToolChoice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.entries {
		if d.Enabled() {
			return ToolChoiceAuto
		}
	}
	return ToolChoiceNone
}

// ForceTool returns a choice forcing the named function. The name must be
// registered and enabled; otherwise ForceTool returns a *LookupError.
func (r *Registry) ForceTool(name string) (ToolChoice, error) {
	r.mu.RLock()
	d, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return ToolChoice{}, &LookupError{Name: name}
	}
	if !d.Enabled() {
		return ToolChoice{}, &LookupError{Name: name, Disabled: true}
	}
	return ForcedToolChoice(name), nil
}

// Status reports every registered function, one "name: enabled" or
// "name: disabled" line per function in registration order. Disabled
// functions are listed; only serialization and dispatch hide them.
func (r *Registry) Status() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sb strings.Builder
	for i, name := range r.order {
		if i > 0 {
			sb.WriteByte('\n')
		}
		state := "disabled"
		if r.entries[name].Enabled() {
			state = "enabled"
		}
		fmt.Fprintf(&sb, "%s: %s", name, state)
	}
	return sb.String()
}

// Call dispatches to the named function. The args map is passed to the
// callable verbatim; nothing is validated against the declared schema,
// which describes the function to the model but does not constrain
// dispatch. Absent or disabled names return a *LookupError; an error from
// the callable comes back wrapped in a *CallError whose Unwrap exposes the
// cause. On success the callable's return value is handed back unchanged.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	r.mu.RLock()
	d, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &LookupError{Name: name}
	}
	if !d.Enabled() {
		return nil, &LookupError{Name: name, Disabled: true}
	}

	result, err := d.fn(ctx, args)
	if err != nil {
		return nil, &CallError{Name: name, Err: err}
	}
	return result, nil
}

// Dispatch decodes a model-issued call request and executes it via Call.
// Malformed argument JSON returns a *CallError.
func (r *Registry) Dispatch(ctx context.Context, call CallRequest) (any, error) {
	args, err := call.Args()
	if err != nil {
		return nil, &CallError{Name: call.Name, Err: err}
	}
	return r.Call(ctx, call.Name, args)
}

// Enable turns the named function on. It reports whether the name is
// registered.
func (r *Registry) Enable(name string) bool {
	d, ok := r.Get(name)
	if ok {
		d.Enable()
	}
	return ok
}

// Disable turns the named function off without unregistering it. It
// reports whether the name is registered.
func (r *Registry) Disable(name string) bool {
	d, ok := r.Get(name)
	if ok {
		d.Disable()
	}
	return ok
}

// Names returns all registered names in registration order, enabled or not.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Len returns the number of registered functions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Reset removes every registration. Intended for test isolation when using
// Default.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]*Descriptor)
	r.order = nil
}

// Get retrieves a descriptor from the Default registry.
func Get(name string) (*Descriptor, bool) {
	return Default.Get(name)
}

// Enabled returns the enabled descriptors of the Default registry.
func Enabled() map[string]*Descriptor {
	return Default.Enabled()
}

// Tools serializes the enabled descriptors of the Default registry.
func Tools() []ToolSchema {
	return Default.Tools()
}

// DefaultToolChoice returns the Default registry's tool_choice value.
func DefaultToolChoice() ToolChoice {
	return Default.ToolChoice()
}

// ForceTool returns a forced choice for a function in the Default registry.
func ForceTool(name string) (ToolChoice, error) {
	return Default.ForceTool(name)
}

// Status reports the Default registry.
func Status() string {
	return Default.Status()
}

// Call dispatches to a function in the Default registry.
func Call(ctx context.Context, name string, args map[string]any) (any, error) {
	return Default.Call(ctx, name, args)
}

// Dispatch executes a call request against the Default registry.
func Dispatch(ctx context.Context, call CallRequest) (any, error) {
	return Default.Dispatch(ctx, call)
}

// Enable turns on a function in the Default registry.
func Enable(name string) bool {
	return Default.Enable(name)
}

// Disable turns off a function in the Default registry.
func Disable(name string) bool {
	return Default.Disable(name)
}

// Names returns the Default registry's registered names.
func Names() []string {
	return Default.Names()
}

// Reset clears the Default registry.
func Reset() {
	Default.Reset()
}
