package funcall

import (
	"context"
	"encoding/json"
	"sync/atomic"
)

// Func is the callable shape bound into a Descriptor. Arguments arrive as a
// decoded JSON object, passed through verbatim with no coercion; the return
// value is handed back to the dispatching caller as-is.
type Func func(ctx context.Context, args map[string]any) (any, error)

// Descriptor pairs a callable with validated metadata describing it to a
// model. Descriptors are built and registered through a Builder; the
// metadata is fixed at bind time and only the enabled flag may change
// afterward. Toggling is safe from any goroutine, and readers always see
// the current value: a disabled function drops out of serialization and
// dispatch immediately, with no re-registration.
type Descriptor struct {
	name    string
	purpose string
	params  []ParameterSpec
	fn      Func
	enabled atomic.Bool
}

// Name returns the function name used for registration and dispatch.
func (d *Descriptor) Name() string {
	return d.name
}

// Purpose returns the trimmed description sent to the model.
func (d *Descriptor) Purpose() string {
	return d.purpose
}

// Parameters returns a copy of the declared parameters in declaration order.
func (d *Descriptor) Parameters() []ParameterSpec {
	out := make([]ParameterSpec, len(d.params))
	copy(out, d.params)
	for i := range out {
		out[i].Enum = append([]any(nil), out[i].Enum...)
	}
	return out
}

// Required returns the names of the required parameters in declaration order.
func (d *Descriptor) Required() []string {
	var names []string
	for _, p := range d.params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// Enabled reports whether the function is currently available to the model.
func (d *Descriptor) Enabled() bool {
	return d.enabled.Load()
}

// Enable makes the function visible to serialization and dispatch.
func (d *Descriptor) Enable() {
	d.enabled.Store(true)
}

// Disable hides the function from serialization and rejects dispatch to it.
// The registration itself is kept.
func (d *Descriptor) Disable() {
	d.enabled.Store(false)
}

// Schema returns the wire form of the descriptor. The result is recomputed
// on every call and is deterministic for unchanged metadata.
func (d *Descriptor) Schema() ToolSchema {
	props := make(map[string]PropertySchema, len(d.params))
	required := make([]string, 0)
	for _, p := range d.params {
		props[p.Name] = p.property()
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return ToolSchema{
		Type: "function",
		Function: FunctionSchema{
			Name:        d.name,
			Description: d.purpose,
			Parameters: ParametersSchema{
				Type:       "object",
				Properties: props,
				Required:   required,
			},
		},
	}
}

// MarshalJSON serializes the descriptor as its Schema.
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Schema())
}
