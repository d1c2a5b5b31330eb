package funcall

// ParameterSpec describes a single declared parameter of a bound function.
// Exactly one of Kind or Enum is set: a parameter is either a primitive of
// the given kind, or an enumeration of the literal values in Enum.
type ParameterSpec struct {
	Name        string
	Kind        Kind  // "" when the parameter is enumerated
	Enum        []any // nil when the parameter is primitive
	Description string
	Required    bool
}

// Enumerated reports whether the parameter is declared as an enumeration.
func (p ParameterSpec) Enumerated() bool {
	return p.Enum != nil
}

// property returns the wire form of the parameter. Enumerated parameters
// carry enum and description only; primitives carry type and description.
func (p ParameterSpec) property() PropertySchema {
	if p.Enumerated() {
		return PropertySchema{
			Enum:        append([]any(nil), p.Enum...),
			Description: p.Description,
		}
	}
	return PropertySchema{
		Type:        string(p.Kind),
		Description: p.Description,
	}
}
