package funcall

// Kind identifies the primitive type of a declared parameter. Its value is
// the JSON Schema type emitted on the wire.
type Kind string

// Parameter type markers. List and Tuple both serialize as "array"; Tuple
// exists for callers porting fixed-size sequence parameters.
const (
	String Kind = "string"
	Int    Kind = "integer"
	Float  Kind = "number"
	Bool   Kind = "boolean"
	List   Kind = "array"
	Tuple  Kind = "array"
	Dict   Kind = "object"
	Null   Kind = "null"
)

// Valid reports whether k is one of the recognized parameter kinds.
func (k Kind) Valid() bool {
	switch k {
	case String, Int, Float, Bool, List, Dict, Null:
		return true
	}
	return false
}
