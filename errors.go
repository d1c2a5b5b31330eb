package funcall

import (
	"errors"
	"fmt"
)

// Sentinel causes for SchemaError. Test for them with errors.Is.
var (
	// ErrNilFunction indicates the bound function reference is nil.
	ErrNilFunction = errors.New("funcall: nil function")

	// ErrEmptyPurpose indicates the purpose is empty or whitespace.
	ErrEmptyPurpose = errors.New("funcall: empty purpose")

	// ErrEmptyName indicates the function name is empty and could not be derived.
	ErrEmptyName = errors.New("funcall: empty function name")

	// ErrBadKind indicates a parameter kind outside the recognized set.
	ErrBadKind = errors.New("funcall: unrecognized parameter kind")

	// ErrEmptyEnum indicates an enumerated parameter with no literals.
	ErrEmptyEnum = errors.New("funcall: enum requires at least one literal")

	// ErrBadLiteral indicates an enum literal that is not a string, bool,
	// integer, or float.
	ErrBadLiteral = errors.New("funcall: enum literal must be a string, bool, integer, or float")

	// ErrNoDescription indicates a declared parameter without a description.
	ErrNoDescription = errors.New("funcall: parameter has no description")

	// ErrStrayDescription indicates a description for an undeclared parameter.
	ErrStrayDescription = errors.New("funcall: description for undeclared parameter")

	// ErrUnknownRequired indicates a required name that is not a declared parameter.
	ErrUnknownRequired = errors.New("funcall: required name is not a declared parameter")

	// ErrUnknownParameter indicates a declared parameter that matches no
	// JSON-visible field of the typed argument struct.
	ErrUnknownParameter = errors.New("funcall: parameter does not match an argument field")
)

// SchemaError reports invalid descriptor metadata detected at bind time.
// Err is one of the sentinel causes above.
type SchemaError struct {
	Func  string // function name, when known
	Param string // offending parameter, when applicable
	Err   error
}

// Error returns the cause annotated with the function and parameter names.
func (e *SchemaError) Error() string {
	switch {
	case e.Func != "" && e.Param != "":
		return fmt.Sprintf("%v (function %s, parameter %s)", e.Err, e.Func, e.Param)
	case e.Func != "":
		return fmt.Sprintf("%v (function %s)", e.Err, e.Func)
	case e.Param != "":
		return fmt.Sprintf("%v (parameter %s)", e.Err, e.Param)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the sentinel cause.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// LookupError is returned when dispatch or a forced tool choice names a
// function that is not available: never registered, or currently disabled.
type LookupError struct {
	Name     string
	Disabled bool // true when the function exists but is disabled
}

// Error distinguishes unknown names from disabled ones.
func (e *LookupError) Error() string {
	if e.Disabled {
		return "funcall: function disabled: " + e.Name
	}
	return "funcall: unknown function: " + e.Name
}

// CallError wraps a failure during dispatch: an error returned by the bound
// function itself, or malformed argument JSON on a call request.
type CallError struct {
	Name string
	Err  error
}

// Error returns the function name with the underlying failure.
func (e *CallError) Error() string {
	return fmt.Sprintf("funcall: %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *CallError) Unwrap() error {
	return e.Err
}

// DuplicateError is returned by a strict registry when a registration
// reuses an existing function name.
type DuplicateError struct {
	Name string
}

// Error returns the duplicated name.
func (e *DuplicateError) Error() string {
	return "funcall: already registered: " + e.Name
}
