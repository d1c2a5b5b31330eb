package funcall

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// CallRequest is a single function invocation requested by the model, in
// provider-neutral form. The provider packages extract these from SDK
// responses; Registry.Dispatch executes them.
type CallRequest struct {
	ID        string // provider-assigned call id, "" if none
	Name      string
	Arguments string // raw JSON object holding the call's arguments
}

// Args decodes the Arguments JSON into a map. Empty Arguments decode as no
// arguments.
func (c CallRequest) Args() (map[string]any, error) {
	if c.Arguments == "" {
		return nil, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(c.Arguments), &args); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}
	return args, nil
}

// NewCallID returns a unique call id for requests synthesized locally.
func NewCallID() string {
	return "call_" + uuid.New().String()
}
