package funcall

// ToolSchema is the provider-neutral serialized form of a bound function,
// shaped for the tools array of a chat completion request:
//
//	{
//	    "type": "function",
//	    "function": {
//	        "name": ...,
//	        "description": ...,
//	        "parameters": {"type": "object", "properties": {...}, "required": [...]}
//	    }
//	}
//
// The provider packages translate this neutral form into SDK request types.
type ToolSchema struct {
	Type     string         `json:"type"`
	Function FunctionSchema `json:"function"`
}

// FunctionSchema carries a function's name, purpose, and parameter schema.
type FunctionSchema struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Parameters  ParametersSchema `json:"parameters"`
}

// ParametersSchema is the object schema for a function's parameters.
// Properties and Required are always non-nil so the serialized form is
// stable: {} and [] rather than null.
type ParametersSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required"`
}

// PropertySchema describes one parameter: a typed primitive or an
// enumeration of allowed literals, with a description for the model.
type PropertySchema struct {
	Type        string `json:"type,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	Description string `json:"description"`
}
