package funcall

import "encoding/json"

// ChoiceMode selects among the tool_choice variants.
type ChoiceMode string

const (
	// ChoiceNone means the model must not call a function.
	ChoiceNone ChoiceMode = "none"

	// ChoiceAuto lets the model decide whether to call a function.
	ChoiceAuto ChoiceMode = "auto"

	// ChoiceFunction forces the model to call one named function.
	ChoiceFunction ChoiceMode = "function"
)

// ToolChoice is the tool_choice value of a chat completion request: auto,
// none, or a forced call of one named function. The zero value means none.
type ToolChoice struct {
	Mode ChoiceMode
	Name string // function to force when Mode is ChoiceFunction
}

// Choices for the two parameterless modes.
var (
	ToolChoiceNone = ToolChoice{Mode: ChoiceNone}
	ToolChoiceAuto = ToolChoice{Mode: ChoiceAuto}
)

// ForcedToolChoice returns a choice forcing a call of the named function.
func ForcedToolChoice(name string) ToolChoice {
	return ToolChoice{Mode: ChoiceFunction, Name: name}
}

type forcedChoice struct {
	Type     string         `json:"type"`
	Function forcedFunction `json:"function"`
}

type forcedFunction struct {
	Name string `json:"name"`
}

// MarshalJSON emits "auto" for auto, the forced-function object for a
// forced choice, and null for none (including the zero value).
func (tc ToolChoice) MarshalJSON() ([]byte, error) {
	switch tc.Mode {
	case ChoiceAuto:
		return json.Marshal(string(ChoiceAuto))
	case ChoiceFunction:
		return json.Marshal(forcedChoice{
			Type:     "function",
			Function: forcedFunction{Name: tc.Name},
		})
	default:
		return []byte("null"), nil
	}
}

// String renders the choice for logs: "none", "auto", or "function:<name>".
func (tc ToolChoice) String() string {
	switch tc.Mode {
	case ChoiceAuto:
		return string(ChoiceAuto)
	case ChoiceFunction:
		return "function:" + tc.Name
	default:
		return string(ChoiceNone)
	}
}
