// Package google converts funcall's neutral tool types into request values
// for the Google GenAI SDK (google.golang.org/genai).
package google

import (
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/spetersoncode/funcall"
)

// Tools converts serialized descriptors into genai tools. All function
// declarations ride in a single Tool, as the API expects.
func Tools(schemas []funcall.ToolSchema) []*genai.Tool {
	if len(schemas) == 0 {
		return nil
	}
	funcs := make([]*genai.FunctionDeclaration, len(schemas))
	for i, s := range schemas {
		funcs[i] = &genai.FunctionDeclaration{
			Name:        s.Function.Name,
			Description: s.Function.Description,
			Parameters:  parameters(s.Function.Parameters),
		}
	}
	return []*genai.Tool{{FunctionDeclarations: funcs}}
}

// Config converts a tool choice into a genai tool config. A forced choice
// maps to mode ANY restricted to the one allowed function name.
func Config(tc funcall.ToolChoice) *genai.ToolConfig {
	switch tc.Mode {
	case funcall.ChoiceFunction:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode:                 genai.FunctionCallingConfigModeAny,
				AllowedFunctionNames: []string{tc.Name},
			},
		}
	case funcall.ChoiceNone:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeNone,
			},
		}
	default:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAuto,
			},
		}
	}
}

// Calls extracts the function calls of the first candidate as neutral call
// requests. The API sends no call ids, so deterministic local ones are
// synthesized from the call's position and name.
func Calls(resp *genai.GenerateContentResponse) []funcall.CallRequest {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	var calls []funcall.CallRequest
	for i, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.FunctionCall == nil {
			continue
		}
		args, _ := json.Marshal(part.FunctionCall.Args)
		calls = append(calls, funcall.CallRequest{
			ID:        fmt.Sprintf("call_%d_%s", i, part.FunctionCall.Name),
			Name:      part.FunctionCall.Name,
			Arguments: string(args),
		})
	}
	return calls
}

func parameters(p funcall.ParametersSchema) *genai.Schema {
	result := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(p.Properties)),
	}
	for name, prop := range p.Properties {
		result.Properties[name] = property(prop)
	}
	if len(p.Required) > 0 {
		result.Required = append(result.Required, p.Required...)
	}
	return result
}

// property converts one parameter. Enum literals become strings per genai's
// string-valued enum model; enumerated parameters carry no explicit type.
func property(p funcall.PropertySchema) *genai.Schema {
	result := &genai.Schema{Description: p.Description}

	switch p.Type {
	case "string":
		result.Type = genai.TypeString
	case "number":
		result.Type = genai.TypeNumber
	case "integer":
		result.Type = genai.TypeInteger
	case "boolean":
		result.Type = genai.TypeBoolean
	case "array":
		result.Type = genai.TypeArray
	case "object":
		result.Type = genai.TypeObject
	}

	for _, lit := range p.Enum {
		if s, ok := lit.(string); ok {
			result.Enum = append(result.Enum, s)
		} else {
			result.Enum = append(result.Enum, fmt.Sprint(lit))
		}
	}

	return result
}
