// Package anthropic converts funcall's neutral tool types into request
// values for the official Anthropic SDK (github.com/anthropics/anthropic-sdk-go).
package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"

	"github.com/spetersoncode/funcall"
)

// Tools converts serialized descriptors into Anthropic tool params. The
// parameters object becomes the tool's input schema.
func Tools(schemas []funcall.ToolSchema) []anthropic.ToolUnionParam {
	if len(schemas) == 0 {
		return nil
	}
	result := make([]anthropic.ToolUnionParam, len(schemas))
	for i, s := range schemas {
		result[i] = anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        s.Function.Name,
				Description: anthropic.String(s.Function.Description),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: s.Function.Parameters.Properties,
					Required:   s.Function.Parameters.Required,
				},
			},
		}
	}
	return result
}

// Choice converts a tool choice into the SDK's union. None keeps the tools
// attached but forbids their use, matching the neutral form's meaning of
// "no tool use".
func Choice(tc funcall.ToolChoice) anthropic.ToolChoiceUnionParam {
	switch tc.Mode {
	case funcall.ChoiceFunction:
		return anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: tc.Name},
		}
	case funcall.ChoiceNone:
		return anthropic.ToolChoiceUnionParam{
			OfNone: &anthropic.ToolChoiceNoneParam{},
		}
	default:
		return anthropic.ToolChoiceUnionParam{
			OfAuto: &anthropic.ToolChoiceAutoParam{},
		}
	}
}

// Calls extracts the tool_use blocks of a message as neutral call requests,
// ready for Registry.Dispatch.
func Calls(msg anthropic.Message) []funcall.CallRequest {
	var calls []funcall.CallRequest
	for _, block := range msg.Content {
		if block.Type == "tool_use" {
			calls = append(calls, funcall.CallRequest{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(block.Input),
			})
		}
	}
	return calls
}
