// Package openai converts funcall's neutral tool types into request values
// for the official OpenAI SDK (github.com/openai/openai-go).
package openai

import (
	"encoding/json"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"

	"github.com/spetersoncode/funcall"
)

// Tools converts serialized descriptors into chat completion tool params.
func Tools(schemas []funcall.ToolSchema) []openai.ChatCompletionToolParam {
	if len(schemas) == 0 {
		return nil
	}
	result := make([]openai.ChatCompletionToolParam, len(schemas))
	for i, s := range schemas {
		result[i] = openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        s.Function.Name,
				Description: openai.String(s.Function.Description),
				Parameters:  parameters(s.Function.Parameters),
			},
		}
	}
	return result
}

// Choice converts a tool choice into the SDK's option union. None and auto
// map to their string forms; a forced choice maps to the named-tool variant.
func Choice(tc funcall.ToolChoice) openai.ChatCompletionToolChoiceOptionUnionParam {
	switch tc.Mode {
	case funcall.ChoiceFunction:
		return openai.ChatCompletionToolChoiceOptionUnionParam{
			OfChatCompletionNamedToolChoice: &openai.ChatCompletionNamedToolChoiceParam{
				Function: openai.ChatCompletionNamedToolChoiceFunctionParam{
					Name: tc.Name,
				},
			},
		}
	case funcall.ChoiceNone:
		return openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("none"),
		}
	default:
		return openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("auto"),
		}
	}
}

// Calls extracts the tool calls of an assistant message as neutral call
// requests, ready for Registry.Dispatch.
func Calls(msg openai.ChatCompletionMessage) []funcall.CallRequest {
	if len(msg.ToolCalls) == 0 {
		return nil
	}
	result := make([]funcall.CallRequest, len(msg.ToolCalls))
	for i, tc := range msg.ToolCalls {
		result[i] = funcall.CallRequest{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		}
	}
	return result
}

// parameters re-encodes the typed parameters object as the loose map the
// SDK expects. The input is marshal-safe, so the errors are ignored.
func parameters(p funcall.ParametersSchema) shared.FunctionParameters {
	data, _ := json.Marshal(p)
	var params shared.FunctionParameters
	json.Unmarshal(data, &params)
	return params
}
