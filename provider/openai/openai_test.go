package openai

import (
	"context"
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/funcall"
)

func weatherRegistry(t *testing.T) *funcall.Registry {
	t.Helper()
	r := funcall.NewRegistry()
	_, err := funcall.New(func(ctx context.Context, args map[string]any) (any, error) {
		return "sunny", nil
	}, "Get the current weather in a given location.").
		Name("get_weather").
		Param("location", funcall.String).
		Desc("location", "The city and state, e.g. San Francisco, CA").
		Enum("unit", "celsius", "fahrenheit").
		Desc("unit", "The unit of temperature").
		Required("location").
		BindTo(r)
	require.NoError(t, err)
	return r
}

func TestTools(t *testing.T) {
	tools := Tools(weatherRegistry(t).Tools())
	require.Len(t, tools, 1)

	fn := tools[0].Function
	assert.Equal(t, "get_weather", fn.Name)
	assert.Equal(t, "Get the current weather in a given location.", fn.Description.Value)

	props, ok := fn.Parameters["properties"].(map[string]any)
	require.True(t, ok)
	location, ok := props["location"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", location["type"])

	unit, ok := props["unit"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"celsius", "fahrenheit"}, unit["enum"])

	assert.Equal(t, []any{"location"}, fn.Parameters["required"])
}

func TestTools_Empty(t *testing.T) {
	assert.Nil(t, Tools(nil))
	assert.Nil(t, Tools([]funcall.ToolSchema{}))
}

func TestChoice(t *testing.T) {
	t.Run("auto", func(t *testing.T) {
		c := Choice(funcall.ToolChoiceAuto)
		assert.Equal(t, "auto", c.OfAuto.Value)
	})

	t.Run("none", func(t *testing.T) {
		c := Choice(funcall.ToolChoiceNone)
		assert.Equal(t, "none", c.OfAuto.Value)
	})

	t.Run("forced", func(t *testing.T) {
		c := Choice(funcall.ForcedToolChoice("get_weather"))
		require.NotNil(t, c.OfChatCompletionNamedToolChoice)
		assert.Equal(t, "get_weather", c.OfChatCompletionNamedToolChoice.Function.Name)
	})
}

func TestCalls(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		ToolCalls: []openai.ChatCompletionMessageToolCall{
			{
				ID: "call_abc",
				Function: openai.ChatCompletionMessageToolCallFunction{
					Name:      "get_weather",
					Arguments: `{"location":"Paris"}`,
				},
			},
			{
				ID: "call_def",
				Function: openai.ChatCompletionMessageToolCallFunction{
					Name:      "get_time",
					Arguments: `{}`,
				},
			},
		},
	}

	calls := Calls(msg)
	require.Len(t, calls, 2)
	assert.Equal(t, funcall.CallRequest{ID: "call_abc", Name: "get_weather", Arguments: `{"location":"Paris"}`}, calls[0])
	assert.Equal(t, "get_time", calls[1].Name)

	assert.Nil(t, Calls(openai.ChatCompletionMessage{}))
}
