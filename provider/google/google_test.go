package google

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/spetersoncode/funcall"
)

func bindWeather(t *testing.T) *funcall.Registry {
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
		Param("days", funcall.Int).
		Desc("days", "Forecast length in days").
		Required("location").
		BindTo(r)
	require.NoError(t, err)
	return r
}

func TestTools(t *testing.T) {
	tools := Tools(bindWeather(t).Tools())
	require.Len(t, tools, 1)
	require.Len(t, tools[0].FunctionDeclarations, 1)

	decl := tools[0].FunctionDeclarations[0]
	assert.Equal(t, "get_weather", decl.Name)
	assert.Equal(t, "Get the current weather in a given location.", decl.Description)

	params := decl.Parameters
	require.NotNil(t, params)
	assert.Equal(t, genai.TypeObject, params.Type)
	assert.Equal(t, []string{"location"}, params.Required)

	location := params.Properties["location"]
	require.NotNil(t, location)
	assert.Equal(t, genai.TypeString, location.Type)
	assert.Equal(t, "The city and state, e.g. San Francisco, CA", location.Description)

	unit := params.Properties["unit"]
	require.NotNil(t, unit)
	assert.Equal(t, []string{"celsius", "fahrenheit"}, unit.Enum)

	days := params.Properties["days"]
	require.NotNil(t, days)
	assert.Equal(t, genai.TypeInteger, days.Type)

	assert.Nil(t, Tools(nil))
}

func TestTools_NonStringEnumLiterals(t *testing.T) {
	r := funcall.NewRegistry()
	_, err := funcall.New(func(ctx context.Context, args map[string]any) (any, error) {
		return nil, nil
	}, "Set the output level.").
		Name("set_level").
		Enum("level", 1, 2.5, true).
		Desc("level", "The level").
		BindTo(r)
	require.NoError(t, err)

	tools := Tools(r.Tools())
	level := tools[0].FunctionDeclarations[0].Parameters.Properties["level"]
	assert.Equal(t, []string{"1", "2.5", "true"}, level.Enum)
}

func TestConfig(t *testing.T) {
	t.Run("auto", func(t *testing.T) {
		cfg := Config(funcall.ToolChoiceAuto)
		require.NotNil(t, cfg.FunctionCallingConfig)
		assert.Equal(t, genai.FunctionCallingConfigModeAuto, cfg.FunctionCallingConfig.Mode)
	})

	t.Run("none", func(t *testing.T) {
		cfg := Config(funcall.ToolChoiceNone)
		assert.Equal(t, genai.FunctionCallingConfigModeNone, cfg.FunctionCallingConfig.Mode)
	})

	t.Run("forced", func(t *testing.T) {
		cfg := Config(funcall.ForcedToolChoice("get_weather"))
		assert.Equal(t, genai.FunctionCallingConfigModeAny, cfg.FunctionCallingConfig.Mode)
		assert.Equal(t, []string{"get_weather"}, cfg.FunctionCallingConfig.AllowedFunctionNames)
	})
}

func TestCalls(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "Checking the weather."},
						{FunctionCall: &genai.FunctionCall{
							Name: "get_weather",
							Args: map[string]any{"location": "Paris"},
						}},
					},
				},
			},
		},
	}

	calls := Calls(resp)
	require.Len(t, calls, 1)
	assert.Equal(t, "get_weather", calls[0].Name)
	assert.Equal(t, "call_1_get_weather", calls[0].ID)
	assert.JSONEq(t, `{"location":"Paris"}`, calls[0].Arguments)

	assert.Nil(t, Calls(nil))
	assert.Nil(t, Calls(&genai.GenerateContentResponse{}))
}
