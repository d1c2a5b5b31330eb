// Package funcall turns ordinary Go functions into LLM-callable tools.
//
// A fluent [Builder] wraps a callable together with validated metadata
// (purpose, typed or enumerated parameters, descriptions, required list)
// into an immutable [Descriptor]; binding a descriptor registers it in a
// [Registry]. The registry then answers every downstream question: the
// serialized tools array for a chat completion request, the tool_choice
// value, a status report, and dispatch of model-issued calls by name.
//
// # Binding Functions
//
// Declare each parameter, give it a description, and bind:
//
//	registry := funcall.NewRegistry()
//
//	weather, err := funcall.New(getWeather, "Get the current weather in a given location.").
//	    Param("location", funcall.String).
//	    Desc("location", "The city and state, e.g. San Francisco, CA").
//	    Enum("unit", "celsius", "fahrenheit").
//	    Desc("unit", "The unit of temperature").
//	    Required("location").
//	    BindTo(registry)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Validation is eager: a missing description, a description for an
// undeclared parameter, an unknown required name, or an empty enum all
// fail the bind with a [SchemaError] before anything is registered.
//
// The function name is derived from the function value; use Name to
// override it, for anonymous functions or to match a model-facing naming
// scheme.
//
// # Talking to Providers
//
// Tools and ToolChoice produce the provider-neutral request fields:
//
//	tools := registry.Tools()          // enabled functions, registration order
//	choice := registry.ToolChoice()    // auto, or none when nothing is enabled
//
// The provider subpackages translate them for the official SDKs:
//
//	params := openai.ChatCompletionNewParams{
//	    Model:      openai.ChatModelGPT4o,
//	    Messages:   messages,
//	    Tools:      fcopenai.Tools(registry.Tools()),
//	    ToolChoice: fcopenai.Choice(registry.ToolChoice()),
//	}
//
// # Dispatching Calls
//
// When the model responds with tool calls, extract them with the provider
// package and execute each through the registry:
//
//	for _, call := range fcopenai.Calls(resp.Choices[0].Message) {
//	    result, err := registry.Dispatch(ctx, call)
//	    ...
//	}
//
// Dispatch passes the decoded arguments to the callable verbatim; the
// declared schema describes the function to the model but is not enforced
// at dispatch time.
//
// # Enabling and Disabling
//
// Each descriptor carries a live enabled flag:
//
//	weather.Disable()
//	registry.Tools()  // no longer includes get_weather
//	weather.Enable()
//	registry.Tools()  // includes it again, same registration
//
// Disabled functions stay registered and listed by Status, but they are
// invisible to serialization and rejected by dispatch with a
// [LookupError], exactly like unknown names.
//
// # Typed Arguments
//
// NewTyped adapts a struct-argument function and checks the declared
// parameter names against the struct's JSON fields at bind time:
//
//	type TimeArgs struct {
//	    Timezone string `json:"timezone"`
//	}
//
//	funcall.NewTyped(func(ctx context.Context, args TimeArgs) (any, error) {
//	    return currentTime(args.Timezone), nil
//	}, "Get the current time.").
//	    Param("timezone", funcall.String).
//	    Desc("timezone", "IANA timezone name, e.g. Europe/Paris").
//	    Name("get_time").
//	    BindTo(registry)
//
// NewReflected goes one step further and derives the parameter names and
// kinds from the struct's fields, leaving descriptions, enums, and the
// required list to the builder calls.
//
// # Default Registry
//
// Package-level functions mirror the Registry methods on a process-wide
// [Default] registry for programs that need only one:
//
//	funcall.New(getWeather, "Get the current weather.").
//	    Param("location", funcall.String).
//	    Desc("location", "City name").
//	    MustBind()
//
//	tools := funcall.Tools()
package funcall
