// Command demo walks through binding functions, serializing tools, and
// dispatching model-requested calls against the OpenAI chat completions API.
//
// Usage:
//
//	OPENAI_API_KEY=sk-... go run ./cmd/demo
//
// The key may also come from a .env file in the working directory. Set
// OPENAI_MODEL to override the default model.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/spetersoncode/funcall"
	fcopenai "github.com/spetersoncode/funcall/provider/openai"
)

const defaultModel = "gpt-5.1-mini"

type weatherArgs struct {
	Location string `json:"location"`
	Unit     string `json:"unit"`
}

func getWeather(ctx context.Context, args weatherArgs) (any, error) {
	unit := args.Unit
	if unit == "" {
		unit = "celsius"
	}
	return map[string]any{
		"location":    args.Location,
		"temperature": 22,
		"unit":        unit,
		"conditions":  "Partly cloudy",
	}, nil
}

func getTime(ctx context.Context, args map[string]any) (any, error) {
	return time.Now().Format("Monday, January 2, 2006 at 3:04 PM MST"), nil
}

func main() {
	godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "OPENAI_API_KEY is not set")
		os.Exit(1)
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	fmt.Println("╔════════════════════════════════════════╗")
	fmt.Println("║       funcall - Tool Calling Demo      ║")
	fmt.Println("╚════════════════════════════════════════╝")
	fmt.Println()

	funcall.NewTyped(getWeather, "Get the current weather in a given location.").
		Name("get_weather").
		Param("location", funcall.String).
		Desc("location", "The city and state, e.g. San Francisco, CA.").
		Enum("unit", "celsius", "fahrenheit").
		Desc("unit", "The temperature unit to use.").
		Required("location").
		MustBind()

	funcall.New(getTime, "Get the current date and time.").
		Name("get_time").
		MustBind()

	fmt.Println("Registered functions:")
	fmt.Println(indent(funcall.Status()))
	fmt.Println()

	toolsJSON, _ := json.MarshalIndent(funcall.Tools(), "", "  ")
	fmt.Println("Tools payload sent to the model:")
	fmt.Println(indent(string(toolsJSON)))
	fmt.Println()

	ctx := context.Background()
	client := openai.NewClient(option.WithAPIKey(apiKey))

	question := "What's the weather like in Tokyo, and what time is it right now?"
	fmt.Println("User:", question)
	fmt.Println()

	params := openai.ChatCompletionNewParams{
		Model:      openai.ChatModel(model),
		Messages:   []openai.ChatCompletionMessageParamUnion{openai.UserMessage(question)},
		Tools:      fcopenai.Tools(funcall.Tools()),
		ToolChoice: fcopenai.Choice(funcall.DefaultToolChoice()),
	}

	for round := 0; round < 5; round++ {
		completion, err := client.Chat.Completions.New(ctx, params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "chat completion: %v\n", err)
			os.Exit(1)
		}

		msg := completion.Choices[0].Message
		calls := fcopenai.Calls(msg)
		if len(calls) == 0 {
			fmt.Println("Assistant:", msg.Content)
			break
		}

		// Echo the assistant turn, then answer every requested call.
		params.Messages = append(params.Messages, msg.ToParam())
		for _, call := range calls {
			fmt.Printf("→ %s(%s)\n", call.Name, call.Arguments)

			result, err := funcall.Dispatch(ctx, call)
			text := resultText(result)
			if err != nil {
				text = err.Error()
			}
			fmt.Printf("← %s\n", text)

			params.Messages = append(params.Messages, openai.ToolMessage(text, call.ID))
		}
		fmt.Println()
	}

	// The enabled flag is live: the next Tools() call drops get_time
	// without re-registration.
	fmt.Println()
	funcall.Disable("get_time")
	fmt.Println("After disabling get_time:")
	fmt.Println(indent(funcall.Status()))
	fmt.Printf("Tools now offered to the model: %d\n", len(funcall.Tools()))
}

// resultText renders a dispatch result for a tool message.
func resultText(v any) string {
	switch r := v.(type) {
	case nil:
		return ""
	case string:
		return r
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
