// Command mcpserver is a reference MCP server that exposes funcall-bound
// functions over stdio.
//
// MCP clients (like Claude Desktop or other AI assistants) can discover and
// call the functions bound here.
//
// Usage:
//
//	go run ./cmd/mcpserver
//
// Configuration for Claude Desktop (~/Library/Application Support/Claude/claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "funcall-tools": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcpserver"],
//	            "cwd": "/path/to/funcall"
//	        }
//	    }
//	}
package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spetersoncode/funcall"
	"github.com/spetersoncode/funcall/mcp"
)

func main() {
	r := funcall.NewRegistry()

	funcall.NewReflected(echo, "Echo back the input text.").
		Name("echo").
		Desc("text", "The text to echo back.").
		Required("text").
		MustBindTo(r)

	funcall.New(currentTime, "Get the current time.").
		Name("time").
		Enum("format", "rfc3339", "unix", "human").
		Desc("format", "Output format for the time.").
		MustBindTo(r)

	funcall.NewTyped(calculate, "Perform basic arithmetic on two numbers.").
		Name("calculate").
		Enum("operation", "add", "subtract", "multiply", "divide").
		Desc("operation", "The operation to perform.").
		Param("a", funcall.Float).
		Desc("a", "First operand.").
		Param("b", funcall.Float).
		Desc("b", "Second operand.").
		Required("operation", "a", "b").
		MustBindTo(r)

	if err := mcp.ServeStdio(r,
		mcp.WithName("funcall-tools"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		log.Fatal(err)
	}
}

type echoArgs struct {
	Text string `json:"text"`
}

func echo(ctx context.Context, args echoArgs) (any, error) {
	return args.Text, nil
}

func currentTime(ctx context.Context, args map[string]any) (any, error) {
	format, _ := args["format"].(string)
	now := time.Now()

	switch strings.ToLower(format) {
	case "rfc3339":
		return now.Format(time.RFC3339), nil
	case "unix":
		return fmt.Sprintf("%d", now.Unix()), nil
	default:
		return now.Format("Monday, January 2, 2006 at 3:04 PM MST"), nil
	}
}

type calculateArgs struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
}

func calculate(ctx context.Context, args calculateArgs) (any, error) {
	var result float64

	switch args.Operation {
	case "add":
		result = args.A + args.B
	case "subtract":
		result = args.A - args.B
	case "multiply":
		result = args.A * args.B
	case "divide":
		if args.B == 0 {
			return nil, fmt.Errorf("cannot divide by zero")
		}
		result = args.A / args.B
	default:
		return nil, fmt.Errorf("unknown operation: %s", args.Operation)
	}

	return fmt.Sprintf("%.6g", result), nil
}
