// Package mcp exposes a funcall registry over the Model Context Protocol.
//
// MCP lets assistants such as Claude Desktop discover and invoke external
// tools. This package turns the functions bound in a [funcall.Registry] into
// an MCP server so any MCP client can list and call them.
//
// # Serving a Registry
//
//	funcall.New(getWeather, "Get the current weather in a given location.").
//	    Param("location", funcall.String).
//	    Desc("location", "City and state, e.g. San Francisco, CA.").
//	    Required("location").
//	    MustBind()
//
//	// Serve over stdio (for subprocess-based MCP clients).
//	if err := mcp.ServeStdio(funcall.Default); err != nil {
//	    log.Fatal(err)
//	}
//
// The tool listing is a snapshot of the enabled functions at server build
// time. Calls are dispatched through the registry, so disabling a function
// afterward turns its calls into tool errors without restarting the server.
package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/spetersoncode/funcall"
)

// Tool converts a funcall tool schema to an MCP tool.
// The function's parameter schema becomes the MCP tool's raw input schema.
func Tool(s funcall.ToolSchema) mcp.Tool {
	// The parameter wire types hold only maps, slices, and strings, so
	// marshaling cannot fail.
	raw, _ := json.Marshal(s.Function.Parameters)
	return mcp.NewToolWithRawSchema(s.Function.Name, s.Function.Description, raw)
}

// Tools converts a slice of funcall tool schemas to MCP tools.
func Tools(schemas []funcall.ToolSchema) []mcp.Tool {
	result := make([]mcp.Tool, len(schemas))
	for i, s := range schemas {
		result[i] = Tool(s)
	}
	return result
}
