package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/spetersoncode/funcall"
)

// ServerOption configures an MCP server built from a registry.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server that exposes every enabled function in the
// registry. The tool listing is a snapshot taken here; calls go through
// [funcall.Registry.Call], so a function disabled after the server is built
// answers with a tool error rather than a result.
//
// Example:
//
//	funcall.New(getWeather, "Get the current weather in a given location.").
//	    Param("location", funcall.String).
//	    Desc("location", "City and state, e.g. San Francisco, CA.").
//	    Required("location").
//	    MustBind()
//
//	s := mcp.NewServer(funcall.Default,
//	    mcp.WithName("weather-tools"),
//	    mcp.WithVersion("1.0.0"),
//	)
//	server.ServeStdio(s)
func NewServer(r *funcall.Registry, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "funcall-mcp-server",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	for _, schema := range r.Tools() {
		s.AddTool(Tool(schema), callHandler(r, schema.Function.Name))
	}

	return s
}

// callHandler adapts a registered function to an MCP tool handler.
func callHandler(r *funcall.Registry, name string) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsJSON := "{}"
		if req.Params.Arguments != nil {
			data, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
			}
			argsJSON = string(data)
		}

		result, err := r.Dispatch(ctx, funcall.CallRequest{Name: name, Arguments: argsJSON})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(formatResult(result)), nil
	}
}

// formatResult renders a function result as MCP text content.
// Strings pass through verbatim; everything else is marshaled as JSON.
func formatResult(v any) string {
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

// ServeStdio builds the server and serves it over stdin/stdout, the standard
// transport for MCP servers launched as subprocesses.
//
// Example:
//
//	if err := mcp.ServeStdio(funcall.Default); err != nil {
//	    log.Fatal(err)
//	}
func ServeStdio(r *funcall.Registry, opts ...ServerOption) error {
	s := NewServer(r, opts...)
	return server.ServeStdio(s)
}
