package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wearesage/mcp-neo4j/internal/schema"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
)

// handleDescribeSchema handles the describe_schema tool invocation
func (s *Server) handleDescribeSchema(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := s.requestLogger("describe_schema")
	start := time.Now()

	args, err := requestArguments(request)
	if err != nil {
		return nil, err
	}

	domains, err := domainArgument(args)
	if err != nil {
		return nil, err
	}
	log.Debug("describing schema", "domains", domains)

	live, err := s.client.IntrospectSchema(ctx)
	if err != nil {
		log.Error("schema introspection failed", "error", err, "duration", time.Since(start))
		return failureResult(err), nil
	}

	descriptor := schema.Synthesize(live, domains)
	payload, err := json.MarshalIndent(descriptor, "", "  ")
	if err != nil {
		log.Error("schema encoding failed", "error", err, "duration", time.Since(start))
		return failureResult(fmt.Errorf("encode schema descriptor: %w", err)), nil
	}

	log.Info("schema described",
		"domains", domains,
		"node_labels", len(descriptor.NodeLabels),
		"relationship_types", len(descriptor.RelationshipTypes),
		"duration", time.Since(start))
	return mcp.NewToolResultText(string(payload)), nil
}

// handleRunQuery handles the run_query tool invocation
func (s *Server) handleRunQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := s.requestLogger("run_query")
	start := time.Now()

	args, err := requestArguments(request)
	if err != nil {
		return nil, err
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "query parameter is required", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	params, err := paramsArgument(args)
	if err != nil {
		return nil, err
	}
	log.Debug("running query", "params", len(params))

	rows, err := s.client.Run(ctx, query, params)
	if err != nil {
		log.Error("query failed", "error", err, "duration", time.Since(start))
		return failureResult(err), nil
	}

	payload, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		log.Error("result encoding failed", "error", err, "duration", time.Since(start))
		return failureResult(fmt.Errorf("encode query results: %w", err)), nil
	}

	log.Info("query succeeded", "rows", len(rows), "duration", time.Since(start))
	return mcp.NewToolResultText(string(payload)), nil
}

// Helper functions

// requestArguments extracts the argument map from a tool call. A call with
// no arguments at all is valid for tools whose parameters are all optional.
func requestArguments(request mcp.CallToolRequest) (map[string]interface{}, error) {
	if request.Params.Arguments == nil {
		return map[string]interface{}{}, nil
	}
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}
	return args, nil
}

// domainArgument reads the optional domain parameter, accepting a single
// string or a list of strings. A bare string becomes a one-element list.
// Unknown domain names are not an error here; scoping handles them leniently.
func domainArgument(args map[string]interface{}) ([]string, error) {
	raw, ok := args["domain"]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		domains := make([]string, 0, len(v))
		for _, item := range v {
			name, ok := item.(string)
			if !ok {
				return nil, newMCPError(ErrorCodeInvalidParams, "domain entries must be strings", map[string]interface{}{
					"param": "domain",
					"value": item,
				})
			}
			domains = append(domains, name)
		}
		return domains, nil
	default:
		return nil, newMCPError(ErrorCodeInvalidParams, "domain must be a string or an array of strings", map[string]interface{}{
			"param": "domain",
		})
	}
}

// paramsArgument reads the optional params object for run_query.
func paramsArgument(args map[string]interface{}) (map[string]interface{}, error) {
	raw, ok := args["params"]
	if !ok || raw == nil {
		return nil, nil
	}
	params, ok := raw.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "params must be an object", map[string]interface{}{
			"param": "params",
		})
	}
	return params, nil
}

// failureResult wraps a runtime error into a tool result with the error flag
// set, so the caller sees a structured failure instead of a broken session.
func failureResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(formatJSON(map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	}))
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a value as indented JSON
func formatJSON(data interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}
