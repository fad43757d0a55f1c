package mcp

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wearesage/mcp-neo4j/internal/schema"
)

// describeSchemaTool returns the tool definition for describe_schema
func describeSchemaTool() mcp.Tool {
	return mcp.Tool{
		Name:        "describe_schema",
		Description: "Describe the graph schema: node labels and relationship types with instance counts and property keys, optionally scoped to one or more domains",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"domain": map[string]interface{}{
					"description": "Domain to scope the schema to, as a single name or a list of names (known domains: " + strings.Join(schema.Domains(), ", ") + "). Omit for the full live schema.",
					"oneOf": []interface{}{
						map[string]interface{}{
							"type": "string",
						},
						map[string]interface{}{
							"type": "array",
							"items": map[string]interface{}{
								"type": "string",
							},
						},
					},
				},
			},
		},
	}
}

// runQueryTool returns the tool definition for run_query
func runQueryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "run_query",
		Description: "Run a Cypher query against the graph and return the result rows as JSON",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Cypher query to execute",
				},
				"params": map[string]interface{}{
					"type":        "object",
					"description": "Query parameters referenced as $name in the query. Numbers are floored to integers before execution",
				},
			},
			Required: []string{"query"},
		},
	}
}
