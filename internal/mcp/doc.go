// Package mcp implements the Model Context Protocol (MCP) server for Neo4j.
//
// The server exposes two tools to MCP clients:
//   - describe_schema: Summarize the graph schema, optionally scoped to domains
//   - run_query: Execute a Cypher query and return its rows
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Stdout is reserved for protocol messages; every log line goes to stderr.
//
// # Tool: describe_schema
//
// Summarize what is in the graph, merged with the domain taxonomy:
//
//	Request:
//	{
//	  "name": "describe_schema",
//	  "arguments": {
//	    "domain": ["code", "project"]
//	  }
//	}
//
//	Response (text content, indented JSON):
//	{
//	  "domains": ["code", "project"],
//	  "node_labels": [
//	    {"name": "Function", "count": 812},
//	    {"name": "Task", "count": 37},
//	    {"name": "Repository", "count": 0}
//	  ],
//	  "node_properties": {
//	    "Function": ["name", "signature"],
//	    "Task": ["title", "status"],
//	    "Repository": []
//	  },
//	  "relationship_types": [...],
//	  "relationship_properties": {...}
//	}
//
// The domain argument accepts a single string or an array of strings and may
// be omitted entirely, in which case the response reflects the live store
// as-is with no domains field.
//
// # Tool: run_query
//
// Execute Cypher directly:
//
//	Request:
//	{
//	  "name": "run_query",
//	  "arguments": {
//	    "query": "MATCH (p:Person) RETURN p.name AS name LIMIT $limit",
//	    "params": {"limit": 10}
//	  }
//	}
//
//	Response (text content, indented JSON):
//	[
//	  {"name": "Alice"},
//	  {"name": "Bob"}
//	]
//
// Numeric parameters are floored to integers before execution, because JSON
// numbers arrive as floats and Cypher rejects floats where it expects
// integers.
//
// # Error Handling
//
// Malformed arguments are rejected with standard JSON-RPC errors:
//
//	{
//	  "error": {
//	    "code": -32602,
//	    "message": "domain must be a string or an array of strings",
//	    "data": {"param": "domain"}
//	  }
//	}
//
// Runtime failures (unreachable store, bad Cypher, auth errors) never break
// the session: they come back as a tool result flagged as an error, carrying
//
//	{"success": false, "error": "<message>"}
//
// # MCP Client Configuration
//
// Configure in an MCP client's settings:
//
//	{
//	  "mcpServers": {
//	    "neo4j": {
//	      "command": "/usr/local/bin/mcp-neo4j",
//	      "env": {
//	        "NEO4J_URI": "bolt://localhost:7687",
//	        "NEO4J_USERNAME": "neo4j",
//	        "NEO4J_PASSWORD": "secret"
//	      }
//	    }
//	  }
//	}
package mcp
