// Package config loads server configuration from the environment.
//
// Three variables are required: NEO4J_URI, NEO4J_USERNAME and NEO4J_PASSWORD.
// NEO4J_DATABASE selects a database (empty means the server default), and
// MCP_NEO4J_LOG_LEVEL / MCP_NEO4J_LOG_FORMAT shape the stderr log stream.
// Load fails fast with an error naming every missing required variable, so
// the process never starts half-configured.
package config
