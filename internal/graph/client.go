package graph

import (
	"context"

	"github.com/wearesage/mcp-neo4j/pkg/types"
)

// Client is the boundary to the graph store. The server owns exactly one
// client for its whole lifetime: constructed at startup, passed explicitly to
// whatever needs it, and closed once at shutdown.
type Client interface {
	// VerifyConnectivity checks that the store is reachable and the
	// credentials are accepted. Called once at startup; a failure there is
	// fatal, while later per-call failures are recoverable.
	VerifyConnectivity(ctx context.Context) error

	// IntrospectSchema runs the read-only introspection queries and returns
	// the observed labels, relationship types, counts, and property keys.
	// The result is rebuilt from scratch on every call and is orphan-free in
	// both directions.
	IntrospectSchema(ctx context.Context) (types.Introspection, error)

	// Run executes one Cypher query with the given parameters and returns
	// the result rows in order. Numeric parameter values are normalized to
	// the store's integer representation before submission. One session is
	// opened and closed per call; nothing is cached.
	Run(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)

	// Close releases the underlying driver. It is idempotent: closing an
	// already-closed or never-verified client is a no-op.
	Close(ctx context.Context) error
}

// Config carries the connection settings for the store.
type Config struct {
	// URI is the bolt/neo4j connection URI, e.g. "bolt://localhost:7687".
	// The URI scheme controls encryption (bolt+s, neo4j+s).
	URI string

	// Username and Password authenticate against the store.
	Username string
	Password string

	// Database selects the database to run against. Empty uses the server
	// default.
	Database string
}

// Validate checks that the required connection values are present.
func (c Config) Validate() error {
	if c.URI == "" {
		return ErrMissingURI
	}
	if c.Username == "" {
		return ErrMissingUsername
	}
	if c.Password == "" {
		return ErrMissingPassword
	}
	return nil
}
