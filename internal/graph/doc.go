// Package graph wraps the Neo4j Go driver behind a small Client interface so
// the rest of the server can talk to the store without knowing about drivers
// or sessions.
//
// # Implementations
//
//   - Neo4jClient: production implementation on the official v5 driver
//   - MockClient: in-memory implementation for tests, with call recording
//
// # Sessions
//
// Every operation opens its own session and closes it before returning.
// Nothing is shared between calls except the driver handle, so concurrent
// tool calls never observe each other's state. IntrospectSchema runs its four
// queries inside a single read transaction; Run uses an autocommit session so
// the pass-through works for writes as well as reads.
//
// # Parameter normalization
//
// Query parameters arrive from JSON, where every number is a float64. Cypher
// rejects float64 where it needs integers (SKIP, LIMIT), so NormalizeParams
// floors every float64 in the parameter tree to an int64 before the query is
// submitted. See NormalizeParams for the exact rules.
//
// # Encryption
//
// The URI scheme selects transport security, as usual for the driver:
// bolt:// and neo4j:// are plaintext, the +s and +ssc variants enable TLS.
// The package passes the URI through untouched.
//
// # Testing
//
// MockClient records every call and returns configurable responses:
//
//	mock := graph.NewMockClient()
//	mock.AddRunResult([]map[string]any{{"n": 1}})
//
//	rows, err := mock.Run(ctx, "RETURN 1 AS n", nil)
//
//	calls := mock.GetCallsByMethod("Run")
//	assert.Len(t, calls, 1)
package graph
