// Package schema implements the domain-scoped schema synthesis at the heart
// of the mcp-neo4j server.
//
// The synthesizer merges two sources of truth:
//
//   - live introspection: the node labels, relationship types, counts, and
//     property keys that actually exist in the store right now
//   - the static domain taxonomy: a hand-maintained table declaring which
//     type names belong to which domain ("code", "mind", "project",
//     "people"), independent of what currently exists
//
// # Synthesis Rules
//
// Unscoped requests pass the live data through unchanged. Scoped requests
// union the taxonomy declarations of every valid requested domain, then:
//
//   - live entries inside the union are kept, in store order
//   - declared names absent from the store are zero-filled (count 0, empty
//     property set), so the scoped output is always a superset union of
//     "what exists" and "what the taxonomy declares"
//   - live entries outside the union are excluded
//
// Unknown domain identifiers are silently dropped; a request naming only
// unknown domains falls back to the full unscoped schema. This leniency is
// intentional and relied upon by callers.
//
// # Purity
//
// Synthesize is a pure function over already-fetched data. It has no failure
// states, touches no I/O, and allocates fresh output on every call; all error
// conditions live with the graph client and the MCP handlers.
package schema
