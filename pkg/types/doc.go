// Package types provides shared type definitions for the mcp-neo4j server.
//
// This package defines the schema data model passed between the graph client,
// the schema synthesizer, and the MCP tool handlers.
//
// # Core Types
//
// TypeCount describes how many instances of a node label or relationship type
// exist in the store:
//
//	tc := types.TypeCount{Name: "Person", Count: 42}
//
// PropertyIndex maps a type name to the deduplicated property keys observed
// for that type:
//
//	pi := types.PropertyIndex{}
//	pi.Add("Person", "name", "age")
//	pi.Add("Person", "name") // duplicate, ignored
//
// Introspection bundles the four live introspection results (node counts,
// node properties, relationship counts, relationship properties) exactly as
// observed, in store order.
//
// SchemaDescriptor is the synthesis output serialized to MCP callers:
//
//	{
//	  "domains": ["code"],
//	  "node_labels": [{"name": "Function", "count": 381}, ...],
//	  "node_properties": {"Function": ["name", "signature"], ...},
//	  "relationship_types": [{"name": "CALLS", "count": 1204}, ...],
//	  "relationship_properties": {"CALLS": [], ...}
//	}
//
// The "domains" field is omitted entirely when the description was not scoped.
//
// # Invariants
//
// A well-formed SchemaDescriptor keeps its TypeCount lists and PropertyIndex
// maps in lockstep: every counted name has a property entry and every
// property entry has a counted name. Validate enforces this:
//
//	if err := descriptor.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// All values are rebuilt per call; nothing in this package caches or
// persists.
package types
