package schema

import (
	"github.com/wearesage/mcp-neo4j/pkg/types"
)

// Synthesize merges live store introspection with the static domain taxonomy
// into a single schema descriptor. It is a pure function: it never fails, it
// does not mutate its inputs, and it returns freshly allocated lists and maps
// on every call.
//
// With no requested domains the descriptor is the live data unchanged and
// carries no domains field. Unknown domain identifiers are silently dropped;
// if none survive, the full unscoped schema is returned (lenient fallback,
// deliberately not an error). With one or more valid domains the output is
// the union of the taxonomy declarations for those domains: live entries are
// kept in store order, and declared names absent from the store are
// zero-filled with an empty property set.
func Synthesize(live types.Introspection, requested []string) types.SchemaDescriptor {
	valid := validDomains(requested)
	if len(valid) == 0 {
		return types.SchemaDescriptor{
			NodeLabels:             copyCounts(live.NodeCounts),
			NodeProperties:         live.NodeProperties.Clone(),
			RelationshipTypes:      copyCounts(live.RelCounts),
			RelationshipProperties: live.RelProperties.Clone(),
		}
	}

	nodeUnion := unionNames(valid, NodeLabelsFor)
	relUnion := unionNames(valid, RelationshipTypesFor)

	return types.SchemaDescriptor{
		Domains:                valid,
		NodeLabels:             scopeCounts(live.NodeCounts, nodeUnion),
		NodeProperties:         scopeProperties(live.NodeProperties, nodeUnion),
		RelationshipTypes:      scopeCounts(live.RelCounts, relUnion),
		RelationshipProperties: scopeProperties(live.RelProperties, relUnion),
	}
}

// validDomains keeps the requested identifiers that name a known domain,
// preserving request order and duplicates. The echoed domains field is the
// request as given, minus unknowns; only the name unions are deduplicated.
func validDomains(requested []string) []string {
	if len(requested) == 0 {
		return nil
	}
	valid := make([]string, 0, len(requested))
	for _, id := range requested {
		if IsKnownDomain(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	return valid
}

// unionNames collects the names declared by each domain in first-occurrence
// order with duplicates removed, including across domains.
func unionNames(domains []string, namesFor func(string) []string) []string {
	union := make([]string, 0)
	seen := make(map[string]bool)
	for _, domain := range domains {
		for _, name := range namesFor(domain) {
			if !seen[name] {
				seen[name] = true
				union = append(union, name)
			}
		}
	}
	return union
}

// scopeCounts filters live counts down to the union, preserving store order,
// then appends a zero count for every unioned name the store did not report.
func scopeCounts(live []types.TypeCount, union []string) []types.TypeCount {
	inUnion := make(map[string]bool, len(union))
	for _, name := range union {
		inUnion[name] = true
	}

	out := make([]types.TypeCount, 0, len(union))
	present := make(map[string]bool, len(union))
	for _, tc := range live {
		if inUnion[tc.Name] {
			out = append(out, tc)
			present[tc.Name] = true
		}
	}
	for _, name := range union {
		if !present[name] {
			out = append(out, types.TypeCount{Name: name, Count: 0})
		}
	}
	return out
}

// scopeProperties builds the property index for exactly the unioned names:
// the live key set when the store observed one, an empty set otherwise.
func scopeProperties(live types.PropertyIndex, union []string) types.PropertyIndex {
	out := make(types.PropertyIndex, len(union))
	for _, name := range union {
		if keys, ok := live[name]; ok {
			copied := make([]string, len(keys))
			copy(copied, keys)
			out[name] = copied
		} else {
			out[name] = []string{}
		}
	}
	return out
}

func copyCounts(live []types.TypeCount) []types.TypeCount {
	out := make([]types.TypeCount, len(live))
	copy(out, live)
	return out
}
